package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// DeviceTeamRequest is the request body for PUT /api/device/{deviceID}/team.
type DeviceTeamRequest struct {
	TeamID string `json:"teamId"`
}

// DeviceTeamResponse is the stored selection for a device.
type DeviceTeamResponse struct {
	TeamID string `json:"teamId"`
}

func handleDeviceTeam(devices *DeviceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID, err := devices.Team(r.Context(), chi.URLParam(r, "deviceID"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "no team selected")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, DeviceTeamResponse{TeamID: teamID})
	}
}

func handleClearDeviceTeam(devices *DeviceStore) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := devices.ClearTeam(r.Context(), chi.URLParam(r, "deviceID")); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, map[string]bool{"cleared": true})
	}
}

func handleSetDeviceTeam(devices *DeviceStore, store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DeviceTeamRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.TeamID = strings.TrimSpace(req.TeamID)
		if req.TeamID == "" {
			writeError(w, http.StatusBadRequest, "teamId is required")
			return
		}

		if _, err := store.GetTeam(r.Context(), req.TeamID); errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		} else if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		if err := devices.SetTeam(r.Context(), chi.URLParam(r, "deviceID"), req.TeamID); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, DeviceTeamResponse{TeamID: req.TeamID})
	}
}
