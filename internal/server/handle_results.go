package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

const recentResultsLimit = 10

// RecordResultRequest is the request body for POST /api/admin/results.
type RecordResultRequest struct {
	TeamID     string `json:"teamId"`
	OpponentID string `json:"opponentId"`
	StationID  string `json:"stationId"`
	IsWinner   bool   `json:"isWinner"`
	Points     int    `json:"points"`
	RecordedBy string `json:"recordedBy"`
}

func (req *RecordResultRequest) validate() string {
	req.TeamID = strings.TrimSpace(req.TeamID)
	req.OpponentID = strings.TrimSpace(req.OpponentID)
	req.StationID = strings.TrimSpace(req.StationID)
	req.RecordedBy = strings.TrimSpace(req.RecordedBy)
	if req.TeamID == "" {
		return "teamId is required"
	}
	if req.StationID == "" {
		return "stationId is required"
	}
	if req.OpponentID == req.TeamID {
		return "opponentId must differ from teamId"
	}
	if req.Points < 0 {
		return "points must not be negative"
	}
	return ""
}

func handleRecordResult(store Store, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RecordResultRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if msg := req.validate(); msg != "" {
			writeError(w, http.StatusBadRequest, msg)
			return
		}

		if ok, err := store.StationExists(r.Context(), req.StationID); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		} else if !ok {
			writeError(w, http.StatusNotFound, "station not found")
			return
		}

		item, err := store.RecordResult(r.Context(), RecordResultParams{
			TeamID:     req.TeamID,
			OpponentID: req.OpponentID,
			StationID:  req.StationID,
			IsWinner:   req.IsWinner,
			Points:     req.Points,
			RecordedBy: req.RecordedBy,
		})
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		// The result and the point increment land together, so both
		// collections changed.
		broker.Publish(ChangeEvent{Collection: collectionResults})
		broker.Publish(ChangeEvent{Collection: collectionTeams})

		writeJSON(w, http.StatusCreated, item)
	}
}

func handleDeleteResult(store Store, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := store.DeleteResult(r.Context(), chi.URLParam(r, "resultID"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "result not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		broker.Publish(ChangeEvent{Collection: collectionResults})
		broker.Publish(ChangeEvent{Collection: collectionTeams})

		writeJSON(w, http.StatusOK, map[string]bool{"deleted": true})
	}
}

func handleRecentResults(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		results, err := store.RecentResults(r.Context(), recentResultsLimit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if results == nil {
			results = []ResultItem{}
		}
		writeJSON(w, http.StatusOK, results)
	}
}
