package server

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fieldday/scoreboard/internal/scoreboard"
)

func handleListTeams(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := store.ListTeams(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if teams == nil {
			teams = []scoreboard.Team{}
		}
		writeJSON(w, http.StatusOK, teams)
	}
}

func handleGetTeam(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		team, err := store.GetTeam(r.Context(), chi.URLParam(r, "teamID"))
		if errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		}
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, team)
	}
}

func handleTeamResults(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		if _, err := store.GetTeam(r.Context(), teamID); errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		} else if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		results, err := store.ListTeamResults(r.Context(), teamID)
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
