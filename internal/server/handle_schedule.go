package server

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fieldday/scoreboard/internal/scoreboard"
)

func handleSchedule(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.ListSchedule(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if entries == nil {
			entries = []scoreboard.ScheduleEntry{}
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// handleCurrentSchedule returns the matches happening now, or the full
// next round when nothing is live. An empty schedule yields an empty
// list, not an error.
func handleCurrentSchedule(store Store, window time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		entries, err := store.ListSchedule(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		current := scoreboard.SelectCurrent(entries, time.Now(), window)
		if current == nil {
			current = []scoreboard.ScheduleEntry{}
		}
		writeJSON(w, http.StatusOK, current)
	}
}

// handleTeamSchedule returns one team's matches with phase annotations and
// resolved opponent names, for the student portal and the TV rotation.
func handleTeamSchedule(store Store, window time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teamID := chi.URLParam(r, "teamID")
		if _, err := store.GetTeam(r.Context(), teamID); errors.Is(err, ErrNotFound) {
			writeError(w, http.StatusNotFound, "team not found")
			return
		} else if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		entries, err := store.ListSchedule(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		matches := scoreboard.SelectForTeam(entries, teamID, time.Now(), window)
		if matches == nil {
			matches = []scoreboard.TeamMatch{}
		}
		writeJSON(w, http.StatusOK, matches)
	}
}
