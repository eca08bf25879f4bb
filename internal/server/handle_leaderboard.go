package server

import (
	"net/http"

	"github.com/fieldday/scoreboard/internal/scoreboard"
)

// handleLeaderboard ranks the current teams snapshot on every request.
// Nothing is cached: the store is the sole source of truth and may have
// changed since the last call.
func handleLeaderboard(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		teams, err := store.ListTeams(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		rows := scoreboard.Rank(teams)
		if rows == nil {
			rows = []scoreboard.LeaderboardRow{}
		}
		writeJSON(w, http.StatusOK, rows)
	}
}
