package server

import (
	"net/http"

	"github.com/fieldday/scoreboard/internal/scoreboard"
)

func handleListStations(store Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stations, err := store.ListStations(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		if stations == nil {
			stations = []scoreboard.Station{}
		}
		writeJSON(w, http.StatusOK, stations)
	}
}
