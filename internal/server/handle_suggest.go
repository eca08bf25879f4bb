package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fieldday/scoreboard/internal/scoreboard"
)

// SuggestionResponse pre-fills the admin's recording form with the match
// currently live at a station. Found is false when nothing is live; the
// form stays blank rather than suggesting an expired match.
type SuggestionResponse struct {
	Found bool                      `json:"found"`
	Entry *scoreboard.ScheduleEntry `json:"entry,omitempty"`
}

func handleSuggestMatch(store Store, window time.Duration) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stationID := chi.URLParam(r, "stationID")

		if ok, err := store.StationExists(r.Context(), stationID); err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		} else if !ok {
			writeError(w, http.StatusNotFound, "station not found")
			return
		}

		entries, err := store.ListSchedule(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		entry, ok := scoreboard.SuggestMatch(entries, stationID, time.Now(), window)
		if !ok {
			writeJSON(w, http.StatusOK, SuggestionResponse{Found: false})
			return
		}
		writeJSON(w, http.StatusOK, SuggestionResponse{Found: true, Entry: &entry})
	}
}
