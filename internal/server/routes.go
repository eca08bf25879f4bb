package server

import (
	"database/sql"
	"log/slog"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/swaggest/swgui/v5emb"
)

func addRoutes(r chi.Router, logger *slog.Logger, store Store, devices *DeviceStore, db *sql.DB, rdb *redis.Client, window time.Duration, spaDir string) {
	broker := NewBroker()

	r.Get("/openapi.json", handleOpenAPI())
	r.Mount("/docs", v5emb.New("Sports Day Scoreboard API", "/openapi.json", "/docs"))
	r.Get("/healthz", handleHealth(logger, db, rdb))
	r.Get("/ws/echo", handleWSEcho(logger))

	// Public read surface for the student portal and TV dashboard.
	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", handleListTeams(store))
		r.Get("/teams/{teamID}", handleGetTeam(store))
		r.Get("/teams/{teamID}/schedule", handleTeamSchedule(store, window))
		r.Get("/teams/{teamID}/results", handleTeamResults(store))
		r.Get("/stations", handleListStations(store))
		r.Get("/leaderboard", handleLeaderboard(store))
		r.Get("/schedule", handleSchedule(store))
		r.Get("/schedule/current", handleCurrentSchedule(store, window))
		r.Get("/events", handleEvents(broker))

		// Sticky "my team" selection, keyed by an opaque device ID the
		// frontend generates once and keeps.
		r.Get("/device/{deviceID}/team", handleDeviceTeam(devices))
		r.Put("/device/{deviceID}/team", handleSetDeviceTeam(devices, store))
		r.Delete("/device/{deviceID}/team", handleClearDeviceTeam(devices))

		// Result recording. The admin view has no auth; the URL is only
		// handed to staff.
		r.Route("/admin", func(r chi.Router) {
			r.Post("/results", handleRecordResult(store, broker))
			r.Delete("/results/{resultID}", handleDeleteResult(store, broker))
			r.Get("/results/recent", handleRecentResults(store))
			r.Get("/stations/{stationID}/suggestion", handleSuggestMatch(store, window))
		})
	})

	if spaDir != "" {
		if info, err := os.Stat(spaDir); err == nil && info.IsDir() {
			logger.Info("serving SPA", "dir", spaDir)
			r.NotFound(handleSPA(spaDir))
		}
	}
}
