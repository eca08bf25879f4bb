package server

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fieldday/scoreboard/internal/database"
	"github.com/fieldday/scoreboard/internal/migrations"
)

const testWindow = 20 * time.Minute

func setupStore(t *testing.T) *SQLiteStore {
	t.Helper()

	db, err := database.Open(context.Background(), ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := migrations.Run(db); err != nil {
		t.Fatalf("run migrations: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return NewSQLiteStore(db)
}

func insertTeam(t *testing.T, s *SQLiteStore, id, name, grade string, points int) {
	t.Helper()
	_, err := s.db.Exec(`
		INSERT INTO teams (id, name, grade, total_points) VALUES (?, ?, ?, ?)
	`, id, name, grade, points)
	if err != nil {
		t.Fatalf("insert team %s: %v", name, err)
	}
}

func insertStation(t *testing.T, s *SQLiteStore, id, name string) {
	t.Helper()
	_, err := s.db.Exec(`
		INSERT INTO stations (id, name, icon) VALUES (?, ?, '🏅')
	`, id, name)
	if err != nil {
		t.Fatalf("insert station %s: %v", name, err)
	}
}

func insertScheduleEntry(t *testing.T, s *SQLiteStore, id, teamID, opponentID, stationID string, start time.Time) {
	t.Helper()
	_, err := s.db.Exec(`
		INSERT INTO schedule (id, team_id, opponent_id, station_id, start_time)
		VALUES (?, ?, NULLIF(?, ''), ?, ?)
	`, id, teamID, opponentID, stationID, start.UTC().Format(time.RFC3339Nano))
	if err != nil {
		t.Fatalf("insert schedule entry %s: %v", id, err)
	}
}

// testRouter wires the store-backed handlers the way addRoutes does,
// without the Redis and SPA dependencies the tests don't need.
func testRouter(t *testing.T, store *SQLiteStore) *chi.Mux {
	t.Helper()
	broker := NewBroker()

	r := chi.NewRouter()
	r.Get("/api/teams", handleListTeams(store))
	r.Get("/api/teams/{teamID}", handleGetTeam(store))
	r.Get("/api/teams/{teamID}/schedule", handleTeamSchedule(store, testWindow))
	r.Get("/api/teams/{teamID}/results", handleTeamResults(store))
	r.Get("/api/stations", handleListStations(store))
	r.Get("/api/leaderboard", handleLeaderboard(store))
	r.Get("/api/schedule", handleSchedule(store))
	r.Get("/api/schedule/current", handleCurrentSchedule(store, testWindow))
	r.Post("/api/admin/results", handleRecordResult(store, broker))
	r.Delete("/api/admin/results/{resultID}", handleDeleteResult(store, broker))
	r.Get("/api/admin/results/recent", handleRecentResults(store))
	r.Get("/api/admin/stations/{stationID}/suggestion", handleSuggestMatch(store, testWindow))
	return r
}
