package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// SeedDemo populates an empty database with a demo event: eight class
// teams, six stations, and four rounds of matches starting at base.
// Idempotent: does nothing if teams already exist.
func SeedDemo(ctx context.Context, logger *slog.Logger, db *sql.DB, base time.Time) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM teams`).Scan(&count); err != nil {
		return fmt.Errorf("counting teams: %w", err)
	}
	if count > 0 {
		return nil
	}

	teams := []struct {
		name, grade, color string
	}{
		{"Class 7A", "7th", "#06b6d4"},
		{"Class 7B", "7th", "#8b5cf6"},
		{"Class 7C", "7th", "#f59e0b"},
		{"Class 7D", "7th", "#10b981"},
		{"Class 8A", "8th", "#ef4444"},
		{"Class 8B", "8th", "#3b82f6"},
		{"Class 8C", "8th", "#ec4899"},
		{"Class 8D", "8th", "#84cc16"},
	}

	stations := []struct {
		name, icon, location string
	}{
		{"Tug of War", "🪢", "Main field"},
		{"Sack Race", "🏃", "Track"},
		{"Relay", "🏅", "Track"},
		{"Basketball Shootout", "🏀", "Gym"},
		{"Obstacle Course", "🧗", "Playground"},
		{"Penalty Kicks", "⚽", "Soccer pitch"},
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	teamIDs := make([]string, len(teams))
	for i, t := range teams {
		teamIDs[i] = uuid.NewString()
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO teams (id, name, grade, color) VALUES (?, ?, ?, ?)
		`, teamIDs[i], t.name, t.grade, t.color); err != nil {
			return fmt.Errorf("seeding team %s: %w", t.name, err)
		}
	}

	stationIDs := make([]string, len(stations))
	for i, st := range stations {
		stationIDs[i] = uuid.NewString()
		if _, err := tx.ExecContext(ctx, `
			INSERT INTO stations (id, name, icon, location) VALUES (?, ?, ?, ?)
		`, stationIDs[i], st.name, st.icon, st.location); err != nil {
			return fmt.Errorf("seeding station %s: %w", st.name, err)
		}
	}

	// Four rounds, 30 minutes apart. Each round pairs neighbouring teams
	// with a rotating offset so everyone meets someone new, at a rotating
	// station.
	for round := 0; round < 4; round++ {
		start := base.Add(time.Duration(round) * 30 * time.Minute).UTC().Format(time.RFC3339)
		for pair := 0; pair*2+1 < len(teamIDs); pair++ {
			home := teamIDs[(pair*2+round)%len(teamIDs)]
			away := teamIDs[(pair*2+1+round)%len(teamIDs)]
			station := stationIDs[(pair+round)%len(stationIDs)]
			if _, err := tx.ExecContext(ctx, `
				INSERT INTO schedule (id, team_id, opponent_id, station_id, start_time)
				VALUES (?, ?, ?, ?, ?)
			`, uuid.NewString(), home, away, station, start); err != nil {
				return fmt.Errorf("seeding schedule round %d: %w", round, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	logger.Info("demo event seeded", "teams", len(teams), "stations", len(stations))
	return nil
}
