package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/fieldday/scoreboard/internal/scoreboard"
)

type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

func (s *SQLiteStore) ListTeams(ctx context.Context) ([]scoreboard.Team, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, grade, total_points, color
		FROM teams
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var teams []scoreboard.Team
	for rows.Next() {
		var t scoreboard.Team
		if err := rows.Scan(&t.ID, &t.Name, &t.Grade, &t.TotalPoints, &t.Color); err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

func (s *SQLiteStore) GetTeam(ctx context.Context, id string) (scoreboard.Team, error) {
	var t scoreboard.Team
	err := s.db.QueryRowContext(ctx, `
		SELECT id, name, grade, total_points, color
		FROM teams WHERE id = ?
	`, id).Scan(&t.ID, &t.Name, &t.Grade, &t.TotalPoints, &t.Color)
	if errors.Is(err, sql.ErrNoRows) {
		return t, ErrNotFound
	}
	return t, err
}

func (s *SQLiteStore) ListStations(ctx context.Context) ([]scoreboard.Station, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, icon, COALESCE(location, '')
		FROM stations
		ORDER BY name
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stations []scoreboard.Station
	for rows.Next() {
		var st scoreboard.Station
		if err := rows.Scan(&st.ID, &st.Name, &st.Icon, &st.Location); err != nil {
			return nil, err
		}
		stations = append(stations, st)
	}
	return stations, rows.Err()
}

func (s *SQLiteStore) StationExists(ctx context.Context, id string) (bool, error) {
	var one int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM stations WHERE id = ?`, id).Scan(&one)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	return err == nil, err
}

func (s *SQLiteStore) ListSchedule(ctx context.Context) ([]scoreboard.ScheduleEntry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT e.id, e.team_id, COALESCE(e.opponent_id, ''), e.station_id, e.start_time,
			t.name, COALESCE(o.name, ''),
			st.name, st.icon, COALESCE(st.location, '')
		FROM schedule e
		JOIN teams t ON t.id = e.team_id
		LEFT JOIN teams o ON o.id = e.opponent_id
		JOIN stations st ON st.id = e.station_id
		ORDER BY e.start_time, e.id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []scoreboard.ScheduleEntry
	for rows.Next() {
		var e scoreboard.ScheduleEntry
		var start string
		if err := rows.Scan(&e.ID, &e.TeamID, &e.OpponentID, &e.StationID, &start,
			&e.TeamName, &e.OpponentName,
			&e.StationName, &e.StationIcon, &e.StationLocation); err != nil {
			return nil, err
		}
		e.StartTime, err = time.Parse(time.RFC3339Nano, start)
		if err != nil {
			return nil, fmt.Errorf("parsing start_time of entry %s: %w", e.ID, err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

const resultSelect = `
	SELECT r.id, r.team_id, t.name,
		COALESCE(r.opponent_id, ''), COALESCE(o.name, ''),
		r.station_id, st.name, st.icon,
		r.is_winner, r.points_earned, COALESCE(r.recorded_by, ''), r.created_at
	FROM results r
	JOIN teams t ON t.id = r.team_id
	LEFT JOIN teams o ON o.id = r.opponent_id
	JOIN stations st ON st.id = r.station_id
`

func scanResult(row interface{ Scan(...any) error }) (ResultItem, error) {
	var ri ResultItem
	var isWinner int
	err := row.Scan(&ri.ID, &ri.TeamID, &ri.TeamName,
		&ri.OpponentID, &ri.OpponentName,
		&ri.StationID, &ri.StationName, &ri.StationIcon,
		&isWinner, &ri.PointsEarned, &ri.RecordedBy, &ri.CreatedAt)
	ri.IsWinner = isWinner != 0
	return ri, err
}

func (s *SQLiteStore) ListTeamResults(ctx context.Context, teamID string) ([]ResultItem, error) {
	rows, err := s.db.QueryContext(ctx, resultSelect+`
		WHERE r.team_id = ?
		ORDER BY r.created_at DESC
	`, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResults(rows)
}

func (s *SQLiteStore) RecentResults(ctx context.Context, limit int) ([]ResultItem, error) {
	rows, err := s.db.QueryContext(ctx, resultSelect+`
		ORDER BY r.created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectResults(rows)
}

func collectResults(rows *sql.Rows) ([]ResultItem, error) {
	var results []ResultItem
	for rows.Next() {
		ri, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, ri)
	}
	return results, rows.Err()
}

// RecordResult inserts the result and increments the team's total in one
// transaction so a reader never sees a result without its points.
func (s *SQLiteStore) RecordResult(ctx context.Context, p RecordResultParams) (ResultItem, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return ResultItem{}, err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE teams SET total_points = total_points + ? WHERE id = ?
	`, p.Points, p.TeamID)
	if err != nil {
		return ResultItem{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ResultItem{}, ErrNotFound
	}

	id := uuid.NewString()
	isWinner := 0
	if p.IsWinner {
		isWinner = 1
	}
	_, err = tx.ExecContext(ctx, `
		INSERT INTO results (id, team_id, opponent_id, station_id, is_winner, points_earned, recorded_by)
		VALUES (?, ?, NULLIF(?, ''), ?, ?, ?, NULLIF(?, ''))
	`, id, p.TeamID, p.OpponentID, p.StationID, isWinner, p.Points, p.RecordedBy)
	if err != nil {
		return ResultItem{}, err
	}

	ri, err := scanResult(tx.QueryRowContext(ctx, resultSelect+`WHERE r.id = ?`, id))
	if err != nil {
		return ResultItem{}, err
	}

	if err := tx.Commit(); err != nil {
		return ResultItem{}, err
	}
	return ri, nil
}

// DeleteResult removes the result and reverses its point contribution in
// one transaction, returning the team's total to its pre-record value.
func (s *SQLiteStore) DeleteResult(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var teamID string
	var points int
	err = tx.QueryRowContext(ctx, `
		SELECT team_id, points_earned FROM results WHERE id = ?
	`, id).Scan(&teamID, &points)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM results WHERE id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `
		UPDATE teams SET total_points = MAX(total_points - ?, 0) WHERE id = ?
	`, points, teamID); err != nil {
		return err
	}

	return tx.Commit()
}
