package server

import (
	"context"
	"errors"

	"github.com/fieldday/scoreboard/internal/scoreboard"
)

var ErrNotFound = errors.New("not found")

// ResultItem is a recorded result with display names joined in, as shown
// in the admin's recent-results list and a team's history.
type ResultItem struct {
	ID           string `json:"id"`
	TeamID       string `json:"teamId"`
	TeamName     string `json:"teamName"`
	OpponentID   string `json:"opponentId,omitempty"`
	OpponentName string `json:"opponentName,omitempty"`
	StationID    string `json:"stationId"`
	StationName  string `json:"stationName"`
	StationIcon  string `json:"stationIcon,omitempty"`
	IsWinner     bool   `json:"isWinner"`
	PointsEarned int    `json:"pointsEarned"`
	RecordedBy   string `json:"recordedBy,omitempty"`
	CreatedAt    string `json:"createdAt"`
}

// RecordResultParams carries a validated result into the store.
type RecordResultParams struct {
	TeamID     string
	OpponentID string
	StationID  string
	IsWinner   bool
	Points     int
	RecordedBy string
}

type Store interface {
	// ListTeams returns teams ordered by name. Ranking stability depends
	// on this order, so it is part of the contract.
	ListTeams(ctx context.Context) ([]scoreboard.Team, error)
	GetTeam(ctx context.Context, id string) (scoreboard.Team, error)
	ListStations(ctx context.Context) ([]scoreboard.Station, error)
	StationExists(ctx context.Context, id string) (bool, error)

	// ListSchedule returns every entry with joined display names,
	// ascending by start time.
	ListSchedule(ctx context.Context) ([]scoreboard.ScheduleEntry, error)

	ListTeamResults(ctx context.Context, teamID string) ([]ResultItem, error)
	RecentResults(ctx context.Context, limit int) ([]ResultItem, error)

	// RecordResult atomically inserts the result and adds its points to
	// the team's total; no observer ever sees one without the other.
	RecordResult(ctx context.Context, p RecordResultParams) (ResultItem, error)

	// DeleteResult atomically removes the result and reverses its point
	// contribution.
	DeleteResult(ctx context.Context, id string) error
}
