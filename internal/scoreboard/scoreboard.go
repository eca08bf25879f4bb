// Package scoreboard holds the core domain types and the derivation logic
// shared by every view of the event: leaderboard ranking, live-match
// selection, and schedule lookups. It has zero external dependencies:
// everything here is pure Go over snapshots the caller already fetched.
package scoreboard

import "time"

// Team is a participating class with an accumulating point total. Totals
// are mutated only by the store's result procedures, never here.
type Team struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Grade       string `json:"grade"`
	TotalPoints int    `json:"totalPoints"`
	Color       string `json:"color"`
}

// Station is a physical activity location. Static reference data.
type Station struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon"`
	Location string `json:"location,omitempty"`
}

// ScheduleEntry is a planned match: a home team, an optional opponent, a
// station, and an immutable start time. Display names are joined in by the
// store so derivations never need a second fetch.
type ScheduleEntry struct {
	ID              string    `json:"id"`
	TeamID          string    `json:"teamId"`
	OpponentID      string    `json:"opponentId,omitempty"`
	StationID       string    `json:"stationId"`
	StartTime       time.Time `json:"startTime"`
	TeamName        string    `json:"teamName"`
	OpponentName    string    `json:"opponentName,omitempty"`
	StationName     string    `json:"stationName"`
	StationIcon     string    `json:"stationIcon,omitempty"`
	StationLocation string    `json:"stationLocation,omitempty"`
}

// LeaderboardRow is a derived ranking row. It is recomputed on every
// request and never persisted.
type LeaderboardRow struct {
	Rank        int    `json:"rank"`
	ID          string `json:"id"`
	Name        string `json:"name"`
	Grade       string `json:"grade"`
	TotalPoints int    `json:"totalPoints"`
	Color       string `json:"color"`
}
