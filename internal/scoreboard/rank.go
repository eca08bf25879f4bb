package scoreboard

import "sort"

// Rank computes the leaderboard from a snapshot of teams: descending by
// total points, with ties keeping their input order. The store feeds teams
// ordered by name, so tied teams end up alphabetical without a second sort
// key. Ranks are dense 1-based positions; ties do not share a rank.
//
// The output is always a permutation of the input. Negative totals cannot
// be produced by the store but are clamped to zero rather than allowed to
// distort the ordering.
func Rank(teams []Team) []LeaderboardRow {
	rows := make([]LeaderboardRow, len(teams))
	for i, t := range teams {
		points := t.TotalPoints
		if points < 0 {
			points = 0
		}
		rows[i] = LeaderboardRow{
			ID:          t.ID,
			Name:        t.Name,
			Grade:       t.Grade,
			TotalPoints: points,
			Color:       t.Color,
		}
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].TotalPoints > rows[j].TotalPoints
	})

	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}
