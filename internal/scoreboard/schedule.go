package scoreboard

import (
	"sort"
	"time"
)

// TeamMatch is a schedule entry seen from one team's point of view: the
// entry itself, its phase at query time, and the display name of the other
// party. Opponent is empty for single-team activities.
type TeamMatch struct {
	ScheduleEntry
	Phase    Phase  `json:"phase"`
	Opponent string `json:"opponent,omitempty"`
}

// SelectCurrent picks the matches to show as "happening now": every live
// entry in ascending start order, or, when nothing is live, the entire
// next round, meaning all upcoming entries sharing the minimum start time.
// Matches that start together are a round and are always shown together;
// this is an exact timestamp match, not a closest-N heuristic.
func SelectCurrent(entries []ScheduleEntry, now time.Time, window time.Duration) []ScheduleEntry {
	var live, upcoming []ScheduleEntry
	for _, e := range entries {
		switch Classify(now, e.StartTime, window) {
		case PhaseLive:
			live = append(live, e)
		case PhaseUpcoming:
			upcoming = append(upcoming, e)
		}
	}

	if len(live) > 0 {
		sortByStart(live)
		return live
	}
	if len(upcoming) == 0 {
		return nil
	}

	next := upcoming[0].StartTime
	for _, e := range upcoming[1:] {
		if e.StartTime.Before(next) {
			next = e.StartTime
		}
	}
	var round []ScheduleEntry
	for _, e := range upcoming {
		if e.StartTime.Equal(next) {
			round = append(round, e)
		}
	}
	return round
}

// SelectForTeam returns the schedule as one team sees it: every entry where
// the team plays on either side, ascending by start time, annotated with
// its phase and the resolved opponent name. When the team is the home side
// the opponent is the entry's opponent party; otherwise it is the home
// side. A missing opponent yields an empty name, never an error.
func SelectForTeam(entries []ScheduleEntry, teamID string, now time.Time, window time.Duration) []TeamMatch {
	var matches []TeamMatch
	for _, e := range entries {
		if e.TeamID != teamID && e.OpponentID != teamID {
			continue
		}
		m := TeamMatch{
			ScheduleEntry: e,
			Phase:         Classify(now, e.StartTime, window),
		}
		if e.TeamID == teamID {
			m.Opponent = e.OpponentName
		} else {
			m.Opponent = e.TeamName
		}
		matches = append(matches, m)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].StartTime.Before(matches[j].StartTime)
	})
	return matches
}

func sortByStart(entries []ScheduleEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].StartTime.Before(entries[j].StartTime)
	})
}
