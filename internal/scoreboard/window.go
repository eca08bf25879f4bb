package scoreboard

import "time"

// Phase is where a match sits relative to its live window.
type Phase string

const (
	PhaseUpcoming Phase = "upcoming"
	PhaseLive     Phase = "live"
	PhasePast     Phase = "past"
)

// Classify maps a match start time to its phase at the given instant.
// A match is live from its start (inclusive) until the window elapses
// (exclusive): now == start is live, now == start+window is past.
func Classify(now, start time.Time, window time.Duration) Phase {
	elapsed := now.Sub(start)
	switch {
	case elapsed < 0:
		return PhaseUpcoming
	case elapsed < window:
		return PhaseLive
	default:
		return PhasePast
	}
}
