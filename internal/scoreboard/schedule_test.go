package scoreboard

import (
	"testing"
	"time"
)

var t0 = time.Date(2026, 5, 14, 9, 0, 0, 0, time.UTC)

const window = 20 * time.Minute

func TestSelectCurrentReturnsLiveRound(t *testing.T) {
	entries := []ScheduleEntry{
		{ID: "m1", StartTime: t0},
		{ID: "m2", StartTime: t0},
		{ID: "m3", StartTime: t0.Add(30 * time.Minute)},
	}

	got := SelectCurrent(entries, t0.Add(5*time.Minute), window)
	if len(got) != 2 {
		t.Fatalf("expected the two live entries, got %d", len(got))
	}
	if got[0].ID != "m1" || got[1].ID != "m2" {
		t.Errorf("got %s,%s, want m1,m2", got[0].ID, got[1].ID)
	}
}

func TestSelectCurrentFallsBackToNextRound(t *testing.T) {
	entries := []ScheduleEntry{
		{ID: "m1", StartTime: t0},
		{ID: "m2", StartTime: t0},
		{ID: "m3", StartTime: t0.Add(30 * time.Minute)},
	}

	// 25 minutes in: the first round's window has expired, so the single
	// next-round entry is shown, not the expired pair.
	got := SelectCurrent(entries, t0.Add(25*time.Minute), window)
	if len(got) != 1 {
		t.Fatalf("expected the one upcoming entry, got %d", len(got))
	}
	if got[0].ID != "m3" {
		t.Errorf("got %s, want m3", got[0].ID)
	}
}

func TestSelectCurrentNextRoundIsExactTimestampMatch(t *testing.T) {
	entries := []ScheduleEntry{
		{ID: "m1", StartTime: t0.Add(40 * time.Minute)},
		{ID: "m2", StartTime: t0.Add(30 * time.Minute)},
		{ID: "m3", StartTime: t0.Add(30 * time.Minute)},
		{ID: "m4", StartTime: t0.Add(31 * time.Minute)},
	}

	got := SelectCurrent(entries, t0, window)
	if len(got) != 2 {
		t.Fatalf("expected both entries of the 30-minute round, got %d", len(got))
	}
	for _, e := range got {
		if !e.StartTime.Equal(t0.Add(30 * time.Minute)) {
			t.Errorf("entry %s is not part of the next round", e.ID)
		}
	}
}

func TestSelectCurrentLiveSortedByStart(t *testing.T) {
	entries := []ScheduleEntry{
		{ID: "late", StartTime: t0.Add(10 * time.Minute)},
		{ID: "early", StartTime: t0},
	}

	got := SelectCurrent(entries, t0.Add(15*time.Minute), window)
	if len(got) != 2 || got[0].ID != "early" || got[1].ID != "late" {
		t.Errorf("live entries not in ascending start order: %+v", got)
	}
}

func TestSelectCurrentEmpty(t *testing.T) {
	if got := SelectCurrent(nil, t0, window); len(got) != 0 {
		t.Errorf("expected empty selection, got %d entries", len(got))
	}

	// All past: nothing live, nothing upcoming.
	entries := []ScheduleEntry{{ID: "m1", StartTime: t0.Add(-time.Hour)}}
	if got := SelectCurrent(entries, t0, window); len(got) != 0 {
		t.Errorf("expected empty selection for an all-past schedule, got %d", len(got))
	}
}

func TestSelectForTeamResolvesOpponents(t *testing.T) {
	entries := []ScheduleEntry{
		// Team A is home against B.
		{ID: "m1", TeamID: "a", TeamName: "Alpha", OpponentID: "b", OpponentName: "Beta", StartTime: t0},
		// Team A is the opponent of C.
		{ID: "m2", TeamID: "c", TeamName: "Gamma", OpponentID: "a", OpponentName: "Alpha", StartTime: t0.Add(30 * time.Minute)},
		// Unrelated match.
		{ID: "m3", TeamID: "b", TeamName: "Beta", OpponentID: "c", OpponentName: "Gamma", StartTime: t0.Add(time.Hour)},
	}

	got := SelectForTeam(entries, "a", t0.Add(5*time.Minute), window)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches for team a, got %d", len(got))
	}

	if got[0].ID != "m1" || got[0].Opponent != "Beta" {
		t.Errorf("match 1 = %s vs %q, want m1 vs Beta", got[0].ID, got[0].Opponent)
	}
	if got[1].ID != "m2" || got[1].Opponent != "Gamma" {
		t.Errorf("match 2 = %s vs %q, want m2 vs Gamma", got[1].ID, got[1].Opponent)
	}
	if got[0].Phase != PhaseLive {
		t.Errorf("match 1 phase = %q, want live", got[0].Phase)
	}
	if got[1].Phase != PhaseUpcoming {
		t.Errorf("match 2 phase = %q, want upcoming", got[1].Phase)
	}
}

func TestSelectForTeamSoloActivity(t *testing.T) {
	entries := []ScheduleEntry{
		{ID: "m1", TeamID: "a", TeamName: "Alpha", StartTime: t0},
	}

	got := SelectForTeam(entries, "a", t0, window)
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Opponent != "" {
		t.Errorf("solo activity should have no opponent, got %q", got[0].Opponent)
	}
}

func TestSelectForTeamSortsByStart(t *testing.T) {
	entries := []ScheduleEntry{
		{ID: "m2", TeamID: "a", StartTime: t0.Add(time.Hour)},
		{ID: "m1", TeamID: "a", StartTime: t0},
	}

	got := SelectForTeam(entries, "a", t0, window)
	if got[0].ID != "m1" || got[1].ID != "m2" {
		t.Errorf("matches not in ascending start order: %s, %s", got[0].ID, got[1].ID)
	}
}

func TestSuggestMatch(t *testing.T) {
	entries := []ScheduleEntry{
		{ID: "m1", StationID: "s1", TeamID: "a", StartTime: t0.Add(-30 * time.Minute)},
		{ID: "m2", StationID: "s1", TeamID: "b", StartTime: t0},
		{ID: "m3", StationID: "s1", TeamID: "c", StartTime: t0.Add(30 * time.Minute)},
		{ID: "m4", StationID: "s2", TeamID: "d", StartTime: t0.Add(5 * time.Minute)},
	}

	// Ten minutes in: m2 is the latest started entry for s1 and still live.
	e, ok := SuggestMatch(entries, "s1", t0.Add(10*time.Minute), window)
	if !ok {
		t.Fatal("expected a suggestion")
	}
	if e.ID != "m2" {
		t.Errorf("suggested %s, want m2", e.ID)
	}

	// 25 minutes in: m2's window has expired and m3 hasn't started. A
	// stale suggestion must never be offered.
	if _, ok := SuggestMatch(entries, "s1", t0.Add(25*time.Minute), window); ok {
		t.Error("expected no suggestion once the latest entry is past")
	}

	// Unknown station.
	if _, ok := SuggestMatch(entries, "s9", t0, window); ok {
		t.Error("expected no suggestion for an unknown station")
	}
}
