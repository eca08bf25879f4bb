package scoreboard

import "time"

// SuggestMatch finds the entry an admin most likely wants to record for a
// station: the latest one that has already started. It is returned only
// while still live; entries past their window yield ok=false and the
// form stays blank.
func SuggestMatch(entries []ScheduleEntry, stationID string, now time.Time, window time.Duration) (ScheduleEntry, bool) {
	var latest ScheduleEntry
	found := false
	for _, e := range entries {
		if e.StationID != stationID || e.StartTime.After(now) {
			continue
		}
		if !found || e.StartTime.After(latest.StartTime) {
			latest = e
			found = true
		}
	}
	if !found || Classify(now, latest.StartTime, window) != PhaseLive {
		return ScheduleEntry{}, false
	}
	return latest, true
}
