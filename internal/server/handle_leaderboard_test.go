package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fieldday/scoreboard/internal/scoreboard"
)

func TestLeaderboardRanking(t *testing.T) {
	s := setupStore(t)
	insertTeam(t, s, "t1", "Alpha", "7th", 10)
	insertTeam(t, s, "t2", "Beta", "7th", 20)
	insertTeam(t, s, "t3", "Gamma", "8th", 20)
	r := testRouter(t, s)

	rows := fetchLeaderboard(t, r)
	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}

	want := []struct {
		name   string
		points int
		rank   int
	}{
		{"Beta", 20, 1},
		{"Gamma", 20, 2},
		{"Alpha", 10, 3},
	}
	for i, w := range want {
		if rows[i].Name != w.name || rows[i].TotalPoints != w.points || rows[i].Rank != w.rank {
			t.Errorf("row %d = %+v, want %+v", i, rows[i], w)
		}
	}
}

func TestLeaderboardEmpty(t *testing.T) {
	s := setupStore(t)
	r := testRouter(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/leaderboard", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var rows []scoreboard.LeaderboardRow
	if err := json.NewDecoder(w.Body).Decode(&rows); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %d", len(rows))
	}
}

func TestListTeamsOrderedByName(t *testing.T) {
	s := setupStore(t)
	insertTeam(t, s, "t1", "Class 8B", "8th", 0)
	insertTeam(t, s, "t2", "Class 7A", "7th", 0)
	insertTeam(t, s, "t3", "Class 8A", "8th", 0)
	r := testRouter(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var teams []scoreboard.Team
	json.NewDecoder(w.Body).Decode(&teams)
	got := make([]string, len(teams))
	for i, team := range teams {
		got[i] = team.Name
	}
	want := []string{"Class 7A", "Class 8A", "Class 8B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("team order = %v, want %v", got, want)
		}
	}
}

func TestGetTeam(t *testing.T) {
	s := setupStore(t)
	insertTeam(t, s, "t1", "Class 7A", "7th", 42)
	r := testRouter(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/teams/t1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var team scoreboard.Team
	json.NewDecoder(w.Body).Decode(&team)
	if team.Name != "Class 7A" || team.TotalPoints != 42 {
		t.Errorf("team = %+v", team)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/teams/ghost", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestListStations(t *testing.T) {
	s := setupStore(t)
	insertStation(t, s, "s1", "Tug of War")
	insertStation(t, s, "s2", "Relay")
	r := testRouter(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/stations", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var stations []scoreboard.Station
	json.NewDecoder(w.Body).Decode(&stations)
	if len(stations) != 2 {
		t.Fatalf("expected 2 stations, got %d", len(stations))
	}
	if stations[0].Name != "Relay" {
		t.Errorf("expected name order, got %s first", stations[0].Name)
	}
}
