package server

import (
	"encoding/json"
	"net/http"

	openapi "github.com/swaggest/openapi-go"
	"github.com/swaggest/openapi-go/openapi3"

	"github.com/fieldday/scoreboard/internal/scoreboard"
)

// ErrorResponse is returned for all error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

func newOpenAPISpec() *openapi3.Spec {
	r := openapi3.NewReflector()
	r.Spec.Info.Title = "Sports Day Scoreboard API"
	r.Spec.Info.Version = "0.1.0"
	r.Spec.Info.WithDescription("Backend API for the school sports-day scoreboard.")

	// GET /healthz
	getHealthz, _ := r.NewOperationContext(http.MethodGet, "/healthz")
	getHealthz.SetSummary("Health check")
	getHealthz.SetDescription("Returns the health status of backend dependencies.")
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getHealthz.AddRespStructure(HealthResponse{}, openapi.WithHTTPStatus(http.StatusServiceUnavailable))
	_ = r.AddOperation(getHealthz)

	// GET /ws/echo
	getWSEcho, _ := r.NewOperationContext(http.MethodGet, "/ws/echo")
	getWSEcho.SetSummary("WebSocket echo")
	getWSEcho.SetDescription("Upgrades to a WebSocket connection that echoes messages back.")
	getWSEcho.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusSwitchingProtocols),
		openapi.WithContentType("text/plain"))
	_ = r.AddOperation(getWSEcho)

	// GET /api/teams
	listTeams, _ := r.NewOperationContext(http.MethodGet, "/api/teams")
	listTeams.SetSummary("List teams")
	listTeams.SetDescription("Returns all teams ordered by name.")
	listTeams.AddRespStructure([]scoreboard.Team{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listTeams)

	// GET /api/teams/{teamID}
	getTeam, _ := r.NewOperationContext(http.MethodGet, "/api/teams/{teamID}")
	getTeam.SetSummary("Get team")
	getTeam.SetDescription("Returns a single team with its current point total.")
	getTeam.AddRespStructure(scoreboard.Team{}, openapi.WithHTTPStatus(http.StatusOK))
	getTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getTeam)

	// GET /api/teams/{teamID}/schedule
	teamSchedule, _ := r.NewOperationContext(http.MethodGet, "/api/teams/{teamID}/schedule")
	teamSchedule.SetSummary("Team schedule")
	teamSchedule.SetDescription("Returns the team's matches ascending by start time, each annotated with its phase and resolved opponent name.")
	teamSchedule.AddRespStructure([]scoreboard.TeamMatch{}, openapi.WithHTTPStatus(http.StatusOK))
	teamSchedule.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(teamSchedule)

	// GET /api/teams/{teamID}/results
	teamResults, _ := r.NewOperationContext(http.MethodGet, "/api/teams/{teamID}/results")
	teamResults.SetSummary("Team result history")
	teamResults.SetDescription("Returns the team's recorded results, newest first.")
	teamResults.AddRespStructure([]ResultItem{}, openapi.WithHTTPStatus(http.StatusOK))
	teamResults.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(teamResults)

	// GET /api/stations
	listStations, _ := r.NewOperationContext(http.MethodGet, "/api/stations")
	listStations.SetSummary("List stations")
	listStations.SetDescription("Returns all activity stations ordered by name.")
	listStations.AddRespStructure([]scoreboard.Station{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(listStations)

	// GET /api/leaderboard
	getLeaderboard, _ := r.NewOperationContext(http.MethodGet, "/api/leaderboard")
	getLeaderboard.SetSummary("Leaderboard")
	getLeaderboard.SetDescription("Returns teams ranked by total points, recomputed on every request.")
	getLeaderboard.AddRespStructure([]scoreboard.LeaderboardRow{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getLeaderboard)

	// GET /api/schedule
	getSchedule, _ := r.NewOperationContext(http.MethodGet, "/api/schedule")
	getSchedule.SetSummary("Full schedule")
	getSchedule.SetDescription("Returns every schedule entry with joined display names, ascending by start time.")
	getSchedule.AddRespStructure([]scoreboard.ScheduleEntry{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getSchedule)

	// GET /api/schedule/current
	getCurrent, _ := r.NewOperationContext(http.MethodGet, "/api/schedule/current")
	getCurrent.SetSummary("Current matches")
	getCurrent.SetDescription("Returns the live matches, or the full next round when nothing is live.")
	getCurrent.AddRespStructure([]scoreboard.ScheduleEntry{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(getCurrent)

	// GET /api/events
	getEvents, _ := r.NewOperationContext(http.MethodGet, "/api/events")
	getEvents.SetSummary("SSE change feed")
	getEvents.SetDescription("Server-Sent Events stream of collection change notifications. Events carry no deltas; clients re-fetch on every event.")
	getEvents.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK),
		openapi.WithContentType("text/event-stream"))
	_ = r.AddOperation(getEvents)

	// GET /api/device/{deviceID}/team
	getDeviceTeam, _ := r.NewOperationContext(http.MethodGet, "/api/device/{deviceID}/team")
	getDeviceTeam.SetSummary("Get device team selection")
	getDeviceTeam.SetDescription("Returns the sticky team selection stored for a device.")
	getDeviceTeam.AddRespStructure(DeviceTeamResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getDeviceTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getDeviceTeam)

	// PUT /api/device/{deviceID}/team
	setDeviceTeam, _ := r.NewOperationContext(http.MethodPut, "/api/device/{deviceID}/team")
	setDeviceTeam.SetSummary("Set device team selection")
	setDeviceTeam.SetDescription("Stores the sticky team selection for a device.")
	setDeviceTeam.AddReqStructure(DeviceTeamRequest{})
	setDeviceTeam.AddRespStructure(DeviceTeamResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	setDeviceTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	setDeviceTeam.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(setDeviceTeam)

	// DELETE /api/device/{deviceID}/team
	clearDeviceTeam, _ := r.NewOperationContext(http.MethodDelete, "/api/device/{deviceID}/team")
	clearDeviceTeam.SetSummary("Clear device team selection")
	clearDeviceTeam.SetDescription("Removes the sticky team selection stored for a device.")
	clearDeviceTeam.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(clearDeviceTeam)

	// POST /api/admin/results
	recordResult, _ := r.NewOperationContext(http.MethodPost, "/api/admin/results")
	recordResult.SetSummary("Record match result")
	recordResult.SetDescription("Atomically creates the result and adds its points to the team's total.")
	recordResult.AddReqStructure(RecordResultRequest{})
	recordResult.AddRespStructure(ResultItem{}, openapi.WithHTTPStatus(http.StatusCreated))
	recordResult.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusBadRequest))
	recordResult.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(recordResult)

	// DELETE /api/admin/results/{resultID}
	deleteResult, _ := r.NewOperationContext(http.MethodDelete, "/api/admin/results/{resultID}")
	deleteResult.SetSummary("Delete match result")
	deleteResult.SetDescription("Atomically removes the result and reverses its point contribution.")
	deleteResult.AddRespStructure(nil, openapi.WithHTTPStatus(http.StatusOK))
	deleteResult.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(deleteResult)

	// GET /api/admin/results/recent
	recentResults, _ := r.NewOperationContext(http.MethodGet, "/api/admin/results/recent")
	recentResults.SetSummary("Recent results")
	recentResults.SetDescription("Returns the ten most recently recorded results with joined names.")
	recentResults.AddRespStructure([]ResultItem{}, openapi.WithHTTPStatus(http.StatusOK))
	_ = r.AddOperation(recentResults)

	// GET /api/admin/stations/{stationID}/suggestion
	getSuggestion, _ := r.NewOperationContext(http.MethodGet, "/api/admin/stations/{stationID}/suggestion")
	getSuggestion.SetSummary("Match suggestion")
	getSuggestion.SetDescription("Returns the match currently live at a station to pre-fill the recording form, or found=false when nothing is live.")
	getSuggestion.AddRespStructure(SuggestionResponse{}, openapi.WithHTTPStatus(http.StatusOK))
	getSuggestion.AddRespStructure(ErrorResponse{}, openapi.WithHTTPStatus(http.StatusNotFound))
	_ = r.AddOperation(getSuggestion)

	return r.Spec
}

func handleOpenAPI() http.HandlerFunc {
	spec := newOpenAPISpec()
	data, _ := json.MarshalIndent(spec, "", "  ")

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
