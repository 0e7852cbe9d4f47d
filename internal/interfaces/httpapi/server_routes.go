package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

// registerPipelineRoutes serves views computed from the live exports.
func registerPipelineRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/leaderboard", handler.GetLeaderboard)
	mux.HandleFunc("GET /v1/players/{playerName}/data", handler.GetPlayerData)
	mux.HandleFunc("GET /v1/players/{playerName}/stats", handler.GetPlayerStats)
	mux.HandleFunc("GET /v1/draft/picks", handler.ListDraftPicks)
	mux.HandleFunc("GET /v1/draft/complete", handler.GetDraftBoard)
	mux.HandleFunc("GET /v1/schedule", handler.GetSchedule)
	mux.HandleFunc("GET /v1/league-table", handler.GetLeagueTable)
}

// registerStoreRoutes serves the seeded relational copy.
func registerStoreRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/leagues/{leagueID}", handler.GetLeague)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/participants", handler.ListParticipants)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/picks", handler.ListLeaguePicks)
	mux.HandleFunc("GET /v1/leagues/{leagueID}/leaderboard", handler.GetLeagueLeaderboard)
	mux.HandleFunc("GET /v1/draft/matrix", handler.GetDraftMatrix)
	mux.HandleFunc("GET /v1/sports", handler.ListSports)
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("GET /v1/events/upcoming", handler.ListUpcomingEvents)
}

func registerInternalJobRoutes(mux *http.ServeMux, handler *Handler, internalJobToken string) {
	mux.Handle("POST /v1/internal/seed", RequireInternalJobToken(internalJobToken, http.HandlerFunc(handler.RunSeed)))
}
