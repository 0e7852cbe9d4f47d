package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeaderboard")
	defer span.End()

	items, err := h.pipelineService.Leaderboard(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get leaderboard failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetPlayerData(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerData")
	defer span.End()

	playerName := strings.TrimSpace(r.PathValue("playerName"))
	item, err := h.pipelineService.PlayerData(ctx, playerName)
	if err != nil {
		h.logger.WarnContext(ctx, "get player data failed", "player_name", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) GetPlayerStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerStats")
	defer span.End()

	playerName := strings.TrimSpace(r.PathValue("playerName"))
	item, err := h.pipelineService.PlayerStats(ctx, playerName)
	if err != nil {
		h.logger.WarnContext(ctx, "get player stats failed", "player_name", playerName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, item)
}

func (h *Handler) ListDraftPicks(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListDraftPicks")
	defer span.End()

	items, err := h.pipelineService.DraftPicks(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list draft picks failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetDraftBoard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetDraftBoard")
	defer span.End()

	board, err := h.pipelineService.DraftBoard(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get draft board failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, draftBoardToDTO(board))
}

func (h *Handler) GetSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSchedule")
	defer span.End()

	items, err := h.pipelineService.Schedule(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "get schedule failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) GetLeagueTable(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetLeagueTable")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, h.pipelineService.Leagues())
}
