package httpapi

import "net/http"

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}

// RunSeed reloads the exports into the store. Concurrent calls queue behind
// the running seed.
func (h *Handler) RunSeed(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunSeed")
	defer span.End()

	result, err := h.seedService.Seed(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "seed failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}
