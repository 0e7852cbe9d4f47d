package httpapi

import (
	"net/http"
	"runtime/debug"

	"github.com/riskibarqy/sports-challenge/internal/platform/logging"
)

// NewRouter wires every route behind the middleware chain. From the outside
// in: tracing, access log, CORS, panic recovery.
func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	swaggerEnabled bool,
	corsAllowedOrigins []string,
	internalJobToken string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}
	logger = logger.Named("httpapi")

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, swaggerEnabled)
	registerPipelineRoutes(mux, handler)
	registerStoreRoutes(mux, handler)
	registerInternalJobRoutes(mux, handler, internalJobToken)

	var chain http.Handler = mux
	chain = recoverPanic(logger, chain)
	chain = CORS(corsAllowedOrigins, chain)
	chain = RequestLogging(logger, chain)
	return RequestTracing(chain)
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			logger.ErrorContext(r.Context(), "panic recovered",
				"panic", rec,
				"path", r.URL.Path,
				"stack", string(debug.Stack()),
			)
			writeInternalError(r.Context(), w)
		}()
		next.ServeHTTP(w, r)
	})
}
