package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"dynamocards/internal/handlers"
	"dynamocards/internal/service"
)

// Deps holds dependencies for the HTTP router.
type Deps struct {
	AnalyzeService service.AnalyzeService
	Logger         *slog.Logger
	RequestTimeout time.Duration // 0 disables the timeout middleware
}

// NewRouter creates a new HTTP router with the provided dependencies.
func NewRouter(deps *Deps) http.Handler {
	r := chi.NewRouter()

	// Add chi middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(LoggerMiddleware(deps.Logger))
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	if deps.RequestTimeout > 0 {
		r.Use(middleware.Timeout(deps.RequestTimeout))
	}

	// Any origin, method and header; no authentication. Credentialed requests
	// need the caller's origin echoed back instead of "*".
	r.Use(cors.Handler(cors.Options{
		AllowOriginFunc:  func(r *http.Request, origin string) bool { return true },
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS", "HEAD"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{handlers.AnalysisIDHeader},
		AllowCredentials: true,
		MaxAge:           600,
	}))

	analyzeHandler := handlers.NewAnalyzeHandler(deps.AnalyzeService)
	r.Method(http.MethodPost, "/analyze_video", analyzeHandler)

	return r
}
