package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/charleslimjh/tp/internal/middleware"
)

// RouterOptions configures the middleware stack built by NewRouter.
type RouterOptions struct {
	Logger       *slog.Logger
	CORSOrigins  []string
	MaxBodyBytes int64
}

// NewRouter wraps the server's routes in the standard middleware stack.
//
// Middleware is applied in order: RequestID → RealIP → Logger → Recoverer →
// CORS → MaxBodySize. RequestID comes first so every log line carries it;
// Recoverer sits inside the logger so a panic is still logged as a 500.
func NewRouter(s *Server, opts RouterOptions) http.Handler {
	if opts.Logger == nil {
		opts.Logger = s.log
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(opts.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(opts.CORSOrigins))
	if opts.MaxBodyBytes > 0 {
		r.Use(middleware.NewMaxBodySizeHandler(opts.MaxBodyBytes))
	}

	r.Mount("/", s.Routes())
	return r
}
