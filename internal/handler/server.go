// Package handler implements the HTTP API of the food guide.
// All handlers are methods on Server. They are split into files by resource
// (health.go, command.go, eatery.go, export.go) but share the Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/charleslimjh/tp/internal/command"
	"github.com/charleslimjh/tp/internal/domain"
)

// FoodGuideServicer defines the operations the command and eatery handlers
// depend on. Defining the interface here (in the consumer package) lets
// handler tests inject a mock without touching storage.
type FoodGuideServicer interface {
	Execute(ctx context.Context, input string) (command.Result, error)
	ListFiltered(ctx context.Context, p domain.PaginationParams) ([]*domain.Eatery, int64, error)
	GetDisplayed(ctx context.Context, index domain.Index) (*domain.Eatery, error)
}

// ExportServicer defines the operation the export handler depends on.
type ExportServicer interface {
	Export(ctx context.Context) ([]domain.ExportRow, error)
}

// Server holds the dependencies shared by every handler.
type Server struct {
	guide  FoodGuideServicer
	export ExportServicer
	log    *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
// A nil logger discards handler logs.
func NewServer(guide FoodGuideServicer, export ExportServicer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Server{guide: guide, export: export, log: log}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil, nil)
}

// Routes returns the API routes without any middleware.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)
	r.Post("/commands", s.PostCommand)
	r.Get("/eateries", s.ListEateries)
	r.Get("/eateries/{index}", s.GetEatery)
	r.Get("/export", s.GetExport)
	return r
}
