// Package repo persists the food guide. Each backend stores the whole ordered
// eatery list; the in-memory model stays the source of truth at runtime.
// No business logic lives here, only storage and type mapping.
package repo

import (
	"context"
	"fmt"
	"io"

	"github.com/charleslimjh/tp/internal/config"
	"github.com/charleslimjh/tp/internal/domain"
)

// EateryRepo loads and saves the full food guide.
// The service layer depends on this interface, not a concrete backend,
// which allows the service to be unit-tested with a mock.
type EateryRepo interface {
	// Load returns every stored eatery in insertion order.
	// An empty or missing store yields an empty slice and no error.
	Load(ctx context.Context) ([]*domain.Eatery, error)

	// Save replaces the stored guide with eateries, keeping their order.
	// Backends with transactions apply the replacement atomically.
	Save(ctx context.Context, eateries []*domain.Eatery) error
}

// Store is an EateryRepo that holds resources which must be released.
type Store interface {
	EateryRepo
	io.Closer
}

// Open returns the backend named by cfg.StorageDriver.
func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.StorageDriver {
	case config.DriverJSON:
		return NewJSONFileRepo(cfg.DataFile), nil
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath)
	case config.DriverPostgres:
		return OpenPostgres(ctx, cfg.DatabaseURL)
	default:
		return nil, fmt.Errorf("repo.Open: unknown storage driver %q", cfg.StorageDriver)
	}
}

// eateryRow is the storage-neutral shape shared by every backend.
type eateryRow struct {
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Cuisine  string   `json:"cuisine"`
	Location string   `json:"location"`
	Tags     []string `json:"tags"`
}

func toRow(e *domain.Eatery) eateryRow {
	tags := e.Tags().Names()
	if tags == nil {
		tags = []string{}
	}
	return eateryRow{
		Name:     e.Name().String(),
		Phone:    e.Phone().String(),
		Cuisine:  e.Cuisine().String(),
		Location: e.Location().String(),
		Tags:     tags,
	}
}

// toEatery re-validates a stored row. A row that no longer passes validation
// is reported rather than silently dropped.
func (r eateryRow) toEatery() (*domain.Eatery, error) {
	e, err := domain.ParseEatery(r.Name, r.Phone, r.Cuisine, r.Location, r.Tags...)
	if err != nil {
		return nil, fmt.Errorf("stored eatery %q: %w", r.Name, err)
	}
	return e, nil
}

// toEateries converts stored rows and rejects a guide holding two Equal
// eateries, which no command can produce.
func toEateries(rows []eateryRow) ([]*domain.Eatery, error) {
	out := make([]*domain.Eatery, 0, len(rows))
	seen := make(map[string]struct{}, len(rows))
	for _, r := range rows {
		e, err := r.toEatery()
		if err != nil {
			return nil, err
		}
		if _, dup := seen[e.Key()]; dup {
			return nil, fmt.Errorf("stored eatery %q: %w", r.Name, domain.ErrDuplicateEatery)
		}
		seen[e.Key()] = struct{}{}
		out = append(out, e)
	}
	return out, nil
}
