// Package service contains the application logic for the food guide.
// It owns the in-memory model, turns command text into model changes and
// writes the guide back to storage after every change.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charleslimjh/tp/internal/command"
	"github.com/charleslimjh/tp/internal/domain"
	"github.com/charleslimjh/tp/internal/model"
	"github.com/charleslimjh/tp/internal/parser"
	"github.com/charleslimjh/tp/internal/repo"
)

// FoodGuideService serialises access to the model. Every method is safe for
// concurrent use.
type FoodGuideService struct {
	repo repo.EateryRepo
	log  *slog.Logger

	mu    sync.Mutex
	model *model.Model
	dirty bool
}

// NewFoodGuideService loads the stored guide and returns a service over it.
func NewFoodGuideService(ctx context.Context, r repo.EateryRepo, log *slog.Logger) (*FoodGuideService, error) {
	eateries, err := r.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.NewFoodGuideService: load: %w", err)
	}

	s := &FoodGuideService{
		repo:  r,
		log:   log,
		model: model.New(eateries...),
	}
	s.model.Subscribe(s.onModelEvent)

	log.Info("food guide loaded", "eateries", len(eateries))
	return s, nil
}

// onModelEvent runs under s.mu, on the goroutine executing the command.
func (s *FoodGuideService) onModelEvent(ev model.Event) {
	if ev.Kind.Mutates() {
		s.dirty = true
	}
	s.log.Debug("model changed", "event", ev.Kind.String(), "displayed", ev.View.Len())
}

// Execute parses input, runs the command against the model and, if the
// command changed the guide, saves it. When the save fails the list and
// the filter are restored so memory and storage do not drift apart.
func (s *FoodGuideService) Execute(ctx context.Context, input string) (command.Result, error) {
	cmd, err := parser.Parse(input)
	if err != nil {
		return command.Result{}, fmt.Errorf("service.FoodGuideService.Execute: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	before, filter := s.model.Eateries(), s.model.Predicate()
	s.dirty = false

	res, err := cmd.Execute(s.model)
	if err != nil {
		return command.Result{}, fmt.Errorf("service.FoodGuideService.Execute: %w", err)
	}

	if s.dirty {
		if err := s.repo.Save(ctx, s.model.Eateries()); err != nil {
			s.model.SetEateries(before)
			s.model.UpdateFilteredEateryList(filter)
			s.dirty = false
			return command.Result{}, fmt.Errorf("service.FoodGuideService.Execute: save: %w", err)
		}
		s.dirty = false
	}

	s.log.Info("command executed",
		"command", commandWord(input),
		"displayed", s.model.FilteredEateryList().Len(),
		"total", len(s.model.Eateries()),
	)
	return res, nil
}

// ListFiltered returns one page of the filtered view and the view's size.
func (s *FoodGuideService) ListFiltered(ctx context.Context, p domain.PaginationParams) ([]*domain.Eatery, int64, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}
	s.mu.Lock()
	view := s.model.FilteredEateryList()
	s.mu.Unlock()

	start, end := p.Bounds(view.Len())
	return view.Slice()[start:end], int64(view.Len()), nil
}

// GetDisplayed returns the eatery shown at index in the filtered view.
// Returns domain.ErrInvalidIndex when index is past the end of the view.
func (s *FoodGuideService) GetDisplayed(ctx context.Context, index domain.Index) (*domain.Eatery, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	view := s.model.FilteredEateryList()
	s.mu.Unlock()

	if index.ZeroBased() >= view.Len() {
		return nil, fmt.Errorf("service.FoodGuideService.GetDisplayed: %w: %d", domain.ErrInvalidIndex, index.OneBased())
	}
	return view.At(index.ZeroBased()), nil
}

// Export returns every eatery in the guide, ignoring the active filter.
func (s *FoodGuideService) Export(ctx context.Context) ([]domain.ExportRow, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	eateries := s.model.Eateries()
	s.mu.Unlock()

	return domain.NewExportRows(eateries), nil
}

func commandWord(input string) string {
	word, _, _ := strings.Cut(strings.TrimSpace(input), " ")
	return word
}
