package model

import (
	"fmt"
	"iter"
	"slices"

	"github.com/charleslimjh/tp/internal/domain"
)

// View is a read-only snapshot of the filtered eatery list. The model builds
// a new View every time its predicate or backing list changes, so a View held
// by a renderer never changes underneath it.
type View struct {
	items []*domain.Eatery
}

func newView(all []*domain.Eatery, p Predicate) *View {
	items := make([]*domain.Eatery, 0, len(all))
	for _, e := range all {
		if p.Test(e) {
			items = append(items, e)
		}
	}
	return &View{items: items}
}

// Len returns the number of eateries in the view.
func (v *View) Len() int { return len(v.items) }

// At returns the eatery at zero-based position i. It panics if i is out of
// range; callers bounds-check against Len first.
func (v *View) At(i int) *domain.Eatery { return v.items[i] }

// All iterates over the view in display order.
func (v *View) All() iter.Seq2[int, *domain.Eatery] {
	return slices.All(v.items)
}

// Slice returns a copy of the view's eateries.
func (v *View) Slice() []*domain.Eatery {
	return slices.Clone(v.items)
}

// Remove always fails: the view is read-only. Mutations go through Model.
func (v *View) Remove(i int) error {
	return fmt.Errorf("model.View.Remove: %w", domain.ErrUnsupportedOperation)
}

// Set always fails: the view is read-only. Mutations go through Model.
func (v *View) Set(i int, e *domain.Eatery) error {
	return fmt.Errorf("model.View.Set: %w", domain.ErrUnsupportedOperation)
}
