// Package model holds the in-memory food guide: the ordered list of eateries
// and the predicate that selects which of them are currently displayed.
//
// The model is single-writer. It does no locking; callers that accept work
// from several goroutines (the service layer) serialise access themselves.
package model

import (
	"fmt"
	"maps"
	"slices"

	"github.com/charleslimjh/tp/internal/domain"
)

// EventKind says which operation changed the model.
type EventKind int

const (
	EventAdded EventKind = iota + 1
	EventUpdated
	EventDeleted
	EventReset
	EventFiltered
)

func (k EventKind) String() string {
	switch k {
	case EventAdded:
		return "added"
	case EventUpdated:
		return "updated"
	case EventDeleted:
		return "deleted"
	case EventReset:
		return "reset"
	case EventFiltered:
		return "filtered"
	default:
		return fmt.Sprintf("EventKind(%d)", int(k))
	}
}

// Mutates reports whether the event changed the backing list, as opposed to
// only the filter. Persistence hooks save on mutating events.
func (k EventKind) Mutates() bool { return k != EventFiltered }

// Event is delivered to listeners after a successful change.
// View is the filtered view as it stands after the change.
type Event struct {
	Kind EventKind
	View *View
}

// Listener receives model events. Listeners run synchronously on the
// goroutine that made the change and must not call back into the model.
type Listener func(Event)

// Model owns the authoritative eatery list and the active filter.
type Model struct {
	eateries  []*domain.Eatery
	predicate Predicate
	view      *View

	listeners map[int]Listener
	nextID    int
}

// New returns a model holding eateries in the given order, showing all.
func New(eateries ...*domain.Eatery) *Model {
	m := &Model{
		eateries:  slices.Clone(eateries),
		predicate: ShowAll,
		listeners: make(map[int]Listener),
	}
	m.refresh()
	return m
}

// Subscribe registers l and returns a function that removes it.
func (m *Model) Subscribe(l Listener) (unsubscribe func()) {
	id := m.nextID
	m.nextID++
	m.listeners[id] = l
	return func() { delete(m.listeners, id) }
}

// HasEatery reports whether an eatery Equal to e is in the food guide.
func (m *Model) HasEatery(e *domain.Eatery) bool {
	return m.indexOf(e) >= 0
}

// AddEatery appends e to the end of the food guide.
func (m *Model) AddEatery(e *domain.Eatery) {
	m.eateries = append(m.eateries, e)
	m.changed(EventAdded)
}

// SetEatery replaces target with edited, keeping its position.
// Returns domain.ErrNotFound if target is not in the food guide.
func (m *Model) SetEatery(target, edited *domain.Eatery) error {
	i := m.indexOf(target)
	if i < 0 {
		return fmt.Errorf("model.Model.SetEatery: %w", domain.ErrNotFound)
	}
	m.eateries[i] = edited
	m.changed(EventUpdated)
	return nil
}

// DeleteEatery removes target from the food guide.
// Returns domain.ErrNotFound if target is not in the food guide.
func (m *Model) DeleteEatery(target *domain.Eatery) error {
	i := m.indexOf(target)
	if i < 0 {
		return fmt.Errorf("model.Model.DeleteEatery: %w", domain.ErrNotFound)
	}
	m.eateries = slices.Delete(m.eateries, i, i+1)
	m.changed(EventDeleted)
	return nil
}

// SetEateries replaces the whole food guide.
func (m *Model) SetEateries(eateries []*domain.Eatery) {
	m.eateries = slices.Clone(eateries)
	m.changed(EventReset)
}

// Eateries returns a copy of the full list in insertion order.
func (m *Model) Eateries() []*domain.Eatery {
	return slices.Clone(m.eateries)
}

// UpdateFilteredEateryList replaces the active predicate. A nil predicate
// is treated as ShowAll.
func (m *Model) UpdateFilteredEateryList(p Predicate) {
	if p == nil {
		p = ShowAll
	}
	m.predicate = p
	m.changed(EventFiltered)
}

// Predicate returns the active filter.
func (m *Model) Predicate() Predicate {
	return m.predicate
}

// FilteredEateryList returns the current filtered view.
func (m *Model) FilteredEateryList() *View {
	return m.view
}

// indexOf prefers the exact entry, so an eatery taken from the view is found
// at its own position even when an Equal one sits earlier in the list.
func (m *Model) indexOf(e *domain.Eatery) int {
	if i := slices.Index(m.eateries, e); i >= 0 {
		return i
	}
	return slices.IndexFunc(m.eateries, e.Equal)
}

func (m *Model) refresh() {
	m.view = newView(m.eateries, m.predicate)
}

func (m *Model) changed(kind EventKind) {
	m.refresh()
	ev := Event{Kind: kind, View: m.view}
	for _, id := range slices.Sorted(maps.Keys(m.listeners)) {
		m.listeners[id](ev)
	}
}
