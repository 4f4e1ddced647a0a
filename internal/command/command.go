// Package command implements the user-facing operations of the food guide.
// Each command is an immutable value built by the parser and executed once
// against a Model. A command either applies its whole change or returns an
// error and leaves the model untouched.
package command

import (
	"fmt"

	"github.com/charleslimjh/tp/internal/domain"
	"github.com/charleslimjh/tp/internal/model"
)

// Model is the part of *model.Model that commands depend on.
// Defining it here (in the consumer package) lets tests substitute a fake.
type Model interface {
	HasEatery(e *domain.Eatery) bool
	AddEatery(e *domain.Eatery)
	SetEatery(target, edited *domain.Eatery) error
	DeleteEatery(target *domain.Eatery) error
	SetEateries(eateries []*domain.Eatery)
	FilteredEateryList() *model.View
	UpdateFilteredEateryList(p model.Predicate)
}

// compile-time check: *model.Model must satisfy Model.
var _ Model = (*model.Model)(nil)

// Command is a single unit of work over the model.
type Command interface {
	// Execute applies the command. On error the model is unchanged.
	Execute(m Model) (Result, error)

	// Equal reports whether other is the same command with the same arguments.
	Equal(other Command) bool
}

// Result is what a successful command reports back to the user.
type Result struct {
	// Feedback is the status text shown to the user.
	Feedback string
	// ShowHelp asks the surface to display the help text.
	ShowHelp bool
	// Exit asks the surface to close.
	Exit bool
}

// targetAt resolves a displayed index against the current filtered view.
// Returns domain.ErrInvalidIndex (carrying the 1-based index) when out of range.
func targetAt(m Model, index domain.Index) (*domain.Eatery, error) {
	view := m.FilteredEateryList()
	if index.ZeroBased() >= view.Len() {
		return nil, invalidIndex(index)
	}
	return view.At(index.ZeroBased()), nil
}

func invalidIndex(index domain.Index) error {
	return fmt.Errorf("%w: %d", domain.ErrInvalidIndex, index.OneBased())
}

// replace commits edited in place of target, refusing the change if edited
// differs from target but equals another eatery already in the guide.
// The filter is reset afterwards so the edited eatery is visible.
func replace(m Model, target, edited *domain.Eatery) error {
	if !target.Equal(edited) && m.HasEatery(edited) {
		return domain.ErrDuplicateEatery
	}
	if err := m.SetEatery(target, edited); err != nil {
		return err
	}
	m.UpdateFilteredEateryList(model.ShowAll)
	return nil
}
