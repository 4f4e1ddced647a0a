package domain

import "fmt"

// Index is a position in the displayed (filtered) eatery list.
// Users speak 1-based indices; code works with 0-based ones. Index keeps the
// conversion in one place so 0-based values never reach user-facing text.
type Index struct {
	zeroBased int
}

// NewIndexFromOneBased converts a user-supplied position into an Index.
// Returns ErrValidation if oneBased is less than 1.
func NewIndexFromOneBased(oneBased int) (Index, error) {
	if oneBased < 1 {
		return Index{}, fmt.Errorf("%w: index must be a positive integer", ErrValidation)
	}
	return Index{zeroBased: oneBased - 1}, nil
}

// NewIndexFromZeroBased builds an Index from an internal position.
// Returns ErrValidation if zeroBased is negative.
func NewIndexFromZeroBased(zeroBased int) (Index, error) {
	if zeroBased < 0 {
		return Index{}, fmt.Errorf("%w: index must not be negative", ErrValidation)
	}
	return Index{zeroBased: zeroBased}, nil
}

// ZeroBased returns the position for slice access.
func (i Index) ZeroBased() int { return i.zeroBased }

// OneBased returns the position as the user sees it.
func (i Index) OneBased() int { return i.zeroBased + 1 }

func (i Index) String() string { return fmt.Sprintf("%d", i.OneBased()) }
