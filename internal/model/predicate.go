package model

import (
	"slices"
	"strings"

	"github.com/charleslimjh/tp/internal/domain"
)

// Predicate decides whether an eatery belongs in the filtered view.
type Predicate interface {
	Test(e *domain.Eatery) bool
}

// PredicateFunc adapts a plain function to Predicate.
type PredicateFunc func(e *domain.Eatery) bool

// Test calls f(e).
func (f PredicateFunc) Test(e *domain.Eatery) bool { return f(e) }

type showAll struct{}

func (showAll) Test(*domain.Eatery) bool { return true }

// ShowAll matches every eatery. Passing it to UpdateFilteredEateryList
// resets the view to the whole food guide.
var ShowAll Predicate = showAll{}

// NameContainsKeywords matches eateries whose name contains any of Keywords
// as a whole word, ignoring case.
type NameContainsKeywords struct {
	Keywords []string
}

func (p NameContainsKeywords) Test(e *domain.Eatery) bool {
	words := strings.Fields(e.Name().String())
	return slices.ContainsFunc(p.Keywords, func(k string) bool {
		return slices.ContainsFunc(words, func(w string) bool { return strings.EqualFold(w, k) })
	})
}

// Equal reports whether both predicates hold the same keywords in order.
func (p NameContainsKeywords) Equal(other NameContainsKeywords) bool {
	return slices.Equal(p.Keywords, other.Keywords)
}

// TagContainsKeywords matches eateries carrying at least one tag equal to
// one of Keywords, ignoring case.
type TagContainsKeywords struct {
	Keywords []string
}

func (p TagContainsKeywords) Test(e *domain.Eatery) bool {
	tags := e.Tags().Names()
	return slices.ContainsFunc(p.Keywords, func(k string) bool {
		return slices.ContainsFunc(tags, func(t string) bool { return strings.EqualFold(t, k) })
	})
}

// Equal reports whether both predicates hold the same keywords in order.
func (p TagContainsKeywords) Equal(other TagContainsKeywords) bool {
	return slices.Equal(p.Keywords, other.Keywords)
}
