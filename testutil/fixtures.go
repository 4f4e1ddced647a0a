package testutil

import (
	"testing"

	"github.com/charleslimjh/tp/internal/domain"
)

// Eatery builds a valid eatery with fixed contact details. Two calls with the
// same name and tags return Equal eateries.
func Eatery(t testing.TB, name string, tags ...string) *domain.Eatery {
	t.Helper()
	e, err := domain.ParseEatery(name, "94351253", "Chinese", "Jurong West St 65", tags...)
	if err != nil {
		t.Fatalf("testutil.Eatery(%q): %v", name, err)
	}
	return e
}

// TypicalEateries returns three eateries with distinct names, the first two
// tagged.
func TypicalEateries(t testing.TB) []*domain.Eatery {
	t.Helper()
	return []*domain.Eatery{
		Eatery(t, "Alice Pauline", "friends"),
		Eatery(t, "Benson Meier", "owesMoney", "friends"),
		Eatery(t, "Carl Kurz"),
	}
}
