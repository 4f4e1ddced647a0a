package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charleslimjh/tp/internal/domain"
	"github.com/charleslimjh/tp/internal/model"
	"github.com/charleslimjh/tp/testutil"
)

// ---- helpers ---------------------------------------------------------------

func eatery(t *testing.T, name string, tags ...string) *domain.Eatery {
	return testutil.Eatery(t, name, tags...)
}

func names(v *model.View) []string {
	var out []string
	for _, e := range v.All() {
		out = append(out, e.Name().String())
	}
	return out
}

// recorder collects every event the model emits.
type recorder struct {
	events []model.Event
}

func (r *recorder) listen(ev model.Event) { r.events = append(r.events, ev) }

// ---- HasEatery -------------------------------------------------------------

func TestModel_HasEatery_StrictEquality(t *testing.T) {
	a := eatery(t, "Alice", "cheap")
	m := model.New(a)

	assert.True(t, m.HasEatery(eatery(t, "Alice", "cheap")))
	assert.False(t, m.HasEatery(eatery(t, "Alice")), "same name but different tags is not held")
	assert.False(t, m.HasEatery(nil))
}

// ---- mutations -------------------------------------------------------------

func TestModel_AddEatery_AppendsAndNotifies(t *testing.T) {
	m := model.New(eatery(t, "Alice"))
	rec := &recorder{}
	m.Subscribe(rec.listen)

	m.AddEatery(eatery(t, "Bob"))

	assert.Equal(t, []string{"Alice", "Bob"}, names(m.FilteredEateryList()))
	require.Len(t, rec.events, 1)
	assert.Equal(t, model.EventAdded, rec.events[0].Kind)
	assert.Equal(t, 2, rec.events[0].View.Len())
}

func TestModel_SetEatery_PreservesPosition(t *testing.T) {
	a, b, c := eatery(t, "Alice"), eatery(t, "Bob"), eatery(t, "Carl")
	m := model.New(a, b, c)

	err := m.SetEatery(b, eatery(t, "Bob", "halal"))

	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Bob", "Carl"}, names(m.FilteredEateryList()))
	assert.Equal(t, []string{"halal"}, m.FilteredEateryList().At(1).Tags().Names())
}

func TestModel_SetEatery_EqualPair_TargetsGivenEntry(t *testing.T) {
	first, b, second := eatery(t, "Alice"), eatery(t, "Bob"), eatery(t, "Alice")
	m := model.New(first, b, second)

	require.NoError(t, m.SetEatery(second, eatery(t, "Alice", "cheap")))

	view := m.FilteredEateryList()
	assert.Empty(t, view.At(0).Tags().Names())
	assert.Equal(t, []string{"cheap"}, view.At(2).Tags().Names())
}

func TestModel_DeleteEatery_EqualPair_TargetsGivenEntry(t *testing.T) {
	first, b, second := eatery(t, "Alice"), eatery(t, "Bob"), eatery(t, "Alice")
	m := model.New(first, b, second)

	require.NoError(t, m.DeleteEatery(second))

	assert.Equal(t, []string{"Alice", "Bob"}, names(m.FilteredEateryList()))
	assert.Same(t, first, m.FilteredEateryList().At(0))
}

func TestModel_SetEatery_NotFound(t *testing.T) {
	m := model.New(eatery(t, "Alice"))
	rec := &recorder{}
	m.Subscribe(rec.listen)

	err := m.SetEatery(eatery(t, "Bob"), eatery(t, "Carl"))

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Empty(t, rec.events, "failed operations must not notify")
}

func TestModel_DeleteEatery(t *testing.T) {
	a, b := eatery(t, "Alice"), eatery(t, "Bob")
	m := model.New(a, b)

	require.NoError(t, m.DeleteEatery(a))

	assert.Equal(t, []string{"Bob"}, names(m.FilteredEateryList()))
	assert.ErrorIs(t, m.DeleteEatery(a), domain.ErrNotFound)
}

func TestModel_SetEateries_Reset(t *testing.T) {
	m := model.New(eatery(t, "Alice"))
	rec := &recorder{}
	m.Subscribe(rec.listen)

	m.SetEateries(nil)

	assert.Equal(t, 0, m.FilteredEateryList().Len())
	require.Len(t, rec.events, 1)
	assert.Equal(t, model.EventReset, rec.events[0].Kind)
	assert.True(t, rec.events[0].Kind.Mutates())
}

func TestModel_Eateries_ReturnsCopy(t *testing.T) {
	m := model.New(eatery(t, "Alice"))

	got := m.Eateries()
	got[0] = nil

	assert.NotNil(t, m.Eateries()[0])
}

// ---- filtering -------------------------------------------------------------

func TestModel_UpdateFilteredEateryList(t *testing.T) {
	m := model.New(eatery(t, "Alice Pauline"), eatery(t, "Bob Choo", "halal"), eatery(t, "Carl Kurz"))
	rec := &recorder{}
	m.Subscribe(rec.listen)

	m.UpdateFilteredEateryList(model.NameContainsKeywords{Keywords: []string{"bob", "CARL"}})
	assert.Equal(t, []string{"Bob Choo", "Carl Kurz"}, names(m.FilteredEateryList()))

	m.UpdateFilteredEateryList(model.TagContainsKeywords{Keywords: []string{"HALAL"}})
	assert.Equal(t, []string{"Bob Choo"}, names(m.FilteredEateryList()))

	m.UpdateFilteredEateryList(model.ShowAll)
	assert.Equal(t, 3, m.FilteredEateryList().Len())

	require.Len(t, rec.events, 3)
	assert.False(t, rec.events[0].Kind.Mutates())
}

func TestModel_FilteredView_FollowsBackingList(t *testing.T) {
	m := model.New(eatery(t, "Alice"), eatery(t, "Bob"))
	m.UpdateFilteredEateryList(model.NameContainsKeywords{Keywords: []string{"Bob"}})

	m.AddEatery(eatery(t, "Bob Two"))
	m.AddEatery(eatery(t, "Carl"))

	// The view stays a subsequence of the backing list consistent with the predicate.
	assert.Equal(t, []string{"Bob", "Bob Two"}, names(m.FilteredEateryList()))
}

func TestModel_NilPredicate_ShowsAll(t *testing.T) {
	m := model.New(eatery(t, "Alice"), eatery(t, "Bob"))
	m.UpdateFilteredEateryList(model.PredicateFunc(func(*domain.Eatery) bool { return false }))
	require.Equal(t, 0, m.FilteredEateryList().Len())

	m.UpdateFilteredEateryList(nil)

	assert.Equal(t, 2, m.FilteredEateryList().Len())
}

// ---- view is read-only -----------------------------------------------------

func TestView_RejectsMutation(t *testing.T) {
	a := eatery(t, "Alice")
	m := model.New(a)
	v := m.FilteredEateryList()

	assert.ErrorIs(t, v.Remove(0), domain.ErrUnsupportedOperation)
	assert.ErrorIs(t, v.Set(0, eatery(t, "Bob")), domain.ErrUnsupportedOperation)

	s := v.Slice()
	s[0] = nil
	assert.Same(t, a, v.At(0))
}

func TestView_SnapshotIsStable(t *testing.T) {
	m := model.New(eatery(t, "Alice"))
	before := m.FilteredEateryList()

	m.AddEatery(eatery(t, "Bob"))

	assert.Equal(t, 1, before.Len())
	assert.Equal(t, 2, m.FilteredEateryList().Len())
}

// ---- subscription ----------------------------------------------------------

func TestModel_Unsubscribe(t *testing.T) {
	m := model.New()
	rec := &recorder{}
	unsubscribe := m.Subscribe(rec.listen)

	m.AddEatery(eatery(t, "Alice"))
	unsubscribe()
	m.AddEatery(eatery(t, "Bob"))

	assert.Len(t, rec.events, 1)
}
