package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charleslimjh/tp/internal/domain"
	"github.com/charleslimjh/tp/internal/parser"
	"github.com/charleslimjh/tp/internal/repo"
	"github.com/charleslimjh/tp/internal/service"
	"github.com/charleslimjh/tp/testutil"
)

// mockEateryRepo is a hand-written test double for repo.EateryRepo.
// Each method is a function field; set only the ones your test needs.
type mockEateryRepo struct {
	load func(ctx context.Context) ([]*domain.Eatery, error)
	save func(ctx context.Context, eateries []*domain.Eatery) error
}

func (m *mockEateryRepo) Load(ctx context.Context) ([]*domain.Eatery, error) {
	return m.load(ctx)
}
func (m *mockEateryRepo) Save(ctx context.Context, eateries []*domain.Eatery) error {
	return m.save(ctx, eateries)
}

// compile-time check: mockEateryRepo must satisfy repo.EateryRepo.
var _ repo.EateryRepo = (*mockEateryRepo)(nil)

// ---- helpers ---------------------------------------------------------------

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// recordingRepo starts with initial and records every Save.
type recordingRepo struct {
	mockEateryRepo
	saves [][]*domain.Eatery
}

func newRecordingRepo(initial []*domain.Eatery) *recordingRepo {
	r := &recordingRepo{}
	r.load = func(context.Context) ([]*domain.Eatery, error) { return initial, nil }
	r.save = func(_ context.Context, e []*domain.Eatery) error {
		r.saves = append(r.saves, e)
		return nil
	}
	return r
}

func newService(t *testing.T, r repo.EateryRepo) *service.FoodGuideService {
	t.Helper()
	svc, err := service.NewFoodGuideService(context.Background(), r, discardLogger())
	require.NoError(t, err)
	return svc
}

// ---- construction ----------------------------------------------------------

func TestNewFoodGuideService_LoadError(t *testing.T) {
	r := &mockEateryRepo{
		load: func(context.Context) ([]*domain.Eatery, error) { return nil, errors.New("disk on fire") },
	}

	_, err := service.NewFoodGuideService(context.Background(), r, discardLogger())

	assert.ErrorContains(t, err, "disk on fire")
}

// ---- Execute ---------------------------------------------------------------

func TestExecute_Tag_SavesGuide(t *testing.T) {
	r := newRecordingRepo(testutil.TypicalEateries(t))
	svc := newService(t, r)

	res, err := svc.Execute(context.Background(), "tag 3 t/halal")

	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Tagged Eatery: Carl Kurz")
	require.Len(t, r.saves, 1)
	assert.Equal(t, []string{"halal"}, r.saves[0][2].Tags().Names())
}

func TestExecute_FindDoesNotSave(t *testing.T) {
	r := newRecordingRepo(testutil.TypicalEateries(t))
	svc := newService(t, r)

	res, err := svc.Execute(context.Background(), "find carl")

	require.NoError(t, err)
	assert.Equal(t, "1 eateries listed!", res.Feedback)
	assert.Empty(t, r.saves, "filtering is not persisted")
}

func TestExecute_ParseError(t *testing.T) {
	r := newRecordingRepo(nil)
	svc := newService(t, r)

	_, err := svc.Execute(context.Background(), "tag 1")

	assert.ErrorIs(t, err, parser.ErrInvalidFormat)
	assert.Empty(t, r.saves)
}

func TestExecute_CommandError(t *testing.T) {
	r := newRecordingRepo(testutil.TypicalEateries(t))
	svc := newService(t, r)

	_, err := svc.Execute(context.Background(), "delete 9")

	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
	assert.Empty(t, r.saves)
}

func TestExecute_SaveFailure_RestoresModel(t *testing.T) {
	r := newRecordingRepo(testutil.TypicalEateries(t))
	r.save = func(context.Context, []*domain.Eatery) error { return errors.New("read-only filesystem") }
	svc := newService(t, r)

	_, err := svc.Execute(context.Background(), "delete 1")

	require.ErrorContains(t, err, "read-only filesystem")
	rows, err := svc.Export(context.Background())
	require.NoError(t, err)
	assert.Len(t, rows, 3, "the failed delete is rolled back")
}

func TestExecute_SaveFailure_RestoresFilter(t *testing.T) {
	r := newRecordingRepo(testutil.TypicalEateries(t))
	svc := newService(t, r)
	ctx := context.Background()
	_, err := svc.Execute(ctx, "find carl")
	require.NoError(t, err)
	r.save = func(context.Context, []*domain.Eatery) error { return errors.New("read-only filesystem") }

	_, err = svc.Execute(ctx, "tag 1 t/halal")

	require.ErrorContains(t, err, "read-only filesystem")
	page, total, err := svc.ListFiltered(ctx, domain.NewPaginationParams(nil, nil))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total, "the filter in place before the command is kept")
	assert.Equal(t, "Carl Kurz", page[0].Name().String())
	assert.Empty(t, page[0].Tags().Names())
}

func TestExecute_Concurrent(t *testing.T) {
	r := newRecordingRepo(nil)
	svc := newService(t, r)
	ctx := context.Background()

	names := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf", "Hotel"}
	var wg sync.WaitGroup
	for _, n := range names {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Execute(ctx, "add n/"+n+" p/123 c/Thai l/Bugis")
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	rows, err := svc.Export(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, len(names))
	assert.Len(t, r.saves, len(names))
}

// ---- reads -----------------------------------------------------------------

func TestListFiltered_Pages(t *testing.T) {
	svc := newService(t, newRecordingRepo(testutil.TypicalEateries(t)))
	ctx := context.Background()

	page, total, err := svc.ListFiltered(ctx, domain.PaginationParams{Page: 2, Limit: 2})

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	require.Len(t, page, 1)
	assert.Equal(t, "Carl Kurz", page[0].Name().String())

	page, _, err = svc.ListFiltered(ctx, domain.PaginationParams{Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, page)
}

func TestListFiltered_HugePage(t *testing.T) {
	svc := newService(t, newRecordingRepo(testutil.TypicalEateries(t)))
	page, limit := math.MaxInt/10, 20

	got, total, err := svc.ListFiltered(context.Background(), domain.NewPaginationParams(&page, &limit))

	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	assert.Empty(t, got)
}

func TestListFiltered_FollowsFilter(t *testing.T) {
	svc := newService(t, newRecordingRepo(testutil.TypicalEateries(t)))
	ctx := context.Background()
	_, err := svc.Execute(ctx, "findtag owesmoney")
	require.NoError(t, err)

	page, total, err := svc.ListFiltered(ctx, domain.NewPaginationParams(nil, nil))

	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Equal(t, "Benson Meier", page[0].Name().String())
}

func TestGetDisplayed(t *testing.T) {
	svc := newService(t, newRecordingRepo(testutil.TypicalEateries(t)))
	ctx := context.Background()

	second, err := domain.NewIndexFromOneBased(2)
	require.NoError(t, err)
	e, err := svc.GetDisplayed(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, "Benson Meier", e.Name().String())

	fourth, err := domain.NewIndexFromOneBased(4)
	require.NoError(t, err)
	_, err = svc.GetDisplayed(ctx, fourth)
	assert.ErrorIs(t, err, domain.ErrInvalidIndex)
}

func TestExport_IgnoresFilter(t *testing.T) {
	svc := newService(t, newRecordingRepo(testutil.TypicalEateries(t)))
	ctx := context.Background()
	_, err := svc.Execute(ctx, "find alice")
	require.NoError(t, err)

	rows, err := svc.Export(ctx)

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, domain.ExportRow{
		Position: 2,
		Name:     "Benson Meier",
		Phone:    "94351253",
		Cuisine:  "Chinese",
		Location: "Jurong West St 65",
		Tags:     []string{"friends", "owesMoney"},
	}, rows[1])
}
