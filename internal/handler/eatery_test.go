package handler_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/charleslimjh/tp/internal/domain"
	"github.com/charleslimjh/tp/internal/handler"
	"github.com/charleslimjh/tp/testutil"
)

func get(t *testing.T, h http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

// ---- GET /eateries ---------------------------------------------------------

func TestListEateries_DefaultPagination(t *testing.T) {
	var gotParams domain.PaginationParams
	svc := &mockFoodGuideServicer{
		listFiltered: func(_ context.Context, p domain.PaginationParams) ([]*domain.Eatery, int64, error) {
			gotParams = p
			return testutil.TypicalEateries(t), 3, nil
		},
	}

	rec := get(t, newGuideHTTPHandler(svc), "/eateries")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.PaginationParams{Page: 1, Limit: 20}, gotParams)
	assert.Equal(t, "3", rec.Header().Get("X-Total-Count"))

	var body handler.EateryList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Data, 3)
	assert.Equal(t, handler.Pagination{Page: 1, Limit: 20, Total: 3}, body.Pagination)
	assert.Equal(t, handler.Eatery{
		Index:    2,
		Name:     "Benson Meier",
		Phone:    "94351253",
		Cuisine:  "Chinese",
		Location: "Jurong West St 65",
		Tags:     []string{"friends", "owesMoney"},
	}, body.Data[1])
}

// TestListEateries_IndexContinuesAcrossPages verifies that Index is the
// position in the whole displayed list, so it can be used in commands.
func TestListEateries_IndexContinuesAcrossPages(t *testing.T) {
	svc := &mockFoodGuideServicer{
		listFiltered: func(_ context.Context, p domain.PaginationParams) ([]*domain.Eatery, int64, error) {
			require.Equal(t, domain.PaginationParams{Page: 2, Limit: 2}, p)
			return []*domain.Eatery{testutil.Eatery(t, "Carl Kurz")}, 3, nil
		},
	}

	rec := get(t, newGuideHTTPHandler(svc), "/eateries?page=2&limit=2")

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.EateryList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Data, 1)
	assert.Equal(t, 3, body.Data[0].Index)
	assert.Equal(t, []string{}, body.Data[0].Tags)
}

func TestListEateries_LimitCapped(t *testing.T) {
	svc := &mockFoodGuideServicer{
		listFiltered: func(_ context.Context, p domain.PaginationParams) ([]*domain.Eatery, int64, error) {
			assert.Equal(t, 100, p.Limit)
			return nil, 0, nil
		},
	}

	rec := get(t, newGuideHTTPHandler(svc), "/eateries?limit=500")

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.EateryList
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotNil(t, body.Data)
	assert.Empty(t, body.Data)
}

func TestListEateries_BadParam(t *testing.T) {
	rec := get(t, newGuideHTTPHandler(&mockFoodGuideServicer{}), "/eateries?page=two")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "page")
}

// ---- GET /eateries/{index} -------------------------------------------------

func TestGetEatery_Found(t *testing.T) {
	svc := &mockFoodGuideServicer{
		getDisplayed: func(_ context.Context, index domain.Index) (*domain.Eatery, error) {
			require.Equal(t, 1, index.ZeroBased())
			return testutil.Eatery(t, "Benson Meier", "friends"), nil
		},
	}

	rec := get(t, newGuideHTTPHandler(svc), "/eateries/2")

	require.Equal(t, http.StatusOK, rec.Code)
	var body handler.Eatery
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, 2, body.Index)
	assert.Equal(t, "Benson Meier", body.Name)
}

func TestGetEatery_OutOfRange(t *testing.T) {
	svc := &mockFoodGuideServicer{
		getDisplayed: func(_ context.Context, index domain.Index) (*domain.Eatery, error) {
			return nil, fmt.Errorf("service.FoodGuideService.GetDisplayed: %w: %d", domain.ErrInvalidIndex, index.OneBased())
		},
	}

	rec := get(t, newGuideHTTPHandler(svc), "/eateries/9")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	detail := decodeError(t, rec)
	assert.Equal(t, "invalid_index", detail.Code)
	assert.Equal(t, "invalid eatery displayed index: 9", detail.Message)
}

func TestGetEatery_BadIndex(t *testing.T) {
	h := newGuideHTTPHandler(&mockFoodGuideServicer{})

	for _, target := range []string{"/eateries/abc", "/eateries/0", "/eateries/-3"} {
		rec := get(t, h, target)

		assert.Equal(t, http.StatusUnprocessableEntity, rec.Code, target)
		assert.Equal(t, "validation_error", decodeError(t, rec).Code, target)
	}
}
