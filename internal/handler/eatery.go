package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/oapi-codegen/runtime"

	"github.com/charleslimjh/tp/internal/domain"
)

// Eatery is the JSON shape of one displayed eatery. Index is its 1-based
// position in the filtered view, the number commands refer to.
type Eatery struct {
	Index    int      `json:"index"`
	Name     string   `json:"name"`
	Phone    string   `json:"phone"`
	Cuisine  string   `json:"cuisine"`
	Location string   `json:"location"`
	Tags     []string `json:"tags"`
}

// Pagination describes the page returned by a list endpoint.
type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
}

// EateryList is the body of GET /eateries.
type EateryList struct {
	Data       []Eatery   `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// ListEateries handles GET /eateries.
// Supports ?page= and ?limit= query parameters (defaults: page=1, limit=20, max=100).
// The list is the filtered view left by the last find, findtag or list command.
func (s *Server) ListEateries(w http.ResponseWriter, r *http.Request) {
	var page, limit *int
	if err := runtime.BindQueryParameter("form", true, false, "page", r.URL.Query(), &page); err != nil {
		requestBody(w, "invalid format for parameter page: "+err.Error())
		return
	}
	if err := runtime.BindQueryParameter("form", true, false, "limit", r.URL.Query(), &limit); err != nil {
		requestBody(w, "invalid format for parameter limit: "+err.Error())
		return
	}

	params := domain.NewPaginationParams(page, limit)
	eateries, total, err := s.guide.ListFiltered(r.Context(), params)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	data := make([]Eatery, len(eateries))
	for i, e := range eateries {
		data[i] = eateryToResponse(params.Offset()+i+1, e)
	}

	w.Header().Set("X-Total-Count", strconv.FormatInt(total, 10))
	writeJSON(w, http.StatusOK, EateryList{
		Data: data,
		Pagination: Pagination{
			Page:  params.Page,
			Limit: params.Limit,
			Total: int(total),
		},
	})
}

// GetEatery handles GET /eateries/{index}.
func (s *Server) GetEatery(w http.ResponseWriter, r *http.Request) {
	var oneBased int
	err := runtime.BindStyledParameterWithOptions("simple", "index", chi.URLParam(r, "index"), &oneBased,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		requestBody(w, "invalid format for parameter index: "+err.Error())
		return
	}

	index, err := domain.NewIndexFromOneBased(oneBased)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	e, err := s.guide.GetDisplayed(r.Context(), index)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, eateryToResponse(index.OneBased(), e))
}

func eateryToResponse(index int, e *domain.Eatery) Eatery {
	return Eatery{
		Index:    index,
		Name:     e.Name().String(),
		Phone:    e.Phone().String(),
		Cuisine:  e.Cuisine().String(),
		Location: e.Location().String(),
		Tags:     e.Tags().Names(),
	}
}
