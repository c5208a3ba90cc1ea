package catalog

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"JewelStore/pkg/kit"
)

// Server exposes the catalog read API. Listing goes through the filter/sort
// engine so every category page shares one query contract.
type Server struct {
	Store Store
	Log   *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/products", s.list)
	r.Get("/products/featured", s.featured)
	r.Get("/products/random", s.random)
	r.Get("/products/{id}", s.get)

	return r
}

func (s *Server) ReadyCheck(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 1*time.Second)
	defer cancel()
	return s.Store.Ping(ctx)
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	params, ok := parseFilterParams(w, r)
	if !ok {
		return
	}

	var (
		base []Product
		err  error
	)
	if c := r.URL.Query().Get("category"); c != "" {
		base, err = s.Store.ByCategory(r.Context(), Category(c))
	} else {
		base, err = s.Store.All(r.Context())
	}
	if err != nil {
		s.logErr("list products failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, Filter(base, params))
}

func (s *Server) featured(w http.ResponseWriter, r *http.Request) {
	products, err := s.Store.Featured(r.Context())
	if err != nil {
		s.logErr("featured products failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	kit.WriteJSON(w, http.StatusOK, products)
}

func (s *Server) random(w http.ResponseWriter, r *http.Request) {
	c := Category(r.URL.Query().Get("category"))

	p, ok, err := s.Store.Random(r.Context(), c)
	if err != nil {
		s.logErr("random product failed", err)
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "empty pool", map[string]any{"category": c})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func (s *Server) get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	p, ok, err := s.Store.ByID(r.Context(), id)
	if err != nil {
		s.logErr("get product failed", err, zap.String("id", id))
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}
	if !ok {
		kit.WriteError(w, r, http.StatusNotFound, "not found", map[string]any{"id": id})
		return
	}
	kit.WriteJSON(w, http.StatusOK, p)
}

func parseFilterParams(w http.ResponseWriter, r *http.Request) (FilterParams, bool) {
	q := r.URL.Query()

	sortMode, ok := ParseSortMode(q.Get("sort"))
	if !ok {
		kit.WriteError(w, r, http.StatusBadRequest, "bad sort", map[string]any{"sort": q.Get("sort")})
		return FilterParams{}, false
	}

	params := DefaultFilterParams()
	params.Search = q.Get("search")
	params.Sort = sortMode

	if v := q.Get("min_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			kit.WriteError(w, r, http.StatusBadRequest, "bad min_price", nil)
			return FilterParams{}, false
		}
		params.MinPriceCents = n
	}
	if v := q.Get("max_price"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n < 0 {
			kit.WriteError(w, r, http.StatusBadRequest, "bad max_price", nil)
			return FilterParams{}, false
		}
		params.MaxPriceCents = n
	}

	return params, true
}

func (s *Server) logErr(msg string, err error, fields ...zap.Field) {
	if s.Log != nil {
		s.Log.Error(msg, append([]zap.Field{zap.Error(err)}, fields...)...)
	}
}
