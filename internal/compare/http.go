package compare

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"JewelStore/internal/catalog"
	"JewelStore/internal/session"
	"JewelStore/pkg/kit"
)

type Server struct {
	Compare *Store
	Catalog catalog.Store
	Log     *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Delete("/", s.clear)
	r.Post("/items", s.add)
	r.Delete("/items/{id}", s.remove)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	v, ok := session.VisitorFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	products, err := s.Compare.Products(r.Context(), v.ID)
	if err != nil {
		s.fail(w, r, "load compare failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, map[string]any{
		"products": products,
		"capacity": MaxProducts,
	})
}

type addReq struct {
	ProductID string `json:"product_id"`
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	v, ok := session.VisitorFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	var req addReq
	if err := kit.DecodeStrict(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.ProductID == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "product_id required", nil)
		return
	}

	p, found, err := s.Catalog.ByID(r.Context(), req.ProductID)
	if err != nil {
		s.fail(w, r, "catalog lookup failed", err)
		return
	}
	if !found {
		kit.WriteError(w, r, http.StatusNotFound, "unknown product", map[string]any{"id": req.ProductID})
		return
	}

	if err := s.Compare.Add(r.Context(), v.ID, p); err != nil {
		s.fail(w, r, "compare add failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) remove(w http.ResponseWriter, r *http.Request) {
	v, ok := session.VisitorFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	if err := s.Compare.Remove(r.Context(), v.ID, chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, "compare remove failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) clear(w http.ResponseWriter, r *http.Request) {
	v, ok := session.VisitorFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	if err := s.Compare.Clear(r.Context(), v.ID); err != nil {
		s.fail(w, r, "compare clear failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, msg string, err error) {
	if s.Log != nil {
		s.Log.Error(msg, zap.Error(err))
	}
	kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
}
