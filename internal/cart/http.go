package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"JewelStore/internal/catalog"
	"JewelStore/internal/session"
	"JewelStore/pkg/kit"
)

// Server exposes the session-scoped cart API. Add resolves the product
// against the catalog so line items are true add-time snapshots.
type Server struct {
	Cart    *Store
	Catalog catalog.Store
	Log     *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.view)
	r.Delete("/", s.clear)
	r.Post("/items", s.add)
	r.Patch("/items/{id}", s.setQuantity)
	r.Delete("/items/{id}", s.remove)

	return r
}

type view struct {
	Items      []LineItem `json:"items"`
	TotalItems int        `json:"total_items"`
	TotalCents int64      `json:"total_cents"`
}

func (s *Server) view(w http.ResponseWriter, r *http.Request) {
	v, ok := session.VisitorFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	items, err := s.Cart.Items(r.Context(), v.ID)
	if err != nil {
		s.fail(w, r, "load cart failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, view{
		Items:      items,
		TotalItems: totalItems(items),
		TotalCents: totalCents(items),
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

	err = s.Cart.Add(r.Context(), v.ID, ProductInfo{
		ID:         p.ID,
		Name:       p.Name,
		PriceCents: p.PriceCents,
		Image:      p.Image,
		Category:   string(p.Category),
	})
	if err != nil {
		s.fail(w, r, "cart add failed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type quantityReq struct {
	Quantity int `json:"quantity"`
}

func (s *Server) setQuantity(w http.ResponseWriter, r *http.Request) {
	v, ok := session.VisitorFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	var req quantityReq
	if err := kit.DecodeStrict(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	if err := s.Cart.SetQuantity(r.Context(), v.ID, chi.URLParam(r, "id"), req.Quantity); err != nil {
		s.fail(w, r, "cart update failed", err)
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

	if err := s.Cart.Remove(r.Context(), v.ID, chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, "cart remove failed", err)
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

	if err := s.Cart.Clear(r.Context(), v.ID); err != nil {
		s.fail(w, r, "cart clear failed", err)
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
