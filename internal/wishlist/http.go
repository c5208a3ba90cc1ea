package wishlist

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"JewelStore/internal/session"
	"JewelStore/pkg/kit"
)

type Server struct {
	Wishlist *Store
	Log      *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Delete("/", s.clear)
	r.Put("/{productId}", s.add)
	r.Delete("/{productId}", s.remove)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	v, ok := session.VisitorFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	resolved, err := s.Wishlist.Resolved(r.Context(), v.ID)
	if err != nil {
		s.fail(w, r, "load wishlist failed", err)
		return
	}

	kit.WriteJSON(w, http.StatusOK, map[string]any{"items": resolved})
}

func (s *Server) add(w http.ResponseWriter, r *http.Request) {
	v, ok := session.VisitorFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	if err := s.Wishlist.Add(r.Context(), v.ID, chi.URLParam(r, "productId")); err != nil {
		s.fail(w, r, "wishlist add failed", err)
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

	if err := s.Wishlist.Remove(r.Context(), v.ID, chi.URLParam(r, "productId")); err != nil {
		s.fail(w, r, "wishlist remove failed", err)
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

	if err := s.Wishlist.Clear(r.Context(), v.ID); err != nil {
		s.fail(w, r, "wishlist clear failed", err)
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
