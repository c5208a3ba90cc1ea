package recent

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"JewelStore/internal/session"
	"JewelStore/pkg/kit"
)

type Server struct {
	Recent *Store
	Log    *zap.Logger
}

func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/", s.list)
	r.Put("/{productId}", s.record)

	return r
}

func (s *Server) list(w http.ResponseWriter, r *http.Request) {
	v, ok := session.VisitorFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	products, err := s.Recent.Products(r.Context(), v.ID)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("load recently viewed failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (s *Server) record(w http.ResponseWriter, r *http.Request) {
	v, ok := session.VisitorFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	if err := s.Recent.Record(r.Context(), v.ID, chi.URLParam(r, "productId")); err != nil {
		if s.Log != nil {
			s.Log.Error("record view failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
