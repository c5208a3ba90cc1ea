package loyalty

import (
	"net/http"

	"go.uber.org/zap"

	"JewelStore/internal/session"
	"JewelStore/pkg/kit"
)

type Server struct {
	Loyalty *Store
	Log     *zap.Logger
}

// StatusHandler serves the session's own loyalty status.
func (s *Server) StatusHandler() http.HandlerFunc { return s.status }

func (s *Server) status(w http.ResponseWriter, r *http.Request) {
	v, ok := session.VisitorFromContext(r.Context())
	if !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	status, err := s.Loyalty.Status(r.Context(), v.ID)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("loyalty status failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, status)
}
