package session

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"JewelStore/internal/track"
	"JewelStore/pkg/kit"
)

// Visitor sessions are long-lived: the original storefront kept its visitor
// id in local storage indefinitely.
const visitorTTL = 30 * 24 * time.Hour

type Server struct {
	JWT   *TokenMaker
	Track *track.Tracker
	Log   *zap.Logger
}

type createResp struct {
	AccessToken string `json:"access_token"`
	VisitorID   string `json:"visitor_id"`
}

func (s *Server) CreateHandler() http.HandlerFunc      { return s.create }
func (s *Server) RecordVisitHandler() http.HandlerFunc { return s.recordVisit }

func (s *Server) create(w http.ResponseWriter, r *http.Request) {
	visitorID := "v_" + uuid.NewString()

	tok, err := s.JWT.New(visitorID, RoleVisitor, visitorTTL)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("session token issue", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	if err := s.Track.RecordVisit(r.Context(), true); err != nil {
		// Stats are best-effort; a broken counter must not block sessions.
		if s.Log != nil {
			s.Log.Warn("record visit failed", zap.Error(err))
		}
	}

	kit.WriteJSON(w, http.StatusCreated, createResp{AccessToken: tok, VisitorID: visitorID})
}

// recordVisit counts a repeat visit for an existing session.
func (s *Server) recordVisit(w http.ResponseWriter, r *http.Request) {
	if _, ok := VisitorFromContext(r.Context()); !ok {
		kit.WriteError(w, r, http.StatusUnauthorized, "no session", nil)
		return
	}

	if err := s.Track.RecordVisit(r.Context(), false); err != nil {
		if s.Log != nil {
			s.Log.Error("record visit failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
