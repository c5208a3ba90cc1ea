// Package admin is the storefront back-office: operator login, visitor
// statistics, and loyalty point awards.
package admin

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"JewelStore/internal/loyalty"
	"JewelStore/internal/session"
	"JewelStore/internal/track"
	"JewelStore/pkg/kit"
)

const tokenTTL = 15 * time.Minute

type Server struct {
	Log     *zap.Logger
	Store   *Store
	JWT     *session.TokenMaker
	Track   *track.Tracker
	Loyalty *loyalty.Store
}

// LoginHandler is mounted outside the admin-guarded group.
func (s *Server) LoginHandler() http.HandlerFunc { return s.login }

// ProtectedRoutes are mounted behind RequireSession + RequireAdmin.
func (s *Server) ProtectedRoutes() http.Handler {
	r := chi.NewRouter()

	r.Get("/stats", s.stats)
	r.Post("/loyalty/{sessionId}/earn", s.earn)

	return r
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResp struct {
	AccessToken string `json:"access_token"`
}

func (s *Server) login(w http.ResponseWriter, r *http.Request) {
	var req loginReq
	if err := kit.DecodeStrict(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	req.Password = strings.TrimSpace(req.Password)

	if req.Email == "" || req.Password == "" {
		kit.WriteError(w, r, http.StatusBadRequest, "email/password required", nil)
		return
	}

	a, err := s.Store.Verify(req.Email, req.Password)
	if err != nil {
		kit.WriteError(w, r, http.StatusUnauthorized, "invalid credentials", nil)
		return
	}

	tok, err := s.JWT.New(a.ID, session.RoleAdmin, tokenTTL)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("admin token issue", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, loginResp{AccessToken: tok})
}

func (s *Server) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.Track.Stats(r.Context())
	if err != nil {
		if s.Log != nil {
			s.Log.Error("visitor stats failed", zap.Error(err))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, stats)
}

type earnReq struct {
	Points int64 `json:"points"`
}

type earnResp struct {
	Points int64        `json:"points"`
	Tier   loyalty.Tier `json:"tier"`
}

func (s *Server) earn(w http.ResponseWriter, r *http.Request) {
	var req earnReq
	if err := kit.DecodeStrict(w, r, &req); err != nil {
		kit.WriteError(w, r, http.StatusBadRequest, "bad json", nil)
		return
	}
	if req.Points <= 0 {
		kit.WriteError(w, r, http.StatusBadRequest, "points must be positive", nil)
		return
	}

	sessionID := chi.URLParam(r, "sessionId")

	points, err := s.Loyalty.Earn(r.Context(), sessionID, req.Points)
	if err != nil {
		if s.Log != nil {
			s.Log.Error("loyalty earn failed", zap.Error(err), zap.String("session_id", sessionID))
		}
		kit.WriteError(w, r, http.StatusInternalServerError, "server error", nil)
		return
	}

	kit.WriteJSON(w, http.StatusOK, earnResp{Points: points, Tier: loyalty.TierFor(points)})
}
