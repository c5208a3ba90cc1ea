// Package storefront wires the catalog, the session-scoped stores and the
// back-office into one HTTP handler.
package storefront

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"JewelStore/internal/admin"
	"JewelStore/internal/cart"
	"JewelStore/internal/catalog"
	"JewelStore/internal/compare"
	"JewelStore/internal/loyalty"
	"JewelStore/internal/persist"
	"JewelStore/internal/recent"
	"JewelStore/internal/session"
	"JewelStore/internal/track"
	"JewelStore/internal/wishlist"
	"JewelStore/pkg/kit"
)

type HTTPDeps struct {
	Log      *zap.Logger
	Service  string
	Registry *prometheus.Registry

	MetricsEnabled bool
	MetricsToken   string
}

type Deps struct {
	Catalog catalog.Store
	Persist persist.Store
	JWT     *session.TokenMaker
	Admins  *admin.Store
}

const (
	sessionLimitPerMin = 10
	loginLimitPerMin   = 5
	limitWindow        = time.Minute

	readyTimeout = 1 * time.Second
)

func NewHandler(deps Deps, httpDeps HTTPDeps) http.Handler {
	log := httpDeps.Log

	tracker := track.NewTracker(deps.Persist, log, httpDeps.Registry)

	catalogSrv := &catalog.Server{Store: deps.Catalog, Log: log}
	cartSrv := &cart.Server{Cart: cart.NewStore(deps.Persist, log), Catalog: deps.Catalog, Log: log}
	wishlistSrv := &wishlist.Server{Wishlist: wishlist.NewStore(deps.Persist, deps.Catalog, log), Log: log}
	compareSrv := &compare.Server{Compare: compare.NewStore(deps.Persist, log), Catalog: deps.Catalog, Log: log}
	recentSrv := &recent.Server{Recent: recent.NewStore(deps.Persist, deps.Catalog, log), Log: log}
	loyaltyStore := loyalty.NewStore(deps.Persist, log)
	loyaltySrv := &loyalty.Server{Loyalty: loyaltyStore, Log: log}
	sessionSrv := &session.Server{JWT: deps.JWT, Track: tracker, Log: log}
	adminSrv := &admin.Server{Log: log, Store: deps.Admins, JWT: deps.JWT, Track: tracker, Loyalty: loyaltyStore}

	r := chi.NewRouter()
	setupMiddleware(r, httpDeps)
	setupMetrics(r, httpDeps)

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(deps, log))

	sessionLimiter := kit.NewIPRateLimiter(sessionLimitPerMin, limitWindow)
	r.With(sessionLimiter.Middleware).Post("/session", sessionSrv.CreateHandler())

	loginLimiter := kit.NewIPRateLimiter(loginLimitPerMin, limitWindow)
	r.With(loginLimiter.Middleware).Post("/admin/login", adminSrv.LoginHandler())

	r.Group(func(pr chi.Router) {
		pr.Use(session.RequireSession(deps.JWT))

		pr.Post("/visits", sessionSrv.RecordVisitHandler())
		pr.Get("/loyalty", loyaltySrv.StatusHandler())
		pr.Mount("/cart", cartSrv.Routes())
		pr.Mount("/wishlist", wishlistSrv.Routes())
		pr.Mount("/compare", compareSrv.Routes())
		pr.Mount("/recent", recentSrv.Routes())

		pr.Group(func(ar chi.Router) {
			ar.Use(session.RequireAdmin)
			ar.Mount("/admin", adminSrv.ProtectedRoutes())
		})
	})

	r.Mount("/", catalogSrv.Routes())

	return r
}

func setupMiddleware(r *chi.Mux, deps HTTPDeps) {
	r.Use(chimw.RequestID)
	r.Use(kit.Recoverer)
	r.Use(kit.Logging(deps.Log))
}

func setupMetrics(r *chi.Mux, deps HTTPDeps) {
	if deps.Registry == nil {
		return
	}

	metrics := kit.NewMetrics(deps.Registry)
	r.Use(metrics.Middleware(deps.Service, kit.ChiRoutePatternOrPath))

	if !deps.MetricsEnabled {
		return
	}

	r.With(kit.MetricsAuth(deps.MetricsToken)).
		Handle("/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}

func readyz(deps Deps, log *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		if err := deps.Catalog.Ping(ctx); err != nil {
			if log != nil {
				log.Warn("readyz failed: catalog", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "catalog not ready", nil)
			return
		}

		if err := deps.Persist.Ping(ctx); err != nil {
			if log != nil {
				log.Warn("readyz failed: persistence", zap.Error(err))
			}
			kit.WriteError(w, r, http.StatusServiceUnavailable, "persistence not ready", nil)
			return
		}

		w.WriteHeader(http.StatusOK)
	}
}
