package main

import (
	"database/sql"
	"errors"

	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"JewelStore/internal/admin"
	"JewelStore/internal/catalog"
	"JewelStore/internal/persist"
	"JewelStore/internal/session"
	"JewelStore/internal/storefront"
	"JewelStore/pkg/kit"
)

func main() {
	_ = godotenv.Load()

	service := "storefront"
	log := kit.NewLogger(service)
	defer func() { _ = log.Sync() }()

	cfg := storefront.FromEnv()

	if cfg.JWTSecret == "dev-secret" {
		log.Warn("JWT_SECRET not set, using development default")
	}

	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = sql.Open("pgx", cfg.DatabaseURL)
		if err != nil {
			log.Fatal("open database failed", zap.Error(err))
		}
		defer func() { _ = db.Close() }()
	}

	catalogStore, err := buildCatalog(cfg, db)
	if err != nil {
		log.Fatal("catalog init failed", zap.Error(err))
	}

	var persistStore persist.Store
	if db != nil {
		persistStore = persist.NewPostgresStore(db)
	} else {
		persistStore = persist.NewMemStore()
		log.Info("DATABASE_URL not set, state persistence is in-memory")
	}

	admins := admin.NewStore()
	if cfg.AdminEmail != "" && cfg.AdminPassword != "" {
		if err := admins.Seed("a_"+uuid.NewString(), cfg.AdminEmail, cfg.AdminPassword); err != nil {
			log.Fatal("seed admin failed", zap.Error(err))
		}
	} else {
		log.Warn("ADMIN_EMAIL/ADMIN_PASSWORD not set, back-office login disabled")
	}

	reg := prometheus.NewRegistry()

	h := storefront.NewHandler(
		storefront.Deps{
			Catalog: catalogStore,
			Persist: persistStore,
			JWT:     session.NewTokenMaker(cfg.JWTSecret),
			Admins:  admins,
		},
		storefront.HTTPDeps{
			Log:            log,
			Service:        service,
			Registry:       reg,
			MetricsEnabled: cfg.MetricsEnabled,
			MetricsToken:   cfg.MetricsToken,
		},
	)

	if err := kit.RunHTTPServer(":"+cfg.Port, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func buildCatalog(cfg storefront.Config, db *sql.DB) (catalog.Store, error) {
	switch cfg.CatalogSource {
	case "postgres":
		if db == nil {
			return nil, errors.New("CATALOG_SOURCE=postgres requires DATABASE_URL")
		}
		return catalog.NewPostgresStore(db), nil
	case "file":
		products, err := catalog.LoadProducts(cfg.CatalogPath)
		if err != nil {
			return nil, err
		}
		return catalog.NewMemStoreWith(products, nil)
	default:
		return catalog.NewMemStore(), nil
	}
}
