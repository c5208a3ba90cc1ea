package storefront

import "os"

// Config is read from the environment; main loads a .env file first so
// local development matches the deployed shape.
type Config struct {
	Port      string
	JWTSecret string

	// DatabaseURL enables Postgres persistence slots; empty means in-memory.
	DatabaseURL string

	// CatalogPath points at a JSON catalog document; CatalogSource selects
	// "builtin", "file" or "postgres".
	CatalogPath   string
	CatalogSource string

	AdminEmail    string
	AdminPassword string

	MetricsEnabled bool
	MetricsToken   string
}

func FromEnv() Config {
	return Config{
		Port:           getenv("PORT", "8080"),
		JWTSecret:      getenv("JWT_SECRET", "dev-secret"),
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		CatalogPath:    os.Getenv("CATALOG_PATH"),
		CatalogSource:  getenv("CATALOG_SOURCE", "builtin"),
		AdminEmail:     os.Getenv("ADMIN_EMAIL"),
		AdminPassword:  os.Getenv("ADMIN_PASSWORD"),
		MetricsEnabled: os.Getenv("METRICS_ENABLED") == "true",
		MetricsToken:   os.Getenv("METRICS_TOKEN"),
	}
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
