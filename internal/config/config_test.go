package config_test

import (
	"testing"
	"time"

	"github.com/UnknownOlympus/storefinder/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestMustLoad_Defaults(t *testing.T) {
	cfg := config.MustLoad()

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, "nominatim", cfg.ProviderType)
	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.ProviderURL)
	assert.Equal(t, 1, cfg.RateLimit)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, "store-locations.csv", cfg.Catalog)
	assert.Equal(t, config.CatalogSourceFile, cfg.CatalogSource)
	assert.Equal(t, config.DistanceLegacy, cfg.Distance)
	assert.Empty(t, cfg.MetricsFile)
	assert.Equal(t, "5432", cfg.Database.Port)
}

func TestMustLoad_FromEnv(t *testing.T) {
	t.Setenv("STOREFINDER_ENV", "local")
	t.Setenv("STOREFINDER_PROVIDER_TYPE", "google")
	t.Setenv("STOREFINDER_PROVIDER_KEY", "testAPIKey")
	t.Setenv("STOREFINDER_PROVIDER_URL", "http://nominatim.internal/search")
	t.Setenv("STOREFINDER_RATE_LIMIT", "25")
	t.Setenv("STOREFINDER_TIMEOUT", "3s")
	t.Setenv("STOREFINDER_CATALOG", "/srv/stores.xlsx")
	t.Setenv("STOREFINDER_CATALOG_SOURCE", "postgres")
	t.Setenv("STOREFINDER_DISTANCE", "corrected")
	t.Setenv("STOREFINDER_METRICS_FILE", "/var/lib/node_exporter/storefinder.prom")
	t.Setenv("DB_HOST", "testHost")
	t.Setenv("DB_PORT", "12345")
	t.Setenv("DB_USERNAME", "admin")
	t.Setenv("DB_PASSWORD", "adminpass")
	t.Setenv("DB_NAME", "testName")

	cfg := config.MustLoad()

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "google", cfg.ProviderType)
	assert.Equal(t, "testAPIKey", cfg.APIKey)
	assert.Equal(t, "http://nominatim.internal/search", cfg.ProviderURL)
	assert.Equal(t, 25, cfg.RateLimit)
	assert.Equal(t, 3*time.Second, cfg.Timeout)
	assert.Equal(t, "/srv/stores.xlsx", cfg.Catalog)
	assert.Equal(t, config.CatalogSourcePostgres, cfg.CatalogSource)
	assert.Equal(t, config.DistanceCorrected, cfg.Distance)
	assert.Equal(t, "/var/lib/node_exporter/storefinder.prom", cfg.MetricsFile)
	assert.Equal(t, "testHost", cfg.Database.Host)
	assert.Equal(t, "12345", cfg.Database.Port)
	assert.Equal(t, "admin", cfg.Database.User)
	assert.Equal(t, "adminpass", cfg.Database.Password)
	assert.Equal(t, "testName", cfg.Database.Name)
}

func TestMustLoad_TimeoutError(t *testing.T) {
	t.Setenv("STOREFINDER_TIMEOUT", "error_value")

	assert.PanicsWithValue(t, "failed to parse timeout from configuration", func() {
		config.MustLoad()
	})
}

func TestMustLoad_RateLimitError(t *testing.T) {
	t.Setenv("STOREFINDER_RATE_LIMIT", "error_value")

	assert.PanicsWithValue(t, "failed to parse rate limit from configuration, must be an integer types", func() {
		config.MustLoad()
	})
}

func TestMustLoad_DistanceError(t *testing.T) {
	t.Setenv("STOREFINDER_DISTANCE", "haversine")

	assert.PanicsWithValue(t, "unsupported distance mode, must be legacy or corrected", func() {
		config.MustLoad()
	})
}

func TestMustLoad_CatalogSourceError(t *testing.T) {
	t.Setenv("STOREFINDER_CATALOG_SOURCE", "s3")

	assert.PanicsWithValue(t, "unsupported catalog source, must be file or postgres", func() {
		config.MustLoad()
	})
}
