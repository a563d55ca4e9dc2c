package config

import (
	"errors"
	"strconv"
	"time"

	"github.com/UnknownOlympus/storefinder/internal/catalog"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Distance modes.
const (
	DistanceLegacy    = "legacy"
	DistanceCorrected = "corrected"
)

// Catalog sources.
const (
	CatalogSourceFile     = "file"
	CatalogSourcePostgres = "postgres"
)

// Config holds the configuration settings for storefinder.
//
// Fields:
// - Env: The current environment (local, development, production), selects the log handler.
// - ProviderType: The geocoding provider to use (nominatim, google).
// - APIKey: The API key for the provider (required for Google).
// - UserAgent: The User-Agent sent to Nominatim.
// - ProviderURL: Endpoint override for the provider (a self-hosted Nominatim, for example).
// - RateLimit: Provider requests per second.
// - Timeout: HTTP timeout for provider requests.
// - Catalog: Path of the catalog file.
// - CatalogSource: Where stores are read from (file, postgres).
// - Distance: Distance formula (legacy, corrected).
// - MetricsFile: Where to write Prometheus metrics after a lookup; empty disables it.
// - Database: Configuration settings for the PostgreSQL catalog.
type Config struct {
	Env           string         `mapstructure:"env"`
	ProviderType  string         `mapstructure:"provider_type"`
	APIKey        string         `mapstructure:"provider_key"`
	UserAgent     string         `mapstructure:"user_agent"`
	ProviderURL   string         `mapstructure:"provider_url"`
	RateLimit     int            `mapstructure:"-"`
	Timeout       time.Duration  `mapstructure:"-"`
	Catalog       string         `mapstructure:"catalog"`
	CatalogSource string         `mapstructure:"catalog_source"`
	Distance      string         `mapstructure:"distance"`
	MetricsFile   string         `mapstructure:"metrics_file"`
	Database      PostgresConfig `mapstructure:"database"`
}

// PostgresConfig struct holds the configuration details for connecting to a PostgreSQL database.
type PostgresConfig struct {
	Host     string `mapstructure:"host"`     // Host is the database server address.
	Port     string `mapstructure:"port"`     // Port is the database server port.
	User     string `mapstructure:"user"`     // User is the database user.
	Password string `mapstructure:"password"` // Password is the database user's password.
	Name     string `mapstructure:"name"`     // Name is the name of the database.
}

// MustLoad reads the configuration from the environment, an optional .env file and an optional
// storefinder.yaml in the working directory. Environment variables win. Invalid values panic.
func MustLoad() *Config {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("storefinder")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.SetEnvPrefix("STOREFINDER")
	v.AutomaticEnv()

	v.SetDefault("env", "production")
	v.SetDefault("provider_type", "nominatim")
	v.SetDefault("provider_key", "")
	v.SetDefault("user_agent", "")
	v.SetDefault("provider_url", "")
	v.SetDefault("rate_limit", "1")
	v.SetDefault("timeout", "10s")
	v.SetDefault("catalog", catalog.DefaultPath)
	v.SetDefault("catalog_source", CatalogSourceFile)
	v.SetDefault("distance", DistanceLegacy)
	v.SetDefault("metrics_file", "")
	v.SetDefault("database.port", "5432")

	_ = v.BindEnv("database.host", "DB_HOST")
	_ = v.BindEnv("database.port", "DB_PORT")
	_ = v.BindEnv("database.user", "DB_USERNAME")
	_ = v.BindEnv("database.password", "DB_PASSWORD")
	_ = v.BindEnv("database.name", "DB_NAME")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			panic("failed to read configuration file")
		}
	}

	timeout, err := time.ParseDuration(v.GetString("timeout"))
	if err != nil {
		panic("failed to parse timeout from configuration")
	}

	rateLimit, err := strconv.Atoi(v.GetString("rate_limit"))
	if err != nil {
		panic("failed to parse rate limit from configuration, must be an integer types")
	}

	var cfg Config
	if err = v.Unmarshal(&cfg); err != nil {
		panic("failed to decode configuration")
	}
	cfg.Timeout = timeout
	cfg.RateLimit = rateLimit

	switch cfg.Distance {
	case DistanceLegacy, DistanceCorrected:
	default:
		panic("unsupported distance mode, must be legacy or corrected")
	}

	switch cfg.CatalogSource {
	case CatalogSourceFile, CatalogSourcePostgres:
	default:
		panic("unsupported catalog source, must be file or postgres")
	}

	return &cfg
}
