package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/UnknownOlympus/storefinder/internal/catalog"
	"github.com/UnknownOlympus/storefinder/internal/cli"
	"github.com/UnknownOlympus/storefinder/internal/config"
	"github.com/UnknownOlympus/storefinder/internal/finder"
	"github.com/UnknownOlympus/storefinder/internal/geocoding"
	"github.com/UnknownOlympus/storefinder/internal/metrics"
	"github.com/UnknownOlympus/storefinder/internal/repository"
	"github.com/UnknownOlympus/storefinder/internal/service"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// Constants for different environment types.
const (
	envLocal = "local"
	envDev   = "development"
	envProd  = "production"
)

// main is the entry point of the application.
func main() {
	os.Exit(run())
}

func run() int {
	// Cancel the lookup when an interrupt signal is received.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Load application configuration.
	cfg := config.MustLoad()

	// Set up the logger based on the environment.
	logger := setupLogger(cfg.Env)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	appMetrics := metrics.NewMetrics(reg)

	app := &application{cfg: cfg, log: logger, metrics: appMetrics}
	defer app.close()

	err := cli.NewRootCmd(app.newFinder).ExecuteContext(ctx)

	if cfg.MetricsFile != "" {
		if werr := metrics.WriteTextfile(cfg.MetricsFile, reg); werr != nil {
			logger.ErrorContext(ctx, "Failed to write metrics", "path", cfg.MetricsFile, "error", werr)
		}
	}

	if err != nil {
		return 1
	}
	return 0
}

// application builds the store finder from configuration once the arguments are valid.
type application struct {
	cfg     *config.Config
	log     *slog.Logger
	metrics *metrics.Metrics
	closers []func()
}

func (a *application) newFinder(ctx context.Context, catalogPath string) (cli.Finder, error) {
	// Create geocoding provider using factory pattern based on configuration.
	provider, err := geocoding.NewProvider(geocoding.ProviderConfig{
		Type:      geocoding.ProviderType(a.cfg.ProviderType),
		APIKey:    a.cfg.APIKey,
		RateLimit: a.cfg.RateLimit,
		Timeout:   a.cfg.Timeout,
		UserAgent: a.cfg.UserAgent,
		BaseURL:   a.cfg.ProviderURL,
		Logger:    a.log,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create geocoding provider: %w", err)
	}

	a.log.DebugContext(ctx, "Geocoding provider initialized", "type", a.cfg.ProviderType)

	source, err := a.newSource(ctx, catalogPath)
	if err != nil {
		return nil, err
	}

	distance := finder.Distance
	if a.cfg.Distance == config.DistanceCorrected {
		distance = finder.CorrectedDistance
	}

	return service.NewStoreFinder(a.log, provider, source, distance, a.cfg.ProviderType, a.metrics), nil
}

func (a *application) newSource(ctx context.Context, catalogPath string) (catalog.Source, error) {
	if catalogPath != "" || a.cfg.CatalogSource == config.CatalogSourceFile {
		if catalogPath == "" {
			catalogPath = a.cfg.Catalog
		}
		a.log.DebugContext(ctx, "Reading catalog from file", "path", catalogPath)
		return catalog.NewFileSource(catalogPath, a.log), nil
	}

	dtb, err := repository.NewDatabase(
		ctx, a.cfg.Database.Host, a.cfg.Database.Port, a.cfg.Database.User, a.cfg.Database.Password, a.cfg.Database.Name,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to DB: %w", err)
	}
	a.closers = append(a.closers, dtb.Close)

	a.log.DebugContext(ctx, "Reading catalog from database", "host", a.cfg.Database.Host, "name", a.cfg.Database.Name)
	return repository.NewRepository(dtb, a.log), nil
}

func (a *application) close() {
	for _, closeFn := range a.closers {
		closeFn()
	}
}

// setupLogger initializes and returns a logger based on the environment provided.
// Logs go to stderr; stdout carries only the lookup result.
func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = slog.New(
			slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelDebug,
				AddSource: true,
			}),
		)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelInfo,
				AddSource: false,
			}),
		)
	case envProd:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelWarn,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
				Level:     slog.LevelError,
				AddSource: false,
				ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
					if a.Key == slog.TimeKey {
						return slog.Attr{}
					}
					return a
				},
			}),
		)

		log.Error(
			"The env parameter was not specified or was invalid. Logging will be minimal, by default.",
			slog.String("available_envs", "local, development, production"))
	}

	return log
}
