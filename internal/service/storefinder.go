package service

import (
	"context"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/storefinder/internal/catalog"
	"github.com/UnknownOlympus/storefinder/internal/finder"
	"github.com/UnknownOlympus/storefinder/internal/geocoding"
	"github.com/UnknownOlympus/storefinder/internal/metrics"
	"github.com/UnknownOlympus/storefinder/internal/models"
	"github.com/UnknownOlympus/storefinder/internal/output"
)

// StoreFinder answers nearest-store queries: it locates the query, ranks the catalog
// and renders the closest store.
type StoreFinder struct {
	log          *slog.Logger        // Logger for logging service activities
	locator      *geocoding.Locator  // Locator turning queries into coordinates
	catalog      catalog.Source      // Source of the stores to rank
	distance     finder.DistanceFunc // Distance used to rank stores
	providerName string              // Name of the provider for metrics labeling
	metrics      *metrics.Metrics    // Metrics for tracking lookups
}

// NewStoreFinder creates a new instance of StoreFinder.
// A nil distance ranks stores with finder.Distance.
func NewStoreFinder(
	log *slog.Logger,
	provider geocoding.Provider,
	source catalog.Source,
	distance finder.DistanceFunc,
	providerName string,
	metrics *metrics.Metrics,
) *StoreFinder {
	if distance == nil {
		distance = finder.Distance
	}

	return &StoreFinder{
		log:          log,
		locator:      geocoding.NewLocator(provider, log),
		catalog:      source,
		distance:     distance,
		providerName: providerName,
		metrics:      metrics,
	}
}

// FindStore returns the rendered nearest store for query.
//
// When the query cannot be located the not-found message is returned with a nil error.
// Provider failures, catalog failures and an empty catalog are returned as errors.
func (sf *StoreFinder) FindStore(ctx context.Context, query models.Query) (string, error) {
	startTime := time.Now()
	coords, err := sf.locator.Locate(ctx, query)
	if query.Location() != "" {
		sf.metrics.RequestSeconds.WithLabelValues(sf.providerName).Observe(time.Since(startTime).Seconds())
	}
	if err != nil {
		sf.metrics.APIErrors.Inc()
		sf.metrics.LookupsTotal.WithLabelValues(metrics.ResultError).Inc()
		return "", fmt.Errorf("failed to geocode %q: %w", query.Location(), err)
	}

	if coords == nil {
		sf.log.InfoContext(ctx, "Store was not found", "query", query.String())
		sf.metrics.LookupsTotal.WithLabelValues(metrics.ResultNotFound).Inc()
		return output.NotFound(query), nil
	}

	store, err := finder.Nearest(*coords, sf.counted(sf.catalog.Stores(ctx)), sf.distance)
	if err != nil {
		sf.metrics.LookupsTotal.WithLabelValues(metrics.ResultError).Inc()
		return "", fmt.Errorf("failed to find nearest store: %w", err)
	}

	sf.metrics.NearestKm.Set(store.Distance)
	sf.metrics.LookupsTotal.WithLabelValues(metrics.ResultFound).Inc()
	sf.log.DebugContext(ctx, "Nearest store selected", "store", store.StoreName, "distance_km", store.Distance)

	return output.Format(finder.ConvertUnits(store, query.Units), query.Output)
}

// counted passes stores through, counting every successfully read store.
func (sf *StoreFinder) counted(stores iter.Seq2[models.StoreRecord, error]) iter.Seq2[models.StoreRecord, error] {
	return func(yield func(models.StoreRecord, error) bool) {
		for store, err := range stores {
			if err == nil {
				sf.metrics.StoresScanned.Inc()
			}
			if !yield(store, err) {
				return
			}
		}
	}
}
