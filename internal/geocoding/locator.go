package geocoding

import (
	"context"
	"errors"
	"log/slog"

	"github.com/UnknownOlympus/storefinder/internal/models"
)

// Locator turns a Query into coordinates using a Provider.
type Locator struct {
	provider Provider
	log      *slog.Logger
}

// NewLocator creates a Locator backed by provider.
func NewLocator(provider Provider, log *slog.Logger) *Locator {
	return &Locator{provider: provider, log: log}
}

// Locate geocodes the query's address, or its zip when no address is set.
//
// A nil result with a nil error means no location was found: the query carries neither
// field, or the provider reported no match. Any other provider failure is returned as is.
func (l *Locator) Locate(ctx context.Context, query models.Query) (*models.Coordinates, error) {
	location := query.Location()
	if location == "" {
		l.log.DebugContext(ctx, "Query has neither address nor zip")
		return nil, nil
	}

	coords, err := l.provider.Geocode(ctx, location)
	if errors.Is(err, ErrNoMatch) {
		l.log.InfoContext(ctx, "Location not found by provider", "location", location)
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	l.log.DebugContext(ctx, "Location resolved", "location", location, "lat", coords.Latitude, "lon", coords.Longitude)

	return coords, nil
}
