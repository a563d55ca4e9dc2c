package geocoding

import (
	"context"
	"fmt"
	"strings"

	"github.com/UnknownOlympus/storefinder/internal/models"
)

// ErrStaticUnknownLocation is returned by StaticProvider for locations it does not know.
var ErrStaticUnknownLocation = fmt.Errorf("static provider has no entry for location: %w", ErrNoMatch)

// StaticProvider answers from a fixed table of locations without touching the network.
// Lookups ignore case and surrounding whitespace.
type StaticProvider struct {
	entries map[string]models.Coordinates
}

// NewStaticProvider creates a StaticProvider from location/coordinates pairs.
func NewStaticProvider(entries map[string]models.Coordinates) *StaticProvider {
	normalized := make(map[string]models.Coordinates, len(entries))
	for location, coords := range entries {
		normalized[normalizeLocation(location)] = coords
	}

	return &StaticProvider{entries: normalized}
}

// Geocode returns the stored coordinates for address.
func (sp *StaticProvider) Geocode(ctx context.Context, address string) (*models.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	coords, ok := sp.entries[normalizeLocation(address)]
	if !ok {
		return nil, ErrStaticUnknownLocation
	}

	return &coords, nil
}

func normalizeLocation(location string) string {
	return strings.ToLower(strings.TrimSpace(location))
}
