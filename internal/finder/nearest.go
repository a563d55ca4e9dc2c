// Package finder selects the catalog store closest to a query location.
package finder

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	"github.com/UnknownOlympus/storefinder/internal/models"
)

var (
	// ErrEmptyCatalog is returned when there is no store to rank.
	ErrEmptyCatalog = errors.New("store catalog is empty")
	// ErrInvalidCoordinate is returned when a store's latitude or longitude is not a number.
	ErrInvalidCoordinate = errors.New("invalid store coordinate")
)

// Nearest scans stores once and returns the store closest to query, with its distance in kilometers.
// The first store seen wins a tie. Units are left unset; see ConvertUnits.
// A nil distance defaults to Distance.
func Nearest(
	query models.Coordinates,
	stores iter.Seq2[models.StoreRecord, error],
	distance DistanceFunc,
) (models.RankedStore, error) {
	if distance == nil {
		distance = Distance
	}

	var (
		best  models.RankedStore
		found bool
		row   int
	)

	for store, err := range stores {
		row++
		if err != nil {
			return models.RankedStore{}, fmt.Errorf("failed to read store %d: %w", row, err)
		}

		lat, lng, err := parseCoordinates(store)
		if err != nil {
			return models.RankedStore{}, fmt.Errorf("store %d (%s): %w", row, store.StoreName, err)
		}

		d := distance(query, lat, lng)
		if !found || d < best.Distance {
			best = models.RankedStore{StoreRecord: store, Distance: d}
			found = true
		}
	}

	if !found {
		return models.RankedStore{}, ErrEmptyCatalog
	}

	return best, nil
}

func parseCoordinates(store models.StoreRecord) (float64, float64, error) {
	lat, err := strconv.ParseFloat(strings.TrimSpace(store.Latitude), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: latitude %q", ErrInvalidCoordinate, store.Latitude)
	}

	lng, err := strconv.ParseFloat(strings.TrimSpace(store.Longitude), 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: longitude %q", ErrInvalidCoordinate, store.Longitude)
	}

	return lat, lng, nil
}
