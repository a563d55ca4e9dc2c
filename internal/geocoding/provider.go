package geocoding

import (
	"context"
	"errors"

	"github.com/UnknownOlympus/storefinder/internal/models"
)

// ErrNoMatch is wrapped by every provider error that means "the provider found nothing".
// Callers treat it as a normal outcome rather than a failure.
var ErrNoMatch = errors.New("no geocoding match")

// Provider is an interface that defines a method for forward geocoding a free-text location.
// The Geocode method takes a context and a location string as input,
// and returns the coordinates of the first candidate and an error if any occurs.
type Provider interface {
	Geocode(ctx context.Context, address string) (*models.Coordinates, error)
}
