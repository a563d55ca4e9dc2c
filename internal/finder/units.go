package finder

import "github.com/UnknownOlympus/storefinder/internal/models"

// KilometersToMiles converts kilometers to miles.
const KilometersToMiles = 0.621371

// ConvertUnits returns a copy of store tagged with units.
// The store's distance is expected in kilometers; anything but km is reported in miles.
func ConvertUnits(store models.RankedStore, units models.Units) models.RankedStore {
	if units == models.UnitsKilometers {
		store.Units = models.UnitsKilometers
		return store
	}

	store.Units = models.UnitsMiles
	store.Distance *= KilometersToMiles

	return store
}
