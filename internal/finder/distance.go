package finder

import (
	"math"

	"github.com/UnknownOlympus/storefinder/internal/models"
)

// DegreeLength is the fixed length of one degree of latitude, in kilometers.
const DegreeLength = 110.25

// DistanceFunc returns the distance in kilometers between a query point and a store at lat, lng.
type DistanceFunc func(query models.Coordinates, lat, lng float64) float64

// Distance is the planar approximation used for store ranking.
//
// The longitude difference is scaled by cos(lng) where lng is the store's longitude in degrees
// fed to math.Cos unconverted. Rankings and printed distances depend on this exact form.
func Distance(query models.Coordinates, lat, lng float64) float64 {
	return planar(query.Latitude-lat, (query.Longitude-lng)*math.Cos(lng))
}

// CorrectedDistance is the equirectangular form of Distance: the longitude difference is scaled
// by the cosine of the store's latitude in radians.
func CorrectedDistance(query models.Coordinates, lat, lng float64) float64 {
	return planar(query.Latitude-lat, (query.Longitude-lng)*math.Cos(lat*math.Pi/180))
}

func planar(latDiff, lngDiff float64) float64 {
	return DegreeLength * math.Sqrt(latDiff*latDiff+lngDiff*lngDiff)
}
