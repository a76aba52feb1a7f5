package utils

import (
	"github.com/mmcloughlin/geohash"
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// WithinWorldBounds reports whether the point is a real-world coordinate
func (p GeoPoint) WithinWorldBounds() bool {
	return p.Latitude >= -90 && p.Latitude <= 90 && p.Longitude >= -180 && p.Longitude <= 180
}

// EncodeLocation converts a point to a geohash string. Points outside the
// world bounds have no geohash and yield "".
func EncodeLocation(point GeoPoint, precision uint) string {
	if !point.WithinWorldBounds() {
		return ""
	}
	return geohash.EncodeWithPrecision(point.Latitude, point.Longitude, precision)
}
