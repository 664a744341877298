package geo

import (
	"errors"
	"math"
)

const earthRadiusM = 6371000.0

var (
	// ErrInvalidCoordinate is returned when latitude or longitude is out of range
	ErrInvalidCoordinate = errors.New("invalid coordinates: latitude must be in [-90, 90], longitude in [-180, 180]")

	// ErrInvalidRoute is returned when a route has fewer than 2 points
	ErrInvalidRoute = errors.New("route must have at least 2 points")
)

// Point - geographic coordinate in degrees
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// DistanceResult - minimum distance from a point to a route polyline
type DistanceResult struct {
	Meters       float64 `json:"meters"`
	SegmentIndex int     `json:"segment_index"`
}

// NewPoint creates a Point, validating coordinate ranges
func NewPoint(lat, lon float64) (Point, error) {
	p := Point{Lat: lat, Lon: lon}
	if !Valid(p) {
		return Point{}, ErrInvalidCoordinate
	}
	return p, nil
}

// Valid reports whether the point's coordinates are in range
func Valid(p Point) bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lon >= -180 && p.Lon <= 180
}

// Haversine calculates great-circle distance between two points in meters
func Haversine(a, b Point) float64 {
	if a.Lat == b.Lat && a.Lon == b.Lon {
		return 0
	}

	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusM * c
}

// RouteLength returns the total arc length of the polyline in meters
func RouteLength(route []Point) float64 {
	total := 0.0
	for i := 0; i < len(route)-1; i++ {
		total += Haversine(route[i], route[i+1])
	}
	return total
}

// DistanceToRoute returns the minimum distance in meters from p to the route
// polyline, together with the index of the nearest segment.
func DistanceToRoute(p Point, route []Point) (DistanceResult, error) {
	if !Valid(p) {
		return DistanceResult{}, ErrInvalidCoordinate
	}
	if len(route) < 2 {
		return DistanceResult{}, ErrInvalidRoute
	}

	result := DistanceResult{Meters: math.Inf(1)}
	for i := 0; i < len(route)-1; i++ {
		d := pointToSegment(p, route[i], route[i+1])
		if d < result.Meters {
			result.Meters = d
			result.SegmentIndex = i
		}
	}

	return result, nil
}

// pointToSegment calculates the cross-track distance from p to the great-circle
// segment [a, b], clamped to the segment endpoints when the projection falls
// outside it.
func pointToSegment(p, a, b Point) float64 {
	if a.Lat == b.Lat && a.Lon == b.Lon {
		return Haversine(p, a)
	}

	distToStart := Haversine(p, a)
	if distToStart == 0 {
		return 0
	}

	distToEnd := Haversine(p, b)
	segmentLength := Haversine(a, b)

	// Degenerate segment, endpoint distance is as good as it gets
	if segmentLength < 1 {
		return math.Min(distToStart, distToEnd)
	}

	// Angular distance from segment start to the point
	d13 := distToStart / earthRadiusM

	bearingAB := initialBearing(a, b)
	bearingAP := initialBearing(a, p)

	// Projection falls before the segment start
	if math.Cos(bearingAP-bearingAB) < 0 {
		return distToStart
	}

	dxt := math.Asin(math.Sin(d13) * math.Sin(bearingAP-bearingAB))
	crossTrack := math.Abs(dxt) * earthRadiusM

	// Along-track distance from the start to the projection foot
	alongTrack := math.Acos(math.Cos(d13)/math.Cos(dxt)) * earthRadiusM

	// Projection falls beyond the segment end
	if alongTrack > segmentLength {
		return distToEnd
	}

	return crossTrack
}

// initialBearing returns the initial great-circle bearing from a to b in radians
func initialBearing(a, b Point) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)

	return math.Atan2(y, x)
}
