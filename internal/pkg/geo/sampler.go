package geo

// Sample reduces a route to query points at approximately uniform arc-length
// spacing. The first and last route points are always included. When the
// requested spacing would produce more than maxSamples points, the spacing is
// widened to fit the budget, so the result never exceeds maxSamples.
func Sample(route []Point, spacingMeters float64, maxSamples int) ([]Point, error) {
	if len(route) < 2 {
		return nil, ErrInvalidRoute
	}
	if maxSamples < 2 {
		maxSamples = 2
	}

	// Cumulative arc length along the polyline
	cumulative := make([]float64, len(route))
	for i := 1; i < len(route); i++ {
		cumulative[i] = cumulative[i-1] + Haversine(route[i-1], route[i])
	}
	total := cumulative[len(route)-1]

	if total == 0 {
		return []Point{route[0], route[len(route)-1]}, nil
	}

	if spacingMeters <= 0 {
		spacingMeters = total / float64(maxSamples-1)
	}

	// Widen spacing so the sample count stays within budget
	if minSpacing := total / float64(maxSamples-1); spacingMeters < minSpacing {
		spacingMeters = minSpacing
	}

	samples := []Point{route[0]}
	seg := 0

	// Walk the cumulative-length axis; stop short of the end so the final
	// point is never duplicated.
	const endEpsilon = 1e-6
	for target := spacingMeters; target < total-endEpsilon; target += spacingMeters {
		for seg < len(route)-2 && cumulative[seg+1] < target {
			seg++
		}
		samples = append(samples, interpolate(route[seg], route[seg+1], cumulative[seg], cumulative[seg+1], target))
	}

	samples = append(samples, route[len(route)-1])
	return samples, nil
}

// interpolate linearly interpolates a point at arc length target between two
// route vertices at arc lengths lo and hi. Linear interpolation in geographic
// space is an acceptable approximation at route scale.
func interpolate(a, b Point, lo, hi, target float64) Point {
	if hi <= lo {
		return a
	}
	t := (target - lo) / (hi - lo)
	return Point{
		Lat: a.Lat + t*(b.Lat-a.Lat),
		Lon: a.Lon + t*(b.Lon-a.Lon),
	}
}
