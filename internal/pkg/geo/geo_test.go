package geo

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPoint(t *testing.T) {
	t.Run("valid coordinates", func(t *testing.T) {
		p, err := NewPoint(41.3851, 2.1734)
		require.NoError(t, err)
		assert.Equal(t, 41.3851, p.Lat)
		assert.Equal(t, 2.1734, p.Lon)
	})

	t.Run("latitude out of range", func(t *testing.T) {
		_, err := NewPoint(91.0, 0)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})

	t.Run("longitude out of range", func(t *testing.T) {
		_, err := NewPoint(0, -180.5)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})
}

func TestHaversine(t *testing.T) {
	t.Run("identical points", func(t *testing.T) {
		p := Point{Lat: 38.1327, Lon: -120.4606}
		assert.Equal(t, 0.0, Haversine(p, p))
	})

	t.Run("one degree of longitude at the equator", func(t *testing.T) {
		d := Haversine(Point{Lat: 0, Lon: 0}, Point{Lat: 0, Lon: 1})
		// 1 degree of arc on a 6371 km sphere is ~111.19 km
		assert.InDelta(t, 111195, d, 50)
	})

	t.Run("symmetric", func(t *testing.T) {
		a := Point{Lat: 38.0674, Lon: -120.5402}
		b := Point{Lat: 38.2458, Lon: -120.3486}
		assert.Equal(t, Haversine(a, b), Haversine(b, a))
	})
}

func TestDistanceToRoute(t *testing.T) {
	t.Run("route with fewer than 2 points", func(t *testing.T) {
		_, err := DistanceToRoute(Point{}, []Point{{Lat: 0, Lon: 0}})
		assert.ErrorIs(t, err, ErrInvalidRoute)
	})

	t.Run("invalid candidate point", func(t *testing.T) {
		route := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}}
		_, err := DistanceToRoute(Point{Lat: 95, Lon: 0}, route)
		assert.ErrorIs(t, err, ErrInvalidCoordinate)
	})

	t.Run("point on a segment endpoint is zero", func(t *testing.T) {
		route := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 1, Lon: 1}}
		res, err := DistanceToRoute(Point{Lat: 0, Lon: 1}, route)
		require.NoError(t, err)
		assert.Equal(t, 0.0, res.Meters)
		assert.Contains(t, []int{0, 1}, res.SegmentIndex)
	})

	t.Run("point on segment interior is near zero", func(t *testing.T) {
		route := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}}
		res, err := DistanceToRoute(Point{Lat: 0, Lon: 0.5}, route)
		require.NoError(t, err)
		assert.InDelta(t, 0.0, res.Meters, 1)
	})

	t.Run("perpendicular distance to a straight segment", func(t *testing.T) {
		route := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}}
		res, err := DistanceToRoute(Point{Lat: 0.5, Lon: 0.5}, route)
		require.NoError(t, err)

		assert.Equal(t, 0, res.SegmentIndex)
		assert.Greater(t, res.Meters, 0.0)
		// Cross-track distance to the equator is the distance to (0, 0.5)
		expected := Haversine(Point{Lat: 0.5, Lon: 0.5}, Point{Lat: 0, Lon: 0.5})
		assert.InDelta(t, expected, res.Meters, expected*0.01)
	})

	t.Run("projection beyond segment end clamps to endpoint", func(t *testing.T) {
		route := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}}
		res, err := DistanceToRoute(Point{Lat: 0, Lon: 2}, route)
		require.NoError(t, err)

		expected := Haversine(Point{Lat: 0, Lon: 2}, Point{Lat: 0, Lon: 1})
		assert.InDelta(t, expected, res.Meters, 1)
	})

	t.Run("projection before segment start clamps to start", func(t *testing.T) {
		route := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}}
		res, err := DistanceToRoute(Point{Lat: 0, Lon: -1}, route)
		require.NoError(t, err)

		expected := Haversine(Point{Lat: 0, Lon: -1}, Point{Lat: 0, Lon: 0})
		assert.InDelta(t, expected, res.Meters, 1)
	})

	t.Run("invariant under route reversal", func(t *testing.T) {
		route := []Point{
			{Lat: 38.0674, Lon: -120.5402},
			{Lat: 38.1327, Lon: -120.4606},
			{Lat: 38.2458, Lon: -120.3486},
			{Lat: 38.5347, Lon: -119.8075},
		}
		reversed := make([]Point, len(route))
		for i, p := range route {
			reversed[len(route)-1-i] = p
		}

		candidate := Point{Lat: 38.3461, Lon: -120.2036}

		forward, err := DistanceToRoute(candidate, route)
		require.NoError(t, err)
		backward, err := DistanceToRoute(candidate, reversed)
		require.NoError(t, err)

		assert.InDelta(t, forward.Meters, backward.Meters, forward.Meters*0.001+0.01)
	})

	t.Run("nearest segment wins over a farther one", func(t *testing.T) {
		route := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 1, Lon: 1}}
		res, err := DistanceToRoute(Point{Lat: 0.5, Lon: 0.99}, route)
		require.NoError(t, err)
		assert.Equal(t, 1, res.SegmentIndex)
	})
}

func TestRouteLength(t *testing.T) {
	route := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}, {Lat: 0, Lon: 2}}
	length := RouteLength(route)
	assert.InDelta(t, 2*Haversine(Point{Lat: 0, Lon: 0}, Point{Lat: 0, Lon: 1}), length, 1)

	assert.Equal(t, 0.0, RouteLength([]Point{{Lat: 10, Lon: 10}}))
}

func TestSample(t *testing.T) {
	t.Run("route with fewer than 2 points", func(t *testing.T) {
		_, err := Sample([]Point{{Lat: 0, Lon: 0}}, 1000, 100)
		assert.ErrorIs(t, err, ErrInvalidRoute)
	})

	t.Run("includes first and last point", func(t *testing.T) {
		route := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 0.5}, {Lat: 0, Lon: 1}}
		samples, err := Sample(route, 10000, 100)
		require.NoError(t, err)

		assert.Equal(t, route[0], samples[0])
		assert.Equal(t, route[len(route)-1], samples[len(samples)-1])
	})

	t.Run("never exceeds the budget", func(t *testing.T) {
		route := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 5}}
		for _, budget := range []int{2, 3, 10, 50} {
			samples, err := Sample(route, 100, budget) // 100m spacing over ~556km
			require.NoError(t, err)
			assert.LessOrEqual(t, len(samples), budget, "budget %d", budget)
			assert.GreaterOrEqual(t, len(samples), 2)
		}
	})

	t.Run("uniform spacing along a straight route", func(t *testing.T) {
		route := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}}
		total := Haversine(route[0], route[1])

		samples, err := Sample(route, total/4, 100)
		require.NoError(t, err)
		require.Len(t, samples, 5)

		for i := 0; i < len(samples)-1; i++ {
			step := Haversine(samples[i], samples[i+1])
			assert.InDelta(t, total/4, step, total*0.01)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		route := []Point{
			{Lat: 38.0674, Lon: -120.5402},
			{Lat: 38.1327, Lon: -120.4606},
			{Lat: 38.2458, Lon: -120.3486},
		}
		first, err := Sample(route, 1000, 50)
		require.NoError(t, err)
		second, err := Sample(route, 1000, 50)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})

	t.Run("degenerate zero-length route", func(t *testing.T) {
		route := []Point{{Lat: 10, Lon: 10}, {Lat: 10, Lon: 10}}
		samples, err := Sample(route, 1000, 100)
		require.NoError(t, err)
		assert.Len(t, samples, 2)
	})

	t.Run("non-positive spacing falls back to the budget", func(t *testing.T) {
		route := []Point{{Lat: 0, Lon: 0}, {Lat: 0, Lon: 1}}
		samples, err := Sample(route, 0, 11)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(samples), 11)
		assert.GreaterOrEqual(t, len(samples), 10)
	})

	t.Run("sampled points stay on the route envelope", func(t *testing.T) {
		route := []Point{{Lat: 0, Lon: 0}, {Lat: 1, Lon: 1}}
		samples, err := Sample(route, 0, 20)
		require.NoError(t, err)

		for _, s := range samples {
			assert.GreaterOrEqual(t, s.Lat, 0.0)
			assert.LessOrEqual(t, s.Lat, 1.0)
			assert.InDelta(t, s.Lat, s.Lon, 1e-9, "diagonal route keeps lat == lon")
			assert.False(t, math.IsNaN(s.Lat))
		}
	})
}
