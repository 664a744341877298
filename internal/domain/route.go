package domain

import (
	"time"

	"github.com/route-scout/internal/pkg/geo"
)

// Route - an uploaded travel path, parsed from a KML or GPX file.
// Points are in travel order and immutable once stored.
type Route struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Format       string      `json:"format"`
	Points       []geo.Point `json:"points"`
	LengthMeters float64     `json:"length_meters"`
	CreatedAt    time.Time   `json:"created_at"`
}

// Start returns the first route point
func (r *Route) Start() geo.Point {
	return r.Points[0]
}

// End returns the last route point
func (r *Route) End() geo.Point {
	return r.Points[len(r.Points)-1]
}
