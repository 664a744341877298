package dto

import (
	"time"

	"github.com/route-scout/internal/domain"
	"github.com/route-scout/internal/pkg/geo"
)

// RouteResponse - summary of a stored route
type RouteResponse struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Format       string    `json:"format"`
	PointCount   int       `json:"point_count"`
	LengthMeters float64   `json:"length_meters"`
	Start        geo.Point `json:"start"`
	End          geo.Point `json:"end"`
	CreatedAt    time.Time `json:"created_at"`
}

// RouteDetailResponse - route summary plus the full point list
type RouteDetailResponse struct {
	RouteResponse
	Points []geo.Point `json:"points"`
}

// SearchResponse - filtered and ranked places along a route.
// Total counts the raw lookup results before filters were applied.
type SearchResponse struct {
	Places []domain.PlaceWithDistance `json:"places"`
	Total  int                        `json:"total"`
}

// NewRouteResponse builds the summary view of a route
func NewRouteResponse(route *domain.Route) RouteResponse {
	return RouteResponse{
		ID:           route.ID,
		Name:         route.Name,
		Format:       route.Format,
		PointCount:   len(route.Points),
		LengthMeters: route.LengthMeters,
		Start:        route.Start(),
		End:          route.End(),
		CreatedAt:    route.CreatedAt,
	}
}
