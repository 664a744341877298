package repository

import (
	"context"

	"github.com/route-scout/internal/domain"
)

// PlacesRepository - external places lookup, keyed by an encoded route polyline
type PlacesRepository interface {
	// SearchAlongRoute queries places matching the free-text query near the
	// route described by the encoded polyline
	SearchAlongRoute(ctx context.Context, encodedPolyline, query string, maxResults int) ([]domain.Place, error)
}
