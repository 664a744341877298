package repository

import (
	"context"
	"time"

	"github.com/route-scout/internal/domain"
)

// RouteRepository stores parsed routes for the lifetime of a session
type RouteRepository interface {
	Save(ctx context.Context, route *domain.Route, ttl time.Duration) error
	GetByID(ctx context.Context, id string) (*domain.Route, error)
	Delete(ctx context.Context, id string) error
}
