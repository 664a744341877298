package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/route-scout/internal/domain"
	"github.com/route-scout/internal/domain/repository"
	"go.uber.org/zap"
)

type routeRepository struct {
	client *redis.Client
	logger *zap.Logger
}

// NewRouteRepository stores parsed routes as JSON blobs with a TTL. Uploaded
// routes are session data, not durable records, so redis is the system of
// record for them.
func NewRouteRepository(redis *Redis) repository.RouteRepository {
	return &routeRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func routeKey(id string) string {
	return fmt.Sprintf("route:%s", id)
}

func (r *routeRepository) Save(ctx context.Context, route *domain.Route, ttl time.Duration) error {
	data, err := json.Marshal(route)
	if err != nil {
		r.logger.Error("Failed to marshal route", zap.String("route_id", route.ID), zap.Error(err))
		return fmt.Errorf("marshal route: %w", err)
	}

	if err := r.client.Set(ctx, routeKey(route.ID), data, ttl).Err(); err != nil {
		r.logger.Error("Failed to store route", zap.String("route_id", route.ID), zap.Error(err))
		return fmt.Errorf("store route: %w", err)
	}

	r.logger.Debug("Route stored",
		zap.String("route_id", route.ID),
		zap.Int("points", len(route.Points)),
		zap.Duration("ttl", ttl),
	)
	return nil
}

func (r *routeRepository) GetByID(ctx context.Context, id string) (*domain.Route, error) {
	data, err := r.client.Get(ctx, routeKey(id)).Bytes()
	if err == redis.Nil {
		return nil, nil // Not found or expired
	}
	if err != nil {
		r.logger.Error("Failed to load route", zap.String("route_id", id), zap.Error(err))
		return nil, fmt.Errorf("load route: %w", err)
	}

	var route domain.Route
	if err := json.Unmarshal(data, &route); err != nil {
		r.logger.Error("Failed to unmarshal route", zap.String("route_id", id), zap.Error(err))
		return nil, fmt.Errorf("unmarshal route: %w", err)
	}

	return &route, nil
}

func (r *routeRepository) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, routeKey(id)).Err(); err != nil {
		r.logger.Error("Failed to delete route", zap.String("route_id", id), zap.Error(err))
		return fmt.Errorf("delete route: %w", err)
	}
	return nil
}
