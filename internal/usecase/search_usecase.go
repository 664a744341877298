package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"

	"github.com/route-scout/internal/domain"
	"github.com/route-scout/internal/domain/repository"
	"github.com/route-scout/internal/pkg/errors"
	"github.com/route-scout/internal/pkg/geo"
	"github.com/route-scout/internal/usecase/dto"
)

// SamplerConfig bounds the polyline sent to the places provider
type SamplerConfig struct {
	SpacingMeters float64
	MaxSamples    int
}

// SearchUseCase runs proximity searches along stored routes
type SearchUseCase struct {
	routeRepo         repository.RouteRepository
	placesRepo        repository.PlacesRepository
	cacheRepo         repository.CacheRepository
	logger            *zap.Logger
	sampler           SamplerConfig
	searchCacheTTL    time.Duration
	defaultMaxResults int
}

func NewSearchUseCase(
	routeRepo repository.RouteRepository,
	placesRepo repository.PlacesRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	sampler SamplerConfig,
	searchCacheTTL time.Duration,
	defaultMaxResults int,
) *SearchUseCase {
	return &SearchUseCase{
		routeRepo:         routeRepo,
		placesRepo:        placesRepo,
		cacheRepo:         cacheRepo,
		logger:            logger,
		sampler:           sampler,
		searchCacheTTL:    searchCacheTTL,
		defaultMaxResults: defaultMaxResults,
	}
}

// Search finds places along the route and applies the request filters.
// Provider results are cached per (route, query, max_results); filters
// and ranking run on every call so they never hit the provider.
func (uc *SearchUseCase) Search(ctx context.Context, routeID string, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	maxResults := req.MaxResults
	if maxResults <= 0 {
		maxResults = uc.defaultMaxResults
	}

	route, err := uc.routeRepo.GetByID(ctx, routeID)
	if err != nil {
		uc.logger.Error("Failed to load route", zap.String("route_id", routeID), zap.Error(err))
		return nil, errors.ErrCacheError
	}
	if route == nil {
		return nil, errors.ErrRouteNotFound
	}

	cacheKey := searchCacheKey(routeID, req.Query, maxResults)

	if cached := uc.cachedResults(ctx, cacheKey); cached != nil {
		filtered := FilterRank(cached, req.Filters)
		return &dto.SearchResponse{Places: filtered, Total: len(cached)}, nil
	}

	results, err := uc.fetchAlongRoute(ctx, route, req.Query, maxResults)
	if err != nil {
		return nil, err
	}

	uc.storeResults(ctx, cacheKey, results)

	filtered := FilterRank(results, req.Filters)
	return &dto.SearchResponse{Places: filtered, Total: len(results)}, nil
}

// fetchAlongRoute samples the route, queries the provider and attaches
// route distances to each returned place
func (uc *SearchUseCase) fetchAlongRoute(ctx context.Context, route *domain.Route, query string, maxResults int) ([]domain.PlaceWithDistance, error) {
	samples, err := geo.Sample(route.Points, uc.sampler.SpacingMeters, uc.sampler.MaxSamples)
	if err != nil {
		uc.logger.Error("Failed to sample route", zap.String("route_id", route.ID), zap.Error(err))
		return nil, errors.ErrInvalidRoute
	}

	coords := make([][]float64, len(samples))
	for i, p := range samples {
		coords[i] = []float64{p.Lat, p.Lon}
	}
	encoded := string(polyline.EncodeCoords(coords))

	places, err := uc.placesRepo.SearchAlongRoute(ctx, encoded, query, maxResults)
	if err != nil {
		uc.logger.Error("Places provider request failed",
			zap.String("route_id", route.ID),
			zap.String("query", query),
			zap.Error(err))
		return nil, errors.ErrPlacesAPI
	}

	results := make([]domain.PlaceWithDistance, 0, len(places))
	for _, place := range places {
		candidate, err := geo.NewPoint(place.Lat, place.Lon)
		if err != nil {
			uc.logger.Warn("Skipping place with invalid coordinates",
				zap.String("place_id", place.ID),
				zap.Float64("lat", place.Lat),
				zap.Float64("lon", place.Lon))
			continue
		}

		dist, err := geo.DistanceToRoute(candidate, route.Points)
		if err != nil {
			uc.logger.Warn("Failed to compute route distance",
				zap.String("place_id", place.ID),
				zap.Error(err))
			continue
		}

		results = append(results, domain.PlaceWithDistance{
			Place:          place,
			DistanceMeters: dist.Meters,
			SegmentIndex:   dist.SegmentIndex,
		})
	}

	uc.logger.Info("Places search completed",
		zap.String("route_id", route.ID),
		zap.String("query", query),
		zap.Int("samples", len(samples)),
		zap.Int("results", len(results)),
	)

	return results, nil
}

// cachedResults returns previously fetched results or nil on miss.
// Cache failures degrade to a provider call, never to an error.
func (uc *SearchUseCase) cachedResults(ctx context.Context, key string) []domain.PlaceWithDistance {
	data, err := uc.cacheRepo.Get(ctx, key)
	if err != nil || len(data) == 0 {
		return nil
	}

	var results []domain.PlaceWithDistance
	if err := json.Unmarshal(data, &results); err != nil {
		uc.logger.Warn("Failed to decode cached search results", zap.String("key", key), zap.Error(err))
		return nil
	}
	return results
}

func (uc *SearchUseCase) storeResults(ctx context.Context, key string, results []domain.PlaceWithDistance) {
	data, err := json.Marshal(results)
	if err != nil {
		return
	}
	if err := uc.cacheRepo.Set(ctx, key, data, uc.searchCacheTTL); err != nil {
		uc.logger.Warn("Failed to cache search results", zap.String("key", key), zap.Error(err))
	}
}

func searchCacheKey(routeID, query string, maxResults int) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%s|%d", routeID, query, maxResults)))
	return "search:" + hex.EncodeToString(sum[:])
}
