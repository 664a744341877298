package usecase

import (
	"context"
	stderrors "errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/route-scout/internal/domain"
	"github.com/route-scout/internal/domain/repository"
	"github.com/route-scout/internal/pkg/errors"
	"github.com/route-scout/internal/pkg/geo"
	"github.com/route-scout/internal/pkg/routefile"
	"github.com/route-scout/internal/usecase/dto"
)

// RouteUseCase - upload and retrieval of routes
type RouteUseCase struct {
	routeRepo repository.RouteRepository
	logger    *zap.Logger
	routeTTL  time.Duration
}

func NewRouteUseCase(
	routeRepo repository.RouteRepository,
	logger *zap.Logger,
	routeTTL time.Duration,
) *RouteUseCase {
	return &RouteUseCase{
		routeRepo: routeRepo,
		logger:    logger,
		routeTTL:  routeTTL,
	}
}

// Upload parses an uploaded KML/GPX file and stores the resulting route
func (uc *RouteUseCase) Upload(ctx context.Context, filename string, content []byte) (*dto.RouteResponse, error) {
	format := strings.ToLower(strings.TrimPrefix(filepath.Ext(filename), "."))

	points, err := routefile.Parse(content, format)
	if err != nil {
		uc.logger.Warn("Failed to parse route file",
			zap.String("filename", filename),
			zap.Error(err))
		return nil, mapParseError(err)
	}

	if len(points) < 2 {
		return nil, errors.ErrInvalidRoute
	}

	route := &domain.Route{
		ID:           uuid.NewString(),
		Name:         filename,
		Format:       format,
		Points:       points,
		LengthMeters: geo.RouteLength(points),
		CreatedAt:    time.Now().UTC(),
	}

	if err := uc.routeRepo.Save(ctx, route, uc.routeTTL); err != nil {
		uc.logger.Error("Failed to store route", zap.String("route_id", route.ID), zap.Error(err))
		return nil, errors.ErrCacheError
	}

	uc.logger.Info("Route uploaded",
		zap.String("route_id", route.ID),
		zap.String("format", format),
		zap.Int("points", len(points)),
		zap.Float64("length_m", route.LengthMeters),
	)

	resp := dto.NewRouteResponse(route)
	return &resp, nil
}

// Get returns a stored route with its full point list
func (uc *RouteUseCase) Get(ctx context.Context, id string) (*dto.RouteDetailResponse, error) {
	route, err := uc.routeRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to load route", zap.String("route_id", id), zap.Error(err))
		return nil, errors.ErrCacheError
	}
	if route == nil {
		return nil, errors.ErrRouteNotFound
	}

	return &dto.RouteDetailResponse{
		RouteResponse: dto.NewRouteResponse(route),
		Points:        route.Points,
	}, nil
}

// mapParseError converts parse failures into client-facing errors
func mapParseError(err error) error {
	switch {
	case stderrors.Is(err, routefile.ErrUnsupportedFormat):
		return errors.ErrUnsupportedFileFormat
	case stderrors.Is(err, routefile.ErrNoCoordinates):
		return errors.ErrEmptyRouteFile
	case stderrors.Is(err, geo.ErrInvalidCoordinate):
		return errors.ErrInvalidCoordinates
	default:
		return errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		})
	}
}
