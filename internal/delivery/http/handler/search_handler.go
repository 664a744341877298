package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/route-scout/internal/pkg/errors"
	"github.com/route-scout/internal/pkg/utils"
	"github.com/route-scout/internal/pkg/validator"
	"github.com/route-scout/internal/usecase"
	"github.com/route-scout/internal/usecase/dto"
)

// SearchHandler - place search along stored routes
type SearchHandler struct {
	searchUC *usecase.SearchUseCase
	logger   *zap.Logger
}

func NewSearchHandler(searchUC *usecase.SearchUseCase, logger *zap.Logger) *SearchHandler {
	return &SearchHandler{
		searchUC: searchUC,
		logger:   logger,
	}
}

// Search godoc
// @Summary Search places along a route
// @Description Runs a free-text place search along the stored route, annotates each result with its distance to the route, then applies the request filters and ranks by ascending distance.
// @Tags Search
// @Accept json
// @Produce json
// @Param id path string true "Route ID"
// @Param request body dto.SearchRequest true "Search query and filters"
// @Success 200 {object} utils.SuccessResponse{data=dto.SearchResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id}/search [post]
func (h *SearchHandler) Search(c *fiber.Ctx) error {
	var req dto.SearchRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "invalid request body",
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": err.Error(),
		}))
	}

	start := time.Now()
	result, err := h.searchUC.Search(c.Context(), c.Params("id"), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total:    result.Total,
		Filtered: len(result.Places),
		TimeMSec: float64(time.Since(start).Microseconds()) / 1000.0,
	})
}
