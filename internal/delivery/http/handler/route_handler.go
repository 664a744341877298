package handler

import (
	"io"
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/route-scout/internal/pkg/errors"
	"github.com/route-scout/internal/pkg/utils"
	"github.com/route-scout/internal/usecase"
)

// Route files are small; anything bigger is almost certainly not a route.
const maxRouteFileBytes = 10 << 20

// RouteHandler - route upload and retrieval endpoints
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// Upload godoc
// @Summary Upload a route file
// @Description Parses a KML or GPX file and stores the route for later searches. The file format is taken from the file extension.
// @Tags Routes
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Route file (.kml or .gpx)"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /api/v1/routes [post]
func (h *RouteHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "multipart field 'file' is required",
		}))
	}

	if fileHeader.Size > maxRouteFileBytes {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"reason": "file too large",
		}))
	}

	content, err := readUpload(fileHeader)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", zap.String("filename", fileHeader.Filename), zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer)
	}

	result, err := h.routeUC.Upload(c.Context(), fileHeader.Filename, content)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

// Get godoc
// @Summary Get a stored route
// @Description Returns a previously uploaded route including its full point list
// @Tags Routes
// @Produce json
// @Param id path string true "Route ID"
// @Success 200 {object} utils.SuccessResponse{data=dto.RouteDetailResponse}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes/{id} [get]
func (h *RouteHandler) Get(c *fiber.Ctx) error {
	result, err := h.routeUC.Get(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}

func readUpload(fileHeader *multipart.FileHeader) ([]byte, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return io.ReadAll(file)
}
