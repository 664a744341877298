package errors

import "net/http"

var (
	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Route not found or expired",
		http.StatusNotFound,
	)

	ErrInvalidRoute = New(
		"INVALID_ROUTE",
		"Route must contain at least 2 points",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrUnsupportedFileFormat = New(
		"UNSUPPORTED_FILE_FORMAT",
		"Route file must be KML or GPX",
		http.StatusBadRequest,
	)

	ErrEmptyRouteFile = New(
		"EMPTY_ROUTE_FILE",
		"Route file contains no coordinates",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrPlacesAPI = New(
		"PLACES_API_ERROR",
		"Places lookup failed",
		http.StatusBadGateway,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
