// Package docs Route Scout API.
//
// Service for searching points of interest along uploaded routes.
// Accepts KML and GPX route files, queries the Google Places API along
// the route, and ranks results by their distance to the route.
//
// Main features:
// - KML/GPX route upload and parsing
// - Free-text place search along a stored route
// - Distance, rating, price and open-now filtering
// - Results ranked by distance to the route
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//	- multipart/form-data
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
