package dto

// SearchRequest - search for places along a stored route
type SearchRequest struct {
	Query      string        `json:"query" validate:"required,min=2"`
	MaxResults int           `json:"max_results" validate:"omitempty,min=1,max=50"`
	Filters    SearchFilters `json:"filters"`
}

// SearchFilters - optional predicates applied to search results.
// MaxDistanceMeters is a pointer so that an explicit 0 (nothing passes unless
// exactly on the route) is distinguishable from "no distance filter".
type SearchFilters struct {
	MaxDistanceMeters *float64 `json:"max_distance_m" validate:"omitempty,min=0"`
	MinRating         float64  `json:"min_rating" validate:"omitempty,min=0,max=5"`
	PriceLevels       []string `json:"price_levels" validate:"omitempty,dive,oneof=Free $ $$ $$$ $$$$"`
	OpenNow           bool     `json:"open_now"`
}
