package domain

// Price level display buckets as surfaced to clients
const (
	PriceFree          = "Free"
	PriceInexpensive   = "$"
	PriceModerate      = "$$"
	PriceExpensive     = "$$$"
	PriceVeryExpensive = "$$$$"
)

// Place - a point of interest returned by the places lookup. Attribute
// fields are optional because the upstream API omits them freely; they are
// carried through untouched.
type Place struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Address     string   `json:"address,omitempty"`
	Lat         float64  `json:"lat"`
	Lon         float64  `json:"lon"`
	Rating      *float64 `json:"rating,omitempty"`
	RatingCount *int     `json:"rating_count,omitempty"`
	PriceLevel  string   `json:"price_level,omitempty"`
	OpenNow     *bool    `json:"open_now,omitempty"`
	Types       []string `json:"types,omitempty"`
	MapsURL     string   `json:"maps_url,omitempty"`
}

// PlaceWithDistance - a place annotated with its minimum distance to the
// route and the index of the nearest route segment.
type PlaceWithDistance struct {
	Place
	DistanceMeters float64 `json:"distance_m"`
	SegmentIndex   int     `json:"segment_index"`
}
