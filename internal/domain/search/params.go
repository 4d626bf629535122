package search

import "github.com/erick-chung/near-you/internal/domain"

// Radius options offered by the API surface, in meters (half mile through
// five miles). The pipeline itself accepts any positive radius.
const (
	RadiusHalfMile  = 805
	RadiusOneMile   = 1609
	RadiusTwoMiles  = 3219
	RadiusFiveMiles = 8047
)

// DefaultRadius is used when a search does not specify one.
const DefaultRadius = RadiusOneMile

// FilterOptions narrows a result set. Zero-valued fields do not filter.
// OpenNow is tri-state: nil means no open-now filtering; a restaurant whose
// open state is unknown never matches a non-nil OpenNow.
type FilterOptions struct {
	PriceLevel  []PriceLevel `json:"price_level,omitempty"`
	CuisineType []string     `json:"cuisine_type,omitempty"`
	MinRating   float64      `json:"min_rating,omitempty"`
	OpenNow     *bool        `json:"open_now,omitempty"`
}

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortByDistance SortKey = "distance"
	SortByRating   SortKey = "rating"
	SortByPrice    SortKey = "price"
	SortByName     SortKey = "name"
)

// IsValid returns true if the sort key is recognized.
func (k SortKey) IsValid() bool {
	switch k {
	case SortByDistance, SortByRating, SortByPrice, SortByName:
		return true
	}
	return false
}

// SearchParams describes one nearby-restaurant search.
type SearchParams struct {
	Coordinates Coordinates    `json:"coordinates"`
	Radius      int            `json:"radius"`
	Filters     *FilterOptions `json:"filters,omitempty"`
}

// Validate checks the parameters before they reach the places provider.
func (p SearchParams) Validate() error {
	if p.Coordinates.Lat < -90 || p.Coordinates.Lat > 90 {
		return domain.NewValidationError("latitude must be between -90 and 90")
	}
	if p.Coordinates.Lng < -180 || p.Coordinates.Lng > 180 {
		return domain.NewValidationError("longitude must be between -180 and 180")
	}
	if p.Radius <= 0 {
		return domain.NewValidationError("radius must be positive")
	}
	return nil
}
