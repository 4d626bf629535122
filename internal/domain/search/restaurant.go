package search

// PriceLevel is the display price bucket for a restaurant. The empty string
// means the provider did not report one.
type PriceLevel string

const (
	PriceInexpensive   PriceLevel = "$"
	PriceModerate      PriceLevel = "$$"
	PriceExpensive     PriceLevel = "$$$"
	PriceVeryExpensive PriceLevel = "$$$$"
)

// priceRanks orders price levels for sorting. Unpriced restaurants rank
// after $$$$.
var priceRanks = map[PriceLevel]int{
	PriceInexpensive:   1,
	PriceModerate:      2,
	PriceExpensive:     3,
	PriceVeryExpensive: 4,
}

// Rank returns the sort position of the price level, cheapest first.
func (p PriceLevel) Rank() int {
	if rank, ok := priceRanks[p]; ok {
		return rank
	}
	return len(priceRanks) + 1
}

// IsValid returns true if the price level is one of the known buckets.
func (p PriceLevel) IsValid() bool {
	_, ok := priceRanks[p]
	return ok
}

// Restaurant is one normalized search result. It is ephemeral: rebuilt on
// every search, with Distance always relative to that search's origin.
// IsOpen is tri-state; nil means the provider did not report opening hours.
type Restaurant struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	Coordinates Coordinates `json:"coordinates"`
	Rating      float64     `json:"rating"`
	ReviewCount int         `json:"review_count"`
	PriceLevel  PriceLevel  `json:"price_level,omitempty"`
	CuisineType []string    `json:"cuisine_type,omitempty"`
	IsOpen      *bool       `json:"is_open,omitempty"`
	PhoneNumber string      `json:"phone_number,omitempty"`
	Website     string      `json:"website,omitempty"`
	PhotoURL    string      `json:"photo_url,omitempty"`
	Distance    float64     `json:"distance"`

	// DistanceDisplay is the human-readable rendering of Distance, feet
	// under a tenth of a mile and miles otherwise.
	DistanceDisplay string `json:"distance_display"`
}
