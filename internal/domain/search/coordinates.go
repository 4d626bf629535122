package search

// Coordinates is a value object for a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// AddressComponents holds the structured parts of a resolved address.
type AddressComponents struct {
	Street  string `json:"street,omitempty"`
	City    string `json:"city,omitempty"`
	State   string `json:"state,omitempty"`
	ZipCode string `json:"zip_code,omitempty"`
}

// Address is a geocoded location: the provider's formatted string plus the
// coordinates of its best match.
type Address struct {
	Formatted   string             `json:"formatted"`
	Coordinates Coordinates        `json:"coordinates"`
	Components  *AddressComponents `json:"components,omitempty"`
}
