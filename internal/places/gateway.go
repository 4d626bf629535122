// Package places queries the Google Places API (v1) for restaurants near a
// coordinate and normalizes provider results into the domain Restaurant
// shape.
package places

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/erick-chung/near-you/internal/domain"
	"github.com/erick-chung/near-you/internal/domain/search"
)

const (
	defaultBaseURL = "https://places.googleapis.com/v1"

	// maxResults caps a single nearby search.
	maxResults = 20

	// fieldMask restricts the provider response to exactly the attributes
	// the gateway maps.
	fieldMask = "places.id,places.displayName,places.formattedAddress,places.location," +
		"places.rating,places.userRatingCount,places.priceLevel,places.types," +
		"places.nationalPhoneNumber,places.websiteUri,places.currentOpeningHours,places.photos"
)

// priceLevels maps provider price-level codes to display buckets.
// Unrecognized codes stay unset.
var priceLevels = map[string]search.PriceLevel{
	"PRICE_LEVEL_FREE":           search.PriceInexpensive,
	"PRICE_LEVEL_INEXPENSIVE":    search.PriceInexpensive,
	"PRICE_LEVEL_MODERATE":       search.PriceModerate,
	"PRICE_LEVEL_EXPENSIVE":      search.PriceExpensive,
	"PRICE_LEVEL_VERY_EXPENSIVE": search.PriceVeryExpensive,
}

// genericTypes are provider category tokens carrying no cuisine signal.
var genericTypes = map[string]bool{
	"restaurant":        true,
	"food":              true,
	"point_of_interest": true,
	"establishment":     true,
}

// Gateway is a Google Places searchNearby client.
type Gateway struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithBaseURL overrides the provider base URL.
func WithBaseURL(u string) Option {
	return func(g *Gateway) { g.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) { g.httpClient = c }
}

// NewGateway creates a places client. An empty API key is allowed here; it
// surfaces as a config error at call time.
func NewGateway(apiKey string, opts ...Option) *Gateway {
	g := &Gateway{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type nearbyRequest struct {
	IncludedTypes       []string            `json:"includedTypes"`
	MaxResultCount      int                 `json:"maxResultCount"`
	LocationRestriction locationRestriction `json:"locationRestriction"`
}

type locationRestriction struct {
	Circle circle `json:"circle"`
}

type circle struct {
	Center latLng  `json:"center"`
	Radius float64 `json:"radius"`
}

type latLng struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type nearbyResponse struct {
	Places []place `json:"places"`
}

type place struct {
	ID               string   `json:"id"`
	DisplayName      *text    `json:"displayName"`
	FormattedAddress string   `json:"formattedAddress"`
	Location         *latLng  `json:"location"`
	Rating           float64  `json:"rating"`
	UserRatingCount  int      `json:"userRatingCount"`
	PriceLevel       string   `json:"priceLevel"`
	Types            []string `json:"types"`
	NationalPhone    string   `json:"nationalPhoneNumber"`
	WebsiteURI       string   `json:"websiteUri"`
	CurrentHours     *hours   `json:"currentOpeningHours"`
	Photos           []photo  `json:"photos"`
}

type text struct {
	Text string `json:"text"`
}

type hours struct {
	OpenNow *bool `json:"openNow"`
}

type photo struct {
	Name string `json:"name"`
}

// Search returns restaurants within params.Radius meters of the center,
// normalized and ordered closest first. A provider response with zero
// places is an empty-result error, not an empty success.
func (g *Gateway) Search(ctx context.Context, params search.SearchParams) ([]search.Restaurant, error) {
	if g.apiKey == "" {
		return nil, domain.NewConfigError("Google Maps API key is not configured")
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(nearbyRequest{
		IncludedTypes:  []string{"restaurant"},
		MaxResultCount: maxResults,
		LocationRestriction: locationRestriction{
			Circle: circle{
				Center: latLng{Latitude: params.Coordinates.Lat, Longitude: params.Coordinates.Lng},
				Radius: float64(params.Radius),
			},
		},
	})
	if err != nil {
		return nil, domain.NewUpstreamError("failed to encode nearby search request", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/places:searchNearby", bytes.NewReader(payload))
	if err != nil {
		return nil, domain.NewUpstreamError("failed to build nearby search request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Goog-Api-Key", g.apiKey)
	req.Header.Set("X-Goog-FieldMask", fieldMask)

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewConnectionError("places request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, domain.NewRateLimitError("places provider rate limit exceeded")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewConnectionError(fmt.Sprintf("places provider returned HTTP %d", resp.StatusCode), nil)
	}

	var body nearbyResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domain.NewUpstreamError("failed to parse places response", err)
	}

	if len(body.Places) == 0 {
		return nil, domain.NewEmptyResultError("no restaurants found in this area")
	}

	restaurants := make([]search.Restaurant, len(body.Places))
	for i, p := range body.Places {
		restaurants[i] = g.toRestaurant(p, params.Coordinates)
	}

	sort.SliceStable(restaurants, func(i, j int) bool {
		return restaurants[i].Distance < restaurants[j].Distance
	})
	return restaurants, nil
}

func (g *Gateway) toRestaurant(p place, origin search.Coordinates) search.Restaurant {
	name := "Unknown Restaurant"
	if p.DisplayName != nil && p.DisplayName.Text != "" {
		name = p.DisplayName.Text
	}

	var coords search.Coordinates
	if p.Location != nil {
		coords = search.Coordinates{Lat: p.Location.Latitude, Lng: p.Location.Longitude}
	}

	var isOpen *bool
	if p.CurrentHours != nil {
		isOpen = p.CurrentHours.OpenNow
	}

	var photoURL string
	if len(p.Photos) > 0 && p.Photos[0].Name != "" {
		photoURL = fmt.Sprintf("%s/%s/media?maxHeightPx=400&maxWidthPx=400&key=%s", g.baseURL, p.Photos[0].Name, g.apiKey)
	}

	distance := search.Distance(origin, coords)
	return search.Restaurant{
		ID:              p.ID,
		Name:            name,
		Address:         p.FormattedAddress,
		Coordinates:     coords,
		Rating:          p.Rating,
		ReviewCount:     p.UserRatingCount,
		PriceLevel:      priceLevels[p.PriceLevel],
		CuisineType:     search.NormalizeCuisines(stripGenericTypes(p.Types)),
		IsOpen:          isOpen,
		PhoneNumber:     p.NationalPhone,
		Website:         p.WebsiteURI,
		PhotoURL:        photoURL,
		Distance:        distance,
		DistanceDisplay: search.FormatDistance(distance),
	}
}

func stripGenericTypes(types []string) []string {
	kept := make([]string, 0, len(types))
	for _, t := range types {
		if !genericTypes[t] {
			kept = append(kept, t)
		}
	}
	return kept
}
