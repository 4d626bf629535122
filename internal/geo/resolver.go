// Package geo resolves free-text addresses to coordinates and back using
// the Google Geocoding API.
package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/erick-chung/near-you/internal/domain"
	"github.com/erick-chung/near-you/internal/domain/search"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api"

// Resolver is a Google Geocoding API client.
type Resolver struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithBaseURL overrides the provider base URL.
func WithBaseURL(u string) Option {
	return func(r *Resolver) { r.baseURL = strings.TrimSuffix(u, "/") }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) { r.httpClient = c }
}

// NewResolver creates a geocoding client. An empty API key is allowed here;
// it surfaces as a config error at call time.
func NewResolver(apiKey string, opts ...Option) *Resolver {
	r := &Resolver{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

type geocodeResponse struct {
	Status  string           `json:"status"`
	Results []geocodeCandidate `json:"results"`
}

type geocodeCandidate struct {
	FormattedAddress  string             `json:"formatted_address"`
	Geometry          geocodeGeometry    `json:"geometry"`
	AddressComponents []geocodeComponent `json:"address_components"`
}

type geocodeGeometry struct {
	Location struct {
		Lat float64 `json:"lat"`
		Lng float64 `json:"lng"`
	} `json:"location"`
}

type geocodeComponent struct {
	LongName  string   `json:"long_name"`
	ShortName string   `json:"short_name"`
	Types     []string `json:"types"`
}

// Forward geocodes a free-text address into a normalized Address. Only the
// provider's first candidate is used; ties break on provider ranking.
func (r *Resolver) Forward(ctx context.Context, address string) (search.Address, error) {
	var addr search.Address

	candidate, err := r.geocode(ctx, url.Values{"address": {address}})
	if err != nil {
		return addr, err
	}

	addr = search.Address{
		Formatted: candidate.FormattedAddress,
		Coordinates: search.Coordinates{
			Lat: candidate.Geometry.Location.Lat,
			Lng: candidate.Geometry.Location.Lng,
		},
		Components: parseComponents(candidate.AddressComponents),
	}
	return addr, nil
}

// Reverse converts coordinates into the provider's best formatted address.
func (r *Resolver) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	candidate, err := r.geocode(ctx, url.Values{"latlng": {fmt.Sprintf("%f,%f", lat, lng)}})
	if err != nil {
		return "", err
	}
	return candidate.FormattedAddress, nil
}

func (r *Resolver) geocode(ctx context.Context, params url.Values) (*geocodeCandidate, error) {
	if r.apiKey == "" {
		return nil, domain.NewConfigError("Google Maps API key is not configured")
	}

	params.Set("key", r.apiKey)
	endpoint := r.baseURL + "/geocode/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, domain.NewUpstreamError("failed to build geocoding request", err)
	}

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, domain.NewUpstreamError("geocoding request failed", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, domain.NewUpstreamError(fmt.Sprintf("geocoding provider returned HTTP %d", resp.StatusCode), nil)
	}

	var body geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, domain.NewUpstreamError("failed to parse geocoding response", err)
	}

	switch {
	case body.Status == "ZERO_RESULTS":
		return nil, domain.NewNotFoundError("Address", "no results for this location")
	case body.Status == "INVALID_REQUEST":
		return nil, domain.NewInvalidInputError("invalid address format")
	case body.Status != "OK" || len(body.Results) == 0:
		return nil, domain.NewUpstreamError(fmt.Sprintf("geocoding provider returned status %q", body.Status), nil)
	}

	return &body.Results[0], nil
}

func parseComponents(components []geocodeComponent) *search.AddressComponents {
	if len(components) == 0 {
		return nil
	}

	var streetNumber, route string
	parsed := &search.AddressComponents{}
	for _, c := range components {
		for _, t := range c.Types {
			switch t {
			case "street_number":
				streetNumber = c.LongName
			case "route":
				route = c.LongName
			case "locality":
				parsed.City = c.LongName
			case "administrative_area_level_1":
				parsed.State = c.ShortName
			case "postal_code":
				parsed.ZipCode = c.LongName
			}
		}
	}

	parsed.Street = strings.TrimSpace(streetNumber + " " + route)
	if *parsed == (search.AddressComponents{}) {
		return nil
	}
	return parsed
}
