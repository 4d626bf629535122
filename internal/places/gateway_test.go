package places

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erick-chung/near-you/internal/domain"
	"github.com/erick-chung/near-you/internal/domain/search"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var nycParams = search.SearchParams{
	Coordinates: search.Coordinates{Lat: 40.7128, Lng: -74.0060},
	Radius:      search.RadiusOneMile,
}

func placesServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *Gateway) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, NewGateway("test-key", WithBaseURL(srv.URL))
}

func TestSearch_RequestShape(t *testing.T) {
	_, gateway := placesServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/places:searchNearby", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Goog-Api-Key"))
		assert.Contains(t, r.Header.Get("X-Goog-FieldMask"), "places.displayName")

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []any{"restaurant"}, req["includedTypes"])
		assert.EqualValues(t, 20, req["maxResultCount"])

		circle := req["locationRestriction"].(map[string]any)["circle"].(map[string]any)
		assert.EqualValues(t, 1609, circle["radius"])

		_, _ = w.Write([]byte(`{"places": [{"id": "p1", "displayName": {"text": "Alma"}}]}`))
	})

	_, err := gateway.Search(context.Background(), nycParams)
	require.NoError(t, err)
}

func TestSearch_FieldMappingFallbacks(t *testing.T) {
	// A place with every optional field missing takes the documented
	// fallbacks.
	_, gateway := placesServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"places": [{}]}`))
	})

	restaurants, err := gateway.Search(context.Background(), nycParams)
	require.NoError(t, err)
	require.Len(t, restaurants, 1)

	r := restaurants[0]
	assert.Equal(t, "", r.ID)
	assert.Equal(t, "Unknown Restaurant", r.Name)
	assert.Equal(t, "", r.Address)
	assert.Equal(t, search.Coordinates{}, r.Coordinates)
	assert.Zero(t, r.Rating)
	assert.Zero(t, r.ReviewCount)
	assert.Empty(t, r.PriceLevel)
	assert.Empty(t, r.CuisineType)
	assert.Nil(t, r.IsOpen)
	assert.Empty(t, r.PhotoURL)
}

func TestSearch_FullFieldMapping(t *testing.T) {
	_, gateway := placesServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"places": [{
			"id": "p1",
			"displayName": {"text": "Alma"},
			"formattedAddress": "1 Main St",
			"location": {"latitude": 40.7580, "longitude": -73.9855},
			"rating": 4.5,
			"userRatingCount": 321,
			"priceLevel": "PRICE_LEVEL_MODERATE",
			"types": ["italian_restaurant", "restaurant", "food", "point_of_interest", "establishment"],
			"nationalPhoneNumber": "(212) 555-0147",
			"websiteUri": "https://alma.example.com",
			"currentOpeningHours": {"openNow": true},
			"photos": [{"name": "places/p1/photos/abc"}, {"name": "places/p1/photos/def"}]
		}]}`))
	})

	restaurants, err := gateway.Search(context.Background(), nycParams)
	require.NoError(t, err)
	require.Len(t, restaurants, 1)

	r := restaurants[0]
	assert.Equal(t, "p1", r.ID)
	assert.Equal(t, "Alma", r.Name)
	assert.Equal(t, "1 Main St", r.Address)
	assert.Equal(t, 4.5, r.Rating)
	assert.Equal(t, 321, r.ReviewCount)
	assert.Equal(t, search.PriceModerate, r.PriceLevel)
	assert.Equal(t, []string{"Italian"}, r.CuisineType)
	require.NotNil(t, r.IsOpen)
	assert.True(t, *r.IsOpen)
	assert.Equal(t, "(212) 555-0147", r.PhoneNumber)
	assert.Equal(t, "https://alma.example.com", r.Website)
	assert.Contains(t, r.PhotoURL, "places/p1/photos/abc/media")
	assert.Contains(t, r.PhotoURL, "key=test-key")
	assert.Greater(t, r.Distance, 0.0)
	assert.Equal(t, search.FormatDistance(r.Distance), r.DistanceDisplay)
	assert.NotEmpty(t, r.DistanceDisplay)
}

func TestSearch_UnknownPriceLevelStaysUnset(t *testing.T) {
	_, gateway := placesServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"places": [{"id": "p1", "priceLevel": "PRICE_LEVEL_UNSPECIFIED"}]}`))
	})

	restaurants, err := gateway.Search(context.Background(), nycParams)
	require.NoError(t, err)
	assert.Empty(t, restaurants[0].PriceLevel)
}

func TestSearch_ClosedIsNotUnknown(t *testing.T) {
	_, gateway := placesServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"places": [{"id": "p1", "currentOpeningHours": {"openNow": false}}]}`))
	})

	restaurants, err := gateway.Search(context.Background(), nycParams)
	require.NoError(t, err)
	require.NotNil(t, restaurants[0].IsOpen)
	assert.False(t, *restaurants[0].IsOpen)
}

func TestSearch_OrderedByDistance(t *testing.T) {
	_, gateway := placesServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"places": [
			{"id": "far", "location": {"latitude": 40.7300, "longitude": -74.0060}},
			{"id": "near", "location": {"latitude": 40.7130, "longitude": -74.0060}},
			{"id": "mid", "location": {"latitude": 40.7200, "longitude": -74.0060}}
		]}`))
	})

	restaurants, err := gateway.Search(context.Background(), nycParams)
	require.NoError(t, err)
	require.Len(t, restaurants, 3)
	assert.Equal(t, "near", restaurants[0].ID)
	assert.Equal(t, "mid", restaurants[1].ID)
	assert.Equal(t, "far", restaurants[2].ID)
}

func TestSearch_ZeroPlacesIsEmptyResultError(t *testing.T) {
	_, gateway := placesServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"places": []}`))
	})

	_, err := gateway.Search(context.Background(), nycParams)
	assert.Equal(t, domain.KindEmptyResult, domain.KindOf(err))
}

func TestSearch_RateLimit(t *testing.T) {
	_, gateway := placesServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := gateway.Search(context.Background(), nycParams)
	assert.Equal(t, domain.KindRateLimit, domain.KindOf(err))
}

func TestSearch_OtherHTTPErrorIsConnection(t *testing.T) {
	_, gateway := placesServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := gateway.Search(context.Background(), nycParams)
	assert.Equal(t, domain.KindConnection, domain.KindOf(err))
}

func TestSearch_MissingKeyIsConfigError(t *testing.T) {
	gateway := NewGateway("")
	_, err := gateway.Search(context.Background(), nycParams)
	assert.Equal(t, domain.KindConfig, domain.KindOf(err))
}

func TestSearch_InvalidParams(t *testing.T) {
	_, gateway := placesServer(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the provider")
	})

	_, err := gateway.Search(context.Background(), search.SearchParams{
		Coordinates: search.Coordinates{Lat: 91, Lng: 0},
		Radius:      search.RadiusOneMile,
	})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
