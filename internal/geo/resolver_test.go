package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/erick-chung/near-you/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geocodeServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/geocode/json", r.URL.Path)
		assert.NotEmpty(t, r.URL.Query().Get("key"))
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
}

func TestForward_UsesFirstCandidate(t *testing.T) {
	srv := geocodeServer(t, http.StatusOK, `{
		"status": "OK",
		"results": [
			{
				"formatted_address": "350 5th Ave, New York, NY 10118, USA",
				"geometry": {"location": {"lat": 40.7484, "lng": -73.9857}},
				"address_components": [
					{"long_name": "350", "short_name": "350", "types": ["street_number"]},
					{"long_name": "5th Avenue", "short_name": "5th Ave", "types": ["route"]},
					{"long_name": "New York", "short_name": "New York", "types": ["locality", "political"]},
					{"long_name": "New York", "short_name": "NY", "types": ["administrative_area_level_1", "political"]},
					{"long_name": "10118", "short_name": "10118", "types": ["postal_code"]}
				]
			},
			{
				"formatted_address": "Somewhere Else",
				"geometry": {"location": {"lat": 1, "lng": 1}}
			}
		]
	}`)
	defer srv.Close()

	resolver := NewResolver("test-key", WithBaseURL(srv.URL))
	addr, err := resolver.Forward(context.Background(), "350 5th Ave")
	require.NoError(t, err)

	assert.Equal(t, "350 5th Ave, New York, NY 10118, USA", addr.Formatted)
	assert.InDelta(t, 40.7484, addr.Coordinates.Lat, 1e-6)
	assert.InDelta(t, -73.9857, addr.Coordinates.Lng, 1e-6)
	require.NotNil(t, addr.Components)
	assert.Equal(t, "350 5th Avenue", addr.Components.Street)
	assert.Equal(t, "New York", addr.Components.City)
	assert.Equal(t, "NY", addr.Components.State)
	assert.Equal(t, "10118", addr.Components.ZipCode)
}

func TestForward_ZeroResults(t *testing.T) {
	srv := geocodeServer(t, http.StatusOK, `{"status": "ZERO_RESULTS", "results": []}`)
	defer srv.Close()

	resolver := NewResolver("test-key", WithBaseURL(srv.URL))
	_, err := resolver.Forward(context.Background(), "xzxzxzxz")
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestForward_InvalidRequest(t *testing.T) {
	srv := geocodeServer(t, http.StatusOK, `{"status": "INVALID_REQUEST", "results": []}`)
	defer srv.Close()

	resolver := NewResolver("test-key", WithBaseURL(srv.URL))
	_, err := resolver.Forward(context.Background(), "")
	assert.Equal(t, domain.KindInvalidInput, domain.KindOf(err))
}

func TestForward_OtherStatusIsUpstream(t *testing.T) {
	srv := geocodeServer(t, http.StatusOK, `{"status": "REQUEST_DENIED", "results": []}`)
	defer srv.Close()

	resolver := NewResolver("test-key", WithBaseURL(srv.URL))
	_, err := resolver.Forward(context.Background(), "350 5th Ave")
	assert.Equal(t, domain.KindUpstream, domain.KindOf(err))
}

func TestForward_HTTPErrorIsUpstream(t *testing.T) {
	srv := geocodeServer(t, http.StatusInternalServerError, `boom`)
	defer srv.Close()

	resolver := NewResolver("test-key", WithBaseURL(srv.URL))
	_, err := resolver.Forward(context.Background(), "350 5th Ave")
	assert.Equal(t, domain.KindUpstream, domain.KindOf(err))
}

func TestForward_MissingKeyIsConfigError(t *testing.T) {
	resolver := NewResolver("")
	_, err := resolver.Forward(context.Background(), "350 5th Ave")
	assert.Equal(t, domain.KindConfig, domain.KindOf(err))
}

func TestReverse_ReturnsFormattedAddress(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NotEmpty(t, r.URL.Query().Get("latlng"))
		_, _ = w.Write([]byte(`{
			"status": "OK",
			"results": [{"formatted_address": "1 Main St, Springfield", "geometry": {"location": {"lat": 1, "lng": 2}}}]
		}`))
	}))
	defer srv.Close()

	resolver := NewResolver("test-key", WithBaseURL(srv.URL))
	formatted, err := resolver.Reverse(context.Background(), 40.7128, -74.0060)
	require.NoError(t, err)
	assert.Equal(t, "1 Main St, Springfield", formatted)
}
