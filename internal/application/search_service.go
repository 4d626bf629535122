package application

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/erick-chung/near-you/internal/domain"
	historyDomain "github.com/erick-chung/near-you/internal/domain/history"
	"github.com/erick-chung/near-you/internal/domain/search"
	"github.com/erick-chung/near-you/internal/events"
	"github.com/erick-chung/near-you/internal/retry"
)

// GeoResolver resolves addresses to coordinates and back.
type GeoResolver interface {
	Forward(ctx context.Context, address string) (search.Address, error)
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}

// PlacesGateway finds restaurants near a coordinate.
type PlacesGateway interface {
	Search(ctx context.Context, params search.SearchParams) ([]search.Restaurant, error)
}

// EventPublisher publishes CloudEvents to the event bus.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event *events.CloudEvent) error
}

// SearchRequest holds the data for one restaurant search. Either Address or
// Coordinates must be set; Coordinates wins when both are present.
type SearchRequest struct {
	Address     string                `json:"address"`
	Coordinates *search.Coordinates   `json:"coordinates,omitempty"`
	Radius      int                   `json:"radius"`
	Filters     *search.FilterOptions `json:"filters,omitempty"`
	SortBy      search.SortKey        `json:"sort_by"`
}

// SearchResultDTO is the response representation of a completed search.
type SearchResultDTO struct {
	Restaurants    []search.Restaurant `json:"restaurants"`
	SearchLocation search.Address      `json:"search_location"`
	TotalResults   int                 `json:"total_results"`
}

// SearchRecordDTO is the response representation of a history entry.
type SearchRecordDTO struct {
	ID          uuid.UUID          `json:"id"`
	Address     string             `json:"address"`
	Coordinates search.Coordinates `json:"coordinates"`
	Radius      int                `json:"radius"`
	ResultCount int                `json:"result_count"`
	PerformedAt time.Time          `json:"performed_at"`
}

// SearchService orchestrates the discovery pipeline: geocode, nearby
// search, filter and sort, history, events.
type SearchService struct {
	geo         GeoResolver
	places      PlacesGateway
	historyRepo historyDomain.Repository
	producer    EventPublisher
	retryPolicy *retry.Policy
	logger      *zap.Logger
}

// NewSearchService creates a new SearchService.
func NewSearchService(
	geo GeoResolver,
	places PlacesGateway,
	historyRepo historyDomain.Repository,
	producer EventPublisher,
	retryPolicy *retry.Policy,
	logger *zap.Logger,
) *SearchService {
	return &SearchService{
		geo:         geo,
		places:      places,
		historyRepo: historyRepo,
		producer:    producer,
		retryPolicy: retryPolicy,
		logger:      logger,
	}
}

// Search runs the full pipeline for one request. Provider calls are
// retry-wrapped; history recording and event publishing are best-effort.
func (s *SearchService) Search(ctx context.Context, userID uuid.UUID, req SearchRequest) (*SearchResultDTO, error) {
	location, err := s.resolveLocation(ctx, req)
	if err != nil {
		return nil, err
	}

	radius := req.Radius
	if radius == 0 {
		radius = search.DefaultRadius
	}
	sortBy := req.SortBy
	if sortBy == "" {
		sortBy = search.SortByDistance
	}
	if !sortBy.IsValid() {
		return nil, domain.NewValidationError(fmt.Sprintf("invalid sort key: %s", sortBy))
	}

	params := search.SearchParams{
		Coordinates: location.Coordinates,
		Radius:      radius,
		Filters:     req.Filters,
	}

	restaurants, err := retry.DoWithData(ctx, s.retryPolicy, func() ([]search.Restaurant, error) {
		return s.places.Search(ctx, params)
	})
	if err != nil {
		return nil, err
	}

	processed := search.Process(restaurants, req.Filters, sortBy)

	s.recordSearch(ctx, userID, location, radius, len(processed))
	s.publishSearchPerformed(ctx, userID, location, radius, len(processed))

	s.logger.Info("search completed",
		zap.String("user_id", userID.String()),
		zap.Int("radius", radius),
		zap.Int("results", len(processed)),
	)

	return &SearchResultDTO{
		Restaurants:    processed,
		SearchLocation: location,
		TotalResults:   len(processed),
	}, nil
}

// ReverseGeocode converts a device location fix into a display address.
func (s *SearchService) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	return retry.DoWithData(ctx, s.retryPolicy, func() (string, error) {
		return s.geo.Reverse(ctx, lat, lng)
	})
}

// GetSearchHistory returns the user's recent searches, newest first.
func (s *SearchService) GetSearchHistory(ctx context.Context, userID uuid.UUID) ([]SearchRecordDTO, error) {
	records, err := s.historyRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]SearchRecordDTO, len(records))
	for i, r := range records {
		dtos[i] = SearchRecordDTO{
			ID:          r.ID(),
			Address:     r.Address(),
			Coordinates: r.Coordinates(),
			Radius:      r.Radius(),
			ResultCount: r.ResultCount(),
			PerformedAt: r.PerformedAt(),
		}
	}
	return dtos, nil
}

// resolveLocation turns the request into a concrete search origin. Supplied
// coordinates take priority; the display address for them is resolved via
// reverse geocoding, falling back to a coordinate label when that fails.
func (s *SearchService) resolveLocation(ctx context.Context, req SearchRequest) (search.Address, error) {
	if req.Coordinates != nil {
		coords := *req.Coordinates
		formatted, err := s.ReverseGeocode(ctx, coords.Lat, coords.Lng)
		if err != nil {
			s.logger.Warn("reverse geocoding failed, using coordinate label", zap.Error(err))
			formatted = fmt.Sprintf("%.4f, %.4f", coords.Lat, coords.Lng)
		}
		return search.Address{Formatted: formatted, Coordinates: coords}, nil
	}

	if req.Address == "" {
		return search.Address{}, domain.NewValidationError("address or coordinates are required")
	}

	return retry.DoWithData(ctx, s.retryPolicy, func() (search.Address, error) {
		return s.geo.Forward(ctx, req.Address)
	})
}

func (s *SearchService) recordSearch(ctx context.Context, userID uuid.UUID, location search.Address, radius, results int) {
	record, err := historyDomain.NewSearchRecord(userID, location.Formatted, location.Coordinates, radius, results)
	if err != nil {
		s.logger.Warn("failed to build search record", zap.Error(err))
		return
	}
	if err := s.historyRepo.Record(ctx, record); err != nil {
		s.logger.Warn("failed to record search history", zap.Error(err))
	}
}

func (s *SearchService) publishSearchPerformed(ctx context.Context, userID uuid.UUID, location search.Address, radius, results int) {
	evt := events.SearchPerformedEvent{
		UserID:      userID,
		Address:     location.Formatted,
		Coordinates: location.Coordinates,
		Radius:      radius,
		ResultCount: results,
		OccurredAt:  time.Now().UTC(),
	}
	s.publishEvent(ctx, events.SearchPerformed, userID.String(), evt)
}

func (s *SearchService) publishEvent(ctx context.Context, eventType, key string, data interface{}) {
	cloudEvent, err := events.NewCloudEvent("service-discovery", eventType, data)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.producer.PublishEvent(ctx, events.TopicDiscoveryEvents, key, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
	}
}
