package application

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/erick-chung/near-you/internal/domain"
	"github.com/erick-chung/near-you/internal/domain/favorite"
	"github.com/erick-chung/near-you/internal/domain/search"
	"github.com/erick-chung/near-you/internal/events"
)

// FavoriteDTO is the response representation of a favorited restaurant.
type FavoriteDTO struct {
	ID           uuid.UUID         `json:"id"`
	RestaurantID string            `json:"restaurant_id"`
	Name         string            `json:"name"`
	Address      string            `json:"address"`
	Rating       float64           `json:"rating"`
	PriceLevel   search.PriceLevel `json:"price_level,omitempty"`
	CuisineType  []string          `json:"cuisine_type"`
	PhotoURL     string            `json:"photo_url,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
}

// FavoriteService manages per-user favorite restaurants.
type FavoriteService struct {
	repo     favorite.Repository
	producer EventPublisher
	logger   *zap.Logger
}

// NewFavoriteService creates a new FavoriteService.
func NewFavoriteService(repo favorite.Repository, producer EventPublisher, logger *zap.Logger) *FavoriteService {
	return &FavoriteService{
		repo:     repo,
		producer: producer,
		logger:   logger,
	}
}

// ListFavorites returns all favorites for a user, newest first.
func (s *FavoriteService) ListFavorites(ctx context.Context, userID uuid.UUID) ([]FavoriteDTO, error) {
	favorites, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	dtos := make([]FavoriteDTO, len(favorites))
	for i, f := range favorites {
		dtos[i] = toFavoriteDTO(f)
	}
	return dtos, nil
}

// AddFavorite stores a restaurant snapshot for a user. Adding a restaurant
// the user already favorited is a no-op that returns the existing favorite.
func (s *FavoriteService) AddFavorite(ctx context.Context, userID uuid.UUID, restaurant search.Restaurant) (*FavoriteDTO, error) {
	fav, err := favorite.NewFavorite(userID, restaurant)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Save(ctx, fav); err != nil {
		if domain.KindOf(err) == domain.KindConflict {
			existing, findErr := s.repo.FindByUserAndRestaurant(ctx, userID, restaurant.ID)
			if findErr != nil {
				return nil, findErr
			}
			dto := toFavoriteDTO(existing)
			return &dto, nil
		}
		return nil, err
	}

	s.publishEvent(ctx, events.FavoriteAdded, userID.String(), events.FavoriteAddedEvent{
		FavoriteID:   fav.ID(),
		UserID:       userID,
		RestaurantID: fav.RestaurantID(),
		Name:         fav.Name(),
		OccurredAt:   time.Now().UTC(),
	})

	s.logger.Info("favorite added",
		zap.String("user_id", userID.String()),
		zap.String("restaurant_id", fav.RestaurantID()),
	)

	dto := toFavoriteDTO(fav)
	return &dto, nil
}

// RemoveFavorite deletes a favorite by restaurant ID.
func (s *FavoriteService) RemoveFavorite(ctx context.Context, userID uuid.UUID, restaurantID string) error {
	if restaurantID == "" {
		return domain.NewValidationError("restaurant ID is required")
	}

	if err := s.repo.Delete(ctx, userID, restaurantID); err != nil {
		return err
	}

	s.publishEvent(ctx, events.FavoriteRemoved, userID.String(), events.FavoriteRemovedEvent{
		UserID:       userID,
		RestaurantID: restaurantID,
		OccurredAt:   time.Now().UTC(),
	})

	s.logger.Info("favorite removed",
		zap.String("user_id", userID.String()),
		zap.String("restaurant_id", restaurantID),
	)

	return nil
}

func (s *FavoriteService) publishEvent(ctx context.Context, eventType, key string, data interface{}) {
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

func toFavoriteDTO(f *favorite.Favorite) FavoriteDTO {
	return FavoriteDTO{
		ID:           f.ID(),
		RestaurantID: f.RestaurantID(),
		Name:         f.Name(),
		Address:      f.Address(),
		Rating:       f.Rating(),
		PriceLevel:   f.PriceLevel(),
		CuisineType:  f.CuisineType(),
		PhotoURL:     f.PhotoURL(),
		CreatedAt:    f.CreatedAt(),
	}
}
