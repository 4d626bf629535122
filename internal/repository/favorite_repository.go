package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/erick-chung/near-you/internal/domain"
	favoriteDomain "github.com/erick-chung/near-you/internal/domain/favorite"
	"github.com/erick-chung/near-you/internal/domain/search"
)

// FavoriteModel is the GORM model for the favorites table. The composite
// unique index enforces one favorite per (user, restaurant) pair.
type FavoriteModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_favorites_user_restaurant"`
	RestaurantID string          `gorm:"not null;size:128;uniqueIndex:idx_favorites_user_restaurant"`
	Name         string          `gorm:"not null;size:255"`
	Address      string          `gorm:"size:500"`
	Rating       float64         `gorm:""`
	PriceLevel   string          `gorm:"size:8"`
	CuisineType  json.RawMessage `gorm:"type:jsonb"`
	PhotoURL     string          `gorm:"type:text"`
	CreatedAt    time.Time       `gorm:"not null;index"`
}

// TableName sets the table name.
func (FavoriteModel) TableName() string { return "favorites" }

// GormFavoriteRepository is the GORM-based implementation of favorite.Repository.
type GormFavoriteRepository struct {
	db *gorm.DB
}

// NewGormFavoriteRepository creates a new GormFavoriteRepository.
func NewGormFavoriteRepository(db *gorm.DB) *GormFavoriteRepository {
	return &GormFavoriteRepository{db: db}
}

// FindByUserID returns a user's favorites, newest first.
func (r *GormFavoriteRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*favoriteDomain.Favorite, error) {
	var models []FavoriteModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find favorites: %w", err)
	}

	favorites := make([]*favoriteDomain.Favorite, len(models))
	for i, m := range models {
		fav, err := toDomainFavorite(&m)
		if err != nil {
			return nil, err
		}
		favorites[i] = fav
	}
	return favorites, nil
}

// FindByUserAndRestaurant returns the favorite for a (user, restaurant) pair.
func (r *GormFavoriteRepository) FindByUserAndRestaurant(ctx context.Context, userID uuid.UUID, restaurantID string) (*favoriteDomain.Favorite, error) {
	var model FavoriteModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError("Favorite", restaurantID)
		}
		return nil, fmt.Errorf("failed to find favorite: %w", err)
	}
	return toDomainFavorite(&model)
}

// Save persists a new favorite. A duplicate (user, restaurant) pair hits the
// unique index and surfaces as a conflict.
func (r *GormFavoriteRepository) Save(ctx context.Context, fav *favoriteDomain.Favorite) error {
	model, err := toFavoriteModel(fav)
	if err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.NewConflictError("restaurant is already favorited")
		}
		return fmt.Errorf("failed to save favorite: %w", err)
	}
	return nil
}

// Delete removes the favorite for a (user, restaurant) pair.
func (r *GormFavoriteRepository) Delete(ctx context.Context, userID uuid.UUID, restaurantID string) error {
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND restaurant_id = ?", userID, restaurantID).
		Delete(&FavoriteModel{})
	if result.Error != nil {
		return fmt.Errorf("failed to delete favorite: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFoundError("Favorite", restaurantID)
	}
	return nil
}

func toFavoriteModel(fav *favoriteDomain.Favorite) (*FavoriteModel, error) {
	cuisines := fav.CuisineType()
	if cuisines == nil {
		cuisines = []string{}
	}
	cuisineJSON, err := json.Marshal(cuisines)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal cuisine types: %w", err)
	}

	return &FavoriteModel{
		ID:           fav.ID(),
		UserID:       fav.UserID(),
		RestaurantID: fav.RestaurantID(),
		Name:         fav.Name(),
		Address:      fav.Address(),
		Rating:       fav.Rating(),
		PriceLevel:   string(fav.PriceLevel()),
		CuisineType:  cuisineJSON,
		PhotoURL:     fav.PhotoURL(),
		CreatedAt:    fav.CreatedAt(),
	}, nil
}

func toDomainFavorite(m *FavoriteModel) (*favoriteDomain.Favorite, error) {
	var cuisines []string
	if len(m.CuisineType) > 0 {
		if err := json.Unmarshal(m.CuisineType, &cuisines); err != nil {
			return nil, fmt.Errorf("failed to unmarshal cuisine types: %w", err)
		}
	}

	return favoriteDomain.Reconstruct(
		m.ID,
		m.UserID,
		m.RestaurantID,
		m.Name,
		m.Address,
		m.Rating,
		search.PriceLevel(m.PriceLevel),
		cuisines,
		m.PhotoURL,
		m.CreatedAt,
	), nil
}
