package favorite

import (
	"time"

	"github.com/erick-chung/near-you/internal/domain"
	"github.com/erick-chung/near-you/internal/domain/search"
	"github.com/google/uuid"
)

// Favorite is a durable snapshot of a restaurant at favoriting time. It is
// not a live reference: rating and photo may go stale. At most one favorite
// exists per (user, restaurant) pair.
type Favorite struct {
	id           uuid.UUID
	userID       uuid.UUID
	restaurantID string
	name         string
	address      string
	rating       float64
	priceLevel   search.PriceLevel
	cuisineType  []string
	photoURL     string
	createdAt    time.Time
}

// NewFavorite creates a favorite from a restaurant snapshot.
func NewFavorite(userID uuid.UUID, restaurant search.Restaurant) (*Favorite, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user ID is required")
	}
	if restaurant.ID == "" {
		return nil, domain.NewValidationError("restaurant ID is required")
	}
	if restaurant.Name == "" {
		return nil, domain.NewValidationError("restaurant name is required")
	}

	return &Favorite{
		id:           uuid.New(),
		userID:       userID,
		restaurantID: restaurant.ID,
		name:         restaurant.Name,
		address:      restaurant.Address,
		rating:       restaurant.Rating,
		priceLevel:   restaurant.PriceLevel,
		cuisineType:  restaurant.CuisineType,
		photoURL:     restaurant.PhotoURL,
		createdAt:    time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a Favorite from persistence.
func Reconstruct(
	id, userID uuid.UUID,
	restaurantID, name, address string,
	rating float64,
	priceLevel search.PriceLevel,
	cuisineType []string,
	photoURL string,
	createdAt time.Time,
) *Favorite {
	return &Favorite{
		id:           id,
		userID:       userID,
		restaurantID: restaurantID,
		name:         name,
		address:      address,
		rating:       rating,
		priceLevel:   priceLevel,
		cuisineType:  cuisineType,
		photoURL:     photoURL,
		createdAt:    createdAt,
	}
}

// Getters.
func (f *Favorite) ID() uuid.UUID                { return f.id }
func (f *Favorite) UserID() uuid.UUID            { return f.userID }
func (f *Favorite) RestaurantID() string         { return f.restaurantID }
func (f *Favorite) Name() string                 { return f.name }
func (f *Favorite) Address() string              { return f.address }
func (f *Favorite) Rating() float64              { return f.rating }
func (f *Favorite) PriceLevel() search.PriceLevel { return f.priceLevel }
func (f *Favorite) CuisineType() []string        { return f.cuisineType }
func (f *Favorite) PhotoURL() string             { return f.photoURL }
func (f *Favorite) CreatedAt() time.Time         { return f.createdAt }
