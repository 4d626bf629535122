package favorite

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for favorites.
type Repository interface {
	// FindByUserID returns a user's favorites, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*Favorite, error)

	// FindByUserAndRestaurant returns the favorite for a (user, restaurant)
	// pair, or a not-found error.
	FindByUserAndRestaurant(ctx context.Context, userID uuid.UUID, restaurantID string) (*Favorite, error)

	// Save persists a new favorite. Inserting a duplicate (user, restaurant)
	// pair returns a conflict error.
	Save(ctx context.Context, fav *Favorite) error

	// Delete removes the favorite for a (user, restaurant) pair. Deleting a
	// missing favorite returns a not-found error.
	Delete(ctx context.Context, userID uuid.UUID, restaurantID string) error
}
