package favorite

import (
	"testing"

	"github.com/erick-chung/near-you/internal/domain"
	"github.com/erick-chung/near-you/internal/domain/search"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFavorite_SnapshotsRestaurant(t *testing.T) {
	userID := uuid.New()
	restaurant := search.Restaurant{
		ID:          "place-123",
		Name:        "Alma",
		Address:     "1 Main St",
		Rating:      4.5,
		PriceLevel:  search.PriceModerate,
		CuisineType: []string{"Italian"},
		PhotoURL:    "https://example.com/photo.jpg",
	}

	fav, err := NewFavorite(userID, restaurant)
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, fav.ID())
	assert.Equal(t, userID, fav.UserID())
	assert.Equal(t, "place-123", fav.RestaurantID())
	assert.Equal(t, "Alma", fav.Name())
	assert.Equal(t, search.PriceModerate, fav.PriceLevel())
	assert.Equal(t, []string{"Italian"}, fav.CuisineType())
	assert.False(t, fav.CreatedAt().IsZero())
}

func TestNewFavorite_Validation(t *testing.T) {
	restaurant := search.Restaurant{ID: "place-123", Name: "Alma"}

	_, err := NewFavorite(uuid.Nil, restaurant)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = NewFavorite(uuid.New(), search.Restaurant{Name: "Alma"})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))

	_, err = NewFavorite(uuid.New(), search.Restaurant{ID: "place-123"})
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
}
