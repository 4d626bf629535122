package events

import (
	"time"

	"github.com/erick-chung/near-you/internal/domain/search"
	"github.com/google/uuid"
)

// TopicDiscoveryEvents carries all discovery-service events.
const TopicDiscoveryEvents = "discovery.events"

// Event types published to TopicDiscoveryEvents.
const (
	SearchPerformed = "discovery.search.performed"
	FavoriteAdded   = "discovery.favorite.added"
	FavoriteRemoved = "discovery.favorite.removed"
)

// SearchPerformedEvent is emitted after a successful restaurant search.
type SearchPerformedEvent struct {
	UserID      uuid.UUID          `json:"user_id"`
	Address     string             `json:"address"`
	Coordinates search.Coordinates `json:"coordinates"`
	Radius      int                `json:"radius"`
	ResultCount int                `json:"result_count"`
	OccurredAt  time.Time          `json:"occurred_at"`
}

// FavoriteAddedEvent is emitted after a restaurant is favorited.
type FavoriteAddedEvent struct {
	FavoriteID   uuid.UUID `json:"favorite_id"`
	UserID       uuid.UUID `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	Name         string    `json:"name"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// FavoriteRemovedEvent is emitted after a favorite is deleted.
type FavoriteRemovedEvent struct {
	UserID       uuid.UUID `json:"user_id"`
	RestaurantID string    `json:"restaurant_id"`
	OccurredAt   time.Time `json:"occurred_at"`
}
