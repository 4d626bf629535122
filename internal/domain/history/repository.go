package history

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence contract for search history.
type Repository interface {
	// FindByUserID returns a user's recent searches, newest first, capped
	// at MaxRecordsPerUser.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*SearchRecord, error)

	// Record persists a search and trims the user's history to the cap.
	Record(ctx context.Context, record *SearchRecord) error
}
