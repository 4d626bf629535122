package history

import (
	"time"

	"github.com/erick-chung/near-you/internal/domain"
	"github.com/erick-chung/near-you/internal/domain/search"
	"github.com/google/uuid"
)

// MaxRecordsPerUser caps how many recent searches are kept per user.
// Recording a new search trims anything older than the cap.
const MaxRecordsPerUser = 10

// SearchRecord is one entry in a user's recent-search history.
type SearchRecord struct {
	id          uuid.UUID
	userID      uuid.UUID
	address     string
	coordinates search.Coordinates
	radius      int
	resultCount int
	performedAt time.Time
}

// NewSearchRecord creates a history entry for a completed search.
func NewSearchRecord(userID uuid.UUID, address string, coordinates search.Coordinates, radius, resultCount int) (*SearchRecord, error) {
	if userID == uuid.Nil {
		return nil, domain.NewValidationError("user ID is required")
	}
	if radius <= 0 {
		return nil, domain.NewValidationError("radius must be positive")
	}

	return &SearchRecord{
		id:          uuid.New(),
		userID:      userID,
		address:     address,
		coordinates: coordinates,
		radius:      radius,
		resultCount: resultCount,
		performedAt: time.Now().UTC(),
	}, nil
}

// Reconstruct rebuilds a SearchRecord from persistence.
func Reconstruct(id, userID uuid.UUID, address string, coordinates search.Coordinates, radius, resultCount int, performedAt time.Time) *SearchRecord {
	return &SearchRecord{
		id:          id,
		userID:      userID,
		address:     address,
		coordinates: coordinates,
		radius:      radius,
		resultCount: resultCount,
		performedAt: performedAt,
	}
}

// Getters.
func (r *SearchRecord) ID() uuid.UUID                   { return r.id }
func (r *SearchRecord) UserID() uuid.UUID               { return r.userID }
func (r *SearchRecord) Address() string                 { return r.address }
func (r *SearchRecord) Coordinates() search.Coordinates { return r.coordinates }
func (r *SearchRecord) Radius() int                     { return r.radius }
func (r *SearchRecord) ResultCount() int                { return r.resultCount }
func (r *SearchRecord) PerformedAt() time.Time          { return r.performedAt }
