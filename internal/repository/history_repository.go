package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	historyDomain "github.com/erick-chung/near-you/internal/domain/history"
	"github.com/erick-chung/near-you/internal/domain/search"
)

// SearchRecordModel is the GORM model for the search_history table.
type SearchRecordModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Address     string    `gorm:"size:500"`
	Lat         float64   `gorm:"not null"`
	Lng         float64   `gorm:"not null"`
	Radius      int       `gorm:"not null"`
	ResultCount int       `gorm:"not null"`
	PerformedAt time.Time `gorm:"not null;index"`
}

// TableName sets the table name.
func (SearchRecordModel) TableName() string { return "search_history" }

// GormHistoryRepository is the GORM-based implementation of history.Repository.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GormHistoryRepository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// FindByUserID returns a user's recent searches, newest first.
func (r *GormHistoryRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*historyDomain.SearchRecord, error) {
	var models []SearchRecordModel
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("performed_at DESC").
		Limit(historyDomain.MaxRecordsPerUser).
		Find(&models).Error; err != nil {
		return nil, fmt.Errorf("failed to find search history: %w", err)
	}

	records := make([]*historyDomain.SearchRecord, len(models))
	for i, m := range models {
		records[i] = toDomainRecord(&m)
	}
	return records, nil
}

// Record persists a search and trims the user's history to the cap.
func (r *GormHistoryRepository) Record(ctx context.Context, record *historyDomain.SearchRecord) error {
	model := toRecordModel(record)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&model).Error; err != nil {
			return fmt.Errorf("failed to save search record: %w", err)
		}

		// Drop anything beyond the newest MaxRecordsPerUser entries.
		trim := tx.Exec(`
			DELETE FROM search_history
			WHERE user_id = ? AND id NOT IN (
				SELECT id FROM search_history
				WHERE user_id = ?
				ORDER BY performed_at DESC
				LIMIT ?
			)`,
			record.UserID(), record.UserID(), historyDomain.MaxRecordsPerUser,
		)
		if trim.Error != nil {
			return fmt.Errorf("failed to trim search history: %w", trim.Error)
		}
		return nil
	})
}

func toRecordModel(rec *historyDomain.SearchRecord) SearchRecordModel {
	return SearchRecordModel{
		ID:          rec.ID(),
		UserID:      rec.UserID(),
		Address:     rec.Address(),
		Lat:         rec.Coordinates().Lat,
		Lng:         rec.Coordinates().Lng,
		Radius:      rec.Radius(),
		ResultCount: rec.ResultCount(),
		PerformedAt: rec.PerformedAt(),
	}
}

func toDomainRecord(m *SearchRecordModel) *historyDomain.SearchRecord {
	return historyDomain.Reconstruct(
		m.ID,
		m.UserID,
		m.Address,
		search.Coordinates{Lat: m.Lat, Lng: m.Lng},
		m.Radius,
		m.ResultCount,
		m.PerformedAt,
	)
}
