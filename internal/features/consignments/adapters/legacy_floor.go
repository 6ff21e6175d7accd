package adapters

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// LegacyConsignment is a consignment number migrated from an archived collection.
type LegacyConsignment struct {
	ID                uint      `gorm:"primaryKey"`
	Collection        string    `gorm:"not null;size:64;uniqueIndex:uniq_collection_number"`
	ConsignmentNumber int64     `gorm:"not null;uniqueIndex:uniq_collection_number"`
	BookingReference  string    `gorm:"size:64"`
	MigratedAt        time.Time `gorm:"index"`
}

// TableName specifies the table name
func (LegacyConsignment) TableName() string {
	return "legacy_consignments"
}

// LegacyFloorSource reads the highest consignment number of one archived collection.
type LegacyFloorSource struct {
	db         *gorm.DB
	collection string
}

// NewLegacyFloorSource creates a floor source for an archived collection.
func NewLegacyFloorSource(db *gorm.DB, collection string) *LegacyFloorSource {
	return &LegacyFloorSource{
		db:         db,
		collection: collection,
	}
}

// Name returns the archived collection name.
func (s *LegacyFloorSource) Name() string {
	return s.collection
}

// MaxConsignment returns MAX(consignment_number) for the collection, or 0 when it is empty.
func (s *LegacyFloorSource) MaxConsignment(ctx context.Context) (int64, error) {
	var highest sql.NullInt64
	err := s.db.WithContext(ctx).
		Model(&LegacyConsignment{}).
		Select("MAX(consignment_number)").
		Where("collection = ?", s.collection).
		Row().
		Scan(&highest)
	if err != nil {
		return 0, fmt.Errorf("failed to read max consignment of %s: %w", s.collection, err)
	}
	return highest.Int64, nil
}

// Archive records consignment numbers as held by the collection. Numbers already
// archived are left untouched.
func (s *LegacyFloorSource) Archive(ctx context.Context, numbers ...int64) error {
	if len(numbers) == 0 {
		return nil
	}
	now := time.Now().UTC()
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, n := range numbers {
			var count int64
			err := tx.Model(&LegacyConsignment{}).
				Where("collection = ? AND consignment_number = ?", s.collection, n).
				Count(&count).Error
			if err != nil {
				return fmt.Errorf("failed to check %s/%d: %w", s.collection, n, err)
			}
			if count > 0 {
				continue
			}
			row := LegacyConsignment{Collection: s.collection, ConsignmentNumber: n, MigratedAt: now}
			if err := tx.Create(&row).Error; err != nil {
				return fmt.Errorf("failed to archive %s/%d: %w", s.collection, n, err)
			}
		}
		return nil
	})
}
