// internal/overlay/gorm.go
package overlay

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Row is the persisted form of one overlay key.
type Row struct {
	Key       string `gorm:"size:255;primaryKey"`
	Value     string `gorm:"type:text;not null"`
	UpdatedAt time.Time
}

func (Row) TableName() string {
	return "overlay_rows"
}

type gormStore struct {
	db *gorm.DB
}

// NewGormStore returns a Store backed by the overlay_rows table.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Get(key string) (string, bool, error) {
	var row Row
	if err := s.db.First(&row, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("overlay read failed: %w", err)
	}
	return row.Value, true, nil
}

func (s *gormStore) Set(key, value string) error {
	row := Row{Key: key, Value: value}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&row).Error
	if err != nil {
		return fmt.Errorf("overlay write failed: %w", err)
	}
	return nil
}

func (s *gormStore) Delete(key string) error {
	if err := s.db.Delete(&Row{}, "key = ?", key).Error; err != nil {
		return fmt.Errorf("overlay delete failed: %w", err)
	}
	return nil
}
