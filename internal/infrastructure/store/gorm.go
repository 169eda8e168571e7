package store

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// collectionRow is the single-table schema backing the postgres store:
// one row per collection holding its full serialized payload.
type collectionRow struct {
	Name      string    `gorm:"primaryKey;type:varchar(100)"`
	Data      []byte    `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (collectionRow) TableName() string {
	return "collections"
}

// GormStore persists collections in postgres via gorm. The key-value
// contract is unchanged: Save replaces the whole payload for a name.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) (*GormStore, error) {
	if err := db.AutoMigrate(&collectionRow{}); err != nil {
		return nil, err
	}
	return &GormStore{db: db}, nil
}

func (s *GormStore) Load(ctx context.Context, collection string) ([]byte, error) {
	var row collectionRow
	err := s.db.WithContext(ctx).Where("name = ?", collection).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return row.Data, nil
}

func (s *GormStore) Save(ctx context.Context, collection string, data []byte) error {
	row := collectionRow{Name: collection, Data: data}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
		}).
		Create(&row).Error
}
