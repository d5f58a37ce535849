package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/ariebrainware/tripwire/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SQLAdapter stores each collection as one row of the kv_entries table.
type SQLAdapter struct {
	db *gorm.DB
}

// NewSQLAdapter migrates the kv table and returns an adapter over db.
func NewSQLAdapter(db *gorm.DB) (*SQLAdapter, error) {
	if err := db.AutoMigrate(&model.KVEntry{}); err != nil {
		return nil, fmt.Errorf("migrate kv_entries: %w", err)
	}
	return &SQLAdapter{db: db}, nil
}

func (s *SQLAdapter) Get(ctx context.Context, key string) ([]byte, error) {
	var row model.KVEntry
	err := s.db.WithContext(ctx).Where("entry_key = ?", key).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrKeyNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", key, err)
	}
	return []byte(row.Value), nil
}

func (s *SQLAdapter) Set(ctx context.Context, entries ...Entry) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, e := range entries {
			row := model.KVEntry{Key: e.Key, Value: datatypes.JSON(e.Value)}
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "entry_key"}},
				DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
			}).Create(&row).Error
			if err != nil {
				return fmt.Errorf("set %s: %w", e.Key, err)
			}
		}
		return nil
	})
}

func (s *SQLAdapter) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
