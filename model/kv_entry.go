package model

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one persisted collection in the sql backend
type KVEntry struct {
	Key       string         `json:"key" gorm:"column:entry_key;type:varchar(191);primaryKey"`
	Value     datatypes.JSON `json:"value" gorm:"column:value;type:json"`
	UpdatedAt time.Time      `json:"updated_at" gorm:"column:updated_at"`
}

func (KVEntry) TableName() string {
	return "kv_entries"
}
