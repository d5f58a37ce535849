package config

import (
	"errors"
	"fmt"

	"github.com/ariebrainware/tripwire/persistence"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// Storage is the opened persistence backend. DB is set for the sql backend.
type Storage struct {
	Adapter persistence.Adapter
	DB      *gorm.DB
}

// ConnectStorage opens the adapter selected by STORAGE_BACKEND.
func ConnectStorage(cfg *Config) (*Storage, error) {
	switch cfg.StorageBackend {
	case BackendMemory:
		return &Storage{Adapter: persistence.NewMemoryAdapter()}, nil

	case BackendSQL:
		db, err := ConnectMySQL()
		if err != nil {
			return nil, fmt.Errorf("connect sql: %w", err)
		}
		adapter, err := persistence.NewSQLAdapter(db)
		if err != nil {
			return nil, err
		}
		return &Storage{Adapter: adapter, DB: db}, nil

	case BackendRedis:
		rdb, err := ConnectRedis()
		if err != nil {
			return nil, err
		}
		if rdb == nil {
			return nil, errors.New("redis backend selected but no redis client is available")
		}
		return &Storage{Adapter: persistence.NewRedisAdapter(rdb, cfg.RedisKeyPrefix)}, nil

	case BackendBadger:
		if cfg.BadgerPath == "" {
			log.Warn().Msg("BADGER_PATH not set, badger runs in memory")
		}
		adapter, err := persistence.OpenBadger(cfg.BadgerPath)
		if err != nil {
			return nil, err
		}
		return &Storage{Adapter: adapter}, nil
	}
	return nil, fmt.Errorf("unknown storage backend %q", cfg.StorageBackend)
}
