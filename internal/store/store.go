package store

import (
	"database/sql"
	"fmt"

	// registers the sqlite3 driver used for the local store
	_ "github.com/mattn/go-sqlite3"

	"github.com/thoughtforge-ai/thoughtforge-go/internal/config"
	"github.com/thoughtforge-ai/thoughtforge-go/internal/logger"
	"github.com/thoughtforge-ai/thoughtforge-go/migrations"
)

// DB wraps the shared sql.DB handle used by the store repositories.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate brings the underlying database up to the latest schema.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

type runStore struct {
	*DB
}

// NewRunStore opens (or creates) the SQLite database configured in cfg,
// applies pending migrations, and returns the store. An empty path is an
// error; callers decide whether a store is wanted at all.
func NewRunStore(cfg config.ClientStore, logger *logger.Logger) (RunStore, error) {
	if cfg.Path == "" {
		return nil, ErrStoreDisabled
	}

	sqlDB, err := sql.Open("sqlite3", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("open run store %q: %w", cfg.Path, err)
	}

	db := &DB{DB: sqlDB, logger: logger}
	if err = db.Migrate(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("migrate run store: %w", err)
	}

	return &runStore{DB: db}, nil
}

func (s *runStore) Close() error {
	return s.DB.DB.Close()
}
