package blob

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// record is the single-table schema backing the store. One row per slot.
type record struct {
	Slot      string    `gorm:"primaryKey"`
	Data      []byte    `gorm:"not null"`
	UpdatedAt time.Time
}

// TableName keeps the legacy storage name used by earlier builds.
func (record) TableName() string { return "blobs" }

// SQLiteStore persists blobs in a local SQLite file.
type SQLiteStore struct {
	db *gorm.DB
}

// OpenSQLite opens (creating if needed) the SQLite file at path and migrates
// the blob table.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create data dir: %w", err)
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open blob database: %w", err)
	}

	if err := db.AutoMigrate(&record{}); err != nil {
		return nil, fmt.Errorf("failed to migrate blob database: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Load returns the blob stored under the slot, or (nil, nil) when absent.
func (s *SQLiteStore) Load(slot string) ([]byte, error) {
	var rec record
	if err := s.db.First(&rec, "slot = ?", slot).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load blob %q: %w", slot, err)
	}
	return rec.Data, nil
}

// Save replaces the blob stored under the slot.
func (s *SQLiteStore) Save(slot string, data []byte) error {
	rec := record{Slot: slot, Data: data, UpdatedAt: time.Now()}
	if err := s.db.Save(&rec).Error; err != nil {
		return fmt.Errorf("failed to save blob %q: %w", slot, err)
	}
	return nil
}

// Clear removes the slot. Clearing an absent slot succeeds.
func (s *SQLiteStore) Clear(slot string) error {
	if err := s.db.Delete(&record{}, "slot = ?", slot).Error; err != nil {
		return fmt.Errorf("failed to clear blob %q: %w", slot, err)
	}
	return nil
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
