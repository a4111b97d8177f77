package database

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/pantrybase/pantrygo/internal/models"
)

// SnapshotStore persists the last known inventory and GTIN cache so a
// restart can serve data before the cloud is reachable.
type SnapshotStore struct {
	db *DB
}

// NewSnapshotStore creates a snapshot store over an open database.
func NewSnapshotStore(db *DB) *SnapshotStore {
	return &SnapshotStore{db: db}
}

// LoadItems returns every snapshotted inventory record.
func (s *SnapshotStore) LoadItems() ([]models.InventoryItem, error) {
	var items []models.InventoryItem
	if err := s.db.Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to load inventory snapshot: %w", err)
	}
	return items, nil
}

// ReplaceItems swaps the entire snapshot for the given records in one
// transaction. An empty slice clears the table.
func (s *SnapshotStore) ReplaceItems(items []models.InventoryItem) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&models.InventoryItem{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return fmt.Errorf("failed to replace inventory snapshot: %w", err)
	}
	return nil
}

// LoadGTINRecords returns every snapshotted GTIN record.
func (s *SnapshotStore) LoadGTINRecords() ([]models.GTINItem, error) {
	var records []models.GTINItem
	if err := s.db.Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to load GTIN snapshot: %w", err)
	}
	return records, nil
}

// SaveGTINRecords upserts the given records by code. Negative cache
// entries never reach this table, so nothing is deleted here.
func (s *SnapshotStore) SaveGTINRecords(records []models.GTINItem) error {
	if len(records) == 0 {
		return nil
	}
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "code"}},
		UpdateAll: true,
	}).Create(&records).Error
	if err != nil {
		return fmt.Errorf("failed to save GTIN snapshot: %w", err)
	}
	return nil
}
