package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/designertech992/stocks-forecast/internal/db"
	"github.com/designertech992/stocks-forecast/internal/models"
)

type kvRepository struct {
	db *db.DB
}

// NewKVRepository returns a KVStore backed by the kv_entries table.
func NewKVRepository(database *db.DB) KVStore {
	return &kvRepository{db: database}
}

func (r *kvRepository) Get(ctx context.Context, key string) (string, error) {
	var entry models.KVEntry
	err := r.db.WithContext(ctx).First(&entry, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get kv %q: %w", key, err)
	}
	return entry.Value, nil
}

func (r *kvRepository) Set(ctx context.Context, key, value string) error {
	entry := models.KVEntry{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return fmt.Errorf("set kv %q: %w", key, err)
	}
	return nil
}
