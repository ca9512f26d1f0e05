// Package storage persists the planner snapshot as independently keyed
// rows in a local SQLite database.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"gorm.io/gorm"

	"weekplanner/internal/model"
)

// Keys of the persisted snapshot entries. Each one loads and saves on its
// own so a corrupt value only costs that entry.
const (
	keyTitle      = "title"
	keyBackground = "backgroundColor"
	keyAccent     = "accentColor"
	keyPhoto      = "photo"
	keyEvents     = "events"
	keyDense      = "denseHours"
)

// record is one keyed entry with a JSON-encoded value.
type record struct {
	Key   string `gorm:"primaryKey"`
	Value string
}

// SnapshotRepository reads and writes the full planner state.
type SnapshotRepository struct {
	db  *gorm.DB
	log *slog.Logger
}

func NewSnapshotRepository(db *gorm.DB, log *slog.Logger) *SnapshotRepository {
	return &SnapshotRepository{db: db, log: log}
}

// Load reads every entry, substituting its named default when the key is
// absent or its value does not decode. Load never fails; a broken store
// degrades to the defaults.
func (r *SnapshotRepository) Load(ctx context.Context) model.Snapshot {
	snap := model.Snapshot{Settings: model.DefaultSettings()}
	loadKey(r, ctx, keyTitle, &snap.Settings.Title)
	loadKey(r, ctx, keyBackground, &snap.Settings.BackgroundColor)
	loadKey(r, ctx, keyAccent, &snap.Settings.AccentColor)
	loadKey(r, ctx, keyPhoto, &snap.Settings.Photo)
	loadKey(r, ctx, keyDense, &snap.Settings.DenseHours)
	loadKey(r, ctx, keyEvents, &snap.Events)
	return snap
}

// Save writes the full snapshot, one row per key.
func (r *SnapshotRepository) Save(ctx context.Context, snap model.Snapshot) error {
	entries := []struct {
		key   string
		value any
	}{
		{keyTitle, snap.Settings.Title},
		{keyBackground, snap.Settings.BackgroundColor},
		{keyAccent, snap.Settings.AccentColor},
		{keyPhoto, snap.Settings.Photo},
		{keyDense, snap.Settings.DenseHours},
		{keyEvents, snap.Events},
	}
	db := r.db.WithContext(ctx)
	for _, entry := range entries {
		raw, err := json.Marshal(entry.value)
		if err != nil {
			return fmt.Errorf("encode %s: %w", entry.key, err)
		}
		if err := db.Save(&record{Key: entry.key, Value: string(raw)}).Error; err != nil {
			return fmt.Errorf("write %s: %w", entry.key, err)
		}
	}
	return nil
}

// loadKey decodes one entry into dst, leaving dst untouched on any miss.
func loadKey[T any](r *SnapshotRepository, ctx context.Context, key string, dst *T) {
	var rec record
	err := r.db.WithContext(ctx).First(&rec, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return
	}
	if err != nil {
		r.log.Debug("read snapshot key failed", "key", key, "err", err)
		return
	}
	var value T
	if err := json.Unmarshal([]byte(rec.Value), &value); err != nil {
		r.log.Debug("snapshot key corrupt, using default", "key", key, "err", err)
		return
	}
	*dst = value
}
