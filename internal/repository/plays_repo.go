package repository

import (
	"context"
	"fmt"

	"NHLSync/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayRepository persists and reads play rows.
type PlayRepository interface {
	// UpsertPlays inserts or updates play rows by (game id, play id) and returns the
	// number of rows written. Re-writing an unchanged play is a no-op for readers.
	UpsertPlays(ctx context.Context, rows []model.Play) (int, error)
	// ListPlaysByGame returns a game's plays in upstream order.
	ListPlaysByGame(ctx context.Context, gameID int64) ([]model.Play, error)
}

type playRepository struct {
	db *gorm.DB
}

// NewPlayRepository creates a PlayRepository over db.
func NewPlayRepository(db *gorm.DB) PlayRepository {
	return &playRepository{db: db}
}

// UpsertPlays inserts or updates play rows by natural key.
func (r *playRepository) UpsertPlays(ctx context.Context, rows []model.Play) (int, error) {
	if len(rows) == 0 {
		return 0, nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "game_id"}, {Name: "play_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"event_type", "period", "time_in_period", "time_remaining",
			"sort_order", "details", "updated_at",
		}),
	}).CreateInBatches(&rows, 200).Error
	if err != nil {
		return 0, fmt.Errorf("upsert %d plays: %w", len(rows), err)
	}
	return len(rows), nil
}

// ListPlaysByGame returns a game's plays in upstream order.
func (r *playRepository) ListPlaysByGame(ctx context.Context, gameID int64) ([]model.Play, error) {
	var plays []model.Play
	if err := r.db.WithContext(ctx).
		Where("game_id = ?", gameID).
		Order("sort_order ASC, play_id ASC").
		Find(&plays).Error; err != nil {
		return nil, fmt.Errorf("list plays for game %d: %w", gameID, err)
	}
	return plays, nil
}
