package repository

import (
	"context"
	"fmt"

	"NHLSync/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PlayerRepository persists and reads player reference rows.
type PlayerRepository interface {
	UpsertPlayers(ctx context.Context, rows []model.Player) error
	ListPlayersByTeam(ctx context.Context, teamID int64) ([]model.Player, error)
	GetPlayerByID(ctx context.Context, playerID int64) (*model.Player, error)
}

type playerRepository struct {
	db *gorm.DB
}

// NewPlayerRepository creates a PlayerRepository over db.
func NewPlayerRepository(db *gorm.DB) PlayerRepository {
	return &playerRepository{db: db}
}

// UpsertPlayers inserts or updates player rows by player id.
func (r *playerRepository) UpsertPlayers(ctx context.Context, rows []model.Player) error {
	if len(rows) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "player_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"team_id", "first_name", "last_name", "number",
			"position", "headshot_url", "updated_at",
		}),
	}).CreateInBatches(&rows, 200).Error
	if err != nil {
		return fmt.Errorf("upsert %d players: %w", len(rows), err)
	}
	return nil
}

// ListPlayersByTeam returns a team's players ordered by last then first name.
func (r *playerRepository) ListPlayersByTeam(ctx context.Context, teamID int64) ([]model.Player, error) {
	var players []model.Player
	if err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("last_name ASC, first_name ASC").
		Find(&players).Error; err != nil {
		return nil, fmt.Errorf("list players for team %d: %w", teamID, err)
	}
	return players, nil
}

// GetPlayerByID returns one player row, or gorm.ErrRecordNotFound.
func (r *playerRepository) GetPlayerByID(ctx context.Context, playerID int64) (*model.Player, error) {
	var player model.Player
	if err := r.db.WithContext(ctx).Where("player_id = ?", playerID).First(&player).Error; err != nil {
		return nil, err
	}
	return &player, nil
}
