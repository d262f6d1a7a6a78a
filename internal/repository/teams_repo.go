package repository

import (
	"context"
	"fmt"

	"NHLSync/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TeamRepository persists and reads team reference rows.
type TeamRepository interface {
	UpsertTeams(ctx context.Context, rows []model.Team) error
	ListTeams(ctx context.Context) ([]model.Team, error)
	ListActiveTeams(ctx context.Context) ([]model.Team, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a TeamRepository over db.
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

// UpsertTeams inserts or updates team rows by team id.
func (r *teamRepository) UpsertTeams(ctx context.Context, rows []model.Team) error {
	if len(rows) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "team_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "abbrev", "logo_url", "is_active", "updated_at",
		}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("upsert %d teams: %w", len(rows), err)
	}
	return nil
}

// ListTeams returns all teams ordered by name.
func (r *teamRepository) ListTeams(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}
	return teams, nil
}

// ListActiveTeams returns only active teams ordered by name.
func (r *teamRepository) ListActiveTeams(ctx context.Context) ([]model.Team, error) {
	var teams []model.Team
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").Find(&teams).Error; err != nil {
		return nil, fmt.Errorf("list active teams: %w", err)
	}
	return teams, nil
}
