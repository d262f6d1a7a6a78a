package repository

import (
	"context"
	"fmt"
	"time"

	"NHLSync/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GameRepository persists and reads game rows. Constructors take the *gorm.DB they
// should be scoped to, so callers can hand in a transaction handle.
type GameRepository interface {
	// UpsertGames inserts or updates game rows by game id. It writes the scheduling
	// attributes and the schedule's state/score snapshot; it does not touch period,
	// clock or SOG, those belong to the live update.
	UpsertGames(ctx context.Context, rows []model.Game) error
	// UpdateGameLiveFields overwrites the live-attribute subset of one game row.
	UpdateGameLiveFields(ctx context.Context, gameID int64, f model.GameLiveFields) error
	// ListGamesByDate returns the games whose start time falls on date in the given
	// IANA timezone, ordered by start time.
	ListGamesByDate(ctx context.Context, date string, timezone string) ([]model.Game, error)
	// GetGameByID returns one game row, or gorm.ErrRecordNotFound.
	GetGameByID(ctx context.Context, gameID int64) (*model.Game, error)
}

type gameRepository struct {
	db *gorm.DB
}

// NewGameRepository creates a GameRepository over db.
func NewGameRepository(db *gorm.DB) GameRepository {
	return &gameRepository{db: db}
}

// UpsertGames inserts or updates game rows by game id.
func (r *gameRepository) UpsertGames(ctx context.Context, rows []model.Game) error {
	if len(rows) == 0 {
		return nil
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "game_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"season", "game_type", "start_time_utc", "venue",
			"home_team_id", "away_team_id", "state",
			"home_score", "away_score", "updated_at",
		}),
	}).Create(&rows).Error
	if err != nil {
		return fmt.Errorf("upsert %d games: %w", len(rows), err)
	}
	return nil
}

// UpdateGameLiveFields overwrites the live-attribute subset of one game row.
func (r *gameRepository) UpdateGameLiveFields(ctx context.Context, gameID int64, f model.GameLiveFields) error {
	err := r.db.WithContext(ctx).Model(&model.Game{}).
		Where("game_id = ?", gameID).
		Updates(map[string]interface{}{
			"state":      f.State,
			"period":     f.Period,
			"clock":      f.Clock,
			"home_score": f.HomeScore,
			"away_score": f.AwayScore,
			"home_sog":   f.HomeSOG,
			"away_sog":   f.AwaySOG,
			"updated_at": time.Now().UTC(),
		}).Error
	if err != nil {
		return fmt.Errorf("update live fields for game %d: %w", gameID, err)
	}
	return nil
}

// ListGamesByDate returns the games starting on date in timezone. The day window is
// computed here as [midnight, midnight+24h) in the zone and converted to UTC, so one
// timezone policy governs both this query and the schedule poll.
func (r *gameRepository) ListGamesByDate(ctx context.Context, date string, timezone string) ([]model.Game, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", timezone, err)
	}
	dayStart, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return nil, fmt.Errorf("parse date %q: %w", date, err)
	}
	dayEnd := dayStart.Add(24 * time.Hour)

	var games []model.Game
	if err := r.db.WithContext(ctx).
		Where("start_time_utc >= ? AND start_time_utc < ?", dayStart.UTC(), dayEnd.UTC()).
		Order("start_time_utc ASC").
		Find(&games).Error; err != nil {
		return nil, fmt.Errorf("list games for %s: %w", date, err)
	}
	return games, nil
}

// GetGameByID returns one game row.
func (r *gameRepository) GetGameByID(ctx context.Context, gameID int64) (*model.Game, error) {
	var game model.Game
	if err := r.db.WithContext(ctx).Where("game_id = ?", gameID).First(&game).Error; err != nil {
		return nil, err
	}
	return &game, nil
}
