package interfaces

import (
	"context"

	"NHLSync/internal/model"
)

// DataSource is the read-only NHL upstream consumed by the sync services. One
// implementation wraps the NHL web and stats APIs; tests substitute fakes.
type DataSource interface {
	// FetchScheduleForDate returns the games scheduled on date (YYYY-MM-DD).
	FetchScheduleForDate(ctx context.Context, date string) ([]model.ScheduleGame, error)
	// FetchGameLanding returns the gamecenter landing document for one game.
	FetchGameLanding(ctx context.Context, gameID int64) (*model.GameLanding, error)
	// FetchGameBoxscore returns the gamecenter boxscore document for one game.
	FetchGameBoxscore(ctx context.Context, gameID int64) (*model.GameBoxscore, error)
	// FetchGamePbp returns the play-by-play document for one game.
	FetchGamePbp(ctx context.Context, gameID int64) (*model.GamePlayByPlay, error)
	// FetchTeams returns the league team index.
	FetchTeams(ctx context.Context) ([]model.TeamRecord, error)
	// FetchTeamRoster returns the current roster for one team abbreviation.
	FetchTeamRoster(ctx context.Context, abbrev string) (*model.RosterResponse, error)
}
