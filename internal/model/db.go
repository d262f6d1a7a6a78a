package model

import (
	"time"

	"gorm.io/datatypes"
)

// Game is one NHL game. The row is created by the schedule sync with its scheduling
// attributes; the live columns (state, period, clock, scores, SOG) are overwritten on
// every poll and carry no history.
type Game struct {
	GameID       int64      `gorm:"column:game_id;primaryKey;autoIncrement:false" json:"game_id"`
	Season       int        `gorm:"column:season;type:int;not null" json:"season"`
	GameType     int        `gorm:"column:game_type;type:int;not null" json:"game_type"`
	StartTimeUTC time.Time  `gorm:"column:start_time_utc;type:timestamp;not null;index" json:"start_time_utc"`
	Venue        string     `gorm:"column:venue;type:varchar(128)" json:"venue"`
	HomeTeamID   int64      `gorm:"column:home_team_id;type:bigint;not null" json:"home_team_id"`
	AwayTeamID   int64      `gorm:"column:away_team_id;type:bigint;not null" json:"away_team_id"`
	State        *string    `gorm:"column:state;type:varchar(16)" json:"state"`
	Period       *int       `gorm:"column:period;type:int" json:"period"`
	Clock        *string    `gorm:"column:clock;type:varchar(16)" json:"clock"`
	HomeScore    *int       `gorm:"column:home_score;type:int" json:"home_score"`
	AwayScore    *int       `gorm:"column:away_score;type:int" json:"away_score"`
	HomeSOG      *int       `gorm:"column:home_sog;type:int" json:"home_sog"`
	AwaySOG      *int       `gorm:"column:away_sog;type:int" json:"away_sog"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// GameLiveFields is the live-attribute subset of a game row, recomputed from the
// gamecenter documents on every poll. Nil means the upstream did not report the value.
type GameLiveFields struct {
	State     *string
	Period    *int
	Clock     *string
	HomeScore *int
	AwayScore *int
	HomeSOG   *int
	AwaySOG   *int
}

// Play is one play-by-play event, keyed by (game_id, play_id). Upstream play ids are
// wide monotonically-issued integers scoped to a game; play_id must stay bigint,
// a 32-bit column silently truncated real ids to 2147483647.
type Play struct {
	GameID        int64          `gorm:"column:game_id;primaryKey;autoIncrement:false" json:"game_id"`
	PlayID        int64          `gorm:"column:play_id;type:bigint;primaryKey;autoIncrement:false" json:"play_id"`
	EventType     string         `gorm:"column:event_type;type:varchar(32);not null" json:"event_type"`
	Period        *int           `gorm:"column:period;type:int" json:"period"`
	TimeInPeriod  *string        `gorm:"column:time_in_period;type:varchar(16)" json:"time_in_period"`
	TimeRemaining *string        `gorm:"column:time_remaining;type:varchar(16)" json:"time_remaining"`
	SortOrder     *int           `gorm:"column:sort_order;type:int" json:"sort_order"`
	Details       datatypes.JSON `gorm:"column:details;type:jsonb" json:"details"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// Team is a reference entity maintained by the roster sync, never by the poll loop.
type Team struct {
	TeamID    int64     `gorm:"column:team_id;primaryKey;autoIncrement:false" json:"team_id"`
	Name      string    `gorm:"column:name;type:varchar(64);not null" json:"name"`
	Abbrev    string    `gorm:"column:abbrev;type:varchar(8);not null" json:"abbrev"`
	LogoURL   string    `gorm:"column:logo_url;type:varchar(256)" json:"logo_url"`
	IsActive  bool      `gorm:"column:is_active;type:boolean;default:true" json:"is_active"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

// Player is a reference entity maintained by the roster sync.
type Player struct {
	PlayerID    int64     `gorm:"column:player_id;primaryKey;autoIncrement:false" json:"player_id"`
	TeamID      int64     `gorm:"column:team_id;type:bigint;index" json:"team_id"`
	FirstName   string    `gorm:"column:first_name;type:varchar(64);not null" json:"first_name"`
	LastName    string    `gorm:"column:last_name;type:varchar(64);not null" json:"last_name"`
	Number      *int      `gorm:"column:number;type:int" json:"number"`
	Position    string    `gorm:"column:position;type:varchar(8)" json:"position"`
	HeadshotURL string    `gorm:"column:headshot_url;type:varchar(256)" json:"headshot_url"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Game) TableName() string   { return "games" }
func (Play) TableName() string   { return "plays" }
func (Team) TableName() string   { return "teams" }
func (Player) TableName() string { return "players" }
