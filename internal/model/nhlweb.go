package model

// Upstream documents from the NHL web API (api-web.nhle.com) and the NHL stats REST
// API. Fields the live loop depends on are pointers when the upstream omits them for
// some game states; decoding must never be the failure point.

// Game lifecycle states reported by the upstream.
const (
	GameStateFuture   = "FUT"
	GameStatePregame  = "PRE"
	GameStateLive     = "LIVE"
	GameStateCritical = "CRIT"
	GameStateFinal    = "FINAL"
	GameStateOfficial = "OFF"
)

// LocalizedName wraps the upstream {"default": "..."} name objects.
type LocalizedName struct {
	Default string `json:"default"`
}

// ScheduleTeam is the home/away team entry inside a schedule game.
type ScheduleTeam struct {
	ID     int64          `json:"id"`
	Abbrev string         `json:"abbrev"`
	Score  *int           `json:"score"`
	Name   *LocalizedName `json:"commonName"`
}

// ScheduleGame is one game entry from the daily schedule document.
type ScheduleGame struct {
	ID           int64          `json:"id"`
	Season       int            `json:"season"`
	GameType     int            `json:"gameType"`
	StartTimeUTC string         `json:"startTimeUTC"`
	GameState    string         `json:"gameState"`
	Venue        *LocalizedName `json:"venue"`
	HomeTeam     ScheduleTeam   `json:"homeTeam"`
	AwayTeam     ScheduleTeam   `json:"awayTeam"`
}

// ScheduleResponse is the /v1/schedule/{date} document. Games are grouped by day;
// the requested date is one of the gameWeek entries.
type ScheduleResponse struct {
	GameWeek []ScheduleDay `json:"gameWeek"`
}

type ScheduleDay struct {
	Date  string         `json:"date"`
	Games []ScheduleGame `json:"games"`
}

// PeriodDescriptor appears in both gamecenter documents and in every play.
type PeriodDescriptor struct {
	Number     *int   `json:"number"`
	PeriodType string `json:"periodType"`
}

// GameClock is the landing document's clock block.
type GameClock struct {
	TimeRemaining  *string `json:"timeRemaining"`
	Running        bool    `json:"running"`
	InIntermission bool    `json:"inIntermission"`
}

// GamecenterTeam carries the per-team counters inside landing and boxscore documents.
// Landing is authoritative for score, boxscore for shots on goal.
type GamecenterTeam struct {
	ID    int64 `json:"id"`
	Score *int  `json:"score"`
	SOG   *int  `json:"sog"`
}

// GameLanding is the /v1/gamecenter/{id}/landing document subset the loop reads.
type GameLanding struct {
	ID               int64             `json:"id"`
	GameState        *string           `json:"gameState"`
	PeriodDescriptor *PeriodDescriptor `json:"periodDescriptor"`
	Clock            *GameClock        `json:"clock"`
	HomeTeam         *GamecenterTeam   `json:"homeTeam"`
	AwayTeam         *GamecenterTeam   `json:"awayTeam"`
}

// GameBoxscore is the /v1/gamecenter/{id}/boxscore document subset the loop reads.
type GameBoxscore struct {
	ID       int64           `json:"id"`
	HomeTeam *GamecenterTeam `json:"homeTeam"`
	AwayTeam *GamecenterTeam `json:"awayTeam"`
}

// PbpPlay is one play from the play-by-play document. EventID is issued upstream and
// exceeds 32-bit range for some games. Details varies per event type and is carried
// through opaquely.
type PbpPlay struct {
	EventID          int64                  `json:"eventId"`
	TypeDescKey      string                 `json:"typeDescKey"`
	PeriodDescriptor *PeriodDescriptor      `json:"periodDescriptor"`
	TimeInPeriod     *string                `json:"timeInPeriod"`
	TimeRemaining    *string                `json:"timeRemaining"`
	SortOrder        *int                   `json:"sortOrder"`
	Details          map[string]interface{} `json:"details"`
}

// GamePlayByPlay is the /v1/gamecenter/{id}/play-by-play document.
type GamePlayByPlay struct {
	ID    int64     `json:"id"`
	Plays []PbpPlay `json:"plays"`
}

// TeamRecord is one team from the stats REST team index.
type TeamRecord struct {
	ID       int64  `json:"id"`
	FullName string `json:"fullName"`
	TriCode  string `json:"triCode"`
}

// TeamIndexResponse is the stats REST /en/team document.
type TeamIndexResponse struct {
	Data []TeamRecord `json:"data"`
}

// RosterPlayer is one player entry from /v1/roster/{abbrev}/current.
type RosterPlayer struct {
	ID            int64          `json:"id"`
	FirstName     *LocalizedName `json:"firstName"`
	LastName      *LocalizedName `json:"lastName"`
	SweaterNumber *int           `json:"sweaterNumber"`
	PositionCode  string         `json:"positionCode"`
	Headshot      string         `json:"headshot"`
}

// RosterResponse groups the current roster by position.
type RosterResponse struct {
	Forwards   []RosterPlayer `json:"forwards"`
	Defensemen []RosterPlayer `json:"defensemen"`
	Goalies    []RosterPlayer `json:"goalies"`
}
