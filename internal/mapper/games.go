package mapper

import (
	"time"

	"NHLSync/internal/model"
)

// DeriveGameFields combines the landing and boxscore documents into the live field
// snapshot. Landing is authoritative for lifecycle, clock and score; boxscore for
// shots on goal. Either document may be absent or partial; missing values stay nil,
// this function never fails.
func DeriveGameFields(landing *model.GameLanding, box *model.GameBoxscore) model.GameLiveFields {
	var f model.GameLiveFields

	if landing != nil {
		f.State = landing.GameState
		if landing.PeriodDescriptor != nil {
			f.Period = landing.PeriodDescriptor.Number
		}
		if landing.Clock != nil {
			f.Clock = landing.Clock.TimeRemaining
		}
		if landing.HomeTeam != nil {
			f.HomeScore = landing.HomeTeam.Score
		}
		if landing.AwayTeam != nil {
			f.AwayScore = landing.AwayTeam.Score
		}
	}

	if box != nil {
		if box.HomeTeam != nil {
			f.HomeSOG = box.HomeTeam.SOG
		}
		if box.AwayTeam != nil {
			f.AwaySOG = box.AwayTeam.SOG
		}
	}

	return f
}

// ScheduleToGameRows maps a day's schedule entries to minimal game rows: identity and
// scheduling attributes plus the schedule's own state/score snapshot. Entries without
// an id are dropped; an unparsable start time leaves the zero time rather than failing.
func ScheduleToGameRows(games []model.ScheduleGame) []model.Game {
	rows := make([]model.Game, 0, len(games))
	for _, g := range games {
		if g.ID == 0 {
			continue
		}
		row := model.Game{
			GameID:     g.ID,
			Season:     g.Season,
			GameType:   g.GameType,
			HomeTeamID: g.HomeTeam.ID,
			AwayTeamID: g.AwayTeam.ID,
			HomeScore:  g.HomeTeam.Score,
			AwayScore:  g.AwayTeam.Score,
		}
		if g.GameState != "" {
			state := g.GameState
			row.State = &state
		}
		if g.Venue != nil {
			row.Venue = g.Venue.Default
		}
		if t, err := time.Parse(time.RFC3339, g.StartTimeUTC); err == nil {
			row.StartTimeUTC = t.UTC()
		}
		rows = append(rows, row)
	}
	return rows
}
