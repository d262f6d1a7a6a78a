package mapper

import (
	"fmt"

	"NHLSync/internal/model"
)

const teamLogoTemplate = "https://assets.nhle.com/logos/nhl/svg/%s_light.svg"

// TeamRecordsToRows maps the stats team index to team rows. Records without an id or
// tri-code are historical franchises the roster endpoints do not serve; they are
// skipped.
func TeamRecordsToRows(records []model.TeamRecord) []model.Team {
	rows := make([]model.Team, 0, len(records))
	for _, r := range records {
		if r.ID == 0 || r.TriCode == "" {
			continue
		}
		rows = append(rows, model.Team{
			TeamID:   r.ID,
			Name:     r.FullName,
			Abbrev:   r.TriCode,
			LogoURL:  fmt.Sprintf(teamLogoTemplate, r.TriCode),
			IsActive: true,
		})
	}
	return rows
}

// RosterToPlayerRows flattens a team roster into player rows.
func RosterToPlayerRows(teamID int64, roster *model.RosterResponse) []model.Player {
	if roster == nil {
		return nil
	}
	groups := [][]model.RosterPlayer{roster.Forwards, roster.Defensemen, roster.Goalies}
	var rows []model.Player
	for _, group := range groups {
		for _, p := range group {
			if p.ID == 0 {
				continue
			}
			row := model.Player{
				PlayerID:    p.ID,
				TeamID:      teamID,
				Number:      p.SweaterNumber,
				Position:    p.PositionCode,
				HeadshotURL: p.Headshot,
			}
			if p.FirstName != nil {
				row.FirstName = p.FirstName.Default
			}
			if p.LastName != nil {
				row.LastName = p.LastName.Default
			}
			rows = append(rows, row)
		}
	}
	return rows
}
