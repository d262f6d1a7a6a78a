package mapper

import (
	"encoding/json"

	"NHLSync/internal/model"

	"gorm.io/datatypes"
)

// MapPlay extracts the stored subset of one play-by-play event. Optional fields
// (coordinates, secondary player references and the rest of the event-specific
// payload) ride along inside details as jsonb; absent ones simply are not there.
// The play id is carried as int64 end to end, upstream ids do not fit in 32 bits.
func MapPlay(gameID int64, p model.PbpPlay) model.Play {
	row := model.Play{
		GameID:        gameID,
		PlayID:        p.EventID,
		EventType:     p.TypeDescKey,
		TimeInPeriod:  p.TimeInPeriod,
		TimeRemaining: p.TimeRemaining,
		SortOrder:     p.SortOrder,
	}
	if p.PeriodDescriptor != nil {
		row.Period = p.PeriodDescriptor.Number
	}
	if len(p.Details) > 0 {
		if raw, err := json.Marshal(p.Details); err == nil {
			row.Details = datatypes.JSON(raw)
		}
	}
	return row
}

// MapPlays maps a whole play-by-play document for one game.
func MapPlays(gameID int64, pbp *model.GamePlayByPlay) []model.Play {
	if pbp == nil || len(pbp.Plays) == 0 {
		return nil
	}
	rows := make([]model.Play, 0, len(pbp.Plays))
	for _, p := range pbp.Plays {
		rows = append(rows, MapPlay(gameID, p))
	}
	return rows
}
