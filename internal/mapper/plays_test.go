package mapper

import (
	"encoding/json"
	"testing"

	"NHLSync/internal/model"
)

func TestMapPlayFullEvent(t *testing.T) {
	p := model.PbpPlay{
		EventID:          1024,
		TypeDescKey:      "goal",
		PeriodDescriptor: &model.PeriodDescriptor{Number: intPtr(2)},
		TimeInPeriod:     strPtr("05:12"),
		TimeRemaining:    strPtr("14:48"),
		SortOrder:        intPtr(301),
		Details: map[string]interface{}{
			"xCoord":            -54.0,
			"yCoord":            12.0,
			"scoringPlayerId":   8478402.0,
			"assist1PlayerId":   8477934.0,
		},
	}

	row := MapPlay(42, p)

	if row.GameID != 42 || row.PlayID != 1024 {
		t.Fatalf("key = (%d, %d)", row.GameID, row.PlayID)
	}
	if row.EventType != "goal" {
		t.Fatalf("event type = %q", row.EventType)
	}
	if row.Period == nil || *row.Period != 2 {
		t.Fatalf("period = %v", row.Period)
	}
	if row.TimeInPeriod == nil || *row.TimeInPeriod != "05:12" {
		t.Fatalf("time in period = %v", row.TimeInPeriod)
	}

	var details map[string]interface{}
	if err := json.Unmarshal(row.Details, &details); err != nil {
		t.Fatalf("details unmarshal: %v", err)
	}
	if details["xCoord"] != -54.0 {
		t.Fatalf("details xCoord = %v", details["xCoord"])
	}
}

func TestMapPlayMissingOptionalFields(t *testing.T) {
	// Stoppage events carry no coordinates, no details, sometimes no period block.
	p := model.PbpPlay{EventID: 7, TypeDescKey: "stoppage"}

	row := MapPlay(42, p)

	if row.Period != nil || row.TimeInPeriod != nil || row.TimeRemaining != nil || row.SortOrder != nil {
		t.Fatalf("optional fields should be nil: %+v", row)
	}
	if row.Details != nil {
		t.Fatalf("details should be nil, got %s", row.Details)
	}
}

func TestMapPlayWideEventID(t *testing.T) {
	p := model.PbpPlay{EventID: 1<<33 + 5, TypeDescKey: "hit"}
	row := MapPlay(42, p)
	if row.PlayID != 1<<33+5 {
		t.Fatalf("play id = %d, want %d", row.PlayID, int64(1<<33+5))
	}
}

func TestMapPlaysNilDocument(t *testing.T) {
	if rows := MapPlays(42, nil); rows != nil {
		t.Fatalf("rows = %v, want nil", rows)
	}
	if rows := MapPlays(42, &model.GamePlayByPlay{}); rows != nil {
		t.Fatalf("rows = %v, want nil for empty plays", rows)
	}
}

func TestMapPlaysOrderPreserved(t *testing.T) {
	pbp := &model.GamePlayByPlay{Plays: []model.PbpPlay{
		{EventID: 3, TypeDescKey: "faceoff"},
		{EventID: 1, TypeDescKey: "hit"},
		{EventID: 2, TypeDescKey: "shot-on-goal"},
	}}
	rows := MapPlays(42, pbp)
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want 3", len(rows))
	}
	if rows[0].PlayID != 3 || rows[1].PlayID != 1 || rows[2].PlayID != 2 {
		t.Fatalf("order not preserved: %d %d %d", rows[0].PlayID, rows[1].PlayID, rows[2].PlayID)
	}
}
