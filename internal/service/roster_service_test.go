package service

import (
	"context"
	"errors"
	"testing"

	"NHLSync/internal/model"
)

func TestRosterSyncRun(t *testing.T) {
	src := newFakeSource()
	src.teams = []model.TeamRecord{
		{ID: 10, FullName: "Toronto Maple Leafs", TriCode: "TOR"},
		{ID: 6, FullName: "Boston Bruins", TriCode: "BOS"},
	}
	src.rosters = map[string]*model.RosterResponse{
		"TOR": {Forwards: []model.RosterPlayer{
			{ID: 8478402, FirstName: &model.LocalizedName{Default: "Auston"}, LastName: &model.LocalizedName{Default: "Matthews"}, PositionCode: "C"},
		}},
	}
	src.rosterErr = map[string]error{"BOS": errors.New("404")}

	db := setupServiceDB(t)
	svc := NewRosterSyncService(db, src, testLogger())

	// Twice: the sync must be idempotent.
	for i := 0; i < 2; i++ {
		if err := svc.Run(context.Background()); err != nil {
			t.Fatalf("Run() pass %d error = %v", i+1, err)
		}
	}

	var teamCount, playerCount int64
	if err := db.Model(&model.Team{}).Count(&teamCount).Error; err != nil {
		t.Fatalf("count teams: %v", err)
	}
	if err := db.Model(&model.Player{}).Count(&playerCount).Error; err != nil {
		t.Fatalf("count players: %v", err)
	}
	if teamCount != 2 {
		t.Fatalf("team rows = %d, want 2 (failed roster still keeps the team)", teamCount)
	}
	if playerCount != 1 {
		t.Fatalf("player rows = %d, want 1", playerCount)
	}

	var p model.Player
	if err := db.Where("player_id = ?", 8478402).First(&p).Error; err != nil {
		t.Fatalf("find player: %v", err)
	}
	if p.TeamID != 10 || p.FirstName != "Auston" {
		t.Fatalf("player = %+v", p)
	}
}

func TestRosterSyncTeamIndexFailure(t *testing.T) {
	src := newFakeSource()
	src.teamsErr = errors.New("upstream down")

	db := setupServiceDB(t)
	svc := NewRosterSyncService(db, src, testLogger())

	if err := svc.Run(context.Background()); err == nil {
		t.Fatalf("Run() should fail when the team index fetch fails")
	}
}
