package repository

import (
	"context"
	"testing"

	"NHLSync/internal/model"

	"gorm.io/datatypes"
)

func TestUpsertPlaysIdempotent(t *testing.T) {
	db := setupDB(t)
	repo := NewPlayRepository(db)
	ctx := context.Background()

	rows := []model.Play{{
		GameID:       42,
		PlayID:       101,
		EventType:    "goal",
		Period:       intPtr(1),
		TimeInPeriod: strPtr("03:30"),
		Details:      datatypes.JSON(`{"xCoord":10}`),
	}}

	for i := 0; i < 2; i++ {
		count, err := repo.UpsertPlays(ctx, rows)
		if err != nil {
			t.Fatalf("UpsertPlays() pass %d error = %v", i+1, err)
		}
		if count != 1 {
			t.Fatalf("UpsertPlays() pass %d count = %d, want 1", i+1, count)
		}
	}

	var stored []model.Play
	if err := db.Find(&stored).Error; err != nil {
		t.Fatalf("find plays: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("stored rows = %d, want 1 after double upsert", len(stored))
	}
	if stored[0].EventType != "goal" || *stored[0].TimeInPeriod != "03:30" {
		t.Fatalf("stored row = %+v", stored[0])
	}
}

func TestUpsertPlaysUpdatesChangedFields(t *testing.T) {
	db := setupDB(t)
	repo := NewPlayRepository(db)
	ctx := context.Background()

	if _, err := repo.UpsertPlays(ctx, []model.Play{{GameID: 42, PlayID: 5, EventType: "shot-on-goal"}}); err != nil {
		t.Fatalf("UpsertPlays() error = %v", err)
	}
	// Upstream reclassifies the event on a later poll.
	if _, err := repo.UpsertPlays(ctx, []model.Play{{GameID: 42, PlayID: 5, EventType: "goal", Period: intPtr(2)}}); err != nil {
		t.Fatalf("UpsertPlays() error = %v", err)
	}

	var stored model.Play
	if err := db.Where("game_id = ? AND play_id = ?", 42, 5).First(&stored).Error; err != nil {
		t.Fatalf("find play: %v", err)
	}
	if stored.EventType != "goal" {
		t.Fatalf("event type = %q, want goal", stored.EventType)
	}
	if stored.Period == nil || *stored.Period != 2 {
		t.Fatalf("period = %v, want 2", stored.Period)
	}
}

func TestUpsertPlaysStoresWideIDsExactly(t *testing.T) {
	db := setupDB(t)
	repo := NewPlayRepository(db)
	ctx := context.Background()

	// Ids at and past the 32-bit ceiling; a too-narrow column used to clamp these
	// to 2147483647.
	ids := []int64{2147483647, 2147483648, 3000000000, 1 << 40}
	var rows []model.Play
	for _, id := range ids {
		rows = append(rows, model.Play{GameID: 42, PlayID: id, EventType: "hit"})
	}
	if _, err := repo.UpsertPlays(ctx, rows); err != nil {
		t.Fatalf("UpsertPlays() error = %v", err)
	}

	var stored []model.Play
	if err := db.Order("play_id ASC").Find(&stored).Error; err != nil {
		t.Fatalf("find plays: %v", err)
	}
	if len(stored) != len(ids) {
		t.Fatalf("stored rows = %d, want %d", len(stored), len(ids))
	}
	for i, id := range ids {
		if stored[i].PlayID != id {
			t.Fatalf("play id %d stored as %d", id, stored[i].PlayID)
		}
	}
}

func TestUpsertPlaysEmptyBatch(t *testing.T) {
	db := setupDB(t)
	count, err := NewPlayRepository(db).UpsertPlays(context.Background(), nil)
	if err != nil {
		t.Fatalf("UpsertPlays() error = %v", err)
	}
	if count != 0 {
		t.Fatalf("count = %d, want 0", count)
	}
}

func TestListPlaysByGameOrder(t *testing.T) {
	db := setupDB(t)
	repo := NewPlayRepository(db)
	ctx := context.Background()

	rows := []model.Play{
		{GameID: 42, PlayID: 3, EventType: "hit", SortOrder: intPtr(30)},
		{GameID: 42, PlayID: 1, EventType: "faceoff", SortOrder: intPtr(10)},
		{GameID: 42, PlayID: 2, EventType: "shot-on-goal", SortOrder: intPtr(20)},
		{GameID: 99, PlayID: 1, EventType: "faceoff", SortOrder: intPtr(10)},
	}
	if _, err := repo.UpsertPlays(ctx, rows); err != nil {
		t.Fatalf("UpsertPlays() error = %v", err)
	}

	plays, err := repo.ListPlaysByGame(ctx, 42)
	if err != nil {
		t.Fatalf("ListPlaysByGame() error = %v", err)
	}
	if len(plays) != 3 {
		t.Fatalf("plays = %d, want 3", len(plays))
	}
	if plays[0].PlayID != 1 || plays[1].PlayID != 2 || plays[2].PlayID != 3 {
		t.Fatalf("order = %d %d %d", plays[0].PlayID, plays[1].PlayID, plays[2].PlayID)
	}
}
