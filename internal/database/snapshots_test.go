package database

import (
	"path/filepath"
	"testing"

	"engsoc.net/eweek/internal/types"
)

func testDB(t *testing.T) *DatabaseInst {
	t.Helper()
	db, err := InitDatabase(filepath.Join(t.TempDir(), "test.sqlite3"), "../../migrations")
	if err != nil {
		t.Fatal(err)
	}
	return db
}

func TestStoreEventsReplacesSnapshot(t *testing.T) {
	db := testDB(t)

	first := []types.EventRecord{
		{Id: "e1", Title: "Chess", Date: "2025-09-01", Status: "upcoming", RegistrationOpen: true},
		{Id: "e2", Title: "Quiz", Date: "2025-09-02", Status: "finished", Winners: "E21"},
	}
	if err := db.StoreEvents(first); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetEvents()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 events, got %d", len(got))
	}

	byId := map[string]types.EventRecord{}
	for _, ev := range got {
		byId[ev.Id] = ev
	}
	if byId["e1"] != first[0] || byId["e2"] != first[1] {
		t.Errorf("round trip mismatch: %+v", byId)
	}

	// a new snapshot fully replaces the old one
	second := []types.EventRecord{{Id: "e3", Title: "Drama", Status: "live"}}
	if err := db.StoreEvents(second); err != nil {
		t.Fatal(err)
	}
	got, err = db.GetEvents()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 || got[0].Id != "e3" {
		t.Errorf("expected only e3 after replace, got %+v", got)
	}
}

func TestStoreLeaderboardOrdering(t *testing.T) {
	db := testDB(t)

	ranking := []types.LeaderboardRow{
		{Batch: "E22", Points: 30, Position: 1, Events: 3, Wins: 2},
		{Batch: "E23", Points: 20, Position: 2, Events: 3, Wins: 1},
		{Batch: "E21", Points: 10, Position: 3, Events: 3},
	}
	if err := db.StoreLeaderboard(ranking); err != nil {
		t.Fatal(err)
	}

	got, err := db.GetLeaderboard()
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(got))
	}
	for i, row := range ranking {
		if got[i] != row {
			t.Errorf("row %d = %+v, want %+v", i, got[i], row)
		}
	}
}

func TestEmptySnapshots(t *testing.T) {
	db := testDB(t)

	events, err := db.GetEvents()
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 0 {
		t.Errorf("expected no events, got %+v", events)
	}

	rows, err := db.GetLeaderboard()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 0 {
		t.Errorf("expected no rows, got %+v", rows)
	}
}
