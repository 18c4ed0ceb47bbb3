package events

import (
	"testing"
	"time"

	"engsoc.net/eweek/internal/types"
)

func TestNormalizeIdFields(t *testing.T) {
	a := Normalize(RawEvent{MongoId: "x", Title: "Chess", Date: "2025-09-01", Time: "10:00", Location: "Gym", Category: "Competition"})
	b := Normalize(RawEvent{Id: "x", Title: "Chess", Date: "2025-09-01", Time: "10:00", Location: "Gym", Category: "Competition"})

	if a != b {
		t.Errorf("_id and id records should normalize identically:\n%+v\n%+v", a, b)
	}
	if a.Id != "x" {
		t.Errorf("expected id x, got %q", a.Id)
	}
}

func TestNormalizeType(t *testing.T) {
	if got := Normalize(RawEvent{Category: "Esports"}).Type; got != "esports" {
		t.Errorf("category should win, lowercased; got %q", got)
	}
	if got := Normalize(RawEvent{EventType: "Workshop"}).Type; got != "workshop" {
		t.Errorf("eventType is the fallback; got %q", got)
	}
	if got := Normalize(RawEvent{}).Type; got != "other" {
		t.Errorf("missing both should default to other; got %q", got)
	}
}

func TestNormalizeRegistrationOpen(t *testing.T) {
	if !Normalize(RawEvent{Status: "upcoming"}).RegistrationOpen {
		t.Error("upcoming events should be open for registration")
	}
	if Normalize(RawEvent{Status: "live"}).RegistrationOpen {
		t.Error("live events should not be open for registration")
	}
}

func TestNormalizeAllSkipsEmptyRecords(t *testing.T) {
	out := NormalizeAll([]RawEvent{
		{MongoId: "1", Title: "Opening Ceremony"},
		{}, // junk row from the API
		{Title: "Untitled but real"},
	})

	if len(out) != 2 {
		t.Fatalf("expected 2 records, got %d", len(out))
	}
}

func TestBucketize(t *testing.T) {
	buckets := Bucketize([]types.EventRecord{
		{Id: "1", Status: "upcoming"},
		{Id: "2", Status: "live"},
		{Id: "3", Status: "finished"},
		{Id: "4", Status: "finished"},
		{Id: "5", Status: "cancelled"}, // unknown status is dropped
	})

	if len(buckets.Upcoming) != 1 || len(buckets.Live) != 1 || len(buckets.Finished) != 2 {
		t.Errorf("buckets = %d/%d/%d, want 1/1/2",
			len(buckets.Upcoming), len(buckets.Live), len(buckets.Finished))
	}
}

func TestBuildScheduleAssignsDays(t *testing.T) {
	windowStart := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)

	schedule := BuildSchedule([]types.EventRecord{
		{Title: "Quiz Night", Date: "2025-09-02", Time: "18:00", Location: "Hall A", Type: "competition"},
	}, windowStart, 7)

	if len(schedule) != 7 {
		t.Fatalf("expected 7 days, got %d", len(schedule))
	}

	for i, day := range schedule {
		want := 0
		if i == 3 { // 2025-09-02 is the 4th day of the window
			want = 1
		}
		if len(day.Events) != want {
			t.Errorf("day %s has %d events, want %d", day.Date, len(day.Events), want)
		}
	}

	if schedule[0].Date != "2025-08-30" || schedule[6].Date != "2025-09-05" {
		t.Errorf("window runs %s..%s, want 2025-08-30..2025-09-05", schedule[0].Date, schedule[6].Date)
	}
	if schedule[0].Day != "SAT" {
		t.Errorf("2025-08-30 label = %q, want SAT", schedule[0].Day)
	}
}

func TestBuildScheduleSortsByTime(t *testing.T) {
	windowStart := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)

	schedule := BuildSchedule([]types.EventRecord{
		{Title: "Evening", Date: "2025-08-30", Time: "19:30"},
		{Title: "Morning", Date: "2025-08-30", Time: "08:00"},
		{Title: "Noon", Date: "2025-08-30", Time: "12:00"},
	}, windowStart, 1)

	day := schedule[0]
	if len(day.Events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(day.Events))
	}
	order := []string{"Morning", "Noon", "Evening"}
	for i, want := range order {
		if day.Events[i].Title != want {
			t.Errorf("slot %d = %q, want %q", i, day.Events[i].Title, want)
		}
	}
}

func TestBuildScheduleSkipsMalformedDates(t *testing.T) {
	windowStart := time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC)

	schedule := BuildSchedule([]types.EventRecord{
		{Title: "Broken", Date: "soon"},
		{Title: "Fine", Date: "2025-08-30"},
	}, windowStart, 1)

	if len(schedule[0].Events) != 1 || schedule[0].Events[0].Title != "Fine" {
		t.Errorf("malformed date should be skipped, got %+v", schedule[0].Events)
	}
}

func TestBuildScheduleEmptyInput(t *testing.T) {
	schedule := BuildSchedule(nil, time.Date(2025, 8, 30, 0, 0, 0, 0, time.UTC), 7)
	if len(schedule) != 7 {
		t.Fatalf("expected a full window even with no events, got %d days", len(schedule))
	}
	for _, day := range schedule {
		if day.Events == nil {
			t.Errorf("day %s has nil events, want empty slice", day.Date)
		}
	}
}

func TestTopUpcoming(t *testing.T) {
	upcoming := []types.EventRecord{
		{Id: "c", Date: "2025-09-03"},
		{Id: "a", Date: "2025-09-01"},
		{Id: "b", Date: "2025-09-02"},
	}

	top := TopUpcoming(upcoming, 2)
	if len(top) != 2 {
		t.Fatalf("expected 2 events, got %d", len(top))
	}
	if top[0].Id != "a" || top[1].Id != "b" {
		t.Errorf("expected a,b got %s,%s", top[0].Id, top[1].Id)
	}

	// input order untouched
	if upcoming[0].Id != "c" {
		t.Error("TopUpcoming must not reorder its input")
	}
}
