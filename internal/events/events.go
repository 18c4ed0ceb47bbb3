package events

import (
	"sort"
	"strings"
	"time"

	"engsoc.net/eweek/internal/countdown"
	"engsoc.net/eweek/internal/types"
)

// RawEvent is an event record as the backend sends it. Field names drifted
// over the API's lifetime (_id vs id, category vs eventType), so both
// spellings are decoded and reconciled in Normalize.
type RawEvent struct {
	MongoId   string `json:"_id"`
	Id        string `json:"id"`
	Title     string `json:"title"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Location  string `json:"location"`
	Category  string `json:"category"`
	EventType string `json:"eventType"`
	Status    string `json:"status"`

	Winners        string `json:"winners"`
	FirstRunnerUp  string `json:"firstRunnerUp"`
	SecondRunnerUp string `json:"secondRunnerUp"`
	ThirdRunnerUp  string `json:"thirdRunnerUp"`

	MaxTeamsPerBatch   int `json:"maxTeamsPerBatch"`
	MaxPlayersPerBatch int `json:"maxPlayersPerBatch"`
	PlayersPerTeam     int `json:"playersPerTeam"`
}

func Normalize(raw RawEvent) types.EventRecord {
	id := raw.MongoId
	if len(id) == 0 {
		id = raw.Id
	}

	kind := raw.Category
	if len(kind) == 0 {
		kind = raw.EventType
	}
	if len(kind) == 0 {
		kind = "other"
	}

	return types.EventRecord{
		Id:               id,
		Title:            raw.Title,
		Date:             raw.Date,
		Time:             raw.Time,
		Location:         raw.Location,
		Type:             strings.ToLower(kind),
		Status:           raw.Status,
		RegistrationOpen: raw.Status == "upcoming",

		Winners:        raw.Winners,
		FirstRunnerUp:  raw.FirstRunnerUp,
		SecondRunnerUp: raw.SecondRunnerUp,
		ThirdRunnerUp:  raw.ThirdRunnerUp,

		MaxTeamsPerBatch:   raw.MaxTeamsPerBatch,
		MaxPlayersPerBatch: raw.MaxPlayersPerBatch,
		PlayersPerTeam:     raw.PlayersPerTeam,
	}
}

// NormalizeAll drops records that carry neither an id nor a title instead of
// letting them through as empty rows.
func NormalizeAll(raw []RawEvent) []types.EventRecord {
	out := []types.EventRecord{}
	for _, r := range raw {
		ev := Normalize(r)
		if len(ev.Id) == 0 && len(ev.Title) == 0 {
			continue
		}
		out = append(out, ev)
	}
	return out
}

func Bucketize(all []types.EventRecord) types.EventBuckets {
	buckets := types.EventBuckets{
		Upcoming: []types.EventRecord{},
		Live:     []types.EventRecord{},
		Finished: []types.EventRecord{},
	}

	for _, ev := range all {
		switch ev.Status {
		case "upcoming":
			buckets.Upcoming = append(buckets.Upcoming, ev)
		case "live":
			buckets.Live = append(buckets.Live, ev)
		case "finished":
			buckets.Finished = append(buckets.Finished, ev)
		}
	}

	return buckets
}

// BuildSchedule lays events onto a fixed window of consecutive calendar days
// starting at windowStart. Events match a day by calendar date, not instant,
// and are sorted within a day by their display time. Times come from the
// backend uniformly formatted as HH:MM, which is the only reason a plain
// string sort is ordered correctly here.
func BuildSchedule(all []types.EventRecord, windowStart time.Time, days int) []types.ScheduleDay {
	schedule := []types.ScheduleDay{}

	for i := 0; i < days; i++ {
		d := windowStart.AddDate(0, 0, i)
		dateKey := d.Format("2006-01-02")

		dayEvents := []types.ScheduleEvent{}
		for _, ev := range all {
			evDate, err := countdown.ParseInstant(ev.Date)
			if err != nil {
				continue
			}
			if evDate.Format("2006-01-02") != dateKey {
				continue
			}
			dayEvents = append(dayEvents, types.ScheduleEvent{
				Time:     ev.Time,
				Title:    ev.Title,
				Location: ev.Location,
				Type:     ev.Type,
			})
		}

		sort.SliceStable(dayEvents, func(a, b int) bool {
			return dayEvents[a].Time < dayEvents[b].Time
		})

		schedule = append(schedule, types.ScheduleDay{
			Date:   dateKey,
			Day:    strings.ToUpper(d.Format("Mon")),
			Events: dayEvents,
		})
	}

	return schedule
}

// TopUpcoming picks the next n events by date for the dashboard strip.
// Unparsable dates sort first, same as the screens treated them.
func TopUpcoming(upcoming []types.EventRecord, n int) []types.EventRecord {
	sorted := make([]types.EventRecord, len(upcoming))
	copy(sorted, upcoming)

	sort.SliceStable(sorted, func(a, b int) bool {
		da, errA := countdown.ParseInstant(sorted[a].Date)
		db, errB := countdown.ParseInstant(sorted[b].Date)
		if errA != nil {
			da = time.Time{}
		}
		if errB != nil {
			db = time.Time{}
		}
		return da.Before(db)
	})

	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
