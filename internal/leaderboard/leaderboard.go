package leaderboard

import (
	"fmt"
	"sort"

	"engsoc.net/eweek/internal/types"
)

// DefaultBatches is the fixed batch set E-Week 2K25 is contested between.
// It is passed into Reconcile explicitly so tests and future editions can
// swap it out.
var DefaultBatches = []string{"E21", "E22", "E23", "E24", "Staff"}

// Reconcile turns either payload shape into one ranked row list. finished is
// only consulted for the wins column and may be nil.
//
// Positions are a permutation of 1..N. Rows that arrive with explicit
// position/rank fields keep them; otherwise rows are ranked by descending
// points with ties keeping their input order.
func Reconcile(p Payload, knownBatches []string, finished []types.EventRecord) []types.LeaderboardRow {
	switch p.Kind {
	case KindRows:
		return reconcileRows(p.Rows)
	case KindColumns:
		return reconcileColumns(p.Columns, knownBatches, finished)
	}
	return []types.LeaderboardRow{}
}

func reconcileRows(raw []RawRow) []types.LeaderboardRow {
	rows := []types.LeaderboardRow{}
	ranked := false

	for i, r := range raw {
		batch := r.Batch
		if len(batch) == 0 {
			batch = r.Team
		}
		if len(batch) == 0 {
			batch = fmt.Sprintf("Team %d", i+1)
		}

		// points wins over score only when actually present
		rawPoints := r.Points
		if len(rawPoints) == 0 || string(rawPoints) == "null" {
			rawPoints = r.Score
		}
		points := numeric(rawPoints)

		position := r.Position
		if position == 0 {
			position = r.Rank
		}
		if position > 0 {
			ranked = true
		} else {
			position = i + 1
		}

		events := r.EventsCount
		if events == 0 {
			events = len(r.Events)
		}

		rows = append(rows, types.LeaderboardRow{
			Batch:    batch,
			Points:   points,
			Position: position,
			Events:   events,
			Wins:     r.Wins,
		})
	}

	if !ranked {
		rank(rows)
	}
	return rows
}

func reconcileColumns(cols Columns, knownBatches []string, finished []types.EventRecord) []types.LeaderboardRow {
	totalEvents := len(cols.Strings("EventId"))

	rows := []types.LeaderboardRow{}
	for _, batch := range knownBatches {
		wins := 0
		for _, ev := range finished {
			if ev.Winners == batch {
				wins++
			}
		}
		rows = append(rows, types.LeaderboardRow{
			Batch:  batch,
			Points: cols.Number(batch + "Points"),
			Events: totalEvents,
			Wins:   wins,
		})
	}

	rank(rows)
	return rows
}

// rank sorts by descending points and assigns 1-based positions. The sort is
// stable so a tie keeps the incoming order.
func rank(rows []types.LeaderboardRow) {
	sort.SliceStable(rows, func(a, b int) bool {
		return rows[a].Points > rows[b].Points
	})
	for i := range rows {
		rows[i].Position = i + 1
	}
}
