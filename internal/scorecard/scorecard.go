package scorecard

import (
	"sort"

	"engsoc.net/eweek/internal/leaderboard"
	"engsoc.net/eweek/internal/types"
)

// BuildScorecards cross-references the leaderboard's per-event parallel
// arrays with the finished-events list, matched by event id. Only the
// column-oriented payload carries per-event data; any other shape falls back
// to one bare scorecard per finished event.
func BuildScorecards(p leaderboard.Payload, knownBatches []string, finished []types.EventRecord) []types.Scorecard {
	if p.Kind == leaderboard.KindColumns {
		if ids := p.Columns.Strings("EventId"); len(ids) > 0 {
			return fromColumns(p.Columns, ids, knownBatches, finished)
		}
	}

	cards := []types.Scorecard{}
	for _, ev := range finished {
		cards = append(cards, types.Scorecard{
			Id:     ev.Id,
			Name:   ev.Title,
			Date:   ev.Date,
			Winner: declaredWinner(ev, nil),
			Scores: []types.BatchScore{},
		})
	}
	return cards
}

func fromColumns(cols leaderboard.Columns, ids []string, knownBatches []string, finished []types.EventRecord) []types.Scorecard {
	names := cols.Strings("EventName")

	perBatch := map[string][]*float64{}
	for _, batch := range knownBatches {
		perBatch[batch] = cols.Scores(batch)
	}

	finishedById := map[string]types.EventRecord{}
	for _, ev := range finished {
		if len(ev.Id) > 0 {
			finishedById[ev.Id] = ev
		}
	}

	cards := []types.Scorecard{}
	seen := map[string]bool{}

	for idx, id := range ids {
		seen[id] = true

		scores := []types.BatchScore{}
		for _, batch := range knownBatches {
			arr := perBatch[batch]
			if idx >= len(arr) || arr[idx] == nil {
				continue
			}
			scores = append(scores, types.BatchScore{Batch: batch, Score: *arr[idx]})
		}
		sort.SliceStable(scores, func(a, b int) bool {
			return scores[a].Score > scores[b].Score
		})

		full := finishedById[id]

		name := ""
		if idx < len(names) {
			name = names[idx]
		}
		if len(name) == 0 {
			name = full.Title
		}
		if len(name) == 0 {
			name = "Event"
		}

		cards = append(cards, types.Scorecard{
			Id:     id,
			Name:   name,
			Date:   full.Date,
			Winner: declaredWinner(full, scores),
			Scores: scores,
		})
	}

	// finished events the leaderboard never heard about still get a card
	for _, ev := range finished {
		if seen[ev.Id] {
			continue
		}
		cards = append(cards, types.Scorecard{
			Id:     ev.Id,
			Name:   ev.Title,
			Date:   ev.Date,
			Winner: declaredWinner(ev, nil),
			Scores: []types.BatchScore{},
		})
	}

	return cards
}

// declaredWinner prefers the event's own winners field, then the top score's
// batch, then a placeholder.
func declaredWinner(ev types.EventRecord, scores []types.BatchScore) string {
	if len(ev.Winners) > 0 {
		return ev.Winners
	}
	if len(scores) > 0 {
		return scores[0].Batch
	}
	return "—"
}
