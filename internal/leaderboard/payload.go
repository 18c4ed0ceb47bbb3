package leaderboard

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// The backend has shipped two leaderboard shapes: an ordered array of row
// objects, and a single column-oriented object with "<Batch>Points" keys plus
// per-event parallel arrays. The shape is resolved exactly once, here, and
// everything downstream works off the tagged Payload.

type PayloadKind int

const (
	KindNone PayloadKind = iota
	KindRows
	KindColumns
)

type Payload struct {
	Kind    PayloadKind
	Rows    []RawRow
	Columns Columns
}

// RawRow decodes a single array-form entry. Points and score stay raw
// because some deployments send a plain number and some send a keyed map of
// per-sub-event points.
type RawRow struct {
	Batch       string            `json:"batch"`
	Team        string            `json:"team"`
	Points      json.RawMessage   `json:"points"`
	Score       json.RawMessage   `json:"score"`
	Position    int               `json:"position"`
	Rank        int               `json:"rank"`
	EventsCount int               `json:"eventsCount"`
	Events      []json.RawMessage `json:"events"`
	Wins        int               `json:"wins"`
}

type Columns map[string]json.RawMessage

// ParsePayload sniffs the payload shape. Anything that is not a JSON array
// or object comes back as KindNone, which reconciles to an empty board.
func ParsePayload(data []byte) Payload {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return Payload{Kind: KindNone}
	}

	switch data[0] {
	case '[':
		var rows []RawRow
		if err := json.Unmarshal(data, &rows); err != nil {
			return Payload{Kind: KindNone}
		}
		return Payload{Kind: KindRows, Rows: rows}
	case '{':
		cols := Columns{}
		if err := json.Unmarshal(data, &cols); err != nil {
			return Payload{Kind: KindNone}
		}
		return Payload{Kind: KindColumns, Columns: cols}
	}

	return Payload{Kind: KindNone}
}

// Number reads a numeric column value, tolerating numbers sent as strings.
// Missing or unusable values are 0.
func (c Columns) Number(key string) float64 {
	raw, ok := c[key]
	if !ok {
		return 0
	}
	return numeric(raw)
}

// Strings reads a parallel string array such as EventId or EventName.
func (c Columns) Strings(key string) []string {
	raw, ok := c[key]
	if !ok {
		return nil
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil
	}
	return out
}

// Scores reads a per-batch parallel array. Entries that are not numbers
// (null, strings, absent trailing slots) come back as nil so callers can
// tell "no score recorded" from an actual zero.
func (c Columns) Scores(key string) []*float64 {
	raw, ok := c[key]
	if !ok {
		return nil
	}
	var entries []json.RawMessage
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil
	}

	out := make([]*float64, len(entries))
	for i, e := range entries {
		var v float64
		if err := json.Unmarshal(e, &v); err == nil {
			out[i] = &v
		}
	}
	return out
}

// numeric resolves a raw points value: a number, a number-in-a-string, or a
// keyed map of sub-event points that gets summed. Everything else is 0.
func numeric(raw json.RawMessage) float64 {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}

	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}

	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0
		}
		return v
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err == nil {
		sum := 0.0
		for _, v := range m {
			sum += numeric(v)
		}
		return sum
	}

	return 0
}
