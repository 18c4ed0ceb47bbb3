package countdown

import (
	"time"

	"engsoc.net/eweek/internal/types"
)

// Resolve classifies now against the event window and computes the time left
// until the next boundary: the start when upcoming, the end when live.
// A concluded event gets an all-zero breakdown.
func Resolve(now, start, end time.Time) (types.EventStatus, types.Breakdown) {
	if start.IsZero() || end.IsZero() {
		return types.StatusUpcoming, types.Breakdown{}
	}

	if !now.Before(end) {
		return types.StatusConcluded, types.Breakdown{}
	}

	if !now.Before(start) {
		return types.StatusLive, breakdown(end.Sub(now))
	}

	return types.StatusUpcoming, breakdown(start.Sub(now))
}

// ResolveStrings parses the window from the wire format first. Unparsable
// dates degrade to upcoming with a zero breakdown rather than an error,
// matching how every screen treats a bad window.
func ResolveStrings(now time.Time, start, end string) (types.EventStatus, types.Breakdown) {
	s, errS := ParseInstant(start)
	e, errE := ParseInstant(end)
	if errS != nil || errE != nil {
		return types.StatusUpcoming, types.Breakdown{}
	}
	return Resolve(now, s, e)
}

func breakdown(d time.Duration) types.Breakdown {
	ms := d.Milliseconds()
	if ms < 0 {
		ms = 0
	}
	return types.Breakdown{
		Days:    int(ms / 86400000),
		Hours:   int((ms % 86400000) / 3600000),
		Minutes: int((ms % 3600000) / 60000),
		Seconds: int((ms % 60000) / 1000),
	}
}

// ParseInstant accepts the formats the backend has been seen emitting:
// RFC3339 timestamps and bare yyyy-mm-dd dates.
func ParseInstant(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
