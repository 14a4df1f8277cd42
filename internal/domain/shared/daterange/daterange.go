package daterange

import (
	"errors"
	"time"
)

var ErrInvalidRange = errors.New("daterange: end must not be before start")

// Day normalises a timestamp to its calendar date at midnight UTC.
func Day(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Days enumerates every calendar date from start to end, inclusive of start.
// The final day is included only when includeFinal is set. Returns
// ErrInvalidRange when end is an earlier day than start.
func Days(start, end time.Time, includeFinal bool) ([]time.Time, error) {
	start, end = Day(start), Day(end)
	if end.Before(start) {
		return nil, ErrInvalidRange
	}
	days := make([]time.Time, 0, int(end.Sub(start).Hours()/24)+1)
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	if includeFinal {
		days = append(days, end)
	}
	return days, nil
}

// Span is an inclusive calendar-date interval [From, Until].
type Span struct {
	From  time.Time
	Until time.Time
}

func NewSpan(from, until time.Time) (Span, error) {
	s := Span{From: Day(from), Until: Day(until)}
	if s.Until.Before(s.From) {
		return Span{}, ErrInvalidRange
	}
	return s, nil
}

func (s Span) Contains(t time.Time) bool {
	d := Day(t)
	return !d.Before(s.From) && !d.After(s.Until)
}

func (s Span) Overlaps(other Span) bool {
	return !s.From.After(other.Until) && !other.From.After(s.Until)
}
