package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func date(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse("2006-01-02", s)
	require.NoError(t, err)
	return d
}

func TestDaysExclusiveOfFinal(t *testing.T) {
	days, err := Days(date(t, "2025-04-28"), date(t, "2025-05-01"), false)
	require.NoError(t, err)
	require.Equal(t, []time.Time{
		date(t, "2025-04-28"),
		date(t, "2025-04-29"),
		date(t, "2025-04-30"),
	}, days)
}

func TestDaysInclusiveOfFinal(t *testing.T) {
	days, err := Days(date(t, "2025-04-28"), date(t, "2025-05-01"), true)
	require.NoError(t, err)
	require.Len(t, days, 4)
	require.Equal(t, date(t, "2025-05-01"), days[3])
}

func TestDaysSameDay(t *testing.T) {
	days, err := Days(date(t, "2025-04-28"), date(t, "2025-04-28"), true)
	require.NoError(t, err)
	require.Equal(t, []time.Time{date(t, "2025-04-28")}, days)

	days, err = Days(date(t, "2025-04-28"), date(t, "2025-04-28"), false)
	require.NoError(t, err)
	require.Empty(t, days)
}

func TestDaysInvalidRange(t *testing.T) {
	_, err := Days(date(t, "2025-05-01"), date(t, "2025-04-28"), true)
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestDaysRepeatable(t *testing.T) {
	first, err := Days(date(t, "2025-04-28"), date(t, "2025-05-05"), true)
	require.NoError(t, err)
	second, err := Days(date(t, "2025-04-28"), date(t, "2025-05-05"), true)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestDayNormalisesToMidnightUTC(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)
	stamp := time.Date(2025, 4, 28, 23, 30, 0, 0, loc)
	require.Equal(t, time.Date(2025, 4, 29, 0, 0, 0, 0, time.UTC), Day(stamp))
}

func TestSpanContains(t *testing.T) {
	span, err := NewSpan(date(t, "2025-07-01"), date(t, "2025-07-10"))
	require.NoError(t, err)

	require.True(t, span.Contains(date(t, "2025-07-01")))
	require.True(t, span.Contains(date(t, "2025-07-10")))
	require.True(t, span.Contains(date(t, "2025-07-05")))
	require.False(t, span.Contains(date(t, "2025-06-30")))
	require.False(t, span.Contains(date(t, "2025-07-11")))
}

func TestSpanSingleDay(t *testing.T) {
	span, err := NewSpan(date(t, "2025-07-01"), date(t, "2025-07-01"))
	require.NoError(t, err)
	require.True(t, span.Contains(date(t, "2025-07-01")))
}

func TestSpanInvalid(t *testing.T) {
	_, err := NewSpan(date(t, "2025-07-10"), date(t, "2025-07-01"))
	require.ErrorIs(t, err, ErrInvalidRange)
}

func TestSpanOverlaps(t *testing.T) {
	a, err := NewSpan(date(t, "2025-07-01"), date(t, "2025-07-10"))
	require.NoError(t, err)
	b, err := NewSpan(date(t, "2025-07-10"), date(t, "2025-07-20"))
	require.NoError(t, err)
	c, err := NewSpan(date(t, "2025-07-11"), date(t, "2025-07-20"))
	require.NoError(t, err)

	require.True(t, a.Overlaps(b))
	require.True(t, b.Overlaps(a))
	require.False(t, a.Overlaps(c))
}
