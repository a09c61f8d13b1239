package dateutil

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var pkt = time.FixedZone("PKT", 5*60*60)

// 2024-03-15 20:30 UTC is already 2024-03-16 01:30 in Pakistan.
var fixedNow = time.Date(2024, time.March, 15, 20, 30, 0, 0, time.UTC)

func newTestCalendar() *Calendar {
	return NewCalendar(pkt, func() time.Time { return fixedNow })
}

func TestCalendar_Now(t *testing.T) {
	cal := newTestCalendar()

	now := cal.Now()
	assert.Equal(t, 16, now.Day())
	assert.Equal(t, 1, now.Hour())
	assert.True(t, now.Equal(fixedNow))
}

func TestCalendar_DayRange(t *testing.T) {
	cal := newTestCalendar()

	r := cal.DayRange(fixedNow)

	assert.Equal(t, time.Date(2024, time.March, 15, 19, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2024, time.March, 16, 18, 59, 59, int(999*time.Millisecond), time.UTC), r.End)
	assert.Equal(t, time.UTC, r.Start.Location())
	assert.True(t, r.Contains(fixedNow))
	assert.Equal(t, 24*time.Hour-time.Millisecond, r.End.Sub(r.Start))
}

func TestCalendar_DayRange_ContainsEveryInstantOfTheDay(t *testing.T) {
	cal := newTestCalendar()
	dayStart := time.Date(2024, time.July, 1, 0, 0, 0, 0, pkt)

	for offset := time.Duration(0); offset < 24*time.Hour; offset += 37 * time.Minute {
		instant := dayStart.Add(offset)
		r := cal.DayRange(instant)
		assert.True(t, r.Contains(instant), "instant %s", instant)
		assert.Equal(t, dayStart.UTC(), r.Start)
	}
}

func TestCalendar_DateRange(t *testing.T) {
	cal := newTestCalendar()

	t.Run("today", func(t *testing.T) {
		r, err := cal.DateRange(PeriodToday, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, cal.DayRange(fixedNow), r)
	})

	t.Run("yesterday", func(t *testing.T) {
		r, err := cal.DateRange(PeriodYesterday, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 14, 19, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2024, time.March, 15, 18, 59, 59, int(999*time.Millisecond), time.UTC), r.End)
	})

	t.Run("week covers seven days including today", func(t *testing.T) {
		r, err := cal.DateRange(PeriodWeek, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.March, 9, 19, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, 7*24*time.Hour-time.Millisecond, r.End.Sub(r.Start))
		assert.True(t, r.Contains(fixedNow))
	})

	t.Run("month starts on the first in Pakistan", func(t *testing.T) {
		r, err := cal.DateRange(PeriodMonth, nil, nil)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.February, 29, 19, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, cal.DayRange(fixedNow).End, r.End)
	})

	t.Run("custom", func(t *testing.T) {
		start := time.Date(2024, time.January, 10, 15, 0, 0, 0, pkt)
		end := time.Date(2024, time.January, 12, 9, 0, 0, 0, pkt)

		r, err := cal.DateRange(PeriodCustom, &start, &end)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, time.January, 9, 19, 0, 0, 0, time.UTC), r.Start)
		assert.Equal(t, time.Date(2024, time.January, 12, 18, 59, 59, int(999*time.Millisecond), time.UTC), r.End)
	})

	t.Run("custom without end date", func(t *testing.T) {
		start := fixedNow
		_, err := cal.DateRange(PeriodCustom, &start, nil)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
	})

	t.Run("custom without start date", func(t *testing.T) {
		end := fixedNow
		_, err := cal.DateRange(PeriodCustom, nil, &end)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})

	t.Run("unknown period", func(t *testing.T) {
		_, err := cal.DateRange(Period("fortnight"), nil, nil)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	})
}

func TestParsePeriod(t *testing.T) {
	p, err := ParsePeriod("")
	require.NoError(t, err)
	assert.Equal(t, PeriodToday, p)

	p, err = ParsePeriod(" Week ")
	require.NoError(t, err)
	assert.Equal(t, PeriodWeek, p)

	_, err = ParsePeriod("quarter")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestCalendar_ParseDate(t *testing.T) {
	cal := newTestCalendar()

	d, err := cal.ParseDate("2024-05-01")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.April, 30, 19, 0, 0, 0, time.UTC), d.UTC())

	ts, err := cal.ParseDate("2024-05-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC), ts.UTC())

	_, err = cal.ParseDate("yesterday-ish")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestFormatPakistanDateTimeForDisplay(t *testing.T) {
	assert.Equal(t, "16-03-2024 01:30:00", FormatPakistanDateTimeForDisplay(fixedNow))
}

func TestFormatDateForDatabase(t *testing.T) {
	instant := time.Date(2024, time.March, 16, 1, 30, 0, int(250*time.Millisecond), pkt)

	formatted := FormatDateForDatabase(instant)
	assert.Equal(t, "2024-03-15T20:30:00.250Z", formatted)

	parsed, err := ParseDatabaseDate(formatted)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(instant))
}

func TestGetPakistanDayRange(t *testing.T) {
	r := GetPakistanDayRange(fixedNow)
	assert.True(t, r.Contains(fixedNow))
	assert.Equal(t, 24*time.Hour-time.Millisecond, r.End.Sub(r.Start))
}

func TestGetPakistanDateRange_CustomRequiresBothBounds(t *testing.T) {
	start := time.Now()
	_, err := GetPakistanDateRange(PeriodCustom, &start, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestDefaultCalendar_FixedOffset(t *testing.T) {
	// Pakistan observed daylight saving in mid 2008; the fixed zone ignores it.
	summer2008 := time.Date(2008, time.July, 15, 12, 0, 0, 0, time.UTC)

	r := GetPakistanDayRange(summer2008)
	assert.Equal(t, time.Date(2008, time.July, 14, 19, 0, 0, 0, time.UTC), r.Start)
	assert.Equal(t, time.Date(2008, time.July, 15, 18, 59, 59, int(999*time.Millisecond), time.UTC), r.End)
	assert.Equal(t, 24*time.Hour-time.Millisecond, r.End.Sub(r.Start))

	assert.Equal(t, "15-07-2008 17:00:00", FormatPakistanDateTimeForDisplay(summer2008))

	june := GetPakistanDayRange(time.Date(2008, time.June, 1, 6, 0, 0, 0, time.UTC))
	assert.Equal(t, 24*time.Hour-time.Millisecond, june.End.Sub(june.Start))

	_, offset := CurrentPakistanDate().Zone()
	assert.Equal(t, 5*60*60, offset)
	assert.Equal(t, PakistanLocation(), NewCalendar(nil, nil).Location())
}
