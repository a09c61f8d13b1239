package dateutil

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

const (
	// PakistanOffset is Pakistan Standard Time, UTC+5 with no daylight saving.
	PakistanOffset = 5 * time.Hour

	// DisplayLayout is dd-MM-yyyy HH:mm:ss.
	DisplayLayout = "02-01-2006 15:04:05"
	// DatabaseLayout is a UTC ISO-8601 timestamp with millisecond precision.
	DatabaseLayout = "2006-01-02T15:04:05.000Z"
	// DateLayout is used for date-only query parameters.
	DateLayout = "2006-01-02"
)

// ErrInvalidArgument is returned when a date range cannot be built from its inputs.
var ErrInvalidArgument = errors.New("invalid argument")

// Period names a reporting window.
type Period string

const (
	PeriodToday     Period = "today"
	PeriodYesterday Period = "yesterday"
	PeriodWeek      Period = "week"
	PeriodMonth     Period = "month"
	PeriodCustom    Period = "custom"
)

// ParsePeriod validates a period tag. An empty tag means today.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodToday, nil
	case PeriodToday, PeriodYesterday, PeriodWeek, PeriodMonth, PeriodCustom:
		return p, nil
	default:
		return "", fmt.Errorf("%w: unknown period %q", ErrInvalidArgument, s)
	}
}

// DateRange is an inclusive window expressed as UTC instants.
type DateRange struct {
	Start time.Time `json:"start_date"`
	End   time.Time `json:"end_date"`
}

// Contains reports whether t falls inside the range, bounds included.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

var pakistanLocation = time.FixedZone("PKT", int(PakistanOffset/time.Second))

// PakistanLocation returns the fixed UTC+5 zone. No daylight saving applies for any
// year, whatever the host's tzdata says about Asia/Karachi.
func PakistanLocation() *time.Location {
	return pakistanLocation
}

// Calendar computes day boundaries in a single timezone against an injectable clock.
type Calendar struct {
	loc *time.Location
	now func() time.Time
}

// NewCalendar creates a calendar. Nil arguments default to Pakistan time and time.Now.
func NewCalendar(loc *time.Location, now func() time.Time) *Calendar {
	if loc == nil {
		loc = PakistanLocation()
	}
	if now == nil {
		now = time.Now
	}
	return &Calendar{loc: loc, now: now}
}

var defaultCalendar = NewCalendar(nil, nil)

// Location returns the calendar's timezone.
func (c *Calendar) Location() *time.Location {
	return c.loc
}

// Now returns the current instant in the calendar's timezone.
func (c *Calendar) Now() time.Time {
	return c.now().In(c.loc)
}

// FormatForDisplay renders t as dd-MM-yyyy HH:mm:ss in the calendar's timezone.
func (c *Calendar) FormatForDisplay(t time.Time) string {
	return t.In(c.loc).Format(DisplayLayout)
}

func (c *Calendar) startOfDay(t time.Time) time.Time {
	local := t.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
}

func (c *Calendar) endOfDay(t time.Time) time.Time {
	return c.startOfDay(t).AddDate(0, 0, 1).Add(-time.Millisecond)
}

// DayRange returns 00:00:00.000 through 23:59:59.999 of t's calendar day in the
// calendar's timezone, converted back to UTC for database queries.
func (c *Calendar) DayRange(t time.Time) DateRange {
	return DateRange{
		Start: c.startOfDay(t).UTC(),
		End:   c.endOfDay(t).UTC(),
	}
}

// DateRange resolves a period to a window. Custom ranges need both bounds and are not
// checked for ordering.
func (c *Calendar) DateRange(period Period, customStart, customEnd *time.Time) (DateRange, error) {
	today := c.Now()

	switch period {
	case PeriodToday:
		return c.DayRange(today), nil
	case PeriodYesterday:
		return c.DayRange(today.AddDate(0, 0, -1)), nil
	case PeriodWeek:
		return DateRange{
			Start: c.startOfDay(today.AddDate(0, 0, -6)).UTC(),
			End:   c.endOfDay(today).UTC(),
		}, nil
	case PeriodMonth:
		monthStart := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, c.loc)
		return DateRange{
			Start: monthStart.UTC(),
			End:   c.endOfDay(today).UTC(),
		}, nil
	case PeriodCustom:
		if customStart == nil || customEnd == nil {
			return DateRange{}, fmt.Errorf("%w: custom date range requires both start and end dates", ErrInvalidArgument)
		}
		return DateRange{
			Start: c.startOfDay(*customStart).UTC(),
			End:   c.endOfDay(*customEnd).UTC(),
		}, nil
	default:
		return DateRange{}, fmt.Errorf("%w: unknown period %q", ErrInvalidArgument, period)
	}
}

// ParseDate accepts either a bare date (read in the calendar's timezone) or an RFC3339 timestamp.
func (c *Calendar) ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if len(s) == len(DateLayout) {
		t, err := time.ParseInLocation(DateLayout, s, c.loc)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: invalid date %q", ErrInvalidArgument, s)
		}
		return t, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: invalid timestamp %q", ErrInvalidArgument, s)
	}
	return t, nil
}

// CurrentPakistanDate returns the current time in Pakistan.
func CurrentPakistanDate() time.Time {
	return defaultCalendar.Now()
}

// FormatPakistanDateTimeForDisplay formats t as dd-MM-yyyy HH:mm:ss Pakistan time.
func FormatPakistanDateTimeForDisplay(t time.Time) string {
	return defaultCalendar.FormatForDisplay(t)
}

// FormatDateForDatabase formats t as a UTC ISO-8601 string with millisecond precision.
func FormatDateForDatabase(t time.Time) string {
	return t.UTC().Format(DatabaseLayout)
}

// ParseDatabaseDate parses a value produced by FormatDateForDatabase.
func ParseDatabaseDate(s string) (time.Time, error) {
	return time.Parse(time.RFC3339Nano, s)
}

// GetPakistanDayRange returns the Pakistan calendar day containing t.
func GetPakistanDayRange(t time.Time) DateRange {
	return defaultCalendar.DayRange(t)
}

// GetPakistanDateRange resolves period against the current time.
func GetPakistanDateRange(period Period, customStart, customEnd *time.Time) (DateRange, error) {
	return defaultCalendar.DateRange(period, customStart, customEnd)
}
