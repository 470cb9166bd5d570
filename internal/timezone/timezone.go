package timezone

import (
	"time"

	_ "time/tzdata"
)

const DefaultTimezone = "Europe/Istanbul"

// SlotLayout always renders a numeric offset, UTC included.
const SlotLayout = "2006-01-02T15:04:05-07:00"

const (
	DateLayout   = "2006-01-02"
	ClockLayout  = "15:04"
	naiveLayout  = "2006-01-02T15:04:05"
	naiveMinutes = "2006-01-02T15:04"
)

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, _ := time.LoadLocation(DefaultTimezone)
	return loc
}

func NowIn(loc *time.Location) time.Time {
	return time.Now().In(loc)
}

// DayBounds returns [00:00, 00:00+24h) of the "YYYY-MM-DD" date in loc.
func DayBounds(date string, loc *time.Location) (time.Time, time.Time, error) {
	start, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, start.Add(24 * time.Hour), nil
}

// WeekdayNumber maps t onto 1..7 where first is 1.
func WeekdayNumber(t time.Time, first time.Weekday) int {
	return (int(t.Weekday())-int(first)+7)%7 + 1
}

// ParseClock parses "HH:MM".
func ParseClock(hm string) (hour, minute int, err error) {
	t, err := time.Parse(ClockLayout, hm)
	if err != nil {
		return 0, 0, err
	}
	return t.Hour(), t.Minute(), nil
}

// At combines the calendar date of day with an "HH:MM" wall clock in loc.
func At(day time.Time, hm string, loc *time.Location) (time.Time, error) {
	h, m, err := ParseClock(hm)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), h, m, 0, 0, loc), nil
}

// ParseTimestamp accepts RFC 3339. Timestamps without an offset are read in loc.
func ParseTimestamp(s string, loc *time.Location) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	if t, err := time.ParseInLocation(naiveLayout, s, loc); err == nil {
		return t, nil
	}
	return time.ParseInLocation(naiveMinutes, s, loc)
}

func FormatSlot(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(SlotLayout)
}
