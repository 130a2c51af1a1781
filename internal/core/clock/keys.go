package clock

import (
	"errors"
	"fmt"
	"time"
)

// KeyLayout is the canonical date key format.
const KeyLayout = "2006-01-02"

// ErrInvalidDateKey is returned when a string is not a valid YYYY-MM-DD calendar day.
var ErrInvalidDateKey = errors.New("invalid date key")

// TodayKey returns the current calendar day in the clock's zone, not the host's.
func TodayKey(c Clock) string {
	return c.Now().In(c.Location()).Format(KeyLayout)
}

// KeyOf returns the date key of t as seen in loc.
func KeyOf(t time.Time, loc *time.Location) string {
	return t.In(loc).Format(KeyLayout)
}

// ParseKey parses a date key into midnight UTC of that calendar day.
// Key arithmetic happens in UTC so DST transitions never skip or repeat a day.
func ParseKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, key, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateKey, key)
	}
	return t, nil
}

// FormatKey formats the calendar day of t without zone conversion.
func FormatKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// AddDays shifts a date key by n calendar days.
func AddDays(key string, n int) (string, error) {
	t, err := ParseKey(key)
	if err != nil {
		return "", err
	}
	return FormatKey(t.AddDate(0, 0, n)), nil
}

// DateRange returns count consecutive day keys ending at endKey, oldest first.
func DateRange(endKey string, count int) ([]string, error) {
	if _, err := ParseKey(endKey); err != nil {
		return nil, err
	}
	if count <= 0 {
		return []string{}, nil
	}

	keys := make([]string, count)
	for i := range keys {
		k, err := AddDays(endKey, i-(count-1))
		if err != nil {
			return nil, err
		}
		keys[i] = k
	}
	return keys, nil
}

// DaysInMonth reports the length of a month, accounting for leap years.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthKeys returns every day key of the month in order.
func MonthKeys(year int, month time.Month) []string {
	n := DaysInMonth(year, month)
	keys := make([]string, n)
	for d := 1; d <= n; d++ {
		keys[d-1] = FormatKey(time.Date(year, month, d, 0, 0, 0, 0, time.UTC))
	}
	return keys
}

// Weekday returns the day of week for a date key.
func Weekday(key string) (time.Weekday, error) {
	t, err := ParseKey(key)
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}
