package clock

import (
	"fmt"
	"strings"
	"time"

	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

// ParseNatural resolves a date expression to a key in the clock's zone.
// Supports:
//   - literal keys: 2026-03-01
//   - today, yesterday, tomorrow
//   - phrases understood by when: "last friday", "3 days ago", "march 2"
func ParseNatural(expr string, c Clock) (string, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" || strings.EqualFold(expr, "today") {
		return TodayKey(c), nil
	}

	if t, err := ParseKey(expr); err == nil {
		return FormatKey(t), nil
	}

	// Other common literal layouts
	for _, layout := range []string{"2006/01/02", "20060102"} {
		if t, err := time.ParseInLocation(layout, expr, time.UTC); err == nil {
			return FormatKey(t), nil
		}
	}

	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)

	result, err := w.Parse(expr, c.Now().In(c.Location()))
	if err != nil {
		return "", fmt.Errorf("parse date %q: %w", expr, err)
	}
	if result == nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidDateKey, expr)
	}
	return KeyOf(result.Time, c.Location()), nil
}
