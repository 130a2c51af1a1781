package clock

import (
	"fmt"
	"time"

	// Embedded zone database so the reference zone resolves on hosts without tzdata.
	_ "time/tzdata"
)

// DefaultZone is the reference timezone for calendar-day boundaries.
const DefaultZone = "Asia/Seoul"

// Clock abstracts time and the reference zone to keep date keys deterministic in tests.
type Clock interface {
	Now() time.Time
	Location() *time.Location
}

// SystemClock reads the wall clock and reports it in a fixed named zone.
type SystemClock struct {
	loc *time.Location
}

// NewSystemClock returns a wall clock anchored to the named IANA zone.
func NewSystemClock(zone string) (SystemClock, error) {
	if zone == "" {
		zone = DefaultZone
	}
	loc, err := time.LoadLocation(zone)
	if err != nil {
		return SystemClock{}, fmt.Errorf("load timezone %q: %w", zone, err)
	}
	return SystemClock{loc: loc}, nil
}

func (c SystemClock) Now() time.Time {
	return time.Now().In(c.Location())
}

func (c SystemClock) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

// FixedClock always reports the same instant.
type FixedClock struct {
	T   time.Time
	Loc *time.Location
}

func (c FixedClock) Now() time.Time {
	return c.T.In(c.Location())
}

func (c FixedClock) Location() *time.Location {
	if c.Loc == nil {
		return time.UTC
	}
	return c.Loc
}

// MustLoad resolves a zone name and panics on failure. Intended for tests and constants.
func MustLoad(zone string) *time.Location {
	loc, err := time.LoadLocation(zone)
	if err != nil {
		panic(err)
	}
	return loc
}
