package stats

import (
	"time"

	"github.com/neilberkman/zenstudy/internal/core/clock"
)

// MinBarPercent keeps empty days visible in the activity chart.
const MinBarPercent = 6

// Bar is one day in a recent-activity window.
type Bar struct {
	Date          string
	Total         int
	HeightPercent int
	IsToday       bool
}

// ActivityWindow returns one bar per day for the days ending at endKey.
// Heights are relative to RangeMax and never drop below MinBarPercent.
func (s Snapshot) ActivityWindow(endKey, todayKey string, days int) ([]Bar, error) {
	dates, err := clock.DateRange(endKey, days)
	if err != nil {
		return nil, err
	}

	max := s.RangeMax(dates)
	bars := make([]Bar, len(dates))
	for i, d := range dates {
		total := s.DayTotal(d)
		height := total * 100 / max
		if height > 100 {
			height = 100
		}
		if height < MinBarPercent {
			height = MinBarPercent
		}
		bars[i] = Bar{
			Date:          d,
			Total:         total,
			HeightPercent: height,
			IsToday:       d == todayKey,
		}
	}
	return bars, nil
}

// DayCell is one calendar day in a month grid.
type DayCell struct {
	Date   string
	Day    int
	Total  int
	Bucket int
}

// MonthGrid lays out a month Sunday-first. Leading is the number of blank
// cells before the 1st.
type MonthGrid struct {
	Year    int
	Month   time.Month
	Leading int
	Days    []DayCell
	Total   int
}

// Month builds the grid for one month.
func (s Snapshot) Month(year int, month time.Month) MonthGrid {
	keys := clock.MonthKeys(year, month)
	first, _ := clock.Weekday(keys[0])

	grid := MonthGrid{
		Year:    year,
		Month:   month,
		Leading: int(first),
		Days:    make([]DayCell, len(keys)),
	}
	for i, k := range keys {
		total := s.DayTotal(k)
		grid.Days[i] = DayCell{
			Date:   k,
			Day:    i + 1,
			Total:  total,
			Bucket: IntensityBucket(total),
		}
		grid.Total += total
	}
	return grid
}

// Year builds all twelve month grids.
func (s Snapshot) Year(year int) []MonthGrid {
	months := make([]MonthGrid, 12)
	for m := time.January; m <= time.December; m++ {
		months[m-1] = s.Month(year, m)
	}
	return months
}

// FirstYear returns the earliest year with a log, or fallback when there are none
// or fallback is earlier.
func (s Snapshot) FirstYear(fallback int) int {
	first := fallback
	for _, l := range s.Logs {
		t, err := clock.ParseKey(l.Date)
		if err != nil {
			continue
		}
		if t.Year() < first {
			first = t.Year()
		}
	}
	return first
}
