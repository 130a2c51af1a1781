package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTodayKey_UsesClockZoneNotHost(t *testing.T) {
	seoul := MustLoad("Asia/Seoul")

	// 16:30 UTC is already the next morning in Seoul.
	c := FixedClock{T: time.Date(2026, 3, 1, 16, 30, 0, 0, time.UTC), Loc: seoul}
	assert.Equal(t, "2026-03-02", TodayKey(c))

	// Same instant in a zone west of UTC is still March 1st.
	la := FixedClock{T: c.T, Loc: MustLoad("America/Los_Angeles")}
	assert.Equal(t, "2026-03-01", TodayKey(la))
}

func TestTodayKey_MidnightRollover(t *testing.T) {
	seoul := MustLoad("Asia/Seoul")
	before := FixedClock{T: time.Date(2026, 12, 31, 23, 59, 59, 0, seoul), Loc: seoul}
	after := FixedClock{T: before.T.Add(time.Second), Loc: seoul}

	assert.Equal(t, "2026-12-31", TodayKey(before))
	assert.Equal(t, "2027-01-01", TodayKey(after))
}

func TestDateRange(t *testing.T) {
	tests := []struct {
		name  string
		end   string
		count int
		want  []string
	}{
		{
			name:  "crosses february",
			end:   "2026-03-01",
			count: 3,
			want:  []string{"2026-02-27", "2026-02-28", "2026-03-01"},
		},
		{
			name:  "leap year february",
			end:   "2028-03-01",
			count: 2,
			want:  []string{"2028-02-29", "2028-03-01"},
		},
		{
			name:  "crosses year",
			end:   "2027-01-02",
			count: 4,
			want:  []string{"2026-12-30", "2026-12-31", "2027-01-01", "2027-01-02"},
		},
		{
			name:  "single",
			end:   "2026-06-15",
			count: 1,
			want:  []string{"2026-06-15"},
		},
		{
			name:  "zero count",
			end:   "2026-06-15",
			count: 0,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DateRange(tt.end, tt.count)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateRange_Properties(t *testing.T) {
	got, err := DateRange("2026-03-10", 14)
	require.NoError(t, err)
	require.Len(t, got, 14)
	assert.Equal(t, "2026-03-10", got[len(got)-1])
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1], got[i])
	}
}

func TestDateRange_InvalidKey(t *testing.T) {
	_, err := DateRange("2026-02-30", 3)
	require.ErrorIs(t, err, ErrInvalidDateKey)

	_, err = DateRange("not-a-date", 3)
	require.ErrorIs(t, err, ErrInvalidDateKey)
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 28, DaysInMonth(2026, time.February))
	assert.Equal(t, 29, DaysInMonth(2028, time.February))
	assert.Equal(t, 31, DaysInMonth(2026, time.December))
	assert.Len(t, MonthKeys(2026, time.April), 30)
	assert.Equal(t, "2026-04-30", MonthKeys(2026, time.April)[29])
}

func TestWeekday(t *testing.T) {
	wd, err := Weekday("2026-03-01")
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)
}

func TestAddDays(t *testing.T) {
	got, err := AddDays("2026-01-31", 1)
	require.NoError(t, err)
	assert.Equal(t, "2026-02-01", got)
}
