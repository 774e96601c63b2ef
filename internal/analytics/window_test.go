package analytics_test

import (
	"testing"
	"time"

	"github.com/limbo/vitals/internal/analytics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveWindow(t *testing.T) {
	cfg := analytics.DefaultConfig()
	endOfToday := time.Date(2025, 3, 14, 23, 59, 59, 999999000, time.UTC)
	defaultStart := time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc          string
		Selector      analytics.PeriodSelector
		ExpectedStart *time.Time
		ExpectedEnd   time.Time
	}{
		{
			Desc:          "all",
			Selector:      analytics.PeriodSelector{Period: "all"},
			ExpectedStart: nil,
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "all as days value",
			Selector:      analytics.PeriodSelector{Days: "all"},
			ExpectedStart: nil,
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "numeric days",
			Selector:      analytics.PeriodSelector{Days: "30"},
			ExpectedStart: ptr(time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC)),
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "zero days",
			Selector:      analytics.PeriodSelector{Days: "0"},
			ExpectedStart: ptr(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)),
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "century of days",
			Selector:      analytics.PeriodSelector{Days: "36600"},
			ExpectedStart: ptr(time.Date(1924, 12, 29, 0, 0, 0, 0, time.UTC)),
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "huge day count reads as all time",
			Selector:      analytics.PeriodSelector{Days: "3000000"},
			ExpectedStart: nil,
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "day count near int32 max reads as all time",
			Selector:      analytics.PeriodSelector{Days: "999999999"},
			ExpectedStart: nil,
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "explicit range",
			Selector:      analytics.PeriodSelector{StartDate: "2025-01-01", EndDate: "2025-01-31"},
			ExpectedStart: ptr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
			ExpectedEnd:   time.Date(2025, 1, 31, 23, 59, 59, 999999000, time.UTC),
		},
		{
			Desc:          "today",
			Selector:      analytics.PeriodSelector{Period: "today"},
			ExpectedStart: ptr(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)),
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "week starts on monday",
			Selector:      analytics.PeriodSelector{Period: "week"},
			ExpectedStart: ptr(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)),
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "month",
			Selector:      analytics.PeriodSelector{Period: "Month"},
			ExpectedStart: ptr(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)),
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "empty selector",
			Selector:      analytics.PeriodSelector{},
			ExpectedStart: &defaultStart,
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "non-numeric days",
			Selector:      analytics.PeriodSelector{Days: "abc"},
			ExpectedStart: &defaultStart,
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "negative days",
			Selector:      analytics.PeriodSelector{Days: "-5"},
			ExpectedStart: &defaultStart,
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "unknown period",
			Selector:      analytics.PeriodSelector{Period: "fortnight", Days: "7"},
			ExpectedStart: &defaultStart,
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "unparsable date",
			Selector:      analytics.PeriodSelector{StartDate: "2025-13-01", EndDate: "2025-01-31"},
			ExpectedStart: &defaultStart,
			ExpectedEnd:   endOfToday,
		},
		{
			Desc:          "reversed range",
			Selector:      analytics.PeriodSelector{StartDate: "2025-02-01", EndDate: "2025-01-01"},
			ExpectedStart: &defaultStart,
			ExpectedEnd:   endOfToday,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			w := analytics.ResolveWindow(tc.Selector, now, cfg)
			if tc.ExpectedStart == nil {
				assert.Nil(t, w.Start)
			} else {
				require.NotNil(t, w.Start)
				assert.True(t, tc.ExpectedStart.Equal(*w.Start), "start %s", w.Start)
			}
			assert.True(t, tc.ExpectedEnd.Equal(w.End), "end %s", w.End)
		})
	}
}

func TestWindowContainsIsInclusive(t *testing.T) {
	w := analytics.ResolveWindow(analytics.PeriodSelector{StartDate: "2025-01-01", EndDate: "2025-01-01"}, now, analytics.DefaultConfig())
	assert.True(t, w.Contains(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.True(t, w.Contains(time.Date(2025, 1, 1, 23, 59, 59, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC)))
	assert.False(t, w.Contains(time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)))
}

func ptr[T any](v T) *T {
	return &v
}
