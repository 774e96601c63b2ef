package analytics

import (
	"sort"
	"time"

	"github.com/limbo/vitals/pkg/entity"
)

type Streaks struct {
	CurrentStreak   int       `json:"current_streak"`
	LongestStreak   int       `json:"longest_streak"`
	TotalDays       int       `json:"total_days"`
	ConsistencyRate float64   `json:"consistency_rate"`
	FirstLoggedDay  time.Time `json:"first_logged_day"`
	LastLoggedDay   time.Time `json:"last_logged_day"`
}

// LoggedDays returns the distinct calendar days, ascending, that have at
// least one visible entry in w timestamped no later than now.
func LoggedDays(entries []entity.NutritionEntry, w Window, now time.Time, loc *time.Location) []time.Time {
	seen := make(map[int64]time.Time)
	for _, e := range visibleEntries(entries, w) {
		if e.ConsumedAt.After(now) {
			continue
		}
		key := dayNumber(e.ConsumedAt, loc)
		if _, ok := seen[key]; !ok {
			seen[key] = startOfDay(e.ConsumedAt, loc)
		}
	}
	days := make([]time.Time, 0, len(seen))
	for _, d := range seen {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Before(days[j])
	})
	return days
}

// CalculateStreaks expects distinct days sorted ascending. The current streak
// is anchored at the most recent logged day, whether or not that day is today.
func CalculateStreaks(days []time.Time, today time.Time, loc *time.Location) Optional[Streaks] {
	if len(days) == 0 {
		return None[Streaks]()
	}
	nums := make([]int64, len(days))
	for i, d := range days {
		nums[i] = dayNumber(d, loc)
	}

	longest, run := 1, 1
	for i := 1; i < len(nums); i++ {
		if nums[i]-nums[i-1] == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	current := 1
	for i := len(nums) - 1; i > 0; i-- {
		if nums[i]-nums[i-1] != 1 {
			break
		}
		current++
	}

	elapsed := dayNumber(today, loc) - nums[0] + 1
	rate := 0.0
	if elapsed > 0 {
		rate = round(float64(len(nums))/float64(elapsed)*100, 1)
	}

	return Some(Streaks{
		CurrentStreak:   current,
		LongestStreak:   longest,
		TotalDays:       len(nums),
		ConsistencyRate: rate,
		FirstLoggedDay:  days[0],
		LastLoggedDay:   days[len(days)-1],
	})
}
