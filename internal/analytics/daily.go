package analytics

import (
	"sort"
	"time"

	"github.com/limbo/vitals/pkg/entity"
	"github.com/shopspring/decimal"
)

// DailyAggregate is the per-day truth most other components build on. Only
// days with at least one entry produce an aggregate.
type DailyAggregate struct {
	Day           time.Time       `json:"day"`
	TotalCalories decimal.Decimal `json:"total_calories"`
	TotalProtein  decimal.Decimal `json:"total_protein"`
	TotalCarbs    decimal.Decimal `json:"total_carbs"`
	TotalFat      decimal.Decimal `json:"total_fat"`
	Entries       int             `json:"entries"`
}

func (d DailyAggregate) Calories() float64 { return d.TotalCalories.InexactFloat64() }
func (d DailyAggregate) Protein() float64  { return d.TotalProtein.InexactFloat64() }
func (d DailyAggregate) Carbs() float64    { return d.TotalCarbs.InexactFloat64() }
func (d DailyAggregate) Fat() float64      { return d.TotalFat.InexactFloat64() }

// visibleEntries drops hidden entries and those outside w.
func visibleEntries(entries []entity.NutritionEntry, w Window) []entity.NutritionEntry {
	out := make([]entity.NutritionEntry, 0, len(entries))
	for _, e := range entries {
		if e.Hidden || !w.Contains(e.ConsumedAt) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// AggregateDaily groups entries by calendar day in loc. The result is sorted
// ascending by day.
func AggregateDaily(entries []entity.NutritionEntry, w Window, loc *time.Location) []DailyAggregate {
	byDay := make(map[int64]*DailyAggregate)
	for _, e := range visibleEntries(entries, w) {
		key := dayNumber(e.ConsumedAt, loc)
		agg, ok := byDay[key]
		if !ok {
			agg = &DailyAggregate{
				Day:           startOfDay(e.ConsumedAt, loc),
				TotalCalories: decimal.Zero,
				TotalProtein:  decimal.Zero,
				TotalCarbs:    decimal.Zero,
				TotalFat:      decimal.Zero,
			}
			byDay[key] = agg
		}
		agg.TotalCalories = agg.TotalCalories.Add(e.Calories)
		agg.TotalProtein = agg.TotalProtein.Add(e.ProteinG)
		agg.TotalCarbs = agg.TotalCarbs.Add(e.CarbsG)
		agg.TotalFat = agg.TotalFat.Add(e.FatG)
		agg.Entries++
	}

	out := make([]DailyAggregate, 0, len(byDay))
	for _, agg := range byDay {
		out = append(out, *agg)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].Day.Before(out[j].Day)
	})
	return out
}

// Descending returns a reversed copy of days.
func Descending(days []DailyAggregate) []DailyAggregate {
	out := make([]DailyAggregate, len(days))
	for i := range days {
		out[len(days)-1-i] = days[i]
	}
	return out
}
