package analytics_test

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/vitals/internal/analytics"
	"github.com/limbo/vitals/pkg/entity"
	"github.com/shopspring/decimal"
)

// Friday, so the current week started on 2025-03-10.
var now = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func dayAt(daysAgo, hour int) time.Time {
	d := now.AddDate(0, 0, -daysAgo)
	return time.Date(d.Year(), d.Month(), d.Day(), hour, 0, 0, 0, time.UTC)
}

func food(at time.Time, cal, protein, carbs, fat float64) entity.NutritionEntry {
	return entity.NutritionEntry{
		ID:          uuid.New(),
		ProductName: "test_food",
		Calories:    decimal.NewFromFloat(cal),
		ProteinG:    decimal.NewFromFloat(protein),
		CarbsG:      decimal.NewFromFloat(carbs),
		FatG:        decimal.NewFromFloat(fat),
		ConsumedAt:  at,
	}
}

func weighIn(at time.Time, kg float64) entity.WeightMeasurement {
	return entity.WeightMeasurement{
		ID:         uuid.New(),
		WeightKg:   decimal.NewFromFloat(kg),
		RecordedAt: at,
	}
}

func series(at []time.Time, kgs ...float64) []analytics.WeightPoint {
	out := make([]analytics.WeightPoint, len(kgs))
	for i, kg := range kgs {
		out[i] = analytics.WeightPoint{Weight: kg, RecordedAt: at[i]}
	}
	return out
}

// dailySeries builds one aggregate per value, on consecutive days ending today.
func dailySeries(calories ...float64) []analytics.DailyAggregate {
	out := make([]analytics.DailyAggregate, len(calories))
	for i, cal := range calories {
		out[i] = analytics.DailyAggregate{
			Day:           dayAt(len(calories)-1-i, 0),
			TotalCalories: decimal.NewFromFloat(cal),
			TotalProtein:  decimal.NewFromInt(100),
			TotalCarbs:    decimal.NewFromInt(250),
			TotalFat:      decimal.NewFromInt(70),
			Entries:       1,
		}
	}
	return out
}

func allTime() analytics.Window {
	return analytics.Window{End: now.AddDate(1, 0, 0)}
}
