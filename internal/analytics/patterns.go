package analytics

import (
	"time"

	"github.com/limbo/vitals/pkg/entity"
)

var weekdayNames = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

type WeekdayStat struct {
	Weekday       int     `json:"weekday"`
	Name          string  `json:"name"`
	AvgCalories   float64 `json:"avg_calories"`
	TotalCalories float64 `json:"total_calories"`
	Count         int     `json:"count"`
}

type DayOfWeekStats struct {
	Days       []WeekdayStat     `json:"days"`
	Lowest     WeekdayStat       `json:"lowest"`
	Highest    WeekdayStat       `json:"highest"`
	WeekdayAvg Optional[float64] `json:"weekday_avg"`
	WeekendAvg Optional[float64] `json:"weekend_avg"`
	WeekendGap Optional[float64] `json:"weekend_gap"`
}

// AnalyzeDayOfWeek buckets daily totals by weekday, Monday=0. Weekdays with no
// logged day are left out of Days.
func AnalyzeDayOfWeek(days []DailyAggregate) Optional[DayOfWeekStats] {
	if len(days) == 0 {
		return None[DayOfWeekStats]()
	}
	var buckets [7]WeekdayStat
	var weekdayCals, weekendCals []float64
	for _, d := range days {
		wd := isoWeekday(d.Day)
		cal := d.Calories()
		buckets[wd].TotalCalories += cal
		buckets[wd].Count++
		if wd >= 5 {
			weekendCals = append(weekendCals, cal)
		} else {
			weekdayCals = append(weekdayCals, cal)
		}
	}

	out := DayOfWeekStats{
		Days:       make([]WeekdayStat, 0, 7),
		WeekdayAvg: None[float64](),
		WeekendAvg: None[float64](),
		WeekendGap: None[float64](),
	}
	for i := range buckets {
		b := buckets[i]
		if b.Count == 0 {
			continue
		}
		b.Weekday = i
		b.Name = weekdayNames[i]
		b.AvgCalories = round(b.TotalCalories/float64(b.Count), 1)
		b.TotalCalories = round(b.TotalCalories, 1)
		out.Days = append(out.Days, b)
	}
	out.Lowest, out.Highest = out.Days[0], out.Days[0]
	for _, s := range out.Days[1:] {
		if s.AvgCalories < out.Lowest.AvgCalories {
			out.Lowest = s
		}
		if s.AvgCalories > out.Highest.AvgCalories {
			out.Highest = s
		}
	}
	if len(weekdayCals) > 0 {
		out.WeekdayAvg = Some(round(mean(weekdayCals), 1))
	}
	if len(weekendCals) > 0 {
		out.WeekendAvg = Some(round(mean(weekendCals), 1))
	}
	if len(weekdayCals) > 0 && len(weekendCals) > 0 {
		out.WeekendGap = Some(round(mean(weekendCals)-mean(weekdayCals), 1))
	}
	return Some(out)
}

const (
	MealMorning   = "morning"
	MealMidday    = "midday"
	MealAfternoon = "afternoon"
	MealEvening   = "evening"
	MealNight     = "night"
)

var mealPeriodOrder = []string{MealMorning, MealMidday, MealAfternoon, MealEvening, MealNight}

// mealPeriod maps an hour of day to its period. Night wraps past midnight.
func mealPeriod(hour int) string {
	switch {
	case hour >= 5 && hour <= 10:
		return MealMorning
	case hour >= 11 && hour <= 14:
		return MealMidday
	case hour >= 15 && hour <= 17:
		return MealAfternoon
	case hour >= 18 && hour <= 21:
		return MealEvening
	default:
		return MealNight
	}
}

type MealPeriod struct {
	Name     string  `json:"name"`
	Calories float64 `json:"calories"`
	Percent  float64 `json:"percent"`
	Entries  int     `json:"entries"`
}

type MealTiming struct {
	Periods       []MealPeriod `json:"periods"`
	Peak          string       `json:"peak"`
	TotalCalories float64      `json:"total_calories"`
}

func (m MealTiming) Period(name string) (MealPeriod, bool) {
	for _, p := range m.Periods {
		if p.Name == name {
			return p, true
		}
	}
	return MealPeriod{}, false
}

// AnalyzeMealTiming works on individual entries, not daily aggregates.
func AnalyzeMealTiming(entries []entity.NutritionEntry, w Window, loc *time.Location) Optional[MealTiming] {
	index := make(map[string]int, len(mealPeriodOrder))
	periods := make([]MealPeriod, len(mealPeriodOrder))
	for i, name := range mealPeriodOrder {
		index[name] = i
		periods[i] = MealPeriod{Name: name}
	}
	total := 0.0
	for _, e := range visibleEntries(entries, w) {
		cal := e.Calories.InexactFloat64()
		p := &periods[index[mealPeriod(e.ConsumedAt.In(loc).Hour())]]
		p.Calories += cal
		p.Entries++
		total += cal
	}
	if total <= 0 {
		return None[MealTiming]()
	}
	out := MealTiming{Periods: periods, TotalCalories: round(total, 1)}
	peak := 0.0
	for i := range out.Periods {
		p := &out.Periods[i]
		if p.Calories > peak {
			peak = p.Calories
			out.Peak = p.Name
		}
		p.Percent = round(percent(p.Calories, total), 1)
		p.Calories = round(p.Calories, 1)
	}
	return Some(out)
}
