package analytics

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PeriodReport is one week or month bucket. DaysLogged counts distinct days
// with entries, so averages are per logged day, not per calendar day.
type PeriodReport struct {
	Label         string          `json:"label"`
	Start         time.Time       `json:"start"`
	End           time.Time       `json:"end"`
	DaysLogged    int             `json:"days_logged"`
	TotalCalories decimal.Decimal `json:"total_calories"`
	TotalProtein  decimal.Decimal `json:"total_protein"`
	TotalCarbs    decimal.Decimal `json:"total_carbs"`
	TotalFat      decimal.Decimal `json:"total_fat"`
	AvgCalories   float64         `json:"avg_calories"`
	AvgProtein    float64         `json:"avg_protein"`
	AvgCarbs      float64         `json:"avg_carbs"`
	AvgFat        float64         `json:"avg_fat"`
}

type bucketFunc func(day time.Time) (start, end time.Time, label string)

// weekBucket uses Monday-start weeks labelled with the ISO week number.
func weekBucket(day time.Time) (time.Time, time.Time, string) {
	start := startOfWeek(day, day.Location())
	year, week := start.ISOWeek()
	return start, start.AddDate(0, 0, 6), fmt.Sprintf("%04d-W%02d", year, week)
}

func monthBucket(day time.Time) (time.Time, time.Time, string) {
	start := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())
	return start, start.AddDate(0, 1, -1), start.Format("2006-01")
}

// WeeklyReports rolls days up into at most limit weeks, most recent first.
func WeeklyReports(days []DailyAggregate, limit int) []PeriodReport {
	return rollup(days, weekBucket, limit)
}

// MonthlyReports rolls days up into at most limit calendar months, most recent first.
func MonthlyReports(days []DailyAggregate, limit int) []PeriodReport {
	return rollup(days, monthBucket, limit)
}

func rollup(days []DailyAggregate, bucket bucketFunc, limit int) []PeriodReport {
	reports := make([]PeriodReport, 0)
	index := make(map[string]int)
	for _, d := range days {
		start, end, label := bucket(d.Day)
		i, ok := index[label]
		if !ok {
			reports = append(reports, PeriodReport{
				Label: label,
				Start: start,
				End:   end,
			})
			i = len(reports) - 1
			index[label] = i
		}
		r := &reports[i]
		r.DaysLogged++
		r.TotalCalories = r.TotalCalories.Add(d.TotalCalories)
		r.TotalProtein = r.TotalProtein.Add(d.TotalProtein)
		r.TotalCarbs = r.TotalCarbs.Add(d.TotalCarbs)
		r.TotalFat = r.TotalFat.Add(d.TotalFat)
	}

	out := make([]PeriodReport, 0, len(reports))
	for i := len(reports) - 1; i >= 0; i-- {
		r := reports[i]
		n := decimal.NewFromInt(int64(r.DaysLogged))
		r.AvgCalories = round(r.TotalCalories.Div(n).InexactFloat64(), 1)
		r.AvgProtein = round(r.TotalProtein.Div(n).InexactFloat64(), 1)
		r.AvgCarbs = round(r.TotalCarbs.Div(n).InexactFloat64(), 1)
		r.AvgFat = round(r.TotalFat.Div(n).InexactFloat64(), 1)
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
