package analytics

import (
	"fmt"
	"math"
)

const (
	minCorrelationWeights = 3
	minCorrelationDays    = 7
	minClassifiedPeriods  = 3
	periodChangeThreshold = 0.1
	fatDifferenceGrams    = 10
)

// weightPeriod holds nutrition averages for the days between two consecutive
// weight measurements, both ends inclusive.
type weightPeriod struct {
	change      float64
	avgCalories float64
	avgProtein  float64
	avgCarbs    float64
	avgFat      float64
}

func buildWeightPeriods(days []DailyAggregate, series []WeightPoint, cfg Config) []weightPeriod {
	loc := cfg.Location()
	out := make([]weightPeriod, 0, len(series))
	for i := 1; i < len(series); i++ {
		prev, curr := series[i-1], series[i]
		from, to := dayNumber(prev.RecordedAt, loc), dayNumber(curr.RecordedAt, loc)
		var cal, protein, carbs, fat []float64
		for _, d := range days {
			n := dayNumber(d.Day, loc)
			if n < from || n > to {
				continue
			}
			cal = append(cal, d.Calories())
			protein = append(protein, d.Protein())
			carbs = append(carbs, d.Carbs())
			fat = append(fat, d.Fat())
		}
		if len(cal) == 0 {
			continue
		}
		out = append(out, weightPeriod{
			change:      curr.Weight - prev.Weight,
			avgCalories: mean(cal),
			avgProtein:  mean(protein),
			avgCarbs:    mean(carbs),
			avgFat:      mean(fat),
		})
	}
	return out
}

func meanOf(periods []weightPeriod, field func(weightPeriod) float64) float64 {
	values := make([]float64, len(periods))
	for i, p := range periods {
		values[i] = field(p)
	}
	return mean(values)
}

// correlationInsights compares nutrition during weight-loss periods with
// weight-gain periods. Emission order is calories, protein, carbs, fat.
func correlationInsights(m *Metrics) []Insight {
	if len(m.Weights) < minCorrelationWeights || len(m.Days) < minCorrelationDays {
		return nil
	}
	var loss, gain []weightPeriod
	for _, p := range buildWeightPeriods(m.Days, m.Weights, m.Config) {
		switch {
		case p.change < -periodChangeThreshold:
			loss = append(loss, p)
		case p.change > periodChangeThreshold:
			gain = append(gain, p)
		}
	}
	classified := append(append([]weightPeriod{}, loss...), gain...)
	if len(classified) < minClassifiedPeriods {
		return nil
	}

	calories := func(p weightPeriod) float64 { return p.avgCalories }
	protein := func(p weightPeriod) float64 { return p.avgProtein }
	carbs := func(p weightPeriod) float64 { return p.avgCarbs }
	fat := func(p weightPeriod) float64 { return p.avgFat }

	out := make([]Insight, 0, 4)
	both := len(loss) > 0 && len(gain) > 0

	if both {
		lossCal, gainCal := meanOf(loss, calories), meanOf(gain, calories)
		if lossCal < gainCal {
			out = append(out, Insight{
				Type:  InsightInfo,
				Icon:  "scale",
				Title: "Calories drive your weight",
				Description: fmt.Sprintf("You lost weight when averaging %.0f kcal/day and gained when averaging %.0f kcal/day.",
					lossCal, gainCal),
				Recommendation: fmt.Sprintf("Target around %.0f kcal/day to keep losing weight.", lossCal),
			})
		}
	}

	if len(loss) > 0 {
		lossProtein, overall := meanOf(loss, protein), meanOf(classified, protein)
		if overall > 0 && lossProtein >= overall*1.1 {
			out = append(out, Insight{
				Type:  InsightInfo,
				Icon:  "egg",
				Title: "Protein helps your weight loss",
				Description: fmt.Sprintf("During weight-loss periods you averaged %.0f g protein/day versus %.0f g overall.",
					lossProtein, overall),
				Recommendation: fmt.Sprintf("Keep protein near %.0f g/day.", lossProtein),
			})
		}
	}

	if both {
		lossCarbs, gainCarbs := meanOf(loss, carbs), meanOf(gain, carbs)
		if lossCarbs < gainCarbs*0.9 {
			out = append(out, Insight{
				Type:  InsightInfo,
				Icon:  "bread",
				Title: "Lower carbs during weight loss",
				Description: fmt.Sprintf("You averaged %.0f g carbs/day while losing and %.0f g while gaining.",
					lossCarbs, gainCarbs),
				Recommendation: fmt.Sprintf("Keeping carbs around %.0f g/day has worked for you.", lossCarbs),
			})
		}

		lossFat, gainFat := meanOf(loss, fat), meanOf(gain, fat)
		if math.Abs(lossFat-gainFat) > fatDifferenceGrams {
			direction := "lower"
			if lossFat > gainFat {
				direction = "higher"
			}
			out = append(out, Insight{
				Type:  InsightInfo,
				Icon:  "avocado",
				Title: "Fat intake differs with weight trend",
				Description: fmt.Sprintf("Fat intake was %s while losing (%.0f g/day) than while gaining (%.0f g/day).",
					direction, lossFat, gainFat),
				Recommendation: fmt.Sprintf("Aim for roughly %.0f g fat/day.", lossFat),
			})
		}
	}
	return out
}
