package analytics

import "github.com/shopspring/decimal"

const (
	kcalPerGramProtein = 4
	kcalPerGramCarbs   = 4
	kcalPerGramFat     = 9
)

type MacroAnalysis struct {
	DaysLogged     int               `json:"days_logged"`
	AvgCalories    float64           `json:"avg_calories"`
	AvgProtein     float64           `json:"avg_protein"`
	AvgCarbs       float64           `json:"avg_carbs"`
	AvgFat         float64           `json:"avg_fat"`
	ProteinKcal    float64           `json:"protein_kcal"`
	CarbsKcal      float64           `json:"carbs_kcal"`
	FatKcal        float64           `json:"fat_kcal"`
	ProteinPercent float64           `json:"protein_percent"`
	CarbsPercent   float64           `json:"carbs_percent"`
	FatPercent     float64           `json:"fat_percent"`
	ProteinPerKg   Optional[float64] `json:"protein_per_kg"`
}

// AnalyzeMacros reports per-day averages and each macro's share of the
// calories contributed by macros, which can differ from logged calories.
func AnalyzeMacros(days []DailyAggregate, latestWeight Optional[float64]) Optional[MacroAnalysis] {
	if len(days) == 0 {
		return None[MacroAnalysis]()
	}
	var cal, protein, carbs, fat decimal.Decimal
	for _, d := range days {
		cal = cal.Add(d.TotalCalories)
		protein = protein.Add(d.TotalProtein)
		carbs = carbs.Add(d.TotalCarbs)
		fat = fat.Add(d.TotalFat)
	}
	n := decimal.NewFromInt(int64(len(days)))
	avgProtein := protein.Div(n).InexactFloat64()

	proteinKcal := protein.Mul(decimal.NewFromInt(kcalPerGramProtein)).InexactFloat64()
	carbsKcal := carbs.Mul(decimal.NewFromInt(kcalPerGramCarbs)).InexactFloat64()
	fatKcal := fat.Mul(decimal.NewFromInt(kcalPerGramFat)).InexactFloat64()
	total := proteinKcal + carbsKcal + fatKcal

	out := MacroAnalysis{
		DaysLogged:     len(days),
		AvgCalories:    round(cal.Div(n).InexactFloat64(), 1),
		AvgProtein:     round(avgProtein, 1),
		AvgCarbs:       round(carbs.Div(n).InexactFloat64(), 1),
		AvgFat:         round(fat.Div(n).InexactFloat64(), 1),
		ProteinKcal:    round(proteinKcal, 1),
		CarbsKcal:      round(carbsKcal, 1),
		FatKcal:        round(fatKcal, 1),
		ProteinPercent: round(percent(proteinKcal, total), 1),
		CarbsPercent:   round(percent(carbsKcal, total), 1),
		FatPercent:     round(percent(fatKcal, total), 1),
		ProteinPerKg:   None[float64](),
	}
	if w, ok := latestWeight.Get(); ok && w > 0 {
		out.ProteinPerKg = Some(round(avgProtein/w, 2))
	}
	return Some(out)
}

const (
	RatingVeryConsistent = "Very Consistent"
	RatingConsistent     = "Consistent"
	RatingModerate       = "Moderate"
	RatingVariable       = "Variable"
)

// CalorieConsistency describes day-to-day calorie dispersion.
type CalorieConsistency struct {
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"std_dev"`
	CV     float64 `json:"cv"`
	Score  int     `json:"score"`
	Rating string  `json:"rating"`
}

// CalculateConsistency needs at least three logged days.
func CalculateConsistency(days []DailyAggregate) Optional[CalorieConsistency] {
	if len(days) < 3 {
		return None[CalorieConsistency]()
	}
	values := dailyCalories(days)
	m := mean(values)
	if m == 0 {
		return None[CalorieConsistency]()
	}
	sd := sampleStdDev(values)
	cv := sd / m * 100
	out := CalorieConsistency{
		Mean:   round(m, 1),
		StdDev: round(sd, 1),
		CV:     round(cv, 1),
	}
	switch {
	case cv < 10:
		out.Score, out.Rating = 95, RatingVeryConsistent
	case cv < 15:
		out.Score, out.Rating = 80, RatingConsistent
	case cv < 25:
		out.Score, out.Rating = 60, RatingModerate
	default:
		out.Score, out.Rating = 40, RatingVariable
	}
	return Some(out)
}

type SubScore struct {
	Score int    `json:"score"`
	Max   int    `json:"max"`
	Label string `json:"label"`
}

type NutritionScore struct {
	Total       int      `json:"total"`
	Grade       string   `json:"grade"`
	Protein     SubScore `json:"protein"`
	Balance     SubScore `json:"balance"`
	Consistency SubScore `json:"consistency"`
	Dedication  SubScore `json:"dedication"`
}

const subScoreMax = 25

// ScoreNutrition combines four sub-scores of up to 25 points each. A sub-score
// whose input is not computable contributes 0 with the label "Unknown".
func ScoreNutrition(macros Optional[MacroAnalysis], consistency Optional[CalorieConsistency], streaks Optional[Streaks], cfg Config) Optional[NutritionScore] {
	m, ok := macros.Get()
	if !ok {
		return None[NutritionScore]()
	}
	out := NutritionScore{
		Protein:     proteinSubScore(m.ProteinPerKg),
		Balance:     balanceSubScore(m, cfg),
		Consistency: SubScore{Max: subScoreMax, Label: "Unknown"},
		Dedication:  SubScore{Max: subScoreMax, Label: "Unknown"},
	}
	if c, ok := consistency.Get(); ok {
		out.Consistency.Score = int(round(float64(c.Score)*0.25, 0))
		out.Consistency.Label = c.Rating
	}
	if s, ok := streaks.Get(); ok {
		pts := s.ConsistencyRate * 0.25
		if pts > subScoreMax {
			pts = subScoreMax
		}
		out.Dedication.Score = int(round(pts, 0))
		out.Dedication.Label = dedicationLabel(s.ConsistencyRate)
	}
	out.Total = out.Protein.Score + out.Balance.Score + out.Consistency.Score + out.Dedication.Score
	out.Grade = Grade(out.Total)
	return Some(out)
}

func proteinSubScore(perKg Optional[float64]) SubScore {
	v, ok := perKg.Get()
	switch {
	case !ok:
		return SubScore{Score: 0, Max: subScoreMax, Label: "Unknown"}
	case v >= 1.6:
		return SubScore{Score: 25, Max: subScoreMax, Label: "Excellent"}
	case v >= 1.2:
		return SubScore{Score: 20, Max: subScoreMax, Label: "Good"}
	case v >= 0.8:
		return SubScore{Score: 15, Max: subScoreMax, Label: "Adequate"}
	default:
		return SubScore{Score: 5, Max: subScoreMax, Label: "Low"}
	}
}

func balanceSubScore(m MacroAnalysis, cfg Config) SubScore {
	score := subScoreMax
	if !cfg.ProteinBand.Contains(m.ProteinPercent) {
		score -= 8
	}
	if !cfg.CarbsBand.Contains(m.CarbsPercent) {
		score -= 8
	}
	if !cfg.FatBand.Contains(m.FatPercent) {
		score -= 8
	}
	if score < 0 {
		score = 0
	}
	label := "Balanced"
	if score < subScoreMax {
		label = "Unbalanced"
	}
	return SubScore{Score: score, Max: subScoreMax, Label: label}
}

func dedicationLabel(rate float64) string {
	switch {
	case rate >= 90:
		return "Excellent"
	case rate >= 70:
		return "Good"
	case rate >= 50:
		return "Fair"
	default:
		return "Low"
	}
}

func Grade(total int) string {
	switch {
	case total >= 85:
		return "A"
	case total >= 70:
		return "B"
	case total >= 55:
		return "C"
	case total >= 40:
		return "D"
	default:
		return "F"
	}
}

type CalorieBudget struct {
	Target        float64 `json:"target"`
	TotalDays     int     `json:"total_days"`
	DaysUnder     int     `json:"days_under"`
	DaysOver      int     `json:"days_over"`
	UnderPercent  float64 `json:"under_percent"`
	AvgOvershoot  float64 `json:"avg_overshoot"`
	AvgUndershoot float64 `json:"avg_undershoot"`
}

// CalculateBudget counts days at or below the target as under.
func CalculateBudget(days []DailyAggregate, target float64) Optional[CalorieBudget] {
	if len(days) == 0 {
		return None[CalorieBudget]()
	}
	out := CalorieBudget{Target: target, TotalDays: len(days)}
	var over, under float64
	for _, cal := range dailyCalories(days) {
		if cal <= target {
			out.DaysUnder++
			under += target - cal
		} else {
			out.DaysOver++
			over += cal - target
		}
	}
	out.UnderPercent = round(percent(float64(out.DaysUnder), float64(out.TotalDays)), 1)
	if out.DaysOver > 0 {
		out.AvgOvershoot = round(over/float64(out.DaysOver), 1)
	}
	if out.DaysUnder > 0 {
		out.AvgUndershoot = round(under/float64(out.DaysUnder), 1)
	}
	return Some(out)
}

type DistributionBin struct {
	Label   string  `json:"label"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max,omitempty"`
	Count   int     `json:"count"`
	Percent float64 `json:"percent"`
}

var distributionEdges = []struct {
	label    string
	min, max float64
}{
	{"<1500", 0, 1500},
	{"1500-2000", 1500, 2000},
	{"2000-2500", 2000, 2500},
	{"2500-3000", 2500, 3000},
	{">=3000", 3000, 0},
}

const minDistributionDays = 10

// CalorieDistribution buckets daily calories into five fixed bins. Bins are
// half-open: [min, max).
func CalorieDistribution(days []DailyAggregate) Optional[[]DistributionBin] {
	if len(days) < minDistributionDays {
		return None[[]DistributionBin]()
	}
	bins := make([]DistributionBin, len(distributionEdges))
	for i, e := range distributionEdges {
		bins[i] = DistributionBin{Label: e.label, Min: e.min, Max: e.max}
	}
	for _, cal := range dailyCalories(days) {
		idx := len(bins) - 1
		for i, e := range distributionEdges[:len(distributionEdges)-1] {
			if cal < e.max {
				idx = i
				break
			}
		}
		bins[idx].Count++
	}
	for i := range bins {
		bins[i].Percent = round(percent(float64(bins[i].Count), float64(len(days))), 1)
	}
	return Some(bins)
}

func dailyCalories(days []DailyAggregate) []float64 {
	out := make([]float64, len(days))
	for i, d := range days {
		out[i] = d.Calories()
	}
	return out
}
