package analytics

import "fmt"

type InsightType string

const (
	InsightPositive InsightType = "positive"
	InsightWarning  InsightType = "warning"
	InsightInfo     InsightType = "info"
	InsightTip      InsightType = "tip"
)

type Insight struct {
	Type           InsightType `json:"type"`
	Icon           string      `json:"icon"`
	Title          string      `json:"title"`
	Description    string      `json:"description"`
	Recommendation string      `json:"recommendation"`
}

// Metrics is the bundle insight and achievement rules evaluate against.
type Metrics struct {
	Config       Config
	Days         []DailyAggregate
	Weights      []WeightPoint
	Streaks      Optional[Streaks]
	Weight       Optional[WeightAnalysis]
	Pace         Optional[WeightPace]
	Macros       Optional[MacroAnalysis]
	Consistency  Optional[CalorieConsistency]
	Score        Optional[NutritionScore]
	DayOfWeek    Optional[DayOfWeekStats]
	MealTiming   Optional[MealTiming]
	Budget       Optional[CalorieBudget]
	Distribution Optional[[]DistributionBin]
}

// InsightRule produces zero or more insights. Rules are independent of each other.
type InsightRule struct {
	Name     string
	Evaluate func(m *Metrics) []Insight
}

func DefaultInsightRules() []InsightRule {
	return []InsightRule{
		{Name: "weight_nutrition_correlation", Evaluate: correlationInsights},
		{Name: "weekend_overeating", Evaluate: weekendInsight},
		{Name: "calorie_variability", Evaluate: variabilityInsight},
		{Name: "protein_per_kg", Evaluate: proteinInsight},
		{Name: "logging_streak", Evaluate: streakInsight},
		{Name: "weight_loss_milestone", Evaluate: weightLossInsight},
		{Name: "late_night_eating", Evaluate: lateNightInsight},
		{Name: "high_calorie_days", Evaluate: highCalorieDaysInsight},
	}
}

func GenerateInsights(m *Metrics, rules []InsightRule) []Insight {
	out := make([]Insight, 0)
	for _, r := range rules {
		out = append(out, r.Evaluate(m)...)
	}
	return out
}

const weekendGapThreshold = 200

func weekendInsight(m *Metrics) []Insight {
	dow, ok := m.DayOfWeek.Get()
	if !ok {
		return nil
	}
	gap, ok := dow.WeekendGap.Get()
	if !ok || gap <= weekendGapThreshold {
		return nil
	}
	return []Insight{{
		Type:           InsightWarning,
		Icon:           "calendar",
		Title:          "Weekend overeating",
		Description:    fmt.Sprintf("You eat %.0f kcal more per day on weekends than on weekdays.", gap),
		Recommendation: "Plan weekend meals ahead and keep portions close to your weekday routine.",
	}}
}

func variabilityInsight(m *Metrics) []Insight {
	c, ok := m.Consistency.Get()
	if !ok || c.Rating != RatingVariable {
		return nil
	}
	return []Insight{{
		Type:           InsightWarning,
		Icon:           "chart",
		Title:          "Irregular calorie intake",
		Description:    fmt.Sprintf("Your daily calories vary by %.1f%% around an average of %.0f kcal.", c.CV, c.Mean),
		Recommendation: "Aim for similar intake every day; steady intake makes weight trends easier to read.",
	}}
}

const (
	lowProteinPerKg  = 0.8
	highProteinPerKg = 1.6
)

func proteinInsight(m *Metrics) []Insight {
	macros, ok := m.Macros.Get()
	if !ok {
		return nil
	}
	perKg, ok := macros.ProteinPerKg.Get()
	if !ok {
		return nil
	}
	switch {
	case perKg < lowProteinPerKg:
		return []Insight{{
			Type:           InsightWarning,
			Icon:           "egg",
			Title:          "Low protein intake",
			Description:    fmt.Sprintf("You average %.2f g of protein per kg of body weight.", perKg),
			Recommendation: fmt.Sprintf("Increase protein to at least %.1f g/kg to protect lean mass.", lowProteinPerKg),
		}}
	case perKg >= highProteinPerKg:
		return []Insight{{
			Type:           InsightPositive,
			Icon:           "muscle",
			Title:          "Great protein intake",
			Description:    fmt.Sprintf("You average %.2f g of protein per kg of body weight.", perKg),
			Recommendation: "Keep it up; this level supports muscle retention and recovery.",
		}}
	}
	return nil
}

const activeStreakThreshold = 7

func streakInsight(m *Metrics) []Insight {
	s, ok := m.Streaks.Get()
	if !ok || s.CurrentStreak < activeStreakThreshold {
		return nil
	}
	return []Insight{{
		Type:           InsightPositive,
		Icon:           "fire",
		Title:          "Logging streak",
		Description:    fmt.Sprintf("You have logged food %d days in a row.", s.CurrentStreak),
		Recommendation: "Consistent logging is the strongest predictor of progress. Keep the streak alive.",
	}}
}

const weightLossMilestone = -5

func weightLossInsight(m *Metrics) []Insight {
	w, ok := m.Weight.Get()
	if !ok || w.TotalChange >= weightLossMilestone {
		return nil
	}
	return []Insight{{
		Type:           InsightPositive,
		Icon:           "trophy",
		Title:          "Weight loss milestone",
		Description:    fmt.Sprintf("You have lost %.1f kg in this period.", -w.TotalChange),
		Recommendation: "Re-check your calorie target; needs drop as body weight goes down.",
	}}
}

const lateNightThreshold = 15

func lateNightInsight(m *Metrics) []Insight {
	mt, ok := m.MealTiming.Get()
	if !ok {
		return nil
	}
	night, ok := mt.Period(MealNight)
	if !ok || night.Percent <= lateNightThreshold {
		return nil
	}
	return []Insight{{
		Type:           InsightTip,
		Icon:           "moon",
		Title:          "Late-night eating",
		Description:    fmt.Sprintf("%.1f%% of your calories are eaten between 22:00 and 05:00.", night.Percent),
		Recommendation: "Move some of those calories earlier in the day.",
	}}
}

const highCalorieShareThreshold = 20

// highCalorieDaysInsight looks at the share of days in the top distribution bin.
func highCalorieDaysInsight(m *Metrics) []Insight {
	bins, ok := m.Distribution.Get()
	if !ok || len(bins) == 0 {
		return nil
	}
	top := bins[len(bins)-1]
	if top.Percent <= highCalorieShareThreshold {
		return nil
	}
	return []Insight{{
		Type:           InsightWarning,
		Icon:           "alert",
		Title:          "Frequent high-calorie days",
		Description:    fmt.Sprintf("%.1f%% of logged days reached %.0f kcal or more.", top.Percent, top.Min),
		Recommendation: "Identify what drives those days and prepare lighter alternatives.",
	}}
}
