package analytics

import (
	"time"

	"github.com/limbo/vitals/pkg/entity"
	"github.com/shopspring/decimal"
)

// Input is the raw record set one report is computed from. Week* fields cover
// the current Monday-start week and feed goal progress only.
type Input struct {
	Window   Window
	Now      time.Time
	Entries  []entity.NutritionEntry
	Weights  []entity.WeightMeasurement
	Workouts []entity.WorkoutSession
	Runs     []entity.RunningSession

	WeekEntries  []entity.NutritionEntry
	WeekWorkouts []entity.WorkoutSession
	WeekRuns     []entity.RunningSession

	// LatestWeight is the most recent measurement on record up to the window
	// end. It stands in for body weight when the window holds no weigh-in.
	LatestWeight *entity.WeightMeasurement
}

type OverallStats struct {
	TotalEntries     int             `json:"total_entries"`
	DaysLogged       int             `json:"days_logged"`
	TotalCalories    decimal.Decimal `json:"total_calories"`
	TotalProtein     decimal.Decimal `json:"total_protein"`
	TotalCarbs       decimal.Decimal `json:"total_carbs"`
	TotalFat         decimal.Decimal `json:"total_fat"`
	AvgDailyCalories float64         `json:"avg_daily_calories"`
	AvgDailyProtein  float64         `json:"avg_daily_protein"`
	WorkoutCount     int             `json:"workout_count"`
	RunCount         int             `json:"run_count"`
	TotalRunKm       decimal.Decimal `json:"total_run_km"`
	AvgRunKm         float64         `json:"avg_run_km"`
	WeightEntries    int             `json:"weight_entries"`
}

type Report struct {
	Window              Window                       `json:"window"`
	GeneratedAt         time.Time                    `json:"generated_at"`
	WeeklyReports       []PeriodReport               `json:"weekly_reports"`
	MonthlyReports      []PeriodReport               `json:"monthly_reports"`
	Streaks             Optional[Streaks]            `json:"streaks"`
	WeightAnalysis      Optional[WeightAnalysis]     `json:"weight_analysis"`
	WeightPace          Optional[WeightPace]         `json:"weight_pace"`
	WeightVolatility    Optional[WeightVolatility]   `json:"weight_volatility"`
	WeightProjection    Optional[WeightProjection]   `json:"weight_projection"`
	MacroAnalysis       Optional[MacroAnalysis]      `json:"macro_analysis"`
	CalorieConsistency  Optional[CalorieConsistency] `json:"calorie_consistency"`
	NutritionScore      Optional[NutritionScore]     `json:"nutrition_score"`
	DayOfWeekStats      Optional[DayOfWeekStats]     `json:"day_of_week_stats"`
	MealTiming          Optional[MealTiming]         `json:"meal_timing"`
	CalorieBudget       Optional[CalorieBudget]      `json:"calorie_budget"`
	CalorieDistribution Optional[[]DistributionBin]  `json:"calorie_distribution"`
	BestWorstDays       Optional[BestWorstDays]      `json:"best_worst_days"`
	Insights            []Insight                    `json:"insights"`
	Achievements        []Achievement                `json:"achievements"`
	OverallStats        OverallStats                 `json:"overall_stats"`
	GoalProgress        GoalProgress                 `json:"goal_progress"`
}

// Engine computes reports. It holds only configuration and rule tables, so a
// single Engine is safe for concurrent use.
type Engine struct {
	cfg              Config
	insightRules     []InsightRule
	achievementRules []AchievementRule
}

func NewEngine(cfg Config) *Engine {
	return &Engine{
		cfg:              cfg,
		insightRules:     DefaultInsightRules(),
		achievementRules: DefaultAchievementRules(),
	}
}

func (e *Engine) WithInsightRules(rules []InsightRule) *Engine {
	e.insightRules = rules
	return e
}

func (e *Engine) WithAchievementRules(rules []AchievementRule) *Engine {
	e.achievementRules = rules
	return e
}

func (e *Engine) Config() Config {
	return e.cfg
}

func (e *Engine) ResolveWindow(sel PeriodSelector, now time.Time) Window {
	return ResolveWindow(sel, now, e.cfg)
}

// WeekWindow spans the current Monday-start week up to the end of today.
func (e *Engine) WeekWindow(now time.Time) Window {
	loc := e.cfg.Location()
	start := startOfWeek(now, loc)
	return Window{Start: &start, End: endOfDay(now, loc)}
}

func (e *Engine) Compute(in Input) *Report {
	loc := e.cfg.Location()
	days := AggregateDaily(in.Entries, in.Window, loc)
	series := WeightSeries(in.Weights, in.Window)

	latestWeight := None[float64]()
	if len(series) > 0 {
		latestWeight = Some(series[len(series)-1].Weight)
	} else if in.LatestWeight != nil && !in.LatestWeight.RecordedAt.After(in.Window.End) {
		latestWeight = Some(in.LatestWeight.WeightKg.InexactFloat64())
	}

	m := &Metrics{
		Config:       e.cfg,
		Days:         days,
		Weights:      series,
		Streaks:      CalculateStreaks(LoggedDays(in.Entries, in.Window, in.Now, loc), in.Now, loc),
		Weight:       AnalyzeWeight(series),
		Pace:         CalculatePace(series, e.cfg),
		Macros:       AnalyzeMacros(days, latestWeight),
		Consistency:  CalculateConsistency(days),
		DayOfWeek:    AnalyzeDayOfWeek(days),
		MealTiming:   AnalyzeMealTiming(in.Entries, in.Window, loc),
		Budget:       CalculateBudget(days, e.cfg.CalorieTarget),
		Distribution: CalorieDistribution(days),
	}
	m.Score = ScoreNutrition(m.Macros, m.Consistency, m.Streaks, e.cfg)

	weekWindow := e.WeekWindow(in.Now)
	week := WeekActivity{
		Days:     AggregateDaily(in.WeekEntries, weekWindow, loc),
		Workouts: countWorkouts(in.WeekWorkouts, weekWindow),
		Runs:     len(runsIn(in.WeekRuns, weekWindow)),
	}

	return &Report{
		Window:              in.Window,
		GeneratedAt:         in.Now,
		WeeklyReports:       WeeklyReports(days, e.cfg.MaxRollupBuckets),
		MonthlyReports:      MonthlyReports(days, e.cfg.MaxRollupBuckets),
		Streaks:             m.Streaks,
		WeightAnalysis:      m.Weight,
		WeightPace:          m.Pace,
		WeightVolatility:    CalculateVolatility(series, e.cfg),
		WeightProjection:    ProjectWeight(series, m.Pace, e.cfg),
		MacroAnalysis:       m.Macros,
		CalorieConsistency:  m.Consistency,
		NutritionScore:      m.Score,
		DayOfWeekStats:      m.DayOfWeek,
		MealTiming:          m.MealTiming,
		CalorieBudget:       m.Budget,
		CalorieDistribution: m.Distribution,
		BestWorstDays:       FindBestWorstDays(days, e.cfg.ValidDayFloor),
		Insights:            GenerateInsights(m, e.insightRules),
		Achievements:        EvaluateAchievements(m, e.achievementRules),
		OverallStats:        overallStats(in, days, series),
		GoalProgress:        TrackGoals(week, series, e.cfg),
	}
}

func overallStats(in Input, days []DailyAggregate, series []WeightPoint) OverallStats {
	out := OverallStats{
		DaysLogged:    len(days),
		WorkoutCount:  countWorkouts(in.Workouts, in.Window),
		WeightEntries: len(series),
	}
	for _, d := range days {
		out.TotalEntries += d.Entries
		out.TotalCalories = out.TotalCalories.Add(d.TotalCalories)
		out.TotalProtein = out.TotalProtein.Add(d.TotalProtein)
		out.TotalCarbs = out.TotalCarbs.Add(d.TotalCarbs)
		out.TotalFat = out.TotalFat.Add(d.TotalFat)
	}
	if len(days) > 0 {
		n := decimal.NewFromInt(int64(len(days)))
		out.AvgDailyCalories = round(out.TotalCalories.Div(n).InexactFloat64(), 1)
		out.AvgDailyProtein = round(out.TotalProtein.Div(n).InexactFloat64(), 1)
	}
	runs := runsIn(in.Runs, in.Window)
	out.RunCount = len(runs)
	for _, r := range runs {
		out.TotalRunKm = out.TotalRunKm.Add(r.DistanceKm)
	}
	if len(runs) > 0 {
		out.AvgRunKm = round(out.TotalRunKm.Div(decimal.NewFromInt(int64(len(runs)))).InexactFloat64(), 2)
	}
	return out
}

func countWorkouts(sessions []entity.WorkoutSession, w Window) int {
	n := 0
	for _, s := range sessions {
		if w.Contains(s.Date) {
			n++
		}
	}
	return n
}

func runsIn(runs []entity.RunningSession, w Window) []entity.RunningSession {
	out := make([]entity.RunningSession, 0, len(runs))
	for _, r := range runs {
		if w.Contains(r.Date) {
			out = append(out, r)
		}
	}
	return out
}
