package analytics

import "math"

type GoalStatus string

const (
	GoalOnTrack    GoalStatus = "on_track"
	GoalUnder      GoalStatus = "under"
	GoalOver       GoalStatus = "over"
	GoalAchieved   GoalStatus = "achieved"
	GoalInProgress GoalStatus = "in_progress"
)

type GoalMetric struct {
	Current  float64    `json:"current"`
	Target   float64    `json:"target"`
	Progress float64    `json:"progress"`
	Status   GoalStatus `json:"status"`
}

type GoalProgress struct {
	Calories GoalMetric           `json:"calories"`
	Protein  GoalMetric           `json:"protein"`
	Workouts GoalMetric           `json:"workouts"`
	Runs     GoalMetric           `json:"runs"`
	Weight   Optional[GoalMetric] `json:"weight"`
}

// WeekActivity is what the tracker needs about the current Monday-start week.
type WeekActivity struct {
	Days     []DailyAggregate
	Workouts int
	Runs     int
}

func progress(current, target float64) float64 {
	if target <= 0 {
		return 0
	}
	return round(math.Min(100, current/target*100), 1)
}

func countGoal(current, target int) GoalMetric {
	g := GoalMetric{
		Current:  float64(current),
		Target:   float64(target),
		Progress: progress(float64(current), float64(target)),
		Status:   GoalInProgress,
	}
	if g.Progress >= 100 {
		g.Status = GoalAchieved
	}
	return g
}

// TrackGoals compares current-week averages against the configured targets.
// Weight progress runs from the first to the latest point of series.
func TrackGoals(week WeekActivity, series []WeightPoint, cfg Config) GoalProgress {
	var avgCal, avgProtein float64
	if len(week.Days) > 0 {
		avgCal = mean(dailyCalories(week.Days))
		p := make([]float64, len(week.Days))
		for i, d := range week.Days {
			p[i] = d.Protein()
		}
		avgProtein = mean(p)
	}

	out := GoalProgress{
		Calories: GoalMetric{
			Current:  round(avgCal, 1),
			Target:   cfg.CalorieTarget,
			Progress: progress(avgCal, cfg.CalorieTarget),
		},
		Protein: GoalMetric{
			Current:  round(avgProtein, 1),
			Target:   cfg.ProteinTarget,
			Progress: progress(avgProtein, cfg.ProteinTarget),
			Status:   GoalInProgress,
		},
		Workouts: countGoal(week.Workouts, cfg.WeeklyWorkoutTarget),
		Runs:     countGoal(week.Runs, cfg.WeeklyRunTarget),
		Weight:   None[GoalMetric](),
	}
	if out.Protein.Progress >= 100 {
		out.Protein.Status = GoalAchieved
	}

	ratio := 0.0
	if cfg.CalorieTarget > 0 {
		ratio = avgCal / cfg.CalorieTarget * 100
	}
	switch {
	case ratio < 90:
		out.Calories.Status = GoalUnder
	case ratio > 110:
		out.Calories.Status = GoalOver
	default:
		out.Calories.Status = GoalOnTrack
	}

	if len(series) > 0 && cfg.TargetWeight > 0 {
		start, current := series[0].Weight, series[len(series)-1].Weight
		g := GoalMetric{Current: round(current, 1), Target: cfg.TargetWeight, Status: GoalInProgress}
		total := start - cfg.TargetWeight
		switch {
		case total == 0 || (total > 0 && current <= cfg.TargetWeight) || (total < 0 && current >= cfg.TargetWeight):
			g.Progress, g.Status = 100, GoalAchieved
		default:
			g.Progress = round(math.Max(0, math.Min(100, (start-current)/total*100)), 1)
		}
		out.Weight = Some(g)
	}
	return out
}
