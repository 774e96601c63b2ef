package analytics

type Achievement struct {
	ID          string `json:"id"`
	Icon        string `json:"icon"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// AchievementRule unlocks its badge when Unlocked reports true. Rules never
// suppress one another.
type AchievementRule struct {
	Achievement
	Unlocked func(m *Metrics) bool
}

func DefaultAchievementRules() []AchievementRule {
	return []AchievementRule{
		{
			Achievement: Achievement{ID: "streak_7", Icon: "fire", Title: "Week Warrior", Description: "Logged food 7 days in a row"},
			Unlocked:    longestStreakAtLeast(7),
		},
		{
			Achievement: Achievement{ID: "streak_30", Icon: "flame", Title: "Monthly Master", Description: "Logged food 30 days in a row"},
			Unlocked:    longestStreakAtLeast(30),
		},
		{
			Achievement: Achievement{ID: "weight_loss_5", Icon: "medal", Title: "First Five", Description: "Lost 5 kg"},
			Unlocked:    weightLostAtLeast(5),
		},
		{
			Achievement: Achievement{ID: "weight_loss_10", Icon: "trophy", Title: "Double Digits", Description: "Lost 10 kg"},
			Unlocked:    weightLostAtLeast(10),
		},
		{
			Achievement: Achievement{ID: "steady_eater", Icon: "target", Title: "Steady Eater", Description: "Calorie consistency score of 80 or more"},
			Unlocked: func(m *Metrics) bool {
				c, ok := m.Consistency.Get()
				return ok && c.Score >= 80
			},
		},
		{
			Achievement: Achievement{ID: "protein_pro", Icon: "muscle", Title: "Protein Pro", Description: "Averaged 1.6 g protein per kg"},
			Unlocked: func(m *Metrics) bool {
				macros, ok := m.Macros.Get()
				if !ok {
					return false
				}
				perKg, ok := macros.ProteinPerKg.Get()
				return ok && perKg >= 1.6
			},
		},
		{
			Achievement: Achievement{ID: "days_30", Icon: "calendar", Title: "Committed", Description: "Logged food on 30 days"},
			Unlocked:    totalDaysAtLeast(30),
		},
		{
			Achievement: Achievement{ID: "days_100", Icon: "star", Title: "Centurion", Description: "Logged food on 100 days"},
			Unlocked:    totalDaysAtLeast(100),
		},
		{
			Achievement: Achievement{ID: "dedicated", Icon: "check", Title: "Dedicated", Description: "Logging consistency rate of 80% or more"},
			Unlocked: func(m *Metrics) bool {
				s, ok := m.Streaks.Get()
				return ok && s.ConsistencyRate >= 80
			},
		},
		{
			Achievement: Achievement{ID: "nutrition_a", Icon: "apple", Title: "Top Of The Class", Description: "Nutrition score of 85 or more"},
			Unlocked: func(m *Metrics) bool {
				s, ok := m.Score.Get()
				return ok && s.Total >= 85
			},
		},
	}
}

func longestStreakAtLeast(n int) func(m *Metrics) bool {
	return func(m *Metrics) bool {
		s, ok := m.Streaks.Get()
		return ok && s.LongestStreak >= n
	}
}

func totalDaysAtLeast(n int) func(m *Metrics) bool {
	return func(m *Metrics) bool {
		s, ok := m.Streaks.Get()
		return ok && s.TotalDays >= n
	}
}

func weightLostAtLeast(kg float64) func(m *Metrics) bool {
	return func(m *Metrics) bool {
		w, ok := m.Weight.Get()
		return ok && w.TotalChange <= -kg
	}
}

func EvaluateAchievements(m *Metrics, rules []AchievementRule) []Achievement {
	out := make([]Achievement, 0)
	for _, r := range rules {
		if r.Unlocked(m) {
			out = append(out, r.Achievement)
		}
	}
	return out
}
