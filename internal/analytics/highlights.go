package analytics

import "time"

type DayHighlight struct {
	Day      time.Time `json:"day"`
	Calories float64   `json:"calories"`
	Protein  float64   `json:"protein"`
}

type BestWorstDays struct {
	LowestCalorie  DayHighlight `json:"lowest_calorie"`
	HighestCalorie DayHighlight `json:"highest_calorie"`
	HighestProtein DayHighlight `json:"highest_protein"`
	LowestProtein  DayHighlight `json:"lowest_protein"`
}

// FindBestWorstDays ignores days under floor kcal as incompletely logged.
// Ties keep the earliest day.
func FindBestWorstDays(days []DailyAggregate, floor float64) Optional[BestWorstDays] {
	valid := make([]DayHighlight, 0, len(days))
	for _, d := range days {
		if d.Calories() < floor {
			continue
		}
		valid = append(valid, DayHighlight{Day: d.Day, Calories: d.Calories(), Protein: d.Protein()})
	}
	if len(valid) == 0 {
		return None[BestWorstDays]()
	}
	out := BestWorstDays{
		LowestCalorie:  valid[0],
		HighestCalorie: valid[0],
		HighestProtein: valid[0],
		LowestProtein:  valid[0],
	}
	for _, h := range valid[1:] {
		if h.Calories < out.LowestCalorie.Calories {
			out.LowestCalorie = h
		}
		if h.Calories > out.HighestCalorie.Calories {
			out.HighestCalorie = h
		}
		if h.Protein > out.HighestProtein.Protein {
			out.HighestProtein = h
		}
		if h.Protein < out.LowestProtein.Protein {
			out.LowestProtein = h
		}
	}
	return Some(out)
}
