package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/limbo/vitals/pkg/entity"
)

const (
	TrendDecreasing = "decreasing"
	TrendIncreasing = "increasing"
	TrendStable     = "stable"
)

type WeightPoint struct {
	Weight     float64   `json:"weight"`
	RecordedAt time.Time `json:"recorded_at"`
}

// WeightSeries converts the measurements inside w into an ascending series.
func WeightSeries(ms []entity.WeightMeasurement, w Window) []WeightPoint {
	out := make([]WeightPoint, 0, len(ms))
	for _, m := range ms {
		if !w.Contains(m.RecordedAt) {
			continue
		}
		out = append(out, WeightPoint{Weight: m.WeightKg.InexactFloat64(), RecordedAt: m.RecordedAt})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RecordedAt.Before(out[j].RecordedAt)
	})
	return out
}

type WeightAnalysis struct {
	StartWeight  float64           `json:"start_weight"`
	EndWeight    float64           `json:"end_weight"`
	MinWeight    float64           `json:"min_weight"`
	MaxWeight    float64           `json:"max_weight"`
	AvgWeight    float64           `json:"avg_weight"`
	TotalChange  float64           `json:"total_change"`
	Measurements int               `json:"measurements"`
	Trend        string            `json:"trend"`
	StdDev       Optional[float64] `json:"std_dev"`
}

// AnalyzeWeight needs at least two points.
func AnalyzeWeight(series []WeightPoint) Optional[WeightAnalysis] {
	if len(series) < 2 {
		return None[WeightAnalysis]()
	}
	values := weights(series)
	minW, maxW := values[0], values[0]
	for _, v := range values[1:] {
		minW = math.Min(minW, v)
		maxW = math.Max(maxW, v)
	}
	first, last := values[0], values[len(values)-1]
	out := WeightAnalysis{
		StartWeight:  round(first, 1),
		EndWeight:    round(last, 1),
		MinWeight:    round(minW, 1),
		MaxWeight:    round(maxW, 1),
		AvgWeight:    round(mean(values), 1),
		TotalChange:  round(last-first, 1),
		Measurements: len(values),
		Trend:        trendDirection(values),
		StdDev:       None[float64](),
	}
	if len(values) >= 3 {
		out.StdDev = Some(round(sampleStdDev(values), 2))
	}
	return Some(out)
}

// trendDirection compares the mean of the first half with the second half.
func trendDirection(values []float64) string {
	split := len(values) / 2
	if split == 0 {
		return TrendStable
	}
	diff := mean(values[split:]) - mean(values[:split])
	switch {
	case diff < 0:
		return TrendDecreasing
	case diff > 0:
		return TrendIncreasing
	default:
		return TrendStable
	}
}

type WeightPace struct {
	Days                  int     `json:"days"`
	TotalChange           float64 `json:"total_change"`
	WeeklyRate            float64 `json:"weekly_rate"`
	MonthlyRate           float64 `json:"monthly_rate"`
	EstimatedDailyDeficit float64 `json:"estimated_daily_deficit"`
}

// CalculatePace is absent for fewer than two points or a span shorter than a day.
func CalculatePace(series []WeightPoint, cfg Config) Optional[WeightPace] {
	if len(series) < 2 {
		return None[WeightPace]()
	}
	first, last := series[0], series[len(series)-1]
	days := int(last.RecordedAt.Sub(first.RecordedAt).Hours() / 24)
	if days <= 0 {
		return None[WeightPace]()
	}
	change := last.Weight - first.Weight
	perDay := change / float64(days)
	return Some(WeightPace{
		Days:                  days,
		TotalChange:           round(change, 1),
		WeeklyRate:            round(perDay*7, 2),
		MonthlyRate:           round(perDay*30, 1),
		EstimatedDailyDeficit: math.Round(change * cfg.KcalPerKg / float64(days)),
	})
}

type WeightVolatility struct {
	AvgFluctuation          float64 `json:"avg_fluctuation"`
	MaxFluctuation          float64 `json:"max_fluctuation"`
	SignificantFluctuations int     `json:"significant_fluctuations"`
	TotalFluctuations       int     `json:"total_fluctuations"`
	StabilityScore          float64 `json:"stability_score"`
}

// CalculateVolatility needs at least five points.
func CalculateVolatility(series []WeightPoint, cfg Config) Optional[WeightVolatility] {
	if len(series) < 5 {
		return None[WeightVolatility]()
	}
	fluctuations := make([]float64, 0, len(series)-1)
	for i := 1; i < len(series); i++ {
		fluctuations = append(fluctuations, math.Abs(series[i].Weight-series[i-1].Weight))
	}
	maxF, significant := 0.0, 0
	for _, f := range fluctuations {
		maxF = math.Max(maxF, f)
		// compared at gram precision
		if round(f, 3) > cfg.SignificantFluctuation {
			significant++
		}
	}
	return Some(WeightVolatility{
		AvgFluctuation:          round(mean(fluctuations), 2),
		MaxFluctuation:          round(maxF, 2),
		SignificantFluctuations: significant,
		TotalFluctuations:       len(fluctuations),
		StabilityScore:          round(100-percent(float64(significant), float64(len(fluctuations))), 1),
	})
}

type ProjectionPoint struct {
	Weeks  int     `json:"weeks"`
	Weight float64 `json:"weight"`
}

type MilestoneETA struct {
	Target float64   `json:"target"`
	Weeks  float64   `json:"weeks"`
	Date   time.Time `json:"date"`
}

type WeightProjection struct {
	CurrentWeight float64           `json:"current_weight"`
	WeeklyRate    float64           `json:"weekly_rate"`
	Points        []ProjectionPoint `json:"points"`
	Milestones    []MilestoneETA    `json:"milestones"`
}

var projectionWeeks = []int{4, 8, 12}

// ProjectWeight extrapolates the weekly rate linearly from the last point.
// Milestones are only estimated while losing, for targets below the current
// weight that are reachable within the configured horizon.
func ProjectWeight(series []WeightPoint, pace Optional[WeightPace], cfg Config) Optional[WeightProjection] {
	p, ok := pace.Get()
	if !ok || len(series) == 0 {
		return None[WeightProjection]()
	}
	last := series[len(series)-1]
	out := WeightProjection{
		CurrentWeight: round(last.Weight, 1),
		WeeklyRate:    p.WeeklyRate,
		Points:        make([]ProjectionPoint, 0, len(projectionWeeks)),
		Milestones:    make([]MilestoneETA, 0),
	}
	for _, weeks := range projectionWeeks {
		out.Points = append(out.Points, ProjectionPoint{
			Weeks:  weeks,
			Weight: round(last.Weight+p.WeeklyRate*float64(weeks), 1),
		})
	}
	if p.WeeklyRate < 0 {
		for _, target := range cfg.MilestoneWeights {
			if target >= last.Weight {
				continue
			}
			weeks := (last.Weight - target) / -p.WeeklyRate
			if weeks > float64(cfg.ProjectionHorizonWeeks) {
				continue
			}
			out.Milestones = append(out.Milestones, MilestoneETA{
				Target: target,
				Weeks:  round(weeks, 1),
				Date:   last.RecordedAt.Add(time.Duration(weeks * 7 * 24 * float64(time.Hour))),
			})
		}
	}
	return Some(out)
}

func weights(series []WeightPoint) []float64 {
	out := make([]float64, len(series))
	for i, p := range series {
		out[i] = p.Weight
	}
	return out
}
