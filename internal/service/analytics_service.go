package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/limbo/vitals/internal/analytics"
	errorvalues "github.com/limbo/vitals/internal/error_values"
	"github.com/limbo/vitals/internal/repository"
	"golang.org/x/sync/errgroup"
)

type Repositories struct {
	Nutrition repository.NutritionRepositoryI
	Weights   repository.WeightsRepositoryI
	Workouts  repository.WorkoutsRepositoryI
	Running   repository.RunningRepositoryI
}

type AnalyticsService struct {
	engine *analytics.Engine
	repos  Repositories
	now    func() time.Time
}

func NewAnalyticsService(engine *analytics.Engine, repos Repositories) *AnalyticsService {
	if engine == nil {
		log.Fatal("provided nil analytics engine")
	}
	if repos.Nutrition == nil || repos.Weights == nil || repos.Workouts == nil || repos.Running == nil {
		log.Fatal("provided nil repository")
	}
	return &AnalyticsService{
		engine: engine,
		repos:  repos,
		now:    time.Now,
	}
}

// WithClock replaces the time source used to resolve windows.
func (as *AnalyticsService) WithClock(now func() time.Time) *AnalyticsService {
	as.now = now
	return as
}

func (as *AnalyticsService) ComputeAnalytics(ctx context.Context, uid uuid.UUID, req PeriodRequest) (*analytics.Report, error) {
	now := as.now()
	window := as.engine.ResolveWindow(sanitize(req), now)
	week := as.engine.WeekWindow(now)

	in := analytics.Input{Window: window, Now: now}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		in.Entries, err = as.repos.Nutrition.GetByPeriod(gctx, uid, window.Start, window.End)
		return err
	})
	g.Go(func() (err error) {
		in.Weights, err = as.repos.Weights.GetByPeriod(gctx, uid, window.Start, window.End)
		return err
	})
	g.Go(func() (err error) {
		in.Workouts, err = as.repos.Workouts.GetByPeriod(gctx, uid, window.Start, window.End)
		return err
	})
	g.Go(func() (err error) {
		in.Runs, err = as.repos.Running.GetByPeriod(gctx, uid, window.Start, window.End)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: repository error: %v", errorvalues.ErrStorageUnavailable, err)
	}

	if len(in.Weights) == 0 {
		latest, err := as.repos.Weights.GetLatest(ctx, uid, window.End)
		if err != nil {
			return nil, fmt.Errorf("%w: repository error: %v", errorvalues.ErrStorageUnavailable, err)
		}
		in.LatestWeight = latest
	}

	if covers(window, week) {
		in.WeekEntries, in.WeekWorkouts, in.WeekRuns = in.Entries, in.Workouts, in.Runs
	} else {
		g, gctx = errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			in.WeekEntries, err = as.repos.Nutrition.GetByPeriod(gctx, uid, week.Start, week.End)
			return err
		})
		g.Go(func() (err error) {
			in.WeekWorkouts, err = as.repos.Workouts.GetByPeriod(gctx, uid, week.Start, week.End)
			return err
		})
		g.Go(func() (err error) {
			in.WeekRuns, err = as.repos.Running.GetByPeriod(gctx, uid, week.Start, week.End)
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, fmt.Errorf("%w: repository error: %v", errorvalues.ErrStorageUnavailable, err)
		}
	}
	return as.engine.Compute(in), nil
}

// covers reports whether outer contains every instant of inner.
func covers(outer, inner analytics.Window) bool {
	if inner.Start == nil {
		return outer.Start == nil && !outer.End.Before(inner.End)
	}
	return outer.Contains(*inner.Start) && !outer.End.Before(inner.End)
}

// sanitize turns a request that fails validation into the empty selector,
// which resolves to the default window.
func sanitize(req PeriodRequest) analytics.PeriodSelector {
	sel := analytics.PeriodSelector{
		Days:      strings.TrimSpace(req.Days),
		Period:    strings.ToLower(strings.TrimSpace(req.Period)),
		StartDate: strings.TrimSpace(req.StartDate),
		EndDate:   strings.TrimSpace(req.EndDate),
	}
	InitValidator()
	err := validate.Struct(PeriodRequest(sel))
	if err == nil {
		return sel
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			slog.Debug(errorvalues.ErrInvalidPeriod.Error(), slog.String("field", fe.StructField()), slog.String("rule", fe.Tag()))
		}
	}
	return analytics.PeriodSelector{}
}
