package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/vitals/internal/analytics"
	errorvalues "github.com/limbo/vitals/internal/error_values"
	"github.com/limbo/vitals/internal/service"
	"github.com/limbo/vitals/pkg/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockState int

const (
	stateSuccess mockState = iota
	stateDBError
	stateLatestError
)

var (
	userID = uuid.New()
	now    = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)
)

type periodCall struct {
	UID  uuid.UUID
	From *time.Time
	To   time.Time
}

type callLog struct {
	mu    sync.Mutex
	calls []periodCall
}

func (cl *callLog) record(uid uuid.UUID, from *time.Time, to time.Time) {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	cl.calls = append(cl.calls, periodCall{UID: uid, From: from, To: to})
}

type nutritionRepoMock struct {
	callLog
	state   mockState
	entries []entity.NutritionEntry
}

func (m *nutritionRepoMock) GetByPeriod(ctx context.Context, uid uuid.UUID, from *time.Time, to time.Time) ([]entity.NutritionEntry, error) {
	m.record(uid, from, to)
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return m.entries, nil
}

type weightsRepoMock struct {
	callLog
	state        mockState
	measurements []entity.WeightMeasurement
	latest       *entity.WeightMeasurement
	latestCalls  []time.Time
}

func (m *weightsRepoMock) GetByPeriod(ctx context.Context, uid uuid.UUID, from *time.Time, to time.Time) ([]entity.WeightMeasurement, error) {
	m.record(uid, from, to)
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return m.measurements, nil
}

func (m *weightsRepoMock) GetLatest(ctx context.Context, uid uuid.UUID, before time.Time) (*entity.WeightMeasurement, error) {
	m.latestCalls = append(m.latestCalls, before)
	if m.state == stateLatestError {
		return nil, errors.New("db error")
	}
	return m.latest, nil
}

type workoutsRepoMock struct {
	callLog
	state mockState
}

func (m *workoutsRepoMock) GetByPeriod(ctx context.Context, uid uuid.UUID, from *time.Time, to time.Time) ([]entity.WorkoutSession, error) {
	m.record(uid, from, to)
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return []entity.WorkoutSession{{ID: uuid.New(), UserID: uid, Name: "legs", Date: now.Add(-time.Hour)}}, nil
}

type runningRepoMock struct {
	callLog
	state mockState
}

func (m *runningRepoMock) GetByPeriod(ctx context.Context, uid uuid.UUID, from *time.Time, to time.Time) ([]entity.RunningSession, error) {
	m.record(uid, from, to)
	if m.state == stateDBError {
		return nil, errors.New("db error")
	}
	return []entity.RunningSession{{ID: uuid.New(), UserID: uid, Date: now.Add(-2 * time.Hour), DistanceKm: decimal.NewFromInt(5)}}, nil
}

type mocks struct {
	nutrition *nutritionRepoMock
	weights   *weightsRepoMock
	workouts  *workoutsRepoMock
	running   *runningRepoMock
}

func newService() (*service.AnalyticsService, *mocks) {
	m := &mocks{
		nutrition: &nutritionRepoMock{},
		weights:   &weightsRepoMock{},
		workouts:  &workoutsRepoMock{},
		running:   &runningRepoMock{},
	}
	for i := 0; i < 10; i++ {
		day := now.AddDate(0, 0, -i)
		m.nutrition.entries = append(m.nutrition.entries, entity.NutritionEntry{
			ID:          uuid.New(),
			UserID:      userID,
			ProductName: "rice",
			Calories:    decimal.NewFromInt(2100),
			ProteinG:    decimal.NewFromInt(130),
			CarbsG:      decimal.NewFromInt(250),
			FatG:        decimal.NewFromInt(60),
			ConsumedAt:  time.Date(day.Year(), day.Month(), day.Day(), 9, 0, 0, 0, time.UTC),
		})
	}
	m.weights.measurements = []entity.WeightMeasurement{
		{ID: uuid.New(), UserID: userID, WeightKg: decimal.NewFromInt(90), RecordedAt: now.AddDate(0, 0, -9)},
		{ID: uuid.New(), UserID: userID, WeightKg: decimal.NewFromInt(88), RecordedAt: now.AddDate(0, 0, -1)},
	}
	s := service.NewAnalyticsService(analytics.NewEngine(analytics.DefaultConfig()), service.Repositories{
		Nutrition: m.nutrition,
		Weights:   m.weights,
		Workouts:  m.workouts,
		Running:   m.running,
	}).WithClock(func() time.Time { return now })
	return s, m
}

func TestComputeAnalytics(t *testing.T) {
	s, m := newService()
	report, err := s.ComputeAnalytics(context.Background(), userID, service.PeriodRequest{Days: "30"})
	require.NoError(t, err)

	streaks, ok := report.Streaks.Get()
	require.True(t, ok)
	assert.Equal(t, 10, streaks.CurrentStreak)
	assert.Equal(t, 10, report.OverallStats.DaysLogged)
	assert.Equal(t, 1, report.OverallStats.WorkoutCount)
	assert.Equal(t, 1, report.OverallStats.RunCount)
	w, ok := report.WeightAnalysis.Get()
	require.True(t, ok)
	assert.Equal(t, -2.0, w.TotalChange)
	assert.Equal(t, 1.0, report.GoalProgress.Workouts.Current)

	// the 30 day window covers the current week, so nothing is queried twice
	require.Len(t, m.nutrition.calls, 1)
	call := m.nutrition.calls[0]
	assert.Equal(t, userID, call.UID)
	require.NotNil(t, call.From)
	assert.Equal(t, time.Date(2025, 2, 12, 0, 0, 0, 0, time.UTC), *call.From)
	assert.Len(t, m.weights.calls, 1)
	assert.Empty(t, m.weights.latestCalls)
	assert.Len(t, m.workouts.calls, 1)
	assert.Len(t, m.running.calls, 1)
}

func TestComputeAnalyticsLatestWeight(t *testing.T) {
	older := &entity.WeightMeasurement{ID: uuid.New(), UserID: userID, WeightKg: decimal.NewFromInt(80), RecordedAt: now.AddDate(0, 0, -10)}
	testCases := []struct {
		Desc          string
		Latest        *entity.WeightMeasurement
		ExpectedPerKg *float64
	}{
		{
			Desc:          "weigh-in before the window",
			Latest:        older,
			ExpectedPerKg: ptr(1.63),
		},
		{
			Desc:          "no weight on record",
			Latest:        nil,
			ExpectedPerKg: nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			s, m := newService()
			m.weights.measurements = nil
			m.weights.latest = tc.Latest

			report, err := s.ComputeAnalytics(context.Background(), userID, service.PeriodRequest{Period: "week"})
			require.NoError(t, err)
			require.Len(t, m.weights.latestCalls, 1)
			assert.Equal(t, time.Date(2025, 3, 14, 23, 59, 59, 999999000, time.UTC), m.weights.latestCalls[0])

			macros, ok := report.MacroAnalysis.Get()
			require.True(t, ok)
			perKg, ok := macros.ProteinPerKg.Get()
			if tc.ExpectedPerKg == nil {
				assert.False(t, ok)
				return
			}
			require.True(t, ok)
			assert.Equal(t, *tc.ExpectedPerKg, perKg)
			score, ok := report.NutritionScore.Get()
			require.True(t, ok)
			assert.Equal(t, 25, score.Protein.Score)
		})
	}
}

func TestComputeAnalyticsWindows(t *testing.T) {
	weekStart := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	testCases := []struct {
		Desc              string
		Req               service.PeriodRequest
		ExpectedFrom      *time.Time
		ExpectedNutrition int
	}{
		{
			Desc:              "malformed days fall back to default",
			Req:               service.PeriodRequest{Days: "abc"},
			ExpectedFrom:      ptr(time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC)),
			ExpectedNutrition: 1,
		},
		{
			Desc:              "negative days fall back to default",
			Req:               service.PeriodRequest{Days: "-3"},
			ExpectedFrom:      ptr(time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC)),
			ExpectedNutrition: 1,
		},
		{
			Desc:              "all time",
			Req:               service.PeriodRequest{Days: "ALL"},
			ExpectedFrom:      nil,
			ExpectedNutrition: 1,
		},
		{
			Desc:              "named period is case insensitive",
			Req:               service.PeriodRequest{Period: "Week"},
			ExpectedFrom:      &weekStart,
			ExpectedNutrition: 1,
		},
		{
			Desc:              "today needs a separate week query",
			Req:               service.PeriodRequest{Period: "today"},
			ExpectedFrom:      ptr(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)),
			ExpectedNutrition: 2,
		},
		{
			Desc:              "explicit range",
			Req:               service.PeriodRequest{StartDate: "2025-01-01", EndDate: "2025-01-31"},
			ExpectedFrom:      ptr(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)),
			ExpectedNutrition: 2,
		},
		{
			Desc:              "unparsable date",
			Req:               service.PeriodRequest{StartDate: "01/01/2025", EndDate: "2025-01-31"},
			ExpectedFrom:      ptr(time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC)),
			ExpectedNutrition: 1,
		},
		{
			Desc:              "unknown period",
			Req:               service.PeriodRequest{Period: "fortnight", Days: "7"},
			ExpectedFrom:      ptr(time.Date(2024, 12, 14, 0, 0, 0, 0, time.UTC)),
			ExpectedNutrition: 1,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			s, m := newService()
			_, err := s.ComputeAnalytics(context.Background(), userID, tc.Req)
			require.NoError(t, err)
			require.Len(t, m.nutrition.calls, tc.ExpectedNutrition)
			assert.Equal(t, tc.ExpectedFrom, m.weights.calls[0].From)
			if tc.ExpectedNutrition == 2 {
				// second batch covers the current week for goal progress
				var sawWeek bool
				for _, c := range m.nutrition.calls {
					if c.From != nil && c.From.Equal(weekStart) {
						sawWeek = true
					}
				}
				assert.True(t, sawWeek)
				assert.Len(t, m.weights.calls, 1)
			}
		})
	}
}

func TestComputeAnalyticsStorageErrors(t *testing.T) {
	testCases := []struct {
		Desc         string
		MockPrepFunc func(m *mocks)
	}{
		{Desc: "nutrition", MockPrepFunc: func(m *mocks) { m.nutrition.state = stateDBError }},
		{Desc: "weights", MockPrepFunc: func(m *mocks) { m.weights.state = stateDBError }},
		{Desc: "latest weight", MockPrepFunc: func(m *mocks) {
			m.weights.measurements = nil
			m.weights.state = stateLatestError
		}},
		{Desc: "workouts", MockPrepFunc: func(m *mocks) { m.workouts.state = stateDBError }},
		{Desc: "running", MockPrepFunc: func(m *mocks) { m.running.state = stateDBError }},
	}
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			s, m := newService()
			tc.MockPrepFunc(m)
			report, err := s.ComputeAnalytics(context.Background(), userID, service.PeriodRequest{})
			assert.Nil(t, report)
			assert.ErrorIs(t, err, errorvalues.ErrStorageUnavailable)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}
