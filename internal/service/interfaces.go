package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/limbo/vitals/internal/analytics"
)

// PeriodRequest carries the raw period query parameters. An invalid request is
// never reported: the window falls back to its default.
type PeriodRequest struct {
	Days      string `validate:"omitempty,period_days"`
	Period    string `validate:"omitempty,oneof=all today week month"`
	StartDate string `validate:"omitempty,datetime=2006-01-02"`
	EndDate   string `validate:"omitempty,datetime=2006-01-02"`
}

type AnalyticsServiceI interface {
	// Loads the user's records for the requested period and computes the full report
	ComputeAnalytics(ctx context.Context, uid uuid.UUID, req PeriodRequest) (*analytics.Report, error)
}
