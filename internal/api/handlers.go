package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/limbo/vitals/internal/analytics"
	errorvalues "github.com/limbo/vitals/internal/error_values"
	"github.com/limbo/vitals/internal/service"
	"github.com/limbo/vitals/pkg/httputil"
)

// SummaryResponse is the compact subset of the report used by dashboards.
type SummaryResponse struct {
	Window         analytics.Window                             `json:"window"`
	OverallStats   analytics.OverallStats                       `json:"overall_stats"`
	Streaks        analytics.Optional[analytics.Streaks]        `json:"streaks"`
	NutritionScore analytics.Optional[analytics.NutritionScore] `json:"nutrition_score"`
	GoalProgress   analytics.GoalProgress                       `json:"goal_progress"`
}

func periodRequestFromQuery(r *http.Request) service.PeriodRequest {
	q := r.URL.Query()
	return service.PeriodRequest{
		Days:      q.Get("days"),
		Period:    q.Get("period"),
		StartDate: q.Get("start"),
		EndDate:   q.Get("end"),
	}
}

// computeReport writes the error response itself and returns nil on failure.
func (s *Server) computeReport(w http.ResponseWriter, r *http.Request, op string) *analytics.Report {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error(op + " error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return nil
	}
	ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
	defer cancel()
	report, err := s.analyticsService.ComputeAnalytics(ctx, uid, periodRequestFromQuery(r))
	if err != nil {
		if errors.Is(err, errorvalues.ErrStorageUnavailable) {
			logger.Error(op+" error: storage failure", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "error while reading health records", nil)
			return nil
		}
		logger.Error(op+" error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while computing analytics", nil)
		return nil
	}
	return report
}

func (s *Server) GetAnalytics(w http.ResponseWriter, r *http.Request) {
	report := s.computeReport(w, r, "analytics")
	if report == nil {
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, report)
	GetLoggerFromCtx(r.Context()).Info("analytics provided")
}

func (s *Server) GetSummary(w http.ResponseWriter, r *http.Request) {
	report := s.computeReport(w, r, "summary")
	if report == nil {
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SummaryResponse{
		Window:         report.Window,
		OverallStats:   report.OverallStats,
		Streaks:        report.Streaks,
		NutritionScore: report.NutritionScore,
		GoalProgress:   report.GoalProgress,
	})
	GetLoggerFromCtx(r.Context()).Info("summary provided")
}

func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSONResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
