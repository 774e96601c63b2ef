package main

import (
	"errors"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/limbo/vitals/internal/service"
)

type reportOptions struct {
	uid       string
	days      string
	period    string
	start     string
	end       string
	config    string
	summary   bool
	indentOut bool
}

func newReportCmd() *cobra.Command {
	opts := reportOptions{}
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Compute the analytics report for a user and print it as JSON",
		Example: `  healthctl report --uid 3f0c... --days 30
  healthctl report --uid 3f0c... --period all --summary`,
		RunE: func(cmd *cobra.Command, args []string) error {
			uid, err := uuid.Parse(opts.uid)
			if err != nil {
				return errors.New("invalid --uid: " + err.Error())
			}
			svc, err := openService(cmd.Context(), opts.config)
			if err != nil {
				return err
			}
			report, err := svc.ComputeAnalytics(cmd.Context(), uid, service.PeriodRequest{
				Days:      opts.days,
				Period:    opts.period,
				StartDate: opts.start,
				EndDate:   opts.end,
			})
			if err != nil {
				return err
			}
			var body any = report
			if opts.summary {
				body = map[string]any{
					"window":          report.Window,
					"overall_stats":   report.OverallStats,
					"streaks":         report.Streaks,
					"nutrition_score": report.NutritionScore,
					"goal_progress":   report.GoalProgress,
				}
			}
			var out []byte
			if opts.indentOut {
				out, err = sonic.ConfigDefault.MarshalIndent(body, "", "  ")
			} else {
				out, err = sonic.ConfigDefault.Marshal(body)
			}
			if err != nil {
				return errors.New("encoding report error: " + err.Error())
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	cmd.Flags().StringVar(&opts.uid, "uid", "", "User id whose records are analysed")
	cmd.Flags().StringVar(&opts.days, "days", "", "Look back N days, or \"all\"")
	cmd.Flags().StringVar(&opts.period, "period", "", "Named period: all, today, week, month")
	cmd.Flags().StringVar(&opts.start, "start", "", "Range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.end, "end", "", "Range end (YYYY-MM-DD)")
	cmd.Flags().StringVar(&opts.config, "config", "", "Analytics YAML config, defaults to $ANALYTICS_CONFIG")
	cmd.Flags().BoolVar(&opts.summary, "summary", false, "Print only stats, streaks, score and goals")
	cmd.Flags().BoolVar(&opts.indentOut, "pretty", false, "Indent the JSON output")
	_ = cmd.MarkFlagRequired("uid")
	return cmd
}
