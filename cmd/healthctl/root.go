package main

import (
	"context"
	"log/slog"

	"github.com/limbo/vitals/internal/analytics"
	"github.com/limbo/vitals/internal/repository"
	"github.com/limbo/vitals/internal/service"
	"github.com/limbo/vitals/pkg/config"
	"github.com/limbo/vitals/pkg/logger"
	"github.com/spf13/cobra"
)

// openService wires the analytics service against postgres. Tests replace it.
var openService = func(ctx context.Context, analyticsConfig string) (service.AnalyticsServiceI, error) {
	cfg := config.New()
	if analyticsConfig == "" {
		analyticsConfig = cfg.GetString("ANALYTICS_CONFIG")
	}
	engineCfg, err := analytics.LoadConfig(analyticsConfig)
	if err != nil {
		return nil, err
	}
	pool, err := repository.Connect(ctx, &repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	})
	if err != nil {
		return nil, err
	}
	return service.NewAnalyticsService(analytics.NewEngine(engineCfg), service.Repositories{
		Nutrition: repository.NewNutritionRepo(pool),
		Weights:   repository.NewWeightsRepo(pool),
		Workouts:  repository.NewWorkoutsRepo(pool),
		Running:   repository.NewRunningRepo(pool),
	}), nil
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "healthctl",
		Short:         "healthctl computes health analytics reports from the terminal",
		Long:          "healthctl reads the same PostgreSQL records as the API and prints analytics reports or mints access tokens.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			slog.SetDefault(logger.NewWithWriter(cmd.ErrOrStderr(), "healthctl", config.New().GetString("LOG_LEVEL")))
			service.InitValidator()
		},
	}
	root.AddCommand(newReportCmd(), newTokenCmd())
	return root
}
