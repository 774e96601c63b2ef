// @title Health analytics API
// @description Read-only analytics over food, weight and training logs
// @BasePath /api/v1
// @schemes http
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/limbo/vitals/internal/analytics"
	"github.com/limbo/vitals/internal/api"
	"github.com/limbo/vitals/internal/repository"
	"github.com/limbo/vitals/internal/service"
	"github.com/limbo/vitals/pkg/config"
	jwtservice "github.com/limbo/vitals/pkg/jwt_service"
	"github.com/limbo/vitals/pkg/logger"
)

func init() {
	service.InitValidator()
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.New()
	slog.SetDefault(logger.New("vitals-api"))

	engineCfg, err := analytics.LoadConfig(cfg.GetString("ANALYTICS_CONFIG"))
	if err != nil {
		slog.Error("loading analytics config failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	dbCfg := repository.PGCfg{
		Address:  cfg.GetString("POSTGRES_DB_ADDRESS"),
		Username: cfg.GetString("POSTGRES_USER"),
		Password: cfg.GetString("POSTGRES_PASSWORD"),
		DB:       cfg.GetString("POSTGRES_DB"),
		SSLMode:  cfg.GetString("POSTGRES_SSLMODE"),
	}
	pool, err := repository.Connect(ctx, &dbCfg)
	if err != nil {
		slog.Error("connecting to postgres failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	analyticsService := service.NewAnalyticsService(analytics.NewEngine(engineCfg), service.Repositories{
		Nutrition: repository.NewNutritionRepo(pool),
		Weights:   repository.NewWeightsRepo(pool),
		Workouts:  repository.NewWorkoutsRepo(pool),
		Running:   repository.NewRunningRepo(pool),
	})
	serv := api.New(&api.ServicesList{
		AnalyticsService: analyticsService,
		JwtService:       jwtservice.NewWithTTL(cfg.GetString("JWT_SECRET"), cfg.GetDuration("JWT_TTL", time.Hour)),
		RequestTimeout:   cfg.GetDuration("REQUEST_TIMEOUT", 15*time.Second),
	})
	if err = serv.Run(ctx, cfg.GetStringOr("API_ADDRESS", ":8080")); err != nil {
		slog.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
