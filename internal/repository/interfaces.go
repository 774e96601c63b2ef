package repository

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/vitals/pkg/entity"
)

// Every GetByPeriod lists one user's records inside [from, to], oldest first.
// A nil from means no lower bound.

type NutritionRepositoryI interface {
	// Lists food log entries by consumed_at. Hidden entries are included; callers filter them
	GetByPeriod(ctx context.Context, uid uuid.UUID, from *time.Time, to time.Time) ([]entity.NutritionEntry, error)
}

type WeightsRepositoryI interface {
	// Lists weight measurements by recorded_at
	GetByPeriod(ctx context.Context, uid uuid.UUID, from *time.Time, to time.Time) ([]entity.WeightMeasurement, error)
	// Returns the most recent measurement at or before the given time, nil if there is none
	GetLatest(ctx context.Context, uid uuid.UUID, before time.Time) (*entity.WeightMeasurement, error)
}

type WorkoutsRepositoryI interface {
	GetByPeriod(ctx context.Context, uid uuid.UUID, from *time.Time, to time.Time) ([]entity.WorkoutSession, error)
}

type RunningRepositoryI interface {
	GetByPeriod(ctx context.Context, uid uuid.UUID, from *time.Time, to time.Time) ([]entity.RunningSession, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	dsn := fmt.Sprintf("postgresql://%s:%s@%s/%s",
		url.QueryEscape(pgcfg.Username), url.QueryEscape(pgcfg.Password), pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		dsn += "?sslmode=" + pgcfg.SSLMode
	}
	return dsn
}
