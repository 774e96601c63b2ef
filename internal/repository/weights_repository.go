package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/limbo/vitals/pkg/entity"
)

const selectWeights = `SELECT id, user_id, weight_kg::text, recorded_at, notes FROM weight_measurements`

type WeightsRepository struct {
	conn PgConnection
}

func NewWeightsRepo(conn PgConnection) *WeightsRepository {
	return &WeightsRepository{
		conn: conn,
	}
}

func (wr *WeightsRepository) GetByPeriod(ctx context.Context, uid uuid.UUID, from *time.Time, to time.Time) ([]entity.WeightMeasurement, error) {
	query, args := periodQuery(selectWeights, "recorded_at", uid, from, to)
	rows, err := wr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting weight measurements error: " + err.Error())
	}
	defer rows.Close()
	measurements := make([]entity.WeightMeasurement, 0)
	for rows.Next() {
		var (
			m      entity.WeightMeasurement
			weight string
		)
		if err = rows.Scan(&m.ID, &m.UserID, &weight, &m.RecordedAt, &m.Notes); err != nil {
			return nil, errors.New("unmarshalling weight measurement error: " + err.Error())
		}
		if m.WeightKg, err = parseNumeric("weight_kg", weight); err != nil {
			return nil, err
		}
		measurements = append(measurements, m)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning weight measurements: " + err.Error())
	}
	return measurements, nil
}

func (wr *WeightsRepository) GetLatest(ctx context.Context, uid uuid.UUID, before time.Time) (*entity.WeightMeasurement, error) {
	var (
		m      entity.WeightMeasurement
		weight string
	)
	err := wr.conn.QueryRow(ctx, selectWeights+` WHERE user_id = $1 AND recorded_at <= $2 ORDER BY recorded_at DESC LIMIT 1;`,
		uid, before).Scan(&m.ID, &m.UserID, &weight, &m.RecordedAt, &m.Notes)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.New("getting latest weight measurement error: " + err.Error())
	}
	if m.WeightKg, err = parseNumeric("weight_kg", weight); err != nil {
		return nil, err
	}
	return &m, nil
}
