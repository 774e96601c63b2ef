package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/vitals/pkg/entity"
)

const (
	selectWorkouts = `SELECT id, user_id, name, date FROM workout_sessions`
	selectRuns     = `SELECT id, user_id, date, distance_km::text, duration_sec FROM running_sessions`
)

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepo(conn PgConnection) *WorkoutsRepository {
	return &WorkoutsRepository{
		conn: conn,
	}
}

func (wr *WorkoutsRepository) GetByPeriod(ctx context.Context, uid uuid.UUID, from *time.Time, to time.Time) ([]entity.WorkoutSession, error) {
	query, args := periodQuery(selectWorkouts, "date", uid, from, to)
	rows, err := wr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting workout sessions error: " + err.Error())
	}
	defer rows.Close()
	sessions := make([]entity.WorkoutSession, 0)
	for rows.Next() {
		var s entity.WorkoutSession
		if err = rows.Scan(&s.ID, &s.UserID, &s.Name, &s.Date); err != nil {
			return nil, errors.New("unmarshalling workout session error: " + err.Error())
		}
		sessions = append(sessions, s)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning workout sessions: " + err.Error())
	}
	return sessions, nil
}

type RunningRepository struct {
	conn PgConnection
}

func NewRunningRepo(conn PgConnection) *RunningRepository {
	return &RunningRepository{
		conn: conn,
	}
}

func (rr *RunningRepository) GetByPeriod(ctx context.Context, uid uuid.UUID, from *time.Time, to time.Time) ([]entity.RunningSession, error) {
	query, args := periodQuery(selectRuns, "date", uid, from, to)
	rows, err := rr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting running sessions error: " + err.Error())
	}
	defer rows.Close()
	runs := make([]entity.RunningSession, 0)
	for rows.Next() {
		var (
			r        entity.RunningSession
			distance string
		)
		if err = rows.Scan(&r.ID, &r.UserID, &r.Date, &distance, &r.DurationSec); err != nil {
			return nil, errors.New("unmarshalling running session error: " + err.Error())
		}
		if r.DistanceKm, err = parseNumeric("distance_km", distance); err != nil {
			return nil, err
		}
		runs = append(runs, r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning running sessions: " + err.Error())
	}
	return runs, nil
}
