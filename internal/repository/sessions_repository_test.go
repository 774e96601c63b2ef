package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/limbo/vitals/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutsGetByPeriod(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewWorkoutsRepo(mock)

	query := regexp.QuoteMeta(`FROM workout_sessions WHERE user_id = $1 AND date <= $2 ORDER BY date;`)
	id := uuid.New()

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, to).WillReturnRows(
			pgxmock.NewRows([]string{"id", "user_id", "name", "date"}).AddRow(id, userID, "legs", from),
		)
		result, err := repo.GetByPeriod(context.Background(), userID, nil, to)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.Equal(t, "legs", result[0].Name)
		assert.Equal(t, from, result[0].Date)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, to).WillReturnError(errors.New("db error"))
		_, err := repo.GetByPeriod(context.Background(), userID, nil, to)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunningGetByPeriod(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()
	repo := repository.NewRunningRepo(mock)

	query := regexp.QuoteMeta(`FROM running_sessions WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date;`)
	columns := []string{"id", "user_id", "date", "distance_km", "duration_sec"}

	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, from, to).WillReturnRows(
			pgxmock.NewRows(columns).AddRow(uuid.New(), userID, from, "10.25", 3120),
		)
		result, err := repo.GetByPeriod(context.Background(), userID, &from, to)
		require.NoError(t, err)
		require.Len(t, result, 1)
		assert.True(t, decimal.RequireFromString("10.25").Equal(result[0].DistanceKm))
		assert.Equal(t, 3120, result[0].DurationSec)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	t.Run("corrupted distance", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, from, to).WillReturnRows(
			pgxmock.NewRows(columns).AddRow(uuid.New(), userID, from, "far", 3120),
		)
		_, err := repo.GetByPeriod(context.Background(), userID, &from, to)
		assert.Error(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
