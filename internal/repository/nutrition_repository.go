package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/vitals/pkg/entity"
)

const selectNutrition = `SELECT id, user_id, product_name, calories::text, fat_g::text, carbs_g::text, protein_g::text, consumed_at, hidden
	FROM nutrition_entries`

type NutritionRepository struct {
	conn PgConnection
}

func NewNutritionRepo(conn PgConnection) *NutritionRepository {
	return &NutritionRepository{
		conn: conn,
	}
}

func (nr *NutritionRepository) GetByPeriod(ctx context.Context, uid uuid.UUID, from *time.Time, to time.Time) ([]entity.NutritionEntry, error) {
	query, args := periodQuery(selectNutrition, "consumed_at", uid, from, to)
	rows, err := nr.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, errors.New("getting nutrition entries error: " + err.Error())
	}
	defer rows.Close()
	entries := make([]entity.NutritionEntry, 0)
	for rows.Next() {
		var (
			e                          entity.NutritionEntry
			calories, fat, carbs, prot string
		)
		err = rows.Scan(&e.ID, &e.UserID, &e.ProductName, &calories, &fat, &carbs, &prot, &e.ConsumedAt, &e.Hidden)
		if err != nil {
			return nil, errors.New("unmarshalling nutrition entry error: " + err.Error())
		}
		if e.Calories, err = parseNumeric("calories", calories); err != nil {
			return nil, err
		}
		if e.FatG, err = parseNumeric("fat_g", fat); err != nil {
			return nil, err
		}
		if e.CarbsG, err = parseNumeric("carbs_g", carbs); err != nil {
			return nil, err
		}
		if e.ProteinG, err = parseNumeric("protein_g", prot); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected error after scanning nutrition entries: " + err.Error())
	}
	return entries, nil
}
