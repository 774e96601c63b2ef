package repository

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// periodQuery appends the user and time filters to a SELECT ... FROM clause.
func periodQuery(selectFrom, column string, uid uuid.UUID, from *time.Time, to time.Time) (string, []any) {
	if from == nil {
		return selectFrom + ` WHERE user_id = $1 AND ` + column + ` <= $2 ORDER BY ` + column + `;`,
			[]any{uid, to}
	}
	return selectFrom + ` WHERE user_id = $1 AND ` + column + ` >= $2 AND ` + column + ` <= $3 ORDER BY ` + column + `;`,
		[]any{uid, *from, to}
}

// numeric columns are selected as text so no precision is lost on the way in
func parseNumeric(field, raw string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, errors.New("parsing " + field + " error: " + err.Error())
	}
	return d, nil
}
