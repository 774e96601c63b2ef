package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type NutritionEntry struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"uid"`
	ProductName string          `json:"product_name"`
	Calories    decimal.Decimal `json:"calories"`
	FatG        decimal.Decimal `json:"fat_g"`
	CarbsG      decimal.Decimal `json:"carbs_g"`
	ProteinG    decimal.Decimal `json:"protein_g"`
	ConsumedAt  time.Time       `json:"consumed_at"`
	Hidden      bool            `json:"hidden"`
}

type WeightMeasurement struct {
	ID         uuid.UUID       `json:"id"`
	UserID     uuid.UUID       `json:"uid"`
	WeightKg   decimal.Decimal `json:"weight_kg"`
	RecordedAt time.Time       `json:"recorded_at"`
	Notes      *string         `json:"notes,omitempty"`
}

type WorkoutSession struct {
	ID     uuid.UUID `json:"id"`
	UserID uuid.UUID `json:"uid"`
	Name   string    `json:"name"`
	Date   time.Time `json:"date"`
}

type RunningSession struct {
	ID          uuid.UUID       `json:"id"`
	UserID      uuid.UUID       `json:"uid"`
	Date        time.Time       `json:"date"`
	DistanceKm  decimal.Decimal `json:"distance_km"`
	DurationSec int             `json:"duration_sec"`
}
