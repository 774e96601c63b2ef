package analytics

import (
	"errors"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// MacroBand is an inclusive healthy range for a macro's share of calories, in percent.
type MacroBand struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

func (b MacroBand) Contains(percent float64) bool {
	return percent >= b.Min && percent <= b.Max
}

// Config holds every tunable constant used by the engine.
type Config struct {
	Timezone          string `yaml:"timezone"`
	DefaultWindowDays int    `yaml:"defaultWindowDays"`
	MaxRollupBuckets  int    `yaml:"maxRollupBuckets"`

	CalorieTarget       float64   `yaml:"calorieTarget"`
	ProteinTarget       float64   `yaml:"proteinTarget"`
	WeeklyWorkoutTarget int       `yaml:"weeklyWorkoutTarget"`
	WeeklyRunTarget     int       `yaml:"weeklyRunTarget"`
	TargetWeight        float64   `yaml:"targetWeight"`
	MilestoneWeights    []float64 `yaml:"milestoneWeights"`

	ProteinBand MacroBand `yaml:"proteinBand"`
	CarbsBand   MacroBand `yaml:"carbsBand"`
	FatBand     MacroBand `yaml:"fatBand"`

	KcalPerKg              float64 `yaml:"kcalPerKg"`
	SignificantFluctuation float64 `yaml:"significantFluctuationKg"`
	ValidDayFloor          float64 `yaml:"validDayFloorKcal"`
	ProjectionHorizonWeeks int     `yaml:"projectionHorizonWeeks"`
}

func DefaultConfig() Config {
	return Config{
		Timezone:               "UTC",
		DefaultWindowDays:      90,
		MaxRollupBuckets:       12,
		CalorieTarget:          2500,
		ProteinTarget:          150,
		WeeklyWorkoutTarget:    4,
		WeeklyRunTarget:        3,
		TargetWeight:           80,
		MilestoneWeights:       []float64{95, 90, 85, 80},
		ProteinBand:            MacroBand{Min: 15, Max: 35},
		CarbsBand:              MacroBand{Min: 40, Max: 65},
		FatBand:                MacroBand{Min: 20, Max: 40},
		KcalPerKg:              7700,
		SignificantFluctuation: 0.5,
		ValidDayFloor:          500,
		ProjectionHorizonWeeks: 52,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Keys missing from the
// file keep their default values.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.New("reading analytics config error: " + err.Error())
	}
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return cfg, errors.New("parsing analytics config error: " + err.Error())
	}
	if _, err := time.LoadLocation(cfg.Timezone); err != nil {
		return cfg, errors.New("invalid analytics timezone: " + err.Error())
	}
	return cfg, nil
}

// Location is the reporting timezone. Every calendar-day computation uses it.
func (c Config) Location() *time.Location {
	if c.Timezone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
