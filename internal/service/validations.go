package service

import (
	"strconv"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("period_days", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			if strings.EqualFold(value, "all") {
				return true
			}
			n, err := strconv.Atoi(value)
			return err == nil && n >= 0
		})
	})
}
