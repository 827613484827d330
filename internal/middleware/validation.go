package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

const maxExperienceYears = 50

// RegisterValidators adds the custom binding rules used by request DTOs.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("experience", validateExperience)
}

// validateExperience accepts whole years of experience between 0 and 50.
func validateExperience(fl validator.FieldLevel) bool {
	years, err := strconv.Atoi(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return years >= 0 && years <= maxExperienceYears
}
