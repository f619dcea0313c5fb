package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"spending-warehouse/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("warehouse_year", validateWarehouseYear)
	_ = v.RegisterValidation("etl_stage", validateEtlStage)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateWarehouseYear bounds year parameters to the range the warehouse
// stores data for.
func validateWarehouseYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= 2000 && year <= 2100
}

// validateEtlStage validates that a stage filter names a known pipeline stage
func validateEtlStage(fl validator.FieldLevel) bool {
	stage := fl.Field().String()
	validStages := map[string]bool{
		models.StageSnapshot:        true,
		models.StageMonthlySummary:  true,
		models.StageCategoryTrends:  true,
		models.StagePersonAnalytics: true,
		models.StagePaymentSummary:  true,
	}
	return validStages[stage]
}
