package handlers

import (
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/fixed_asset_ledger/internal/core/domain"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerValidatorsOnce sync.Once

// registerValidators adds the custom binding tags used by request DTOs and
// makes validation errors report JSON field names.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			slog.Error("Gin validator engine is not go-playground/validator, custom tags unavailable")
			return
		}
		v.RegisterTagNameFunc(jsonFieldName)
		if err := v.RegisterValidation("period_year", validatePeriodYear); err != nil {
			slog.Error("Failed to register period_year validator", slog.String("error", err.Error()))
		}
	})
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func validatePeriodYear(fl validator.FieldLevel) bool {
	year := fl.Field().Int()
	return year >= domain.MinPeriodYear && year <= domain.MaxPeriodYear
}

// bindErrorBody builds the 400 body for a failed bind. Validation failures
// get an errors map keyed by JSON field; anything else (malformed JSON, wrong
// types) only carries the top-level message.
func bindErrorBody(err error) gin.H {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return gin.H{"error": "Invalid request body"}
	}

	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fieldMessage(fe)
	}
	return gin.H{"error": "Validation failed", "errors": fields}
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "period_year":
		return fmt.Sprintf("must be between %d and %d", domain.MinPeriodYear, domain.MaxPeriodYear)
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "is invalid"
	}
}
