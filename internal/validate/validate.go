package validate

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"canopy/internal/apperr"
)

var v = newValidator()

func newValidator() *validator.Validate {
	val := validator.New()

	// Report json field names, not Go struct names, in error details.
	val.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Prices travel as decimal strings like "45.00".
	_ = val.RegisterValidation("decimal", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative()
	})

	return val
}

// Struct validates a tagged payload and converts failures into a
// ValidationError with one detail per offending field.
func Struct(message string, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return apperr.NewInternalError("validation failed", err)
	}

	details := make([]apperr.ValidationDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, apperr.ValidationDetail{
			Field:   fe.Field(),
			Message: describe(fe),
		})
	}
	return apperr.NewValidationError(message, details...)
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "gt":
		return "must be greater than " + fe.Param()
	case "email":
		return "must be a valid email address"
	case "decimal":
		return "must be a non-negative decimal string"
	default:
		return "is invalid"
	}
}
