// Package validator adapts go-playground/validator to echo with the catalog's custom tags.
package validator

import (
	"reflect"
	"slices"
	"strconv"
	"strings"

	"tourist/internal/domain/entity"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate       *validator.Validate
	allowedRadiiKm []float64
}

// New registers the radius_km, interest, budget_tier and place_type tags.
// radius_km accepts only allowedRadiiKm.
func New(allowedRadiiKm []float64) *CustomValidator {
	v := &CustomValidator{
		validate:       validator.New(validator.WithRequiredStructEnabled()),
		allowedRadiiKm: allowedRadiiKm,
	}

	v.validate.RegisterTagNameFunc(fieldName)

	_ = v.validate.RegisterValidation("radius_km", func(fl validator.FieldLevel) bool {
		return slices.Contains(v.allowedRadiiKm, fl.Field().Float())
	})
	_ = v.validate.RegisterValidation("interest", func(fl validator.FieldLevel) bool {
		return entity.InterestCategory(fl.Field().String()).IsValid()
	})
	_ = v.validate.RegisterValidation("budget_tier", func(fl validator.FieldLevel) bool {
		return entity.BudgetTier(fl.Field().String()).IsValid()
	})
	_ = v.validate.RegisterValidation("place_type", func(fl validator.FieldLevel) bool {
		return entity.PlaceCategory(fl.Field().String()).IsSearchable()
	})

	return v
}

// Validate returns one readable message per failing field, joined by "; ".
func (v *CustomValidator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return errors.WithStack(err)
	}

	messages := make([]string, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		messages = append(messages, v.message(fieldErr))
	}

	return errors.New(strings.Join(messages, "; "))
}

func (v *CustomValidator) message(fieldErr validator.FieldError) string {
	field := fieldErr.Field()

	switch fieldErr.Tag() {
	case "required", "required_with":
		return field + " is required"
	case "radius_km":
		radii := make([]string, 0, len(v.allowedRadiiKm))
		for _, r := range v.allowedRadiiKm {
			radii = append(radii, strconv.FormatFloat(r, 'f', -1, 64))
		}

		return field + " must be one of " + strings.Join(radii, ", ")
	case "interest":
		return field + " has an unknown interest: " + fieldErr.Value().(string)
	case "budget_tier":
		return field + " must be economy, moderate or luxury"
	case "place_type":
		return field + " has an unknown place type"
	case "min", "gte", "gt":
		return field + " must be at least " + fieldErr.Param()
	case "max", "lte", "lt":
		return field + " must be at most " + fieldErr.Param()
	case "datetime":
		return field + " must be a date in YYYY-MM-DD format"
	case "uuid", "uuid4":
		return field + " must be a UUID"
	case "latitude", "longitude":
		return field + " is not a valid " + fieldErr.Tag()
	default:
		return field + " failed on " + fieldErr.Tag()
	}
}

// fieldName reports fields by their query, json or param name.
func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"query", "json", "param"} {
		name, _, _ := strings.Cut(field.Tag.Get(tag), ",")
		if name != "" && name != "-" {
			return name
		}
	}

	return field.Name
}
