package validate

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/farmstand/internal/domain"
	"github.com/go-playground/validator/v10"
)

// v is the package-level singleton validator. It is initialised once at
// package load time. Any custom type registrations must be made during init()
// before the first call to Struct.
var v = validator.New()

func init() {
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// DynamoDB numbers cannot hold infinities or NaN.
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		switch f := fl.Field(); f.Kind() {
		case reflect.Float32, reflect.Float64:
			return !math.IsInf(f.Float(), 0) && !math.IsNaN(f.Float())
		default:
			return true
		}
	})
}

// Struct validates the given struct using its validate tags. A rule failure
// is returned as a *domain.ValidationError naming entity; any other
// validator failure is returned as is.
func Struct(entity string, s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	fields := make([]domain.FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, domain.FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: describe(fe),
		})
	}
	return domain.NewValidationError(entity, fields)
}

func describe(fe validator.FieldError) string {
	label := fe.Field()
	if label != "" {
		label = strings.ToUpper(label[:1]) + label[1:]
	}
	switch fe.Tag() {
	case "required":
		return label + " is required"
	case "finite":
		return label + " must be a finite number"
	case "gte":
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("field '%s' failed '%s'", fe.Field(), fe.Tag())
	}
}
