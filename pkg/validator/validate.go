package validator

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// GetValidator returns the singleton instance of the validator.
// Besides the builtin tags it knows "notblank" (rejects whitespace-only
// strings) and "finite" (rejects NaN and ±Inf floats).
func GetValidator() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		if err := validate.RegisterValidation("notblank", notBlank); err != nil {
			panic("[VALIDATOR] failed to register notblank ->" + err.Error())
		}
		if err := validate.RegisterValidation("finite", finite); err != nil {
			panic("[VALIDATOR] failed to register finite ->" + err.Error())
		}
	})
	return validate
}

func notBlank(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.String {
		return true
	}
	return strings.TrimSpace(f.String()) != ""
}

func finite(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Float32 && f.Kind() != reflect.Float64 {
		return true
	}
	v := f.Float()
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// FailedFields lists the struct fields that failed validation in err.
// It returns nil when err is not a validation error.
func FailedFields(err error) map[string]bool {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	failed := make(map[string]bool, len(ve))
	for _, fe := range ve {
		failed[fe.Field()] = true
	}
	return failed
}
