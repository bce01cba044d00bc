package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"pay-dashboard-api/internal/utils/timeutil"
)

// RegisterValidators adds the custom tags to gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return v.RegisterValidation("ymd", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(timeutil.DateLayout, fl.Field().String())
		return err == nil
	})
}

// ValidationMsg renders one field failure for the error payload.
func ValidationMsg(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "oneof":
		return fmt.Sprintf("must be one of [%s]", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "ymd":
		return "must be a date in YYYY-MM-DD form"
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// FieldErrors lists every field failure in err, or nil when err is not a validation error.
func FieldErrors(err error) []map[string]string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return nil
	}
	out := make([]map[string]string, 0, len(ve))
	for _, fe := range ve {
		out = append(out, map[string]string{
			"field": fe.Field(),
			"error": ValidationMsg(fe),
		})
	}
	return out
}
