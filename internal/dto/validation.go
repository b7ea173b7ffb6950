package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/SscSPs/car_insurance_app/internal/apperrors"
	"github.com/SscSPs/car_insurance_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// RegisterValidators installs the custom binding tags used by the request
// DTOs on gin's validator and makes field errors report JSON names.
// Safe to call more than once.
func RegisterValidators() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = errors.New("gin validator engine is not go-playground/validator")
			return
		}
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		registerErr = v.RegisterValidation("isodate", isoDate)
	})
	return registerErr
}

// isoDate accepts real calendar dates in YYYY-MM-DD form.
func isoDate(fl validator.FieldLevel) bool {
	s, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	_, err := domain.ParseDate(s)
	return err == nil
}

// BindingErrors converts validator failures from ShouldBindJSON into a
// field-keyed validation error. It returns nil when err did not come from the
// validator (malformed JSON, wrong types).
func BindingErrors(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	v := &apperrors.ValidationFailedError{}
	for _, fe := range verrs {
		v.Add(fe.Field(), messageFor(fe))
	}
	return v.OrNil()
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "isodate":
		return domain.MsgDateFormat
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	}
	return fmt.Sprintf("Failed on the '%s' rule.", fe.Tag())
}
