package service

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/99minutos/car-rental-api/internal/core/domain"
	"github.com/99minutos/car-rental-api/internal/core/ports"
	"github.com/99minutos/car-rental-api/internal/pkg/credentials"
)

// signupMessages maps "<field>.<tag>" to the message shown to the user.
var signupMessages = map[string]string{
	"name.required":       "Name is required",
	"email.required":      "Email is required",
	"email.emailshape":    "Invalid email format",
	"password.required":   "Password is required",
	"password.min":        "Password must be at least 6 characters",
	"agreeTerms.required": "You must agree to the terms and conditions",
}

const noInputMessage = "No input data provided"

// inputValidator wraps go-playground/validator with json field names and
// the email shape rule.
type inputValidator struct {
	v *validator.Validate
}

func newInputValidator() *inputValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// Only fails on a malformed tag name.
	if err := v.RegisterValidation("emailshape", func(fl validator.FieldLevel) bool {
		return credentials.ValidEmail(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	// Runs on nil pointers too: a key supplied as null still counts.
	if err := v.RegisterValidation("supplied", bookingFieldSupplied, true); err != nil {
		panic(err)
	}
	return &inputValidator{v: v}
}

// bookingFieldSupplied accepts a non-nil value or a key that was present in
// the decoded payload.
func bookingFieldSupplied(fl validator.FieldLevel) bool {
	parent := fl.Parent()
	if parent.Kind() == reflect.Ptr {
		parent = parent.Elem()
	}
	if in, ok := parent.Interface().(ports.CreateBookingInput); ok && in.Supplied(fl.FieldName()) {
		return true
	}
	f := fl.Field()
	switch f.Kind() {
	case reflect.Invalid:
		return false
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice:
		return !f.IsNil()
	}
	return true
}

// fieldErrors runs struct validation. A nil result means the input is valid;
// errors are returned in field declaration order.
func (iv *inputValidator) fieldErrors(i any) (validator.ValidationErrors, error) {
	err := iv.v.Struct(i)
	if err == nil {
		return nil, nil
	}
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return ve, nil
	}
	return nil, err
}

// validateSignup trims the input and collects every field violation.
func (iv *inputValidator) validateSignup(in *ports.SignupInput) (ports.SignupInput, error) {
	if in == nil {
		return ports.SignupInput{}, domain.NewFieldError(domain.GeneralField, noInputMessage)
	}

	normalized := *in
	normalized.Name = strings.TrimSpace(normalized.Name)
	normalized.Email = strings.TrimSpace(normalized.Email)

	ve, err := iv.fieldErrors(&normalized)
	if err != nil {
		return ports.SignupInput{}, err
	}
	if len(ve) == 0 {
		return normalized, nil
	}

	fields := make(map[string]string, len(ve))
	for _, fe := range ve {
		msg, ok := signupMessages[fe.Field()+"."+fe.Tag()]
		if !ok {
			msg = fe.Field() + " is invalid"
		}
		fields[fe.Field()] = msg
	}
	return ports.SignupInput{}, &domain.ValidationError{Fields: fields}
}

// validateBooking reports only the first missing required field.
func (iv *inputValidator) validateBooking(in *ports.CreateBookingInput) error {
	if in == nil {
		return &domain.ValidationError{Message: noInputMessage}
	}
	ve, err := iv.fieldErrors(in)
	if err != nil {
		return err
	}
	if len(ve) > 0 {
		return &domain.ValidationError{Message: "Missing required field: " + ve[0].Field()}
	}
	return nil
}
