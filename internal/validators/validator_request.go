// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sayansi-yathu/auth-service/models"
)

// RequestValidator implements the Validator interface for the inbound
// request models of the auth API: LoginRequest and RegisterRequest, in value
// or pointer form. Rules are declared as `validate` struct tags; the custom
// "role" tag accepts any [models.Role].
type RequestValidator struct {
	validate *validator.Validate
}

// NewRequestValidator constructs a RequestValidator and returns it as the
// Validator interface.
func NewRequestValidator() Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// report JSON names instead of Go field names
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	// only fails for an empty or reserved tag name
	_ = v.RegisterValidation("role", func(fl validator.FieldLevel) bool {
		return models.Role(fl.Field().String()).Valid()
	})

	return &RequestValidator{validate: v}
}

// Validate checks obj against its struct tags. When fields are given only
// those (Go field names, dotted for nested structs) are checked.
func (v *RequestValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch obj.(type) {
	case models.LoginRequest, *models.LoginRequest,
		models.RegisterRequest, *models.RegisterRequest,
		models.StudentRegisterDetails, *models.StudentRegisterDetails:
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, obj)
	}

	var err error
	if len(fields) > 0 {
		err = v.validate.StructPartialCtx(ctx, obj, fields...)
	} else {
		err = v.validate.StructCtx(ctx, obj)
	}

	return describe(err)
}

// describe flattens validator errors into one *RequestError.
func describe(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	problems := make([]string, 0, len(fieldErrors))
	for _, fe := range fieldErrors {
		_, field, _ := strings.Cut(fe.Namespace(), ".")
		problems = append(problems, fmt.Sprintf("%s: %s", field, rule(fe)))
	}

	return &RequestError{Problems: problems}
}

func rule(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return "must be at least " + fe.Param() + unit(fe)
	case "max":
		return "must be at most " + fe.Param() + unit(fe)
	case "role":
		return "is not a known role"
	default:
		return "failed " + fe.Tag()
	}
}

func unit(fe validator.FieldError) string {
	if fe.Kind() == reflect.String {
		return " characters"
	}
	return ""
}
