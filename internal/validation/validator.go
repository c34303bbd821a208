// Tabularium - Mock Archive Management API for Frontend Development
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/tabularium

// Package validation provides struct validation using go-playground/validator
// v10 behind a thread-safe singleton instance.
//
// It is used for configuration validation at startup. Request bodies are
// deliberately not validated through this package: the wire contract only
// requires a JSON parse, and a missing login field must surface as an
// invalid-credentials failure, not a validation error.
package validation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// instance returns the singleton validator. The instance caches struct
// metadata, so sharing one across the process is both safe and faster.
func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// FieldError describes a single failed validation rule.
type FieldError struct {
	Field string
	Tag   string
	Param string
}

// Error returns a human-readable description of the failure.
func (e FieldError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("field %s failed rule %s=%s", e.Field, e.Tag, e.Param)
	}
	return fmt.Sprintf("field %s failed rule %s", e.Field, e.Tag)
}

// StructError aggregates every failed rule for one struct.
type StructError struct {
	Fields []FieldError
}

// Error joins the individual field failures into one message.
func (e *StructError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Error())
	}
	return strings.Join(parts, "; ")
}

// ValidateStruct validates v against its `validate` struct tags. It returns
// nil on success, or a *StructError listing every failed field.
func ValidateStruct(v any) error {
	err := instance().Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !asValidationErrors(err, &verrs) {
		// InvalidValidationError (nil pointer, non-struct): programmer error.
		return fmt.Errorf("validation: %w", err)
	}

	out := &StructError{Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{
			Field: fe.Namespace(),
			Tag:   fe.Tag(),
			Param: fe.Param(),
		})
	}
	return out
}

// asValidationErrors unwraps err into validator.ValidationErrors.
func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return false
	}
	*target = verrs
	return true
}
