// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"errors"
	"strings"
)

var (
	// ErrUnsupportedType is returned for values the validator has no rules for.
	ErrUnsupportedType = errors.New("unsupported type for validation")

	// ErrInvalidRequest wraps every rule violation. The wrapped message lists
	// the offending JSON fields.
	ErrInvalidRequest = errors.New("invalid request")
)

// RequestError lists the rule violations of one request, one
// "field: problem" entry each. It matches ErrInvalidRequest.
type RequestError struct {
	Problems []string
}

func (e *RequestError) Error() string {
	return ErrInvalidRequest.Error() + ": " + e.Detail()
}

// Detail is the client-facing description of the violations.
func (e *RequestError) Detail() string {
	return strings.Join(e.Problems, "; ")
}

func (e *RequestError) Unwrap() error {
	return ErrInvalidRequest
}
