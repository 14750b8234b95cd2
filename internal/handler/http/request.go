// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/sayansi-yathu/auth-service/internal/utils"
	"github.com/sayansi-yathu/auth-service/models"
)

// maxBodyBytes caps login and registration bodies.
const maxBodyBytes = 1 << 20

// decodeJSON reads exactly one JSON value from the body into dst, rejecting
// unknown fields and trailing data.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return fmt.Errorf("%w: %w", ErrBodyTooLarge, err)
		}
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}

	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return ErrMultipleJSONValues
	}

	return nil
}

// clientInfo describes the caller for audit records.
func clientInfo(r *http.Request) models.ClientInfo {
	return models.ClientInfo{
		IPAddress: utils.ClientIP(r),
		UserAgent: utils.TruncateUserAgent(r.UserAgent()),
	}
}
