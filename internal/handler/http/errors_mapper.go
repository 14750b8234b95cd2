// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/sayansi-yathu/auth-service/internal/service"
	"github.com/sayansi-yathu/auth-service/internal/store"
	"github.com/sayansi-yathu/auth-service/internal/utils"
	"github.com/sayansi-yathu/auth-service/models"
)

// Client-facing messages.
const (
	msgInvalidCredentials = "Invalid login credentials. Please check your email, Student ID, or password and try again."
	msgAccountLocked      = "Too many failed attempts. Please try again after a few minutes."
	msgInvalidPayload     = "Invalid request payload"
	msgBodyTooLarge       = "Request body too large"
	msgTokenExpired       = "Token expired"
	msgUnauthorized       = "Unauthorized"
	msgForbidden          = "Forbidden"
	msgMethodNotAllowed   = "Method not allowed"
	msgNotFound           = "Not found"
	msgServerError        = "Server error"

	msgLoginSucceeded = "Login successful"
	msgRegistered     = "User registered successfully"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:        http.StatusBadRequest,
	ErrMultipleJSONValues: http.StatusBadRequest,
	ErrBodyTooLarge:       http.StatusRequestEntityTooLarge,
	ErrNoSessionToken:     http.StatusUnauthorized,

	service.ErrInvalidDataProvided:        http.StatusBadRequest,
	service.ErrRegistrationRoleNotAllowed: http.StatusBadRequest,
	service.ErrInvalidStudentID:           http.StatusBadRequest,
	service.ErrStudentDetailsNotAllowed:   http.StatusBadRequest,
	service.ErrInvalidCredentials:         http.StatusUnauthorized,
	service.ErrTokenIsExpired:             http.StatusUnauthorized,
	service.ErrTokenIsInvalid:             http.StatusUnauthorized,
	service.ErrForbiddenRole:              http.StatusForbidden,
	service.ErrAccountLocked:              http.StatusTooManyRequests,
	service.ErrTokenCreationFailed:        http.StatusInternalServerError,

	store.ErrEmailAlreadyExists:     http.StatusConflict,
	store.ErrUsernameAlreadyExists:  http.StatusConflict,
	store.ErrStudentIDAlreadyExists: http.StatusConflict,
	store.ErrAlreadyExists:          http.StatusConflict,

	store.ErrBuildingSQLQuery:     http.StatusInternalServerError,
	store.ErrExecutingQuery:       http.StatusInternalServerError,
	store.ErrExecutingStatement:   http.StatusInternalServerError,
	store.ErrBeginningTransaction: http.StatusInternalServerError,
	store.ErrCommitingTransaction: http.StatusInternalServerError,
}

var errorMessageMap = map[error]string{
	ErrInvalidJSON:        msgInvalidPayload,
	ErrMultipleJSONValues: msgInvalidPayload,
	ErrBodyTooLarge:       msgBodyTooLarge,
	ErrNoSessionToken:     msgUnauthorized,

	service.ErrRegistrationRoleNotAllowed: "Only student and teacher accounts can be self-registered",
	service.ErrInvalidStudentID:           "Invalid Student ID. Expected a value such as STU-2025-G10-001",
	service.ErrStudentDetailsNotAllowed:   "Student details are only accepted for student accounts",
	service.ErrInvalidCredentials:         msgInvalidCredentials,
	service.ErrTokenIsExpired:             msgTokenExpired,
	service.ErrTokenIsInvalid:             msgUnauthorized,
	service.ErrForbiddenRole:              msgForbidden,
	service.ErrAccountLocked:              msgAccountLocked,

	store.ErrEmailAlreadyExists:     "Email is already registered",
	store.ErrUsernameAlreadyExists:  "Username is already taken",
	store.ErrStudentIDAlreadyExists: "Student ID is already registered",
	store.ErrAlreadyExists:          "Account already exists",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// messageFromError returns the client-facing text for err. Validation
// failures carry their field-level detail; unmapped errors get a fixed
// server error text so that internals never leak.
func messageFromError(err error) string {
	if errors.Is(err, service.ErrInvalidDataProvided) {
		if detail := validationDetail(err); detail != "" {
			return detail
		}
		return msgInvalidPayload
	}
	for target, message := range errorMessageMap {
		if errors.Is(err, target) {
			return message
		}
	}
	return msgServerError
}

// validationDetail extracts the validator's field message from an
// ErrInvalidDataProvided chain.
func validationDetail(err error) string {
	var detailed interface{ Detail() string }
	if errors.As(err, &detailed) {
		return detailed.Detail()
	}
	return ""
}

// writeError answers with the mapped status and a JSON message body.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)
	writeMessage(w, status, models.ErrorResponse{
		Message: messageFromError(err),
		Locked:  status == http.StatusTooManyRequests,
	})
}

func writeMessage(w http.ResponseWriter, status int, body models.ErrorResponse) {
	_, _ = utils.WriteJSON(w, body, status)
}
