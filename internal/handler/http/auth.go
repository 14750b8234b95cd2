// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/internal/service"
	"github.com/sayansi-yathu/auth-service/internal/utils"
	"github.com/sayansi-yathu/auth-service/models"
)

// login answers 200 with a token and session cookie, 400 for a missing
// identifier or password, 401 for any credential failure and 429 while the
// account is locked. 400 and 401 share one generic message.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid login payload")
		writeError(w, err)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req, clientInfo(r))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			writeMessage(w, http.StatusBadRequest, models.ErrorResponse{Message: msgInvalidCredentials})
		case errors.Is(err, service.ErrInvalidCredentials):
			writeMessage(w, http.StatusUnauthorized, models.ErrorResponse{Message: msgInvalidCredentials})
		case errors.Is(err, service.ErrAccountLocked):
			writeMessage(w, http.StatusTooManyRequests, models.ErrorResponse{Message: msgAccountLocked, Locked: true})
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			writeMessage(w, http.StatusInternalServerError, models.ErrorResponse{Message: msgServerError})
		}
		return
	}

	setSessionCookie(w, r, result.Token)

	summary := models.NewUserSummary(result.User, result.Student)
	_, _ = utils.WriteJSON(w, models.LoginResponse{
		Message:              msgLoginSucceeded,
		Token:                result.Token.SignedString,
		User:                 summary,
		DashboardRoute:       summary.DashboardRoute,
		RequiresVerification: false,
	}, http.StatusOK)
}

// register creates a student or teacher account. No session is started.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		log.Err(err).Msg("invalid registration payload")
		writeError(w, err)
		return
	}

	user, student, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		if statusFromError(err) == http.StatusInternalServerError {
			log.Err(err).Msg("unexpected error occurred during user registration")
		} else {
			log.Info().Err(err).Msg("registration rejected")
		}
		writeError(w, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.RegisterResponse{
		Message: msgRegistered,
		User:    models.NewUserSummary(user, student),
	}, http.StatusCreated)
}

// me reports the session resolved by withSession.
func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	session, ok := utils.GetSessionFromContext(r.Context())
	if !ok {
		writeError(w, ErrNoSessionToken)
		return
	}

	_, _ = utils.WriteJSON(w, models.SessionResponse{
		Authenticated: true,
		User:          models.NewUserSummary(session.User, session.Student),
	}, http.StatusOK)
}
