// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/sayansi-yathu/auth-service/internal/logger"
	"github.com/sayansi-yathu/auth-service/internal/utils"
	"github.com/sayansi-yathu/auth-service/models"
)

// withSession resolves the caller's token (bearer header first, then the
// session cookie) to the current user and stores it with
// [utils.WithSession]. A "role" query parameter restricts access to the
// listed comma separated roles.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		tokenString, err := sessionToken(r)
		if err != nil {
			log.Debug().Err(err).Msg("no session token")
			writeError(w, err)
			return
		}

		ctx := r.Context()
		user, student, err := h.services.AuthService.Authenticate(ctx, tokenString, requiredRoles(r)...)
		if err != nil {
			if statusFromError(err) >= http.StatusInternalServerError {
				log.Err(err).Msg("error occurred during session check")
			} else {
				log.Info().Err(err).Msg("session rejected")
			}
			writeError(w, err)
			return
		}

		ctx = utils.WithSession(ctx, utils.Session{User: user, Student: student})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionToken(r *http.Request) (string, error) {
	if header := r.Header.Get("Authorization"); header != "" {
		if token, err := utils.ParseBearerToken(header); err == nil {
			return token, nil
		}
	}

	if cookie, err := r.Cookie(SessionCookieName); err == nil && cookie.Value != "" {
		return cookie.Value, nil
	}

	return "", ErrNoSessionToken
}

func requiredRoles(r *http.Request) []models.Role {
	raw := r.URL.Query().Get("role")
	if raw == "" {
		return nil
	}

	var roles []models.Role
	for part := range strings.SplitSeq(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			roles = append(roles, models.Role(part))
		}
	}
	return roles
}
