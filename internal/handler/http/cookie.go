// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/sayansi-yathu/auth-service/models"
)

// SessionCookieName is the cookie that carries the session token.
const SessionCookieName = "sy_auth"

// setSessionCookie stores token in an HTTP-only cookie whose Max-Age is the
// token TTL in whole seconds. Secure is set only for TLS requests.
func setSessionCookie(w http.ResponseWriter, r *http.Request, token models.Token) {
	maxAge := int(token.TTL.Round(time.Second).Seconds())
	if maxAge <= 0 {
		maxAge = -1
	}

	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookieName,
		Value:    token.SignedString,
		Path:     "/",
		MaxAge:   maxAge,
		Expires:  token.ExpiresAt,
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})
}
