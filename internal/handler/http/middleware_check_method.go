// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/sayansi-yathu/auth-service/models"
)

// methodNotAllowed answers a known path requested with the wrong method.
func methodNotAllowed(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusMethodNotAllowed, models.ErrorResponse{Message: msgMethodNotAllowed})
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	writeMessage(w, http.StatusNotFound, models.ErrorResponse{Message: msgNotFound})
}

// preflight answers OPTIONS with 204; CORS headers are added by the cors
// middleware beforehand.
func preflight(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
