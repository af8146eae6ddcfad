package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/taskboard/internal/todo/domain"
	"github.com/aussiebroadwan/taskboard/pkg/httpx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

const (
	msgUnauthorized   = "Unauthorized"
	msgInvalidBody    = "Invalid request body"
	msgInternalError  = "Internal server error"
	msgNotFound       = "Not found"
	msgInvalidPass    = "Invalid password"
	msgUserCreated    = "User created successfully"
	msgLoggedIn       = "Login successful"
	msgLoggedOut      = "Logout successful"
	msgMethodNotAllow = "Method not allowed"
)

// writeError maps registry errors onto status codes. Anything that is not a
// domain error is logged and hidden behind a generic 500.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		slogx.FromContext(r.Context()).Error("request failed", "err", err)
		httpx.WriteMessage(w, http.StatusInternalServerError, msgInternalError)
		return
	}

	status := http.StatusInternalServerError
	switch {
	case errors.Is(de.Kind, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(de.Kind, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(de.Kind, domain.ErrNotFound):
		status = http.StatusNotFound
	}
	httpx.WriteMessage(w, status, de.Message)
}

func writeUnauthorized(w http.ResponseWriter) {
	httpx.WriteMessage(w, http.StatusUnauthorized, msgUnauthorized)
}
