package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"

	"dress-diary/canvas"
	"dress-diary/repository"
	"dress-diary/service"
	"dress-diary/session"
)

// errorResponse is the JSON body of every failed request
type errorResponse struct {
	Error string `json:"error"`
}

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidItem),
		errors.Is(err, service.ErrInvalidSignUp),
		errors.Is(err, service.ErrIncompleteDetails):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized),
		errors.Is(err, session.ErrNoSession):
		return http.StatusUnauthorized
	case errors.Is(err, repository.ErrNotFound),
		errors.Is(err, service.ErrSessionNotFound):
		return http.StatusNotFound
	case errors.Is(err, repository.ErrUserExists),
		errors.Is(err, canvas.ErrSaveInProgress):
		return http.StatusConflict
	case errors.Is(err, canvas.ErrEmptyComposition),
		errors.Is(err, canvas.ErrUnresolvablePayload),
		errors.Is(err, canvas.ErrUnknownItem):
		return http.StatusUnprocessableEntity
	case errors.Is(err, service.ErrSaveFailed):
		return http.StatusBadGateway
	case errors.Is(err, service.ErrImportUnavailable),
		errors.Is(err, service.ErrPDFUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Errorf("❌ Error encoding response: %v", err)
	}
}

// writeError logs err and answers with its mapped status.
// Internal errors are not echoed to the client.
func writeError(w http.ResponseWriter, op string, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		log.Errorf("❌ %s: %v", op, err)
		msg = "internal server error"
	} else {
		log.Warnf("⚠️  %s: %v", op, err)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func badRequest(w http.ResponseWriter, op string, format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	log.Warnf("⚠️  %s: %s", op, msg)
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: msg})
}

func decodeBody(w http.ResponseWriter, r *http.Request, op string, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		badRequest(w, op, "Invalid request body: %v", err)
		return false
	}
	return true
}

// currentUser returns the active user put in the request context by the auth middleware
func currentUser(w http.ResponseWriter, r *http.Request, op string) (string, bool) {
	sess, err := session.FromContext(r.Context())
	if err != nil {
		writeError(w, op, err)
		return "", false
	}
	return sess.Username, true
}

func intParam(w http.ResponseWriter, r *http.Request, op, name string) (int, bool) {
	raw := chi.URLParam(r, name)
	v, err := strconv.Atoi(raw)
	if err != nil {
		badRequest(w, op, "%s must be an integer, got %q", name, raw)
		return 0, false
	}
	return v, true
}

// BearerToken extracts the token of an "Authorization: Bearer <token>" header
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
