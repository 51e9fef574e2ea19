// internal/api/handler.go
package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/jobprep-bd/backend/internal/app"
	"github.com/jobprep-bd/backend/internal/domain/question"
)

// Handler holds all dependencies needed by HTTP handlers. Instead of relying
// on package-level globals, every handler method receives its dependencies
// through this struct.
type Handler struct {
	state  *app.State
	logger *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(state *app.State, logger *slog.Logger) *Handler {
	return &Handler{
		state:  state,
		logger: logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// respondError writes a JSON error body with the given status code.
func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON decodes the request body into v. Returns false after writing a
// 400 when the body is not valid JSON (caller should return).
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		respondError(w, http.StatusBadRequest, "invalid json")
		return false
	}
	return true
}

type validator interface {
	Validate() error
}

// decodeAndValidate decodes the body and runs the request's Validate method.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v validator) bool {
	if !decodeJSON(w, r, v) {
		return false
	}
	if err := v.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return false
	}
	return true
}

// advisoryNoQuestions is the user-facing message when a quiz is started on an
// empty subcategory. Kept verbatim from the product copy.
const advisoryNoQuestions = "এই সাব-ক্যাটাগরিতে কোনো প্রশ্ন পাওয়া যায়নি!"

// handleAppError maps state-layer errors onto HTTP responses. Returns true if
// an error was handled (caller should return).
func (h *Handler) handleAppError(w http.ResponseWriter, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, app.ErrNoQuestions):
		respondError(w, http.StatusConflict, advisoryNoQuestions)
	case errors.Is(err, app.ErrQuestionNotFound):
		respondError(w, http.StatusNotFound, "question not found")
	case errors.Is(err, app.ErrUnknownCategory),
		errors.Is(err, app.ErrEmptySubCategory),
		errors.Is(err, question.ErrEmptyText),
		errors.Is(err, question.ErrTooFewOptions),
		errors.Is(err, question.ErrAnswerOutOfRange):
		respondError(w, http.StatusBadRequest, err.Error())
	default:
		h.logger.Error("state operation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "internal error")
	}
	return true
}

// requireAdmin gates the destructive admin operations on the profile's
// isAdmin flag. This mirrors the original's UI-routing-level check; it is a
// capability flag, not a real access-control boundary.
func (h *Handler) requireAdmin(w http.ResponseWriter) bool {
	if !h.state.Profile().IsAdmin {
		respondError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}
