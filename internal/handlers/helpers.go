package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Kenji-One/tikd/internal/models"
)

// writeJSON writes a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Failed to encode JSON response: %v", err)
	}
}

// decodeJSON decodes a request body into dst, reporting a decode
// failure as a reason the caller can map to a 400 rather than silently
// defaulting to an empty value
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON body", models.ErrInvalidInput)
	}
	return nil
}

// statusForError maps application errors to HTTP status codes
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidInput),
		errors.Is(err, models.ErrEmptyCart),
		errors.Is(err, models.ErrMixedCurrency):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrTicketTypeNotFound),
		errors.Is(err, models.ErrFriendshipNotFound),
		errors.Is(err, models.ErrUserNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrDuplicateCoupon),
		errors.Is(err, models.ErrDuplicateEntry),
		errors.Is(err, models.ErrPriceDrift):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// writeError classifies an error and writes the JSON error response.
// Unexpected errors are logged and reported with a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := statusForError(err)
	message := err.Error()

	if status == http.StatusInternalServerError {
		log.Printf("Internal error: %v", err)
		if errors.Is(err, models.ErrPaymentProvider) {
			message = "payment could not be processed, please try again"
		} else {
			message = "internal server error"
		}
	}

	writeJSON(w, status, map[string]string{"error": message})
}
