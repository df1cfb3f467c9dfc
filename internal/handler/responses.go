package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/InventoryApp_Go/internal/domain"
	"github.com/osse101/InventoryApp_Go/internal/logger"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// ItemNotFoundResponse is returned when a catalog lookup misses. Suggestions
// are close names; the lookup itself stays an exact match.
type ItemNotFoundResponse struct {
	Error       string   `json:"error"`
	Suggestions []string `json:"suggestions"`
}

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// bufferPool reduces allocations during JSON encoding
var bufferPool = sync.Pool{
	New: func() any {
		return bytes.NewBuffer(make([]byte, 0, 512))
	},
}

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload any) {
	buf := bufferPool.Get().(*bytes.Buffer)
	defer func() {
		buf.Reset()
		bufferPool.Put(buf)
	}()

	// Encode before writing headers so an encoding failure can still become a 500
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		http.Error(w, ErrMsgGenericServerError, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs a failed service call and maps it to a response.
// Rejections are expected outcomes and logged at Warn; everything else is an Error.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(fmt.Sprintf(LogMsgServiceFailed, opName), "error", err)
	} else {
		log.Warn(fmt.Sprintf(LogMsgServiceRejected, opName), "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"

	ErrMsgInvalidInputError       = "Invalid request. Please check your inputs."
	ErrMsgPlayerNotFoundError     = "Player not found"
	ErrMsgItemNotFoundError       = "Item not found"
	ErrMsgDuplicatePlayerError    = "That name is already taken"
	ErrMsgDuplicateItemError      = "An item with that name already exists"
	ErrMsgInvalidCredentialsError = "Invalid name or password"
	ErrMsgAccessDeniedError       = "Administrator rights required"
	ErrMsgInsufficientFundsError  = "Not enough money"
	ErrMsgNotInInventoryError     = "You don't have that item"
	ErrMsgWalletOverflowError     = "Wallet is full"
	ErrMsgMismatchError           = "Exchange does not balance"
)

// mapServiceErrorToUserMessage converts domain errors to HTTP status codes and
// messages users can act upon. Unknown errors never leak their text.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidInputError
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, ErrMsgInvalidCredentialsError
	case errors.Is(err, domain.ErrAccessDenied):
		return http.StatusForbidden, ErrMsgAccessDeniedError
	case errors.Is(err, domain.ErrPlayerNotFound):
		return http.StatusNotFound, ErrMsgPlayerNotFoundError
	case errors.Is(err, domain.ErrItemNotFound):
		return http.StatusNotFound, ErrMsgItemNotFoundError
	case errors.Is(err, domain.ErrDuplicatePlayer):
		return http.StatusConflict, ErrMsgDuplicatePlayerError
	case errors.Is(err, domain.ErrDuplicateItem):
		return http.StatusConflict, ErrMsgDuplicateItemError
	case errors.Is(err, domain.ErrMismatch):
		return http.StatusUnprocessableEntity, ErrMsgMismatchError
	case errors.Is(err, domain.ErrInsufficientFunds):
		return http.StatusUnprocessableEntity, ErrMsgInsufficientFundsError
	case errors.Is(err, domain.ErrNotInInventory):
		return http.StatusUnprocessableEntity, ErrMsgNotInInventoryError
	case errors.Is(err, domain.ErrWalletOverflow):
		return http.StatusUnprocessableEntity, ErrMsgWalletOverflowError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}

// WriteError sends a JSON error body. Middleware outside this package uses it
// so every error response has the same shape.
func WriteError(w http.ResponseWriter, status int, message string) {
	respondError(w, status, message)
}
