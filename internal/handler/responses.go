package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/logger"
)

// Standard response types for consistent API responses

// SuccessResponse represents a simple successful operation message
type SuccessResponse struct {
	Message string `json:"message"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// Helper functions for responding

// respondJSON sends a JSON response with the given status code and payload
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	buf := jsonBuffers.Get().(*bytes.Buffer)
	defer releaseJSONBuffer(buf)

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		slog.Error(LogMsgEncodeFailed, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Error(LogMsgWriteFailed, "error", err)
	}
}

// jsonBuffers holds encode buffers; oversized ones are dropped instead of pooled
var jsonBuffers = sync.Pool{New: func() interface{} { return new(bytes.Buffer) }}

const maxPooledJSONBuffer = 64 << 10

func releaseJSONBuffer(buf *bytes.Buffer) {
	if buf.Cap() > maxPooledJSONBuffer {
		return
	}
	buf.Reset()
	jsonBuffers.Put(buf)
}

// respondError sends a JSON error response
func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, ErrorResponse{Error: message})
}

// respondServiceError logs err and writes its mapped status and message.
// Server-side failures log at error, caller mistakes at warn.
func respondServiceError(w http.ResponseWriter, r *http.Request, opName string, err error) {
	status, msg := mapServiceErrorToUserMessage(err)
	log := logger.FromContext(r.Context())
	if status >= http.StatusInternalServerError {
		log.Error(LogMsgServiceError, "op", opName, "error", err, "status", status)
	} else {
		log.Warn(LogMsgClientError, "op", opName, "error", err, "status", status)
	}
	respondError(w, status, msg)
}

// User-facing error messages for service errors
const (
	// Generic messages
	ErrMsgGenericServerError  = "Something went wrong"
	ErrMsgUnknownError        = "Unknown error"
	ErrMsgInvalidRequestError = "Invalid request. Please check your inputs."
	ErrMsgUnavailableError    = "Server is temporarily unavailable. Please try again later."

	// User messages
	ErrMsgUserNotFoundError  = "User not found"
	ErrMsgUsernameTakenError = "Username is already taken"

	// Catalog and ledger messages
	ErrMsgCardNotFoundError      = "Card not found"
	ErrMsgInvalidRarityError     = "Unknown rarity"
	ErrMsgInsufficientCardsError = "Not enough free copies of that card"
	ErrMsgNotCommittedError      = "Not enough copies of that card in the forge"

	// Forge messages
	ErrMsgNothingCommittedError = "Commit at least one card to the forge first"
	ErrMsgEmptyTierError        = "No card exists for that rarity yet"

	// Vault messages
	ErrMsgNotOwnedFreeError = "You don't have a free copy of that card"
	ErrMsgVaultEmptyError   = "That vault slot is empty"

	// Cooldown messages
	ErrMsgOnCooldownError = "Action is on cooldown. Try again later"

	// Theft messages
	ErrMsgNoEligibleVictimError = "Nobody has a card you can steal right now"
	ErrMsgRecordNotFoundError   = "Notification not found"
)

// mapServiceErrorToUserMessage maps domain errors to user-friendly HTTP responses.
// Unknown errors become a generic 500 so internal details never reach clients.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable, ErrMsgUnavailableError
	case errors.Is(err, domain.ErrOnCooldown):
		return http.StatusTooManyRequests, ErrMsgOnCooldownError
	case errors.Is(err, domain.ErrNotOwnedFree):
		return http.StatusConflict, ErrMsgNotOwnedFreeError
	case errors.Is(err, domain.ErrInsufficientQuantity):
		return http.StatusConflict, ErrMsgInsufficientCardsError
	case errors.Is(err, domain.ErrNotCommitted):
		return http.StatusConflict, ErrMsgNotCommittedError
	case errors.Is(err, domain.ErrNothingCommitted):
		return http.StatusConflict, ErrMsgNothingCommittedError
	case errors.Is(err, domain.ErrNoEligibleVictim):
		return http.StatusConflict, ErrMsgNoEligibleVictimError
	case errors.Is(err, domain.ErrUsernameTaken):
		return http.StatusConflict, ErrMsgUsernameTakenError
	case errors.Is(err, domain.ErrVaultEmpty):
		return http.StatusNotFound, ErrMsgVaultEmptyError
	case errors.Is(err, domain.ErrRecordNotFound):
		return http.StatusNotFound, ErrMsgRecordNotFoundError
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, ErrMsgUserNotFoundError
	case errors.Is(err, domain.ErrCardNotFound):
		return http.StatusNotFound, ErrMsgCardNotFoundError
	case errors.Is(err, domain.ErrInvalidRarity):
		return http.StatusBadRequest, ErrMsgInvalidRarityError
	case errors.Is(err, domain.ErrInvalidInput):
		return http.StatusBadRequest, ErrMsgInvalidRequestError
	case errors.Is(err, domain.ErrEmptyTier):
		return http.StatusInternalServerError, ErrMsgEmptyTierError
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
