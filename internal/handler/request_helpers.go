package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/CardHeist_Go/internal/domain"
	"github.com/osse101/CardHeist_Go/internal/logger"
)

// DecodeAndValidateRequest decodes a JSON request body and validates it.
// actionName is a human-readable label used in logs (e.g. "Forge commit").
//
// If this function returns an error, the HTTP response has already been written and the handler should return.
//
// Example usage:
//
//	var req CardQuantityRequest
//	if err := DecodeAndValidateRequest(r, w, &req, "Forge commit"); err != nil {
//	    return
//	}
func DecodeAndValidateRequest(r *http.Request, w http.ResponseWriter, req interface{}, actionName string) error {
	log := logger.FromContext(r.Context())

	if err := json.NewDecoder(r.Body).Decode(req); err != nil {
		log.Warn(fmt.Sprintf("Failed to decode %s request", actionName), "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return err
	}

	log.Debug(fmt.Sprintf("%s request decoded", actionName))

	if err := GetValidator().ValidateStruct(req); err != nil {
		respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
			Error:  ErrMsgInvalidRequestSummary,
			Fields: FormatValidationError(err),
		})
		return err
	}

	return nil
}

// ValidationErrorResponse defines the response structure for validation errors
type ValidationErrorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// rarityParam parses the {rarity} path segment, writing a 400 when it is unknown
func rarityParam(w http.ResponseWriter, r *http.Request) (domain.Rarity, bool) {
	rarity, err := domain.ParseRarity(chi.URLParam(r, PathParamRarity))
	if err != nil {
		logger.FromContext(r.Context()).Warn(LogMsgClientError, "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRarityParam)
		return "", false
	}
	return rarity, true
}

// int64Param parses a positive numeric path segment
func int64Param(w http.ResponseWriter, r *http.Request, name, errMsg string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		respondError(w, http.StatusBadRequest, errMsg)
		return 0, false
	}
	return id, true
}
