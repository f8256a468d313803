package handler

import (
	"net/http"

	"github.com/osse101/CardHeist_Go/internal/drop"
)

// HandleDrop grants one random common card when the drop cooldown has elapsed
// @Summary Claim drop
// @Tags drop
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {object} domain.DropResult
// @Failure 429 {object} ErrorResponse
// @Router /me/drop [post]
func HandleDrop(svc drop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Execute(r.Context(), actingUser(r))
		if err != nil {
			respondServiceError(w, r, "Drop", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleDropStatus reports when the next drop is available
// @Summary Drop status
// @Tags drop
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {object} domain.DropStatus
// @Router /me/drop [get]
func HandleDropStatus(svc drop.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, err := svc.Status(r.Context(), actingUser(r))
		if err != nil {
			respondServiceError(w, r, "Drop status", err)
			return
		}
		respondJSON(w, http.StatusOK, status)
	}
}
