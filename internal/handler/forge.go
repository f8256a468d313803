package handler

import (
	"context"
	"net/http"

	"github.com/osse101/CardHeist_Go/internal/forge"
)

// CardQuantityRequest names a card and how many units to move
type CardQuantityRequest struct {
	CardID   int `json:"card_id" validate:"required,min=1"`
	Quantity int `json:"quantity" validate:"required,min=1,max=10000"`
}

// HandleGetForge returns the committed set and its unmodified preview tier
// @Summary Forge state
// @Tags forge
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {object} domain.ForgePreview
// @Router /me/forge [get]
func HandleGetForge(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		preview, err := svc.Preview(r.Context(), actingUser(r))
		if err != nil {
			respondServiceError(w, r, "Forge preview", err)
			return
		}
		respondJSON(w, http.StatusOK, preview)
	}
}

// HandleForgeCommit moves free units into the forge
// @Summary Commit cards
// @Tags forge
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param request body CardQuantityRequest true "Card and quantity"
// @Success 200 {object} domain.ForgePreview
// @Failure 409 {object} ErrorResponse
// @Router /me/forge/commit [post]
func HandleForgeCommit(svc forge.Service) http.HandlerFunc {
	return handleForgeMove(svc, "Forge commit", func(ctx context.Context, userID string, cardID, qty int) error {
		return svc.Commit(ctx, userID, cardID, qty)
	})
}

// HandleForgeRelease moves committed units back to the free pool
// @Summary Release cards
// @Tags forge
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param request body CardQuantityRequest true "Card and quantity"
// @Success 200 {object} domain.ForgePreview
// @Failure 409 {object} ErrorResponse
// @Router /me/forge/release [post]
func HandleForgeRelease(svc forge.Service) http.HandlerFunc {
	return handleForgeMove(svc, "Forge release", func(ctx context.Context, userID string, cardID, qty int) error {
		return svc.Release(ctx, userID, cardID, qty)
	})
}

// handleForgeMove runs move and answers with the updated forge preview
func handleForgeMove(svc forge.Service, opName string, move func(context.Context, string, int, int) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CardQuantityRequest
		if err := DecodeAndValidateRequest(r, w, &req, opName); err != nil {
			return
		}

		userID := actingUser(r)
		if err := move(r.Context(), userID, req.CardID, req.Quantity); err != nil {
			respondServiceError(w, r, opName, err)
			return
		}

		preview, err := svc.Preview(r.Context(), userID)
		if err != nil {
			respondServiceError(w, r, opName, err)
			return
		}
		respondJSON(w, http.StatusOK, preview)
	}
}

// HandleForgeExecute consumes the committed set and awards one card
// @Summary Execute forge
// @Tags forge
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {object} domain.ForgeResult
// @Failure 409 {object} ErrorResponse
// @Router /me/forge/execute [post]
func HandleForgeExecute(svc forge.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Execute(r.Context(), actingUser(r))
		if err != nil {
			respondServiceError(w, r, "Forge execute", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}
