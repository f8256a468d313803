package handler

import (
	"net/http"

	"github.com/osse101/CardHeist_Go/internal/vault"
)

// VaultStoreRequest is the body of POST /me/vault
type VaultStoreRequest struct {
	CardID int `json:"card_id" validate:"required,min=1"`
}

// HandleListVault returns the acting user's vaulted cards, one per rarity at most
// @Summary List vault
// @Tags vault
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {array} domain.Card
// @Router /me/vault [get]
func HandleListVault(svc vault.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := svc.List(r.Context(), actingUser(r))
		if err != nil {
			respondServiceError(w, r, "List vault", err)
			return
		}
		respondJSON(w, http.StatusOK, cards)
	}
}

// HandleVaultStore protects one free unit, returning any previous occupant to the free pool
// @Summary Store card in vault
// @Tags vault
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param request body VaultStoreRequest true "Card"
// @Success 200 {object} domain.VaultStoreResult
// @Failure 409 {object} ErrorResponse
// @Router /me/vault [post]
func HandleVaultStore(svc vault.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req VaultStoreRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Vault store"); err != nil {
			return
		}

		result, err := svc.Store(r.Context(), actingUser(r), req.CardID)
		if err != nil {
			respondServiceError(w, r, "Vault store", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleVaultRelease empties the slot for a rarity back into the free pool
// @Summary Release vault slot
// @Tags vault
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param rarity path string true "Rarity" Enums(common, uncommon, rare, epic, legendary)
// @Success 200 {object} domain.Card
// @Failure 404 {object} ErrorResponse
// @Router /me/vault/{rarity} [delete]
func HandleVaultRelease(svc vault.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rarity, ok := rarityParam(w, r)
		if !ok {
			return
		}

		card, err := svc.Release(r.Context(), actingUser(r), rarity)
		if err != nil {
			respondServiceError(w, r, "Vault release", err)
			return
		}
		respondJSON(w, http.StatusOK, card)
	}
}
