package handler

import (
	"net/http"

	"github.com/osse101/CardHeist_Go/internal/catalog"
	"github.com/osse101/CardHeist_Go/internal/ledger"
)

// HandleListCatalog returns every catalog card ordered by id
// @Summary List catalog
// @Tags cards
// @Produce json
// @Success 200 {array} domain.Card
// @Router /cards [get]
func HandleListCatalog(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, c.All())
	}
}

// HandleListCatalogByRarity returns the catalog cards of one tier
// @Summary List catalog tier
// @Tags cards
// @Produce json
// @Param rarity path string true "Rarity" Enums(common, uncommon, rare, epic, legendary)
// @Success 200 {array} domain.Card
// @Failure 400 {object} ErrorResponse
// @Router /cards/{rarity} [get]
func HandleListCatalogByRarity(c *catalog.Catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rarity, ok := rarityParam(w, r)
		if !ok {
			return
		}
		respondJSON(w, http.StatusOK, c.ByRarity(rarity))
	}
}

// HandleListFree returns the acting user's free cards
// @Summary List free cards
// @Description Cards that can be stolen, vaulted or committed
// @Tags cards
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {array} domain.OwnedCard
// @Router /me/cards [get]
func HandleListFree(svc ledger.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cards, err := svc.ListFree(r.Context(), actingUser(r))
		if err != nil {
			respondServiceError(w, r, "List free cards", err)
			return
		}
		respondJSON(w, http.StatusOK, cards)
	}
}
