package handler

import (
	"net/http"

	"github.com/osse101/CardHeist_Go/internal/theft"
)

// HandleTheft steals one free card from a random other user
// @Summary Steal a card
// @Tags theft
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {object} domain.TheftResult
// @Failure 409 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /me/thefts [post]
func HandleTheft(svc theft.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.Execute(r.Context(), actingUser(r))
		if err != nil {
			respondServiceError(w, r, "Theft", err)
			return
		}
		respondJSON(w, http.StatusOK, result)
	}
}

// HandleListNotifications returns thefts committed against the acting user, newest first
// @Summary List theft notifications
// @Tags theft
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {array} domain.TheftNotification
// @Router /me/notifications [get]
func HandleListNotifications(theftLog theft.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		notes, err := theftLog.List(r.Context(), actingUser(r))
		if err != nil {
			respondServiceError(w, r, "List notifications", err)
			return
		}
		respondJSON(w, http.StatusOK, notes)
	}
}

// HandleDeleteNotification dismisses one of the acting user's theft records
// @Summary Dismiss notification
// @Tags theft
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Param id path int true "Notification ID"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /me/notifications/{id} [delete]
func HandleDeleteNotification(theftLog theft.Log) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := int64Param(w, r, PathParamID, ErrMsgInvalidRecordID)
		if !ok {
			return
		}
		if err := theftLog.Delete(r.Context(), actingUser(r), id); err != nil {
			respondServiceError(w, r, "Delete notification", err)
			return
		}
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgNotificationDeleted})
	}
}
