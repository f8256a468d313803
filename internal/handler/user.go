package handler

import (
	"net/http"

	"github.com/osse101/CardHeist_Go/internal/logger"
	"github.com/osse101/CardHeist_Go/internal/user"
)

// RegisterUserRequest is the body of POST /users
type RegisterUserRequest struct {
	Username string `json:"username" validate:"required,max=32,username"`
}

// ConnectionResponse reports the updated connection counter
type ConnectionResponse struct {
	Message         string `json:"message"`
	ConnectionCount int    `json:"connection_count"`
}

// HandleRegisterUser creates a user and grants the starter pack
// @Summary Register user
// @Description Creates a user with open cooldowns and a pack of random common cards
// @Tags users
// @Accept json
// @Produce json
// @Param request body RegisterUserRequest true "Username"
// @Success 201 {object} domain.Registration
// @Failure 400 {object} ValidationErrorResponse
// @Failure 409 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /users [post]
func HandleRegisterUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterUserRequest
		if err := DecodeAndValidateRequest(r, w, &req, "Register user"); err != nil {
			return
		}

		reg, err := svc.Register(r.Context(), req.Username)
		if err != nil {
			respondServiceError(w, r, "Register user", err)
			return
		}

		respondJSON(w, http.StatusCreated, reg)
	}
}

// HandleGetProfile returns the acting user's profile
// @Summary Get profile
// @Tags users
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {object} domain.UserProfile
// @Failure 404 {object} ErrorResponse
// @Router /me [get]
func HandleGetProfile(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		profile, err := svc.Profile(r.Context(), actingUser(r))
		if err != nil {
			respondServiceError(w, r, "Get profile", err)
			return
		}
		respondJSON(w, http.StatusOK, profile)
	}
}

// HandleDeleteUser deletes the acting user with all cards, vault slots and theft records
// @Summary Delete account
// @Tags users
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {object} SuccessResponse
// @Failure 404 {object} ErrorResponse
// @Router /me [delete]
func HandleDeleteUser(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := svc.Delete(r.Context(), actingUser(r)); err != nil {
			respondServiceError(w, r, "Delete user", err)
			return
		}
		logger.FromContext(r.Context()).Info(MsgUserDeleted)
		respondJSON(w, http.StatusOK, SuccessResponse{Message: MsgUserDeleted})
	}
}

// HandleRecordConnection counts a new session for the acting user
// @Summary Record connection
// @Tags users
// @Produce json
// @Param X-User-ID header string true "Acting user"
// @Success 200 {object} ConnectionResponse
// @Failure 404 {object} ErrorResponse
// @Router /me/connections [post]
func HandleRecordConnection(svc user.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		count, err := svc.RecordConnection(r.Context(), actingUser(r))
		if err != nil {
			respondServiceError(w, r, "Record connection", err)
			return
		}
		respondJSON(w, http.StatusOK, ConnectionResponse{Message: MsgConnectionRecorded, ConnectionCount: count})
	}
}
