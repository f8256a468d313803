package handler

import (
	"net/http"
	"strings"

	"github.com/osse101/CardHeist_Go/internal/logger"
)

// RequireUser takes the acting user from the trusted X-User-ID header and
// tags the request context with it. Requests without one get a 401.
func RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(HeaderUserID))
		if userID == "" {
			logger.FromContext(r.Context()).Warn(LogMsgMissingUser, "path", r.URL.Path)
			respondError(w, http.StatusUnauthorized, ErrMsgMissingUser)
			return
		}
		ctx := logger.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UserIDFromRequest returns the user resolved by RequireUser
func UserIDFromRequest(r *http.Request) (string, bool) {
	id := logger.GetUserID(r.Context())
	return id, id != ""
}

// actingUser is UserIDFromRequest for handlers mounted behind RequireUser
func actingUser(r *http.Request) string {
	id, _ := UserIDFromRequest(r)
	return id
}
