package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/pysugar/kreuzungen-auth/internal/logging"
)

// LoginRedirectHandler sends the user to the provider's consent page.
func LoginRedirectHandler(client TokenExchanger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, client.AuthCodeURL(), http.StatusFound)
	}
}

// OAuthHandler exchanges the form field "code" for tokens and stores the
// athlete's refresh token.
func OAuthHandler(client TokenExchanger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		code := formValue(r, "code")
		if code == "" {
			logging.FromContext(r.Context(), logger).Error("authorization code not provided in callback")
			writeError(w, http.StatusBadRequest, "Authorization code not provided.")
			return
		}

		tok, err := client.ExchangeCode(r.Context(), code)
		if err != nil {
			writeTokenError(w, r, logger, "Error fetching access token.", err)
			return
		}
		writeJSON(w, http.StatusOK, newTokenResponse(tok))
	}
}

// ReOAuthHandler refreshes tokens from the form field "refreshToken".
func ReOAuthHandler(client TokenExchanger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		refreshToken := formValue(r, "refreshToken")
		if refreshToken == "" {
			logging.FromContext(r.Context(), logger).Error("refresh token not provided")
			writeError(w, http.StatusBadRequest, "Refresh token not provided.")
			return
		}

		tok, err := client.RefreshByToken(r.Context(), refreshToken)
		if err != nil {
			writeTokenError(w, r, logger, "Error refreshing access token.", err)
			return
		}
		writeJSON(w, http.StatusOK, newTokenResponse(tok))
	}
}

// AccessTokenHandler returns fresh tokens for the athlete in form field
// "userId", using the refresh token stored at /oauth time.
func AccessTokenHandler(client TokenExchanger, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID := formValue(r, "userId")
		if userID == "" {
			logging.FromContext(r.Context(), logger).Error("user id not provided")
			writeError(w, http.StatusBadRequest, "User ID not provided.")
			return
		}
		if !isAthleteID(userID) {
			logging.FromContext(r.Context(), logger).Warn("malformed user id", zap.String("user_id", userID))
			writeError(w, http.StatusBadRequest, "Invalid user ID.")
			return
		}

		tok, err := client.RefreshByUserID(r.Context(), userID)
		if err != nil {
			writeTokenError(w, r, logger, "Error refreshing access token.", err)
			return
		}
		writeJSON(w, http.StatusOK, newTokenResponse(tok))
	}
}

// isAthleteID reports whether s is a decimal athlete id.
func isAthleteID(s string) bool {
	_, err := strconv.ParseUint(s, 10, 64)
	return err == nil
}

// formValue reads a field from the request body only, never the query string.
func formValue(r *http.Request, key string) string {
	return strings.TrimSpace(r.PostFormValue(key))
}
