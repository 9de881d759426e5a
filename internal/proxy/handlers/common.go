package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/pysugar/kreuzungen-auth/internal/auth/strava"
	"github.com/pysugar/kreuzungen-auth/internal/logging"
	"go.uber.org/zap"
)

// StatusClientClosedRequest is recorded when the caller went away before a
// response could be produced. Nobody reads the body.
const StatusClientClosedRequest = 499

// TokenExchanger is the OAuth client the token routes depend on.
type TokenExchanger interface {
	AuthCodeURL() string
	ExchangeCode(ctx context.Context, code string) (*strava.Token, error)
	RefreshByToken(ctx context.Context, refreshToken string) (*strava.Token, error)
	RefreshByUserID(ctx context.Context, userID string) (*strava.Token, error)
}

// FeatureStore is the feature service the GeoJSON routes depend on.
type FeatureStore interface {
	Save(ctx context.Context, payload []byte) (string, error)
	Get(ctx context.Context, id string) ([]byte, error)
}

// tokenResponse is the body returned by every token route.
type tokenResponse struct {
	ExpiresAt    int64  `json:"expires_at"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

func newTokenResponse(tok *strava.Token) tokenResponse {
	return tokenResponse{
		ExpiresAt:    tok.ExpiresAt,
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
	}
}

// writeJSON encodes v with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": msg}.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeTokenError maps an OAuth client error to a response. Upstream
// rejections keep the provider's status code with a generic message.
func writeTokenError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, msg string, err error) {
	log := logging.FromContext(r.Context(), logger)

	var upErr *strava.UpstreamError
	switch {
	case errors.As(err, &upErr):
		log.Error(msg, zap.Int("status", upErr.Status))
		writeError(w, upErr.Status, msg)
	case errors.Is(err, strava.ErrNotFound):
		log.Warn("no stored credential", zap.Error(err))
		writeError(w, http.StatusNotFound, "User not found.")
	case errors.Is(err, strava.ErrStore):
		log.Error("credential store failure", zap.Error(err))
		writeError(w, http.StatusInternalServerError, msg)
	case errors.Is(err, context.Canceled):
		log.Info("request canceled by client")
		w.WriteHeader(StatusClientClosedRequest)
	default:
		log.Error(msg, zap.Error(err))
		writeError(w, http.StatusBadGateway, msg)
	}
}
