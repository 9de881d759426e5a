package strava

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/pysugar/kreuzungen-auth/internal/config"
	"github.com/pysugar/kreuzungen-auth/internal/kv"
	"github.com/pysugar/kreuzungen-auth/internal/logging"
	"github.com/pysugar/kreuzungen-auth/internal/metrics"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

// DefaultTimeout bounds each call to the token endpoint.
const DefaultTimeout = 30 * time.Second

// Token is the subset of the token response returned to callers.
type Token struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresAt    int64  `json:"expires_at"`
	// UserID is the athlete id; only set by ExchangeCode.
	UserID string `json:"-"`
}

// Client talks to the Strava token endpoint and persists refresh tokens.
type Client struct {
	oauth      *oauth2.Config
	store      kv.Store
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *metrics.Metrics
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client used for token requests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithMetrics records upstream outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// NewClient creates a client for the provider described by cfg.
func NewClient(cfg *config.Config, store kv.Store, logger *zap.Logger, opts ...Option) *Client {
	c := &Client{
		oauth:      NewOAuthConfig(cfg),
		store:      store,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ExchangeCode trades an authorization code for tokens and stores the
// athlete's refresh token.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*Token, error) {
	log := logging.FromContext(ctx, c.logger)

	raw, err := c.oauth.Exchange(c.withHTTPClient(ctx), code)
	if err != nil {
		return nil, c.upstreamFailure(log, GrantAuthorizationCode, err)
	}

	userID, err := athleteID(raw)
	if err != nil {
		c.metrics.ObserveUpstream(GrantAuthorizationCode, "malformed")
		return nil, err
	}
	if raw.RefreshToken == "" {
		c.metrics.ObserveUpstream(GrantAuthorizationCode, "malformed")
		return nil, fmt.Errorf("%w: missing refresh_token", ErrMalformedResponse)
	}
	c.metrics.ObserveUpstream(GrantAuthorizationCode, "ok")
	log.Info("oauth token exchange successful")

	// The code is spent once the provider accepts it, so the save must
	// survive the caller going away.
	if err := c.store.Set(context.WithoutCancel(ctx), userID, []byte(raw.RefreshToken)); err != nil {
		return nil, fmt.Errorf("%w: persist refresh token for user %s: %w", ErrStore, userID, err)
	}
	log.Info("refresh token saved", zap.String("user_id", userID))

	tok := toToken(raw)
	tok.UserID = userID
	return tok, nil
}

// RefreshByToken trades a refresh token for a fresh access token. Nothing is
// persisted since the owning athlete is unknown.
func (c *Client) RefreshByToken(ctx context.Context, refreshToken string) (*Token, error) {
	raw, err := c.refresh(ctx, refreshToken)
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx, c.logger).Info("oauth token refresh successful")
	return toToken(raw), nil
}

// RefreshByUserID refreshes using the stored refresh token for userID and
// stores the rotated refresh token when the provider issues a new one.
func (c *Client) RefreshByUserID(ctx context.Context, userID string) (*Token, error) {
	log := logging.FromContext(ctx, c.logger).With(zap.String("user_id", userID))

	stored, err := c.store.Get(ctx, userID)
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: load refresh token for user %s: %w", ErrStore, userID, err)
	}

	raw, err := c.refresh(ctx, string(stored))
	if err != nil {
		return nil, err
	}

	if raw.RefreshToken != "" && raw.RefreshToken != string(stored) {
		if err := c.store.Set(context.WithoutCancel(ctx), userID, []byte(raw.RefreshToken)); err != nil {
			// The new access token is still valid; the old refresh token may
			// keep working until the provider revokes it.
			log.Error("failed to store rotated refresh token", zap.Error(err))
		} else {
			log.Info("rotated refresh token saved")
		}
	}
	log.Info("oauth token refresh successful")
	return toToken(raw), nil
}

func (c *Client) refresh(ctx context.Context, refreshToken string) (*oauth2.Token, error) {
	src := c.oauth.TokenSource(c.withHTTPClient(ctx), &oauth2.Token{RefreshToken: refreshToken})
	raw, err := src.Token()
	if err != nil {
		return nil, c.upstreamFailure(logging.FromContext(ctx, c.logger), GrantRefreshToken, err)
	}
	c.metrics.ObserveUpstream(GrantRefreshToken, "ok")
	return raw, nil
}

func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// upstreamFailure converts an oauth2 error into an *UpstreamError when the
// endpoint answered with a status, or wraps the transport error otherwise.
func (c *Client) upstreamFailure(log *zap.Logger, grant string, err error) error {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) && re.Response != nil {
		c.metrics.ObserveUpstream(grant, "upstream_error")
		log.Error("token request rejected",
			zap.String("grant_type", grant),
			zap.Int("status", re.Response.StatusCode),
			zap.String("upstream_body", logging.TruncateBody(re.Body)))
		return &UpstreamError{Status: re.Response.StatusCode, Body: re.Body}
	}
	c.metrics.ObserveUpstream(grant, "transport_error")
	log.Error("token request failed", zap.String("grant_type", grant), zap.Error(err))
	return fmt.Errorf("token request (%s): %w", grant, err)
}

func toToken(raw *oauth2.Token) *Token {
	return &Token{
		AccessToken:  raw.AccessToken,
		RefreshToken: raw.RefreshToken,
		ExpiresAt:    expiresAt(raw),
	}
}

// expiresAt prefers the provider's absolute expires_at over the expiry
// oauth2 derives from expires_in.
func expiresAt(raw *oauth2.Token) int64 {
	if v, ok := intExtra(raw.Extra("expires_at")); ok {
		return v
	}
	if raw.Expiry.IsZero() {
		return 0
	}
	return raw.Expiry.Unix()
}

func athleteID(raw *oauth2.Token) (string, error) {
	athlete, ok := raw.Extra("athlete").(map[string]interface{})
	if !ok {
		return "", fmt.Errorf("%w: missing athlete", ErrMalformedResponse)
	}
	id, ok := intExtra(athlete["id"])
	if !ok {
		return "", fmt.Errorf("%w: missing athlete.id", ErrMalformedResponse)
	}
	return strconv.FormatInt(id, 10), nil
}

func intExtra(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case float64:
		return int64(n), true
	case json.Number:
		i, err := n.Int64()
		return i, err == nil
	case string:
		i, err := strconv.ParseInt(n, 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}
