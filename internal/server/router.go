// Package server wires the HTTP routes.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pysugar/kreuzungen-auth/internal/config"
	"github.com/pysugar/kreuzungen-auth/internal/metrics"
	"github.com/pysugar/kreuzungen-auth/internal/proxy/handlers"
	"github.com/pysugar/kreuzungen-auth/internal/proxy/middleware"
)

// Deps are the components the router dispatches to.
type Deps struct {
	Config   *config.Config
	Tokens   handlers.TokenExchanger
	Features handlers.FeatureStore
	Store    handlers.Pinger
	Logger   *zap.Logger
	Metrics  *metrics.Metrics // optional
}

// NewRouter builds the service's HTTP handler.
func NewRouter(d Deps) http.Handler {
	r := chi.NewRouter()
	// Recoverer sits innermost so a panic still leaves with CORS headers
	// and an access-log line.
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(d.Logger, d.Metrics))
	r.Use(middleware.CORS(d.Config.FrontendURL))
	r.Use(chimiddleware.Recoverer)

	// OAuth flow
	r.Get("/", handlers.LoginRedirectHandler(d.Tokens))
	r.Post("/oauth", handlers.OAuthHandler(d.Tokens, d.Logger))
	r.Post("/reoauth", handlers.ReOAuthHandler(d.Tokens, d.Logger))
	r.Post("/access_token", handlers.AccessTokenHandler(d.Tokens, d.Logger))

	// Saved features
	r.Post("/save_geojson_feature", handlers.SaveFeatureHandler(d.Features, d.Config.FeatureURL, d.Logger))
	r.Get("/get_geojson_feature", handlers.GetFeatureHandler(d.Features, d.Logger))

	// Activity webhook
	r.Get("/webhook", handlers.WebhookVerifyHandler(d.Config.WebhookVerifyToken, d.Logger))
	r.Post("/webhook", handlers.WebhookEventHandler(d.Logger))

	// Operations
	r.Get("/healthz", handlers.HealthHandler(d.Store, d.Logger))
	if d.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", d.Metrics.Handler())
	}

	return r
}
