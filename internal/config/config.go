// Package config builds the process-wide configuration snapshot from an
// optional YAML file and the environment.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	DefaultStravaAPIURL       = "https://www.strava.com/api/v3"
	DefaultStravaAuthorizeURL = "https://www.strava.com/oauth/authorize"
	DefaultListenAddr         = ":8080"
	DefaultLogLevel           = "info"
	DefaultScopes             = "activity:read,activity:read_all,activity:write"
	DefaultWebhookVerifyToken = "STRAVA"
)

// Environment variable names.
const (
	EnvClientSecret = "STRAVA_API_CLIENT_SECRET"
	EnvClientID     = "STRAVA_CLIENT_ID"
	EnvFrontendURL  = "FRONTEND_HOST_URL"
	EnvStoreURL     = "REDIS_URL"
	EnvAPIURL       = "STRAVA_API_URL"
	EnvAuthorizeURL = "STRAVA_AUTHORIZE_URL"
	EnvListenAddr   = "LISTEN_ADDR"
	EnvLogLevel     = "LOG_LEVEL"

	EnvWebhookVerifyToken = "STRAVA_WEBHOOK_VERIFY_TOKEN"
)

// Config is the immutable configuration snapshot. It is built once at
// startup and passed by pointer to every component.
type Config struct {
	StravaAPIURL       string `yaml:"strava_api_url"`
	StravaAuthorizeURL string `yaml:"strava_authorize_url"`
	ClientID           string `yaml:"client_id"`
	ClientSecret       string `yaml:"client_secret"`
	FrontendURL        string `yaml:"frontend_url"`
	StoreURL           string `yaml:"store_url"`
	ListenAddr         string `yaml:"listen_addr"`
	LogLevel           string `yaml:"log_level"`
	Scopes             string `yaml:"scopes"`
	WebhookVerifyToken string `yaml:"webhook_verify_token"`
}

// Getenv matches os.Getenv so tests can supply a fake environment.
type Getenv func(string) string

// Load reads the optional YAML file at path, applies environment overrides
// and validates the result.
func Load(path string, getenv Getenv) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := &Config{}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file %s: %w", path, err)
		}
	}

	override(&cfg.ClientSecret, getenv(EnvClientSecret))
	override(&cfg.ClientID, getenv(EnvClientID))
	override(&cfg.FrontendURL, getenv(EnvFrontendURL))
	override(&cfg.StoreURL, getenv(EnvStoreURL))
	override(&cfg.StravaAPIURL, getenv(EnvAPIURL))
	override(&cfg.StravaAuthorizeURL, getenv(EnvAuthorizeURL))
	override(&cfg.ListenAddr, getenv(EnvListenAddr))
	override(&cfg.LogLevel, getenv(EnvLogLevel))
	override(&cfg.WebhookVerifyToken, getenv(EnvWebhookVerifyToken))

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func override(dst *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*dst = v
	}
}

func (c *Config) applyDefaults() {
	if c.StravaAPIURL == "" {
		c.StravaAPIURL = DefaultStravaAPIURL
	}
	if c.StravaAuthorizeURL == "" {
		c.StravaAuthorizeURL = DefaultStravaAuthorizeURL
	}
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.Scopes == "" {
		c.Scopes = DefaultScopes
	}
	if c.WebhookVerifyToken == "" {
		c.WebhookVerifyToken = DefaultWebhookVerifyToken
	}
	c.StravaAPIURL = strings.TrimRight(c.StravaAPIURL, "/")
}

// Validate reports every required value that is missing.
func (c *Config) Validate() error {
	var missing []string
	if c.ClientSecret == "" {
		missing = append(missing, EnvClientSecret)
	}
	if c.ClientID == "" {
		missing = append(missing, EnvClientID)
	}
	if c.FrontendURL == "" {
		missing = append(missing, EnvFrontendURL)
	}
	if c.StoreURL == "" {
		missing = append(missing, EnvStoreURL)
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}
	return nil
}

// TokenURL is the provider's token endpoint.
func (c *Config) TokenURL() string {
	return c.StravaAPIURL + "/oauth/token"
}

// RedirectURL is where the provider sends the user back after consent.
func (c *Config) RedirectURL() string {
	return c.frontendBase() + "/index.html?exchange_token"
}

// FeatureURL is the frontend link for a saved feature.
func (c *Config) FeatureURL(id string) string {
	return fmt.Sprintf("%s/index.html?saved=%s", c.frontendBase(), id)
}

// frontendBase is FrontendURL without a trailing slash, for building links.
// FrontendURL itself stays as configured: CORS compares it to Origin verbatim.
func (c *Config) frontendBase() string {
	return strings.TrimRight(c.FrontendURL, "/")
}
