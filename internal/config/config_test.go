package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeEnv(values map[string]string) Getenv {
	return func(key string) string { return values[key] }
}

func requiredEnv() map[string]string {
	return map[string]string{
		EnvClientSecret: "secret",
		EnvClientID:     "1234",
		EnvFrontendURL:  "https://kreuzungen.world/",
		EnvStoreURL:     "redis://localhost:6379/0",
	}
}

func TestLoad_FromEnvironment(t *testing.T) {
	cfg, err := Load("", fakeEnv(requiredEnv()))
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.ClientSecret)
	assert.Equal(t, "1234", cfg.ClientID)
	assert.Equal(t, "https://kreuzungen.world/", cfg.FrontendURL, "frontend origin is kept verbatim")
	assert.Equal(t, DefaultWebhookVerifyToken, cfg.WebhookVerifyToken)
	assert.Equal(t, DefaultStravaAPIURL, cfg.StravaAPIURL)
	assert.Equal(t, DefaultListenAddr, cfg.ListenAddr)
	assert.Equal(t, "https://www.strava.com/api/v3/oauth/token", cfg.TokenURL())
	assert.Equal(t, "https://kreuzungen.world/index.html?exchange_token", cfg.RedirectURL())
	assert.Equal(t, "https://kreuzungen.world/index.html?saved=brave_red_fox", cfg.FeatureURL("brave_red_fox"))
}

func TestLoad_MissingRequired(t *testing.T) {
	env := requiredEnv()
	delete(env, EnvClientSecret)
	delete(env, EnvStoreURL)

	_, err := Load("", fakeEnv(env))
	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvClientSecret)
	assert.Contains(t, err.Error(), EnvStoreURL)
	assert.NotContains(t, err.Error(), EnvClientID)
}

func TestLoad_FileWithEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
client_id: "from-file"
client_secret: "file-secret"
frontend_url: "http://localhost:3000"
store_url: "sqlite://kv.db"
listen_addr: "127.0.0.1:9000"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path, fakeEnv(map[string]string{EnvClientID: "from-env"}))
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.ClientID)
	assert.Equal(t, "file-secret", cfg.ClientSecret)
	assert.Equal(t, "sqlite://kv.db", cfg.StoreURL)
	assert.Equal(t, "127.0.0.1:9000", cfg.ListenAddr)
}

func TestLoad_BadFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), fakeEnv(requiredEnv()))
	require.Error(t, err)
}

func TestLoad_FrontendWithoutTrailingSlash(t *testing.T) {
	env := requiredEnv()
	env[EnvFrontendURL] = "http://localhost:3000"
	env[EnvWebhookVerifyToken] = "hub-secret"

	cfg, err := Load("", fakeEnv(env))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.FrontendURL)
	assert.Equal(t, "http://localhost:3000/index.html?exchange_token", cfg.RedirectURL())
	assert.Equal(t, "http://localhost:3000/index.html?saved=calm_blue_otter", cfg.FeatureURL("calm_blue_otter"))
	assert.Equal(t, "hub-secret", cfg.WebhookVerifyToken)
}
