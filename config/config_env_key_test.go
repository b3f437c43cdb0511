package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"pubsub": map[string]any{
			"topicId": "",
		},
		"gateway": map[string]any{
			"baseUrl": "",
			"breaker": map[string]any{
				"consecutiveFailures": 5,
			},
		},
		"checkout": map[string]any{
			"fallbackShippingFee": 30000,
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "PUBSUB_TOPICID", want: "pubsub.topicId"},
		{envKey: "GATEWAY_BASEURL", want: "gateway.baseUrl"},
		{envKey: "GATEWAY_BREAKER_CONSECUTIVEFAILURES", want: "gateway.breaker.consecutiveFailures"},
		{envKey: "CHECKOUT_FALLBACKSHIPPINGFEE", want: "checkout.fallbackShippingFee"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestLoadWithEnv_OverridesFromEnvironment(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`
env:
  serviceName: storefront
  log:
    level: info
gateway:
  baseUrl: http://localhost:5000
  timeout: 5s
checkout:
  fallbackShippingFee: 30000
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yaml, 0o600))
	t.Chdir(dir)
	t.Setenv("GATEWAY_BASEURL", "http://backend:8080")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, "storefront", cfg.Env.ServiceName)
	require.NotNil(t, cfg.Gateway)
	assert.Equal(t, "http://backend:8080", cfg.Gateway.BaseURL)
	assert.Equal(t, 5*time.Second, cfg.Gateway.Timeout)
	assert.Equal(t, int64(30000), cfg.Checkout.FallbackShippingFee)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.ErrorContains(t, err, "absent.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}

	applyDefaults(cfg)

	assert.Equal(t, defaultHTTPHost, cfg.HTTP.Host)
	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultGatewayTimeout, cfg.Gateway.Timeout)
	assert.Equal(t, "/api/", cfg.Gateway.APIPrefix)
	assert.Equal(t, StorageProviderBlob, cfg.Storage.Provider)
	assert.Equal(t, defaultStorageBlobURL, cfg.Storage.BlobURL)
	assert.Equal(t, int64(30000), cfg.Checkout.FallbackShippingFee)
	assert.Equal(t, int64(50000), cfg.Checkout.FallbackExpressShippingFee)
	assert.Equal(t, int64(500000), cfg.Checkout.FallbackFreeShippingThreshold)
	assert.Equal(t, defaultPlaceholderImage, cfg.Checkout.PlaceholderImage)
	assert.Equal(t, "1234567890", cfg.BankTransfer.AccountNumber)
	assert.Equal(t, 256, cfg.QRCode.Size)
}
