package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CHECKOUT_LOG_LEVEL", "")
	t.Setenv("PAYMENT_API_LIST_URL", "")

	cfg, err := NewConfigLoader("exampleshop").WithEnvFiles().Load()
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 30, cfg.ListAPI.TimeoutSeconds)
	assert.Equal(t, "CHARGE", cfg.Session.OperationType)
	assert.Equal(t, "Sunglasses", cfg.Shop.ProductName)
	assert.False(t, cfg.Datadog.Enabled())
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("CHECKOUT_LOG_LEVEL", "debug")
	t.Setenv("LIST_API_TIMEOUT_SECONDS", "5")
	t.Setenv("DD_API_KEY", "api")
	t.Setenv("DD_APPLICATION_KEY", "app")

	cfg, err := NewConfigLoader("exampleshop").WithEnvFiles().Load()
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 5, cfg.ListAPI.TimeoutSeconds)
	assert.True(t, cfg.Datadog.Enabled())
}

func TestEnvFileDoesNotOverrideProcessEnv(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env.examplecheckout")
	content := "MERCHANT_CODE=from-file\nMERCHANT_PAYMENT_TOKEN=token-from-file\n"
	require.NoError(t, os.WriteFile(envFile, []byte(content), 0o600))

	t.Setenv("MERCHANT_CODE", "from-env")
	// Registers cleanup for the variable the file is about to set.
	t.Setenv("MERCHANT_PAYMENT_TOKEN", "")
	require.NoError(t, os.Unsetenv("MERCHANT_PAYMENT_TOKEN"))

	cfg, err := NewConfigLoader("examplecheckout").
		WithEnvFiles(filepath.Join(dir, "missing.env"), envFile).
		Load()
	require.NoError(t, err)

	assert.Equal(t, "from-env", cfg.Session.MerchantCode)
	assert.Equal(t, "token-from-file", cfg.Session.PaymentToken)
}
