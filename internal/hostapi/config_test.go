package hostapi

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("GOVIET_DBUS_SERVICE")
	os.Unsetenv("GOVIET_HTTP_ADDR")
	os.Unsetenv("GOVIET_RATE_LIMIT_RPS")

	cfg := Load()
	require.Equal(t, "com.github.goviet.ime", cfg.DBusServiceName)
	require.Equal(t, ":8787", cfg.HTTPAddr)
	require.Equal(t, 50, cfg.RateLimitRPS)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("GOVIET_HTTP_ADDR", ":9999")
	t.Setenv("GOVIET_RATE_LIMIT_RPS", "10")

	cfg := Load()
	require.Equal(t, ":9999", cfg.HTTPAddr)
	require.Equal(t, 10, cfg.RateLimitRPS)
}

func TestLoad_IgnoresInvalidRateLimit(t *testing.T) {
	t.Setenv("GOVIET_RATE_LIMIT_RPS", "not-a-number")
	cfg := Load()
	require.Equal(t, 50, cfg.RateLimitRPS)
}
