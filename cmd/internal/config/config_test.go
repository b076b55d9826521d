package config

import (
	"testing"
	"time"

	"github.com/labstack/gommon/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mnsreestr/cmd/internal/infrastructure/mnsra"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"PORT", "AWS_SSM_REGION", "MNS_BASE_URL", "MNS_USER_AGENT", "MNS_TIMEOUT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Port)
	assert.Equal(t, ":8987", cfg.Address())
	assert.Equal(t, DefaultSSMRegion, SSMRegion())
	assert.Equal(t, log.INFO, cfg.LogLevel)
	assert.Equal(t, mnsra.DefaultBaseURL, cfg.Registry.BaseURL)
	assert.Equal(t, mnsra.DefaultUserAgent, cfg.Registry.UserAgent)
	assert.Equal(t, mnsra.DefaultTimeout, cfg.Registry.Timeout)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("MNS_BASE_URL", "http://localhost:8080")
	t.Setenv("MNS_USER_AGENT", "relay/1.0")
	t.Setenv("MNS_TIMEOUT", "3s")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("AWS_SSM_REGION", "eu-central-1")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Address())
	assert.Equal(t, "http://localhost:8080", cfg.Registry.BaseURL)
	assert.Equal(t, "relay/1.0", cfg.Registry.UserAgent)
	assert.Equal(t, 3*time.Second, cfg.Registry.Timeout)
	assert.Equal(t, log.DEBUG, cfg.LogLevel)
	assert.Equal(t, "eu-central-1", SSMRegion())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"MNS_TIMEOUT", "soon"},
		{"MNS_TIMEOUT", "-1s"},
		{"MNS_BASE_URL", "mns-ra.org"},
		{"LOG_LEVEL", "verbose"},
	}

	for _, test := range tests {
		t.Run(test.key+"="+test.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(test.key, test.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
