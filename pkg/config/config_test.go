package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvServiceURL, " https://example.openai.azure.com ")
	t.Setenv(EnvServiceKey, "secret")
	t.Setenv(EnvDeployment, "")
	t.Setenv(EnvAPIVersion, "")

	cfg := FromEnv()
	assert.Equal(t, "https://example.openai.azure.com", cfg.Endpoint)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Empty(t, cfg.Deployment)
}

func TestNormalizeDefaults(t *testing.T) {
	cfg := Normalize(Config{
		Endpoint: " https://example ",
		APIKey:   " key ",
		Timeout:  -time.Second,
	})
	assert.Equal(t, "https://example", cfg.Endpoint)
	assert.Equal(t, "key", cfg.APIKey)
	assert.Equal(t, DefaultDeployment, cfg.Deployment)
	assert.Equal(t, DefaultAPIVersion, cfg.APIVersion)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
}

func TestNormalizeKeepsExplicitValues(t *testing.T) {
	cfg := Normalize(Config{
		Deployment: "gpt-4o",
		APIVersion: "2024-10-21",
		Timeout:    time.Minute,
	})
	assert.Equal(t, "gpt-4o", cfg.Deployment)
	assert.Equal(t, "2024-10-21", cfg.APIVersion)
	assert.Equal(t, time.Minute, cfg.Timeout)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		missing string
	}{
		{name: "missing endpoint", cfg: Config{APIKey: "k"}, missing: EnvServiceURL},
		{name: "missing key", cfg: Config{Endpoint: "https://example"}, missing: EnvServiceKey},
		{name: "complete", cfg: Config{Endpoint: "https://example", APIKey: "k"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.missing == "" {
				require.NoError(t, err)
				return
			}
			var cfgErr *Error
			require.ErrorAs(t, err, &cfgErr)
			assert.Equal(t, tt.missing, cfgErr.Missing)
			assert.Contains(t, err.Error(), "is not set")
		})
	}
}
