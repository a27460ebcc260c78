package config_test

import (
	"testing"

	"github.com/phrazzld/user-api/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, 10, cfg.Pagination.DefaultPageSize)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("USERAPI_SERVER_PORT", "9090")
	t.Setenv("USERAPI_SERVER_LOG_LEVEL", "debug")
	t.Setenv("USERAPI_PAGINATION_DEFAULT_PAGE_SIZE", "25")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, 25, cfg.Pagination.DefaultPageSize)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"port out of range", "USERAPI_SERVER_PORT", "99999"},
		{"unknown log level", "USERAPI_SERVER_LOG_LEVEL", "loud"},
		{"non-positive page size", "USERAPI_PAGINATION_DEFAULT_PAGE_SIZE", "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			cfg, err := config.Load()
			require.Error(t, err)
			assert.Nil(t, cfg)
		})
	}
}
