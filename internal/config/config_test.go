package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, BackendFile, cfg.SaveBackend)
	assert.Equal(t, "record.json", cfg.SaveSlot)
	assert.Equal(t, 6, cfg.DefaultRows)
	assert.Equal(t, 7, cfg.DefaultCols)
	assert.Equal(t, int64(0), cfg.Seed)
	assert.Equal(t, time.Duration(0), cfg.SaveTTL)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LINEUP_SAVE_BACKEND", " Redis ")
	t.Setenv("LINEUP_SAVE_TTL", "90m")
	t.Setenv("LINEUP_SEED", "42")
	t.Setenv("LINEUP_ROWS", "8")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, BackendRedis, cfg.SaveBackend)
	assert.Equal(t, 90*time.Minute, cfg.SaveTTL)
	assert.Equal(t, int64(42), cfg.Seed)
	assert.Equal(t, 8, cfg.DefaultRows)
}

func TestLoadConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"bad int", map[string]string{"LINEUP_ROWS": "six"}, "parse env"},
		{"unknown backend", map[string]string{"LINEUP_SAVE_BACKEND": "s3"}, "unknown save backend"},
		{"postgres without url", map[string]string{"LINEUP_SAVE_BACKEND": "postgres"}, "DATABASE_URL"},
		{"empty slot", map[string]string{"LINEUP_SAVE_SLOT": " "}, "LINEUP_SAVE_SLOT"},
		{"zero columns", map[string]string{"LINEUP_COLS": "0"}, "must be positive"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := LoadConfig()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LINEUP_SAVE_SLOT=from-dotenv.json\n"), 0o644))
	t.Setenv("LINEUP_SAVE_SLOT", "")
	os.Unsetenv("LINEUP_SAVE_SLOT")

	assert.False(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
	require.True(t, LoadDotEnv(path))

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.json", cfg.SaveSlot)
}
