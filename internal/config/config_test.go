package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"moyudiary/internal/infrastructure/gemini"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, EnvLocal, cfg.Env)
	assert.Equal(t, "localhost:8080", cfg.Server.RunAddress)
	assert.Equal(t, "sqlite", cfg.Storage.Driver)
	assert.Equal(t, "data/moyu.db", cfg.Storage.DataPath)
	assert.Equal(t, "moyu_", cfg.Storage.KeyPrefix)
	assert.Equal(t, gemini.DefaultModel, cfg.Comment.Model)
	assert.Equal(t, gemini.DefaultBaseURL, cfg.Comment.BaseURL)
	assert.Equal(t, 8*time.Second, cfg.Comment.Timeout)
	assert.Equal(t, 100*time.Millisecond, cfg.Ticker.Interval)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Comment.APIKey)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	t.Setenv("RUN_ADDRESS", ":9000")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("DATABASE_URI", "postgres://u:p@localhost:5432/moyu")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("COMMENT_TIMEOUT", "3s")
	t.Setenv("TICK_INTERVAL", "250ms")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, EnvProd, cfg.Env)
	assert.Equal(t, ":9000", cfg.Server.RunAddress)
	assert.Equal(t, "postgres", cfg.Storage.Driver)
	assert.Equal(t, "postgres://u:p@localhost:5432/moyu", cfg.Storage.DatabaseURI)
	assert.Equal(t, "secret", cfg.Comment.APIKey)
	assert.Equal(t, 3*time.Second, cfg.Comment.Timeout)
	assert.Equal(t, 250*time.Millisecond, cfg.Ticker.Interval)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "moyu.yaml")
	content := "storage_driver: memory\ngemini_model: gemini-1.5-flash\nrun_address: 127.0.0.1:7070\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("RUN_ADDRESS", ":8081")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Storage.Driver)
	assert.Equal(t, "gemini-1.5-flash", cfg.Comment.Model)
	// окружение важнее файла
	assert.Equal(t, ":8081", cfg.Server.RunAddress)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "unknown env", env: map[string]string{"APP_ENV": "staging"}},
		{name: "unknown driver", env: map[string]string{"STORAGE_DRIVER": "redis"}},
		{name: "postgres without uri", env: map[string]string{"STORAGE_DRIVER": "postgres"}},
		{name: "zero timeout", env: map[string]string{"COMMENT_TIMEOUT": "0s"}},
		{name: "negative tick", env: map[string]string{"TICK_INTERVAL": "-1s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load("")
			assert.Error(t, err)
		})
	}
}
