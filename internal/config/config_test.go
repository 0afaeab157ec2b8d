package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o644))
	return dir
}

func TestLoadConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: \"9090\"\n")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, StoreMemory, cfg.Quiz.Store)
	assert.Equal(t, 70, cfg.Quiz.PassingScore)
	assert.Equal(t, "demo-user", cfg.Auth.DemoUserID)
	assert.False(t, cfg.NeedsDatabase())
	assert.False(t, cfg.NeedsRedis())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), cfg.File)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, "quiz:\n  store: memory\n")

	t.Setenv("QUIZ_STORE", "redis")
	t.Setenv("REDIS_HOST", "cache.internal")

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, StoreRedis, cfg.Quiz.Store)
	assert.Equal(t, "cache.internal", cfg.Redis.Host)
	assert.True(t, cfg.NeedsRedis())
}

func TestLoadConfig_Validation(t *testing.T) {
	t.Run("unknown store", func(t *testing.T) {
		dir := writeConfig(t, "quiz:\n  store: etcd\n")
		_, err := LoadConfig(dir)
		assert.ErrorContains(t, err, "unknown quiz store")
	})

	t.Run("auth without secret", func(t *testing.T) {
		dir := writeConfig(t, "auth:\n  enabled: true\n")
		_, err := LoadConfig(dir)
		assert.ErrorContains(t, err, "jwt secret is empty")
	})

	t.Run("short secret in release", func(t *testing.T) {
		dir := writeConfig(t, "server:\n  mode: release\nauth:\n  enabled: true\n  jwt_secret: short\n")
		_, err := LoadConfig(dir)
		assert.ErrorContains(t, err, "too short")
	})

	t.Run("unknown server mode", func(t *testing.T) {
		dir := writeConfig(t, "server:\n  mode: staging\n")
		_, err := LoadConfig(dir)
		assert.ErrorContains(t, err, "unknown server mode")
	})

	t.Run("passing score out of range", func(t *testing.T) {
		dir := writeConfig(t, "quiz:\n  passing_score: 120\n")
		_, err := LoadConfig(dir)
		assert.Error(t, err)
	})
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}
