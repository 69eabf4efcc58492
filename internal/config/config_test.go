package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoad_Defaults: без файла и окружения работают значения по умолчанию
func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:3000", cfg.ServerURL)
	assert.NotEmpty(t, cfg.DBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.DevAuthBypass)
}

// TestLoad_File: явный файл обязателен и перекрывает defaults
func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := []byte("server_url: https://api.example.com\nlog_level: debug\ndev_auth_bypass: true\n")
	require.NoError(t, os.WriteFile(path, content, 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://api.example.com", cfg.ServerURL)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.DevAuthBypass)
	// Незатронутый ключ остается дефолтным
	assert.NotEmpty(t, cfg.DBPath)
}

// TestLoad_EnvOverridesFile: переменные окружения сильнее файла
func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server_url: https://file.example.com\n"), 0o600))

	t.Setenv("GG_SERVER_URL", "https://env.example.com")
	t.Setenv("GG_LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example.com", cfg.ServerURL)
	assert.Equal(t, "warn", cfg.LogLevel)
}

// TestLoad_MissingExplicitFile: явный несуществующий путь - ошибка
func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

// TestLoad_InvalidLogLevel отвергается валидацией
func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("GG_LOG_LEVEL", "verbose")

	_, err := Load("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{ServerURL: "http://localhost:3000", DBPath: "x.db", LogLevel: "info"}
	assert.NoError(t, valid.Validate())

	noServer := valid
	noServer.ServerURL = ""
	assert.Error(t, noServer.Validate())

	noDB := valid
	noDB.DBPath = ""
	assert.Error(t, noDB.Validate())
}
