// Package config загружает конфигурацию клиента: файл, переменные
// окружения с префиксом GG_, значения по умолчанию. Приоритет флагов
// поверх всего этого применяет вызывающий (cmd/gg).
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config - итоговая конфигурация клиента
type Config struct {
	ServerURL     string `mapstructure:"server_url"`
	DBPath        string `mapstructure:"db_path"`
	LogLevel      string `mapstructure:"log_level"`
	DevAuthBypass bool   `mapstructure:"dev_auth_bypass"`
}

// ключи конфигурации; каждый должен иметь default и env-binding
var keys = []string{"server_url", "db_path", "log_level", "dev_auth_bypass"}

// Load читает конфигурацию. path - явный путь к файлу (из флага);
// пустой path означает поиск config.yaml в стандартных местах, и
// отсутствие файла в этом случае не ошибка.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server_url", "http://localhost:3000")
	v.SetDefault("db_path", defaultDBPath())
	v.SetDefault("log_level", "info")
	v.SetDefault("dev_auth_bypass", false)

	v.SetEnvPrefix("GG")
	for _, key := range keys {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		if dir, err := os.UserConfigDir(); err == nil {
			v.AddConfigPath(filepath.Join(dir, "gg"))
		}
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			// Файл опционален, но синтаксическая ошибка в найденном - нет
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate проверяет минимальную целостность конфигурации
func (c *Config) Validate() error {
	if c.ServerURL == "" {
		return errors.New("server_url is required")
	}
	if c.DBPath == "" {
		return errors.New("db_path is required")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	return nil
}

// defaultDBPath - файл БД рядом с пользовательским конфигом,
// с fallback на рабочую директорию
func defaultDBPath() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(dir, "gg", "gg-client.db")
	}
	return "gg-client.db"
}
