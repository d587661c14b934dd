package config

import (
	"ecoalerta/internal/core"
	"ecoalerta/internal/storage"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // timezone names must resolve on hosts without zoneinfo

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

var (
	ErrConfigFileNotFound = errors.New("config file not found")
	ErrInvalidConfig      = errors.New("invalid configuration")
)

// Defaults
const (
	DefaultHost            = "0.0.0.0"
	DefaultPort            = 8080
	DefaultStoragePath     = "./ecoalerta.db"
	DefaultTimezone        = "America/Sao_Paulo"
	DefaultReminderSeconds = 300
	DefaultLogFormat       = "json"
	DefaultLogLevel        = "info"
)

// Config represents the application configuration
type Config struct {
	Server   ServerConfig   `json:"server" yaml:"server"`
	Storage  StorageConfig  `json:"storage" yaml:"storage"`
	Calendar CalendarConfig `json:"calendar" yaml:"calendar"`
	Locale   LocaleConfig   `json:"locale" yaml:"locale"`
	Security SecurityConfig `json:"security" yaml:"security"`
	Reminder ReminderConfig `json:"reminder" yaml:"reminder"`
	Log      LogConfig      `json:"log" yaml:"log"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host string `json:"host" yaml:"host"`
	Port int    `json:"port" yaml:"port"`
}

// StorageConfig selects and configures the key-value backend
type StorageConfig struct {
	Backend       string `json:"backend" yaml:"backend"` // "sqlite", "redis" or "memory"
	Path          string `json:"path" yaml:"path"`
	RedisAddr     string `json:"redis_addr" yaml:"redis_addr"`
	RedisPassword string `json:"redis_password" yaml:"redis_password"`
	RedisDB       int    `json:"redis_db" yaml:"redis_db"`
	KeyPrefix     string `json:"key_prefix" yaml:"key_prefix"`
}

// CalendarConfig points at the neighborhood calendar file
type CalendarConfig struct {
	Path string `json:"path" yaml:"path"`
}

// LocaleConfig controls date rendering
type LocaleConfig struct {
	Language string `json:"language" yaml:"language"`
	Timezone string `json:"timezone" yaml:"timezone"`
}

// SecurityConfig contains security settings
type SecurityConfig struct {
	APIKeyHash string `json:"api_key_hash" yaml:"api_key_hash"` // bcrypt; empty disables auth
}

// ReminderConfig controls the eve reminder loop
type ReminderConfig struct {
	Enabled         bool   `json:"enabled" yaml:"enabled"`
	IntervalSeconds int    `json:"interval_seconds" yaml:"interval_seconds"`
	TelegramToken   string `json:"telegram_token" yaml:"telegram_token"`
	TelegramChatID  int64  `json:"telegram_chat_id" yaml:"telegram_chat_id"`
}

// LogConfig controls the logger
type LogConfig struct {
	Format string `json:"format" yaml:"format"`
	Level  string `json:"level" yaml:"level"`
}

// Default returns a configuration with every default applied
func Default() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

func (c *Config) applyDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = DefaultHost
	}
	if c.Server.Port == 0 {
		c.Server.Port = DefaultPort
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = storage.BackendSQLite
	}
	if c.Storage.Path == "" && c.Storage.Backend == storage.BackendSQLite {
		c.Storage.Path = DefaultStoragePath
	}
	if c.Locale.Language == "" {
		c.Locale.Language = string(core.DefaultLanguage)
	}
	if c.Locale.Timezone == "" {
		c.Locale.Timezone = DefaultTimezone
	}
	if c.Reminder.IntervalSeconds == 0 {
		c.Reminder.IntervalSeconds = DefaultReminderSeconds
	}
	if c.Log.Format == "" {
		c.Log.Format = DefaultLogFormat
	}
	if c.Log.Level == "" {
		c.Log.Level = DefaultLogLevel
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("%w: invalid server port", ErrInvalidConfig)
	}

	switch c.Storage.Backend {
	case storage.BackendSQLite:
		if c.Storage.Path == "" {
			return fmt.Errorf("%w: storage path is required for sqlite", ErrInvalidConfig)
		}
	case storage.BackendRedis:
		if c.Storage.RedisAddr == "" {
			return fmt.Errorf("%w: redis address is required", ErrInvalidConfig)
		}
		if c.Storage.RedisDB < 0 {
			return fmt.Errorf("%w: invalid redis db", ErrInvalidConfig)
		}
	case storage.BackendMemory:
	default:
		return fmt.Errorf("%w: unknown storage backend %q", ErrInvalidConfig, c.Storage.Backend)
	}

	if !core.Language(c.Locale.Language).Valid() {
		return fmt.Errorf("%w: unsupported language %q", ErrInvalidConfig, c.Locale.Language)
	}

	if _, err := time.LoadLocation(c.Locale.Timezone); err != nil {
		return fmt.Errorf("%w: unknown timezone %q", ErrInvalidConfig, c.Locale.Timezone)
	}

	if c.Security.APIKeyHash != "" {
		if _, err := bcrypt.Cost([]byte(c.Security.APIKeyHash)); err != nil {
			return fmt.Errorf("%w: api key hash is not a bcrypt hash", ErrInvalidConfig)
		}
	}

	if c.Reminder.Enabled && c.Reminder.IntervalSeconds <= 0 {
		return fmt.Errorf("%w: reminder interval must be positive", ErrInvalidConfig)
	}

	if c.Reminder.TelegramToken != "" && c.Reminder.TelegramChatID == 0 {
		return fmt.Errorf("%w: telegram chat id is required with a telegram token", ErrInvalidConfig)
	}

	if c.Log.Format != "json" && c.Log.Format != "text" {
		return fmt.Errorf("%w: log format must be json or text", ErrInvalidConfig)
	}

	return nil
}

// Location returns the configured timezone. Call after Validate.
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Locale.Timezone)
	if err != nil {
		return time.Local
	}
	return loc
}

// Language returns the configured display language
func (c *Config) Language() core.Language {
	return core.Language(c.Locale.Language)
}

// ReminderInterval returns the reminder tick interval
func (c *Config) ReminderInterval() time.Duration {
	return time.Duration(c.Reminder.IntervalSeconds) * time.Second
}

// Load loads configuration from a JSON or YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigFileNotFound
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &config)
	default:
		err = json.Unmarshal(data, &config)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadFromEnv loads configuration from environment variables
// This is useful for containerized deployments
func LoadFromEnv() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Host: getEnv("ECOALERTA_HOST", DefaultHost),
			Port: getEnvInt("ECOALERTA_PORT", DefaultPort),
		},
		Storage: StorageConfig{
			Backend:       getEnv("ECOALERTA_STORAGE_BACKEND", storage.BackendSQLite),
			Path:          getEnv("ECOALERTA_STORAGE_PATH", ""),
			RedisAddr:     getEnv("ECOALERTA_REDIS_ADDR", ""),
			RedisPassword: getEnv("ECOALERTA_REDIS_PASSWORD", ""),
			RedisDB:       getEnvInt("ECOALERTA_REDIS_DB", 0),
			KeyPrefix:     getEnv("ECOALERTA_KEY_PREFIX", ""),
		},
		Calendar: CalendarConfig{
			Path: getEnv("ECOALERTA_CALENDAR_PATH", ""),
		},
		Locale: LocaleConfig{
			Language: getEnv("ECOALERTA_LANGUAGE", string(core.DefaultLanguage)),
			Timezone: getEnv("ECOALERTA_TIMEZONE", DefaultTimezone),
		},
		Security: SecurityConfig{
			APIKeyHash: getEnv("ECOALERTA_API_KEY_HASH", ""),
		},
		Reminder: ReminderConfig{
			Enabled:         getEnvBool("ECOALERTA_REMINDER_ENABLED", false),
			IntervalSeconds: getEnvInt("ECOALERTA_REMINDER_INTERVAL_SECONDS", DefaultReminderSeconds),
			TelegramToken:   getEnv("ECOALERTA_TELEGRAM_TOKEN", ""),
			TelegramChatID:  getEnvInt64("ECOALERTA_TELEGRAM_CHAT_ID", 0),
		},
		Log: LogConfig{
			Format: getEnv("ECOALERTA_LOG_FORMAT", DefaultLogFormat),
			Level:  getEnv("ECOALERTA_LOG_LEVEL", DefaultLogLevel),
		},
	}

	config.applyDefaults()
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		intVal, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return intVal
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		intVal, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return defaultValue
		}
		return intVal
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return value == "true" || value == "1"
	}
	return defaultValue
}
