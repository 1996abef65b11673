package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Storage drivers.
const (
	StorageSQLite = "sqlite"
	StorageMemos  = "memos"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// Task storage
	Storage StorageConfig
	Memos   MemosConfig

	// Command interpreter
	Interpreter InterpreterConfig

	// Integrations
	Telegram       TelegramConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port   int
	Mode   string
	APIKey string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

type RateLimitConfig struct {
	RequestsPerMin int
}

type StorageConfig struct {
	Driver     string
	SQLitePath string
}

type MemosConfig struct {
	URL         string
	AccessToken string
	ExternalURL string // URL for generating user-facing links (e.g., http://localhost:5230)
}

type InterpreterConfig struct {
	Timezone string
}

type TelegramConfig struct {
	BotToken      string
	WebhookURL    string
	WebhookSecret string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.APIKey = viper.GetString("http_server.api_key")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")
	cfg.RateLimit.RequestsPerMin = viper.GetInt("rate_limit.requests_per_min")

	// Storage
	cfg.Storage.Driver = strings.ToLower(viper.GetString("storage.driver"))
	cfg.Storage.SQLitePath = viper.GetString("storage.sqlite_path")

	cfg.Memos.URL = viper.GetString("memos.url")
	cfg.Memos.AccessToken = viper.GetString("memos.access_token")
	cfg.Memos.ExternalURL = viper.GetString("memos.external_url")
	// If external URL not set, default to internal URL
	if cfg.Memos.ExternalURL == "" {
		cfg.Memos.ExternalURL = cfg.Memos.URL
	}

	cfg.Interpreter.Timezone = viper.GetString("interpreter.timezone")

	// Integrations
	cfg.Telegram.BotToken = viper.GetString("telegram.bot_token")
	cfg.Telegram.WebhookURL = viper.GetString("telegram.webhook_url")
	cfg.Telegram.WebhookSecret = viper.GetString("telegram.webhook_secret")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = viper.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *Config) validate() error {
	switch cfg.Storage.Driver {
	case StorageSQLite:
		if cfg.Storage.SQLitePath == "" {
			return errors.New("storage.sqlite_path is required for the sqlite driver")
		}
	case StorageMemos:
		if cfg.Memos.URL == "" {
			return errors.New("memos.url is required for the memos driver")
		}
	default:
		return fmt.Errorf("unknown storage.driver %q (want %s or %s)", cfg.Storage.Driver, StorageSQLite, StorageMemos)
	}

	if _, err := time.LoadLocation(cfg.Interpreter.Timezone); err != nil {
		return fmt.Errorf("invalid interpreter.timezone %q: %w", cfg.Interpreter.Timezone, err)
	}

	if cfg.HTTPServer.Port <= 0 {
		return fmt.Errorf("invalid http_server.port %d", cfg.HTTPServer.Port)
	}
	return nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("rate_limit.requests_per_min", 60)
	viper.SetDefault("storage.driver", StorageSQLite)
	viper.SetDefault("storage.sqlite_path", "data/gestao.db")
	viper.SetDefault("interpreter.timezone", "Europe/Lisbon")
	viper.SetDefault("google_calendar.token_path", "token.json")
	viper.SetDefault("google_calendar.calendar_id", "primary")
}
