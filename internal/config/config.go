package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone   = "America/Lima"
	configPathEnv     = "RESEARCH_CATALOG_CONFIG"
	databaseDSNEnv    = "DATABASE_DSN"
	telegramTokenEnv  = "TELEGRAM_BOT_TOKEN"
	telegramChatIDEnv = "TELEGRAM_CHAT_ID"
	telemetryURLEnv   = "TELEMETRY_URL"
	logLevelEnv       = "LOG_LEVEL"
	serverAddrEnv     = "SERVER_ADDR"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging       LoggingConfig      `yaml:"logging"`
	Catalog       CatalogConfig      `yaml:"catalog"`
	Server        ServerConfig       `yaml:"server"`
	Telemetry     TelemetryConfig    `yaml:"telemetry"`
	Database      DatabaseConfig     `yaml:"database"`
	Scheduler     SchedulerConfig    `yaml:"scheduler"`
	Notifications NotificationConfig `yaml:"notifications"`
	Sources       []SourceConfig     `yaml:"sources" validate:"dive"`
}

// LoggingConfig selects the slog handler.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"omitempty,oneof=debug info warn warning error"`
	Format string `yaml:"format" validate:"omitempty,oneof=text json"`
}

// CatalogConfig locates the two catalog documents (paths or URLs).
type CatalogConfig struct {
	Congresses string         `yaml:"congresses" validate:"required"`
	Journals   string         `yaml:"journals" validate:"required"`
	Timezone   string         `yaml:"timezone"`
	Watch      bool           `yaml:"watch"`
	location   *time.Location `yaml:"-"`
}

// Location resolves the catalog timezone used for calendar dates.
func (c CatalogConfig) Location() *time.Location {
	if c.location != nil {
		return c.location
	}
	return time.UTC
}

// ServerConfig describes the HTTP listener.
type ServerConfig struct {
	Addr            string        `yaml:"addr" validate:"required"`
	ReadTimeout     time.Duration `yaml:"readTimeout"`
	WriteTimeout    time.Duration `yaml:"writeTimeout"`
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`
	AllowedOrigins  []string      `yaml:"allowedOrigins"`
}

// TelemetryConfig points the client-side tracker at a collector.
type TelemetryConfig struct {
	Endpoint  string        `yaml:"endpoint" validate:"omitempty,url"`
	QueueSize int           `yaml:"queueSize" validate:"gte=0"`
	Timeout   time.Duration `yaml:"timeout"`
}

// DatabaseConfig describes Postgres connection details for the event store.
type DatabaseConfig struct {
	DSN string `yaml:"dsn"`
}

// SchedulerConfig defines the daily digest job.
type SchedulerConfig struct {
	Enabled    bool          `yaml:"enabled"`
	Interval   time.Duration `yaml:"interval" validate:"gte=0"`
	RunOnStart bool          `yaml:"runOnStart"`
}

// NotificationConfig encapsulates outbound channels (Telegram, etc.).
type NotificationConfig struct {
	Telegram TelegramConfig `yaml:"telegram"`
}

// TelegramConfig wires all data required to send messages.
type TelegramConfig struct {
	BotToken string `yaml:"botToken"`
	ChatID   string `yaml:"chatId"`
	BaseURL  string `yaml:"baseUrl" validate:"omitempty,url"`
}

// Enabled reports whether both credentials are present.
func (t TelegramConfig) Enabled() bool {
	return t.BotToken != "" && t.ChatID != ""
}

// SourceConfig describes one sheet that the build command turns into a document.
type SourceConfig struct {
	Name     string            `yaml:"name" validate:"required"`
	Importer string            `yaml:"importer" validate:"required"`
	Location string            `yaml:"location" validate:"required"`
	Output   string            `yaml:"output" validate:"required"`
	Options  map[string]string `yaml:"options"`
}

// Load reads the YAML file named by RESEARCH_CATALOG_CONFIG (if any) and
// applies environment overrides.
func Load() Config {
	return LoadFile(os.Getenv(configPathEnv))
}

// LoadFile reads YAML configuration from path (if non-empty) and applies
// environment overrides. Unreadable files fall back to defaults.
func LoadFile(path string) Config {
	cfg := defaultConfig()

	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			slog.Warn("config: cannot read file, falling back to defaults", "path", path, "error", err)
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				slog.Warn("config: cannot parse file, falling back to defaults", "path", path, "error", err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	return cfg
}

// Validate checks the merged configuration.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate config: %w", err)
		}
		msgs := make([]string, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
		}
		return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(telegramTokenEnv); v != "" {
		c.Notifications.Telegram.BotToken = v
	}

	if v := os.Getenv(telegramChatIDEnv); v != "" {
		c.Notifications.Telegram.ChatID = v
	}

	if v := os.Getenv(telemetryURLEnv); v != "" {
		c.Telemetry.Endpoint = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(serverAddrEnv); v != "" {
		c.Server.Addr = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Catalog.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		slog.Warn("config: unknown timezone, reverting to UTC", "timezone", tz)
		loc = time.UTC
	}
	c.Catalog.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Catalog.Congresses != "" {
		base.Catalog.Congresses = override.Catalog.Congresses
	}
	if override.Catalog.Journals != "" {
		base.Catalog.Journals = override.Catalog.Journals
	}
	if override.Catalog.Timezone != "" {
		base.Catalog.Timezone = override.Catalog.Timezone
	}
	if override.Catalog.Watch {
		base.Catalog.Watch = true
	}

	if override.Server.Addr != "" {
		base.Server.Addr = override.Server.Addr
	}
	if override.Server.ReadTimeout != 0 {
		base.Server.ReadTimeout = override.Server.ReadTimeout
	}
	if override.Server.WriteTimeout != 0 {
		base.Server.WriteTimeout = override.Server.WriteTimeout
	}
	if override.Server.ShutdownTimeout != 0 {
		base.Server.ShutdownTimeout = override.Server.ShutdownTimeout
	}
	if len(override.Server.AllowedOrigins) > 0 {
		base.Server.AllowedOrigins = override.Server.AllowedOrigins
	}

	if override.Telemetry.Endpoint != "" {
		base.Telemetry.Endpoint = override.Telemetry.Endpoint
	}
	if override.Telemetry.QueueSize != 0 {
		base.Telemetry.QueueSize = override.Telemetry.QueueSize
	}
	if override.Telemetry.Timeout != 0 {
		base.Telemetry.Timeout = override.Telemetry.Timeout
	}

	if override.Database.DSN != "" {
		base.Database = override.Database
	}

	if override.Scheduler.Enabled {
		base.Scheduler.Enabled = true
	}
	if override.Scheduler.Interval != 0 {
		base.Scheduler.Interval = override.Scheduler.Interval
	}
	if override.Scheduler.RunOnStart {
		base.Scheduler.RunOnStart = true
	}

	if override.Notifications.Telegram.BotToken != "" {
		base.Notifications.Telegram.BotToken = override.Notifications.Telegram.BotToken
	}
	if override.Notifications.Telegram.ChatID != "" {
		base.Notifications.Telegram.ChatID = override.Notifications.Telegram.ChatID
	}
	if override.Notifications.Telegram.BaseURL != "" {
		base.Notifications.Telegram.BaseURL = override.Notifications.Telegram.BaseURL
	}

	if len(override.Sources) > 0 {
		base.Sources = override.Sources
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "info", Format: "text"},
		Catalog: CatalogConfig{
			Congresses: "public/congresses.json",
			Journals:   "public/revistas.json",
			Timezone:   defaultTimezone,
		},
		Server: ServerConfig{
			Addr:            ":8080",
			ReadTimeout:     10 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Telemetry: TelemetryConfig{QueueSize: 256, Timeout: 5 * time.Second},
		Scheduler: SchedulerConfig{Enabled: false, Interval: 24 * time.Hour},
		Notifications: NotificationConfig{
			Telegram: TelegramConfig{BaseURL: "https://api.telegram.org"},
		},
		Sources: []SourceConfig{
			{Name: "congresos", Importer: "congresos", Location: "data/List_congreso.html", Output: "public/congresses.json"},
			{Name: "revistas", Importer: "revistas", Location: "data/List_revista.html", Output: "public/revistas.json"},
		},
	}
}
