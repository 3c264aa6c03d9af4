package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"github.com/terraincognita07/cyclenote/internal/services"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"db"`
	Auth      AuthConfig      `mapstructure:"auth"`
	Cycle     CycleConfig     `mapstructure:"cycle"`
	Reminders RemindersConfig `mapstructure:"reminders"`
	Log       LogConfig       `mapstructure:"log"`
	I18n      I18nConfig      `mapstructure:"i18n"`
}

type ServerConfig struct {
	Port         int  `mapstructure:"port"`
	CookieSecure bool `mapstructure:"cookie_secure"`
}

type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

type AuthConfig struct {
	SecretKey         string        `mapstructure:"secret_key"`
	OwnerPasswordHash string        `mapstructure:"owner_password_hash"`
	TokenTTL          time.Duration `mapstructure:"token_ttl"`
}

type CycleConfig struct {
	FallbackCycleLength int `mapstructure:"fallback_cycle_length"`
	PeriodLength        int `mapstructure:"period_length"`
	ForecastCycles      int `mapstructure:"forecast_cycles"`
	ReminderLeadDays    int `mapstructure:"reminder_lead_days"`
}

type RemindersConfig struct {
	TelegramBotToken string        `mapstructure:"telegram_bot_token"`
	TelegramChatID   string        `mapstructure:"telegram_chat_id"`
	Interval         time.Duration `mapstructure:"interval"`
	Language         string        `mapstructure:"language"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

type I18nConfig struct {
	DefaultLanguage string `mapstructure:"default_language"`
}

// Load reads defaults, then the optional config file, then CYCLENOTE_*
// environment variables, later sources winning.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cookie_secure", false)
	v.SetDefault("db.path", "data/cyclenote.db")
	v.SetDefault("auth.secret_key", "")
	v.SetDefault("auth.owner_password_hash", "")
	v.SetDefault("auth.token_ttl", "168h")
	v.SetDefault("cycle.fallback_cycle_length", 28)
	v.SetDefault("cycle.period_length", 5)
	v.SetDefault("cycle.forecast_cycles", 3)
	v.SetDefault("cycle.reminder_lead_days", 2)
	v.SetDefault("reminders.telegram_bot_token", "")
	v.SetDefault("reminders.telegram_chat_id", "")
	v.SetDefault("reminders.interval", "6h")
	v.SetDefault("reminders.language", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("i18n.default_language", "en")

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("cyclenote")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetEnvPrefix("CYCLENOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if len(c.Auth.SecretKey) < 16 {
		return errors.New("config: auth.secret_key must be at least 16 characters")
	}
	if strings.TrimSpace(c.Auth.OwnerPasswordHash) == "" {
		return errors.New("config: auth.owner_password_hash is required (see `cyclenote hash-password`)")
	}
	if c.Auth.TokenTTL <= 0 {
		return errors.New("config: auth.token_ttl must be positive")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return errors.New("config: server.port must be between 1 and 65535")
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return errors.New("config: db.path is required")
	}
	if err := c.CycleSettings().Validate(); err != nil {
		return fmt.Errorf("config: cycle: %w", err)
	}
	return nil
}

func (c *Config) CycleSettings() services.CycleSettings {
	return services.CycleSettings{
		FallbackCycleLength: c.Cycle.FallbackCycleLength,
		PeriodLength:        c.Cycle.PeriodLength,
		ForecastCycles:      c.Cycle.ForecastCycles,
		ReminderLeadDays:    c.Cycle.ReminderLeadDays,
	}
}
