// Package config manages application configuration from defaults, an
// optional config.yaml file, and BOT_* environment variables.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// ErrConfiguration indicates a configuration loading or validation failure.
var ErrConfiguration = errors.New("configuration error")

// Config contains all application configuration values.
type Config struct {
	Log      LogConfig      `mapstructure:"log"`
	OpenAI   OpenAIConfig   `mapstructure:"openai"`
	Telegram TelegramConfig `mapstructure:"telegram"`
	Journal  JournalConfig  `mapstructure:"journal"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	JSON  bool   `mapstructure:"json"`
}

// OpenAIConfig configures the chat-completion client. The API key has no
// default and must be provided; startup fails hard without it.
type OpenAIConfig struct {
	APIKey      string        `mapstructure:"api_key"     validate:"required"`
	BaseURL     string        `mapstructure:"base_url"    validate:"required,url"`
	Model       string        `mapstructure:"model"       validate:"required"`
	Temperature float32       `mapstructure:"temperature" validate:"min=0,max=2"`
	MaxTokens   int           `mapstructure:"max_tokens"  validate:"required,min=1"`
	Timeout     time.Duration `mapstructure:"timeout"     validate:"required,min=1s,max=10m"`
}

// TelegramConfig configures the Telegram API client. Token is required in
// polling mode only; the polling entrypoint enforces that. ChatID is the
// one-shot notification destination and may be zero (notification skipped).
type TelegramConfig struct {
	Token       string        `mapstructure:"token"`
	ChatID      int64         `mapstructure:"chat_id"`
	PollTimeout time.Duration `mapstructure:"poll_timeout" validate:"required,min=1s"`
	SendTimeout time.Duration `mapstructure:"send_timeout" validate:"required,min=1s"`

	Messages MessagesConfig `mapstructure:"messages"`
}

// MessagesConfig holds user-facing reply texts.
type MessagesConfig struct {
	ExtractFailed string `mapstructure:"extract_failed" validate:"required"`
}

// JournalConfig configures the append-only result file.
type JournalConfig struct {
	Path string `mapstructure:"path" validate:"required"`
}

// Validate checks the complete configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}
