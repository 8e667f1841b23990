package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Load loads and validates configuration from:
// 1. Default values
// 2. config.yaml file (optional)
// 3. BOT_* environment variables
func Load() (*Config, error) {
	setDefaults()

	if err := readConfig(); err != nil {
		return nil, fmt.Errorf("%w: failed to load config file: %v", ErrConfiguration, err)
	}

	cfg := &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to parse config: %v", ErrConfiguration, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfiguration, err)
	}

	return cfg, nil
}

// readConfig initializes and loads the configuration using viper.
func readConfig() error {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("BOT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Allow missing config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file: %v", err)
		}
	}

	return nil
}

// setDefaults sets default values for optional configuration parameters.
func setDefaults() {
	// Log defaults
	viper.SetDefault("log.level", DefaultLogLevel)
	viper.SetDefault("log.json", DefaultLogJSON)

	// OpenAI defaults
	viper.SetDefault("openai.base_url", DefaultOpenAIBaseURL)
	viper.SetDefault("openai.model", DefaultOpenAIModel)
	viper.SetDefault("openai.temperature", DefaultOpenAITemperature)
	viper.SetDefault("openai.max_tokens", DefaultOpenAIMaxTokens)
	viper.SetDefault("openai.timeout", DefaultOpenAITimeout)

	// Telegram defaults
	viper.SetDefault("telegram.poll_timeout", DefaultTelegramPollTimeout)
	viper.SetDefault("telegram.send_timeout", DefaultTelegramSendTimeout)
	viper.SetDefault("telegram.messages.extract_failed", DefaultMsgExtractFailed)

	// Journal defaults
	viper.SetDefault("journal.path", DefaultJournalPath)
}

// Defaults for optional configuration values. Timeouts follow the fixed
// budgets of the three outbound calls: completion, long poll, notification.
const (
	DefaultLogLevel = "info"
	DefaultLogJSON  = true

	DefaultOpenAIBaseURL     = "https://api.openai.com/v1"
	DefaultOpenAIModel       = "gpt-3.5-turbo"
	DefaultOpenAITemperature = 0.3
	DefaultOpenAIMaxTokens   = 200
	DefaultOpenAITimeout     = 30 * time.Second

	DefaultTelegramPollTimeout = 35 * time.Second
	DefaultTelegramSendTimeout = 10 * time.Second

	DefaultJournalPath = "hasil_survey.txt"

	DefaultMsgExtractFailed = "Maaf, saya tidak dapat membaca jadwal dari pesan Anda. " +
		"Mohon kirim ulang dengan menyertakan nomor HP, tanggal, jam, dan nama Anda."
)
