package config

import (
	"fmt"
	"os"
	"strconv"
	"strings" // For LogLevel normalization
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"homework_status_bot/internal/domain/failure"
)

// AppConfig holds all configuration for the application
type AppConfig struct {
	PracticumToken    string        `env:"PRACTICUM_TOKEN"`
	TelegramToken     string        `env:"TELEGRAM_TOKEN"`
	TelegramChatID    int64         // parsed by Load from TELEGRAM_CHAT_ID
	PracticumEndpoint string        `env:"PRACTICUM_ENDPOINT" env-default:"https://practicum.yandex.ru/api/user_api/homework_statuses/"`
	PollSchedule      string        `env:"POLL_SCHEDULE" env-default:"@every 10m"` // cron spec, "@every" form included
	RequestTimeout    time.Duration `env:"REQUEST_TIMEOUT" env-default:"30s"`
	InitialFromDate   int64         `env:"INITIAL_FROM_DATE" env-default:"0"` // 0 means start from now
	DatabaseURL       string        `env:"DATABASE_URL"`                      // optional notification journal
	LogLevel          string        `env:"LOG_LEVEL" env-default:"debug"`
	Environment       string        `env:"ENVIRONMENT" env-default:"development"`
	LogFile           string        `env:"LOG_FILE"` // extra log sink next to stdout
}

// Load reads configuration from environment variables and .env file (if present).
// Missing required variables are reported together as a fatal_config error.
func Load() (*AppConfig, error) {
	// godotenv.Load will not override existing env variables.
	_ = godotenv.Load()

	cfg := &AppConfig{}
	if err := cleanenv.ReadEnv(cfg); err != nil {
		return nil, failure.Wrap(failure.KindFatalConfig, err, "cannot parse environment")
	}

	var missing []string
	chatIDStr := os.Getenv("TELEGRAM_CHAT_ID")
	if chatIDStr != "" {
		chatID, err := strconv.ParseInt(chatIDStr, 10, 64)
		if err != nil {
			return nil, failure.Wrap(failure.KindFatalConfig, err, "invalid TELEGRAM_CHAT_ID")
		}
		cfg.TelegramChatID = chatID
	}

	if cfg.PracticumToken == "" {
		missing = append(missing, "PRACTICUM_TOKEN")
	}
	if cfg.TelegramToken == "" {
		missing = append(missing, "TELEGRAM_TOKEN")
	}
	if chatIDStr == "" {
		missing = append(missing, "TELEGRAM_CHAT_ID")
	}
	if len(missing) > 0 {
		return nil, failure.New(failure.KindFatalConfig, "required environment variables are not set: %s", strings.Join(missing, ", "))
	}

	schedule, err := cron.ParseStandard(cfg.PollSchedule)
	if err != nil {
		return nil, failure.Wrap(failure.KindFatalConfig, err, fmt.Sprintf("invalid POLL_SCHEDULE %q", cfg.PollSchedule))
	}
	// cron returns the zero time for specs that match no date, e.g. "0 0 30 2 *"
	if schedule.Next(time.Now()).IsZero() {
		return nil, failure.New(failure.KindFatalConfig, "POLL_SCHEDULE %q never fires", cfg.PollSchedule)
	}
	if cfg.RequestTimeout <= 0 {
		return nil, failure.New(failure.KindFatalConfig, "REQUEST_TIMEOUT must be positive, got %s", cfg.RequestTimeout)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.Environment = strings.ToLower(cfg.Environment)

	return cfg, nil
}
