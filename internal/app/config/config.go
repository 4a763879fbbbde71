package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel LogLeveler `mapstructure:"LOG_LEVEL"`
	HTTP     HTTP       `mapstructure:",squash"`
	SerpAPI  SerpAPI    `mapstructure:",squash"`
	LLM      LLM        `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Search   Search     `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// SerpAPI holds the search provider configuration. The rate limit guards
// the account's query quota across all requests.
type SerpAPI struct {
	BaseURL      string        `mapstructure:"SERPAPI_BASE_URL"`
	APIKey       string        `mapstructure:"SERPAPI_API_KEY"`
	Timeout      time.Duration `mapstructure:"SERPAPI_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"SERPAPI_RATE_LIMIT"`
}

// LLM holds the completion provider configuration.
type LLM struct {
	APIKey  string        `mapstructure:"GEMINI_API_KEY"`
	Model   string        `mapstructure:"LLM_MODEL"`
	Timeout time.Duration `mapstructure:"LLM_TIMEOUT"`
}

type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

// Search holds search-result cache tuning.
type Search struct {
	CacheExpiration time.Duration `mapstructure:"SEARCH_CACHE_EXPIRATION"`
	LockTimeout     time.Duration `mapstructure:"SEARCH_LOCK_TIMEOUT"`
}
