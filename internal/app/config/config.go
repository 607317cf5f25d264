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
	AeroAPI  AeroAPI    `mapstructure:",squash"`
	Cache    Cache      `mapstructure:",squash"`
	Redis    Redis      `mapstructure:",squash"`
	Usage    Usage      `mapstructure:",squash"`
	Board    Board      `mapstructure:",squash"`
	Locator  Locator    `mapstructure:",squash"`
	Route    Route      `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

// AeroAPI holds the upstream AeroDataBox (RapidAPI) connection settings.
type AeroAPI struct {
	Key          string        `mapstructure:"AERO_API_KEY"`
	Host         string        `mapstructure:"AERO_API_HOST"`
	BaseURL      string        `mapstructure:"AERO_API_BASE_URL"`
	Timeout      time.Duration `mapstructure:"AERO_API_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"AERO_API_RATE_LIMIT"`
}

// Cache selects the cache backend and its entry lifetime.
type Cache struct {
	Backend string        `mapstructure:"CACHE_BACKEND"`
	TTL     time.Duration `mapstructure:"CACHE_TTL"`
}

type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

// Usage holds the soft ceiling displayed next to the session call counter.
// The counter never blocks calls; the limit is informational.
type Usage struct {
	SoftLimit int64 `mapstructure:"USAGE_SOFT_LIMIT"`
}

type Board struct {
	Window      time.Duration `mapstructure:"BOARD_WINDOW"`
	MaxFlights  int           `mapstructure:"BOARD_MAX_FLIGHTS"`
	SearchLimit int           `mapstructure:"AIRPORT_SEARCH_LIMIT"`
}

// Locator configures the flight-number scan across major airports.
type Locator struct {
	Airports        []string      `mapstructure:"LOCATOR_AIRPORTS"`
	PacingDelay     time.Duration `mapstructure:"LOCATOR_PACING_DELAY"`
	AssumedDuration time.Duration `mapstructure:"LOCATOR_ASSUMED_DURATION"`
}

// Route configures the synthetic route estimate.
type Route struct {
	CruiseSpeedKmh float64 `mapstructure:"ROUTE_CRUISE_SPEED_KMH"`
}
