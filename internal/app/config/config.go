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
	Redis    Redis      `mapstructure:",squash"`
	Remote   Remote     `mapstructure:",squash"`
	Search   Search     `mapstructure:",squash"`
}

type HTTP struct {
	Port           int           `mapstructure:"HTTP_PORT"`
	Timeout        time.Duration `mapstructure:"HTTP_TIMEOUT"`
	AllowedOrigins []string      `mapstructure:"HTTP_ALLOWED_ORIGINS"`
}

type Redis struct {
	Addr     string        `mapstructure:"REDIS_ADDR"`
	Password string        `mapstructure:"REDIS_PASSWORD"`
	DB       int           `mapstructure:"REDIS_DB"`
	Timeout  time.Duration `mapstructure:"REDIS_TIMEOUT"`
}

// GeocodingAPI is the Google Geocoding service used to locate the user's zip code.
type GeocodingAPI struct {
	URL          string        `mapstructure:"GEOCODING_API_URL"`
	Key          string        `mapstructure:"GEOCODING_API_KEY"`
	Timeout      time.Duration `mapstructure:"GEOCODING_API_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"GEOCODING_API_RATE_LIMIT"`
}

// AirportAPI is the SITA nearest airport service.
type AirportAPI struct {
	URL          string        `mapstructure:"AIRPORT_API_URL"`
	Key          string        `mapstructure:"AIRPORT_API_KEY"`
	Timeout      time.Duration `mapstructure:"AIRPORT_API_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"AIRPORT_API_RATE_LIMIT"`
}

// FlightAPI is the QPX Express trip search service.
type FlightAPI struct {
	URL          string        `mapstructure:"FLIGHT_API_URL"`
	Key          string        `mapstructure:"FLIGHT_API_KEY"`
	Timeout      time.Duration `mapstructure:"FLIGHT_API_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"FLIGHT_API_RATE_LIMIT"`
}

// HotelAPI is the Expedia hotel search service.
type HotelAPI struct {
	URL          string        `mapstructure:"HOTEL_API_URL"`
	Key          string        `mapstructure:"HOTEL_API_KEY"`
	Timeout      time.Duration `mapstructure:"HOTEL_API_TIMEOUT"`
	RateLimitRPS int           `mapstructure:"HOTEL_API_RATE_LIMIT"`
}

type Remote struct {
	Geocoding GeocodingAPI `mapstructure:",squash"`
	Airport   AirportAPI   `mapstructure:",squash"`
	Flight    FlightAPI    `mapstructure:",squash"`
	Hotel     HotelAPI     `mapstructure:",squash"`
}

type Search struct {
	SnapshotExpiration time.Duration `mapstructure:"SEARCH_SNAPSHOT_EXPIRATION"`
	MaxEvents          int           `mapstructure:"SEARCH_MAX_EVENTS"`
}
