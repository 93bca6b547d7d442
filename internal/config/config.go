package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config is the full service configuration, loaded from a TOML file.
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Logs     LogsConfig     `toml:"logs"`
	Metrics  MetricsConfig  `toml:"metrics"`
	Auth     AuthConfig     `toml:"auth"`
	SalonAPI SalonAPIConfig `toml:"salon_api"`
	Booking  BookingConfig  `toml:"booking"`
}

// ServerConfig configures the HTTP listener. Durations are in seconds.
type ServerConfig struct {
	HTTPPort        int    `toml:"http_port"`
	ReadTimeout     int    `toml:"read_timeout"`
	WriteTimeout    int    `toml:"write_timeout"`
	IdleTimeout     int    `toml:"idle_timeout"`
	ShutdownTimeout int    `toml:"shutdown_timeout"`
	CORSOrigin      string `toml:"cors_allowed_origin"`
}

// LogsConfig configures the service logger.
type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// MetricsConfig configures the prometheus endpoint.
type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

// AuthConfig configures validation of access tokens issued by the salon API.
type AuthConfig struct {
	JWTSecret       string `toml:"jwt_secret"`
	TokenTTLMinutes int    `toml:"token_ttl_minutes"`
}

// SalonAPIConfig configures the upstream salon API client. Timeout in seconds.
type SalonAPIConfig struct {
	URL     string `toml:"url"`
	Timeout int    `toml:"timeout"`
}

// BookingConfig configures business hours, slot granularity and the lifetime
// of abandoned in-progress selections.
type BookingConfig struct {
	OpeningHour         int `toml:"opening_hour"`
	ClosingHour         int `toml:"closing_hour"`
	SlotMinutes         int `toml:"slot_minutes"`
	SelectionTTLMinutes int `toml:"selection_ttl_minutes"`
}

// Load reads and validates the configuration file at path.
func Load(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: failed to decode %s: %w", path, err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 15
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 15
	}
	if c.Server.CORSOrigin == "" {
		c.Server.CORSOrigin = "*"
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "salon-booking-gateway"
	}
	if c.Auth.TokenTTLMinutes == 0 {
		c.Auth.TokenTTLMinutes = 60
	}
	if c.SalonAPI.Timeout == 0 {
		c.SalonAPI.Timeout = 5
	}
	if c.Booking.OpeningHour == 0 && c.Booking.ClosingHour == 0 {
		c.Booking.OpeningHour = 10
		c.Booking.ClosingHour = 20
	}
	if c.Booking.SlotMinutes == 0 {
		c.Booking.SlotMinutes = 30
	}
	if c.Booking.SelectionTTLMinutes == 0 {
		c.Booking.SelectionTTLMinutes = 30
	}
}

func (c *Config) validate() error {
	if c.SalonAPI.URL == "" {
		return errors.New("salon_api.url is required")
	}
	if c.Auth.JWTSecret == "" {
		return errors.New("auth.jwt_secret is required")
	}
	// ClosingHour is capped at 23: end times are "HH:MM" values within the
	// day, so a booking may never end past 23:00.
	if c.Booking.OpeningHour < 0 || c.Booking.ClosingHour > 23 ||
		c.Booking.OpeningHour >= c.Booking.ClosingHour {
		return fmt.Errorf("booking hours are invalid: open=%d close=%d",
			c.Booking.OpeningHour, c.Booking.ClosingHour)
	}
	if c.Booking.SlotMinutes <= 0 || 60%c.Booking.SlotMinutes != 0 {
		return fmt.Errorf("booking.slot_minutes must divide 60 evenly, got %d", c.Booking.SlotMinutes)
	}
	return nil
}
