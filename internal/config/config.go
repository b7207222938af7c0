package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// HTTPConfig holds listen settings.
type HTTPConfig struct {
	Port string `yaml:"port" env:"VOLTLINK_HTTP_PORT"`
}

// GeminiConfig selects the model used for search and negotiation.
// The API key itself is read from GEMINI_API_KEY by the genai client.
type GeminiConfig struct {
	Model string `yaml:"model" env:"VOLTLINK_GEMINI_MODEL"`
}

// LocationConfig controls how the user position is resolved at startup.
// When Lat/Lng are set the static provider is used; otherwise the geoip
// endpoint is queried once.
type LocationConfig struct {
	Lat      float64 `yaml:"lat" env:"VOLTLINK_LOCATION_LAT"`
	Lng      float64 `yaml:"lng" env:"VOLTLINK_LOCATION_LNG"`
	Static   bool    `yaml:"static" env:"VOLTLINK_LOCATION_STATIC"`
	GeoIPURL string  `yaml:"geoipUrl" env:"VOLTLINK_GEOIP_URL"`
}

// SessionConfig tunes the charging simulation.
type SessionConfig struct {
	TickMillis         int     `yaml:"tickMillis" env:"VOLTLINK_SESSION_TICK_MS"`
	EnergyPerTickKwh   float64 `yaml:"energyPerTickKwh" env:"VOLTLINK_SESSION_ENERGY_PER_TICK"`
	FallbackRatePerKwh float64 `yaml:"fallbackRatePerKwh" env:"VOLTLINK_SESSION_FALLBACK_RATE"`
	GraceMillis        int     `yaml:"graceMillis" env:"VOLTLINK_SESSION_GRACE_MS"`
	VehicleID          string  `yaml:"vehicleId" env:"VOLTLINK_VEHICLE_ID"`
}

// Config defines voltlink service configuration.
type Config struct {
	HTTP     HTTPConfig     `yaml:"http"`
	Gemini   GeminiConfig   `yaml:"gemini"`
	Location LocationConfig `yaml:"location"`
	Session  SessionConfig  `yaml:"session"`
}

// Load reads configuration via the shared loader and applies defaults.
func Load() (*Config, error) {
	cfg := &Config{
		HTTP:   HTTPConfig{Port: "8080"},
		Gemini: GeminiConfig{Model: "gemini-2.5-flash"},
		Location: LocationConfig{
			GeoIPURL: "http://ip-api.com",
		},
		Session: SessionConfig{
			TickMillis:         1000,
			EnergyPerTickKwh:   0.10,
			FallbackRatePerKwh: 0.40,
			GraceMillis:        3000,
			VehicleID:          "USER_VEHICLE_01",
		},
	}

	if err := load(cfg); err != nil {
		return nil, err
	}

	if strings.TrimSpace(cfg.Gemini.Model) == "" {
		return nil, errors.New("config: gemini model required")
	}
	if cfg.Session.TickMillis <= 0 {
		return nil, errors.New("config: session tick must be positive")
	}
	if cfg.Session.EnergyPerTickKwh <= 0 {
		return nil, errors.New("config: energy per tick must be positive")
	}
	return cfg, nil
}

// HTTPAddress returns :port style.
func (c *Config) HTTPAddress() string {
	port := strings.TrimSpace(c.HTTP.Port)
	if port == "" {
		port = "8080"
	}
	if strings.HasPrefix(port, ":") {
		return port
	}
	return fmt.Sprintf(":%s", port)
}

// TickInterval returns the simulation tick period.
func (c *Config) TickInterval() time.Duration {
	return time.Duration(c.Session.TickMillis) * time.Millisecond
}

// GraceDelay returns how long a completed session stays visible before it
// is cleared.
func (c *Config) GraceDelay() time.Duration {
	if c.Session.GraceMillis <= 0 {
		return 3 * time.Second
	}
	return time.Duration(c.Session.GraceMillis) * time.Millisecond
}
