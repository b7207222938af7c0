package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddress() != ":8080" {
		t.Fatalf("unexpected address: %s", cfg.HTTPAddress())
	}
	if cfg.Gemini.Model != "gemini-2.5-flash" {
		t.Fatalf("unexpected model: %s", cfg.Gemini.Model)
	}
	if cfg.TickInterval() != time.Second {
		t.Fatalf("unexpected tick interval: %s", cfg.TickInterval())
	}
	if cfg.GraceDelay() != 3*time.Second {
		t.Fatalf("unexpected grace delay: %s", cfg.GraceDelay())
	}
	if cfg.Session.EnergyPerTickKwh != 0.10 {
		t.Fatalf("unexpected energy per tick: %f", cfg.Session.EnergyPerTickKwh)
	}
	if cfg.Session.FallbackRatePerKwh != 0.40 {
		t.Fatalf("unexpected fallback rate: %f", cfg.Session.FallbackRatePerKwh)
	}
	if cfg.Session.VehicleID != "USER_VEHICLE_01" {
		t.Fatalf("unexpected vehicle id: %s", cfg.Session.VehicleID)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("VOLTLINK_HTTP_PORT", "9191")
	t.Setenv("VOLTLINK_SESSION_TICK_MS", "250")
	t.Setenv("VOLTLINK_LOCATION_STATIC", "true")
	t.Setenv("VOLTLINK_LOCATION_LAT", "48.1")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.HTTPAddress() != ":9191" {
		t.Fatalf("unexpected address: %s", cfg.HTTPAddress())
	}
	if cfg.TickInterval() != 250*time.Millisecond {
		t.Fatalf("unexpected tick interval: %s", cfg.TickInterval())
	}
	if !cfg.Location.Static || cfg.Location.Lat != 48.1 {
		t.Fatalf("location overrides not applied: %+v", cfg.Location)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("VOLTLINK_SESSION_TICK_MS", "0")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for zero tick interval")
	}
}
