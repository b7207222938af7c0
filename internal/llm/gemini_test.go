package llm

import (
	"testing"

	"voltlink/internal/models"
)

func TestSearchConfigScopesRetrievalToUserPosition(t *testing.T) {
	cfg := searchConfig(&models.Coordinates{Lat: 37.7749, Lng: -122.4194})

	if len(cfg.Tools) != 1 || cfg.Tools[0].GoogleMaps == nil {
		t.Fatalf("maps grounding tool not enabled: %+v", cfg.Tools)
	}
	if cfg.ToolConfig == nil || cfg.ToolConfig.RetrievalConfig == nil {
		t.Fatalf("retrieval config missing")
	}
	latLng := cfg.ToolConfig.RetrievalConfig.LatLng
	if latLng == nil || latLng.Latitude == nil || latLng.Longitude == nil {
		t.Fatalf("lat/lng not set: %+v", latLng)
	}
	if *latLng.Latitude != 37.7749 {
		t.Fatalf("latitude = %f", *latLng.Latitude)
	}
	if *latLng.Longitude != -122.4194 {
		t.Fatalf("longitude = %f", *latLng.Longitude)
	}
}

func TestSearchConfigWithoutPositionOmitsRetrieval(t *testing.T) {
	cfg := searchConfig(nil)

	if len(cfg.Tools) != 1 || cfg.Tools[0].GoogleMaps == nil {
		t.Fatalf("maps grounding tool not enabled: %+v", cfg.Tools)
	}
	if cfg.ToolConfig != nil {
		t.Fatalf("tool config must be omitted without a position, got %+v", cfg.ToolConfig)
	}
}
