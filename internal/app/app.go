package app

import (
	"context"
	"time"

	"go.uber.org/zap"

	"voltlink/internal/clients"
	"voltlink/internal/config"
	"voltlink/internal/directory"
	"voltlink/internal/geo"
	httpserver "voltlink/internal/http"
	"voltlink/internal/http/handlers"
	"voltlink/internal/llm"
	"voltlink/internal/models"
	"voltlink/internal/service"
	"voltlink/internal/ws"
)

const geoLookupTimeout = 10 * time.Second

// App wires voltlink dependencies.
type App struct {
	server   *httpserver.Server
	resolver *geo.Resolver
	dir      *directory.Directory
	sessions *service.SessionsService
	hub      *ws.Hub
	logger   *zap.Logger
}

// New constructs the application graph.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	gemini, err := llm.NewGeminiClient(ctx, cfg.Gemini.Model, logger)
	if err != nil {
		return nil, err
	}

	dir := directory.New()
	resolver := geo.NewResolver(locationProvider(cfg), defaultCoords(cfg), logger)
	hub := ws.NewHub(logger)

	negotiator := service.NewNegotiator(gemini, logger)
	sessions := service.NewSessionsService(negotiator, dir, hub, service.SessionsConfig{
		TickInterval:       cfg.TickInterval(),
		EnergyPerTickKwh:   cfg.Session.EnergyPerTickKwh,
		FallbackRatePerKwh: cfg.Session.FallbackRatePerKwh,
		GraceDelay:         cfg.GraceDelay(),
		VehicleID:          cfg.Session.VehicleID,
	}, logger)
	assistant := service.NewAssistant(gemini, logger)

	chargersHandler := handlers.NewChargersHandler(dir)
	sessionsHandler := handlers.NewSessionsHandler(sessions, logger)
	chatHandler := handlers.NewChatHandler(assistant, resolver)

	routes := httpserver.Routes{
		Health:         handlers.NewHealthHandler(),
		Chargers:       chargersHandler.List,
		ChargerGet:     chargersHandler.Get,
		Location:       handlers.NewLocationHandler(resolver),
		SessionSelect:  sessionsHandler.Select,
		SessionStart:   sessionsHandler.Start,
		SessionStop:    sessionsHandler.Stop,
		SessionCurrent: sessionsHandler.Current,
		ChatMessages:   chatHandler.Messages,
		ChatSearch:     chatHandler.Search,
		SessionStream:  hub.HandleWS,
	}

	router := httpserver.NewRouter(routes)
	server := httpserver.NewServer(cfg.HTTPAddress(), router, logger)

	return &App{
		server:   server,
		resolver: resolver,
		dir:      dir,
		sessions: sessions,
		hub:      hub,
		logger:   logger,
	}, nil
}

func locationProvider(cfg *config.Config) geo.Provider {
	if cfg.Location.Static {
		return geo.StaticProvider{Coords: models.Coordinates{Lat: cfg.Location.Lat, Lng: cfg.Location.Lng}}
	}
	httpClient := clients.NewDefaultHTTPClient(geoLookupTimeout)
	return clients.NewGeoIPClient(cfg.Location.GeoIPURL, httpClient)
}

func defaultCoords(cfg *config.Config) models.Coordinates {
	if cfg.Location.Lat != 0 || cfg.Location.Lng != 0 {
		return models.Coordinates{Lat: cfg.Location.Lat, Lng: cfg.Location.Lng}
	}
	// Seed center, downtown San Francisco.
	return models.Coordinates{Lat: 37.7749, Lng: -122.4194}
}

// Run resolves the user location, relocates the demo chargers and serves
// HTTP until ctx ends.
func (a *App) Run(ctx context.Context) error {
	lookupCtx, cancel := context.WithTimeout(ctx, geoLookupTimeout)
	location := a.resolver.Resolve(lookupCtx)
	cancel()

	if location.Error == "" {
		a.dir.RelocateNear(location.Coords)
		a.logger.Info("charger set relocated near user",
			zap.Float64("lat", location.Coords.Lat),
			zap.Float64("lng", location.Coords.Lng))
	} else {
		a.logger.Warn("user location unavailable, keeping seed coordinates",
			zap.String("error", location.Error))
	}

	return a.server.Run(ctx)
}

// Close releases resources.
func (a *App) Close() {
	a.sessions.Close()
	a.hub.Close()
}
