package fx

import (
	"league-radar/internal/config"
	"league-radar/internal/ddragon"
	"league-radar/internal/logger"
	"league-radar/internal/riot"
	"league-radar/internal/server"
	"league-radar/internal/service"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func ProvideAssets(log zerolog.Logger) *ddragon.Cache {
	return ddragon.NewCache(log)
}

func ProvideThrottle(cfg *config.Config) service.Throttle {
	return service.FixedDelay{Delay: cfg.BatchDelay}
}

func ProvideResolver(client *riot.Client, assets *ddragon.Cache, log zerolog.Logger) *service.StatusResolver {
	return service.NewStatusResolver(client, assets, log)
}

func ProvideBatch(resolver *service.StatusResolver, throttle service.Throttle, log zerolog.Logger) *service.BatchOrchestrator {
	return service.NewBatchOrchestrator(resolver, throttle, log)
}

func ProvideRadar(client *riot.Client, throttle service.Throttle, log zerolog.Logger) *service.RadarService {
	return service.NewRadarService(client, throttle, log)
}

func ProvideParticipants(client *riot.Client, assets *ddragon.Cache, log zerolog.Logger) *service.ParticipantsService {
	return service.NewParticipantsService(client, assets, log)
}

var Module = fx.Options(
	fx.Provide(logger.New),
	fx.Provide(config.Load),
	// upstream client + static assets
	fx.Provide(riot.NewClient),
	fx.Provide(ProvideAssets),
	// svc
	fx.Provide(ProvideThrottle),
	fx.Provide(ProvideResolver),
	fx.Provide(ProvideBatch),
	fx.Provide(ProvideRadar),
	fx.Provide(ProvideParticipants),
	// server
	fx.Provide(server.NewRadarServer),
)
