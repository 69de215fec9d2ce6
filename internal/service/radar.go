package service

import (
	"context"

	"league-radar/internal/domain"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// RadarService answers the cheap question "in a game right now?" for
// accounts whose puuid is already known, skipping the account and summoner
// lookups entirely.
type RadarService struct {
	api      GameAPI
	throttle Throttle
	logger   zerolog.Logger
}

func NewRadarService(api GameAPI, throttle Throttle, logger zerolog.Logger) *RadarService {
	return &RadarService{api: api, throttle: throttle, logger: logger}
}

func (s *RadarService) Check(ctx context.Context, probes []domain.RadarProbe) []domain.RadarResult {
	results := make([]domain.RadarResult, 0, len(probes))
	for i, probe := range probes {
		results = append(results, domain.RadarResult{
			PUUID:  probe.PUUID,
			Status: s.probeOne(ctx, probe),
		})

		if i < len(probes)-1 {
			if err := s.throttle.Wait(ctx); err != nil {
				s.logger.Warn().Err(err).Msg("radar interrupted while throttling")
			}
		}
	}
	return results
}

func (s *RadarService) probeOne(ctx context.Context, probe domain.RadarProbe) domain.RadarState {
	if ctx.Err() != nil {
		return domain.RadarError
	}

	_, status, err := s.api.ActiveGameByPUUID(ctx, probe.Region, probe.PUUID)
	if err != nil {
		s.logger.Debug().Err(err).Str("puuid", probe.PUUID).Msg("radar probe failed")
		return domain.RadarError
	}

	switch status {
	case fasthttp.StatusOK:
		return domain.RadarInGame
	case fasthttp.StatusNotFound, fasthttp.StatusForbidden:
		// 403 means spectating is blocked, not that the player is away,
		// but with no visibility the probe reports the same answer.
		return domain.RadarNotInGame
	default:
		return domain.RadarError
	}
}
