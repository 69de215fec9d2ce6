package service

import (
	"context"
	"fmt"

	"league-radar/internal/domain"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// ParticipantsService lists the roster of a player's most recent completed
// match, shaped for pre-filling a batch check on the caller's side.
type ParticipantsService struct {
	api    GameAPI
	assets ChampionAssets
	logger zerolog.Logger
}

func NewParticipantsService(api GameAPI, assets ChampionAssets, logger zerolog.Logger) *ParticipantsService {
	return &ParticipantsService{api: api, assets: assets, logger: logger}
}

func (s *ParticipantsService) LastGameParticipants(ctx context.Context, region, gameName, tagLine string) ([]domain.LastGameParticipant, error) {
	s.assets.EnsureLoaded(ctx)

	account, status, err := s.api.AccountByRiotID(ctx, region, gameName, tagLine)
	if err != nil {
		return nil, fmt.Errorf("account lookup: %w", err)
	}
	if status == fasthttp.StatusNotFound {
		return nil, fmt.Errorf("account %s#%s: %w", gameName, tagLine, ErrNotFound)
	}
	if status != fasthttp.StatusOK || account == nil {
		return nil, fmt.Errorf("account lookup returned %d", status)
	}

	ids, status, err := s.api.MatchIDsByPUUID(ctx, region, account.PUUID, 1)
	if err != nil {
		return nil, fmt.Errorf("match id lookup: %w", err)
	}
	if status != fasthttp.StatusOK {
		return nil, fmt.Errorf("match id lookup returned %d", status)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("no completed matches: %w", ErrNotFound)
	}

	match, status, err := s.api.MatchByID(ctx, region, ids[0])
	if err != nil {
		return nil, fmt.Errorf("match fetch: %w", err)
	}
	if status != fasthttp.StatusOK || match == nil || match.Info == nil {
		return nil, fmt.Errorf("match %s: %w", ids[0], ErrNotFound)
	}

	participants := make([]domain.LastGameParticipant, 0, len(match.Info.Participants))
	for _, p := range match.Info.Participants {
		participants = append(participants, domain.LastGameParticipant{
			GameName:       p.DisplayName(),
			TagLine:        p.RiotIDTagline,
			Region:         region,
			PUUID:          p.PUUID,
			ProfileIconURL: s.assets.ProfileIconURL(p.ProfileIcon),
		})
	}

	s.logger.Info().Str("match_id", ids[0]).Int("participants", len(participants)).Msg("last game roster resolved")
	return participants, nil
}
