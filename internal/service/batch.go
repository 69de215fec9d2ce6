package service

import (
	"context"

	"league-radar/internal/domain"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/rs/zerolog"
)

// Resolver is what the orchestrator needs from the status resolver.
type Resolver interface {
	Resolve(ctx context.Context, identity domain.PlayerIdentity, watchedChampion string) domain.PlayerStatus
}

// BatchOrchestrator walks a player list strictly sequentially, pacing the
// upstream calls through the injected throttle. One player's failure, panic
// included, never discards the other slots: the batch always returns
// exactly one tagged result per input, in input order.
type BatchOrchestrator struct {
	resolver Resolver
	throttle Throttle
	logger   zerolog.Logger
}

func NewBatchOrchestrator(resolver Resolver, throttle Throttle, logger zerolog.Logger) *BatchOrchestrator {
	return &BatchOrchestrator{resolver: resolver, throttle: throttle, logger: logger}
}

func (b *BatchOrchestrator) CheckAll(ctx context.Context, players []domain.PlayerIdentity, watchedChampion string) []domain.TaggedStatus {
	jobID, err := gonanoid.New(8)
	if err != nil {
		jobID = "unknown"
	}
	logger := b.logger.With().Str("job_id", jobID).Logger()
	logger.Info().Int("players", len(players)).Str("watched", watchedChampion).Msg("batch check started")

	results := make([]domain.TaggedStatus, 0, len(players))
	for i, player := range players {
		if ctx.Err() != nil {
			results = append(results, cancelledSlot(player.ID))
			continue
		}

		status := b.resolveOne(ctx, logger, player, watchedChampion)
		results = append(results, domain.TaggedStatus{ID: player.ID, PlayerStatus: status})

		if i < len(players)-1 {
			if err := b.throttle.Wait(ctx); err != nil {
				logger.Warn().Err(err).Msg("batch interrupted while throttling")
			}
		}
	}

	logger.Info().Int("results", len(results)).Msg("batch check finished")
	return results
}

// resolveOne isolates a single player's resolution so a panic fills that
// slot with an ERROR instead of taking down the whole batch.
func (b *BatchOrchestrator) resolveOne(ctx context.Context, logger zerolog.Logger, player domain.PlayerIdentity, watchedChampion string) (status domain.PlayerStatus) {
	defer func() {
		if rec := recover(); rec != nil {
			logger.Error().Interface("panic", rec).Str("player_id", player.ID).Msg("resolver panicked")
			status = domain.PlayerStatus{
				Kind:      domain.StatusError,
				ErrorCode: domain.ErrUpstreamUnavailable,
				Message:   "Internal error",
			}
		}
	}()
	return b.resolver.Resolve(ctx, player, watchedChampion)
}

func cancelledSlot(id string) domain.TaggedStatus {
	return domain.TaggedStatus{
		ID: id,
		PlayerStatus: domain.PlayerStatus{
			Kind:      domain.StatusError,
			ErrorCode: domain.ErrUpstreamUnavailable,
			Message:   "Request cancelled",
		},
	}
}
