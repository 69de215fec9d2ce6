package service

import (
	"context"
	"errors"

	"league-radar/internal/riot"
)

// GameAPI is the slice of the upstream client the services consume. Methods
// return the upstream status code; the error is transport-level only.
type GameAPI interface {
	AccountByRiotID(ctx context.Context, region, gameName, tagLine string) (*riot.Account, int, error)
	SummonerByPUUID(ctx context.Context, region, puuid string) (*riot.Summoner, int, error)
	ActiveGameByPUUID(ctx context.Context, region, puuid string) (*riot.ActiveGame, int, error)
	MatchIDsByPUUID(ctx context.Context, region, puuid string, count int) ([]string, int, error)
	MatchByID(ctx context.Context, region, matchID string) (*riot.Match, int, error)
}

// ChampionAssets is the static-asset cache contract. Lookups never fail;
// they degrade to sentinels while the cache is unloaded.
type ChampionAssets interface {
	EnsureLoaded(ctx context.Context)
	ChampionName(id int64) string
	ChampionID(name string) string
	ProfileIconURL(iconID int) string
}

// ErrNotFound reports that a player or their last match does not exist
// upstream. Handlers map it to a 404.
var ErrNotFound = errors.New("not found")
