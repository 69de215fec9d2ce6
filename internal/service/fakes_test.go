package service

import (
	"context"
	"fmt"
	"strings"

	"league-radar/internal/riot"
)

// fakeAPI scripts upstream responses per endpoint and records every call so
// tests can assert on what was (or wasn't) attempted.
type fakeAPI struct {
	account       *riot.Account
	accountStatus int
	accountErr    error

	summoner       *riot.Summoner
	summonerStatus int
	summonerErr    error

	active       *riot.ActiveGame
	activeStatus int
	activeErr    error

	matchIDs       []string
	matchIDsStatus int
	matchIDsErr    error

	match       *riot.Match
	matchStatus int
	matchErr    error

	calls []string
}

func (f *fakeAPI) AccountByRiotID(ctx context.Context, region, gameName, tagLine string) (*riot.Account, int, error) {
	f.calls = append(f.calls, "account")
	return f.account, f.accountStatus, f.accountErr
}

func (f *fakeAPI) SummonerByPUUID(ctx context.Context, region, puuid string) (*riot.Summoner, int, error) {
	f.calls = append(f.calls, "summoner")
	return f.summoner, f.summonerStatus, f.summonerErr
}

func (f *fakeAPI) ActiveGameByPUUID(ctx context.Context, region, puuid string) (*riot.ActiveGame, int, error) {
	f.calls = append(f.calls, "active")
	return f.active, f.activeStatus, f.activeErr
}

func (f *fakeAPI) MatchIDsByPUUID(ctx context.Context, region, puuid string, count int) ([]string, int, error) {
	f.calls = append(f.calls, "matchIDs")
	return f.matchIDs, f.matchIDsStatus, f.matchIDsErr
}

func (f *fakeAPI) MatchByID(ctx context.Context, region, matchID string) (*riot.Match, int, error) {
	f.calls = append(f.calls, "match")
	return f.match, f.matchStatus, f.matchErr
}

// fakeAssets is a pre-populated champion table.
type fakeAssets struct {
	names map[int64]string
	ids   map[string]string
}

func newFakeAssets() *fakeAssets {
	return &fakeAssets{
		names: map[int64]string{103: "Ahri", 62: "Wukong", 238: "Zed"},
		ids:   map[string]string{"ahri": "Ahri", "wukong": "MonkeyKing", "zed": "Zed"},
	}
}

func (f *fakeAssets) EnsureLoaded(ctx context.Context) {}

func (f *fakeAssets) ChampionName(id int64) string {
	if name, ok := f.names[id]; ok {
		return name
	}
	return "Unknown"
}

func (f *fakeAssets) ChampionID(name string) string {
	if id, ok := f.ids[strings.ToLower(name)]; ok {
		return id
	}
	return name
}

func (f *fakeAssets) ProfileIconURL(iconID int) string {
	return fmt.Sprintf("https://cdn.example/img/profileicon/%d.png", iconID)
}
