package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"league-radar/internal/constants"
	"league-radar/internal/domain"
	"league-radar/internal/riot"

	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// resolveState names one step of the status-resolution machine. Each step
// either advances the chain or terminates it with a finished status.
type resolveState int

const (
	stateAccount resolveState = iota
	stateProfile
	stateLive
	stateHistory
	stateDone
	stateFailed
)

// resolution carries the intermediate results across states.
type resolution struct {
	identity   domain.PlayerIdentity
	watched    string
	watchedKey string

	puuid          string
	profileIconURL string

	// liveBlocked records a 403 from the spectator endpoint. The flow
	// treats it the same as a 404 (no live-match visibility) and relies on
	// the history check, but the distinction stays visible in debug logs.
	liveBlocked bool

	status domain.PlayerStatus
}

// StatusResolver chains the upstream lookups that classify one player as
// in game, fresh out of one, or idle.
type StatusResolver struct {
	api    GameAPI
	assets ChampionAssets
	logger zerolog.Logger
	now    func() time.Time
}

func NewStatusResolver(api GameAPI, assets ChampionAssets, logger zerolog.Logger) *StatusResolver {
	return &StatusResolver{api: api, assets: assets, logger: logger, now: time.Now}
}

// Resolve produces exactly one PlayerStatus. It never returns an error:
// every failure mode collapses into an ERROR-kind status so a batch slot is
// always filled.
func (r *StatusResolver) Resolve(ctx context.Context, identity domain.PlayerIdentity, watchedChampion string) domain.PlayerStatus {
	r.assets.EnsureLoaded(ctx)

	res := &resolution{
		identity:   identity,
		watched:    watchedChampion,
		watchedKey: r.assets.ChampionID(watchedChampion),
	}

	state := stateAccount
	for state != stateDone && state != stateFailed {
		switch state {
		case stateAccount:
			state = r.resolveAccount(ctx, res)
		case stateProfile:
			state = r.resolveProfile(ctx, res)
		case stateLive:
			state = r.checkLive(ctx, res)
		case stateHistory:
			state = r.fetchHistory(ctx, res)
		}
	}

	return res.status
}

func (r *StatusResolver) resolveAccount(ctx context.Context, res *resolution) resolveState {
	account, status, err := r.api.AccountByRiotID(ctx, res.identity.Region, res.identity.GameName, res.identity.TagLine)
	if errors.Is(err, riot.ErrMissingAPIKey) {
		return fail(res, domain.ErrServerConfig, "Server API Key Error")
	}
	if err != nil {
		r.logger.Error().Err(err).Str("game_name", res.identity.GameName).Msg("account lookup failed")
		return fail(res, domain.ErrUpstreamUnavailable, "Player Not Found")
	}
	if status != fasthttp.StatusOK || account == nil {
		return fail(res, domain.ErrPlayerNotFound, "Player Not Found")
	}

	res.puuid = account.PUUID
	return stateProfile
}

func (r *StatusResolver) resolveProfile(ctx context.Context, res *resolution) resolveState {
	summoner, status, err := r.api.SummonerByPUUID(ctx, res.identity.Region, res.puuid)
	if errors.Is(err, riot.ErrMissingAPIKey) {
		return fail(res, domain.ErrServerConfig, "Server API Key Error")
	}
	if err != nil {
		r.logger.Error().Err(err).Str("puuid", res.puuid).Msg("summoner lookup failed")
		return fail(res, domain.ErrUpstreamUnavailable, "Summoner Not Found")
	}
	if status != fasthttp.StatusOK || summoner == nil {
		return fail(res, domain.ErrSummonerNotFound, "Summoner Not Found")
	}

	res.profileIconURL = r.assets.ProfileIconURL(summoner.ProfileIconID)
	return stateLive
}

func (r *StatusResolver) checkLive(ctx context.Context, res *resolution) resolveState {
	game, status, err := r.api.ActiveGameByPUUID(ctx, res.identity.Region, res.puuid)
	if err != nil || status != fasthttp.StatusOK || game == nil {
		// Not live, not visible, or the lookup itself failed: none of
		// these terminate the flow, the history check decides.
		res.liveBlocked = status == fasthttp.StatusForbidden
		r.logger.Debug().
			Int("status", status).
			Bool("live_blocked", res.liveBlocked).
			Str("puuid", res.puuid).
			Msg("no live match visibility")
		return stateHistory
	}

	live := r.buildLiveMatch(game)

	minutes := live.ElapsedSeconds / 60
	seconds := live.ElapsedSeconds % 60

	res.status = domain.PlayerStatus{
		Kind:            domain.StatusInGame,
		Message:         fmt.Sprintf("IN GAME (%d:%02d)", minutes, seconds),
		ProfileIconURL:  res.profileIconURL,
		LiveMatch:       live,
		WatchedChampBan: r.watchedBanState(res, append(append([]string{}, live.BansTeamOne...), live.BansTeamTwo...)),
	}
	return stateDone
}

func (r *StatusResolver) buildLiveMatch(game *riot.ActiveGame) *domain.LiveMatchInfo {
	elapsed := r.now().UnixMilli() - game.GameStartTime
	if elapsed < 0 {
		elapsed = 0
	}

	live := &domain.LiveMatchInfo{
		StartTimestamp: game.GameStartTime,
		ElapsedSeconds: elapsed / 1000,
	}

	for _, ban := range game.BannedChampions {
		name := r.assets.ChampionName(ban.ChampionID)
		if ban.TeamID == riot.TeamOneID {
			live.BansTeamOne = append(live.BansTeamOne, name)
		} else {
			live.BansTeamTwo = append(live.BansTeamTwo, name)
		}
	}

	for _, p := range game.Participants {
		name, tag := splitRiotID(p.RiotID)
		entry := domain.RosterEntry{
			Name:     name,
			TagLine:  tag,
			Champion: r.assets.ChampionName(p.ChampionID),
		}
		if p.TeamID == riot.TeamOneID {
			live.RosterTeamOne = append(live.RosterTeamOne, entry)
		} else {
			live.RosterTeamTwo = append(live.RosterTeamTwo, entry)
		}
	}

	return live
}

func (r *StatusResolver) fetchHistory(ctx context.Context, res *resolution) resolveState {
	ids, status, err := r.api.MatchIDsByPUUID(ctx, res.identity.Region, res.puuid, 1)
	if errors.Is(err, riot.ErrMissingAPIKey) {
		return fail(res, domain.ErrServerConfig, "Server API Key Error")
	}
	if err != nil {
		r.logger.Error().Err(err).Str("puuid", res.puuid).Msg("match id lookup failed")
		return fail(res, domain.ErrUpstreamUnavailable, "Match History Error")
	}
	if status != fasthttp.StatusOK {
		return fail(res, domain.ErrMatchHistory, "Match History Error")
	}
	if len(ids) == 0 {
		res.status = domain.PlayerStatus{
			Kind:           domain.StatusLowRisk,
			Message:        "No recent games",
			ProfileIconURL: res.profileIconURL,
		}
		return stateDone
	}

	match, status, err := r.api.MatchByID(ctx, res.identity.Region, ids[0])
	if err != nil || status != fasthttp.StatusOK || match == nil {
		if err != nil {
			r.logger.Error().Err(err).Str("match_id", ids[0]).Msg("match detail fetch failed")
			return fail(res, domain.ErrUpstreamUnavailable, "Match History Error")
		}
		return fail(res, domain.ErrMatchHistory, "Match History Error")
	}

	summary := ProjectMatch(match, res.puuid, r.assets)
	if summary == nil {
		return fail(res, domain.ErrMatchHistory, "Match History Error")
	}

	minutesAgo := int64(0)
	if match.Info.GameEndTimestamp > 0 {
		minutesAgo = (r.now().UnixMilli() - match.Info.GameEndTimestamp) / 60000
		if minutesAgo < 0 {
			minutesAgo = 0
		}
	}

	kind := domain.StatusLowRisk
	if minutesAgo <= constants.HighRiskWindowMinutes {
		kind = domain.StatusHighRisk
	}

	bans := append(append([]string{}, summary.BansTeamOne...), summary.BansTeamTwo...)

	res.status = domain.PlayerStatus{
		Kind:            kind,
		Message:         fmt.Sprintf("Last game: %s", FormatTimeAgo(minutesAgo)),
		ProfileIconURL:  res.profileIconURL,
		LastMatch:       summary,
		WatchedChampBan: r.watchedBanState(res, bans),
	}
	return stateDone
}

// watchedBanState reports whether the watched champion appears in the given
// ban list, matching case-insensitively against both the name the caller
// supplied and its canonical asset key. Nil when nothing is being watched.
func (r *StatusResolver) watchedBanState(res *resolution, bans []string) *bool {
	if res.watched == "" {
		return nil
	}
	banned := false
	for _, ban := range bans {
		if strings.EqualFold(ban, res.watched) || strings.EqualFold(ban, res.watchedKey) {
			banned = true
			break
		}
	}
	return &banned
}

func fail(res *resolution, code domain.ErrorCode, message string) resolveState {
	res.status = domain.PlayerStatus{
		Kind:      domain.StatusError,
		ErrorCode: code,
		Message:   message,
	}
	return stateFailed
}

func splitRiotID(riotID string) (name, tag string) {
	if i := strings.LastIndex(riotID, "#"); i >= 0 {
		return riotID[:i], riotID[i+1:]
	}
	return riotID, ""
}
