package service

import (
	"context"
	"testing"
	"time"

	"league-radar/internal/domain"
	"league-radar/internal/riot"

	"github.com/rs/zerolog"
)

var testIdentity = domain.PlayerIdentity{
	ID:       "p1",
	Region:   "na1",
	GameName: "Faker",
	TagLine:  "KR1",
}

func newTestResolver(api *fakeAPI, now time.Time) *StatusResolver {
	r := NewStatusResolver(api, newFakeAssets(), zerolog.Nop())
	r.now = func() time.Time { return now }
	return r
}

// happyAPI returns a fakeAPI where account and summoner resolve and the
// spectator lookup reports no live game.
func happyAPI() *fakeAPI {
	return &fakeAPI{
		account:        &riot.Account{PUUID: "puuid-1", GameName: "Faker", TagLine: "KR1"},
		accountStatus:  200,
		summoner:       &riot.Summoner{PUUID: "puuid-1", ProfileIconID: 42},
		summonerStatus: 200,
		activeStatus:   404,
	}
}

func lastMatch(endedAt time.Time, bans []int64) *riot.Match {
	teamBans := make([]riot.TeamBan, 0, len(bans))
	for _, id := range bans {
		teamBans = append(teamBans, riot.TeamBan{ChampionID: id})
	}
	return &riot.Match{
		Metadata: riot.MatchMetadata{MatchID: "NA1_1"},
		Info: &riot.MatchInfo{
			GameEndTimestamp: endedAt.UnixMilli(),
			Participants: []riot.MatchParticipant{
				{PUUID: "puuid-1", RiotIDGameName: "Faker", RiotIDTagline: "KR1", ChampionName: "Zed", TeamID: 100, Kills: 10, Deaths: 2, Assists: 8, Win: true},
				{PUUID: "puuid-2", RiotIDGameName: "Chovy", RiotIDTagline: "KR2", ChampionName: "Ahri", TeamID: 200, Kills: 3, Deaths: 5, Assists: 4, Win: false},
			},
			Teams: []riot.MatchTeam{
				{TeamID: 100, Win: true, Bans: teamBans},
				{TeamID: 200, Win: false},
			},
		},
	}
}

func TestResolveMissingAPIKey(t *testing.T) {
	api := &fakeAPI{accountStatus: 500, accountErr: riot.ErrMissingAPIKey}
	r := newTestResolver(api, time.Now())

	status := r.Resolve(context.Background(), testIdentity, "Ahri")

	if status.Kind != domain.StatusError {
		t.Fatalf("kind: got %s, want ERROR", status.Kind)
	}
	if status.ErrorCode != domain.ErrServerConfig {
		t.Errorf("code: got %s, want SERVER_CONFIG_ERROR", status.ErrorCode)
	}
	if status.Message != "Server API Key Error" {
		t.Errorf("message: got %q", status.Message)
	}
	if len(api.calls) != 1 {
		t.Errorf("expected resolution to stop after the account step, calls: %v", api.calls)
	}
}

func TestResolvePlayerNotFound(t *testing.T) {
	api := &fakeAPI{accountStatus: 404}
	r := newTestResolver(api, time.Now())

	status := r.Resolve(context.Background(), testIdentity, "")
	if status.Kind != domain.StatusError || status.ErrorCode != domain.ErrPlayerNotFound {
		t.Fatalf("got %s/%s, want ERROR/PLAYER_NOT_FOUND", status.Kind, status.ErrorCode)
	}
	if status.Message != "Player Not Found" {
		t.Errorf("message: got %q", status.Message)
	}
}

func TestResolveSummonerNotFound(t *testing.T) {
	api := happyAPI()
	api.summoner = nil
	api.summonerStatus = 404
	r := newTestResolver(api, time.Now())

	status := r.Resolve(context.Background(), testIdentity, "")
	if status.Kind != domain.StatusError || status.ErrorCode != domain.ErrSummonerNotFound {
		t.Fatalf("got %s/%s, want ERROR/SUMMONER_NOT_FOUND", status.Kind, status.ErrorCode)
	}
}

func TestResolveLiveGame(t *testing.T) {
	now := time.Now()
	api := happyAPI()
	api.activeStatus = 200
	api.active = &riot.ActiveGame{
		GameStartTime: now.Add(-5*time.Minute - 7*time.Second).UnixMilli(),
		BannedChampions: []riot.BannedChampion{
			{ChampionID: 103, TeamID: 100},
			{ChampionID: 238, TeamID: 200},
		},
		Participants: []riot.ActiveGameParticipant{
			{PUUID: "puuid-1", RiotID: "Faker#KR1", ChampionID: 62, TeamID: 100},
			{PUUID: "puuid-2", RiotID: "Chovy#KR2", ChampionID: 238, TeamID: 200},
		},
	}
	r := newTestResolver(api, now)

	status := r.Resolve(context.Background(), testIdentity, "ahri")

	if status.Kind != domain.StatusInGame {
		t.Fatalf("kind: got %s, want IN_GAME", status.Kind)
	}
	if status.LiveMatch == nil {
		t.Fatal("liveMatchInfo missing")
	}
	if status.LiveMatch.ElapsedSeconds < 0 {
		t.Errorf("elapsedSeconds negative: %d", status.LiveMatch.ElapsedSeconds)
	}
	if status.Message != "IN GAME (5:07)" {
		t.Errorf("message: got %q, want \"IN GAME (5:07)\"", status.Message)
	}
	// Ban membership is case-insensitive: "ahri" matches the "Ahri" ban.
	if status.WatchedChampBan == nil || !*status.WatchedChampBan {
		t.Errorf("watched champion should be reported banned")
	}
	if got := status.LiveMatch.RosterTeamOne[0]; got.Name != "Faker" || got.TagLine != "KR1" || got.Champion != "Wukong" {
		t.Errorf("roster entry: got %+v", got)
	}
}

func TestResolveFutureStartClampsElapsed(t *testing.T) {
	now := time.Now()
	api := happyAPI()
	api.activeStatus = 200
	api.active = &riot.ActiveGame{GameStartTime: now.Add(30 * time.Second).UnixMilli()}
	r := newTestResolver(api, now)

	status := r.Resolve(context.Background(), testIdentity, "")
	if status.LiveMatch.ElapsedSeconds != 0 {
		t.Errorf("elapsedSeconds: got %d, want 0", status.LiveMatch.ElapsedSeconds)
	}
	if status.Message != "IN GAME (0:00)" {
		t.Errorf("message: got %q", status.Message)
	}
}

func TestResolveHighRiskBoundary(t *testing.T) {
	now := time.Now()
	cases := []struct {
		name        string
		endedAgo    time.Duration
		want        domain.StatusKind
		wantMessage string
	}{
		{"exactly 15 minutes is high risk", 15 * time.Minute, domain.StatusHighRisk, "Last game: 15m ago"},
		{"16 minutes is low risk", 16 * time.Minute, domain.StatusLowRisk, "Last game: 16m ago"},
		{"just finished", 0, domain.StatusHighRisk, "Last game: Just now"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			api := happyAPI()
			api.matchIDs = []string{"NA1_1"}
			api.matchIDsStatus = 200
			api.match = lastMatch(now.Add(-tc.endedAgo), []int64{103})
			api.matchStatus = 200
			r := newTestResolver(api, now)

			status := r.Resolve(context.Background(), testIdentity, "Ahri")
			if status.Kind != tc.want {
				t.Fatalf("kind: got %s, want %s", status.Kind, tc.want)
			}
			if status.Message != tc.wantMessage {
				t.Errorf("message: got %q, want %q", status.Message, tc.wantMessage)
			}
			if status.LastMatch == nil {
				t.Error("completedMatchSummary missing")
			}
		})
	}
}

func TestResolveForbiddenLiveLookupStillClassifiesByHistory(t *testing.T) {
	now := time.Now()
	api := happyAPI()
	api.activeStatus = 403
	api.matchIDs = []string{"NA1_1"}
	api.matchIDsStatus = 200
	api.match = lastMatch(now.Add(-5*time.Minute), nil)
	api.matchStatus = 200
	r := newTestResolver(api, now)

	status := r.Resolve(context.Background(), testIdentity, "")
	if status.Kind != domain.StatusHighRisk {
		t.Fatalf("kind: got %s, want HIGH_RISK (403 must not terminate the flow)", status.Kind)
	}
}

func TestResolveNoRecentGames(t *testing.T) {
	api := happyAPI()
	api.matchIDs = nil
	api.matchIDsStatus = 200
	r := newTestResolver(api, time.Now())

	status := r.Resolve(context.Background(), testIdentity, "")
	if status.Kind != domain.StatusLowRisk {
		t.Fatalf("kind: got %s, want LOW_RISK", status.Kind)
	}
	if status.Message != "No recent games" {
		t.Errorf("message: got %q", status.Message)
	}
	if status.LastMatch != nil {
		t.Error("no match summary expected when there are no games")
	}
}

func TestResolveMatchHistoryError(t *testing.T) {
	api := happyAPI()
	api.matchIDs = []string{"NA1_1"}
	api.matchIDsStatus = 200
	api.matchStatus = 500
	r := newTestResolver(api, time.Now())

	status := r.Resolve(context.Background(), testIdentity, "")
	if status.Kind != domain.StatusError || status.ErrorCode != domain.ErrMatchHistory {
		t.Fatalf("got %s/%s, want ERROR/MATCH_HISTORY_ERROR", status.Kind, status.ErrorCode)
	}
	if status.Message != "Match History Error" {
		t.Errorf("message: got %q", status.Message)
	}
}

func TestResolveBanCheckUsesCanonicalKey(t *testing.T) {
	now := time.Now()
	api := happyAPI()
	api.matchIDs = []string{"NA1_1"}
	api.matchIDsStatus = 200
	// Ban id 62 maps to the display name "Wukong"; watching "wukong"
	// resolves to canonical "MonkeyKing" and must still match.
	api.match = lastMatch(now.Add(-2*time.Minute), []int64{62})
	api.matchStatus = 200
	r := newTestResolver(api, now)

	status := r.Resolve(context.Background(), testIdentity, "wukong")
	if status.WatchedChampBan == nil || !*status.WatchedChampBan {
		t.Error("watched champion should be reported banned")
	}
}

func TestResolveNoWatchedChampionLeavesBanUnset(t *testing.T) {
	now := time.Now()
	api := happyAPI()
	api.matchIDs = []string{"NA1_1"}
	api.matchIDsStatus = 200
	api.match = lastMatch(now.Add(-2*time.Minute), []int64{103})
	api.matchStatus = 200
	r := newTestResolver(api, now)

	status := r.Resolve(context.Background(), testIdentity, "")
	if status.WatchedChampBan != nil {
		t.Errorf("ban state should be unset when nothing is watched, got %v", *status.WatchedChampBan)
	}
}
