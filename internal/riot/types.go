package riot

// Account is the account-v1 by-riot-id response.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the summoner-v4 by-puuid response.
type Summoner struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
}

// ActiveGame is the spectator-v5 active-games response.
type ActiveGame struct {
	GameID          int64                   `json:"gameId"`
	GameMode        string                  `json:"gameMode"`
	GameType        string                  `json:"gameType"`
	GameStartTime   int64                   `json:"gameStartTime"`
	GameLength      int64                   `json:"gameLength"`
	PlatformID      string                  `json:"platformId"`
	BannedChampions []BannedChampion        `json:"bannedChampions"`
	Participants    []ActiveGameParticipant `json:"participants"`
}

type BannedChampion struct {
	ChampionID int64 `json:"championId"`
	TeamID     int64 `json:"teamId"`
	PickTurn   int   `json:"pickTurn"`
}

type ActiveGameParticipant struct {
	PUUID      string `json:"puuid"`
	RiotID     string `json:"riotId"`
	ChampionID int64  `json:"championId"`
	TeamID     int64  `json:"teamId"`
	Bot        bool   `json:"bot"`
}

// Match is the match-v5 response, trimmed to the fields the projector and
// the participants endpoint read.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     *MatchInfo    `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameCreation     int64              `json:"gameCreation"`
	GameEndTimestamp int64              `json:"gameEndTimestamp"`
	GameDuration     int64              `json:"gameDuration"`
	GameMode         string             `json:"gameMode"`
	QueueID          int                `json:"queueId"`
	Participants     []MatchParticipant `json:"participants"`
	Teams            []MatchTeam        `json:"teams"`
}

type MatchParticipant struct {
	PUUID          string `json:"puuid"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`
	SummonerName   string `json:"summonerName"`
	ChampionID     int64  `json:"championId"`
	ChampionName   string `json:"championName"`
	TeamID         int64  `json:"teamId"`
	Kills          int    `json:"kills"`
	Deaths         int    `json:"deaths"`
	Assists        int    `json:"assists"`
	ProfileIcon    int    `json:"profileIcon"`
	Win            bool   `json:"win"`
}

type MatchTeam struct {
	TeamID int64     `json:"teamId"`
	Win    bool      `json:"win"`
	Bans   []TeamBan `json:"bans"`
}

type TeamBan struct {
	ChampionID int64 `json:"championId"`
	PickTurn   int   `json:"pickTurn"`
}

// Team discriminators are fixed in the upstream data.
const (
	TeamOneID int64 = 100
	TeamTwoID int64 = 200
)

// DisplayName prefers the riot-id fields and falls back to the legacy
// summoner name some historical records still carry.
func (p MatchParticipant) DisplayName() string {
	if p.RiotIDGameName != "" {
		return p.RiotIDGameName
	}
	return p.SummonerName
}
