package domain

// PlayerIdentity names one account to look up, as supplied by the caller.
type PlayerIdentity struct {
	ID       string `json:"id"`
	Region   string `json:"region"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// AccountRecord is the upstream identity resolved from a PlayerIdentity.
// PUUID is the join key for every subsequent lookup.
type AccountRecord struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

type StatusKind string

const (
	StatusInGame   StatusKind = "IN_GAME"
	StatusHighRisk StatusKind = "HIGH_RISK"
	StatusLowRisk  StatusKind = "LOW_RISK"
	StatusError    StatusKind = "ERROR"
)

// ErrorCode classifies ERROR statuses. Empty for non-error statuses.
type ErrorCode string

const (
	ErrPlayerNotFound      ErrorCode = "PLAYER_NOT_FOUND"
	ErrSummonerNotFound    ErrorCode = "SUMMONER_NOT_FOUND"
	ErrServerConfig        ErrorCode = "SERVER_CONFIG_ERROR"
	ErrMatchHistory        ErrorCode = "MATCH_HISTORY_ERROR"
	ErrUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
)

// RosterEntry is one participant of a live or completed match.
type RosterEntry struct {
	Name     string `json:"name"`
	TagLine  string `json:"tagLine,omitempty"`
	Champion string `json:"champion"`
}

// LiveMatchInfo describes a match in progress. It only exists while the
// spectator endpoint reports one.
type LiveMatchInfo struct {
	StartTimestamp int64         `json:"startTimestamp"`
	ElapsedSeconds int64         `json:"elapsedSeconds"`
	BansTeamOne    []string      `json:"bansTeamOne"`
	BansTeamTwo    []string      `json:"bansTeamTwo"`
	RosterTeamOne  []RosterEntry `json:"rosterTeamOne"`
	RosterTeamTwo  []RosterEntry `json:"rosterTeamTwo"`
}

// CompletedMatchSummary is the projection of one raw match record relative
// to the tracked player. Derived once per resolution, never stored.
type CompletedMatchSummary struct {
	Win           bool          `json:"win"`
	Champion      string        `json:"champion"`
	KDA           string        `json:"kda"`
	BansTeamOne   []string      `json:"bansTeamOne"`
	BansTeamTwo   []string      `json:"bansTeamTwo"`
	RosterTeamOne []RosterEntry `json:"rosterTeamOne"`
	RosterTeamTwo []RosterEntry `json:"rosterTeamTwo"`
}

// PlayerStatus is the sole resolver output, fully recomputed on every call.
type PlayerStatus struct {
	Kind            StatusKind             `json:"status"`
	ErrorCode       ErrorCode              `json:"errorCode,omitempty"`
	Message         string                 `json:"message"`
	WatchedChampBan *bool                  `json:"isWatchedChampionBanned,omitempty"`
	ProfileIconURL  string                 `json:"profileIconUrl,omitempty"`
	LiveMatch       *LiveMatchInfo         `json:"liveMatchInfo,omitempty"`
	LastMatch       *CompletedMatchSummary `json:"completedMatchSummary,omitempty"`
}

// TaggedStatus pairs a batch result with the id it was requested under so
// callers can correlate slots regardless of ordering on their side.
type TaggedStatus struct {
	ID string `json:"id"`
	PlayerStatus
}

// RadarState is the lightweight in-game probe result.
type RadarState string

const (
	RadarInGame    RadarState = "IN_GAME"
	RadarNotInGame RadarState = "NOT_IN_GAME"
	RadarError     RadarState = "ERROR"
)

// RadarProbe asks whether one already-resolved account is in a game.
type RadarProbe struct {
	PUUID  string `json:"puuid"`
	Region string `json:"region"`
}

type RadarResult struct {
	PUUID  string     `json:"puuid"`
	Status RadarState `json:"status"`
}

// LastGameParticipant is one roster slot of a player's most recent match,
// shaped for the participants endpoint.
type LastGameParticipant struct {
	GameName       string `json:"gameName"`
	TagLine        string `json:"tagLine"`
	Region         string `json:"region"`
	PUUID          string `json:"puuid"`
	ProfileIconURL string `json:"profileIconUrl"`
}
