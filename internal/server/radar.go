package server

import (
	"errors"
	"net/http"

	"league-radar/internal/domain"
	"league-radar/internal/riot"
	"league-radar/internal/service"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
)

// RadarServer adapts the services to the JSON-over-POST surface the browser
// client consumes.
type RadarServer struct {
	batch        *service.BatchOrchestrator
	radar        *service.RadarService
	participants *service.ParticipantsService
	logger       zerolog.Logger
}

func NewRadarServer(batch *service.BatchOrchestrator, radar *service.RadarService, participants *service.ParticipantsService, logger zerolog.Logger) *RadarServer {
	return &RadarServer{batch: batch, radar: radar, participants: participants, logger: logger}
}

type checkRequest struct {
	Players      []domain.PlayerIdentity `json:"players"`
	ChampToTrack string                  `json:"champToTrack"`
}

// CheckPlayers handles POST /api/check.
func (s *RadarServer) CheckPlayers(w http.ResponseWriter, r *http.Request) {
	if handledPreflight(w, r) {
		return
	}

	var req checkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if len(req.Players) == 0 {
		writeError(w, http.StatusBadRequest, "players is required")
		return
	}

	results := s.batch.CheckAll(r.Context(), req.Players, req.ChampToTrack)
	writeJSON(w, http.StatusOK, results)
}

type lastGameRequest struct {
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
	Region   string `json:"region"`
}

// LastGamePlayers handles POST /api/last-game-players.
func (s *RadarServer) LastGamePlayers(w http.ResponseWriter, r *http.Request) {
	if handledPreflight(w, r) {
		return
	}

	var req lastGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.GameName == "" || req.TagLine == "" || req.Region == "" {
		writeError(w, http.StatusBadRequest, "gameName, tagLine and region are required")
		return
	}

	participants, err := s.participants.LastGameParticipants(r.Context(), req.Region, req.GameName, req.TagLine)
	switch {
	case errors.Is(err, service.ErrNotFound):
		writeError(w, http.StatusNotFound, "player or match not found")
	case errors.Is(err, riot.ErrMissingAPIKey):
		writeError(w, http.StatusInternalServerError, "Server API Key Error")
	case err != nil:
		s.logger.Error().Err(err).Msg("last game lookup failed")
		writeError(w, http.StatusInternalServerError, "internal error")
	default:
		writeJSON(w, http.StatusOK, participants)
	}
}

type radarRequest struct {
	Players []domain.RadarProbe `json:"players"`
}

// RadarCheck handles POST /api/radar.
func (s *RadarServer) RadarCheck(w http.ResponseWriter, r *http.Request) {
	if handledPreflight(w, r) {
		return
	}

	var req radarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Players == nil {
		writeError(w, http.StatusBadRequest, "players is required")
		return
	}

	writeJSON(w, http.StatusOK, s.radar.Check(r.Context(), req.Players))
}

// handledPreflight answers bare OPTIONS requests that the CORS layer passed
// through (ones without preflight headers).
func handledPreflight(w http.ResponseWriter, r *http.Request) bool {
	if r.Method != http.MethodOptions {
		return false
	}
	w.WriteHeader(http.StatusOK)
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Headers are already written, an encode failure here is unrecoverable.
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
