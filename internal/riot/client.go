package riot

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"league-radar/internal/config"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
)

// ErrMissingAPIKey marks the synthetic 500 emitted when no credential is
// configured. No network call is attempted in that case.
var ErrMissingAPIKey = errors.New("riot api key not configured")

// ErrUnknownRegion marks a region code outside the routing tables.
var ErrUnknownRegion = errors.New("unknown region")

// Client talks to the Riot REST API. Non-2xx responses are not errors:
// every method returns the upstream status code and callers branch on it.
// The error return carries transport-level failures only.
type Client struct {
	apiKey string
	client *fasthttp.Client
	logger zerolog.Logger
}

func NewClient(cfg *config.Config, logger zerolog.Logger) *Client {
	return &Client{
		apiKey: cfg.RiotAPIKey,
		client: &fasthttp.Client{
			MaxConnsPerHost:     100,
			ReadTimeout:         10 * time.Second,
			WriteTimeout:        10 * time.Second,
			MaxIdleConnDuration: 1 * time.Minute,
		},
		logger: logger,
	}
}

func (c *Client) AccountByRiotID(ctx context.Context, region, gameName, tagLine string) (*Account, int, error) {
	host, ok := RegionalHost(region)
	if !ok {
		return nil, fasthttp.StatusBadRequest, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}
	u := fmt.Sprintf("https://%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		host, url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[Account](ctx, c, u)
}

func (c *Client) SummonerByPUUID(ctx context.Context, region, puuid string) (*Summoner, int, error) {
	host, ok := PlatformHost(region)
	if !ok {
		return nil, fasthttp.StatusBadRequest, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}
	u := fmt.Sprintf("https://%s/lol/summoner/v4/summoners/by-puuid/%s", host, url.PathEscape(puuid))
	return doRequest[Summoner](ctx, c, u)
}

func (c *Client) ActiveGameByPUUID(ctx context.Context, region, puuid string) (*ActiveGame, int, error) {
	host, ok := PlatformHost(region)
	if !ok {
		return nil, fasthttp.StatusBadRequest, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}
	u := fmt.Sprintf("https://%s/lol/spectator/v5/active-games/by-summoner/%s", host, url.PathEscape(puuid))
	return doRequest[ActiveGame](ctx, c, u)
}

func (c *Client) MatchIDsByPUUID(ctx context.Context, region, puuid string, count int) ([]string, int, error) {
	host, ok := RegionalHost(region)
	if !ok {
		return nil, fasthttp.StatusBadRequest, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}
	u := fmt.Sprintf("https://%s/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d",
		host, url.PathEscape(puuid), count)
	ids, status, err := doRequest[[]string](ctx, c, u)
	if ids == nil {
		return nil, status, err
	}
	return *ids, status, err
}

func (c *Client) MatchByID(ctx context.Context, region, matchID string) (*Match, int, error) {
	host, ok := RegionalHost(region)
	if !ok {
		return nil, fasthttp.StatusBadRequest, fmt.Errorf("%w: %s", ErrUnknownRegion, region)
	}
	u := fmt.Sprintf("https://%s/lol/match/v5/matches/%s", host, url.PathEscape(matchID))
	return doRequest[Match](ctx, c, u)
}

func doRequest[T any](ctx context.Context, client *Client, u string) (*T, int, error) {
	if client.apiKey == "" {
		client.logger.Warn().Str("url", u).Msg("no api key configured, returning synthetic failure")
		return nil, fasthttp.StatusInternalServerError, ErrMissingAPIKey
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(u)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("X-Riot-Token", client.apiKey)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.client.DoDeadline(req, resp, deadline); err != nil {
			client.logger.Error().Err(err).Str("url", u).Msg("upstream request failed")
			return nil, 0, err
		}
	} else {
		if err := client.client.Do(req, resp); err != nil {
			client.logger.Error().Err(err).Str("url", u).Msg("upstream request failed")
			return nil, 0, err
		}
	}

	status := resp.StatusCode()
	client.logger.Info().Int("status", status).Str("url", u).Msg("upstream call")

	if status != fasthttp.StatusOK {
		return nil, status, nil
	}

	var result T
	if err := json.Unmarshal(resp.Body(), &result); err != nil {
		return nil, status, fmt.Errorf("decode upstream response: %w", err)
	}
	return &result, status, nil
}
