package ddragon

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"league-radar/internal/constants"

	"github.com/goccy/go-json"
	"github.com/rs/zerolog"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"
)

const (
	defaultVersionsURL = "https://ddragon.leagueoflegends.com/api/versions.json"
	defaultCDNBase     = "https://ddragon.leagueoflegends.com/cdn"
)

// Cache memoizes the current Data Dragon version and the champion id/name
// tables. It loads lazily on first use and is never invalidated for the
// process lifetime. Load failures leave it empty; lookups then fall back to
// sentinels, they never fail a request.
type Cache struct {
	versionsURL string
	cdnBase     string
	client      *fasthttp.Client
	logger      zerolog.Logger

	group singleflight.Group

	mu       sync.RWMutex
	version  string
	idToName map[int64]string
	nameToID map[string]string
}

func NewCache(logger zerolog.Logger) *Cache {
	return NewCacheWithEndpoints(logger, defaultVersionsURL, defaultCDNBase)
}

// NewCacheWithEndpoints exists so tests can point the cache at a local
// server.
func NewCacheWithEndpoints(logger zerolog.Logger, versionsURL, cdnBase string) *Cache {
	return &Cache{
		versionsURL: versionsURL,
		cdnBase:     strings.TrimRight(cdnBase, "/"),
		client: &fasthttp.Client{
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		logger:   logger,
		idToName: map[int64]string{},
		nameToID: map[string]string{},
	}
}

type championCatalog struct {
	Data map[string]struct {
		ID   string `json:"id"`
		Key  string `json:"key"`
		Name string `json:"name"`
	} `json:"data"`
}

// EnsureLoaded populates the cache if it is still empty. Concurrent first
// loads collapse into one fetch; later calls return without touching the
// network.
func (c *Cache) EnsureLoaded(ctx context.Context) {
	if c.loaded() {
		return
	}

	c.group.Do("load", func() (interface{}, error) {
		if c.loaded() {
			return nil, nil
		}
		if err := c.load(ctx); err != nil {
			c.logger.Warn().Err(err).Msg("asset catalog load failed, keeping previous state")
		}
		return nil, nil
	})
}

func (c *Cache) load(ctx context.Context) error {
	var versions []string
	if err := c.fetchJSON(ctx, c.versionsURL, &versions); err != nil {
		return fmt.Errorf("fetch versions: %w", err)
	}
	if len(versions) == 0 {
		return fmt.Errorf("empty versions list")
	}
	version := versions[0]

	var catalog championCatalog
	catalogURL := fmt.Sprintf("%s/%s/data/en_US/champion.json", c.cdnBase, version)
	if err := c.fetchJSON(ctx, catalogURL, &catalog); err != nil {
		return fmt.Errorf("fetch champion catalog: %w", err)
	}

	idToName := make(map[int64]string, len(catalog.Data))
	nameToID := make(map[string]string, len(catalog.Data))
	for _, champ := range catalog.Data {
		key, err := strconv.ParseInt(champ.Key, 10, 64)
		if err != nil {
			continue
		}
		idToName[key] = champ.Name
		nameToID[strings.ToLower(champ.Name)] = champ.ID
	}

	c.mu.Lock()
	c.version = version
	c.idToName = idToName
	c.nameToID = nameToID
	c.mu.Unlock()

	c.logger.Info().Str("version", version).Int("champions", len(idToName)).Msg("asset catalog loaded")
	return nil
}

func (c *Cache) fetchJSON(ctx context.Context, u string, out interface{}) error {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(u)
	req.Header.SetMethod(fasthttp.MethodGet)

	deadline, ok := ctx.Deadline()
	if ok {
		if err := c.client.DoDeadline(req, resp, deadline); err != nil {
			return err
		}
	} else {
		if err := c.client.Do(req, resp); err != nil {
			return err
		}
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		return fmt.Errorf("asset endpoint returned %d for %s", resp.StatusCode(), u)
	}
	return json.Unmarshal(resp.Body(), out)
}

func (c *Cache) loaded() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.idToName) > 0
}

// ChampionName maps a numeric champion id to its display name, or the
// "Unknown" sentinel on a miss.
func (c *Cache) ChampionName(id int64) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if name, ok := c.idToName[id]; ok {
		return name
	}
	return constants.UnknownChampion
}

// ChampionID maps a display name to the canonical asset key. Unmapped names
// are echoed unchanged: upstream records sometimes already carry the
// canonical key where a display name is expected.
func (c *Cache) ChampionID(name string) string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if id, ok := c.nameToID[strings.ToLower(name)]; ok {
		return id
	}
	return name
}

func (c *Cache) Version() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// ProfileIconURL builds the CDN URL for a profile icon, or "" while the
// cache is unloaded.
func (c *Cache) ProfileIconURL(iconID int) string {
	c.mu.RLock()
	version := c.version
	c.mu.RUnlock()
	if version == "" {
		return ""
	}
	return fmt.Sprintf("%s/%s/img/profileicon/%d.png", c.cdnBase, version, iconID)
}
