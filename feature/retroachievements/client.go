package retroachievements

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"cheevo-checker/core/reconcile"

	"go.uber.org/zap"
)

// Web API endpoints, relative to Config.BaseURL.
const (
	endpointConsoleIDs = "API_GetConsoleIDs.php"
	endpointGameList   = "API_GetGameList.php"
	endpointGameHashes = "API_GetGameHashes.php"
)

// StatusError is returned when the API keeps answering with a non-200 status.
type StatusError struct {
	Endpoint string
	Code     int
	Status   string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %s", e.Endpoint, e.Status)
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		if h != nil {
			c.http = h
		}
	}
}

// WithCache enables response caching for the console and game list calls.
func WithCache(cache ResponseCache) Option {
	return func(c *Client) {
		c.cache = cache
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// Client talks to the RetroAchievements web API. It implements
// reconcile.RemoteCatalog.
type Client struct {
	baseURL    string
	auth       QueryAuth
	retries    int
	retryDelay time.Duration
	interval   time.Duration

	http   *http.Client
	cache  ResponseCache
	logger *zap.Logger

	mu   sync.Mutex
	last time.Time
}

var _ reconcile.RemoteCatalog = (*Client)(nil)

// NewClient creates a Client from cfg.
func NewClient(cfg Config, opts ...Option) *Client {
	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}
	retries := cfg.Retries
	if retries < 1 {
		retries = 1
	}
	base := cfg.BaseURL
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}

	c := &Client{
		baseURL:    base,
		auth:       QueryAuth{Username: cfg.Username, APIKey: cfg.APIKey},
		retries:    retries,
		retryDelay: cfg.RetryDelay,
		http:       &http.Client{Timeout: time.Duration(timeout) * time.Second},
		logger:     zap.NewNop(),
	}
	if cfg.RateLimit > 0 {
		c.interval = time.Duration(float64(time.Second) / cfg.RateLimit)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConsoleIDs returns every console id and name pair known to the site.
func (c *Client) ConsoleIDs(ctx context.Context) ([]reconcile.Console, error) {
	var records []consoleRecord
	if err := c.get(ctx, endpointConsoleIDs, url.Values{"a": {"0"}, "g": {"0"}}, true, &records); err != nil {
		return nil, err
	}
	consoles := make([]reconcile.Console, 0, len(records))
	for _, r := range records {
		consoles = append(consoles, r.toConsole())
	}
	return consoles, nil
}

// GameList returns the games of a console, optionally restricted to games
// with achievements and including their supported hashes.
func (c *Client) GameList(ctx context.Context, consoleID int, withAchievements, withHashes bool) ([]reconcile.RemoteGame, error) {
	params := url.Values{
		"i": {strconv.Itoa(consoleID)},
		"f": {flag(withAchievements)},
		"h": {flag(withHashes)},
		"o": {"0"},
		"c": {"0"},
	}
	var records []gameRecord
	if err := c.get(ctx, endpointGameList, params, true, &records); err != nil {
		return nil, err
	}
	games := make([]reconcile.RemoteGame, 0, len(records))
	for _, r := range records {
		games = append(games, r.toGame())
	}
	return games, nil
}

// GameHashes returns the hashes linked to a game. Never cached.
func (c *Client) GameHashes(ctx context.Context, gameID int) ([]reconcile.HashCandidate, error) {
	var resp hashesResponse
	if err := c.get(ctx, endpointGameHashes, url.Values{"i": {strconv.Itoa(gameID)}}, false, &resp); err != nil {
		return nil, err
	}
	candidates := make([]reconcile.HashCandidate, 0, len(resp.Results))
	for _, r := range resp.Results {
		candidates = append(candidates, r.toCandidate())
	}
	return candidates, nil
}

func (c *Client) get(ctx context.Context, endpoint string, params url.Values, cacheable bool, out any) error {
	key := endpoint + "?" + params.Encode()

	if cacheable && c.cache != nil {
		body, ok, err := c.cache.Get(ctx, key)
		if err != nil {
			c.logger.Warn("Response cache read failed", zap.String("key", key), zap.Error(err))
		} else if ok {
			if err := json.Unmarshal(body, out); err == nil {
				c.logger.Debug("Response cache hit", zap.String("key", key))
				return nil
			}
			c.logger.Warn("Discarding undecodable cached response", zap.String("key", key))
		}
	}

	body, err := c.fetch(ctx, endpoint, params)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", endpoint, err)
	}

	if cacheable && c.cache != nil {
		if err := c.cache.Set(ctx, key, body); err != nil {
			c.logger.Warn("Response cache write failed", zap.String("key", key), zap.Error(err))
		}
	}
	return nil
}

// fetch performs up to c.retries attempts, pausing retryDelay after a
// transport error or a non-200 status.
func (c *Client) fetch(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if err := c.wait(ctx); err != nil {
			return nil, err
		}

		body, err := c.do(ctx, endpoint, params)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			return nil, lastErr
		}

		c.logger.Warn("Request failed",
			zap.String("endpoint", endpoint),
			zap.Int("attempt", attempt),
			zap.Int("max_attempts", c.retries),
			zap.Error(err),
		)
		if attempt < c.retries {
			if err := sleep(ctx, c.retryDelay); err != nil {
				return nil, lastErr
			}
		}
	}
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, endpoint string, params url.Values) ([]byte, error) {
	u, err := url.Parse(c.baseURL + endpoint)
	if err != nil {
		return nil, fmt.Errorf("build url: %w", err)
	}
	u.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	c.auth.Apply(req)

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error would echo the credentials in the query string
		var uerr *url.Error
		if errors.As(err, &uerr) {
			return nil, fmt.Errorf("%s: %w", endpoint, uerr.Err)
		}
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Endpoint: endpoint, Code: resp.StatusCode, Status: resp.Status}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%s: read body: %w", endpoint, err)
	}
	return body, nil
}

// wait enforces the minimum interval between requests.
func (c *Client) wait(ctx context.Context) error {
	if c.interval <= 0 {
		return nil
	}
	c.mu.Lock()
	next := c.last.Add(c.interval)
	now := time.Now()
	if next.Before(now) {
		next = now
	}
	c.last = next
	c.mu.Unlock()

	return sleep(ctx, time.Until(next))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func flag(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
