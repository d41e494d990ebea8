package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/amterp/better-emoji-picker/internal/dataset"
	"github.com/amterp/better-emoji-picker/internal/metrics"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "emoji-data-builder/1.0 (+https://github.com/amterp/better-emoji-picker)"

	// Polite ceiling for the raw-content host. Burst covers the two
	// documents a build fetches concurrently.
	requestsPerSecond = 2
)

// Config configures the remote endpoints and HTTP behavior.
type Config struct {
	CatalogURL     string `mapstructure:"catalog_url"`
	KeywordURL     string `mapstructure:"keyword_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// Client fetches the two remote emoji datasets over HTTP. A fetch
// failure is fatal to the build, so there is no retry here: the run is
// reported broken and the caller decides when to re-run it.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	catalogURL string
	keywordURL string
}

// NewClient builds a Client from config, applying the default timeout
// when none is configured.
func NewClient(cfg Config) *Client {
	timeout := time.Duration(cfg.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond),
		catalogURL: cfg.CatalogURL,
		keywordURL: cfg.KeywordURL,
	}
}

// FetchCatalog retrieves and decodes the primary metadata source: a
// JSON array of catalog entries, pre-sorted ascending by sort_order.
func (c *Client) FetchCatalog(ctx context.Context) ([]dataset.CatalogEntry, error) {
	var entries []dataset.CatalogEntry
	if err := c.getJSON(ctx, "catalog", c.catalogURL, &entries); err != nil {
		return nil, fmt.Errorf("emoji catalog: %w", err)
	}
	return entries, nil
}

// FetchKeywords retrieves and decodes the secondary keyword source: a
// JSON object mapping rendered emoji to alias lists.
func (c *Client) FetchKeywords(ctx context.Context) (dataset.KeywordIndex, error) {
	var index dataset.KeywordIndex
	if err := c.getJSON(ctx, "keywords", c.keywordURL, &index); err != nil {
		return nil, fmt.Errorf("keyword index: %w", err)
	}
	return index, nil
}

// getJSON performs one GET and decodes the body into out. Any network
// failure, non-2xx status, or top-level JSON error is returned as-is;
// callers wrap it with the source name.
func (c *Client) getJSON(ctx context.Context, name, url string, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	log.Info().Str("source", name).Str("url", url).Msg("Downloading source document")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request for %s: %w", url, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("fetching %s: status %d, body: %s", url, resp.StatusCode, snippet)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("reading %s: %w", url, err)
	}
	metrics.SourceBytes.WithLabelValues(name).Add(float64(len(body)))

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("parsing %s: %w", url, err)
	}

	log.Debug().Str("source", name).Int("bytes", len(body)).Msg("Source document decoded")
	return nil
}
