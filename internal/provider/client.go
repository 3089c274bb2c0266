// Package provider holds the HTTP collaborators: the frame-data API client
// and the best-effort wiki overview client. Neither retries; failures
// surface unchanged as NETWORK_ERROR.
package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mishimalab/frametrap/internal/errors"
)

const userAgent = "frametrap/1.0"

// Client fetches raw movelist payloads from the frame-data API.
type Client struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// NewClient creates a frame-data client. The timeout bounds each request;
// the engine adds no timeout of its own.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Movelist fetches the raw payload for a character. The body is returned
// opaque; shape validation belongs to the accessor.
func (c *Client) Movelist(ctx context.Context, character string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/framedata/%s", c.baseURL, url.PathEscape(character))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.NewNetwork(err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn().Str("character", character).Err(err).Msg("movelist fetch failed")
		return nil, errors.NewNetwork(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Str("character", character).Int("status", resp.StatusCode).Msg("movelist fetch failed")
		return nil, errors.NewNetwork(fmt.Errorf("unexpected status %d from %s", resp.StatusCode, reqURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewNetwork(err)
	}

	c.log.Debug().
		Str("character", character).
		Int("bytes", len(body)).
		Dur("duration", time.Since(start)).
		Msg("movelist fetched")

	return body, nil
}
