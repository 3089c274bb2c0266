package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/mishimalab/frametrap/internal/errors"
)

// maxOverviewChars caps the extracted overview length.
const maxOverviewChars = 2000

// OverviewClient fetches character pages from the community wiki and
// distills them into short plain-text overviews. The extraction is
// heuristic and best-effort; it never fails, though it may come back empty.
type OverviewClient struct {
	baseURL string
	httpc   *http.Client
	log     zerolog.Logger
}

// NewOverviewClient creates a wiki overview client.
func NewOverviewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *OverviewClient {
	return &OverviewClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   &http.Client{Timeout: timeout},
		log:     log,
	}
}

// Overview fetches the character's wiki page as raw wikitext and strips it
// down to leading prose paragraphs.
func (c *OverviewClient) Overview(ctx context.Context, character string) (string, error) {
	page := pageTitle(character)
	reqURL := fmt.Sprintf("%s/index.php?title=%s&action=raw", c.baseURL, url.QueryEscape(page))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", errors.NewNetwork(err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpc.Do(req)
	if err != nil {
		c.log.Warn().Str("character", character).Err(err).Msg("overview fetch failed")
		return "", errors.NewNetwork(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Warn().Str("character", character).Int("status", resp.StatusCode).Msg("overview fetch failed")
		return "", errors.NewNetwork(fmt.Errorf("unexpected status %d from %s", resp.StatusCode, reqURL))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errors.NewNetwork(err)
	}

	return ExtractOverview(string(body)), nil
}

// pageTitle maps a roster identifier to a wiki page title:
// "devil-jin" → "Devil Jin".
func pageTitle(character string) string {
	parts := strings.Split(character, "-")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

var (
	templateRe = regexp.MustCompile(`\{\{[^{}]*\}\}`)
	pipeLinkRe = regexp.MustCompile(`\[\[[^\[\]|]*\|([^\[\]]*)\]\]`)
	bareLinkRe = regexp.MustCompile(`\[\[([^\[\]]*)\]\]`)
	refRe      = regexp.MustCompile(`(?s)<ref[^>]*>.*?</ref>|<ref[^>]*/>`)
	tagRe      = regexp.MustCompile(`<[^>]+>`)
)

// ExtractOverview strips wiki markup from raw wikitext and returns the
// leading prose paragraphs, capped at maxOverviewChars. Headings, lists,
// tables, and templates are discarded. The result may be empty; that is
// not an error.
func ExtractOverview(wikitext string) string {
	s := refRe.ReplaceAllString(wikitext, "")

	// Templates nest; a few passes of the innermost-pair pattern handles
	// the depths seen in practice.
	for range 5 {
		next := templateRe.ReplaceAllString(s, "")
		if next == s {
			break
		}
		s = next
	}

	s = pipeLinkRe.ReplaceAllString(s, "$1")
	s = bareLinkRe.ReplaceAllString(s, "$1")
	s = tagRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "'''", "")
	s = strings.ReplaceAll(s, "''", "")

	var paragraphs []string
	total := 0
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "=") ||
			strings.HasPrefix(line, "*") || strings.HasPrefix(line, "#") ||
			strings.HasPrefix(line, "{") || strings.HasPrefix(line, "|") ||
			strings.HasPrefix(line, "!") {
			continue
		}
		paragraphs = append(paragraphs, line)
		total += len(line)
		if total >= maxOverviewChars {
			break
		}
	}

	out := strings.Join(paragraphs, "\n\n")
	if len(out) > maxOverviewChars {
		out = out[:maxOverviewChars]
		if cut := strings.LastIndex(out, " "); cut > 0 {
			out = out[:cut]
		}
	}
	return out
}
