package config

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds application configuration.
type Config struct {
	// ProviderBaseURL is the frame-data API root. Movelists are fetched
	// from {ProviderBaseURL}/framedata/{character}.
	ProviderBaseURL string `json:"provider_base_url,omitempty"`

	// OverviewBaseURL is the community wiki root used for best-effort
	// character overviews.
	OverviewBaseURL string `json:"overview_base_url,omitempty"`

	// HTTPTimeoutSeconds bounds each upstream request. The engine itself
	// imposes no timeouts; this is the fetch collaborator's budget.
	HTTPTimeoutSeconds int `json:"http_timeout_seconds,omitempty"`

	// CacheTTLMinutes is the validity window for cached upstream payloads.
	CacheTTLMinutes int `json:"cache_ttl_minutes,omitempty"`

	// DisabledTools is a list of MCP tool names to exclude from
	// registration. Unknown names are reported at startup.
	DisabledTools []string `json:"disabled_tools,omitempty"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		ProviderBaseURL:    "https://tekkendocs.com/api/t8",
		OverviewBaseURL:    "https://wavu.wiki/w",
		HTTPTimeoutSeconds: 15,
		CacheTTLMinutes:    10,
	}
}

// HTTPTimeout returns the upstream request budget as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSeconds) * time.Second
}

// CacheTTL returns the cache validity window as a duration.
func (c *Config) CacheTTL() time.Duration {
	return time.Duration(c.CacheTTLMinutes) * time.Minute
}

// Load loads configuration from baseDir/config.json.
// Returns default config if the file doesn't exist.
// The baseDir parameter allows tests to use t.TempDir() instead of ~/.frametrap.
func Load(baseDir string) (*Config, error) {
	cfg, err := loadFileRaw(filepath.Join(baseDir, "config.json"))
	if err != nil {
		return nil, err
	}
	return Merge(DefaultConfig(), cfg), nil
}

// loadFileRaw loads configuration from a specific file path.
// Returns zero-valued config if the file doesn't exist (not defaults).
func loadFileRaw(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, err
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Merge combines base and overlay configs.
// Overlay values take precedence for scalars; arrays are merged and deduplicated.
func Merge(base, overlay *Config) *Config {
	result := &Config{}

	result.ProviderBaseURL = overlay.ProviderBaseURL
	if result.ProviderBaseURL == "" {
		result.ProviderBaseURL = base.ProviderBaseURL
	}

	result.OverviewBaseURL = overlay.OverviewBaseURL
	if result.OverviewBaseURL == "" {
		result.OverviewBaseURL = base.OverviewBaseURL
	}

	result.HTTPTimeoutSeconds = overlay.HTTPTimeoutSeconds
	if result.HTTPTimeoutSeconds == 0 {
		result.HTTPTimeoutSeconds = base.HTTPTimeoutSeconds
	}

	result.CacheTTLMinutes = overlay.CacheTTLMinutes
	if result.CacheTTLMinutes == 0 {
		result.CacheTTLMinutes = base.CacheTTLMinutes
	}

	result.DisabledTools = mergeStringSlice(base.DisabledTools, overlay.DisabledTools)

	return result
}

// mergeStringSlice combines two slices, trims whitespace, and removes duplicates.
func mergeStringSlice(a, b []string) []string {
	seen := make(map[string]bool)
	result := make([]string, 0, len(a)+len(b))

	for _, s := range a {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}
	for _, s := range b {
		s = strings.TrimSpace(s)
		if s != "" && !seen[s] {
			seen[s] = true
			result = append(result, s)
		}
	}

	if len(result) == 0 {
		return nil
	}
	return result
}
