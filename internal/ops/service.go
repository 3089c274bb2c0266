// Package ops implements the exposed operations: roster listing, movelist
// access, exact move lookup, filtered search, and character overviews.
// Every operation is an independent request; the only shared mutable state
// is the TTL caches, and all scoring and filtering is pure over immutable
// inputs.
package ops

import (
	"context"
	"strings"
	"time"

	"github.com/mishimalab/frametrap/internal/cache"
	"github.com/mishimalab/frametrap/internal/errors"
	"github.com/mishimalab/frametrap/internal/frames"
	"github.com/mishimalab/frametrap/internal/roster"
)

// FrameDataProvider fetches raw movelist payloads from the upstream API.
type FrameDataProvider interface {
	Movelist(ctx context.Context, character string) ([]byte, error)
}

// OverviewProvider fetches qualitative character overviews.
type OverviewProvider interface {
	Overview(ctx context.Context, character string) (string, error)
}

// Service wires the providers to the caches and owns the exposed
// operations. Construct one per process with NewService.
type Service struct {
	provider  FrameDataProvider
	overviews OverviewProvider
	ttl       time.Duration

	movelists *cache.Cache[[]frames.Move]
	texts     *cache.Cache[string]
}

// NewService creates a Service. A nil clock means wall time; tests inject
// one for deterministic expiry. overviews may be nil when the overview
// surface is disabled.
func NewService(provider FrameDataProvider, overviews OverviewProvider, ttl time.Duration, clock func() time.Time) *Service {
	if ttl <= 0 {
		ttl = cache.DefaultTTL
	}
	return &Service{
		provider:  provider,
		overviews: overviews,
		ttl:       ttl,
		movelists: cache.New[[]frames.Move](clock),
		texts:     cache.New[string](clock),
	}
}

// validateCharacter lowercases and roster-checks a character identifier,
// building the structured CHARACTER_NOT_FOUND error on failure.
func validateCharacter(input string) (string, error) {
	name := strings.ToLower(strings.TrimSpace(input))
	if name == "" {
		return "", errors.NewInvalidInput("character is required")
	}
	if !roster.Valid(name) {
		candidates := roster.Suggest(name, roster.DefaultSuggestions)
		suggestions := make([]string, len(candidates))
		for i, c := range candidates {
			suggestions[i] = c.Name
		}
		didYouMean := ""
		if len(candidates) > 0 && candidates[0].Similarity > roster.DidYouMeanThreshold {
			didYouMean = candidates[0].Name
		}
		return "", errors.NewCharacterNotFound(input, suggestions, didYouMean)
	}
	return name, nil
}
