package ops

import (
	"context"
	"testing"
	"time"

	"github.com/mishimalab/frametrap/internal/cache"
	"github.com/mishimalab/frametrap/internal/errors"
	"github.com/mishimalab/frametrap/internal/frames"
)

func TestGetMovelist_Decorates(t *testing.T) {
	svc, _, _ := newTestService(t)

	out, err := svc.GetMovelist(context.Background(), "law")
	if err != nil {
		t.Fatalf("GetMovelist failed: %v", err)
	}

	if out.Character != "law" {
		t.Errorf("Character = %q, want \"law\"", out.Character)
	}
	if out.Count != 8 || len(out.Moves) != 8 {
		t.Fatalf("Count = %d, len = %d, want 8", out.Count, len(out.Moves))
	}
	for _, mv := range out.Moves {
		want := frames.Score(&mv)
		// Score ignores StrategicImportance, so recomputing on the
		// decorated copy must agree with the stamp.
		if mv.StrategicImportance != want {
			t.Errorf("move %q importance = %d, want %d", mv.Command, mv.StrategicImportance, want)
		}
	}
}

func TestGetMovelist_LowercasesInput(t *testing.T) {
	svc, _, _ := newTestService(t)

	out, err := svc.GetMovelist(context.Background(), "  LAW ")
	if err != nil {
		t.Fatalf("GetMovelist failed: %v", err)
	}
	if out.Character != "law" {
		t.Errorf("Character = %q, want \"law\"", out.Character)
	}
}

func TestGetMovelist_CharacterNotFound(t *testing.T) {
	svc, provider, _ := newTestService(t)

	_, err := svc.GetMovelist(context.Background(), "lew")
	fErr, ok := err.(*errors.FrameError)
	if !ok || fErr.Code != errors.ErrCharacterNotFound {
		t.Fatalf("err = %v, want CHARACTER_NOT_FOUND", err)
	}

	if len(fErr.Suggestions) != 3 {
		t.Fatalf("Suggestions = %v, want 3", fErr.Suggestions)
	}
	if fErr.Suggestions[0] != "law" {
		t.Errorf("best suggestion = %q, want \"law\"", fErr.Suggestions[0])
	}
	if fErr.DidYouMean != "law" {
		t.Errorf("DidYouMean = %q, want \"law\"", fErr.DidYouMean)
	}

	// Validation fails before any I/O.
	if provider.callCount() != 0 {
		t.Errorf("provider fetched %d times for invalid character", provider.callCount())
	}
}

func TestGetMovelist_WildMissHasNoDidYouMean(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetMovelist(context.Background(), "zzzzzzzzzzzzzz")
	fErr, ok := err.(*errors.FrameError)
	if !ok || fErr.Code != errors.ErrCharacterNotFound {
		t.Fatalf("err = %v, want CHARACTER_NOT_FOUND", err)
	}
	if fErr.DidYouMean != "" {
		t.Errorf("DidYouMean = %q, want empty for dissimilar input", fErr.DidYouMean)
	}
}

func TestGetMovelist_EmptyInput(t *testing.T) {
	svc, _, _ := newTestService(t)

	_, err := svc.GetMovelist(context.Background(), "   ")
	if !errors.Is(err, errors.ErrInvalidInput) {
		t.Fatalf("err = %v, want INVALID_INPUT", err)
	}
}

func TestGetMovelist_CachesWithinTTL(t *testing.T) {
	svc, provider, clock := newTestService(t)

	if _, err := svc.GetMovelist(context.Background(), "law"); err != nil {
		t.Fatalf("GetMovelist failed: %v", err)
	}
	clock.Advance(9 * time.Minute)
	if _, err := svc.GetMovelist(context.Background(), "law"); err != nil {
		t.Fatalf("GetMovelist failed: %v", err)
	}

	if provider.callCount() != 1 {
		t.Errorf("provider fetched %d times within ttl, want 1", provider.callCount())
	}

	clock.Advance(2 * time.Minute)
	if _, err := svc.GetMovelist(context.Background(), "law"); err != nil {
		t.Fatalf("GetMovelist failed: %v", err)
	}
	if provider.callCount() != 2 {
		t.Errorf("provider fetched %d times after expiry, want 2", provider.callCount())
	}
}

func TestGetMovelist_DecorationDoesNotMutateCache(t *testing.T) {
	svc, _, _ := newTestService(t)

	first, err := svc.GetMovelist(context.Background(), "law")
	if err != nil {
		t.Fatalf("GetMovelist failed: %v", err)
	}
	first.Moves[0].Command = "mutated"
	first.Moves[0].StrategicImportance = -999

	second, err := svc.GetMovelist(context.Background(), "law")
	if err != nil {
		t.Fatalf("GetMovelist failed: %v", err)
	}
	if second.Moves[0].Command != "1" {
		t.Errorf("cached payload was mutated: command = %q", second.Moves[0].Command)
	}
}

func TestGetMovelist_NetworkErrorPropagates(t *testing.T) {
	provider := &fakeProvider{err: errors.NewNetwork(nil)}
	svc := NewService(provider, nil, cache.DefaultTTL, nil)

	_, err := svc.GetMovelist(context.Background(), "law")
	if !errors.Is(err, errors.ErrNetwork) {
		t.Fatalf("err = %v, want NETWORK_ERROR", err)
	}
}

func TestGetMovelist_ShapeMismatch(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"not an object", `[1,2,3]`},
		{"missing moves field", `{"characterName":"law"}`},
		{"moves not an array", `{"moves":"nope"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			provider := &fakeProvider{payloads: map[string][]byte{"law": []byte(tt.payload)}}
			svc := NewService(provider, nil, cache.DefaultTTL, nil)

			_, err := svc.GetMovelist(context.Background(), "law")
			if !errors.Is(err, errors.ErrUpstreamShape) {
				t.Fatalf("err = %v, want UPSTREAM_SHAPE", err)
			}

			// A failed decode is not cached; the next call refetches.
			svc.GetMovelist(context.Background(), "law")
			if provider.callCount() != 2 {
				t.Errorf("provider fetched %d times, want 2 (failures not cached)", provider.callCount())
			}
		})
	}
}
