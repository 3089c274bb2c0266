package ops

import (
	"context"
	"encoding/json"

	"github.com/mishimalab/frametrap/internal/errors"
	"github.com/mishimalab/frametrap/internal/frames"
)

// MovelistOutput contains a character's fully decorated movelist.
type MovelistOutput struct {
	Character string        `json:"character"`
	Moves     []frames.Move `json:"moves"`
	Count     int           `json:"count"`
}

// GetMovelist validates the character, fetches the upstream payload
// through the TTL cache, and returns a freshly decorated movelist. The
// cached payload is shared across calls and never mutated; every returned
// move carries its recomputed strategic importance.
func (s *Service) GetMovelist(ctx context.Context, character string) (*MovelistOutput, error) {
	name, err := validateCharacter(character)
	if err != nil {
		return nil, err
	}

	cached, err := s.movelists.GetOrFetch(name, s.ttl, func() ([]frames.Move, error) {
		body, err := s.provider.Movelist(ctx, name)
		if err != nil {
			return nil, err
		}
		return decodeMovelist(name, body)
	})
	if err != nil {
		return nil, err
	}

	return &MovelistOutput{
		Character: name,
		Moves:     decorate(cached),
		Count:     len(cached),
	}, nil
}

// decorate copies the cached moves and stamps each copy with its score.
func decorate(cached []frames.Move) []frames.Move {
	out := make([]frames.Move, len(cached))
	for i := range cached {
		mv := cached[i]
		mv.StrategicImportance = frames.Score(&mv)
		out[i] = mv
	}
	return out
}

// decodeMovelist validates the payload shape: the body must be a JSON
// object exposing a "moves" array. Anything else is fatal and not retried.
func decodeMovelist(character string, body []byte) ([]frames.Move, error) {
	var payload struct {
		Moves json.RawMessage `json:"moves"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, errors.NewUpstreamShape(character, "payload is not a JSON object")
	}
	if payload.Moves == nil {
		return nil, errors.NewUpstreamShape(character, `missing "moves" array`)
	}

	var moves []frames.Move
	if err := json.Unmarshal(payload.Moves, &moves); err != nil {
		return nil, errors.NewUpstreamShape(character, `"moves" is not a move array`)
	}
	return moves, nil
}
