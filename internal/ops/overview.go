package ops

import (
	"context"

	"github.com/mishimalab/frametrap/internal/errors"
)

// OverviewOutput contains the result of the GetOverview operation.
type OverviewOutput struct {
	Character string `json:"character"`
	Overview  string `json:"overview"`
}

// GetOverview returns the best-effort qualitative overview for a
// character, cached under the same TTL contract as movelists. An empty
// overview is a valid result; only fetch failures error.
func (s *Service) GetOverview(ctx context.Context, character string) (*OverviewOutput, error) {
	name, err := validateCharacter(character)
	if err != nil {
		return nil, err
	}
	if s.overviews == nil {
		return nil, errors.NewInvalidInput("overview provider is not configured")
	}

	text, err := s.texts.GetOrFetch("overview:"+name, s.ttl, func() (string, error) {
		return s.overviews.Overview(ctx, name)
	})
	if err != nil {
		return nil, err
	}

	return &OverviewOutput{
		Character: name,
		Overview:  text,
	}, nil
}
