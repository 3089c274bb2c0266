package ops

import "github.com/mishimalab/frametrap/internal/roster"

// CharactersOutput contains the result of the ListCharacters operation.
type CharactersOutput struct {
	Characters []string `json:"characters"`
	Count      int      `json:"count"`
}

// ListCharacters returns the roster snapshot in canonical order.
func (s *Service) ListCharacters() *CharactersOutput {
	names := roster.Characters()
	return &CharactersOutput{
		Characters: names,
		Count:      len(names),
	}
}
