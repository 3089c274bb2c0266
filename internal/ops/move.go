package ops

import (
	"context"
	"strings"

	"github.com/mishimalab/frametrap/internal/errors"
	"github.com/mishimalab/frametrap/internal/frames"
	"github.com/mishimalab/frametrap/internal/roster"
)

// MoveOutput contains the result of the GetMove operation.
type MoveOutput struct {
	Character string       `json:"character"`
	Move      *frames.Move `json:"move"`
}

// GetMove looks up a single move by exact case-insensitive command match.
// The first match wins on duplicate commands. A miss comes back as
// MOVE_NOT_FOUND carrying the closest commands in the movelist.
func (s *Service) GetMove(ctx context.Context, character, command string) (*MoveOutput, error) {
	command = strings.TrimSpace(command)
	if command == "" {
		return nil, errors.NewInvalidInput("command is required")
	}

	list, err := s.GetMovelist(ctx, character)
	if err != nil {
		return nil, err
	}

	for i := range list.Moves {
		if strings.EqualFold(list.Moves[i].Command, command) {
			return &MoveOutput{
				Character: list.Character,
				Move:      &list.Moves[i],
			}, nil
		}
	}

	commands := make([]string, len(list.Moves))
	for i, mv := range list.Moves {
		commands[i] = mv.Command
	}
	candidates := roster.SuggestFrom(command, commands, roster.DefaultSuggestions)
	suggestions := make([]string, len(candidates))
	for i, c := range candidates {
		suggestions[i] = c.Name
	}
	didYouMean := ""
	if len(candidates) > 0 && candidates[0].Similarity > roster.DidYouMeanThreshold {
		didYouMean = candidates[0].Name
	}
	return nil, errors.NewMoveNotFound(list.Character, command, suggestions, didYouMean)
}
