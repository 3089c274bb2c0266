package mcp

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mishimalab/frametrap/internal/errors"
	"github.com/mishimalab/frametrap/internal/ops"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	svc *ops.Service
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(svc *ops.Service) *Handlers {
	return &Handlers{svc: svc}
}

// Request types for each tool

// MovelistRequest represents the arguments for get_movelist and
// character_overview.
type MovelistRequest struct {
	Character string `json:"character"`
}

// MoveRequest represents the arguments for get_move.
type MoveRequest struct {
	Character string `json:"character"`
	Command   string `json:"command"`
}

// SearchRequest represents the arguments for search_moves.
type SearchRequest struct {
	Character           string `json:"character"`
	HitLevel            string `json:"hit_level,omitempty"`
	MinDamage           *int   `json:"min_damage,omitempty"`
	MaxStartup          *int   `json:"max_startup,omitempty"`
	MinBlock            *int   `json:"min_block,omitempty"`
	MaxBlock            *int   `json:"max_block,omitempty"`
	MinHit              *int   `json:"min_hit,omitempty"`
	MinCounterHit       *int   `json:"min_counter_hit,omitempty"`
	CounterHitLaunchers bool   `json:"counter_hit_launchers,omitempty"`
	SafeOnBlock         bool   `json:"safe_on_block,omitempty"`
	HasTag              string `json:"has_tag,omitempty"`
	Limit               int    `json:"limit,omitempty"`
}

// Handler implementations

// HandleListCharacters handles the list_characters tool call.
func (h *Handlers) HandleListCharacters(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return successResult(h.svc.ListCharacters())
}

// HandleGetMovelist handles the get_movelist tool call.
func (h *Handlers) HandleGetMovelist(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[MovelistRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidInput(err.Error())), nil
	}

	result, err := h.svc.GetMovelist(ctx, input.Character)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleGetMove handles the get_move tool call.
func (h *Handlers) HandleGetMove(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[MoveRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidInput(err.Error())), nil
	}

	result, err := h.svc.GetMove(ctx, input.Character, input.Command)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleSearchMoves handles the search_moves tool call.
func (h *Handlers) HandleSearchMoves(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[SearchRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidInput(err.Error())), nil
	}

	result, err := h.svc.SearchMoves(ctx, input.Character, ops.FilterSpec{
		HitLevel:            input.HitLevel,
		MinDamage:           input.MinDamage,
		MaxStartup:          input.MaxStartup,
		MinBlock:            input.MinBlock,
		MaxBlock:            input.MaxBlock,
		MinHit:              input.MinHit,
		MinCounterHit:       input.MinCounterHit,
		CounterHitLaunchers: input.CounterHitLaunchers,
		SafeOnBlock:         input.SafeOnBlock,
		HasTag:              input.HasTag,
		Limit:               input.Limit,
	})
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// HandleCharacterOverview handles the character_overview tool call.
func (h *Handlers) HandleCharacterOverview(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[MovelistRequest](req)
	if err != nil {
		return errorResult(errors.NewInvalidInput(err.Error())), nil
	}

	result, err := h.svc.GetOverview(ctx, input.Character)
	if err != nil {
		return errorResult(err), nil
	}

	return successResult(result)
}

// errorResult creates an MCP error result from any error. FrameError
// details (suggestions, didYouMean, recovery) pass through so callers can
// recover without another round trip.
func errorResult(err error) *mcp.CallToolResult {
	fErr, ok := err.(*errors.FrameError)
	if !ok {
		fErr = errors.NewNetwork(err)
	}
	payload := map[string]any{"error": fErr}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
