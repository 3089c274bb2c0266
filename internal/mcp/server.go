package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/mishimalab/frametrap/internal/config"
	"github.com/mishimalab/frametrap/internal/ops"
)

// toolEntry pairs a tool definition with a handler factory.
type toolEntry struct {
	def     mcp.Tool
	handler func(*Handlers) server.ToolHandlerFunc
}

// toolRegistry maps tool names to their definitions and handler factories.
var toolRegistry = map[string]toolEntry{
	"list_characters": {
		def:     listCharactersToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleListCharacters },
	},
	"get_movelist": {
		def:     getMovelistToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGetMovelist },
	},
	"get_move": {
		def:     getMoveToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleGetMove },
	},
	"search_moves": {
		def:     searchMovesToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleSearchMoves },
	},
	"character_overview": {
		def:     characterOverviewToolDef,
		handler: func(h *Handlers) server.ToolHandlerFunc { return h.HandleCharacterOverview },
	},
}

// AllToolNames returns a list of all valid tool names.
func AllToolNames() []string {
	names := make([]string, 0, len(toolRegistry))
	for name := range toolRegistry {
		names = append(names, name)
	}
	return names
}

// ValidateDisabledTools returns a list of unknown tool names from the given list.
func ValidateDisabledTools(names []string) []string {
	unknown := make([]string, 0)
	for _, name := range names {
		if _, ok := toolRegistry[name]; !ok {
			unknown = append(unknown, name)
		}
	}
	return unknown
}

// NewServer creates a new MCP server with the frame-data tools registered.
// Tools listed in cfg.DisabledTools are excluded from registration.
func NewServer(svc *ops.Service, cfg *config.Config, version string) *server.MCPServer {
	s := server.NewMCPServer(
		"frametrap",
		version,
		server.WithToolCapabilities(true),
	)

	h := NewHandlers(svc)

	disabled := make(map[string]bool)
	for _, name := range cfg.DisabledTools {
		disabled[name] = true
	}

	for name, entry := range toolRegistry {
		if disabled[name] {
			continue
		}
		s.AddTool(entry.def, entry.handler(h))
	}

	return s
}

// Run starts the MCP server using stdio transport.
func Run(svc *ops.Service, cfg *config.Config, version string) error {
	s := NewServer(svc, cfg, version)
	return server.ServeStdio(s)
}

// ToolHandlerFunc is the signature for tool handlers.
type ToolHandlerFunc func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)
