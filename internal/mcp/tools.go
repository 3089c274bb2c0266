package mcp

import "github.com/mark3labs/mcp-go/mcp"

var listCharactersToolDef = mcp.NewTool("list_characters",
	mcp.WithDescription("List every playable character in roster order. Character names are lowercase and hyphen-separated (e.g. devil-jin, jack-8)."),
)

var getMovelistToolDef = mcp.NewTool("get_movelist",
	mcp.WithDescription("Fetch a character's full movelist with frame data and a strategic-importance score per move."),
	mcp.WithString("character",
		mcp.Required(),
		mcp.Description("Roster character name, e.g. \"law\" or \"devil-jin\". Case-insensitive."),
	),
)

var getMoveToolDef = mcp.NewTool("get_move",
	mcp.WithDescription("Look up a single move by exact command notation (case-insensitive), e.g. \"d/f+2\"."),
	mcp.WithString("character",
		mcp.Required(),
		mcp.Description("Roster character name."),
	),
	mcp.WithString("command",
		mcp.Required(),
		mcp.Description("Command notation to match, e.g. \"d/f+2\" or \"ws4\"."),
	),
)

var searchMovesToolDef = mcp.NewTool("search_moves",
	mcp.WithDescription("Filter a character's movelist. All constraints are combined; omitted constraints are ignored. Results keep movelist order."),
	mcp.WithString("character",
		mcp.Required(),
		mcp.Description("Roster character name."),
	),
	mcp.WithString("hit_level",
		mcp.Description("Keep moves whose hit level contains this letter: h, m, l, or s."),
	),
	mcp.WithNumber("min_damage",
		mcp.Description("Minimum damage (first number of the damage string)."),
	),
	mcp.WithNumber("max_startup",
		mcp.Description("Maximum startup frames. Moves with no startup data are kept."),
	),
	mcp.WithNumber("min_block",
		mcp.Description("Minimum frame advantage on block."),
	),
	mcp.WithNumber("max_block",
		mcp.Description("Maximum frame advantage on block."),
	),
	mcp.WithNumber("min_hit",
		mcp.Description("Minimum frame advantage on hit."),
	),
	mcp.WithNumber("min_counter_hit",
		mcp.Description("Minimum frame advantage on counter hit."),
	),
	mcp.WithBoolean("counter_hit_launchers",
		mcp.Description("Keep only moves that launch on counter hit."),
	),
	mcp.WithBoolean("safe_on_block",
		mcp.Description("Keep only moves that are -10 or better on block."),
	),
	mcp.WithString("has_tag",
		mcp.Description("Keep moves with a property: he, heat, tornado, screw, wall, guard-break, reversal-break, charge, hold, safe, or ch-launcher."),
	),
	mcp.WithNumber("limit",
		mcp.Description("Truncate the result to the first N moves."),
	),
)

var characterOverviewToolDef = mcp.NewTool("character_overview",
	mcp.WithDescription("Fetch a short qualitative overview of a character's playstyle from the community wiki. Best-effort; may be empty."),
	mcp.WithString("character",
		mcp.Required(),
		mcp.Description("Roster character name."),
	),
)
