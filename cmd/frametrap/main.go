package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/mishimalab/frametrap/internal/config"
	"github.com/mishimalab/frametrap/internal/mcp"
	"github.com/mishimalab/frametrap/internal/ops"
	"github.com/mishimalab/frametrap/internal/provider"
)

// Version is set via -ldflags at build time.
var Version = "dev"

// cliCommands contains known CLI subcommands.
var cliCommands = map[string]bool{
	"characters": true, "movelist": true, "move": true,
	"search": true, "overview": true, "web": true,
	"help": true,
}

// isCLIMode determines if we should run CLI vs MCP server.
func isCLIMode() bool {
	if len(os.Args) < 2 {
		return false // No args → MCP server
	}
	arg := os.Args[1]
	// Known subcommand → CLI
	if cliCommands[arg] {
		return true
	}
	// --help or --version → CLI
	if arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" {
		return true
	}
	return false // Default → MCP server
}

// isHelpOrVersion returns true if the user is requesting help or version info.
func isHelpOrVersion() bool {
	if len(os.Args) < 2 {
		return false
	}
	arg := os.Args[1]
	return arg == "--help" || arg == "-h" || arg == "--version" || arg == "-v" || arg == "help"
}

// isTerminal returns true if stdin is a terminal (not piped).
func isTerminal() bool {
	stat, _ := os.Stdin.Stat()
	return (stat.Mode() & os.ModeCharDevice) != 0
}

// printBanner displays a friendly banner when run interactively without args.
func printBanner() {
	fmt.Println(`
   __                       _
  / _|_ _ __ _ _ __  ___   | |_ _ _ __ _ _ __
 |  _| '_/ _' | '  \/ -_)  |  _| '_/ _' | '_ \
 |_| |_| \__,_|_|_|_\___|   \__|_| \__,_| .__/
                                        |_|
  Frame-data query and ranking engine

  Usage: frametrap <command> [options]
         frametrap --help

  MCP server mode requires piped input.`)
}

// newLogger builds the process logger. Everything goes to stderr so the
// MCP stdio transport keeps stdout to itself.
func newLogger() zerolog.Logger {
	zerolog.DurationFieldUnit = time.Millisecond
	level := zerolog.InfoLevel
	if os.Getenv("FRAMETRAP_DEBUG") != "" {
		level = zerolog.DebugLevel
	}
	return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
}

// newService wires the providers and caches from config.
func newService(cfg *config.Config, log zerolog.Logger) *ops.Service {
	frameData := provider.NewClient(cfg.ProviderBaseURL, cfg.HTTPTimeout(), log)
	overviews := provider.NewOverviewClient(cfg.OverviewBaseURL, cfg.HTTPTimeout(), log)
	return ops.NewService(frameData, overviews, cfg.CacheTTL(), nil)
}

func main() {
	// No args + interactive terminal → show banner and exit
	if len(os.Args) < 2 && isTerminal() {
		printBanner()
		return
	}

	// Handle --help/--version before config load
	if isHelpOrVersion() {
		app := newCLIApp(nil)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	log := newLogger()

	baseDir := ""
	if homeDir, err := os.UserHomeDir(); err == nil {
		baseDir = filepath.Join(homeDir, ".frametrap")
	}

	cfg, err := config.Load(baseDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: failed to load config: %v\n", err)
		os.Exit(1)
	}

	if unknown := mcp.ValidateDisabledTools(cfg.DisabledTools); len(unknown) > 0 {
		log.Warn().Strs("tools", unknown).Msg("ignoring unknown names in disabled_tools")
	}

	svc := newService(cfg, log)

	// CLI mode: known subcommand
	if isCLIMode() {
		app := newCLIApp(svc)
		if err := app.Run(os.Args); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Unknown argument + terminal → show error (don't start MCP server)
	if len(os.Args) >= 2 && isTerminal() {
		fmt.Fprintf(os.Stderr, "error: unknown command %q\n", os.Args[1])
		fmt.Fprintf(os.Stderr, "Run 'frametrap --help' for usage.\n")
		os.Exit(1)
	}

	// MCP server mode (default)
	if err := mcp.Run(svc, cfg, Version); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
