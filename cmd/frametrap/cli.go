package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/mishimalab/frametrap/internal/errors"
	"github.com/mishimalab/frametrap/internal/frames"
	"github.com/mishimalab/frametrap/internal/ops"
	"github.com/mishimalab/frametrap/internal/web"
)

// newCLIApp creates the CLI application with all commands.
func newCLIApp(svc *ops.Service) *cli.App {
	app := &cli.App{
		Name:    "frametrap",
		Usage:   "Frame-data query and ranking engine",
		Version: Version,
		Commands: []*cli.Command{
			charactersCmd(svc),
			movelistCmd(svc),
			moveCmd(svc),
			searchCmd(svc),
			overviewCmd(svc),
			webCmd(svc),
		},
	}
	// Disable default exit error handler to allow proper error return in tests
	app.ExitErrHandler = func(_ *cli.Context, _ error) {}
	return app
}

// jsonFlag switches a command from table output to raw JSON.
var jsonFlag = &cli.BoolFlag{Name: "json", Usage: "Emit JSON instead of a table"}

// charactersCmd creates the characters command.
func charactersCmd(svc *ops.Service) *cli.Command {
	return &cli.Command{
		Name:  "characters",
		Usage: "List the supported character roster",
		Flags: []cli.Flag{jsonFlag},
		Action: func(c *cli.Context) error {
			output := svc.ListCharacters()
			if c.Bool("json") {
				return outputJSON(output)
			}

			rows := make([][]string, 0, len(output.Characters))
			for i, name := range output.Characters {
				rows = append(rows, []string{strconv.Itoa(i + 1), name})
			}
			fmt.Println(renderTable(
				[]string{"#", "Character"},
				rows,
				[]columnAlignment{alignRight, alignLeft},
			))
			return nil
		},
	}
}

// movelistCmd creates the movelist command.
func movelistCmd(svc *ops.Service) *cli.Command {
	return &cli.Command{
		Name:      "movelist",
		Usage:     "Fetch the scored movelist for a character",
		ArgsUsage: "<character>",
		Flags:     []cli.Flag{jsonFlag},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidInput("character argument is required"))
			}

			output, err := svc.GetMovelist(c.Context, c.Args().First())
			if err != nil {
				return outputError(err)
			}
			if c.Bool("json") {
				return outputJSON(output)
			}

			fmt.Println(renderMoveTable(output.Moves))
			return nil
		},
	}
}

// moveCmd creates the move command.
func moveCmd(svc *ops.Service) *cli.Command {
	return &cli.Command{
		Name:      "move",
		Usage:     "Look up a single move by exact command notation",
		ArgsUsage: "<character> <command>",
		Flags:     []cli.Flag{jsonFlag},
		Action: func(c *cli.Context) error {
			if c.NArg() < 2 {
				return outputError(errors.NewInvalidInput("character and command arguments are required"))
			}

			output, err := svc.GetMove(c.Context, c.Args().Get(0), c.Args().Get(1))
			if err != nil {
				return outputError(err)
			}
			if c.Bool("json") {
				return outputJSON(output)
			}

			fmt.Println(renderMoveTable([]frames.Move{*output.Move}))
			return nil
		},
	}
}

// searchCmd creates the search command.
func searchCmd(svc *ops.Service) *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "Filter a character's movelist by frame-data constraints",
		ArgsUsage: "<character>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "hit-level", Usage: "Exact hit level (h, m, l, ...)"},
			&cli.IntFlag{Name: "min-damage", Usage: "Minimum damage"},
			&cli.IntFlag{Name: "max-startup", Usage: "Maximum startup frames"},
			&cli.IntFlag{Name: "min-block", Usage: "Minimum block advantage"},
			&cli.IntFlag{Name: "max-block", Usage: "Maximum block advantage"},
			&cli.IntFlag{Name: "min-hit", Usage: "Minimum hit advantage"},
			&cli.IntFlag{Name: "min-counter-hit", Usage: "Minimum counter-hit advantage"},
			&cli.BoolFlag{Name: "ch-launchers", Usage: "Only counter-hit launchers"},
			&cli.BoolFlag{Name: "safe", Usage: "Only moves safe on block"},
			&cli.StringFlag{Name: "tag", Usage: "Tag or alias (heat, tornado, safe, ch-launcher, ...)"},
			&cli.IntFlag{Name: "limit", Aliases: []string{"l"}, Usage: "Maximum moves to return"},
			jsonFlag,
		},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidInput("character argument is required"))
			}

			spec := ops.FilterSpec{
				HitLevel:            c.String("hit-level"),
				CounterHitLaunchers: c.Bool("ch-launchers"),
				SafeOnBlock:         c.Bool("safe"),
				HasTag:              c.String("tag"),
				Limit:               c.Int("limit"),
			}
			if c.IsSet("min-damage") {
				spec.MinDamage = intPtr(c.Int("min-damage"))
			}
			if c.IsSet("max-startup") {
				spec.MaxStartup = intPtr(c.Int("max-startup"))
			}
			if c.IsSet("min-block") {
				spec.MinBlock = intPtr(c.Int("min-block"))
			}
			if c.IsSet("max-block") {
				spec.MaxBlock = intPtr(c.Int("max-block"))
			}
			if c.IsSet("min-hit") {
				spec.MinHit = intPtr(c.Int("min-hit"))
			}
			if c.IsSet("min-counter-hit") {
				spec.MinCounterHit = intPtr(c.Int("min-counter-hit"))
			}

			output, err := svc.SearchMoves(c.Context, c.Args().First(), spec)
			if err != nil {
				return outputError(err)
			}
			if c.Bool("json") {
				return outputJSON(output)
			}

			fmt.Println(renderMoveTable(output.Moves))
			return nil
		},
	}
}

// overviewCmd creates the overview command.
func overviewCmd(svc *ops.Service) *cli.Command {
	return &cli.Command{
		Name:      "overview",
		Usage:     "Fetch the qualitative overview for a character",
		ArgsUsage: "<character>",
		Flags:     []cli.Flag{jsonFlag},
		Action: func(c *cli.Context) error {
			if c.NArg() < 1 {
				return outputError(errors.NewInvalidInput("character argument is required"))
			}

			output, err := svc.GetOverview(c.Context, c.Args().First())
			if err != nil {
				return outputError(err)
			}
			if c.Bool("json") {
				return outputJSON(output)
			}

			fmt.Println(output.Overview)
			return nil
		},
	}
}

// webCmd creates the web command.
func webCmd(svc *ops.Service) *cli.Command {
	return &cli.Command{
		Name:  "web",
		Usage: "Serve the local inspection UI",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "bind", Value: "127.0.0.1", Usage: "Bind address"},
			&cli.IntFlag{Name: "port", Aliases: []string{"p"}, Value: 8791, Usage: "Listen port"},
		},
		Action: func(c *cli.Context) error {
			log := newLogger()
			srv, err := web.NewServer(svc, Version, c.String("bind"), c.Int("port"), log)
			if err != nil {
				return outputError(err)
			}
			return web.Run(srv, log)
		},
	}
}

// Helper functions

func intPtr(v int) *int { return &v }

// outputJSON marshals result to stdout as JSON.
func outputJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// outputError formats error for CLI.
func outputError(err error) error {
	if fErr, ok := err.(*errors.FrameError); ok {
		msg := fmt.Sprintf("[%s] %s", fErr.Code, fErr.Message)
		if fErr.DidYouMean != "" {
			msg += fmt.Sprintf(" (did you mean %q?)", fErr.DidYouMean)
		}
		return cli.Exit(msg, 1)
	}
	return cli.Exit(err.Error(), 1)
}
