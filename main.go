package main

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v3"

	"github.com/docketcli/docket/internal/commands"
	"github.com/docketcli/docket/internal/core/config"
	"github.com/docketcli/docket/internal/core/styles"
	"github.com/docketcli/docket/internal/data/stores"
	"github.com/docketcli/docket/internal/docket"
	"github.com/docketcli/docket/pkg/logutils"
)

var (
	// Build information. Populated at build-time via -ldflags flag.
	// When installed via `go install module@version`, init() populates
	// these from runtime/debug.BuildInfo instead.
	version = "dev"
	commit  = "HEAD"
	date    = "now"
)

func build() string {
	v, c, d := version, commit, date

	// When installed via `go install module@version`, ldflags aren't set
	// so version remains "dev". Fall back to runtime/debug.BuildInfo which
	// Go populates automatically with the module version and VCS metadata.
	if v == "dev" {
		if info, ok := debug.ReadBuildInfo(); ok {
			if mv := info.Main.Version; mv != "" && mv != "(devel)" {
				v = mv
			}
			for _, s := range info.Settings {
				switch s.Key {
				case "vcs.revision":
					c = s.Value
				case "vcs.time":
					d = s.Value
				}
			}
		}
	}

	short := c
	if len(c) > 7 {
		short = c[:7]
	}

	return fmt.Sprintf("%s (%s) %s", v, short, d)
}

func main() {
	ctx := context.Background()

	var (
		logCloser func()
		docketApp = &docket.App{}
	)

	flags := &commands.Flags{}

	app := &cli.Command{
		Name:      "docket",
		Usage:     "Track your tasks from the terminal",
		UsageText: "docket [global options] command [command options]",
		Description: `Docket is a small task tracker that lives in your terminal.

Tasks are kept as an in-memory collection for the lifetime of the process;
nothing is written to disk except logs.

Run 'docket' with no arguments to open the interactive menu.
Run 'docket add "Buy milk"' to add a task straight from the shell.`,
		Version:               build(),
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error, fatal, panic)",
				Sources:     cli.EnvVars("DOCKET_LOG_LEVEL"),
				Value:       "info",
				Destination: &flags.LogLevel,
			},
			&cli.StringFlag{
				Name:        "log-file",
				Usage:       "path to log file",
				Sources:     cli.EnvVars("DOCKET_LOG_FILE"),
				Value:       commands.DefaultLogFile(),
				Destination: &flags.LogFile,
			},
			&cli.StringFlag{
				Name:        "config",
				Aliases:     []string{"c"},
				Usage:       "path to config file",
				Sources:     cli.EnvVars("DOCKET_CONFIG"),
				Value:       commands.DefaultConfigPath(),
				Destination: &flags.ConfigPath,
			},
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := logutils.New(flags.LogLevel, flags.LogFile)
			if err != nil {
				return ctx, fmt.Errorf("setup logger: %w", err)
			}
			log.Logger = logger
			logCloser = closer

			cfg, err := config.Load(flags.ConfigPath)
			if err != nil {
				return ctx, fmt.Errorf("load config: %w", err)
			}
			flags.Config = cfg

			// Apply configured theme (validation ensures name is valid)
			palette, _ := styles.GetPalette(cfg.TUI.Theme)
			styles.SetTheme(palette)

			// Populate the pre-allocated App struct (commands already hold a pointer to it)
			*docketApp = *docket.NewApp(stores.NewTaskStore(), cfg, log.Logger)

			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if logCloser != nil {
				logCloser()
			}
			return nil
		},
	}

	menuCmd := commands.NewMenuCmd(flags, docketApp)

	app = commands.NewAddCmd(flags, docketApp).Register(app)
	app = commands.NewLsCmd(flags, docketApp).Register(app)
	app = commands.NewShowCmd(flags, docketApp).Register(app)
	app = commands.NewEditCmd(flags, docketApp).Register(app)
	app = commands.NewStatusCmd(flags, docketApp).Register(app)
	app = commands.NewRmCmd(flags, docketApp).Register(app)
	app = commands.NewPruneCmd(flags, docketApp).Register(app)
	app = commands.NewImportCmd(flags, docketApp).Register(app)
	app = commands.NewBoardCmd(flags, docketApp).Register(app)
	app = menuCmd.Register(app)
	app = commands.NewConfigValidateCmd(flags).Register(app)
	app = commands.NewInitCmd(flags).Register(app)
	app = commands.NewDoctorCmd(flags, docketApp).Register(app)

	// Open the menu when no subcommand is provided
	app.Action = func(ctx context.Context, c *cli.Command) error {
		if c.Args().Len() > 0 {
			return fmt.Errorf("unknown command %q. Run 'docket --help' for usage", c.Args().First())
		}
		return menuCmd.Run(ctx, c)
	}

	exitCode := 0
	runErr := app.Run(ctx, os.Args)
	if runErr != nil {
		fmt.Println()
		fmt.Println(runErr.Error())
		exitCode = 1
	}

	os.Exit(exitCode)
}
