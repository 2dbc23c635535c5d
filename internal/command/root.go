package command

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strings"
	"time"

	intconfig "tripsearch/internal/config"
	"tripsearch/internal/repositories"
	"tripsearch/internal/services"

	"github.com/fatih/color"
	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
)

func Main(name string, version string, usage string, commands ...*cli.Command) {
	app := &cli.App{
		Name:     name,
		Usage:    usage,
		Commands: commands,
		Version:  version,
		Before: func(ctx *cli.Context) error {
			noColor := ctx.Bool("no-color") || !isatty.IsTerminal(os.Stdout.Fd())
			color.NoColor = noColor

			logger := slog.New(tint.NewHandler(os.Stderr, &tint.Options{
				Level:      parseLevel(ctx.String("log-level")),
				TimeFormat: time.Kitchen,
				NoColor:    ctx.Bool("no-color") || !isatty.IsTerminal(os.Stderr.Fd()),
			}))
			// also routes the standard log package, which the services use
			slog.SetDefault(logger)

			return nil
		},
		Flags: GlobalFlags(),
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		if !ctx.Bool("debug") {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

// GlobalFlags are shared by every subcommand.
func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "base-url",
			Value:   intconfig.DefaultTripsBaseURL,
			EnvVars: []string{"TRIPS_API_BASE_URL"},
			Usage:   "Trips service origin; /trips is appended",
		},
		&cli.DurationFlag{
			Name:    "timeout",
			Value:   intconfig.DefaultTripsTimeout,
			EnvVars: []string{"TRIPS_API_TIMEOUT"},
			Usage:   "Timeout of one trips request",
		},
		&cli.DurationFlag{
			Name:    "tooltip-delay",
			Value:   intconfig.DefaultTooltipDelay,
			EnvVars: []string{"TOOLTIP_DELAY"},
			Usage:   "How long the link-copied marker stays visible",
		},
		&cli.StringFlag{
			Name:    "log-level",
			EnvVars: []string{"TRIPSEARCH_LOG_LEVEL"},
			Usage:   "Set logging level (debug, info, warn, error)",
			Value:   "warn",
		},
		&cli.BoolFlag{
			Name:    "no-color",
			EnvVars: []string{"NO_COLOR"},
			Usage:   "Disable coloured output",
		},
		&cli.BoolFlag{
			Name:    "debug",
			EnvVars: []string{"TRIPSEARCH_DEBUG"},
			Usage:   "Print error stack traces",
		},
	}
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func newController(ctx *cli.Context, clipboard services.Clipboard) *services.SearchController {
	repo := repositories.TripsRepository{
		BaseURL: ctx.String("base-url"),
		Client:  &http.Client{Timeout: ctx.Duration("timeout")},
	}
	return services.NewSearchController(repo, clipboard, ctx.Duration("tooltip-delay"))
}
