package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/glitch-xp/loyola-academic-calender/internal/cli"
	"github.com/glitch-xp/loyola-academic-calender/internal/cli/system"
	"github.com/glitch-xp/loyola-academic-calender/internal/config"
	"github.com/glitch-xp/loyola-academic-calender/internal/constants"
	"github.com/glitch-xp/loyola-academic-calender/internal/errors"
	"github.com/glitch-xp/loyola-academic-calender/internal/fetch"
	"github.com/glitch-xp/loyola-academic-calender/internal/logger"
	"github.com/glitch-xp/loyola-academic-calender/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Config file path." default:"${config_path}"`
	Cache   string `help:"Cache path. A .json extension selects the JSON backend instead of SQLite." default:"${cache_path}"`
	Debug   bool   `help:"Write debug logs and echo them to stderr."`

	Init    system.InitCmd   `cmd:"" help:"Initialize the local cache."`
	Setup   cli.SetupCmd     `cmd:"" help:"Pick your department, year, shift, and section."`
	Today   cli.TodayCmd     `cmd:"" help:"Show today's day order and schedule." default:"1"`
	Day     cli.DayCmd       `cmd:"" help:"Show the schedule for a date."`
	Now     cli.NowCmd       `cmd:"" help:"Show the class in progress and what comes next."`
	Events  cli.EventsCmd    `cmd:"" help:"List upcoming calendar events."`
	Month   cli.MonthCmd     `cmd:"" help:"Show a month of day orders at a glance."`
	Watch   cli.WatchCmd     `cmd:"" help:"Live schedule view with background refresh."`
	Refresh cli.RefreshCmd   `cmd:"" help:"Re-fetch the timetable and calendar."`
	Conf    cli.ConfigCmd    `cmd:"" name:"config" help:"Inspect and change configuration."`
	Doctor  system.DoctorCmd `cmd:"" help:"Run health checks and diagnostics."`
	Dump    system.DebugCmd  `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Day order and class schedule companion for Loyola students"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":     constants.Version,
			"config_path": constants.DefaultConfigPath,
			"cache_path":  constants.DefaultCachePath,
		},
	)

	configPath := expandHome(CLI.Config)
	cachePath := expandHome(CLI.Cache)

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, errors.Format(err))
		os.Exit(1)
	}

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		fmt.Fprintln(os.Stderr, errors.Formatf("failed to initialize logging: %v", err))
		os.Exit(1)
	}

	store := storage.NewFromPath(cachePath)
	defer store.Close()

	appCtx := &cli.Context{
		Store:      store,
		Config:     cfg,
		ConfigPath: configPath,
		Client:     fetch.NewClient(cfg.BaseURL),
	}

	if err := ctx.Run(appCtx); err != nil {
		store.Close()
		errors.Fatal(err)
	}
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}
