package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/example/darkcircles/internal/config"
	"github.com/example/darkcircles/internal/logging"
	"github.com/example/darkcircles/internal/menu"
	"github.com/example/darkcircles/internal/notify"
	"github.com/example/darkcircles/internal/power"
)

type rootOptions struct {
	configPath string
	backend    string
	debug      bool
	console    bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "darkcircles",
		Short: "Keep your Mac awake from the menu bar.",
		Long: `Dark Circles puts a glyph in the menu bar. Click "Toggle Sleep" to
prevent idle sleep, click it again to allow it. Quit releases the assertion.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTray(cmd.Context(), opts)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config.toml (default: user config dir)")
	flags.StringVar(&opts.backend, "backend", "", "power backend override (see 'darkcircles backends')")
	flags.BoolVar(&opts.debug, "debug", false, "enable debug logging")
	flags.BoolVar(&opts.console, "console", false, "keep the console window open (Windows)")

	cmd.AddCommand(newVersionCmd(), newBackendsCmd())
	return cmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "darkcircles %s (commit %s)\n", version, buildCommit)
		},
	}
}

func newBackendsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backends",
		Short: "List the power backends usable on this platform.",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			def := power.DefaultBackend()
			for _, name := range power.Backends() {
				marker := ""
				if name == def {
					marker = " (auto)"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", name, marker)
			}
		},
	}
}

func loadConfig(opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.backend != "" {
		cfg.Backend = opts.backend
	}
	if opts.debug {
		cfg.Debug = true
	}
	return cfg, nil
}

func resolvedBackend(name string) string {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	if trimmed == "" || trimmed == power.BackendAuto {
		return power.DefaultBackend()
	}
	return trimmed
}

func runTray(ctx context.Context, opts *rootOptions) error {
	if !showConsole(opts.console) {
		hideConsoleWindow()
	}
	logging.Setup(os.Stderr, true)
	logging.LevelFromEnv()

	cfg, err := loadConfig(opts)
	if err != nil {
		return fmt.Errorf("load configuration: %w", err)
	}
	if cfg.Debug {
		logging.EnableDebug()
	}

	asserter, err := power.New(cfg.Backend)
	if err != nil {
		return err
	}
	logging.Debugf("using power backend %q", resolvedBackend(cfg.Backend))

	var notifier notify.Notifier = notify.BeeepNotifier{}
	if !cfg.Notifications {
		notifier = notify.Discard{}
		slog.Debug("notifications disabled by configuration")
	}

	runner := menu.NewRunner(
		power.NewGuard(asserter, cfg.Reason),
		notify.NewScheduler(notifier, cfg.NotificationDelay.Duration),
		menu.Options{
			Glyphs:            menu.Glyphs{Allowed: cfg.AllowedGlyph, Blocked: cfg.BlockedGlyph},
			Tooltip:           cfg.Tooltip,
			NotificationTitle: cfg.NotificationTitle,
		},
	)
	return runner.Start(ctx)
}
