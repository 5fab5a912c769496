package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cliclock/cliclock/internal/clock"
	"github.com/cliclock/cliclock/internal/config"
	"github.com/cliclock/cliclock/internal/term"
	"github.com/cliclock/cliclock/internal/tui"
)

//nolint:gochecknoglobals // Cobra requires package-level vars for flag bindings in current structure.
var (
	// Version metadata populated at build time via -ldflags.
	releaseVersion = "dev"
	commit         = "none"
	date           = "unknown"

	// Used for flags.
	configFile string
	verbose    bool
	twelveHour bool
	foreground string
	background string
	layoutName string
	tuiMode    bool

	rootCmd = &cobra.Command{
		Use:   "cliclock",
		Short: "A full-screen seven-segment clock for the terminal.",
		Long: `cliclock draws the current time as large seven-segment digits centered in the terminal, ` +
			`with the date underneath. It redraws every second and on resize, and exits on any key.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runClock,
	}
)

//nolint:gochecknoinits // Cobra command wiring performed in init in current structure.
func init() {
	// Route logs to stderr; stdout belongs to the clock.
	logrus.SetOutput(os.Stderr)

	defaults := config.Default()
	rootCmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML config file (default: $XDG_CONFIG_HOME/cliclock/config.yaml)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable detailed logging output")
	rootCmd.Flags().BoolVarP(&twelveHour, "twelve-hour", "t", defaults.TwelveHour, "Show the hour on a 12-hour dial")
	rootCmd.Flags().
		StringVar(&foreground, "fg", defaults.Foreground, `Glyph the digits are painted with; "" paints each digit with its own numeral`)
	rootCmd.Flags().StringVar(&background, "bg", defaults.Background, "Glyph for the unlit parts of each digit")
	rootCmd.Flags().StringVar(&layoutName, "layout", defaults.Layout, "Digit arrangement: bordered or grouped")
	rootCmd.Flags().BoolVar(&tuiMode, "tui", defaults.TUI, "Run on the Bubble Tea renderer instead of the raw terminal loop")

	// Built-in version flag: set version string and a custom template.
	rootCmd.Version = releaseVersion
	rootCmd.Annotations = map[string]string{"commit": commit, "date": date}
	rootCmd.SetVersionTemplate("{{printf \"%s %s\\ncommit: %s\\ndate: %s\\n\" .DisplayName .Version (index .Annotations \"commit\") (index .Annotations \"date\")}}")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Fatal(err)
	}
}

func runClock(cmd *cobra.Command, _ []string) error {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	} else {
		logrus.SetLevel(logrus.WarnLevel)
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	opts, err := clockOptions(cfg)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.TUI {
		if err := tui.Run(ctx, opts); err != nil {
			return fmt.Errorf("TUI mode failed: %w", err)
		}
		return nil
	}
	return runTerminal(ctx, opts)
}

// loadConfig reads the config file, then lays explicitly set flags over it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path, required := configFile, cmd.Flags().Changed("config")
	if !required {
		p, err := config.DefaultPath()
		if err != nil {
			logrus.Debugf("no default config location: %v", err)
		}
		path = p
	}

	cfg, err := config.Load(path, required)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("twelve-hour") {
		cfg.TwelveHour = twelveHour
	}
	if flags.Changed("fg") {
		cfg.Foreground = foreground
	}
	if flags.Changed("bg") {
		cfg.Background = background
	}
	if flags.Changed("layout") {
		cfg.Layout = layoutName
	}
	if flags.Changed("tui") {
		cfg.TUI = tuiMode
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	logrus.Debugf("config: %+v", cfg)
	return cfg, nil
}

func clockOptions(cfg config.Config) (clock.Options, error) {
	strategy, err := cfg.Strategy()
	if err != nil {
		return clock.Options{}, err
	}
	opts := clock.DefaultOptions()
	opts.TwelveHour = cfg.TwelveHour
	opts.Glyphs = cfg.Glyphs()
	opts.Layout = strategy
	return opts, nil
}

func runTerminal(ctx context.Context, opts clock.Options) (err error) {
	t, err := term.Open()
	if err != nil {
		if errors.Is(err, term.ErrNotTerminal) {
			return fmt.Errorf("%w: cliclock needs an interactive terminal", err)
		}
		return err
	}
	defer func() {
		err = errors.Join(err, t.Close())
	}()

	// Silence logs while the clock owns the screen.
	prevOut := logrus.StandardLogger().Out
	logrus.SetOutput(io.Discard)
	defer logrus.SetOutput(prevOut)

	return clock.Run(ctx, t, opts)
}

func main() {
	Execute()
}
