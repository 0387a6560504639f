package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/gildedrose/internal/config"
	"github.com/zjrosen/gildedrose/internal/log"
	"github.com/zjrosen/gildedrose/internal/presentation"
	"github.com/zjrosen/gildedrose/internal/simulation"
	"github.com/zjrosen/gildedrose/internal/tracing"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in the stepper.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

// ErrInvalidDayCount is returned when the day argument is not a positive integer.
var ErrInvalidDayCount = errors.New("invalid day count")

var version = "dev"

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	cfgFile string
	format  string
	debug   bool
	logFile string
	trace   bool
	width   int
}

var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "gildedrose [days]",
		Short: "Simulate the Gilded Rose inventory aging day by day",
		Long: `Simulate the Gilded Rose inventory.

Every day the stock is printed, then each item's sell-in and quality are
updated by its category rules. Late deliveries from the arrival schedule are
added after their day's update.

Examples:
  # Run the default 30 days
  gildedrose

  # Run 10 days as a table
  gildedrose 10 --format table

  # Emit JSON and pick out the final day
  gildedrose 5 -f json | jq -s 'last'`,
		Version:      version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(cmd, opts, args)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default: ./.gildedrose/config.yaml or ~/.config/gildedrose/config.yaml)")
	pf.StringVarP(&opts.format, "format", "f", config.FormatText,
		"output format: text, table, json, yaml")
	pf.BoolVar(&opts.debug, "debug", false, "write debug logs to --log-file")
	pf.StringVar(&opts.logFile, "log-file", "debug.log", "debug log destination")
	pf.BoolVar(&opts.trace, "trace", false, "enable tracing with the configured exporter")
	cmd.Flags().IntVar(&opts.width, "width", 0, "table width (default: terminal width, unlimited when not a terminal)")

	cmd.AddCommand(
		newCategoriesCmd(),
		newStepCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

// loadConfig reads the configuration with command-line flags layered on top.
// Returns the path of the config file read, or "" when defaults were used.
func loadConfig(cmd *cobra.Command, opts *rootOptions) (config.Config, string, error) {
	v := viper.New()
	pf := cmd.Root().PersistentFlags()
	for key, flag := range map[string]string{
		"format":          "format",
		"log.debug":       "debug",
		"log.file":        "log-file",
		"tracing.enabled": "trace",
	} {
		if err := v.BindPFlag(key, pf.Lookup(flag)); err != nil {
			return config.Config{}, "", fmt.Errorf("binding --%s: %w", flag, err)
		}
	}
	return config.Load(v, opts.cfgFile)
}

// setupLogging starts the debug log when enabled. The returned cleanup is never nil.
func setupLogging(cfg config.Config) (func(), error) {
	if !cfg.Log.Debug {
		return func() {}, nil
	}
	cleanup, err := log.Init(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	log.SetMinLevel(log.ParseLevel(cfg.Log.Level))
	return func() {
		log.Reset()
		cleanup()
	}, nil
}

// tableWidth returns the width for table output: the --width flag when set,
// else the width of w when it is a terminal, else 0 (unlimited).
func tableWidth(w io.Writer, flagWidth int) int {
	if flagWidth > 0 {
		return flagWidth
	}
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(f.Fd()) {
		return 0
	}
	width, _, err := term.GetSize(f.Fd())
	if err != nil {
		log.Debug(log.CatConfig, "Terminal size unavailable", "error", err)
		return 0
	}
	return width
}

// parseDays returns the day count from args, or fallback when none was given.
func parseDays(args []string, fallback int) (int, error) {
	if len(args) == 0 {
		return fallback, nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDayCount, args[0])
	}
	return n, nil
}

func runSimulate(cmd *cobra.Command, opts *rootOptions, args []string) error {
	cfg, _, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	if cfg.Days, err = parseDays(args, cfg.Days); err != nil {
		return err
	}
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	cleanup, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	ctx := cmd.Context()
	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer func() {
		if err := provider.Shutdown(context.WithoutCancel(ctx)); err != nil {
			log.ErrorErr(log.CatTrace, "Tracing shutdown failed", err)
		}
	}()

	out := cmd.OutOrStdout()
	renderer, err := presentation.NewRenderer(cfg.Format, out, presentation.Options{
		Banner: cfg.Banner,
		Width:  tableWidth(out, opts.width),
	})
	if err != nil {
		return err
	}

	sim, err := simulation.New(simulation.Options{
		Days:      cfg.Days,
		Inventory: cfg.Inventory,
		Arrivals:  cfg.Arrivals,
		Renderer:  renderer,
		Tracer:    provider.Tracer(),
	})
	if err != nil {
		return err
	}
	return sim.Run(ctx)
}

// Execute runs the root command, cancelling it on SIGINT or SIGTERM.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
