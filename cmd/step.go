package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/zjrosen/gildedrose/internal/config"
	"github.com/zjrosen/gildedrose/internal/log"
	"github.com/zjrosen/gildedrose/internal/simulation"
	"github.com/zjrosen/gildedrose/internal/ui/stepper"
	"github.com/zjrosen/gildedrose/internal/watcher"
)

type stepOptions struct {
	days  int
	watch bool
}

func newStepCmd(opts *rootOptions) *cobra.Command {
	stepOpts := &stepOptions{}

	cmd := &cobra.Command{
		Use:   "step",
		Short: "Step through the simulation interactively",
		Long: `Open an interactive view that advances the inventory one day per keypress.

Keys: n/space next day, a run remaining days, r restart, l logs, ? help, q quit.

With --watch, saving the config file restarts the simulation with the new
inventory.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runStep(cmd, opts, stepOpts)
		},
	}

	cmd.Flags().IntVar(&stepOpts.days, "days", config.DefaultDays, "number of days to simulate")
	cmd.Flags().BoolVarP(&stepOpts.watch, "watch", "w", false, "restart when the config file changes")
	return cmd
}

// stepSimulationOptions loads and validates the config for the stepper.
func stepSimulationOptions(cmd *cobra.Command, opts *rootOptions, stepOpts *stepOptions) (config.Config, simulation.Options, string, error) {
	cfg, path, err := loadConfig(cmd, opts)
	if err != nil {
		return config.Config{}, simulation.Options{}, "", err
	}
	if cmd.Flags().Changed("days") {
		cfg.Days = stepOpts.days
	}
	if err := config.Validate(cfg); err != nil {
		return config.Config{}, simulation.Options{}, "", fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, simulation.Options{
		Days:      cfg.Days,
		Inventory: cfg.Inventory,
		Arrivals:  cfg.Arrivals,
	}, path, nil
}

func runStep(cmd *cobra.Command, opts *rootOptions, stepOpts *stepOptions) error {
	cfg, simOpts, path, err := stepSimulationOptions(cmd, opts, stepOpts)
	if err != nil {
		return err
	}

	cleanup, err := setupLogging(cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	model, err := stepper.New(cmd.Context(), simOpts)
	if err != nil {
		return err
	}
	defer model.Close()

	if stepOpts.watch {
		if path == "" {
			return errors.New("--watch needs a config file (run 'gildedrose config init')")
		}
		w, err := watcher.New(watcher.DefaultConfig(path))
		if err != nil {
			return err
		}
		changes, err := w.Start()
		if err != nil {
			return err
		}
		defer func() {
			if err := w.Stop(); err != nil {
				log.ErrorErr(log.CatConfig, "Stopping config watcher", err)
			}
		}()

		model = model.WithReload(changes, func() (simulation.Options, error) {
			_, simOpts, _, err := stepSimulationOptions(cmd, opts, stepOpts)
			return simOpts, err
		})
	}

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
