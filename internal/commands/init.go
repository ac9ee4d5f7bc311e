package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/flowcast-dev/flowcast/internal/chart"
	"github.com/flowcast-dev/flowcast/internal/config"
)

func newInitCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new flowcast project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(absDir, cmd.OutOrStdout())
		},
	}

	return cmd
}

func runInit(dir string, out io.Writer) error {
	if err := os.MkdirAll(filepath.Join(dir, "results"), 0o755); err != nil {
		return fmt.Errorf("creating project directory: %w", err)
	}

	// Write flowcast.yaml.
	cfg := config.Default()
	if err := config.Save(filepath.Join(dir, "flowcast.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write the sample chart of accounts.
	f, err := os.Create(filepath.Join(dir, cfg.Accounts))
	if err != nil {
		return fmt.Errorf("creating chart of accounts file: %w", err)
	}
	defer f.Close()

	if err := chart.WriteAccounts(f, chart.DefaultChart()); err != nil {
		return fmt.Errorf("writing chart of accounts: %w", err)
	}

	fmt.Fprintf(out, "Initialized flowcast project at %s\n", dir)
	return nil
}
