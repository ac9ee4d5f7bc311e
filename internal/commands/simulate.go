package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/flowcast-dev/flowcast/internal/chart"
	"github.com/flowcast-dev/flowcast/internal/config"
	"github.com/flowcast-dev/flowcast/internal/logging"
	"github.com/flowcast-dev/flowcast/internal/model"
	"github.com/flowcast-dev/flowcast/internal/report"
	"github.com/flowcast-dev/flowcast/internal/sim"
)

func newSimulateCommand() *cobra.Command {
	var configPath string
	var saveResults bool
	var outputDir string

	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the daily cash-flow simulation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSimulate(configPath, saveResults, outputDir, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "flowcast.yaml", "config file path")
	cmd.Flags().BoolVar(&saveResults, "save-results", false, "write results CSV and charts")
	cmd.Flags().StringVar(&outputDir, "output", "results", "output directory for --save-results")

	return cmd
}

func runSimulate(configPath string, saveResults bool, outputDir string, out io.Writer) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	log := logging.New(cfg.LogLevel)

	engine, registry, err := buildEngine(cfg, filepath.Dir(configPath), log)
	if err != nil {
		return err
	}

	results, err := engine.Run()
	if err != nil {
		return fmt.Errorf("simulation halted: %w", err)
	}

	reserve, _ := registry.Get(cfg.ReserveAccount)
	report.WriteSummary(out, cfg.ReserveAccount, engine.CumulativeInterest(), reserve.Balance())

	if !saveResults {
		return nil
	}
	return saveOutputs(results, registry, cfg, outputDir, log)
}

// buildEngine loads the chart of accounts and wires the engine with the
// configured schedule. The accounts path resolves relative to the config
// file's directory.
func buildEngine(cfg *config.Config, baseDir string, log *logging.Logger) (*sim.Engine, *chart.Registry, error) {
	accountsPath := cfg.Accounts
	if !filepath.IsAbs(accountsPath) {
		accountsPath = filepath.Join(baseDir, accountsPath)
	}

	registry, err := chart.Load(accountsPath)
	if err != nil {
		return nil, nil, err
	}
	if _, ok := registry.Get(cfg.BufferAccount); !ok {
		return nil, nil, fmt.Errorf("config: buffer account %q not in chart of accounts", cfg.BufferAccount)
	}
	if _, ok := registry.Get(cfg.ReserveAccount); !ok {
		return nil, nil, fmt.Errorf("config: reserve account %q not in chart of accounts", cfg.ReserveAccount)
	}

	start, err := model.ParseDate(cfg.StartDate)
	if err != nil {
		return nil, nil, fmt.Errorf("config: start_date: %w", err)
	}
	end, err := model.ParseDate(cfg.EndDate)
	if err != nil {
		return nil, nil, fmt.Errorf("config: end_date: %w", err)
	}

	engine := sim.New(registry, sim.Options{
		Start:           start,
		End:             end,
		BufferAccount:   cfg.BufferAccount,
		ReserveAccount:  cfg.ReserveAccount,
		EmployerAccount: cfg.EmployerAccount,
		FastPayoff:      cfg.FastPayoffEnabled,
		BufferCeiling:   decimal.NewFromFloat(cfg.MaxCheckingBalance),
		Log:             log,
	})

	for name, p := range cfg.Payments {
		day, err := model.ParseDate(p.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("config: payment %q: %w", name, err)
		}
		if err := engine.SchedulePayment(p.From, p.To, decimal.NewFromFloat(p.Amount), day); err != nil {
			return nil, nil, fmt.Errorf("config: payment %q: %w", name, err)
		}
	}
	for name, p := range cfg.Purchases {
		day, err := model.ParseDate(p.Date)
		if err != nil {
			return nil, nil, fmt.Errorf("config: purchase %q: %w", name, err)
		}
		engine.ScheduleExpense(decimal.NewFromFloat(p.Amount), day)
	}

	return engine, registry, nil
}

func saveOutputs(results *sim.Results, registry *chart.Registry, cfg *config.Config, outputDir string, log *logging.Logger) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	csvPath := filepath.Join(outputDir, "results.csv")
	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("creating results file: %w", err)
	}
	defer f.Close()
	if err := report.WriteResults(f, results); err != nil {
		return fmt.Errorf("writing results: %w", err)
	}
	log.Info().Str("path", csvPath).Msg("results written")

	bufferPNG, err := report.RenderBufferChart(results, cfg.BufferAccount)
	if err != nil {
		return fmt.Errorf("rendering buffer chart: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "buffer_v_time.png"), bufferPNG, 0o644); err != nil {
		return fmt.Errorf("writing buffer chart: %w", err)
	}

	loans := registry.Loans()
	if len(loans) == 0 {
		return nil
	}
	loanColumns := make([]string, len(loans))
	for i, l := range loans {
		loanColumns[i] = l.Name()
	}
	loanPNG, err := report.RenderLoanChart(results, loanColumns, cfg.ReserveAccount)
	if err != nil {
		return fmt.Errorf("rendering loan chart: %w", err)
	}
	if err := os.WriteFile(filepath.Join(outputDir, "loans_and_reserve_v_time.png"), loanPNG, 0o644); err != nil {
		return fmt.Errorf("writing loan chart: %w", err)
	}
	return nil
}
