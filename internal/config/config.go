package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config represents the top-level flowcast.yaml configuration. Dates are
// calendar dates in "2006-01-02" form; parsing happens in the command layer.
type Config struct {
	Accounts           string              `yaml:"accounts"`
	StartDate          string              `yaml:"start_date"`
	EndDate            string              `yaml:"end_date"`
	FastPayoffEnabled  bool                `yaml:"fast_payoff_enabled"`
	MaxCheckingBalance float64             `yaml:"max_checking_balance"`
	BufferAccount      string              `yaml:"buffer_account"`
	ReserveAccount     string              `yaml:"reserve_account"`
	EmployerAccount    string              `yaml:"employer_account,omitempty"`
	LogLevel           string              `yaml:"log_level,omitempty"`
	Payments           map[string]Payment  `yaml:"payments,omitempty"`
	Purchases          map[string]Purchase `yaml:"purchases,omitempty"`
}

// Payment is a named one-off transfer between two accounts.
type Payment struct {
	From   string  `yaml:"from"`
	To     string  `yaml:"to"`
	Amount float64 `yaml:"amount"`
	Date   string  `yaml:"date"`
}

// Purchase is a named one-off expense charged against the buffer account.
type Purchase struct {
	Amount float64 `yaml:"amount"`
	Date   string  `yaml:"date"`
}

// Load reads a flowcast.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Accounts:           "accounts.csv",
		StartDate:          "2026-01-01",
		EndDate:            "2027-01-01",
		FastPayoffEnabled:  false,
		MaxCheckingBalance: 7500,
		BufferAccount:      "CHGF",
		ReserveAccount:     "FGIF",
		EmployerAccount:    "CA_EMPLOYER",
		LogLevel:           "info",
	}
}
