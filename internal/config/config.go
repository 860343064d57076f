package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the conventional name of the project configuration file.
const FileName = "pnl.yaml"

// Config represents the top-level pnl.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Fiscal   FiscalConfig   `yaml:"fiscal"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Export   ExportConfig   `yaml:"export"`
	Server   ServerConfig   `yaml:"server"`
	Logging  LoggingConfig  `yaml:"logging"`
	Git      GitConfig      `yaml:"git"`
}

// BusinessConfig identifies the business the P&L belongs to.
type BusinessConfig struct {
	Name           string `yaml:"name"`
	CurrencySymbol string `yaml:"currency_symbol"`
}

// FiscalConfig names the year the twelve months belong to.
type FiscalConfig struct {
	Year int `yaml:"year"`
}

// LedgerConfig locates the ledger snapshot.
type LedgerConfig struct {
	Path string `yaml:"path"` // relative to the project directory
}

// ExportConfig controls the export command.
type ExportConfig struct {
	Format    string `yaml:"format"` // "csv" or "xlsx"
	SheetName string `yaml:"sheet_name"`
	Dir       string `yaml:"dir"`
	Raw       bool   `yaml:"raw"` // full-precision values instead of display format
}

// ServerConfig controls the HTTP wrapper.
type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// LoggingConfig controls the edit log.
type LoggingConfig struct {
	EditLog bool `yaml:"edit_log"`
}

// GitConfig controls committing the ledger after each edit.
type GitConfig struct {
	Enabled     bool   `yaml:"enabled"`
	AuthorName  string `yaml:"author_name"`
	AuthorEmail string `yaml:"author_email"`
}

// Load reads a pnl.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
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

// Validate checks values that have a fixed set of choices.
func (c *Config) Validate() error {
	switch c.Export.Format {
	case "", "csv", "xlsx":
	default:
		return fmt.Errorf("invalid export format %q: want csv or xlsx", c.Export.Format)
	}
	if c.Fiscal.Year < 0 {
		return fmt.Errorf("invalid fiscal year %d", c.Fiscal.Year)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default(businessName string, year int) *Config {
	return &Config{
		Business: BusinessConfig{
			Name:           businessName,
			CurrencySymbol: "₾",
		},
		Fiscal: FiscalConfig{
			Year: year,
		},
		Ledger: LedgerConfig{
			Path: "ledger.json",
		},
		Export: ExportConfig{
			Format:    "csv",
			SheetName: "P&L",
			Dir:       "exports",
		},
		Server: ServerConfig{
			Addr: ":8899",
		},
		Logging: LoggingConfig{
			EditLog: true,
		},
		Git: GitConfig{
			AuthorName:  "pnl",
			AuthorEmail: "pnl@localhost",
		},
	}
}
