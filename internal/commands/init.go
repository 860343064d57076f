package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/pnl/internal/config"
	"github.com/cleared-dev/pnl/internal/gitops"
	"github.com/cleared-dev/pnl/internal/grid"
	"github.com/cleared-dev/pnl/internal/model"
)

func newInitCommand() *cobra.Command {
	var name string
	var year int
	var git bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new P&L project",
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

			return runInit(absDir, name, year, git)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "business name (required)")
	_ = cmd.MarkFlagRequired("name")
	cmd.Flags().IntVar(&year, "year", time.Now().Year(), "fiscal year")
	cmd.Flags().BoolVar(&git, "git", false, "keep ledger history in git")

	return cmd
}

func runInit(dir, name string, year int, git bool) error {
	cfg := config.Default(name, year)
	cfg.Git.Enabled = git

	for _, d := range []string{cfg.Export.Dir, "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed ledger.
	if err := model.SaveFile(filepath.Join(dir, cfg.Ledger.Path), grid.NewLedger()); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	gitignore := cfg.Export.Dir + "/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if !git {
		fmt.Printf("Initialized P&L project at %s\n", dir)
		return nil
	}

	if !gitops.IsRepo(dir) {
		if err := gitops.Init(dir); err != nil {
			return err
		}
	}
	hash, err := gitops.Commit(dir, "init: Initialize "+name, gitAuthor(cfg),
		config.FileName, cfg.Ledger.Path, ".gitignore")
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Printf("Initialized P&L project at %s (%s)\n", dir, hash)
	return nil
}
