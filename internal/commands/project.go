package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cleared-dev/pnl/internal/config"
	"github.com/cleared-dev/pnl/internal/editlog"
	"github.com/cleared-dev/pnl/internal/gitops"
	"github.com/cleared-dev/pnl/internal/model"
	"github.com/cleared-dev/pnl/internal/session"
)

// project is a directory holding pnl.yaml and its ledger snapshot.
type project struct {
	dir    string
	cfg    *config.Config
	ledger model.Ledger
}

func openProject(repoDir string) (*project, error) {
	dir, err := filepath.Abs(repoDir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(dir, config.FileName))
	if err != nil {
		return nil, err
	}

	l, err := model.LoadFile(filepath.Join(dir, cfg.Ledger.Path))
	if err != nil {
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	return &project{dir: dir, cfg: cfg, ledger: l}, nil
}

func (p *project) ledgerPath() string {
	return filepath.Join(p.dir, p.cfg.Ledger.Path)
}

func (p *project) save(l model.Ledger) error {
	if err := model.SaveFile(p.ledgerPath(), l); err != nil {
		return fmt.Errorf("saving ledger: %w", err)
	}
	p.ledger = l
	return nil
}

func gitAuthor(cfg *config.Config) gitops.Author {
	return gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
}

// commit records the ledger and edit log in git when enabled.
func (p *project) commit(message string) (string, error) {
	if !p.cfg.Git.Enabled {
		return "", nil
	}
	paths := []string{p.cfg.Ledger.Path}
	if p.cfg.Logging.EditLog {
		paths = append(paths, filepath.Join("logs", "edit-log.csv"))
	}
	return gitops.Commit(p.dir, message, gitAuthor(p.cfg), paths...)
}

// persist saves the session's ledger, appends its history to the edit log
// and commits both when git is enabled. Log and commit failures are warnings.
// Returns the commit hash, if any.
func (p *project) persist(s *session.Session) (string, error) {
	if err := p.save(s.Ledger()); err != nil {
		return "", err
	}

	entries := s.History()
	if p.cfg.Logging.EditLog && len(entries) > 0 {
		if err := editlog.Append(p.dir, entries); err != nil {
			fmt.Fprintf(os.Stderr, "warning: failed to write edit log: %v\n", err)
		}
	}

	hash, err := p.commit(commitMessage(entries))
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to commit ledger: %v\n", err)
	}
	return hash, nil
}
