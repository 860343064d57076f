package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/pnl/internal/server"
	"github.com/cleared-dev/pnl/internal/session"
)

func newServeCommand() *cobra.Command {
	var repoDir string
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the ledger over HTTP, saving the project session on shutdown",
		Long: "Serve the ledger over HTTP. The project ledger is loaded as one session; its edits are\n" +
			"written back to the snapshot and edit log when the server stops. Other sessions created\n" +
			"over the API are in-memory only.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(repoDir)
			if err != nil {
				return err
			}
			if addr == "" {
				addr = p.cfg.Server.Addr
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runServe(ctx, p, addr)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from pnl.yaml)")

	return cmd
}

func runServe(ctx context.Context, p *project, addr string) error {
	st := session.NewStore()
	id := st.Create(p.ledger)
	fmt.Printf("Session %s loaded from %s\n", id, p.cfg.Ledger.Path)

	srv := server.New(st, addr, server.WithSheetName(p.cfg.Export.SheetName))
	serveErr := srv.Run(ctx)

	err := st.With(id, func(s *session.Session) error {
		n := len(s.History())
		if n == 0 {
			return nil
		}
		if _, err := p.persist(s); err != nil {
			return err
		}
		fmt.Printf("Saved %d edit(s) to %s\n", n, p.cfg.Ledger.Path)
		return nil
	})
	// The API may have deleted the project session.
	if err != nil && !errors.Is(err, session.ErrNotFound) && serveErr == nil {
		return err
	}
	return serveErr
}
