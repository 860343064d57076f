package server

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/cleared-dev/pnl/internal/session"
)

const shutdownTimeout = 5 * time.Second

// Server exposes sessions over HTTP. Each session owns its own ledger.
type Server struct {
	store     *session.Store
	router    chi.Router
	addr      string
	sheetName string
}

// Option configures a Server.
type Option func(*Server)

// WithSheetName sets the worksheet name used by the XLSX export.
func WithSheetName(name string) Option {
	return func(s *Server) { s.sheetName = name }
}

// New builds the router over st.
func New(st *session.Store, addr string, opts ...Option) *Server {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	s := &Server{store: st, router: r, addr: addr}
	for _, opt := range opts {
		opt(s)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/sessions", s.createSession)

		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", s.getLedger)
			r.Delete("/", s.deleteSession)

			// Queries
			r.Get("/metrics", s.getMetrics)
			r.Get("/sections/{section}/totals", s.getSectionTotals)
			r.Get("/rows/{row}/total", s.getRowTotal)
			r.Get("/history", s.getHistory)
			r.Get("/history.csv", s.getHistoryCSV)

			// Edits
			r.Put("/cells/{section}/{row}/{month}", s.updateCellValue)
			r.Put("/cells/{section}/{row}/{month}/vat", s.updateCellVAT)
			r.Post("/sections/{section}/rows", s.addRow)
			r.Patch("/sections/{section}/rows/{row}", s.renameRow)
			r.Delete("/sections/{section}/rows/{row}", s.removeRow)
			r.Post("/sections/{section}/rows/{row}/move", s.reorderRow)

			// Export
			r.Get("/export", s.exportJSON)
			r.Get("/export.csv", s.exportCSV)
			r.Get("/export.xlsx", s.exportXLSX)
		})
	})

	return s
}

// Run serves on the configured address until ctx is done, then shuts down,
// letting in-flight requests finish.
func (s *Server) Run(ctx context.Context) error {
	hs := &http.Server{Addr: s.addr, Handler: s.router}

	errc := make(chan error, 1)
	go func() {
		log.Printf("pnl server listening on %s", s.addr)
		errc <- hs.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	log.Printf("pnl server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down: %w", err)
	}
	return nil
}

// Handler returns the router.
func (s *Server) Handler() http.Handler {
	return s.router
}
