package commands

import (
	"fmt"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/pnl/internal/editlog"
	"github.com/cleared-dev/pnl/internal/grid"
	"github.com/cleared-dev/pnl/internal/model"
	"github.com/cleared-dev/pnl/internal/session"
)

func newEditCommand() *cobra.Command {
	var repoDir string

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit the ledger",
	}
	editCmd.PersistentFlags().StringVar(&repoDir, "repo", ".", "project directory")

	editCmd.AddCommand(
		newEditSetCommand(&repoDir),
		newEditVATCommand(&repoDir),
		newEditRenameCommand(&repoDir),
		newEditAddCommand(&repoDir),
		newEditRemoveCommand(&repoDir),
		newEditMoveCommand(&repoDir),
	)
	return editCmd
}

func newEditSetCommand(repoDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "set <section> <row> <month> <value>",
		Short: "Set a cell value",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.ParseMonth(args[2])
			if err != nil {
				return err
			}
			return runEdit(*repoDir, func(s *session.Session) error {
				return s.SetCellText(model.SectionID(args[0]), args[1], m, args[3])
			})
		},
	}
}

func newEditVATCommand(repoDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "vat <section> <row> <month> <included|excluded>",
		Short: "Set whether a cost cell includes VAT",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.ParseMonth(args[2])
			if err != nil {
				return err
			}
			included, err := parseVATFlag(args[3])
			if err != nil {
				return err
			}
			return runEdit(*repoDir, func(s *session.Session) error {
				return s.UpdateCellVATFlag(model.SectionID(args[0]), args[1], m, included)
			})
		},
	}
}

func parseVATFlag(s string) (bool, error) {
	switch s {
	case "included", "incl":
		return true, nil
	case "excluded", "excl":
		return false, nil
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return false, fmt.Errorf("invalid VAT flag %q: want included or excluded", s)
	}
	return b, nil
}

func newEditRenameCommand(repoDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <section> <row> <name>",
		Short: "Rename a row",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(*repoDir, func(s *session.Session) error {
				return s.RenameRow(model.SectionID(args[0]), args[1], args[2])
			})
		},
	}
}

func newEditAddCommand(repoDir *string) *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "add <section>",
		Short: "Append a row to a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sid := model.SectionID(args[0])
			return runEdit(*repoDir, func(s *session.Session) error {
				rowID, err := s.AddRow(sid)
				if err != nil {
					return err
				}
				if name != "" {
					if err := s.RenameRow(sid, rowID, name); err != nil {
						return err
					}
				}
				fmt.Printf("Added %s\n", rowID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "row name (default \""+grid.DefaultRowName+"\")")
	return cmd
}

func newEditRemoveCommand(repoDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <section> <row>",
		Short: "Remove a row",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(*repoDir, func(s *session.Session) error {
				return s.RemoveRow(model.SectionID(args[0]), args[1])
			})
		},
	}
}

func newEditMoveCommand(repoDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "move <section> <row> [before]",
		Short: "Move a row before another row, or to the end",
		Args:  cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			before := ""
			if len(args) == 3 {
				before = args[2]
			}
			return runEdit(*repoDir, func(s *session.Session) error {
				return s.ReorderRow(model.SectionID(args[0]), args[1], before)
			})
		},
	}
}

// runEdit applies fn to the project ledger and persists the result. A
// rejected edit leaves the snapshot untouched.
func runEdit(repoDir string, fn func(s *session.Session) error) error {
	p, err := openProject(repoDir)
	if err != nil {
		return err
	}

	s := session.New(uuid.NewString(), p.ledger)
	if err := fn(s); err != nil {
		if grid.IsNoOp(err) {
			return fmt.Errorf("edit rejected: %w", err)
		}
		return err
	}

	hash, err := p.persist(s)
	if err != nil {
		return err
	}
	n := len(s.History())
	if hash != "" {
		fmt.Printf("Applied %d edit(s) to %s (%s)\n", n, p.cfg.Ledger.Path, hash)
		return nil
	}
	fmt.Printf("Applied %d edit(s) to %s\n", n, p.cfg.Ledger.Path)
	return nil
}

// commitMessage describes the first edit, e.g. "edit: update_cell_value cogs/cogs-1 jan".
func commitMessage(entries []editlog.Entry) string {
	if len(entries) == 0 {
		return "edit: no changes"
	}
	e := entries[0]
	msg := "edit: " + e.Action + " " + e.Section
	if e.RowID != "" {
		msg += "/" + e.RowID
	}
	if e.Month != "" {
		msg += " " + e.Month
	}
	if n := len(entries) - 1; n > 0 {
		msg += fmt.Sprintf(" (+%d)", n)
	}
	return msg
}
