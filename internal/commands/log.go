package commands

import (
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/pnl/internal/editlog"
)

func newLogCommand() *cobra.Command {
	var repoDir string
	var f editlog.Filter
	var since string
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show the edit log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(repoDir)
			if err != nil {
				return err
			}
			if since != "" {
				t, err := time.Parse(time.DateOnly, since)
				if err != nil {
					return fmt.Errorf("invalid --since %q: want YYYY-MM-DD", since)
				}
				f.Since = t
			}
			return runLog(p, f, asCSV)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().StringVar(&f.Action, "action", "", "only this action, e.g. update_cell_value")
	cmd.Flags().StringVar(&f.Section, "section", "", "only edits in this section")
	cmd.Flags().StringVar(&f.RowID, "row", "", "only edits to this row")
	cmd.Flags().StringVar(&f.Month, "month", "", "only edits in this month")
	cmd.Flags().StringVar(&f.Session, "session", "", "only edits from this session")
	cmd.Flags().StringVar(&since, "since", "", "only edits on or after this date (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&asCSV, "csv", false, "print as CSV")

	return cmd
}

func runLog(p *project, f editlog.Filter, asCSV bool) error {
	entries, err := editlog.Read(p.dir)
	if err != nil {
		return err
	}
	entries = editlog.Select(entries, f)

	if asCSV {
		return editlog.WriteEntries(os.Stdout, entries)
	}

	if len(entries) == 0 {
		fmt.Println("No edits recorded.")
		return nil
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TIME\tACTION\tSECTION\tROW\tMONTH\tDETAILS")
	for _, e := range entries {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			e.Timestamp.Local().Format(time.DateTime), e.Action, e.Section, e.RowID, e.Month, e.Details)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Printf("\n%d edit(s) from %d session(s)\n", len(entries), len(editlog.Sessions(entries)))
	return nil
}
