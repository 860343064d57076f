package commands

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/pnl/internal/export"
	"github.com/cleared-dev/pnl/internal/model"
)

func newShowCommand() *cobra.Command {
	var repoDir string
	var raw bool
	var section string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the P&L grid",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(repoDir)
			if err != nil {
				return err
			}
			return runShow(p, model.SectionID(section), raw)
		},
	}

	cmd.Flags().StringVar(&repoDir, "repo", ".", "project directory")
	cmd.Flags().BoolVar(&raw, "raw", false, "print full-precision values")
	cmd.Flags().StringVar(&section, "section", "", "only print lines of this section")

	return cmd
}

func runShow(p *project, section model.SectionID, raw bool) error {
	if section != "" && p.ledger.SectionIndex(section) < 0 {
		return fmt.Errorf("unknown section %q", section)
	}

	fmt.Printf("%s, fiscal year %d (amounts in %s)\n\n",
		p.cfg.Business.Name, p.cfg.Fiscal.Year, p.cfg.Business.CurrencySymbol)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, strings.Join(export.Header(), "\t")+"\t")
	for _, ln := range export.Serialize(p.ledger) {
		if section != "" && ln.Section != section {
			continue
		}
		fmt.Fprintln(tw, strings.Join(export.MarshalLine(ln, raw), "\t")+"\t")
	}
	return tw.Flush()
}
