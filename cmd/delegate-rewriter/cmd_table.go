package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"delegate-rewriter/internal/mapping"
)

var tableDebug bool

var tableCmd = &cobra.Command{
	Use:   "table",
	Short: "Print the effective conversion table",
	Args:  cobra.NoArgs,
	RunE:  runTable,
}

func init() {
	tableCmd.Flags().BoolVar(&tableDebug, "debug", false,
		"dump the raw table structures instead of the summary")
}

func runTable(cmd *cobra.Command, args []string) error {
	rw, err := buildRewriter()
	if err != nil {
		return err
	}

	table := rw.Table()

	if tableDebug {
		spew.Fdump(os.Stdout, table.All())
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "LEGACY\tKIND\tEMITS\tPARAMS")

	for _, m := range table.All() {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
			m.Legacy, m.Kind.Name(), emits(m), strings.Join(m.Params, ", "))
	}

	return w.Flush()
}

// emits summarizes the discriminator attribute a mapping produces.
func emits(m mapping.ActionMapping) string {
	switch m.Kind {
	case mapping.KindPagination:
		return "data-pagination data-section=" + m.Section
	case mapping.KindTab:
		return "data-" + m.Params.First()
	case mapping.KindModalClose:
		return "data-action=" + m.Action + " | data-modal-close"
	default:
		return "data-action=" + m.Action
	}
}
