package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/qbtypes/internal/capability"
)

type kindRow struct {
	Kind       string   `json:"kind"`
	APIID      string   `json:"api_id"`
	NameField  string   `json:"name_field,omitempty"`
	Operations []string `json:"operations"`
}

func newKindsCommand(g *globals) *cobra.Command {
	return &cobra.Command{
		Use:   "kinds",
		Short: "List record kinds and the operations each supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var rows []kindRow
			for _, d := range capability.Default().Descriptors() {
				row := kindRow{
					Kind:      d.Kind.Name(),
					APIID:     d.Kind.APIID(),
					NameField: d.NameField,
				}
				for _, op := range d.Operations() {
					row.Operations = append(row.Operations, string(op))
				}
				rows = append(rows, row)
			}

			out := cmd.OutOrStdout()
			if g.cfg.Output.Format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "KIND\tAPI ID\tNAME FIELD\tOPERATIONS")
			for _, r := range rows {
				name := r.NameField
				if name == "" {
					name = "-"
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", r.Kind, r.APIID, name, strings.Join(r.Operations, ","))
			}
			return w.Flush()
		},
	}
}
