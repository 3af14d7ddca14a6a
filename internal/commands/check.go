package commands

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/qbtypes/internal/capability"
)

type decisionRow struct {
	Operation string `json:"operation"`
	Supported bool   `json:"supported"`
	Allowed   bool   `json:"allowed"`
}

func newCheckCommand(g *globals) *cobra.Command {
	var only string

	cmd := &cobra.Command{
		Use:   "check <kind> <file|->",
		Short: "Decode a record and report which operations it is ready for",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.loadRecord(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			if only != "" {
				op, err := capability.ParseOperation(only)
				if err != nil {
					return err
				}
				if err := capability.Guard(e, op); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s allowed\n", e.Kind(), op)
				return nil
			}

			var rows []decisionRow
			for _, d := range capability.Evaluate(e) {
				g.log.WithFields(logrus.Fields{
					"kind":      e.Kind(),
					"operation": d.Operation,
					"supported": d.Supported,
					"allowed":   d.Allowed,
				}).Debug("evaluated")
				rows = append(rows, decisionRow{
					Operation: string(d.Operation),
					Supported: d.Supported,
					Allowed:   d.Allowed,
				})
			}

			out := cmd.OutOrStdout()
			if g.cfg.Output.Format == "json" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(rows)
			}

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "OPERATION\tDECISION")
			for _, r := range rows {
				fmt.Fprintf(w, "%s\t%s\n", r.Operation, decisionLabel(r))
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&only, "op", "", "check a single operation and fail unless it is allowed")

	return cmd
}

func decisionLabel(r decisionRow) string {
	switch {
	case !r.Supported:
		return "unsupported"
	case r.Allowed:
		return "yes"
	default:
		return "no"
	}
}
