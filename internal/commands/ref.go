package commands

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/qbtypes/internal/reference"
)

func newRefCommand(g *globals) *cobra.Command {
	var links bool

	cmd := &cobra.Command{
		Use:   "ref <kind> <file|->",
		Short: "Print the reference other records use to point at a saved record",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := g.loadRecord(cmd, args[0], args[1])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if links {
				for _, edge := range reference.Links(e) {
					fmt.Fprintf(out, "%s -> %s %s\n", edge.Field, edge.Target, edge.Ref)
				}
				return nil
			}

			ref, err := reference.ToReference(e)
			if err != nil {
				return err
			}
			data, err := json.Marshal(ref)
			if err != nil {
				return fmt.Errorf("encoding reference: %w", err)
			}
			fmt.Fprintln(out, string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&links, "links", false, "list the references the record holds instead")

	return cmd
}
