package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streetaddress/internal/postal"
)

func createCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare [address]",
		Short: "Compare parser output with libpostal",
		Long:  `Parse an address with both parsers and list the fields they disagree on (requires a libpostal build)`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address := args[0]

			components, err := postal.Parse(address)
			if err != nil {
				return err
			}
			rec := a.parser.ParseDebug(a.settings.Debug, address, a.settings.Parse.SkipHouse)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "libpostal components:")
			for _, c := range components {
				fmt.Fprintf(out, "  %s: %s\n", c.Label, c.Value)
			}

			diffs := postal.Compare(rec, components)
			if len(diffs) == 0 {
				fmt.Fprintln(out, "no differences")
				return nil
			}
			fmt.Fprintln(out, "differences:")
			for _, d := range diffs {
				fmt.Fprintf(out, "  %s: parser=%q libpostal=%q\n", d.Field, d.Parser, d.Libpostal)
			}
			return nil
		},
	}
}
