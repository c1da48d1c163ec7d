package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createTablesCmd(a *app) *cobra.Command {
	var list bool

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Show lookup table sizes",
		Run: func(cmd *cobra.Command, args []string) {
			tables := a.parser.Tables()
			types := tables.StreetTypes()
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Street type abbreviations: %d\n", tables.AbbreviationCount())
			fmt.Fprintf(out, "Street type tokens: %d\n", len(types))

			if list {
				for _, t := range types {
					abbr, _ := tables.Abbreviation(t)
					fmt.Fprintf(out, "%q\t%q\n", t, abbr)
				}
			}
		},
	}

	cmd.Flags().BoolVar(&list, "list", false, "List every street type token and its abbreviation")

	return cmd
}
