package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/streetaddress/streetaddress"
)

func createParseCmd(a *app) *cobra.Command {
	var skipHouse bool
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "parse [address...]",
		Short: "Parse addresses into components",
		Long:  `Split each address into house number, street name and type, suite and leftover text`,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			skip := boolSetting(cmd, "skip-house", skipHouse, a.settings.Parse.SkipHouse)
			out := cmd.OutOrStdout()

			for i, address := range args {
				rec := a.parser.ParseDebug(a.settings.Debug, address, skip)

				if asJSON {
					data, err := json.Marshal(rec)
					if err != nil {
						return fmt.Errorf("failed to encode %q: %w", address, err)
					}
					fmt.Fprintln(out, string(data))
					continue
				}

				if i > 0 {
					fmt.Fprintln(out)
				}
				printRecord(cmd, address, rec)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&skipHouse, "skip-house", false, "Do not look for a house number")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print one JSON object per address")

	return cmd
}

func printRecord(cmd *cobra.Command, address string, rec streetaddress.AddressRecord) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "address: %s\n", address)
	for _, f := range streetaddress.Fields() {
		if rec.Has(f) {
			fmt.Fprintf(out, "%s: %s\n", f, rec.Value(f))
		} else {
			fmt.Fprintf(out, "%s: -\n", f)
		}
	}
}
