package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func createFormatCmd(a *app) *cobra.Command {
	var ordinal, direction, streetType, allTokens bool

	cmd := &cobra.Command{
		Use:   "format [address...]",
		Short: "Normalize address text",
		Long: `Apply the selected transforms in order: ordinal suffix on a trailing numbered
street, direction abbreviation, street type abbreviation. With no transform
selected all three run, abbreviating only the last token.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			all := boolSetting(cmd, "all-tokens", allTokens, a.settings.Format.AllTokens)
			out := cmd.OutOrStdout()

			for _, address := range args {
				if !ordinal && !direction && !streetType {
					fmt.Fprintln(out, a.formatter.Normalize(address))
					continue
				}

				s := address
				if ordinal {
					s = a.formatter.AppendOrdinalToStreet(s)
				}
				if direction {
					s = a.formatter.AbbreviateDirection(s)
				}
				if streetType {
					s = a.formatter.AbbreviateStreetType(s, !all)
				}
				fmt.Fprintln(out, s)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&ordinal, "ordinal", false, "Add an ordinal suffix to a trailing numbered street")
	cmd.Flags().BoolVar(&direction, "direction", false, "Abbreviate directions followed by a number")
	cmd.Flags().BoolVar(&streetType, "street-type", false, "Abbreviate street types")
	cmd.Flags().BoolVar(&allTokens, "all-tokens", false, "Abbreviate street types in every token, not just the last")

	return cmd
}

func createOrdinalCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "ordinal [number...]",
		Short: "Print the ordinal form of numbers",
		Args:  cobra.MinimumNArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			for _, n := range args {
				fmt.Fprintln(cmd.OutOrStdout(), a.formatter.OrdinalSuffix(n))
			}
		},
	}
}
