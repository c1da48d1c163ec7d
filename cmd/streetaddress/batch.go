package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/streetaddress/internal/batch"
)

func createBatchCmd(a *app) *cobra.Command {
	var column, workers int
	var format, output string
	var skipHouse, normalize bool

	cmd := &cobra.Command{
		Use:   "batch [filename]",
		Short: "Parse a file of addresses",
		Long:  `Parse one address per line, or one CSV column, from a file or "-" for stdin`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workers") {
				workers = a.settings.Batch.Workers
			}
			if !cmd.Flags().Changed("format") {
				format = a.settings.Batch.Output
			}

			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("failed to open file %s: %w", args[0], err)
				}
				defer f.Close()
				in = f
			}

			addresses, err := batch.ReadAddresses(in, column)
			if err != nil {
				return err
			}

			processor := &batch.Processor{
				Parser:    a.parser,
				Formatter: a.formatter,
				Workers:   workers,
				SkipHouse: boolSetting(cmd, "skip-house", skipHouse, a.settings.Parse.SkipHouse),
				Normalize: normalize,
			}
			results, stats := processor.Run(a.settings.Debug, addresses)

			var out io.Writer = cmd.OutOrStdout()
			if output != "" {
				f, err := os.Create(output)
				if err != nil {
					return fmt.Errorf("failed to create %s: %w", output, err)
				}
				defer f.Close()
				out = f
			}

			if err := batch.Write(out, format, results); err != nil {
				return err
			}

			fmt.Fprintf(cmd.ErrOrStderr(), "Parsed %d addresses (%d with house, %d with street type, %d with suite) in %v\n",
				stats.Total, stats.WithHouse, stats.WithStreetType, stats.WithSuite, stats.ProcessingTime)
			return nil
		},
	}

	cmd.Flags().IntVar(&column, "column", -1, "Zero-based CSV column holding the address (-1 reads plain lines)")
	cmd.Flags().IntVar(&workers, "workers", 4, "Number of parallel workers")
	cmd.Flags().StringVar(&format, "format", batch.FormatJSON, "Output format: json or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write results to a file instead of stdout")
	cmd.Flags().BoolVar(&skipHouse, "skip-house", false, "Do not look for a house number")
	cmd.Flags().BoolVar(&normalize, "normalize", false, "Also output the normalized address text")

	return cmd
}
