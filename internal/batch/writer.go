package batch

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/streetaddress/streetaddress"
)

// ErrUnknownFormat is returned by Write for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown output format")

// Output formats accepted by Write.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
)

// Write encodes results as JSON lines or CSV.
func Write(w io.Writer, format string, results []Result) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, results)
	case FormatCSV:
		return writeCSV(w, results)
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
}

func writeJSON(w io.Writer, results []Result) error {
	enc := json.NewEncoder(w)
	for i, res := range results {
		if err := enc.Encode(res); err != nil {
			return fmt.Errorf("failed to encode result %d: %w", i, err)
		}
	}
	return nil
}

// CSVHeader is the header row written by the csv format.
func CSVHeader() []string {
	header := []string{"input"}
	for _, f := range streetaddress.Fields() {
		header = append(header, string(f))
	}
	return append(header, "normalized")
}

func writeCSV(w io.Writer, results []Result) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(CSVHeader()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, res := range results {
		row := []string{res.Input}
		for _, f := range streetaddress.Fields() {
			row = append(row, res.Record.Value(f))
		}
		row = append(row, res.Normalized)

		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
