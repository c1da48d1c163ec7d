package batch

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
)

// ReadAddresses reads one address per line when column is negative.
// Otherwise the input is CSV with a header row and the address is taken from
// the zero-based column; short rows yield an empty address.
func ReadAddresses(r io.Reader, column int) ([]string, error) {
	if column < 0 {
		return readLines(r)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	// Skip header
	if _, err := reader.Read(); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var addresses []string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record %d: %w", len(addresses)+1, err)
		}

		if column < len(record) {
			addresses = append(addresses, record[column])
		} else {
			addresses = append(addresses, "")
		}
	}
	return addresses, nil
}

func readLines(r io.Reader) ([]string, error) {
	var addresses []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		addresses = append(addresses, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read addresses: %w", err)
	}
	return addresses, nil
}
