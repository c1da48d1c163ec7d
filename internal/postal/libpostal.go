//go:build libpostal

package postal

import (
	postal "github.com/openvenues/gopostal/parser"
)

// Available reports whether libpostal parsing is compiled in.
func Available() bool {
	return true
}

// Parse labels the components of address with libpostal.
func Parse(address string) ([]Component, error) {
	parsed := postal.ParseAddress(address)

	components := make([]Component, 0, len(parsed))
	for _, c := range parsed {
		components = append(components, Component{Label: c.Label, Value: c.Value})
	}
	return components, nil
}
