// Package postal cross-checks parser output against libpostal.
//
// libpostal is a C library; the binding is only compiled with the libpostal
// build tag. Without it Parse returns ErrUnavailable.
package postal

import (
	"errors"
	"strings"

	"github.com/streetaddress/streetaddress"
)

// ErrUnavailable is returned when the binary was built without libpostal.
var ErrUnavailable = errors.New("libpostal support not compiled in (build with -tags libpostal)")

// Component is one labelled span returned by libpostal.
type Component struct {
	Label string
	Value string
}

// Difference records a field where the parser and libpostal disagree.
type Difference struct {
	Field     streetaddress.Field
	Parser    string
	Libpostal string
}

// labelFields maps libpostal labels onto record fields.
var labelFields = map[string]streetaddress.Field{
	"house_number": streetaddress.FieldHouse,
	"road":         streetaddress.FieldStreetFull,
	"unit":         streetaddress.FieldSuiteNum,
}

// Compare lines up the house, street and unit found by both parsers.
// libpostal lower-cases its output, so values are compared case-insensitively.
func Compare(rec streetaddress.AddressRecord, components []Component) []Difference {
	found := make(map[streetaddress.Field]string, len(labelFields))
	for _, c := range components {
		if f, ok := labelFields[c.Label]; ok {
			found[f] = c.Value
		}
	}

	var diffs []Difference
	for _, f := range []streetaddress.Field{streetaddress.FieldHouse, streetaddress.FieldStreetFull, streetaddress.FieldSuiteNum} {
		ours := rec.Value(f)
		theirs := found[f]
		if normalizeValue(f, ours) != normalizeValue(f, theirs) {
			diffs = append(diffs, Difference{Field: f, Parser: ours, Libpostal: theirs})
		}
	}
	return diffs
}

func normalizeValue(f streetaddress.Field, s string) string {
	s = strings.ToLower(strings.Join(strings.Fields(s), " "))
	if f == streetaddress.FieldSuiteNum {
		// libpostal keeps the designator ("apt 4b"); the parser splits it off.
		fields := strings.Fields(s)
		if len(fields) > 1 {
			s = fields[len(fields)-1]
		}
		s = strings.TrimPrefix(s, "#")
	}
	return s
}
