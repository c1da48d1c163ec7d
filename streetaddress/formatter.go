package streetaddress

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Formatter applies independent normalizing transforms to address strings.
// A Formatter is safe for concurrent use.
type Formatter struct {
	tables *Tables

	// trailing "<digits> <street type>" at the end of the string
	ordinalStreetPattern *regexp.Regexp
}

// NewFormatter creates a formatter backed by the process-wide tables.
func NewFormatter() *Formatter {
	return NewFormatterWithTables(DefaultTables())
}

// NewFormatterWithTables creates a formatter backed by the given tables.
func NewFormatterWithTables(tables *Tables) *Formatter {
	types := tables.StreetTypes()
	for i, t := range types {
		types[i] = regexp.QuoteMeta(t)
	}

	return &Formatter{
		tables:               tables,
		ordinalStreetPattern: regexp.MustCompile(`(?i)\b(\d+)\s+(` + strings.Join(types, "|") + `)\.?$`),
	}
}

// OrdinalSuffix appends "st", "nd", "rd" or "th" to a numeric string based only
// on its trailing characters.
func (f *Formatter) OrdinalSuffix(number string) string {
	if number == "" {
		return number
	}
	if strings.HasSuffix(number, "11") || strings.HasSuffix(number, "12") {
		return number + "th"
	}

	switch number[len(number)-1] {
	case '1':
		return number + "st"
	case '2':
		return number + "nd"
	case '3':
		return number + "rd"
	}
	return number + "th"
}

// AppendOrdinalToStreet turns a trailing "<digits> <street type>" into its
// ordinal form, e.g. "West 23 Street" becomes "West 23rd Street".
func (f *Formatter) AppendOrdinalToStreet(address string) string {
	address = strings.TrimSpace(address)

	loc := f.ordinalStreetPattern.FindStringSubmatchIndex(address)
	if loc == nil {
		return address
	}

	number := address[loc[2]:loc[3]]
	streetType := address[loc[4]:loc[5]]
	return address[:loc[0]] + f.OrdinalSuffix(number) + " " + streetType + address[loc[1]:]
}

// AbbreviateDirection shortens a direction word that is directly followed by a
// number, so "West 23rd Street" becomes "W 23rd Street" but "Western Street" is untouched.
func (f *Formatter) AbbreviateDirection(address string) string {
	words := strings.Fields(address)
	if len(words) == 0 {
		return address
	}

	for i := 0; i < len(words)-1; i++ {
		abbr, ok := f.tables.Direction(words[i])
		if !ok {
			continue
		}
		if r, _ := utf8.DecodeRuneInString(words[i+1]); unicode.IsDigit(r) {
			words[i] = abbr
		}
	}
	return strings.Join(words, " ")
}

// AbbreviateStreetType replaces street type words with their title-cased
// abbreviation. Only the last token is considered unless onlyLastToken is false.
func (f *Formatter) AbbreviateStreetType(address string, onlyLastToken bool) string {
	words := strings.Fields(address)
	if len(words) == 0 {
		return address
	}

	first := 0
	if onlyLastToken {
		first = len(words) - 1
	}

	for i := first; i < len(words); i++ {
		word := strings.TrimSuffix(words[i], ".")
		if abbr, ok := f.tables.TitledAbbreviation(word); ok {
			words[i] = abbr
		}
	}
	return strings.Join(words, " ")
}

// Normalize runs AppendOrdinalToStreet, AbbreviateDirection and
// AbbreviateStreetType on the last token, in that order.
func (f *Formatter) Normalize(address string) string {
	address = f.AppendOrdinalToStreet(address)
	address = f.AbbreviateDirection(address)
	return f.AbbreviateStreetType(address, true)
}
