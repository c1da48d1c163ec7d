package streetaddress

import (
	"testing"
)

func TestOrdinalSuffix(t *testing.T) {
	formatter := NewFormatter()

	tests := []struct {
		input string
		want  string
	}{
		{"1", "1st"},
		{"2", "2nd"},
		{"3", "3rd"},
		{"4", "4th"},
		{"0", "0th"},
		{"11", "11th"},
		{"12", "12th"},
		{"13", "13rd"}, // only 11 and 12 are special-cased
		{"21", "21st"},
		{"22", "22nd"},
		{"23", "23rd"},
		{"24", "24th"},
		{"101", "101st"},
		{"111", "111th"},
		{"112", "112th"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := formatter.OrdinalSuffix(tt.input); got != tt.want {
				t.Errorf("OrdinalSuffix(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAppendOrdinalToStreet(t *testing.T) {
	formatter := NewFormatter()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"existing ordinal untouched", "1500 E. 2nd Street", "1500 E. 2nd Street"},
		{"bare number before street", "1500 E 2 Street", "1500 E 2nd Street"},
		{"direction and number", "West 23 Street", "West 23rd Street"},
		{"trailing period dropped", "West 23 St.", "West 23rd St"},
		{"eleven", "11 Ave", "11th Ave"},
		{"hundred twelve", "112 Blvd", "112th Blvd"},
		{"case preserved", "5 AVENUE", "5th AVENUE"},
		{"surrounding space trimmed", "  101 avenue  ", "101st avenue"},
		{"only the end is rewritten", "1 St 1 St", "1 St 1st St"},
		{"no number", "Main Street", "Main Street"},
		{"street type not last", "23 Street North", "23 Street North"},
		{"not a street type", "23 Oak", "23 Oak"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatter.AppendOrdinalToStreet(tt.input); got != tt.want {
				t.Errorf("AppendOrdinalToStreet(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAbbreviateDirection(t *testing.T) {
	formatter := NewFormatter()

	tests := []struct {
		input string
		want  string
	}{
		{"West 23rd Street", "W 23rd Street"},
		{"Western Street", "Western Street"},
		{"north 5th ave", "N 5th ave"},
		{"East", "East"},
		{"east west 3", "east W 3"},
		{"South  9 Main", "S 9 Main"},
		{"123 South Main", "123 South Main"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := formatter.AbbreviateDirection(tt.input); got != tt.want {
				t.Errorf("AbbreviateDirection(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestAbbreviateStreetType(t *testing.T) {
	formatter := NewFormatter()

	tests := []struct {
		input    string
		onlyLast bool
		want     string
	}{
		{"W 23rd Street", true, "W 23rd St"},
		{"123 Main Street.", true, "123 Main St"},
		{"Main Street Avenue", true, "Main Street Ave"},
		{"Main Street Avenue", false, "Main St Ave"},
		{"123 Boulevard Plaza", true, "123 Boulevard Plz"},
		{"123 Boulevard Plaza", false, "123 Blvd Plz"},
		{"1 Crossing", true, "1 Xing"},
		{"Hills", true, "Hls"},
		{"Meadow", true, "Mdw"},
		{"5 Main Unknown", true, "5 Main Unknown"},
		{"", true, ""},
		{"   ", false, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := formatter.AbbreviateStreetType(tt.input, tt.onlyLast); got != tt.want {
				t.Errorf("AbbreviateStreetType(%q, %v) = %q, want %q", tt.input, tt.onlyLast, got, tt.want)
			}
		})
	}
}

func TestAbbreviateStreetTypeIdempotent(t *testing.T) {
	formatter := NewFormatter()
	tables := formatter.tables

	// "hills" -> "hls" -> "" and "meadow" -> "mdw" -> "mdws" chain through a second lookup.
	chained := map[string]bool{"hills": true, "hls": true, "meadow": true, "mdw": true}

	for full := range tables.abbrevSuffix {
		if full == "" || chained[full] {
			continue
		}
		input := "100 Main " + full
		once := formatter.AbbreviateStreetType(input, true)
		twice := formatter.AbbreviateStreetType(once, true)
		if once != twice {
			t.Errorf("AbbreviateStreetType not idempotent for %q: %q then %q", full, once, twice)
		}
	}

	if got := formatter.AbbreviateStreetType(formatter.AbbreviateStreetType("9 Meadow", true), true); got != "9 Mdws" {
		t.Errorf("meadow chain = %q, want %q", got, "9 Mdws")
	}
	if got := formatter.AbbreviateStreetType("9 Hls", true); got != "9 " {
		t.Errorf("hls abbreviation = %q, want %q", got, "9 ")
	}
}

func TestNormalize(t *testing.T) {
	formatter := NewFormatter()

	tests := []struct {
		input string
		want  string
	}{
		{"1500 E. 2nd Street", "1500 E. 2nd St"},
		{"West 23 Street", "W 23rd St"},
		{"north 5 avenue", "N 5th Ave"},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := formatter.Normalize(tt.input); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}
