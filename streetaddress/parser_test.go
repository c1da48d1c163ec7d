package streetaddress

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/streetaddress/internal/debug"
)

// checkRecord compares every field of got against want; fields missing from want must be unset.
func checkRecord(t *testing.T, got AddressRecord, want map[Field]string) {
	t.Helper()
	for _, f := range Fields() {
		wantValue, wantSet := want[f]
		if got.Has(f) != wantSet {
			t.Errorf("%s set = %v, want %v (value %q)", f, got.Has(f), wantSet, got.Value(f))
			continue
		}
		if got.Value(f) != wantValue {
			t.Errorf("%s = %q, want %q", f, got.Value(f), wantValue)
		}
	}
}

func TestParse(t *testing.T) {
	parser := NewParser()

	tests := []struct {
		name  string
		input string
		want  map[Field]string
	}{
		{
			name:  "ordinal street with directional",
			input: "1500 E 2nd St",
			want: map[Field]string{
				FieldHouse: "1500", FieldStreetName: "E 2nd", FieldStreetType: "St", FieldStreetFull: "E 2nd St",
			},
		},
		{
			name:  "street with apartment",
			input: "123 Main Street Apt 4B",
			want: map[Field]string{
				FieldHouse: "123", FieldStreetName: "Main", FieldStreetType: "Street", FieldStreetFull: "Main Street",
				FieldSuiteType: "Apt", FieldSuiteNum: "4B",
			},
		},
		{
			name:  "number word house",
			input: "Twelve Oak Lane",
			want: map[Field]string{
				FieldHouse: "12", FieldStreetName: "Oak", FieldStreetType: "Lane", FieldStreetFull: "Oak Lane",
			},
		},
		{
			name:  "trailing punctuation and city",
			input: "1500 E. SECOND ST. #300, RENO, NV, 89502",
			want: map[Field]string{
				FieldHouse: "1500", FieldStreetName: "E SECOND", FieldStreetType: "ST", FieldStreetFull: "E SECOND ST",
				FieldOther: "#300 RENO NV 89502",
			},
		},
		{
			name:  "leading ordinal is street not house",
			input: "23rd Street",
			want: map[Field]string{
				FieldStreetName: "23rd", FieldStreetType: "Street", FieldStreetFull: "23rd Street",
			},
		},
		{
			name:  "half house number",
			input: "12 1/2 Elm St.",
			want: map[Field]string{
				FieldHouse: "12 1/2", FieldStreetName: "Elm", FieldStreetType: "St", FieldStreetFull: "Elm St",
			},
		},
		{
			name:  "alphanumeric house and room",
			input: "12A Baker St Rm 101 Floor 2",
			want: map[Field]string{
				FieldHouse: "12A", FieldStreetName: "Baker", FieldStreetType: "St", FieldStreetFull: "Baker St",
				FieldSuiteType: "Rm", FieldSuiteNum: "101", FieldOther: "Floor 2",
			},
		},
		{
			name:  "suite without house",
			input: "Main St Suite 200 Reno NV",
			want: map[Field]string{
				FieldStreetName: "Main", FieldStreetType: "St", FieldStreetFull: "Main St",
				FieldSuiteType: "Suite", FieldSuiteNum: "200", FieldOther: "Reno NV",
			},
		},
		{
			name:  "hash suite type",
			input: "123 Main St # 5",
			want: map[Field]string{
				FieldHouse: "123", FieldStreetName: "Main", FieldStreetType: "St", FieldStreetFull: "Main St",
				FieldSuiteType: "#", FieldSuiteNum: "5",
			},
		},
		{
			name:  "hash token after existing suite number",
			input: "100 Broadway, Apt. 4, #7",
			want: map[Field]string{
				FieldHouse: "100", FieldStreetName: "Broadway", FieldStreetFull: "Broadway",
				FieldSuiteType: "#", FieldSuiteNum: "7",
			},
		},
		{
			name:  "street type needs a street name first",
			input: "St",
			want: map[Field]string{
				FieldStreetName: "St", FieldStreetFull: "St",
			},
		},
		{
			name:  "repeated street type",
			input: "5 Ave Ave",
			want: map[Field]string{
				FieldHouse: "5", FieldStreetName: "Ave", FieldStreetType: "Ave", FieldStreetFull: "Ave Ave",
			},
		},
		{
			name:  "later suite overrides earlier",
			input: "Apt 3 Apt 4",
			want: map[Field]string{
				FieldSuiteType: "Apt", FieldSuiteNum: "4",
			},
		},
		{
			name:  "punctuation-only token becomes empty street type",
			input: "42 Main .",
			want: map[Field]string{
				FieldHouse: "42", FieldStreetName: "Main", FieldStreetType: "", FieldStreetFull: "Main",
			},
		},
		{
			name:  "punctuation-only token before street name",
			input: "42 . Main",
			want: map[Field]string{
				FieldHouse: "42", FieldStreetName: " Main", FieldStreetFull: " Main",
			},
		},
		{
			name:  "empty input",
			input: "",
			want:  map[Field]string{},
		},
		{
			name:  "whitespace only",
			input: "  \t ",
			want:  map[Field]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkRecord(t, parser.Parse(tt.input, false), tt.want)
		})
	}
}

func TestParseSkipHouse(t *testing.T) {
	parser := NewParser()

	got := parser.Parse("100 Main St", true)
	checkRecord(t, got, map[Field]string{
		FieldStreetName: "100 Main", FieldStreetType: "St", FieldStreetFull: "100 Main St",
	})

	got = parser.Parse("Twelve Oak Lane", true)
	checkRecord(t, got, map[Field]string{
		FieldStreetName: "Twelve Oak", FieldStreetType: "Lane", FieldStreetFull: "Twelve Oak Lane",
	})
}

func TestParseAccountsForEveryToken(t *testing.T) {
	parser := NewParser()

	inputs := []string{
		"1600 Pennsylvania Ave NW Washington DC",
		"12A Baker St Rm 101 Floor 2",
		"Main St Suite 200 Reno NV",
		"PO Box 123",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			rec := parser.Parse(input, false)

			var parts []string
			for _, f := range []Field{FieldHouse, FieldStreetName, FieldStreetType, FieldSuiteType, FieldSuiteNum, FieldOther} {
				if rec.Has(f) {
					parts = append(parts, strings.Fields(rec.Value(f))...)
				}
			}
			if got, want := len(parts), len(strings.Fields(input)); got != want {
				t.Errorf("Parse(%q) accounted for %d tokens, want %d: %+v", input, got, want, parts)
			}
		})
	}
}

func TestParseConcurrent(t *testing.T) {
	parser := NewParser()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				rec := parser.Parse("123 Main Street Apt 4B", false)
				if rec.Value(FieldStreetFull) != "Main Street" {
					t.Errorf("StreetFull = %q, want %q", rec.Value(FieldStreetFull), "Main Street")
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestParseDebug(t *testing.T) {
	var buf bytes.Buffer
	prev := debug.SetOutput(&buf)
	defer debug.SetOutput(prev)

	rec := NewParser().ParseDebug(true, "Twelve Oak Lane", false)
	if rec.Value(FieldHouse) != "12" {
		t.Errorf("House = %q, want %q", rec.Value(FieldHouse), "12")
	}

	out := buf.String()
	for _, want := range []string{"House number: 12", `Token "Lane" -> mode other`, "Street full: Oak Lane"} {
		if !strings.Contains(out, want) {
			t.Errorf("debug output missing %q in:\n%s", want, out)
		}
	}
}

func TestParseModeString(t *testing.T) {
	tests := []struct {
		mode parseMode
		want string
	}{
		{modeStreet, "street"},
		{modeSuite, "suite"},
		{modeOther, "other"},
		{parseMode(7), "mode(7)"},
	}

	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("parseMode(%d).String() = %q, want %q", int(tt.mode), got, tt.want)
		}
	}
}
