package streetaddress

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/streetaddress/internal/debug"
)

// parseMode tracks which component the next unclassified token belongs to.
type parseMode int

const (
	modeStreet parseMode = iota
	modeSuite
	modeOther
)

func (m parseMode) String() string {
	switch m {
	case modeStreet:
		return "street"
	case modeSuite:
		return "suite"
	case modeOther:
		return "other"
	}
	return "mode(" + strconv.Itoa(int(m)) + ")"
}

// Parser splits free-form US street addresses into an AddressRecord.
// A Parser is safe for concurrent use.
type Parser struct {
	tables *Tables

	ordinalPattern     *regexp.Regexp
	houseNumberPattern *regexp.Regexp
}

// NewParser creates a parser backed by the process-wide tables.
func NewParser() *Parser {
	return NewParserWithTables(DefaultTables())
}

// NewParserWithTables creates a parser backed by the given tables.
func NewParserWithTables(tables *Tables) *Parser {
	return &Parser{
		tables:             tables,
		ordinalPattern:     regexp.MustCompile(`(?i)^\d+(st|nd|rd|th)$`),
		houseNumberPattern: regexp.MustCompile(`(?i)^\d\S*$`),
	}
}

// Tables returns the lookup tables the parser classifies against.
func (p *Parser) Tables() *Tables {
	return p.tables
}

// Parse classifies the tokens of address. When skipHouse is true the first
// token is never taken as a house number.
func (p *Parser) Parse(address string, skipHouse bool) AddressRecord {
	return p.ParseDebug(false, address, skipHouse)
}

// ParseDebug is Parse with optional step-by-step debug output.
func (p *Parser) ParseDebug(localDebug bool, address string, skipHouse bool) AddressRecord {
	debug.DebugHeader(localDebug)
	defer debug.DebugFooter(localDebug)

	var rec AddressRecord

	tokens := strings.Fields(address)
	debug.DebugOutput(localDebug, "Tokens: %q", tokens)
	if len(tokens) == 0 {
		return rec
	}

	start := 0
	if !skipHouse {
		rec.House, start = p.parseHouse(tokens)
		if rec.House != nil {
			debug.DebugOutput(localDebug, "House number: %s (consumed %d tokens)", *rec.House, start)
		}
	}

	var streetAccum, otherAccum []string
	mode := modeStreet

	for _, token := range tokens[start:] {
		word := strings.TrimRight(token, ".,")
		lower := strings.ToLower(word)

		switch {
		case p.tables.IsStreetType(lower) && len(streetAccum) > 0:
			rec.StreetType = stringPtr(word)
			mode = modeOther
		case p.tables.IsSuiteType(lower):
			rec.SuiteType = stringPtr(word)
			mode = modeSuite
		case strings.HasPrefix(lower, "#") && rec.SuiteNum != nil:
			// Only taken once a suite number already exists.
			rec.SuiteType = stringPtr("#")
			rec.SuiteNum = stringPtr(word[1:])
			mode = modeOther
		default:
			switch mode {
			case modeStreet:
				streetAccum = append(streetAccum, word)
			case modeSuite:
				rec.SuiteNum = stringPtr(word)
				mode = modeOther
			case modeOther:
				otherAccum = append(otherAccum, word)
			default:
				panic(fmt.Sprintf("streetaddress: unreachable parse mode %v", mode))
			}
		}
		debug.DebugOutput(localDebug, "Token %q -> mode %v", word, mode)
	}

	if len(streetAccum) > 0 {
		rec.StreetName = stringPtr(strings.Join(streetAccum, " "))
	}
	if len(otherAccum) > 0 {
		rec.Other = stringPtr(strings.Join(otherAccum, " "))
	}
	rec.StreetFull = streetFull(rec.StreetName, rec.StreetType)

	debug.DebugOutput(localDebug, "Street full: %v", rec.Value(FieldStreetFull))
	return rec
}

// parseHouse returns the house number, if any, and how many tokens it used.
func (p *Parser) parseHouse(tokens []string) (*string, int) {
	first := tokens[0]

	var house *string
	switch n, ok := p.tables.TextToNumber(first); {
	case ok:
		house = stringPtr(strconv.Itoa(n))
	case p.ordinalPattern.MatchString(first):
		// "23rd" names the street, not the building.
		return nil, 0
	case p.houseNumberPattern.MatchString(first):
		house = stringPtr(first)
	default:
		return nil, 0
	}

	if len(tokens) >= 2 && tokens[1] == "1/2" {
		half := *house + " 1/2"
		return &half, 2
	}
	return house, 1
}

// streetFull joins the non-empty parts of the street.
func streetFull(name, typ *string) *string {
	hasName := name != nil && *name != ""
	hasType := typ != nil && *typ != ""

	switch {
	case hasName && hasType:
		return stringPtr(*name + " " + *typ)
	case hasName:
		return stringPtr(*name)
	case hasType:
		return stringPtr(*typ)
	}
	return nil
}
