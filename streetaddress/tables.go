package streetaddress

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Tables holds the lookup data shared by Parser and Formatter.
// Nothing mutates a Tables value after NewTables returns, so one instance can
// serve any number of goroutines.
type Tables struct {
	abbrevSuffix   map[string]string
	titledSuffix   map[string]string
	streetTypes    map[string]struct{}
	textToNumber   map[string]int
	suiteTypes     map[string]struct{}
	directions     map[string]string
	streetTypeList []string
}

var (
	defaultTables     *Tables
	defaultTablesOnce sync.Once
)

// DefaultTables returns the process-wide tables, building them on first use.
func DefaultTables() *Tables {
	defaultTablesOnce.Do(func() {
		defaultTables = NewTables()
	})
	return defaultTables
}

// NewTables builds an independent set of lookup tables.
func NewTables() *Tables {
	abbrev := abbrevSuffixMap()
	title := cases.Title(language.Und)

	t := &Tables{
		abbrevSuffix: abbrev,
		titledSuffix: make(map[string]string, len(abbrev)),
		streetTypes:  make(map[string]struct{}, len(abbrev)*2),
		textToNumber: textToNumberMap(),
		suiteTypes: map[string]struct{}{
			"suite":     {},
			"ste":       {},
			"apt":       {},
			"apartment": {},
			"room":      {},
			"rm":        {},
			"#":         {},
		},
		directions: map[string]string{
			"east":  "E",
			"west":  "W",
			"north": "N",
			"south": "S",
		},
	}

	for full, short := range abbrev {
		t.streetTypes[full] = struct{}{}
		t.streetTypes[short] = struct{}{}
		t.titledSuffix[full] = title.String(short)
	}

	t.streetTypeList = make([]string, 0, len(t.streetTypes))
	for token := range t.streetTypes {
		t.streetTypeList = append(t.streetTypeList, token)
	}
	sort.Strings(t.streetTypeList)

	return t
}

// IsStreetType reports whether token is a known street type, either a full
// name or an abbreviation. The empty string is a member because "hls" maps to it.
func (t *Tables) IsStreetType(token string) bool {
	_, ok := t.streetTypes[strings.ToLower(token)]
	return ok
}

// Abbreviation returns the standard lower-case abbreviation for a street type.
func (t *Tables) Abbreviation(token string) (string, bool) {
	abbr, ok := t.abbrevSuffix[strings.ToLower(token)]
	return abbr, ok
}

// TitledAbbreviation returns the title-cased abbreviation used as replacement text.
func (t *Tables) TitledAbbreviation(token string) (string, bool) {
	abbr, ok := t.titledSuffix[strings.ToLower(token)]
	return abbr, ok
}

// TextToNumber maps an English number word ("zero".."nineteen", "twenty".."ninety") to its value.
func (t *Tables) TextToNumber(word string) (int, bool) {
	n, ok := t.textToNumber[strings.ToLower(word)]
	return n, ok
}

// IsSuiteType reports whether token introduces a suite or unit designation.
func (t *Tables) IsSuiteType(token string) bool {
	_, ok := t.suiteTypes[strings.ToLower(token)]
	return ok
}

// Direction returns the single-letter abbreviation of a compass direction word.
func (t *Tables) Direction(word string) (string, bool) {
	d, ok := t.directions[strings.ToLower(word)]
	return d, ok
}

// StreetTypes returns every known street type token in sorted order.
func (t *Tables) StreetTypes() []string {
	out := make([]string, len(t.streetTypeList))
	copy(out, t.streetTypeList)
	return out
}

// AbbreviationCount returns the number of entries in the abbreviation map.
func (t *Tables) AbbreviationCount() int {
	return len(t.abbrevSuffix)
}

func textToNumberMap() map[string]int {
	return map[string]int{
		"zero":      0,
		"one":       1,
		"two":       2,
		"three":     3,
		"four":      4,
		"five":      5,
		"six":       6,
		"seven":     7,
		"eight":     8,
		"nine":      9,
		"ten":       10,
		"eleven":    11,
		"twelve":    12,
		"thirteen":  13,
		"fourteen":  14,
		"fifteen":   15,
		"sixteen":   16,
		"seventeen": 17,
		"eighteen":  18,
		"nineteen":  19,
		"twenty":    20,
		"thirty":    30,
		"forty":     40,
		"fifty":     50,
		"sixty":     60,
		"seventy":   70,
		"eighty":    80,
		"ninety":    90,
	}
}

// abbrevSuffixMap maps street type spellings to USPS standard abbreviations.
// "hls" maps to the empty string; that entry is kept as-is.
func abbrevSuffixMap() map[string]string {
	return map[string]string{
		"allee":  "aly",
		"alley":  "aly",
		"ally":   "aly",
		"aly":    "aly",
		"anex":   "anx",
		"annex":  "anx",
		"annx":   "anx",
		"anx":    "anx",
		"arc":    "arc",
		"arcade": "arc",
		"av":     "ave",
		"ave":    "ave",
		"aven":   "ave",
		"avenu":  "ave",
		"avenue": "ave",
		"avn":    "ave",
		"avnue":  "ave",

		"bayoo":     "byu",
		"bayou":     "byu",
		"bch":       "bch",
		"beach":     "bch",
		"bend":      "bnd",
		"bnd":       "bnd",
		"blf":       "blf",
		"bluf":      "blf",
		"bluff":     "blf",
		"bluffs":    "blfs",
		"bot":       "btm",
		"btm":       "btm",
		"bottm":     "btm",
		"bottom":    "btm",
		"blvd":      "blvd",
		"boul":      "blvd",
		"boulevard": "blvd",
		"boulv":     "blvd",
		"br":        "br",
		"brnch":     "br",
		"branch":    "br",
		"brdge":     "brg",
		"brg":       "brg",
		"bridge":    "brg",
		"brk":       "brk",
		"brook":     "brk",
		"brooks":    "brks",
		"burg":      "bg",
		"burgs":     "bgs",
		"byp":       "byp",
		"bypa":      "byp",
		"bypas":     "byp",
		"bypass":    "byp",
		"byps":      "byp",

		"camp":       "cp",
		"cp":         "cp",
		"cmp":        "cp",
		"canyn":      "cyn",
		"canyon":     "cyn",
		"cnyn":       "cyn",
		"cape":       "cpe",
		"cpe":        "cpe",
		"causeway":   "cswy",
		"causwa":     "cswy",
		"cswy":       "cswy",
		"cen":        "ctr",
		"cent":       "ctr",
		"center":     "ctr",
		"centr":      "ctr",
		"centre":     "ctr",
		"cnter":      "ctr",
		"cntr":       "ctr",
		"ctr":        "ctr",
		"centers":    "ctrs",
		"cir":        "cir",
		"circ":       "cir",
		"circl":      "cir",
		"circle":     "cir",
		"crcl":       "cir",
		"crcle":      "cir",
		"circles":    "cirs",
		"clf":        "clf",
		"cliff":      "clf",
		"clfs":       "clfs",
		"cliffs":     "clfs",
		"clb":        "clb",
		"club":       "clb",
		"common":     "cmn",
		"commons":    "cmns",
		"cor":        "cor",
		"corner":     "cor",
		"corners":    "cors",
		"cors":       "cors",
		"course":     "crse",
		"crse":       "crse",
		"court":      "ct",
		"ct":         "ct",
		"courts":     "cts",
		"cts":        "cts",
		"cove":       "cv",
		"cv":         "cv",
		"coves":      "cvs",
		"creek":      "crk",
		"crk":        "crk",
		"crescent":   "cres",
		"cres":       "cres",
		"crsent":     "cres",
		"crsnt":      "cres",
		"crest":      "crst",
		"crossing":   "xing",
		"crssng":     "xing",
		"crossroad":  "xrd",
		"crossroads": "xrds",
		"curve":      "curv",

		"xing": "xing",

		"dale":   "dl",
		"dl":     "dl",
		"dam":    "dm",
		"dm":     "dm",
		"div":    "dv",
		"divide": "dv",
		"dv":     "dv",
		"dvd":    "dv",
		"dr":     "dr",
		"driv":   "dr",
		"drive":  "dr",
		"drv":    "dr",
		"drives": "drs",

		"est":        "est",
		"estate":     "est",
		"estates":    "ests",
		"ests":       "ests",
		"exp":        "expy",
		"expr":       "expy",
		"express":    "expy",
		"expressway": "expy",
		"expw":       "expy",
		"expy":       "expy",
		"ext":        "ext",
		"extension":  "ext",
		"extn":       "ext",
		"extnsn":     "ext",
		"exts":       "exts",

		"fall":    "fall",
		"falls":   "fls",
		"fls":     "fls",
		"ferry":   "fry",
		"frry":    "fry",
		"fry":     "fry",
		"field":   "fld",
		"fld":     "fld",
		"fields":  "flds",
		"flds":    "flds",
		"flat":    "flt",
		"flt":     "flt",
		"flats":   "flts",
		"flts":    "flts",
		"ford":    "frd",
		"frd":     "frd",
		"fords":   "frds",
		"forest":  "frst",
		"forests": "frst",
		"frst":    "frst",
		"forg":    "frg",
		"forge":   "frg",
		"frg":     "frg",
		"forges":  "frgs",
		"fork":    "frk",
		"frk":     "frk",
		"forks":   "frks",
		"frks":    "frks",
		"fort":    "ft",
		"frt":     "ft",
		"ft":      "ft",
		"freeway": "fwy",
		"freewy":  "fwy",
		"frway":   "fwy",
		"frwy":    "fwy",
		"fwy":     "fwy",

		"garden":  "gdn",
		"gardn":   "gdn",
		"grden":   "gdn",
		"grdn":    "gdn",
		"gardens": "gdns",
		"gdns":    "gdns",
		"grdns":   "gdns",
		"gateway": "gtwy",
		"gatewy":  "gtwy",
		"gatway":  "gtwy",
		"gtway":   "gtwy",
		"gtwy":    "gtwy",
		"glen":    "gln",
		"gln":     "gln",
		"glens":   "glns",
		"green":   "grn",
		"grn":     "grn",
		"greens":  "grns",
		"grov":    "grv",
		"grove":   "grv",
		"grv":     "grv",
		"groves":  "grvs",

		"harb":    "hbr",
		"harbor":  "hbr",
		"harbr":   "hbr",
		"hbr":     "hbr",
		"hrbor":   "hbr",
		"harbors": "hbrs",
		"haven":   "hvn",
		"hvn":     "hvn",
		"ht":      "hts",
		"hts":     "hts",
		"highway": "hwy",
		"highwy":  "hwy",
		"hiway":   "hwy",
		"hiwy":    "hwy",
		"hway":    "hwy",
		"hwy":     "hwy",
		"hill":    "hl",
		"hl":      "hl",
		"hills":   "hls",
		"hls":     "",
		"hllw":    "holw",
		"hollow":  "holw",
		"hollows": "holw",
		"holw":    "holw",
		"holws":   "holw",

		"inlt":    "inlt",
		"is":      "is",
		"island":  "is",
		"islnd":   "is",
		"islands": "iss",
		"islnds":  "iss",
		"iss":     "iss",
		"isle":    "isle",
		"isles":   "isle",

		"jct":       "jct",
		"jction":    "jct",
		"jctn":      "jct",
		"junction":  "jct",
		"junctn":    "jct",
		"juncton":   "jct",
		"jctns":     "jcts",
		"jcts":      "jcts",
		"junctions": "jcts",

		"key":    "ky",
		"ky":     "ky",
		"keys":   "kys",
		"kys":    "kys",
		"knl":    "knl",
		"knol":   "knl",
		"knoll":  "knl",
		"knls":   "knls",
		"knolls": "knls",

		"lk":      "lk",
		"lake":    "lk",
		"lks":     "lks",
		"lakes":   "lks",
		"land":    "land",
		"landing": "lndg",
		"lndg":    "lndg",
		"lndng":   "lndg",
		"lane":    "ln",
		"ln":      "ln",
		"lgt":     "lgt",
		"light":   "lgt",
		"lights":  "lgts",
		"lf":      "lf",
		"loaf":    "lf",
		"lck":     "lck",
		"lock":    "lck",
		"lcks":    "lcks",
		"locks":   "lcks",
		"ldg":     "ldg",
		"ldge":    "ldg",
		"lodg":    "ldg",
		"lodge":   "ldg",
		"loop":    "loop",
		"loops":   "loop",

		"mall":      "mall",
		"mnr":       "mnr",
		"manor":     "mnr",
		"manors":    "mnrs",
		"mnrs":      "mnrs",
		"meadow":    "mdw",
		"mdw":       "mdws",
		"mdws":      "mdws",
		"meadows":   "mdws",
		"medows":    "mdws",
		"mews":      "mews",
		"mill":      "ml",
		"mills":     "mls",
		"missn":     "msn",
		"mssn":      "msn",
		"motorway":  "mtwy",
		"mnt":       "mt",
		"mt":        "mt",
		"mount":     "mt",
		"mntain":    "mtn",
		"mntn":      "mtn",
		"mountain":  "mtn",
		"mountin":   "mtn",
		"mtin":      "mtn",
		"mtn":       "mtn",
		"mntns":     "mtns",
		"mountains": "mtns",

		"nck":  "nck",
		"neck": "nck",

		"orch":     "orch",
		"orchard":  "orch",
		"orchrd":   "orch",
		"oval":     "oval",
		"ovl":      "oval",
		"overpass": "opas",

		"park":     "park",
		"prk":      "park",
		"parks":    "park",
		"parkway":  "pkwy",
		"parkwy":   "pkwy",
		"pkway":    "pkwy",
		"pkwy":     "pkwy",
		"pky":      "pkwy",
		"parkways": "pkwy",
		"pkwys":    "pkwy",
		"pass":     "pass",
		"passage":  "psge",
		"path":     "path",
		"paths":    "path",
		"pike":     "pike",
		"pikes":    "pike",
		"pine":     "pne",
		"pines":    "pnes",
		"pnes":     "pnes",
		"pl":       "pl",
		"plain":    "pln",
		"pln":      "pln",
		"plains":   "plns",
		"plns":     "plns",
		"plaza":    "plz",
		"plz":      "plz",
		"plza":     "plz",
		"point":    "pt",
		"pt":       "pt",
		"points":   "pts",
		"pts":      "pts",
		"port":     "prt",
		"prt":      "prt",
		"ports":    "prts",
		"prts":     "prts",
		"pr":       "pr",
		"prairie":  "pr",
		"prr":      "pr",

		"rad":     "radl",
		"radial":  "radl",
		"radiel":  "radl",
		"radl":    "radl",
		"ramp":    "ramp",
		"ranch":   "rnch",
		"ranches": "rnch",
		"rnch":    "rnch",
		"rnchs":   "rnch",
		"rapid":   "rpd",
		"rpd":     "rpd",
		"rapids":  "rpds",
		"rpds":    "rpds",
		"rest":    "rst",
		"rst":     "rst",
		"rdg":     "rdg",
		"rdge":    "rdg",
		"ridge":   "rdg",
		"rdgs":    "rdgs",
		"ridges":  "rdgs",
		"riv":     "riv",
		"river":   "riv",
		"rvr":     "riv",
		"rivr":    "riv",
		"rd":      "rd",
		"road":    "rd",
		"roads":   "rds",
		"rds":     "rds",
		"route":   "rte",
		"row":     "row",
		"rue":     "rue",
		"run":     "run",

		"shl":       "shl",
		"shoal":     "shl",
		"shls":      "shls",
		"shoals":    "shls",
		"shoar":     "shr",
		"shore":     "shr",
		"shr":       "shr",
		"shoars":    "shrs",
		"shores":    "shrs",
		"shrs":      "shrs",
		"skyway":    "skwy",
		"spg":       "spg",
		"spng":      "spg",
		"spring":    "spg",
		"sprng":     "spg",
		"spgs":      "spgs",
		"spngs":     "spgs",
		"springs":   "spgs",
		"sprngs":    "spgs",
		"spur":      "spur",
		"spurs":     "spur",
		"sq":        "sq",
		"sqr":       "sq",
		"sqre":      "sq",
		"squ":       "sq",
		"square":    "sq",
		"sqrs":      "sqs",
		"squares":   "sqs",
		"sta":       "sta",
		"station":   "sta",
		"statn":     "sta",
		"stn":       "sta",
		"stra":      "stra",
		"strav":     "stra",
		"straven":   "stra",
		"stravenue": "stra",
		"stravn":    "stra",
		"strvn":     "stra",
		"strvnue":   "stra",
		"stream":    "strm",
		"streme":    "strm",
		"strm":      "strm",
		"street":    "st",
		"strt":      "st",
		"st":        "st",
		"str":       "st",
		"streets":   "sts",
		"smt":       "smt",
		"sumit":     "smt",
		"sumitt":    "smt",
		"summit":    "smt",

		"ter":        "ter",
		"terr":       "ter",
		"terrace":    "ter",
		"throughway": "trwy",
		"trace":      "trce",
		"traces":     "trce",
		"trce":       "trce",
		"track":      "trak",
		"tracks":     "trak",
		"trak":       "trak",
		"trk":        "trak",
		"trks":       "trak",
		"trafficway": "trfy",
		"trail":      "trl",
		"trails":     "trl",
		"trl":        "trl",
		"trls":       "trl",
		"trailer":    "trlr",
		"trlr":       "trlr",
		"trlrs":      "trlr",
		"tunel":      "tunl",
		"tunl":       "tunl",
		"tunls":      "tunl",
		"tunnel":     "tunl",
		"tunnels":    "tunl",
		"tunnl":      "tunl",
		"trnpk":      "tpke",
		"turnpike":   "tpke",
		"turnpk":     "tpke",

		"underpass": "upas",
		"un":        "un",
		"union":     "un",
		"unions":    "uns",

		"valley":   "vly",
		"vally":    "vly",
		"vlly":     "vly",
		"vly":      "vly",
		"valleys":  "vlys",
		"vlys":     "vlys",
		"vdct":     "via",
		"via":      "via",
		"viadct":   "via",
		"viaduct":  "via",
		"view":     "vw",
		"vw":       "vw",
		"views":    "vws",
		"vws":      "vws",
		"vill":     "vlg",
		"villag":   "vlg",
		"village":  "vlg",
		"villg":    "vlg",
		"villiage": "vlg",
		"vlg":      "vlg",
		"villages": "vlgs",
		"vlgs":     "vlgs",
		"ville":    "vl",
		"vl":       "vl",
		"vis":      "vis",
		"vist":     "vis",
		"vista":    "vis",
		"vst":      "vis",
		"vsta":     "vis",

		"walk":  "walk",
		"walks": "walk",
		"wall":  "wall",
		"wy":    "way",
		"way":   "way",
		"ways":  "ways",
		"well":  "wl",
		"wells": "wls",
		"wls":   "wls",
	}
}
