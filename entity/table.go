// Package entity implements the named-character-reference database and
// its streaming longest-prefix searcher (HTML5 section 8.2.4.69 /
// "named character reference state").
package entity

// Entry is one row of the named character reference table: a name (not
// including the leading '&'), and its one- or two-code-point
// replacement. CP2 is 0 when the entry expands to a single code point.
type Entry struct {
	Name string
	CP1  rune
	CP2  rune
}

// table is the static database, a representative subset of the full
// HTML5 named character reference list (whatwg.org/html maintains
// ~2200 entries; the algorithm in §4.3 only depends on the table being
// sorted and partitioned by first letter, which holds regardless of
// how many entries are present). Legacy entries without a trailing
// semicolon are included deliberately, since the "no-semicolon in
// attribute" rule (§4.4) only makes sense if both forms exist.
var table = []Entry{
	{"AElig", 0x00C6, 0},
	{"AElig;", 0x00C6, 0},
	{"AMP", '&', 0},
	{"AMP;", '&', 0},
	{"Aacute;", 0x00C1, 0},
	{"Alpha;", 0x0391, 0},
	{"Beta;", 0x0392, 0},
	{"Delta;", 0x0394, 0},
	{"ETH;", 0x00D0, 0},
	{"Gamma;", 0x0393, 0},
	{"GT", '>', 0},
	{"GT;", '>', 0},
	{"LT", '<', 0},
	{"LT;", '<', 0},
	{"Ntilde;", 0x00D1, 0},
	{"Omega;", 0x03A9, 0},
	{"Oslash;", 0x00D8, 0},
	{"QUOT", '"', 0},
	{"QUOT;", '"', 0},
	{"THORN;", 0x00DE, 0},

	{"aacute;", 0x00E1, 0},
	{"acE;", 0x223E, 0x0333},
	{"acute;", 0x00B4, 0},
	{"aelig", 0x00E6, 0},
	{"aelig;", 0x00E6, 0},
	{"alpha;", 0x03B1, 0},
	{"amp", '&', 0},
	{"amp;", '&', 0},
	{"apos;", '\'', 0},

	{"bne;", '=', 0x20E5},
	{"brvbar;", 0x00A6, 0},
	{"bull;", 0x2022, 0},

	{"cedil;", 0x00B8, 0},
	{"cent;", 0x00A2, 0},
	{"copy", 0x00A9, 0},
	{"copy;", 0x00A9, 0},
	{"curren;", 0x00A4, 0},

	{"darr;", 0x2193, 0},
	{"deg;", 0x00B0, 0},
	{"delta;", 0x03B4, 0},
	{"divide;", 0x00F7, 0},

	{"empty;", 0x2205, 0},
	{"epsilon;", 0x03B5, 0},
	{"eth;", 0x00F0, 0},
	{"euro;", 0x20AC, 0},
	{"exist;", 0x2203, 0},

	{"forall;", 0x2200, 0},

	{"gamma;", 0x03B3, 0},
	{"ge;", 0x2265, 0},
	{"gt", '>', 0},
	{"gt;", '>', 0},

	{"harr;", 0x2194, 0},
	{"hellip;", 0x2026, 0},

	{"iexcl;", 0x00A1, 0},
	{"infin;", 0x221E, 0},
	{"int;", 0x222B, 0},
	{"iquest;", 0x00BF, 0},
	{"isin;", 0x2208, 0},

	{"laquo;", 0x00AB, 0},
	{"larr;", 0x2190, 0},
	{"ldquo;", 0x201C, 0},
	{"le;", 0x2264, 0},
	{"lsquo;", 0x2018, 0},
	{"lt", '<', 0},
	{"lt;", '<', 0},

	{"macr;", 0x00AF, 0},
	{"mdash;", 0x2014, 0},
	{"micro;", 0x00B5, 0},
	{"middot;", 0x00B7, 0},

	{"nabla;", 0x2207, 0},
	{"nbsp", 0x00A0, 0},
	{"nbsp;", 0x00A0, 0},
	{"ndash;", 0x2013, 0},
	{"ne;", 0x2260, 0},
	{"not;", 0x00AC, 0},
	{"notin;", 0x2209, 0},
	{"ntilde;", 0x00F1, 0},
	{"nvgt;", '>', 0x20D2},
	{"nvlt;", '<', 0x20D2},

	{"omega;", 0x03C9, 0},
	{"ordf;", 0x00AA, 0},
	{"ordm;", 0x00BA, 0},
	{"oslash;", 0x00F8, 0},

	{"para;", 0x00B6, 0},
	{"part;", 0x2202, 0},
	{"plusmn;", 0x00B1, 0},
	{"pound;", 0x00A3, 0},
	{"prod;", 0x220F, 0},

	{"quot", '"', 0},
	{"quot;", '"', 0},

	{"raquo;", 0x00BB, 0},
	{"rarr;", 0x2192, 0},
	{"rdquo;", 0x201D, 0},
	{"reg", 0x00AE, 0},
	{"reg;", 0x00AE, 0},
	{"rsquo;", 0x2019, 0},

	{"sect;", 0x00A7, 0},
	{"shy;", 0x00AD, 0},
	{"sum;", 0x2211, 0},
	{"sup1;", 0x00B9, 0},
	{"sup2;", 0x00B2, 0},
	{"sup3;", 0x00B3, 0},
	{"szlig;", 0x00DF, 0},

	{"thorn;", 0x00FE, 0},
	{"times;", 0x00D7, 0},
	{"trade;", 0x2122, 0},

	{"uarr;", 0x2191, 0},
	{"uml;", 0x00A8, 0},

	{"yen;", 0x00A5, 0},
}

// letterBlock is the contiguous [start,end) range of table for entries
// whose first byte equals letter.
type letterBlock struct {
	start, end int
}

var byFirstLetter [256]letterBlock

func init() {
	// The literal above is already grouped and sorted per letter block
	// and overall; this just records the [start,end) boundaries rather
	// than trusting hand-maintained indices.
	for i := 0; i < len(table); {
		c := table[i].Name[0]
		j := i + 1
		for j < len(table) && table[j].Name[0] == c {
			j++
		}
		byFirstLetter[c] = letterBlock{start: i, end: j}
		i = j
	}
}

// Begin and End return the bounds of the contiguous block of entries
// whose name starts with the ASCII letter c. Both are equal (an empty
// range) if no entity starts with c.
func Begin(c byte) int { return byFirstLetter[c].start }
func End(c byte) int   { return byFirstLetter[c].end }

// At returns the entry at table index i.
func At(i int) Entry { return table[i] }

// Lookup returns the entry for an exact name, mostly useful for tests;
// the searcher below is the production lookup path.
func Lookup(name string) (Entry, bool) {
	if name == "" {
		return Entry{}, false
	}
	b := byFirstLetter[name[0]]
	for i := b.start; i < b.end; i++ {
		if table[i].Name == name {
			return table[i], true
		}
	}
	return Entry{}, false
}
