package tokenizer

import (
	"strings"

	"github.com/nomovok-opensource/frenzy-html/cpbuf"
	"github.com/nomovok-opensource/frenzy-html/token"
)

// doctypeState begins §8.2.4.53 ("DOCTYPE state"), right after the
// literal "DOCTYPE" has been consumed by markupDeclarationOpenState.
// Rather than modeling each of the spec's ~15 DOCTYPE sub-states
// individually, this collapses them into a single raw scan up to the
// closing '>' (or EOF), the same simplification the teacher's
// chtml/html/doctype.go applies: the tokenizer captures the doctype's
// raw text and a dedicated parser (parseDoctypeData, below) decomposes
// it into name/public id/system id. Observable token output is
// identical to running the full state machine.
func doctypeState(tz *Tokenizer) (stateFn, bool) {
	if !tz.eof {
		complete := false
		for i := 0; i < tz.buf.Len() && !complete; i++ {
			complete = tz.buf.Peek(i) == '>'
		}
		if !complete {
			return doctypeState, true
		}
	}
	var raw strings.Builder
	for {
		cp := tz.next()
		switch cp {
		case '>':
			name, pub, hasPub, sys, hasSys, forceQuirks := parseDoctypeData(raw.String())
			tz.emit(token.Token{
				Type:        token.Doctype,
				DoctypeName: name,
				HasPublicID: hasPub,
				PublicID:    pub,
				HasSystemID: hasSys,
				SystemID:    sys,
				ForceQuirks: forceQuirks,
			})
			return dataState, false
		case cpbuf.EOF:
			tz.parseError("eof-in-doctype")
			name, pub, hasPub, sys, hasSys, _ := parseDoctypeData(raw.String())
			tz.emit(token.Token{
				Type:        token.Doctype,
				DoctypeName: name,
				HasPublicID: hasPub,
				PublicID:    pub,
				HasSystemID: hasSys,
				SystemID:    sys,
				ForceQuirks: true,
			})
			tz.emitEOF()
			return dataState, false
		case 0:
			raw.WriteRune(0xFFFD)
		default:
			raw.WriteRune(cp)
		}
	}
}

const doctypeWhitespace = " \t\r\n\f"

// parseDoctypeData parses the raw text between "DOCTYPE" and the
// closing '>' into a name, and optional public/system identifiers,
// following HTML5's DOCTYPE sub-states (§8.2.4.53-8.2.4.65). Ported
// from the same algorithm the teacher's doctype.go already uses for
// this exact purpose, generalized to also report force-quirks.
func parseDoctypeData(s string) (name, public string, hasPublic bool, system string, hasSystem bool, forceQuirks bool) {
	s = strings.TrimLeft(s, doctypeWhitespace)

	space := strings.IndexAny(s, doctypeWhitespace)
	if space == -1 {
		space = len(s)
	}
	name = strings.ToLower(s[:space])
	if name == "" {
		forceQuirks = true
	}
	s = strings.TrimLeft(s[space:], doctypeWhitespace)

	if len(s) < 6 {
		return
	}

	key := strings.ToLower(s[:6])
	s = s[6:]
	for key == "public" || key == "system" {
		s = strings.TrimLeft(s, doctypeWhitespace)
		if s == "" {
			forceQuirks = true
			break
		}
		quote := s[0]
		if quote != '"' && quote != '\'' {
			forceQuirks = true
			break
		}
		s = s[1:]
		q := strings.IndexByte(s, quote)
		var id string
		if q == -1 {
			id = s
			s = ""
		} else {
			id = s[:q]
			s = s[q+1:]
		}
		if key == "public" {
			public, hasPublic = id, true
			key = "system"
		} else {
			system, hasSystem = id, true
			key = ""
		}
	}

	return
}
