package tokenizer

import (
	"strings"

	"github.com/nomovok-opensource/frenzy-html/cpbuf"
	"github.com/nomovok-opensource/frenzy-html/token"
)

// rcdataState implements §8.2.4.3: like RAWTEXT, but character
// references are still recognized (used for <title>, <textarea>).
func rcdataState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '&':
		return charRefInState(tz, rcdataState)
	case '<':
		tz.rawResume = rcdataState
		return rawLessThanSignState, false
	case 0:
		tz.parseError("unexpected-null-character")
		tz.emitChar(0xFFFD)
		return rcdataState, false
	case cpbuf.EOF:
		tz.emitEOF()
		return dataState, false
	default:
		tz.emitChar(cp)
		return rcdataState, false
	}
}

// rawtextState implements §8.2.4.5 (used for <style>, <iframe>, ...).
func rawtextState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '<':
		tz.rawResume = rawtextState
		return rawLessThanSignState, false
	case 0:
		tz.parseError("unexpected-null-character")
		tz.emitChar(0xFFFD)
		return rawtextState, false
	case cpbuf.EOF:
		tz.emitEOF()
		return dataState, false
	default:
		tz.emitChar(cp)
		return rawtextState, false
	}
}

// scriptDataState implements §8.2.4.6. Unlike plain RAWTEXT, script
// data has escaped and double-escaped sub-states (scriptdata.go) so
// that a `<!--` comment opener inside a script can itself contain a
// literal "</script>" without ending the element, e.g.
// `<!--</script>-->`.
func scriptDataState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '<':
		return scriptDataLessThanSignState, false
	case 0:
		tz.parseError("unexpected-null-character")
		tz.emitChar(0xFFFD)
		return scriptDataState, false
	case cpbuf.EOF:
		tz.emitEOF()
		return dataState, false
	default:
		tz.emitChar(cp)
		return scriptDataState, false
	}
}

// plaintextState implements §8.2.4.7: once entered, there is no way
// back to DATA; every remaining code point, including '<', is a
// character token.
func plaintextState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case 0:
		tz.parseError("unexpected-null-character")
		tz.emitChar(0xFFFD)
		return plaintextState, false
	case cpbuf.EOF:
		tz.emitEOF()
		return dataState, false
	default:
		tz.emitChar(cp)
		return plaintextState, false
	}
}

// rawLessThanSignState implements the shared shape of §8.2.4.11/23/13
// ("<x>DATA end tag open" states): seeing '<' inside a raw-text region,
// check for a following '/' that might start the matching end tag.
func rawLessThanSignState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	if cp == '/' {
		tz.pendingRawEnd.Reset()
		return rawEndTagOpenState, false
	}
	tz.emitChar('<')
	tz.reconsume(cp)
	return tz.rawResume, false
}

// rawEndTagOpenState implements the shared shape of the "...end tag
// open" states: only proceed to name accumulation if an ASCII letter
// follows, otherwise the '<' and '/' were just raw-text content.
func rawEndTagOpenState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	if isASCIIAlpha(cp) {
		tz.reconsume(cp)
		tz.endTag("")
		return rawEndTagNameState, false
	}
	tz.emitChar('<')
	tz.emitChar('/')
	tz.reconsume(cp)
	return tz.rawResume, false
}

// rawEndTagNameState implements the shared shape of the "...end tag
// name" states (§8.2.4.14 etc.): an end tag only terminates the
// raw-text region if its name exactly matches the last start tag name
// emitted (spec §4.4 "RCDATA/RAWTEXT/script end-tag reconciliation")
// and is immediately followed by whitespace, '/' or '>'. Otherwise the
// accumulated text is flushed back as character tokens and scanning
// resumes in the enclosing raw-text state.
func rawEndTagNameState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	if isASCIIAlpha(cp) {
		tz.tok.TagName += string(toASCIILower(cp))
		tz.pendingRawEnd.WriteRune(cp)
		return rawEndTagNameState, false
	}

	appropriate := tz.tok.TagName != "" &&
		strings.EqualFold(tz.tok.TagName, tz.lastStartTagName)

	if appropriate {
		switch {
		case isWhitespace(cp):
			tz.reconsume(cp)
			return beforeAttributeNameState, false
		case cp == '/':
			return selfClosingStartTagState, false
		case cp == '>':
			tz.emitCurrentTag()
			return dataState, false
		}
	}

	// Not an appropriate end tag (or not followed by a tag delimiter):
	// flush "</" + whatever was accumulated as character tokens and
	// resume the raw-text state, reconsuming cp there.
	tz.emitChar('<')
	tz.emitChar('/')
	for _, r := range tz.pendingRawEnd.String() {
		tz.emitChar(r)
	}
	tz.tok = token.Token{} // discard scratch end tag
	tz.reconsume(cp)
	return tz.rawResume, false
}
