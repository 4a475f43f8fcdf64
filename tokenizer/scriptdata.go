package tokenizer

import "github.com/nomovok-opensource/frenzy-html/cpbuf"

// This file covers the escaped and double-escaped script-data states of
// §8.2.4: the sub-machine that lets a script body contain
// `<!--...</script>...-->` without that inner end tag closing the
// element. scriptDataState (rawtext.go) and these states trade off the
// same way DATA and RCDATA/RAWTEXT do: plain content, a '<' that might
// open something, and an end tag name accumulated against a known
// name. The two "...end tag open/name" shapes here are identical to
// rawtext.go's rawEndTagOpenState/rawEndTagNameState, so those are
// reused directly; only rawResume needs pointing at the right fallback
// before delegating.

// scriptDataLessThanSignState implements §8.2.4.17.
func scriptDataLessThanSignState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '/':
		tz.pendingRawEnd.Reset()
		tz.rawResume = scriptDataState
		return rawEndTagOpenState, false
	case '!':
		tz.emitChar('<')
		tz.emitChar('!')
		return scriptDataEscapeStartState, false
	default:
		tz.emitChar('<')
		tz.reconsume(cp)
		return scriptDataState, false
	}
}

// scriptDataEscapeStartState implements §8.2.4.20.
func scriptDataEscapeStartState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	if cp == '-' {
		tz.emitChar('-')
		return scriptDataEscapeStartDashState, false
	}
	tz.reconsume(cp)
	return scriptDataState, false
}

// scriptDataEscapeStartDashState implements §8.2.4.21.
func scriptDataEscapeStartDashState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	if cp == '-' {
		tz.emitChar('-')
		return scriptDataEscapedDashDashState, false
	}
	tz.reconsume(cp)
	return scriptDataState, false
}

// scriptDataEscapedState implements §8.2.4.22.
func scriptDataEscapedState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '-':
		tz.emitChar('-')
		return scriptDataEscapedDashState, false
	case '<':
		return scriptDataEscapedLessThanSignState, false
	case 0:
		tz.parseError("unexpected-null-character")
		tz.emitChar(0xFFFD)
		return scriptDataEscapedState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-script-html-comment-like-text")
		tz.emitEOF()
		return dataState, false
	default:
		tz.emitChar(cp)
		return scriptDataEscapedState, false
	}
}

// scriptDataEscapedDashState implements §8.2.4.23.
func scriptDataEscapedDashState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '-':
		tz.emitChar('-')
		return scriptDataEscapedDashDashState, false
	case '<':
		return scriptDataEscapedLessThanSignState, false
	case 0:
		tz.parseError("unexpected-null-character")
		tz.emitChar(0xFFFD)
		return scriptDataEscapedState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-script-html-comment-like-text")
		tz.emitEOF()
		return dataState, false
	default:
		tz.emitChar(cp)
		return scriptDataEscapedState, false
	}
}

// scriptDataEscapedDashDashState implements §8.2.4.24.
func scriptDataEscapedDashDashState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '-':
		tz.emitChar('-')
		return scriptDataEscapedDashDashState, false
	case '<':
		return scriptDataEscapedLessThanSignState, false
	case '>':
		tz.emitChar('>')
		return scriptDataState, false
	case 0:
		tz.parseError("unexpected-null-character")
		tz.emitChar(0xFFFD)
		return scriptDataEscapedState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-script-html-comment-like-text")
		tz.emitEOF()
		return dataState, false
	default:
		tz.emitChar(cp)
		return scriptDataEscapedState, false
	}
}

// scriptDataEscapedLessThanSignState implements §8.2.4.25.
func scriptDataEscapedLessThanSignState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch {
	case cp == '/':
		tz.pendingRawEnd.Reset()
		tz.rawResume = scriptDataEscapedState
		return rawEndTagOpenState, false
	case isASCIIAlpha(cp):
		tz.tempBuf.Reset()
		tz.emitChar('<')
		tz.reconsume(cp)
		return scriptDataDoubleEscapeStartState, false
	default:
		tz.emitChar('<')
		tz.reconsume(cp)
		return scriptDataEscapedState, false
	}
}

// scriptDataDoubleEscapeStartState implements §8.2.4.28: accumulates a
// candidate tag name and, on a delimiter, compares it against the
// literal "script" (not the last start tag name — this transition is
// keyed to the fixed string per spec).
func scriptDataDoubleEscapeStartState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch {
	case isWhitespace(cp), cp == '/', cp == '>':
		tz.emitChar(cp)
		if tz.tempBuf.String() == "script" {
			return scriptDataDoubleEscapedState, false
		}
		return scriptDataEscapedState, false
	case isASCIIAlpha(cp):
		tz.tempBuf.WriteRune(toASCIILower(cp))
		tz.emitChar(cp)
		return scriptDataDoubleEscapeStartState, false
	default:
		tz.reconsume(cp)
		return scriptDataEscapedState, false
	}
}

// scriptDataDoubleEscapedState implements §8.2.4.29.
func scriptDataDoubleEscapedState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '-':
		tz.emitChar('-')
		return scriptDataDoubleEscapedDashState, false
	case '<':
		tz.emitChar('<')
		return scriptDataDoubleEscapedLessThanSignState, false
	case 0:
		tz.parseError("unexpected-null-character")
		tz.emitChar(0xFFFD)
		return scriptDataDoubleEscapedState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-script-html-comment-like-text")
		tz.emitEOF()
		return dataState, false
	default:
		tz.emitChar(cp)
		return scriptDataDoubleEscapedState, false
	}
}

// scriptDataDoubleEscapedDashState implements §8.2.4.30.
func scriptDataDoubleEscapedDashState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '-':
		tz.emitChar('-')
		return scriptDataDoubleEscapedDashDashState, false
	case '<':
		tz.emitChar('<')
		return scriptDataDoubleEscapedLessThanSignState, false
	case 0:
		tz.parseError("unexpected-null-character")
		tz.emitChar(0xFFFD)
		return scriptDataDoubleEscapedState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-script-html-comment-like-text")
		tz.emitEOF()
		return dataState, false
	default:
		tz.emitChar(cp)
		return scriptDataDoubleEscapedState, false
	}
}

// scriptDataDoubleEscapedDashDashState implements §8.2.4.31.
func scriptDataDoubleEscapedDashDashState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '-':
		tz.emitChar('-')
		return scriptDataDoubleEscapedDashDashState, false
	case '<':
		tz.emitChar('<')
		return scriptDataDoubleEscapedLessThanSignState, false
	case '>':
		tz.emitChar('>')
		return scriptDataState, false
	case 0:
		tz.parseError("unexpected-null-character")
		tz.emitChar(0xFFFD)
		return scriptDataDoubleEscapedState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-script-html-comment-like-text")
		tz.emitEOF()
		return dataState, false
	default:
		tz.emitChar(cp)
		return scriptDataDoubleEscapedState, false
	}
}

// scriptDataDoubleEscapedLessThanSignState implements §8.2.4.32.
func scriptDataDoubleEscapedLessThanSignState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	if cp == '/' {
		tz.tempBuf.Reset()
		tz.emitChar('/')
		return scriptDataDoubleEscapeEndState, false
	}
	tz.reconsume(cp)
	return scriptDataDoubleEscapedState, false
}

// scriptDataDoubleEscapeEndState implements §8.2.4.33: the mirror of
// scriptDataDoubleEscapeStartState, switching back to the
// single-escaped state once "script" is confirmed.
func scriptDataDoubleEscapeEndState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch {
	case isWhitespace(cp), cp == '/', cp == '>':
		tz.emitChar(cp)
		if tz.tempBuf.String() == "script" {
			return scriptDataEscapedState, false
		}
		return scriptDataDoubleEscapedState, false
	case isASCIIAlpha(cp):
		tz.tempBuf.WriteRune(toASCIILower(cp))
		tz.emitChar(cp)
		return scriptDataDoubleEscapeEndState, false
	default:
		tz.reconsume(cp)
		return scriptDataDoubleEscapedState, false
	}
}
