// Package tokenizer implements the third pipeline stage: the HTML5
// tokenizer (spec §4.4), a state machine that turns a preprocessed code
// point stream into Tokens. States are resumable at arbitrary chunk
// boundaries: when a state needs more input than is currently buffered,
// it leaves the buffer untouched and reports "paused" so the caller can
// feed more code points and resume later without losing progress.
package tokenizer

import (
	"strings"

	"github.com/nomovok-opensource/frenzy-html/cpbuf"
	"github.com/nomovok-opensource/frenzy-html/token"
)

// State names the tokenizer's raw-text-ish modes that the tree
// constructor can switch into for certain elements (spec §4.4, "state
// changes driven by the tree constructor").
type State int

const (
	Data State = iota
	RCDATA
	RAWTEXT
	ScriptData
	PlainText
)

// stateFn is one tokenizer state. It returns the state to run next and
// whether it paused (needs more buffered input before it can proceed);
// when paused is true, next must equal the state that was asked to run
// (no progress was made, and it will be retried verbatim).
type stateFn func(tz *Tokenizer) (next stateFn, paused bool)

// Tokenizer converts code points into Tokens per spec §4.4.
type Tokenizer struct {
	buf cpbuf.Buffer
	eof bool

	state stateFn

	tok token.Token

	// lastStartTagName backs the RCDATA/RAWTEXT/script end-tag
	// reconciliation rule: only an end tag matching the most recently
	// emitted start tag's name terminates the raw-text region.
	lastStartTagName string

	// pendingRawEnd accumulates a candidate "</name" sequence inside a
	// raw-text region until it's confirmed (emit end tag) or rejected
	// (flush as character tokens and resume raw-text scanning).
	pendingRawEnd strings.Builder
	rawResume     stateFn

	// tempBuf accumulates the candidate tag name across the script-data
	// double-escape start/end states (spec §8.2.4.28/33), which compare
	// it against the literal "script" rather than the last start tag.
	tempBuf strings.Builder

	sink     func(token.Token)
	outQueue []token.Token

	// onParseError, if set, is called for every spec-labeled parse
	// error site reached, carrying a short machine-readable code. The
	// tokenizer never aborts on these; this is purely diagnostic.
	onParseError func(code string)

	// allowCDATA changes only through AllowCDATA, which this module's
	// tree constructor never calls; CDATA sections are only legal in
	// foreign content, which this core treats as a stub (spec §9 open
	// question).
	allowCDATA bool
}

// New returns a Tokenizer starting in the Data state.
func New() *Tokenizer {
	tz := &Tokenizer{}
	tz.state = dataState
	return tz
}

// AttachSink registers dest to receive every token produced from this
// point forward, flushing anything already queued first.
func (tz *Tokenizer) AttachSink(dest func(token.Token)) {
	tz.sink = dest
	for _, t := range tz.outQueue {
		dest(t)
	}
	tz.outQueue = nil
}

// OnParseError registers a diagnostic callback for spec-labeled parse
// error sites. It does not affect recovery, which is unconditional.
func (tz *Tokenizer) OnParseError(f func(code string)) { tz.onParseError = f }

// AllowCDATA controls whether "<![CDATA[" opens a CDATA section (only
// meaningful in foreign content, which this core stubs out).
func (tz *Tokenizer) AllowCDATA(v bool) { tz.allowCDATA = v }

// SetState forces the tokenizer into one of the raw-text-ish states;
// used by the tree constructor immediately after inserting certain
// start tags (script, style, textarea, title, plaintext, ...).
func (tz *Tokenizer) SetState(s State, rawTagName string) {
	tz.lastStartTagName = rawTagName
	switch s {
	case RCDATA:
		tz.state = rcdataState
	case RAWTEXT:
		tz.state = rawtextState
	case ScriptData:
		tz.state = scriptDataState
	case PlainText:
		tz.state = plaintextState
	default:
		tz.state = dataState
	}
}

// Write feeds code points into the tokenizer and runs it as far as it
// can go. eof signals that no further code points will ever arrive:
// the tokenizer will run every remaining state to completion, finally
// emitting an EOF token.
func (tz *Tokenizer) Write(cps []rune, eof bool) {
	tz.buf.Push(cps...)
	if eof {
		tz.eof = true
	}
	tz.pump()
}

// Drain removes and returns all tokens produced so far that have not
// yet been delivered to a sink.
func (tz *Tokenizer) Drain() []token.Token {
	out := tz.outQueue
	tz.outQueue = nil
	return out
}

func (tz *Tokenizer) pump() {
	for {
		if tz.buf.Len() == 0 && !tz.eof {
			return
		}
		next, paused := tz.state(tz)
		if paused {
			return
		}
		tz.state = next
	}
}

func (tz *Tokenizer) parseError(code string) {
	if tz.onParseError != nil {
		tz.onParseError(code)
	}
}

// next pops the next code point, or cpbuf.EOF if the stream has truly
// ended (only valid to call when tz.buf.Len() > 0 || tz.eof).
func (tz *Tokenizer) next() rune {
	return tz.buf.Pop()
}

func (tz *Tokenizer) reconsume(cp rune) {
	if cp == cpbuf.EOF {
		return
	}
	tz.buf.Rewind(cp)
}

func (tz *Tokenizer) emit(t token.Token) {
	if tz.sink != nil {
		tz.sink(t)
		return
	}
	tz.outQueue = append(tz.outQueue, t)
}

func (tz *Tokenizer) emitChar(cp rune) {
	tz.emit(token.Token{Type: token.Character, CP: cp})
}

func (tz *Tokenizer) emitEOF() {
	tz.emit(token.Token{Type: token.EOF})
}

func (tz *Tokenizer) startTag(name string) {
	tz.tok = token.Token{Type: token.StartTag, TagName: name}
}

func (tz *Tokenizer) endTag(name string) {
	tz.tok = token.Token{Type: token.EndTag, TagName: name}
}

func (tz *Tokenizer) emitCurrentTag() {
	if tz.tok.Type == token.StartTag {
		tz.lastStartTagName = tz.tok.TagName
	}
	tz.emit(tz.tok)
	tz.tok = token.Token{}
}

// peekEqualFold reports whether the next len(lit) code points equal lit
// case-insensitively (ASCII), without consuming anything. ok is false
// if not enough input is buffered and EOF hasn't been reached yet (the
// caller must pause).
func (tz *Tokenizer) peekEqualFold(lit string) (matched, ok bool) {
	if tz.buf.Len() < len(lit) {
		if tz.eof {
			return false, true
		}
		return false, false
	}
	cps := tz.buf.PeekSlice(len(lit))
	for i, want := range lit {
		got := cps[i]
		if toASCIILower(got) != toASCIILower(want) {
			return false, true
		}
	}
	return true, true
}

func (tz *Tokenizer) peekEqual(lit string) (matched, ok bool) {
	if tz.buf.Len() < len(lit) {
		if tz.eof {
			return false, true
		}
		return false, false
	}
	cps := tz.buf.PeekSlice(len(lit))
	for i, want := range lit {
		if cps[i] != want {
			return false, true
		}
	}
	return true, true
}

func toASCIILower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

func isASCIIUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

func isASCIIAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', ' ', '\r':
		return true
	}
	return false
}
