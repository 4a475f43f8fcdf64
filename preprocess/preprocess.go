// Package preprocess implements the second pipeline stage: newline
// normalization (CRLF/CR to LF) and stripping of a leading byte-order
// mark, applied once to the decoded code point stream before
// tokenization (HTML5 section 8.2.2.2, "preprocessing the input
// stream").
package preprocess

import "github.com/nomovok-opensource/frenzy-html/cpbuf"

const (
	bom rune = 0xFEFF
	cr  rune = 0x000D
	lf  rune = 0x000A
)

// Preprocessor normalizes a code point stream in place: a leading
// U+FEFF is dropped, CR is rewritten to LF, and an LF immediately
// following a CR is dropped. State is just two booleans, so the
// transform behaves identically regardless of how the input is chunked.
type Preprocessor struct {
	out cpbuf.Buffer

	atStart  bool
	prevWasCR bool

	sink func(cp rune)
}

// New returns a Preprocessor ready to receive the first code point of
// the stream.
func New() *Preprocessor {
	return &Preprocessor{atStart: true}
}

// AttachSink registers dest to receive every code point produced from
// this point forward, flushing anything already buffered first.
func (p *Preprocessor) AttachSink(dest func(cp rune)) {
	p.sink = dest
	for p.out.Len() > 0 {
		dest(p.out.Pop())
	}
}

// Write feeds code points through the normalization rules. An empty
// slice is a no-op; the stage has no end-of-stream buffering to flush
// (unlike the decoder, there's never a partial code point left over).
func (p *Preprocessor) Write(cps []rune) {
	for _, uc := range cps {
		p.processOne(uc)
	}
}

// Drain removes and returns all code points produced so far that have
// not yet been delivered to a sink.
func (p *Preprocessor) Drain() []rune {
	return p.out.Splice(p.out.Len())
}

func (p *Preprocessor) processOne(uc rune) {
	wasStart := p.atStart
	p.atStart = false

	if wasStart && uc == bom {
		return
	}

	if p.prevWasCR && uc == lf {
		p.prevWasCR = false
		return
	}

	p.prevWasCR = uc == cr
	if uc == cr {
		uc = lf
	}

	if p.sink != nil {
		p.sink(uc)
		return
	}
	p.out.Push(uc)
}
