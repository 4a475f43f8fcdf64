package frenzyhtml

import (
	"io"

	"github.com/nomovok-opensource/frenzy-html/decode"
	"github.com/nomovok-opensource/frenzy-html/dom"
	"github.com/nomovok-opensource/frenzy-html/preprocess"
	"github.com/nomovok-opensource/frenzy-html/token"
	"github.com/nomovok-opensource/frenzy-html/tokenizer"
	"github.com/nomovok-opensource/frenzy-html/treebuilder"
)

// ParseError carries one spec-labeled parse-error site (spec.md §7):
// the pipeline never aborts on these, it just applies the mandated
// recovery and reports the site for diagnostics.
type ParseError struct {
	// Stage names which pipeline stage raised it: "tokenizer" or
	// "tree-construction".
	Stage string
	Code  string
}

// Pipeline wires the four stages of spec.md §4 together: Decoder ->
// Preprocessor -> Tokenizer -> TreeBuilder. Bytes fed to Write flow
// through synchronously, stage to stage, the same way the teacher's
// html.Tokenizer consumes an io.Reader incrementally.
type Pipeline struct {
	dec *decode.Decoder
	pre *preprocess.Preprocessor
	tz  *tokenizer.Tokenizer
	tb  *treebuilder.TreeBuilder

	onParseError func(ParseError)
}

// NewPipeline wires a fresh Pipeline, ready to receive byte chunks via
// Write.
func NewPipeline() *Pipeline {
	p := &Pipeline{
		dec: decode.New(),
		pre: preprocess.New(),
		tz:  tokenizer.New(),
		tb:  treebuilder.New(),
	}

	p.dec.AttachSink(func(cp rune) { p.pre.Write([]rune{cp}) })
	p.pre.AttachSink(func(cp rune) { p.tz.Write([]rune{cp}, false) })
	p.tz.AttachSink(func(tok token.Token) { p.tb.ProcessToken(tok) })

	p.tz.OnParseError(func(code string) { p.reportParseError("tokenizer", code) })
	p.tb.OnParseError(func(code string) { p.reportParseError("tree-construction", code) })

	p.tb.OnSetTokenizerState(func(rawtext, rcdata bool, tagName string) {
		switch {
		case tagName == "plaintext":
			p.tz.SetState(tokenizer.PlainText, tagName)
		case tagName == "script":
			p.tz.SetState(tokenizer.ScriptData, tagName)
		case rawtext:
			p.tz.SetState(tokenizer.RAWTEXT, tagName)
		case rcdata:
			p.tz.SetState(tokenizer.RCDATA, tagName)
		}
	})

	return p
}

func (p *Pipeline) reportParseError(stage, code string) {
	if p.onParseError != nil {
		p.onParseError(ParseError{Stage: stage, Code: code})
	}
}

// OnParseError registers a diagnostic callback fired for every
// spec-labeled parse-error site, across every stage. It does not affect
// recovery, which is unconditional (spec.md §7).
func (p *Pipeline) OnParseError(f func(ParseError)) { p.onParseError = f }

// Write feeds a chunk of bytes through all four stages. Calling Write
// repeatedly with arbitrarily split chunks produces byte-identical
// output to calling it once with the concatenation (spec.md §8.1,
// chunk-invariance).
func (p *Pipeline) Write(chunk []byte) {
	p.dec.Write(chunk)
}

// Finish signals end of input: flushes the decoder's trailing
// incomplete sequence (if any) and drives every stage to completion,
// finally emitting the tokenizer's EOF token and stopping tree
// construction.
func (p *Pipeline) Finish() {
	p.dec.Write(nil)
	p.tz.Write(nil, true)
}

// Document returns the DOM document built so far. Valid to call after
// Finish, or mid-stream for callers that want a partial tree.
func (p *Pipeline) Document() *dom.Document { return p.tb.Doc }

// Parse reads r to completion and returns the resulting Document.
// Parse errors (spec.md §7) are applied via HTML5's mandated recovery
// and never surface as a returned error; only an I/O failure from r
// does.
func Parse(r io.Reader) (*dom.Document, error) {
	p := NewPipeline()
	buf := make([]byte, 32*1024)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			chunk := make([]byte, n)
			copy(chunk, buf[:n])
			p.Write(chunk)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
	}
	p.Finish()
	return p.Document(), nil
}
