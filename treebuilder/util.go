package treebuilder

import (
	"github.com/nomovok-opensource/frenzy-html/dom"
	"github.com/nomovok-opensource/frenzy-html/token"
)

// insertImpliedElement inserts a plain element with no attributes, not
// originating from any token (e.g. the implied <html>/<head>/<body> of
// spec.md §4.5's "initial"/"before html"/"before head" steps).
func (tb *TreeBuilder) insertImpliedElement(name string) *dom.Node {
	el := tb.Doc.CreateElement(name)
	tb.insertNode(el)
	tb.push(el)
	return el
}

func isWhitespace(r rune) bool {
	switch r {
	case '\t', '\n', '\f', '\r', ' ':
		return true
	}
	return false
}

// isWhitespaceToken reports whether tok is a Character token whose rune
// is whitespace; most modes branch on this per character token since the
// tokenizer emits one Character token per code point.
func isWhitespaceToken(tok token.Token) bool {
	return tok.Type == token.Character && isWhitespace(tok.CP)
}

func hasAttr(tok token.Token, name string) bool {
	for _, a := range tok.Attrs {
		if a.Name == name {
			return true
		}
	}
	return false
}
