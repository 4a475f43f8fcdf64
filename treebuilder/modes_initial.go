package treebuilder

import (
	"github.com/nomovok-opensource/frenzy-html/dom"
	"github.com/nomovok-opensource/frenzy-html/token"
)

// initialMode implements the INITIAL insertion mode (spec.md §4.5):
// collects a DOCTYPE if one comes first (no quirks-mode handling is
// done either way), then moves on to beforeHTMLMode, reprocessing any
// other token there.
func initialMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case isWhitespaceToken(tok):
		return true
	case tok.Type == token.Comment:
		tb.insertComment(tok.CommentText)
		return true
	case tok.Type == token.Doctype:
		dt := dom.NewDocumentType(tok.DoctypeName, tok.PublicID, tok.SystemID)
		dom.AppendChild(tb.Doc.Node, dt)
		tb.mode = beforeHTMLMode
		return true
	default:
		tb.mode = beforeHTMLMode
		return false
	}
}

// beforeHTMLMode implements BEFORE HTML.
func beforeHTMLMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case tok.Type == token.Doctype:
		tb.parseError("unexpected-doctype")
		return true
	case tok.Type == token.Comment:
		tb.insertComment(tok.CommentText)
		return true
	case isWhitespaceToken(tok):
		return true
	case tok.Type == token.StartTag && tok.TagName == "html":
		tb.insertElementForToken(tok)
		tb.mode = beforeHeadMode
		return true
	case tok.Type == token.EndTag && !(tok.TagName == "head" || tok.TagName == "body" || tok.TagName == "html" || tok.TagName == "br"):
		tb.parseError("unexpected-end-tag")
		return true
	default:
		tb.insertImpliedElement("html")
		tb.mode = beforeHeadMode
		return false
	}
}

// beforeHeadMode implements BEFORE HEAD.
func beforeHeadMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case isWhitespaceToken(tok):
		return true
	case tok.Type == token.Comment:
		tb.insertComment(tok.CommentText)
		return true
	case tok.Type == token.Doctype:
		tb.parseError("unexpected-doctype")
		return true
	case tok.Type == token.StartTag && tok.TagName == "html":
		return inBodyMode(tb, tok)
	case tok.Type == token.StartTag && tok.TagName == "head":
		tb.head = tb.insertElementForToken(tok)
		tb.mode = inHeadMode
		return true
	case tok.Type == token.EndTag && !(tok.TagName == "head" || tok.TagName == "body" || tok.TagName == "html" || tok.TagName == "br"):
		tb.parseError("unexpected-end-tag")
		return true
	default:
		tb.head = tb.insertImpliedElement("head")
		tb.mode = inHeadMode
		return false
	}
}

// inHeadMode implements IN HEAD.
func inHeadMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case isWhitespaceToken(tok):
		tb.insertText(string(tok.CP))
		return true
	case tok.Type == token.Comment:
		tb.insertComment(tok.CommentText)
		return true
	case tok.Type == token.Doctype:
		tb.parseError("unexpected-doctype")
		return true
	case tok.Type == token.StartTag && tok.TagName == "html":
		return inBodyMode(tb, tok)
	case tok.Type == token.StartTag && (tok.TagName == "base" || tok.TagName == "basefont" ||
		tok.TagName == "bgsound" || tok.TagName == "link"):
		tb.insertElementForToken(tok)
		tb.pop()
		return true
	case tok.Type == token.StartTag && tok.TagName == "meta":
		tb.insertElementForToken(tok)
		tb.pop()
		return true
	case tok.Type == token.StartTag && tok.TagName == "title":
		tb.insertElementForToken(tok)
		return true
	case tok.Type == token.StartTag && (tok.TagName == "noframes" || tok.TagName == "style"):
		tb.insertElementForToken(tok)
		return true
	case tok.Type == token.StartTag && tok.TagName == "noscript":
		tb.insertElementForToken(tok)
		tb.mode = inHeadNoscriptMode
		return true
	case tok.Type == token.StartTag && tok.TagName == "script":
		tb.insertElementForToken(tok)
		return true
	case tok.Type == token.EndTag && tok.TagName == "head":
		tb.pop()
		tb.mode = afterHeadMode
		return true
	case tok.Type == token.EndTag && (tok.TagName == "body" || tok.TagName == "html" || tok.TagName == "br"):
		tb.pop()
		tb.mode = afterHeadMode
		return false
	case tok.Type == token.StartTag && tok.TagName == "head":
		tb.parseError("unexpected-start-tag")
		return true
	case tok.Type == token.EndTag:
		tb.parseError("unexpected-end-tag")
		return true
	default:
		tb.pop()
		tb.mode = afterHeadMode
		return false
	}
}

// inHeadNoscriptMode implements IN HEAD NOSCRIPT.
func inHeadNoscriptMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case tok.Type == token.Doctype:
		tb.parseError("unexpected-doctype")
		return true
	case tok.Type == token.StartTag && tok.TagName == "html":
		return inBodyMode(tb, tok)
	case tok.Type == token.EndTag && tok.TagName == "noscript":
		tb.pop()
		tb.mode = inHeadMode
		return true
	case isWhitespaceToken(tok), tok.Type == token.Comment:
		return inHeadMode(tb, tok)
	case tok.Type == token.StartTag && (tok.TagName == "basefont" || tok.TagName == "bgsound" ||
		tok.TagName == "link" || tok.TagName == "meta" || tok.TagName == "noframes" || tok.TagName == "style"):
		return inHeadMode(tb, tok)
	case tok.Type == token.EndTag && tok.TagName == "br":
		tb.pop()
		tb.mode = inHeadMode
		return false
	case tok.Type == token.StartTag && (tok.TagName == "head" || tok.TagName == "noscript"):
		tb.parseError("unexpected-start-tag")
		return true
	case tok.Type == token.EndTag:
		tb.parseError("unexpected-end-tag")
		return true
	default:
		tb.pop()
		tb.mode = inHeadMode
		return false
	}
}

// afterHeadMode implements AFTER HEAD.
func afterHeadMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case isWhitespaceToken(tok):
		tb.insertText(string(tok.CP))
		return true
	case tok.Type == token.Comment:
		tb.insertComment(tok.CommentText)
		return true
	case tok.Type == token.Doctype:
		tb.parseError("unexpected-doctype")
		return true
	case tok.Type == token.StartTag && tok.TagName == "html":
		return inBodyMode(tb, tok)
	case tok.Type == token.StartTag && tok.TagName == "body":
		tb.insertElementForToken(tok)
		tb.frameSetOK = false
		tb.mode = inBodyMode
		return true
	case tok.Type == token.StartTag && tok.TagName == "frameset":
		tb.insertElementForToken(tok)
		tb.mode = inFramesetMode
		return true
	case tok.Type == token.StartTag && (tok.TagName == "base" || tok.TagName == "basefont" ||
		tok.TagName == "bgsound" || tok.TagName == "link" || tok.TagName == "meta" ||
		tok.TagName == "noframes" || tok.TagName == "script" || tok.TagName == "style" ||
		tok.TagName == "template" || tok.TagName == "title"):
		tb.parseError("unexpected-start-tag-after-head")
		if tb.head != nil {
			tb.push(tb.head)
		}
		inHeadMode(tb, tok)
		if tb.head != nil {
			tb.oeRemove(tb.head)
		}
		return true
	case tok.Type == token.StartTag && tok.TagName == "head":
		tb.parseError("unexpected-start-tag")
		return true
	case tok.Type == token.EndTag && !(tok.TagName == "body" || tok.TagName == "html" || tok.TagName == "br"):
		tb.parseError("unexpected-end-tag")
		return true
	default:
		tb.insertImpliedElement("body")
		tb.mode = inBodyMode
		return false
	}
}
