package treebuilder

import "github.com/nomovok-opensource/frenzy-html/token"

// inSelectMode implements IN SELECT.
func inSelectMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case tok.Type == token.Character:
		if tok.CP == 0 {
			tb.parseError("unexpected-null-character")
			return true
		}
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

	case tok.Type == token.StartTag && tok.TagName == "option":
		if tb.current().TagName == "option" {
			tb.pop()
		}
		tb.insertElementForToken(tok)
		return true

	case tok.Type == token.StartTag && tok.TagName == "optgroup":
		if tb.current().TagName == "option" {
			tb.pop()
		}
		if tb.current().TagName == "optgroup" {
			tb.pop()
		}
		tb.insertElementForToken(tok)
		return true

	case tok.Type == token.EndTag && tok.TagName == "optgroup":
		if len(tb.oe) >= 2 && tb.oe[len(tb.oe)-1].TagName == "option" && tb.oe[len(tb.oe)-2].TagName == "optgroup" {
			tb.pop()
		}
		if tb.current().TagName == "optgroup" {
			tb.pop()
		} else {
			tb.parseError("unexpected-end-tag-optgroup")
		}
		return true

	case tok.Type == token.EndTag && tok.TagName == "option":
		if tb.current().TagName == "option" {
			tb.pop()
		} else {
			tb.parseError("unexpected-end-tag-option")
		}
		return true

	case tok.Type == token.EndTag && tok.TagName == "select":
		if !tb.elementInScope(selectScope, "select") {
			tb.parseError("unexpected-end-tag-select")
			return true
		}
		tb.popUntil(generalScope, "select")
		tb.resetInsertionMode()
		return true

	case tok.Type == token.StartTag && tok.TagName == "select":
		tb.parseError("nested-select")
		tb.popUntil(generalScope, "select")
		tb.resetInsertionMode()
		return true

	case tok.Type == token.StartTag && (tok.TagName == "input" || tok.TagName == "keygen" || tok.TagName == "textarea"):
		tb.parseError("unexpected-start-tag-in-select")
		if !tb.elementInScope(selectScope, "select") {
			return true
		}
		tb.popUntil(generalScope, "select")
		tb.resetInsertionMode()
		return false

	case tok.Type == token.StartTag && (tok.TagName == "script" || tok.TagName == "template"),
		tok.Type == token.EndTag && tok.TagName == "template":
		return inHeadMode(tb, tok)

	case tok.Type == token.EOF:
		return inBodyMode(tb, tok)

	default:
		tb.parseError("unexpected-token-in-select")
		return true
	}
}

// inSelectInTableMode implements IN SELECT IN TABLE.
func inSelectInTableMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case tok.Type == token.StartTag && (tok.TagName == "caption" || tok.TagName == "table" ||
		tok.TagName == "tbody" || tok.TagName == "tfoot" || tok.TagName == "thead" ||
		tok.TagName == "tr" || tok.TagName == "td" || tok.TagName == "th"):
		tb.parseError("unexpected-start-tag-in-select-in-table")
		tb.popUntil(generalScope, "select")
		tb.resetInsertionMode()
		return false

	case tok.Type == token.EndTag && (tok.TagName == "caption" || tok.TagName == "table" ||
		tok.TagName == "tbody" || tok.TagName == "tfoot" || tok.TagName == "thead" ||
		tok.TagName == "tr" || tok.TagName == "td" || tok.TagName == "th"):
		if !tb.elementInScope(tableScope, tok.TagName) {
			tb.parseError("unexpected-end-tag-in-select-in-table")
			return true
		}
		tb.popUntil(generalScope, "select")
		tb.resetInsertionMode()
		return false

	default:
		return inSelectMode(tb, tok)
	}
}
