package treebuilder

import (
	"github.com/nomovok-opensource/frenzy-html/token"
)

// anythingElseInTable implements the "anything else" fallback shared by
// several table-context modes: process as if in body, but with foster
// parenting forced on for text/elements that aren't table-structural
// (spec.md §4.5 "foster parenting").
func anythingElseInTable(tb *TreeBuilder, tok token.Token) bool {
	tb.parseError("unexpected-token-in-table")
	saved := tb.forceFosterParent
	tb.forceFosterParent = true
	defer func() { tb.forceFosterParent = saved }()
	return inBodyMode(tb, tok)
}

// inTableMode implements IN TABLE (spec.md §4.5), including pending
// table character buffering via inTableTextMode.
func inTableMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case tok.Type == token.Character && tableTextContext(tb.current().TagName):
		tb.pendingTableChars = nil
		tb.pendingTableNonWhitespace = false
		tb.originalMode = tb.mode
		tb.mode = inTableTextMode
		return false

	case tok.Type == token.Comment:
		tb.insertComment(tok.CommentText)
		return true

	case tok.Type == token.Doctype:
		tb.parseError("unexpected-doctype")
		return true

	case tok.Type == token.StartTag && tok.TagName == "caption":
		tb.clearStackBackToTableContext()
		tb.pushMarker()
		tb.insertElementForToken(tok)
		tb.mode = inCaptionMode
		return true

	case tok.Type == token.StartTag && tok.TagName == "colgroup":
		tb.clearStackBackToTableContext()
		tb.insertElementForToken(tok)
		tb.mode = inColumnGroupMode
		return true

	case tok.Type == token.StartTag && tok.TagName == "col":
		tb.clearStackBackToTableContext()
		tb.insertImpliedElement("colgroup")
		tb.mode = inColumnGroupMode
		return false

	case tok.Type == token.StartTag && (tok.TagName == "tbody" || tok.TagName == "tfoot" || tok.TagName == "thead"):
		tb.clearStackBackToTableContext()
		tb.insertElementForToken(tok)
		tb.mode = inTableBodyMode
		return true

	case tok.Type == token.StartTag && (tok.TagName == "td" || tok.TagName == "th" || tok.TagName == "tr"):
		tb.clearStackBackToTableContext()
		tb.insertImpliedElement("tbody")
		tb.mode = inTableBodyMode
		return false

	case tok.Type == token.StartTag && tok.TagName == "table":
		tb.parseError("nested-table")
		if !tb.elementInScope(tableScope, "table") {
			return true
		}
		tb.popUntil(tableScope, "table")
		tb.resetInsertionMode()
		return false

	case tok.Type == token.EndTag && tok.TagName == "table":
		if !tb.elementInScope(tableScope, "table") {
			tb.parseError("unexpected-end-tag-table")
			return true
		}
		tb.popUntil(tableScope, "table")
		tb.resetInsertionMode()
		return true

	case tok.Type == token.EndTag && (tok.TagName == "body" || tok.TagName == "caption" ||
		tok.TagName == "col" || tok.TagName == "colgroup" || tok.TagName == "html" ||
		tok.TagName == "tbody" || tok.TagName == "td" || tok.TagName == "tfoot" ||
		tok.TagName == "th" || tok.TagName == "thead" || tok.TagName == "tr"):
		tb.parseError("unexpected-end-tag-in-table")
		return true

	case tok.Type == token.StartTag && (tok.TagName == "style" || tok.TagName == "script" ||
		tok.TagName == "template"):
		return inHeadMode(tb, tok)

	case tok.Type == token.StartTag && tok.TagName == "input":
		if t, _ := getAttrValue(tok, "type"); t != "hidden" {
			return anythingElseInTable(tb, tok)
		}
		tb.parseError("unexpected-hidden-input-in-table")
		tb.insertElementForToken(tok)
		tb.pop()
		return true

	case tok.Type == token.StartTag && tok.TagName == "form":
		tb.parseError("unexpected-form-in-table")
		if tb.form == nil && !tb.oeContains("template") {
			el := tb.insertElementForToken(tok)
			tb.form = el
			tb.pop()
		}
		return true

	case tok.Type == token.EOF:
		return inBodyMode(tb, tok)

	default:
		return anythingElseInTable(tb, tok)
	}
}

func getAttrValue(tok token.Token, name string) (string, bool) {
	for _, a := range tok.Attrs {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

func tableTextContext(tagName string) bool {
	switch tagName {
	case "table", "tbody", "tfoot", "thead", "tr":
		return true
	}
	return false
}

// clearStackBackToTableContext pops until the current node is a table,
// template or html element (spec.md §4.5).
func (tb *TreeBuilder) clearStackBackToTableContext() {
	for len(tb.oe) > 0 {
		switch tb.current().TagName {
		case "table", "template", "html":
			return
		}
		tb.pop()
	}
}

func (tb *TreeBuilder) clearStackBackToTableBodyContext() {
	for len(tb.oe) > 0 {
		switch tb.current().TagName {
		case "tbody", "tfoot", "thead", "template", "html":
			return
		}
		tb.pop()
	}
}

func (tb *TreeBuilder) clearStackBackToTableRowContext() {
	for len(tb.oe) > 0 {
		switch tb.current().TagName {
		case "tr", "template", "html":
			return
		}
		tb.pop()
	}
}

// inTableTextMode implements IN TABLE TEXT: buffers character tokens
// between <table>/<tbody>/<tr> and the next non-character token, then
// flushes them in one pass (spec.md §4.5 "pending table character
// tokens list").
func inTableTextMode(tb *TreeBuilder, tok token.Token) bool {
	if tok.Type == token.Character {
		if tok.CP == 0 {
			tb.parseError("unexpected-null-character")
			return true
		}
		tb.pendingTableChars = append(tb.pendingTableChars, string(tok.CP))
		if !isWhitespace(tok.CP) {
			tb.pendingTableNonWhitespace = true
		}
		return true
	}

	if tb.pendingTableNonWhitespace {
		for _, s := range tb.pendingTableChars {
			anythingElseInTable(tb, token.Token{Type: token.Character, CP: []rune(s)[0]})
		}
	} else {
		for _, s := range tb.pendingTableChars {
			tb.insertText(s)
		}
	}
	tb.pendingTableChars = nil
	tb.mode = tb.originalMode
	return false
}

// inCaptionMode implements IN CAPTION.
func inCaptionMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case tok.Type == token.EndTag && tok.TagName == "caption":
		if !tb.elementInScope(tableScope, "caption") {
			tb.parseError("unexpected-end-tag-caption")
			return true
		}
		tb.generateImpliedEndTags("")
		tb.popUntil(tableScope, "caption")
		tb.clearActiveFormattingElements()
		tb.mode = inTableMode
		return true

	case tok.Type == token.StartTag && (tok.TagName == "caption" || tok.TagName == "col" ||
		tok.TagName == "colgroup" || tok.TagName == "tbody" || tok.TagName == "td" ||
		tok.TagName == "tfoot" || tok.TagName == "th" || tok.TagName == "thead" || tok.TagName == "tr"),
		tok.Type == token.EndTag && tok.TagName == "table":
		if !tb.elementInScope(tableScope, "caption") {
			tb.parseError("unexpected-token-in-caption")
			return true
		}
		tb.popUntil(tableScope, "caption")
		tb.clearActiveFormattingElements()
		tb.mode = inTableMode
		return false

	case tok.Type == token.EndTag && (tok.TagName == "body" || tok.TagName == "col" ||
		tok.TagName == "colgroup" || tok.TagName == "html" || tok.TagName == "tbody" ||
		tok.TagName == "td" || tok.TagName == "tfoot" || tok.TagName == "th" ||
		tok.TagName == "thead" || tok.TagName == "tr"):
		tb.parseError("unexpected-end-tag-in-caption")
		return true

	default:
		return inBodyMode(tb, tok)
	}
}

// inColumnGroupMode implements IN COLUMN GROUP.
func inColumnGroupMode(tb *TreeBuilder, tok token.Token) bool {
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
	case tok.Type == token.StartTag && tok.TagName == "col":
		tb.insertElementForToken(tok)
		tb.pop()
		return true
	case tok.Type == token.EndTag && tok.TagName == "colgroup":
		if tb.current().TagName != "colgroup" {
			tb.parseError("unexpected-end-tag-colgroup")
			return true
		}
		tb.pop()
		tb.mode = inTableMode
		return true
	case tok.Type == token.EndTag && tok.TagName == "col":
		tb.parseError("unexpected-end-tag-col")
		return true
	case tok.Type == token.StartTag && tok.TagName == "template", tok.Type == token.EndTag && tok.TagName == "template":
		return inHeadMode(tb, tok)
	case tok.Type == token.EOF:
		return inBodyMode(tb, tok)
	default:
		if tb.current().TagName != "colgroup" {
			return true
		}
		tb.pop()
		tb.mode = inTableMode
		return false
	}
}

// inTableBodyMode implements IN TABLE BODY.
func inTableBodyMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case tok.Type == token.StartTag && tok.TagName == "tr":
		tb.clearStackBackToTableBodyContext()
		tb.insertElementForToken(tok)
		tb.mode = inRowMode
		return true

	case tok.Type == token.StartTag && (tok.TagName == "th" || tok.TagName == "td"):
		tb.parseError("unexpected-cell-in-table-body")
		tb.clearStackBackToTableBodyContext()
		tb.insertImpliedElement("tr")
		tb.mode = inRowMode
		return false

	case tok.Type == token.EndTag && (tok.TagName == "tbody" || tok.TagName == "tfoot" || tok.TagName == "thead"):
		if !tb.elementInScope(tableScope, tok.TagName) {
			tb.parseError("unexpected-end-tag")
			return true
		}
		tb.clearStackBackToTableBodyContext()
		tb.pop()
		tb.mode = inTableMode
		return true

	case tok.Type == token.StartTag && (tok.TagName == "caption" || tok.TagName == "col" ||
		tok.TagName == "colgroup" || tok.TagName == "tbody" || tok.TagName == "tfoot" ||
		tok.TagName == "thead"),
		tok.Type == token.EndTag && tok.TagName == "table":
		if !tb.elementInScope(tableScope, "tbody", "thead", "tfoot") {
			tb.parseError("unexpected-token-in-table-body")
			return true
		}
		tb.clearStackBackToTableBodyContext()
		tb.pop()
		tb.mode = inTableMode
		return false

	case tok.Type == token.EndTag && (tok.TagName == "body" || tok.TagName == "caption" ||
		tok.TagName == "col" || tok.TagName == "colgroup" || tok.TagName == "html" ||
		tok.TagName == "td" || tok.TagName == "th" || tok.TagName == "tr"):
		tb.parseError("unexpected-end-tag-in-table-body")
		return true

	default:
		return inTableMode(tb, tok)
	}
}

// inRowMode implements IN ROW.
func inRowMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case tok.Type == token.StartTag && (tok.TagName == "th" || tok.TagName == "td"):
		tb.clearStackBackToTableRowContext()
		tb.insertElementForToken(tok)
		tb.mode = inCellMode
		tb.pushMarker()
		return true

	case tok.Type == token.EndTag && tok.TagName == "tr":
		if !tb.elementInScope(tableScope, "tr") {
			tb.parseError("unexpected-end-tag-tr")
			return true
		}
		tb.clearStackBackToTableRowContext()
		tb.pop()
		tb.mode = inTableBodyMode
		return true

	case tok.Type == token.StartTag && (tok.TagName == "caption" || tok.TagName == "col" ||
		tok.TagName == "colgroup" || tok.TagName == "tbody" || tok.TagName == "tfoot" ||
		tok.TagName == "thead" || tok.TagName == "tr"),
		tok.Type == token.EndTag && tok.TagName == "table":
		if !tb.elementInScope(tableScope, "tr") {
			tb.parseError("unexpected-token-in-row")
			return true
		}
		tb.clearStackBackToTableRowContext()
		tb.pop()
		tb.mode = inTableBodyMode
		return false

	case tok.Type == token.EndTag && (tok.TagName == "tbody" || tok.TagName == "tfoot" || tok.TagName == "thead"):
		if !tb.elementInScope(tableScope, tok.TagName) || !tb.elementInScope(tableScope, "tr") {
			tb.parseError("unexpected-end-tag")
			return true
		}
		tb.clearStackBackToTableRowContext()
		tb.pop()
		tb.mode = inTableBodyMode
		return false

	case tok.Type == token.EndTag && (tok.TagName == "body" || tok.TagName == "caption" ||
		tok.TagName == "col" || tok.TagName == "colgroup" || tok.TagName == "html" ||
		tok.TagName == "td" || tok.TagName == "th"):
		tb.parseError("unexpected-end-tag-in-row")
		return true

	default:
		return inTableMode(tb, tok)
	}
}

// inCellMode implements IN CELL.
func inCellMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case tok.Type == token.EndTag && (tok.TagName == "td" || tok.TagName == "th"):
		if !tb.elementInScope(tableScope, tok.TagName) {
			tb.parseError("unexpected-end-tag")
			return true
		}
		tb.generateImpliedEndTags("")
		tb.popUntil(tableScope, tok.TagName)
		tb.clearActiveFormattingElements()
		tb.mode = inRowMode
		return true

	case tok.Type == token.StartTag && (tok.TagName == "caption" || tok.TagName == "col" ||
		tok.TagName == "colgroup" || tok.TagName == "tbody" || tok.TagName == "td" ||
		tok.TagName == "tfoot" || tok.TagName == "th" || tok.TagName == "thead" || tok.TagName == "tr"):
		if !tb.elementInScope(tableScope, "td", "th") {
			tb.parseError("unexpected-start-tag-in-cell")
			return true
		}
		tb.closeCell()
		return false

	case tok.Type == token.EndTag && (tok.TagName == "body" || tok.TagName == "caption" ||
		tok.TagName == "col" || tok.TagName == "colgroup" || tok.TagName == "html"):
		tb.parseError("unexpected-end-tag-in-cell")
		return true

	case tok.Type == token.EndTag && (tok.TagName == "table" || tok.TagName == "tbody" ||
		tok.TagName == "tfoot" || tok.TagName == "thead" || tok.TagName == "tr"):
		if !tb.elementInScope(tableScope, tok.TagName) {
			tb.parseError("unexpected-end-tag")
			return true
		}
		tb.closeCell()
		return false

	default:
		return inBodyMode(tb, tok)
	}
}

// closeCell implements "close the cell" (spec.md §4.5 IN CELL): close
// whichever of td/th is open and return to IN ROW.
func (tb *TreeBuilder) closeCell() {
	tb.generateImpliedEndTags("")
	tb.popUntil(tableScope, "td", "th")
	tb.clearActiveFormattingElements()
	tb.mode = inRowMode
}
