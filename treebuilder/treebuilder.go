// Package treebuilder implements the tree constructor (spec.md §4.5):
// the 22-insertion-mode state machine that consumes Tokens and mutates
// a dom.Document. Structure and naming are grounded on the teacher's
// chtml/html/parse.go parser, generalized from golang.org/x/net/html.Node
// to this module's own dom package and from html.Token to token.Token.
package treebuilder

import (
	"github.com/nomovok-opensource/frenzy-html/dom"
	"github.com/nomovok-opensource/frenzy-html/token"
)

// afeEntry is one slot of the list of active formatting elements: either
// an Element or a marker. The start-tag token that created the element
// is not stored.
type afeEntry struct {
	marker bool
	el     *dom.Node
}

// insertionMode is the state transition function for one of the 22
// modes (spec.md §3.5/§4.5). It returns whether it consumed the token;
// false means "reprocess in a different mode", which callers implement
// by changing mode and calling again.
type insertionMode func(tb *TreeBuilder, tok token.Token) bool

// TreeBuilder holds the tree-constructor state of spec.md §3.5.
type TreeBuilder struct {
	Doc *dom.Document

	oe  []*dom.Node // stack of open elements
	afe []afeEntry  // list of active formatting elements

	head *dom.Node
	form *dom.Node

	pendingTableChars       []string
	pendingTableNonWhitespace bool

	frameSetOK        bool
	ignoreNextLF      bool
	forceFosterParent bool
	stop              bool

	mode         insertionMode
	originalMode insertionMode

	// setTokenizerState, if set, is called whenever a start tag should
	// switch the tokenizer out of DATA (spec.md §4.4 "state changes
	// driven by the tree constructor"): RCDATA/RAWTEXT for title/
	// textarea/style/script etc.
	setTokenizerState func(rawtext bool, rcdata bool, tagName string)

	onParseError func(code string)
}

// New returns a TreeBuilder starting in INITIAL mode, operating on a
// fresh empty Document.
func New() *TreeBuilder {
	tb := &TreeBuilder{Doc: dom.NewDocument(), frameSetOK: true}
	tb.mode = initialMode
	return tb
}

// OnSetTokenizerState registers the callback used to drive the
// tokenizer's RCDATA/RAWTEXT state changes.
func (tb *TreeBuilder) OnSetTokenizerState(f func(rawtext, rcdata bool, tagName string)) {
	tb.setTokenizerState = f
}

// OnParseError registers a diagnostic callback for tree-construction
// parse-error sites (spec.md §7).
func (tb *TreeBuilder) OnParseError(f func(code string)) { tb.onParseError = f }

func (tb *TreeBuilder) parseError(code string) {
	if tb.onParseError != nil {
		tb.onParseError(code)
	}
}

// Stopped reports whether tree construction has finished (spec.md §5).
func (tb *TreeBuilder) Stopped() bool { return tb.stop }

// ProcessToken feeds one token through the current insertion mode,
// reprocessing as many times as the mode chain requests (spec.md §4.5
// "reprocess the token").
func (tb *TreeBuilder) ProcessToken(tok token.Token) {
	if tb.stop {
		return
	}
	if tok.Type == token.EOF {
		// Termination: set stop once a terminal mode accepts EOF without
		// asking to reprocess elsewhere.
		for !tb.mode(tb, tok) {
		}
		tb.stop = true
		return
	}
	for !tb.mode(tb, tok) {
	}
}

// --- stack of open elements -------------------------------------------

func (tb *TreeBuilder) push(n *dom.Node) { tb.oe = append(tb.oe, n) }

func (tb *TreeBuilder) pop() *dom.Node {
	n := tb.oe[len(tb.oe)-1]
	tb.oe = tb.oe[:len(tb.oe)-1]
	return n
}

// current returns the current node (top of stack), or the Document if
// the stack is empty.
func (tb *TreeBuilder) current() *dom.Node {
	if len(tb.oe) == 0 {
		return tb.Doc.Node
	}
	return tb.oe[len(tb.oe)-1]
}

func (tb *TreeBuilder) oeIndex(n *dom.Node) int {
	for i := len(tb.oe) - 1; i >= 0; i-- {
		if tb.oe[i] == n {
			return i
		}
	}
	return -1
}

func (tb *TreeBuilder) oeContains(name string) bool {
	for _, n := range tb.oe {
		if n.TagName == name {
			return true
		}
	}
	return false
}

func (tb *TreeBuilder) oeRemove(n *dom.Node) {
	i := tb.oeIndex(n)
	if i == -1 {
		return
	}
	tb.oe = append(tb.oe[:i], tb.oe[i+1:]...)
}

// --- insertion -----------------------------------------------------

// insertElementForToken implements spec.md §4.5 "insert element for
// token": create an Element, copy attributes, insert at the
// appropriate insertion position (foster-parented if forced and the
// current node is table-structural), push on the stack.
func (tb *TreeBuilder) insertElementForToken(tok token.Token) *dom.Node {
	el := tb.Doc.CreateElement(tok.TagName)
	for _, a := range tok.Attrs {
		dom.SetAttribute(el, a.Name, a.Value)
	}
	tb.insertNode(el)
	tb.push(el)

	if tb.setTokenizerState != nil {
		if dom.WantsRAWTEXT(tok.TagName) {
			tb.setTokenizerState(true, false, tok.TagName)
		} else if dom.WantsRCDATA(tok.TagName) {
			tb.setTokenizerState(false, true, tok.TagName)
		}
	}
	return el
}

// insertNode places n at the appropriate insertion position without
// touching the stack of open elements (used for elements, text and
// comments alike).
func (tb *TreeBuilder) insertNode(n *dom.Node) {
	if tb.shouldFosterParent() {
		tb.fosterParent(n)
		return
	}
	dom.AppendChild(tb.current(), n)
}

func (tb *TreeBuilder) shouldFosterParent() bool {
	if !tb.forceFosterParent {
		return false
	}
	switch tb.current().TagName {
	case "table", "tbody", "tfoot", "thead", "tr":
		return true
	}
	return false
}

// fosterParent implements spec.md §4.5 "foster parenting".
func (tb *TreeBuilder) fosterParent(n *dom.Node) {
	var table *dom.Node
	var tableIdx int
	for i := len(tb.oe) - 1; i >= 0; i-- {
		if tb.oe[i].TagName == "table" {
			table = tb.oe[i]
			tableIdx = i
			break
		}
	}
	if table == nil {
		dom.AppendChild(tb.oe[0], n)
		return
	}

	var parent *dom.Node
	if table.Parent != nil {
		parent = table.Parent
	} else if tableIdx > 0 {
		parent = tb.oe[tableIdx-1]
	} else {
		parent = tb.oe[0]
	}

	var prev *dom.Node
	if table.Parent != nil {
		prev = table.PrevSibling
	} else {
		prev = parent.LastChild
	}
	if prev != nil && prev.Type == dom.TextNode && n.Type == dom.TextNode {
		prev.Data += n.Data
		return
	}

	if table.Parent == parent {
		dom.InsertBefore(parent, n, table)
	} else {
		dom.AppendChild(parent, n)
	}
}

// insertText adds text to the preceding sibling if it's a Text node,
// otherwise inserts a new Text node, foster-parenting if required.
func (tb *TreeBuilder) insertText(s string) {
	if s == "" {
		return
	}
	if tb.shouldFosterParent() {
		tb.fosterParent(dom.NewText(s))
		return
	}
	cur := tb.current()
	if last := cur.LastChild; last != nil && last.Type == dom.TextNode {
		last.Data += s
		return
	}
	dom.AppendChild(cur, dom.NewText(s))
}

func (tb *TreeBuilder) insertComment(text string) {
	tb.insertNode(dom.NewComment(text))
}

// --- generate implied end tags --------------------------------------

var impliedEndTagNames = map[string]bool{
	"dd": true, "dt": true, "li": true, "option": true, "optgroup": true,
	"p": true, "rp": true, "rt": true,
}

// generateImpliedEndTags pops elements while the current node's local
// name is in the implied-end-tag set, skipping one named exception if
// given (spec.md §4.5).
func (tb *TreeBuilder) generateImpliedEndTags(except string) {
	for len(tb.oe) > 0 {
		name := tb.current().TagName
		if !impliedEndTagNames[name] || name == except {
			return
		}
		tb.pop()
	}
}

// --- reset insertion mode --------------------------------------------

// resetInsertionMode implements spec.md §4.5 "reset insertion mode".
func (tb *TreeBuilder) resetInsertionMode() {
	for i := len(tb.oe) - 1; i >= 0; i-- {
		n := tb.oe[i]
		last := i == 0
		switch n.TagName {
		case "select":
			tb.mode = inSelectMode
			return
		case "tr":
			tb.mode = inRowMode
			return
		case "tbody", "thead", "tfoot":
			tb.mode = inTableBodyMode
			return
		case "td", "th":
			tb.mode = inCellMode
			return
		case "caption":
			tb.mode = inCaptionMode
			return
		case "colgroup":
			tb.mode = inColumnGroupMode
			return
		case "table":
			tb.mode = inTableMode
			return
		case "head":
			tb.mode = inBodyMode
			return
		case "body":
			tb.mode = inBodyMode
			return
		case "frameset":
			tb.mode = inFramesetMode
			return
		case "html":
			tb.mode = beforeHeadMode
			return
		}
		if last {
			tb.mode = inBodyMode
			return
		}
	}
	tb.mode = inBodyMode
}
