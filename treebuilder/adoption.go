package treebuilder

import "github.com/nomovok-opensource/frenzy-html/dom"

// formattingTagNames are the elements the adoption agency algorithm and
// active-formatting list operate on (spec.md §4.5).
var formattingTagNames = map[string]bool{
	"a": true, "b": true, "big": true, "code": true, "em": true, "font": true,
	"i": true, "nobr": true, "s": true, "small": true, "strike": true,
	"strong": true, "tt": true, "u": true,
}

// adoptionAgency implements spec.md §4.5's adoption agency algorithm for
// an end tag matching tagName, one of formattingTagNames: up to 8 outer
// iterations locate the formatting element and its furthest special
// descendant, then runInnerLoop walks the stack of open elements between
// them, cloning and re-parenting as it goes, before the furthest block
// adopts a clone of the formatting element and the active formatting
// list / stack of open elements are both updated to point at it.
func (tb *TreeBuilder) adoptionAgency(tagName string) {
	if cur := tb.current(); cur.TagName == tagName && tb.afeIndex(cur) == -1 {
		tb.pop()
		return
	}

	for outer := 0; outer < 8; outer++ {
		afePos := tb.afeLastBeforeMarker(tagName)
		if afePos == -1 {
			tb.endTagOther(tagName)
			return
		}
		fe := tb.afe[afePos].el

		fePos := tb.oeIndex(fe)
		if fePos == -1 {
			tb.afeRemove(fe)
			return
		}
		if !tb.elementInScope(generalScope, tagName) {
			return
		}

		furthest := tb.firstSpecialAbove(fePos)
		if furthest == nil {
			tb.popThrough(fe)
			tb.afeRemove(fe)
			return
		}

		ancestor := tb.Doc.Node
		if fePos > 0 {
			ancestor = tb.oe[fePos-1]
		}

		below, bookmark := tb.runInnerLoop(fe, furthest, afePos)
		tb.attachBelowAncestor(ancestor, below)

		clone := dom.CloneNode(fe, false)
		migrateChildren(furthest, clone)
		dom.AppendChild(furthest, clone)

		if old := tb.afeIndex(fe); old != -1 && old < bookmark {
			bookmark--
		}
		tb.afeRemove(fe)
		tb.afe = insertAFE(tb.afe, bookmark, afeEntry{el: clone})

		tb.oeRemove(fe)
		tb.oe = insertNode(tb.oe, tb.oeIndex(furthest)+1, clone)
	}
}

// firstSpecialAbove scans the stack of open elements upward from fePos
// (exclusive) toward the top, returning the first element in the
// special category — the "furthest block" of spec.md §4.5.
func (tb *TreeBuilder) firstSpecialAbove(fePos int) *dom.Node {
	for i := fePos + 1; i < len(tb.oe); i++ {
		if dom.IsSpecial(tb.oe[i]) {
			return tb.oe[i]
		}
	}
	return nil
}

// popThrough pops the stack of open elements down to and including fe.
func (tb *TreeBuilder) popThrough(fe *dom.Node) {
	for {
		if tb.pop() == fe {
			return
		}
	}
}

// runInnerLoop walks the stack of open elements from furthest toward fe,
// cloning every intervening node once past the third iteration leaves it
// out of the active formatting list (or dropping it from the stack
// entirely if it was never in that list), re-parenting the node being
// carried down (below) into each successive clone. It returns the final
// carried node and the (possibly shifted) bookmark position for where
// the eventual formatting-element clone gets reinserted into the active
// formatting list.
func (tb *TreeBuilder) runInnerLoop(fe, furthest *dom.Node, bookmark int) (below *dom.Node, newBookmark int) {
	below = furthest
	pos := tb.oeIndex(below)
	iter := 0
	for {
		iter++
		pos--
		above := tb.oe[pos]
		if above == fe {
			return below, bookmark
		}

		afePos := tb.afeIndex(above)
		switch {
		case iter > 3 && afePos != -1:
			tb.afeRemove(above)
			if afePos <= bookmark {
				bookmark--
			}
			continue
		case afePos == -1:
			tb.oeRemove(above)
			continue
		}

		clone := dom.CloneNode(above, false)
		tb.afe[afePos].el = clone
		tb.oe[tb.oeIndex(above)] = clone
		if below == furthest {
			bookmark = tb.afeIndex(clone) + 1
		}
		detach(below)
		dom.AppendChild(clone, below)
		below = clone
	}
}

// attachBelowAncestor removes node from its current parent (if any) and
// inserts it under ancestor, foster-parenting when ancestor is a table
// structural element (spec.md §4.5 "insert last node").
func (tb *TreeBuilder) attachBelowAncestor(ancestor, node *dom.Node) {
	detach(node)
	switch ancestor.TagName {
	case "table", "tbody", "tfoot", "thead", "tr":
		tb.fosterParent(node)
	default:
		dom.AppendChild(ancestor, node)
	}
}

func detach(n *dom.Node) {
	if n.Parent != nil {
		dom.RemoveChild(n.Parent, n)
	}
}

// migrateChildren moves every child of from onto the end of to, in
// order.
func migrateChildren(from, to *dom.Node) {
	for c := from.FirstChild; c != nil; {
		next := c.NextSibling
		dom.RemoveChild(from, c)
		dom.AppendChild(to, c)
		c = next
	}
}

func insertAFE(s []afeEntry, i int, e afeEntry) []afeEntry {
	s = append(s, afeEntry{})
	copy(s[i+1:], s[i:])
	s[i] = e
	return s
}

func insertNode(s []*dom.Node, i int, n *dom.Node) []*dom.Node {
	s = append(s, nil)
	copy(s[i+1:], s[i:])
	s[i] = n
	return s
}

// endTagOther performs "any other end tag" handling for inBodyMode: pop
// elements until one matching tagName is popped, or a special element
// blocks the search (spec.md §4.5).
func (tb *TreeBuilder) endTagOther(tagName string) {
	for i := len(tb.oe) - 1; i >= 0; i-- {
		n := tb.oe[i]
		if n.TagName == tagName {
			tb.generateImpliedEndTags(tagName)
			tb.oe = tb.oe[:i]
			return
		}
		if dom.IsSpecial(n) {
			return
		}
	}
}
