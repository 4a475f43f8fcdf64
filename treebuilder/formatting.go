package treebuilder

import "github.com/nomovok-opensource/frenzy-html/dom"

// pushMarker appends the special marker sentinel to the active
// formatting list (spec.md §3.5), used when entering applet/object/
// marquee/td/th/caption.
func (tb *TreeBuilder) pushMarker() { tb.afe = append(tb.afe, afeEntry{marker: true}) }

func (tb *TreeBuilder) afeIndex(n *dom.Node) int {
	for i := len(tb.afe) - 1; i >= 0; i-- {
		if !tb.afe[i].marker && tb.afe[i].el == n {
			return i
		}
	}
	return -1
}

func (tb *TreeBuilder) afeRemove(n *dom.Node) {
	i := tb.afeIndex(n)
	if i == -1 {
		return
	}
	tb.afe = append(tb.afe[:i], tb.afe[i+1:]...)
}

// clearActiveFormattingElements pops entries up to and including the
// last marker (spec.md §4.5, entering a table cell/caption etc.).
func (tb *TreeBuilder) clearActiveFormattingElements() {
	for len(tb.afe) > 0 {
		e := tb.afe[len(tb.afe)-1]
		tb.afe = tb.afe[:len(tb.afe)-1]
		if e.marker {
			return
		}
	}
}

// addFormattingElement inserts el (just created from tok) into the
// active formatting list, applying the Noah's Ark clause: at most
// three identical (same tag, same attributes) elements since the last
// marker survive (spec.md §4.5).
func (tb *TreeBuilder) addFormattingElement(el *dom.Node) {
	identical := 0
	for i := len(tb.afe) - 1; i >= 0; i-- {
		e := tb.afe[i]
		if e.marker {
			break
		}
		if e.el.TagName != el.TagName || len(e.el.Attrs) != len(el.Attrs) {
			continue
		}
		if !sameAttributes(e.el, el) {
			continue
		}
		identical++
		if identical >= 3 {
			tb.afeRemove(e.el)
		}
	}
	tb.afe = append(tb.afe, afeEntry{el: el})
}

func sameAttributes(a, b *dom.Node) bool {
	for _, x := range a.Attrs {
		v, ok := dom.GetAttribute(b, x.AttrName)
		if !ok || v != x.TextContent() {
			return false
		}
	}
	return true
}

// reconstructActiveFormattingElements re-inserts formatting elements
// that have fallen off the stack of open elements (spec.md §4.5),
// invoked lazily at the start of most IN_BODY token handling.
func (tb *TreeBuilder) reconstructActiveFormattingElements() {
	if len(tb.afe) == 0 {
		return
	}
	last := tb.afe[len(tb.afe)-1]
	if last.marker || tb.oeIndex(last.el) != -1 {
		return
	}
	i := len(tb.afe) - 1
	for {
		if i == 0 {
			i = -1
			break
		}
		i--
		e := tb.afe[i]
		if e.marker || tb.oeIndex(e.el) != -1 {
			break
		}
	}
	for {
		i++
		clone := dom.CloneNode(tb.afe[i].el, false)
		tb.insertNode(clone)
		tb.push(clone)
		tb.afe[i].el = clone
		if i == len(tb.afe)-1 {
			break
		}
	}
}
