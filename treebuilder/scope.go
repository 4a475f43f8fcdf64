package treebuilder

// scope names the five scope predicates of spec.md §4.5.
type scope int

const (
	generalScope scope = iota
	listScope
	buttonScope
	tableScope
	selectScope
)

var generalScopeBoundary = map[string]bool{
	"applet": true, "caption": true, "html": true, "table": true,
	"td": true, "th": true, "marquee": true, "object": true,
}

// elementInScope walks the stack of open elements top-to-bottom,
// returning true on a match against matchTags, false on hitting a
// scope boundary first (spec.md §4.5 "scope predicates").
func (tb *TreeBuilder) elementInScope(s scope, matchTags ...string) bool {
	for i := len(tb.oe) - 1; i >= 0; i-- {
		name := tb.oe[i].TagName
		for _, t := range matchTags {
			if t == name {
				return true
			}
		}
		if isScopeBoundary(s, name) {
			return false
		}
	}
	return false
}

func isScopeBoundary(s scope, name string) bool {
	switch s {
	case generalScope:
		return generalScopeBoundary[name]
	case listScope:
		return generalScopeBoundary[name] || name == "ol" || name == "ul"
	case buttonScope:
		return generalScopeBoundary[name] || name == "button"
	case tableScope:
		return name == "html" || name == "table"
	case selectScope:
		return name != "optgroup" && name != "option"
	}
	return false
}

// popUntil pops the stack down to and including the highest element
// whose tag is in matchTags, provided it is in scope s. Returns whether
// such an element was found; leaves the stack unchanged otherwise.
func (tb *TreeBuilder) popUntil(s scope, matchTags ...string) bool {
	idx := -1
	for i := len(tb.oe) - 1; i >= 0; i-- {
		name := tb.oe[i].TagName
		matched := false
		for _, t := range matchTags {
			if t == name {
				matched = true
				break
			}
		}
		if matched {
			idx = i
			break
		}
		if isScopeBoundary(s, name) {
			break
		}
	}
	if idx == -1 {
		return false
	}
	tb.oe = tb.oe[:idx]
	return true
}
