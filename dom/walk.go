package dom

// Children returns an iterator (as a slice, for simplicity of use in
// tests and callers) over n's direct children.
func Children(n *Node) []*Node {
	var out []*Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, c)
	}
	return out
}

// Walk calls visit for every node in the subtree rooted at n, in tree
// (depth-first, pre-order) order, including n itself.
func Walk(n *Node, visit func(*Node)) {
	visit(n)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		Walk(c, visit)
	}
}

// HTMLCollection is a live view over the Element descendants of a root
// matching a tag name (spec.md §6: "a live collection iterable in tree
// order"). It holds no snapshot: every method re-walks the current tree,
// so mutations performed after the collection is obtained are reflected,
// the same way a held reference to a DOM HTMLCollection stays current.
type HTMLCollection struct {
	root *Node
	name string
}

// GetElementsByTagName returns a live collection of every Element
// descendant of root (not including root) whose tag name matches name,
// in tree order; "*" matches every element (spec.md §6).
func GetElementsByTagName(root *Node, name string) *HTMLCollection {
	return &HTMLCollection{root: root, name: name}
}

// Len reports the current number of matching elements.
func (c *HTMLCollection) Len() int {
	n := 0
	c.each(func(*Node) { n++ })
	return n
}

// Item returns the i'th matching element in tree order, or nil if i is
// out of range.
func (c *HTMLCollection) Item(i int) *Node {
	var found *Node
	idx := 0
	c.each(func(n *Node) {
		if found == nil && idx == i {
			found = n
		}
		idx++
	})
	return found
}

// All materializes every current match as a slice, for callers that
// want to range over what the collection holds right now.
func (c *HTMLCollection) All() []*Node {
	var out []*Node
	c.each(func(n *Node) { out = append(out, n) })
	return out
}

func (c *HTMLCollection) each(visit func(*Node)) {
	var walk func(n *Node)
	walk = func(n *Node) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Type == ElementNode && (c.name == "*" || ch.TagName == c.name) {
				visit(ch)
			}
			walk(ch)
		}
	}
	walk(c.root)
}
