// Package dom implements the node hierarchy and mutation primitives the
// tree constructor operates on (spec.md §3.3/§3.4/§4.6): a minimal DOM,
// not a browser-complete one. Shape and naming follow the teacher's
// golang.org/x/net/html.Node (Parent/FirstChild/LastChild/PrevSibling/
// NextSibling, AppendChild/InsertBefore/RemoveChild), generalized to a
// distinct Document/Element/Attr/Text/Comment/DocumentType hierarchy
// with an explicit exception taxonomy and observer hooks.
package dom

import "golang.org/x/net/html/atom"

// NodeType discriminates the node kinds of spec.md §3.3.
type NodeType int

const (
	ElementNode NodeType = iota
	AttributeNode
	TextNode
	CommentNode
	DocumentNode
	DocumentTypeNode
	DocumentFragmentNode
	ProcessingInstructionNode
)

// observers holds the four synchronous mutation hooks (spec.md §6
// "Observer channel" / original dom/node.cpp).
type observers struct {
	onInsertedTo  []func(parent *Node)
	onRemovedFrom []func(parent *Node)
	onChildAdded  []func(child *Node)
	onChildRemoved []func(child *Node)
}

// Node is the common tree node. Only the fields relevant to Type are
// meaningful, mirroring token.Token's tagged-variant discipline.
type Node struct {
	Type NodeType

	Parent, FirstChild, LastChild, PrevSibling, NextSibling *Node
	OwnerDocument *Document

	// Element
	TagName string
	Kind    ElementKind
	Attrs   []*Node // Attribute nodes, in set_attribute order

	// Attribute
	AttrName        string
	AttrOwnerElement *Node

	// Text / Comment
	Data string

	// DocumentType
	DoctypeName, PublicID, SystemID string

	obs observers
}

// NewText, NewComment construct detached nodes not yet owned by any
// document; insertBefore adopts them.
func NewText(data string) *Node    { return &Node{Type: TextNode, Data: data} }
func NewComment(data string) *Node { return &Node{Type: CommentNode, Data: data} }

// NewDocumentType constructs a detached DocumentType node.
func NewDocumentType(name, publicID, systemID string) *Node {
	return &Node{Type: DocumentTypeNode, DoctypeName: name, PublicID: publicID, SystemID: systemID}
}

// AtomTagName returns the interned atom for n's tag name (spec.md §6
// domain stack). Tree construction itself compares tag names as
// strings and does not call it.
func (n *Node) AtomTagName() atom.Atom {
	return atom.Lookup([]byte(n.TagName))
}

// OnInsertedTo/OnRemovedFrom/OnChildAdded/OnChildRemoved register
// observer hooks (spec.md §6). Any number of subscribers may attach;
// the original dispatches to a single fixed observer, but the scripting
// and graphics hosts that would plug in here are out of this core's
// scope, so the hook surface accepts an open-ended subscriber list.
func (n *Node) OnInsertedTo(f func(parent *Node))   { n.obs.onInsertedTo = append(n.obs.onInsertedTo, f) }
func (n *Node) OnRemovedFrom(f func(parent *Node))  { n.obs.onRemovedFrom = append(n.obs.onRemovedFrom, f) }
func (n *Node) OnChildAdded(f func(child *Node))    { n.obs.onChildAdded = append(n.obs.onChildAdded, f) }
func (n *Node) OnChildRemoved(f func(child *Node))  { n.obs.onChildRemoved = append(n.obs.onChildRemoved, f) }

func (n *Node) fireInsertedTo(parent *Node) {
	for _, f := range n.obs.onInsertedTo {
		f(parent)
	}
}
func (n *Node) fireRemovedFrom(parent *Node) {
	for _, f := range n.obs.onRemovedFrom {
		f(parent)
	}
}
func (n *Node) fireChildAdded(child *Node) {
	for _, f := range n.obs.onChildAdded {
		f(child)
	}
}
func (n *Node) fireChildRemoved(child *Node) {
	for _, f := range n.obs.onChildRemoved {
		f(child)
	}
}

// TextContent concatenates the Data of every Text descendant in tree
// order (used both for general text content and for reading an Attr's
// value, which is stored as Text children per spec.md §4.6).
func (n *Node) TextContent() string {
	var s string
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		switch c.Type {
		case TextNode:
			s += c.Data
		default:
			s += c.TextContent()
		}
	}
	return s
}

// Layout is the stable hook the graphics host calls once a Document is
// built (spec.md §6); the parser itself never calls it. The default is
// sequence-block behavior: an element claims the full width it's given
// and reports zero height, since no actual measurement happens here.
// ScriptElement and StyleElement opt out entirely and report zero width
// too, per spec.md §6/§3.4 ("the <script> and <style> variants opt out
// of layout").
func (n *Node) Layout(maxWidth float64) (width, height float64) {
	if n.Kind == ScriptElement || n.Kind == StyleElement {
		return 0, 0
	}
	return maxWidth, 0
}

// isAncestorOf reports whether n is an ancestor of other (or other itself),
// the cycle check behind insertBefore's HierarchyRequest validation.
func (n *Node) isAncestorOf(other *Node) bool {
	for c := other; c != nil; c = c.Parent {
		if c == n {
			return true
		}
	}
	return false
}
