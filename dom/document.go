package dom

// Document is the root of a parsed tree. It embeds *Node so the usual
// child/sibling machinery applies uniformly (a Document is itself a
// Node per spec.md §3.3), while giving the tree constructor a typed
// handle for document-level operations.
type Document struct {
	*Node
}

// NewDocument returns an empty Document. Per spec.md §3.3, a Document
// node's own OwnerDocument is nil.
func NewDocument() *Document {
	n := &Node{Type: DocumentNode}
	return &Document{Node: n}
}

// CreateElement looks up the tag-name → element-kind map, falling back
// to UnknownElement, and returns a new detached Element owned by d
// (spec.md §4.6).
func (d *Document) CreateElement(localName string) *Node {
	return &Node{
		Type:          ElementNode,
		TagName:       localName,
		Kind:          kindForTagName(localName),
		OwnerDocument: d,
	}
}

// CreateElementNS mirrors the DOM's namespace-aware element constructor.
// This core only ever builds HTML documents and never resolves foreign-
// content namespaces beyond the stub named at that seam (spec.md Non-
// goals), so it always fails rather than silently discarding namespaceURI.
func (d *Document) CreateElementNS(namespaceURI, qualifiedName string) (*Node, error) {
	return nil, NewNotSupportedError("namespace-aware element creation (namespace %q) is not supported", namespaceURI)
}

// DocumentElement returns d's single Element child, if any.
func (d *Document) DocumentElement() *Node {
	for c := d.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == ElementNode {
			return c
		}
	}
	return nil
}

// Doctype returns d's DocumentType child, if any.
func (d *Document) Doctype() *Node {
	for c := d.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == DocumentTypeNode {
			return c
		}
	}
	return nil
}
