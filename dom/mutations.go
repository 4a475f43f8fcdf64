package dom

// InsertBefore inserts newNode as a child of parent, immediately before
// ref (or at the end if ref is nil), per spec.md §4.6. It validates the
// §3.3 invariants first and leaves the tree unchanged on error.
func InsertBefore(parent, newNode, ref *Node) error {
	if newNode.Type == AttributeNode {
		return NewHierarchyRequestError("attribute nodes cannot be inserted as children")
	}
	if newNode == parent || newNode.isAncestorOf(parent) {
		return NewHierarchyRequestError("node is its own ancestor")
	}
	if ref != nil && ref.Parent != parent {
		return NewNotFoundError("reference node is not a child of parent")
	}
	if parent.Type == DocumentNode {
		if err := checkDocumentChild(parent, newNode, ref); err != nil {
			return err
		}
	}

	if newNode.Type == DocumentFragmentNode {
		for c := newNode.FirstChild; c != nil; {
			next := c.NextSibling
			if err := InsertBefore(parent, c, ref); err != nil {
				return err
			}
			c = next
		}
		return nil
	}

	if newNode.Parent != nil {
		if err := RemoveChild(newNode.Parent, newNode); err != nil {
			return err
		}
	}

	adopt(parent, newNode)

	if ref == nil {
		last := parent.LastChild
		newNode.PrevSibling = last
		if last != nil {
			last.NextSibling = newNode
		} else {
			parent.FirstChild = newNode
		}
		parent.LastChild = newNode
	} else {
		prev := ref.PrevSibling
		newNode.PrevSibling = prev
		newNode.NextSibling = ref
		ref.PrevSibling = newNode
		if prev != nil {
			prev.NextSibling = newNode
		} else {
			parent.FirstChild = newNode
		}
	}
	newNode.Parent = parent

	parent.fireChildAdded(newNode)
	newNode.fireInsertedTo(parent)
	return nil
}

// AppendChild inserts newNode as parent's last child.
func AppendChild(parent, newNode *Node) error {
	return InsertBefore(parent, newNode, nil)
}

// checkDocumentChild enforces "Document has at most one DocumentType
// child and at most one Element child; DocumentType must precede
// Element" (spec.md §3.3), accounting for where ref would place newNode.
func checkDocumentChild(doc, newNode, ref *Node) error {
	switch newNode.Type {
	case DocumentTypeNode:
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == DocumentTypeNode {
				return NewHierarchyRequestError("document already has a doctype")
			}
			if c.Type == ElementNode && (ref == nil || c == ref || precedes(c, ref)) {
				return NewHierarchyRequestError("doctype must precede the document element")
			}
		}
	case ElementNode:
		for c := doc.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == ElementNode {
				return NewHierarchyRequestError("document already has a document element")
			}
		}
		for c := ref; c != nil; c = c.NextSibling {
			if c.Type == DocumentTypeNode {
				return NewHierarchyRequestError("document element must follow the doctype")
			}
		}
	}
	return nil
}

func precedes(a, b *Node) bool {
	for c := a; c != nil; c = c.NextSibling {
		if c == b {
			return true
		}
	}
	return false
}

// adopt sets OwnerDocument on newNode and its subtree to parent's
// owning document (or parent itself, if parent is the Document).
func adopt(parent, newNode *Node) {
	var owner *Document
	if parent.Type == DocumentNode {
		owner = parent.asDocument()
	} else {
		owner = parent.OwnerDocument
	}
	var walk func(*Node)
	walk = func(n *Node) {
		n.OwnerDocument = owner
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(newNode)
}

// asDocument recovers the *Document wrapper for a Node known to be of
// DocumentNode type. Parsing always holds the *Document directly, but
// InsertBefore only sees the embedded *Node; since Document embeds
// *Node, the Node itself carries no back-pointer, so a document target
// is represented here by wrapping it — fields are shared, so this is
// just a typed view, not a copy.
func (n *Node) asDocument() *Document { return &Document{Node: n} }

// RemoveChild unlinks child from parent, clearing its parent/sibling
// pointers (spec.md §4.6). It is an error if child is not currently a
// child of parent.
func RemoveChild(parent, child *Node) error {
	if child.Parent != parent {
		return NewNotFoundError("node is not a child of this parent")
	}
	if child.PrevSibling != nil {
		child.PrevSibling.NextSibling = child.NextSibling
	} else {
		parent.FirstChild = child.NextSibling
	}
	if child.NextSibling != nil {
		child.NextSibling.PrevSibling = child.PrevSibling
	} else {
		parent.LastChild = child.PrevSibling
	}
	child.Parent, child.PrevSibling, child.NextSibling = nil, nil, nil

	parent.fireChildRemoved(child)
	child.fireRemovedFrom(parent)
	return nil
}

// Normalize removes empty Text children and merges adjacent Text
// siblings by concatenation, recursively (spec.md §4.6). Attribute
// value storage (Text children of an Attr node) is normalized the same
// way, since an Attr is just another node with Text children.
func Normalize(n *Node) {
	for _, attr := range n.Attrs {
		Normalize(attr)
	}
	c := n.FirstChild
	for c != nil {
		next := c.NextSibling
		if c.Type == TextNode {
			if c.Data == "" {
				RemoveChild(n, c)
				c = next
				continue
			}
			if prev := c.PrevSibling; prev != nil && prev.Type == TextNode {
				prev.Data += c.Data
				RemoveChild(n, c)
				c = next
				continue
			}
		} else {
			Normalize(c)
		}
		c = next
	}
}

// IsEqualNode reports deep structural equality: same node type, same
// identifying data (tag name, text, comment, doctype fields), same
// attribute set, and recursively equal children in order.
func IsEqualNode(a, b *Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ElementNode:
		if a.TagName != b.TagName || len(a.Attrs) != len(b.Attrs) {
			return false
		}
		for _, at := range a.Attrs {
			bv, ok := GetAttribute(b, at.AttrName)
			if !ok || bv != at.TextContent() {
				return false
			}
		}
	case TextNode, CommentNode:
		if a.Data != b.Data {
			return false
		}
	case DocumentTypeNode:
		if a.DoctypeName != b.DoctypeName || a.PublicID != b.PublicID || a.SystemID != b.SystemID {
			return false
		}
	}
	ac, bc := a.FirstChild, b.FirstChild
	for ac != nil && bc != nil {
		if !IsEqualNode(ac, bc) {
			return false
		}
		ac, bc = ac.NextSibling, bc.NextSibling
	}
	return ac == nil && bc == nil
}

// CloneNode returns a detached copy of n (no parent, siblings or
// owner). Attributes are always copied; children are cloned
// recursively only if deep.
func CloneNode(n *Node, deep bool) *Node {
	m := &Node{
		Type:             n.Type,
		TagName:          n.TagName,
		Kind:             n.Kind,
		Data:             n.Data,
		AttrName:         n.AttrName,
		DoctypeName:      n.DoctypeName,
		PublicID:         n.PublicID,
		SystemID:         n.SystemID,
	}
	for _, a := range n.Attrs {
		clone := CloneNode(a, true)
		clone.AttrOwnerElement = m
		m.Attrs = append(m.Attrs, clone)
	}
	if deep {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			AppendChild(m, CloneNode(c, true))
		}
	}
	return m
}

// nameGrammarOK validates the InvalidCharacter rule of spec.md §7: the
// first character must be an ASCII letter, subsequent characters
// letter/digit/'-'/'_'/':'/'.'.
func nameGrammarOK(s string) bool {
	if s == "" {
		return false
	}
	for i, r := range s {
		isLetter := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if i == 0 {
			if !isLetter {
				return false
			}
			continue
		}
		isDigit := r >= '0' && r <= '9'
		switch {
		case isLetter, isDigit, r == '-', r == '_', r == ':', r == '.':
		default:
			return false
		}
	}
	return true
}

// SetAttribute creates or reuses an Attr on el, storing value as a
// single Text child (spec.md §4.6). The name grammar is validated per
// spec.md §7's InvalidCharacter rule.
func SetAttribute(el *Node, name, value string) error {
	if !nameGrammarOK(name) {
		return NewInvalidCharacterError("attribute name %q fails the name grammar", name)
	}
	for _, a := range el.Attrs {
		if a.AttrName == name {
			for c := a.FirstChild; c != nil; {
				next := c.NextSibling
				RemoveChild(a, c)
				c = next
			}
			return AppendChild(a, NewText(value))
		}
	}
	attr := &Node{Type: AttributeNode, AttrName: name, AttrOwnerElement: el, OwnerDocument: el.OwnerDocument}
	if err := AppendChild(attr, NewText(value)); err != nil {
		return err
	}
	el.Attrs = append(el.Attrs, attr)
	return nil
}

// GetAttribute returns el's attribute named name, concatenating its
// Text children, and whether it is present.
func GetAttribute(el *Node, name string) (string, bool) {
	for _, a := range el.Attrs {
		if a.AttrName == name {
			return a.TextContent(), true
		}
	}
	return "", false
}

// SetAttributeNode attaches an existing Attr node to el, replacing any
// attribute el already has under the same name (classic DOM Level 1
// setAttributeNode, spec.md §4.6). Unlike SetAttribute, which always
// builds a fresh Attr from a name/value pair, this takes an Attr node
// directly and so inherits that node's own failure modes: it may
// already belong to a different element, or to a different document.
func SetAttributeNode(el, attr *Node) error {
	if attr.Type != AttributeNode {
		return NewHierarchyRequestError("SetAttributeNode requires an attribute node")
	}
	if attr.AttrOwnerElement != nil && attr.AttrOwnerElement != el {
		return NewInUseAttributeError("attribute %q is already owned by another element", attr.AttrName)
	}
	if attr.OwnerDocument != nil && el.OwnerDocument != nil && attr.OwnerDocument.Node != el.OwnerDocument.Node {
		return NewWrongDocumentError("attribute %q belongs to a different document", attr.AttrName)
	}

	for i, a := range el.Attrs {
		if a.AttrName == attr.AttrName {
			el.Attrs[i] = attr
			attr.AttrOwnerElement = el
			attr.OwnerDocument = el.OwnerDocument
			return nil
		}
	}
	attr.AttrOwnerElement = el
	attr.OwnerDocument = el.OwnerDocument
	el.Attrs = append(el.Attrs, attr)
	return nil
}
