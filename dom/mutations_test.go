package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateElementLocalNameRoundtrip(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	assert.Equal(t, "div", el.TagName)
	assert.Equal(t, DivElement, el.Kind)
}

func TestCreateElementUnknownTagFallsBack(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("x-widget")
	assert.Equal(t, UnknownElement, el.Kind)
}

func TestInsertBeforeSiblingChainConsistency(t *testing.T) {
	doc := NewDocument()
	html := doc.CreateElement("html")
	require.NoError(t, AppendChild(doc.Node, html))

	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	c := doc.CreateElement("c")
	require.NoError(t, AppendChild(html, a))
	require.NoError(t, AppendChild(html, c))
	require.NoError(t, InsertBefore(html, b, c))

	assert.Equal(t, []*Node{a, b, c}, Children(html))
	assert.Nil(t, a.PrevSibling)
	assert.Equal(t, b, a.NextSibling)
	assert.Equal(t, a, b.PrevSibling)
	assert.Equal(t, c, b.NextSibling)
	assert.Equal(t, b, c.PrevSibling)
	assert.Nil(t, c.NextSibling)
	assert.Equal(t, a, html.FirstChild)
	assert.Equal(t, c, html.LastChild)
}

func TestDocumentRejectsSecondDoctype(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, AppendChild(doc.Node, NewDocumentType("html", "", "")))
	err := AppendChild(doc.Node, NewDocumentType("html", "", ""))
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, HierarchyRequest, derr.Kind)
}

func TestDocumentRejectsSecondElement(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, AppendChild(doc.Node, doc.CreateElement("html")))
	err := AppendChild(doc.Node, doc.CreateElement("html"))
	require.Error(t, err)
}

func TestDoctypeMustPrecedeElement(t *testing.T) {
	doc := NewDocument()
	require.NoError(t, AppendChild(doc.Node, doc.CreateElement("html")))
	err := AppendChild(doc.Node, NewDocumentType("html", "", ""))
	require.Error(t, err)
}

func TestAttributeNodeCannotBeInserted(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("div")
	require.NoError(t, SetAttribute(el, "id", "x"))
	err := AppendChild(doc.Node, el.Attrs[0])
	require.Error(t, err)
}

func TestSetAttributeUpdatesExistingValue(t *testing.T) {
	el := NewDocument().CreateElement("a")
	require.NoError(t, SetAttribute(el, "href", "first"))
	// A second SetAttribute call with the same name updates it (this is
	// the DOM API's semantics, distinct from the tokenizer's duplicate-
	// attribute-on-one-tag rule exercised in tokenizer_test.go).
	require.NoError(t, SetAttribute(el, "href", "second"))
	v, ok := GetAttribute(el, "href")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Len(t, el.Attrs, 1)
}

func TestInvalidAttributeNameRejected(t *testing.T) {
	el := NewDocument().CreateElement("a")
	err := SetAttribute(el, "1bad", "x")
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, InvalidCharacter, derr.Kind)
}

func TestRemoveChildNotAChild(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	err := RemoveChild(a, b)
	require.Error(t, err)
}

func TestNoCycles(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	require.NoError(t, AppendChild(a, b))
	err := AppendChild(b, a)
	require.Error(t, err)
}

func TestNormalizeMergesAdjacentTextAndDropsEmpty(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement("p")
	require.NoError(t, AppendChild(p, NewText("hello ")))
	require.NoError(t, AppendChild(p, NewText("")))
	require.NoError(t, AppendChild(p, NewText("world")))
	Normalize(p)
	assert.Equal(t, "hello world", p.FirstChild.Data)
	assert.Nil(t, p.FirstChild.NextSibling)
}

func TestNormalizeIdempotent(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement("p")
	require.NoError(t, AppendChild(p, NewText("a")))
	require.NoError(t, AppendChild(p, NewText("b")))
	Normalize(p)
	first := p.TextContent()
	Normalize(p)
	assert.Equal(t, first, p.TextContent())
}

func TestCloneNodeDeepIsEqualNode(t *testing.T) {
	doc := NewDocument()
	p := doc.CreateElement("p")
	require.NoError(t, SetAttribute(p, "class", "x"))
	require.NoError(t, AppendChild(p, NewText("hi")))

	clone := CloneNode(p, true)
	assert.True(t, IsEqualNode(p, clone))
	assert.Nil(t, clone.Parent)
}

func TestOwnerDocumentConsistentAfterAdoption(t *testing.T) {
	doc := NewDocument()
	html := doc.CreateElement("html")
	require.NoError(t, AppendChild(doc.Node, html))
	body := doc.CreateElement("body")
	require.NoError(t, AppendChild(html, body))
	text := NewText("hi")
	require.NoError(t, AppendChild(body, text))

	assert.Equal(t, doc, html.OwnerDocument)
	assert.Equal(t, doc, body.OwnerDocument)
	assert.Equal(t, doc, text.OwnerDocument)
	assert.Nil(t, doc.OwnerDocument)
}

func TestGetElementsByTagNameTreeOrder(t *testing.T) {
	doc := NewDocument()
	html := doc.CreateElement("html")
	require.NoError(t, AppendChild(doc.Node, html))
	body := doc.CreateElement("body")
	require.NoError(t, AppendChild(html, body))
	d1 := doc.CreateElement("div")
	d2 := doc.CreateElement("div")
	require.NoError(t, AppendChild(body, d1))
	require.NoError(t, AppendChild(d1, d2))

	got := GetElementsByTagName(doc.Node, "div")
	assert.Equal(t, []*Node{d1, d2}, got.All())

	all := GetElementsByTagName(doc.Node, "*")
	assert.Equal(t, []*Node{html, body, d1, d2}, all.All())
}

func TestSetAttributeNodeMovingBetweenElementsIsRejected(t *testing.T) {
	doc := NewDocument()
	a := doc.CreateElement("a")
	b := doc.CreateElement("b")
	attr := &Node{Type: AttributeNode, AttrName: "href"}
	require.NoError(t, AppendChild(attr, NewText("x")))
	require.NoError(t, SetAttributeNode(a, attr))

	err := SetAttributeNode(b, attr)
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, InUseAttribute, derr.Kind)
}

func TestSetAttributeNodeFromAnotherDocumentIsRejected(t *testing.T) {
	docA := NewDocument()
	docB := NewDocument()
	el := docA.CreateElement("a")
	attr := &Node{Type: AttributeNode, AttrName: "href", OwnerDocument: docB}
	require.NoError(t, AppendChild(attr, NewText("x")))

	err := SetAttributeNode(el, attr)
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, WrongDocument, derr.Kind)
}

func TestSetAttributeNodeReplacesExistingByName(t *testing.T) {
	doc := NewDocument()
	el := doc.CreateElement("a")
	require.NoError(t, SetAttribute(el, "href", "first"))

	attr := &Node{Type: AttributeNode, AttrName: "href"}
	require.NoError(t, AppendChild(attr, NewText("second")))
	require.NoError(t, SetAttributeNode(el, attr))

	v, ok := GetAttribute(el, "href")
	require.True(t, ok)
	assert.Equal(t, "second", v)
	assert.Len(t, el.Attrs, 1)
}

func TestCreateElementNSIsNotSupported(t *testing.T) {
	doc := NewDocument()
	el, err := doc.CreateElementNS("http://www.w3.org/2000/svg", "svg")
	require.Error(t, err)
	assert.Nil(t, el)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, NotSupported, derr.Kind)
}

func TestCharacterDataSubstringInsertDeleteReplace(t *testing.T) {
	n := NewText("hello world")

	s, err := SubstringData(n, 6, 5)
	require.NoError(t, err)
	assert.Equal(t, "world", s)

	require.NoError(t, InsertData(n, 5, ","))
	assert.Equal(t, "hello, world", n.Data)

	require.NoError(t, DeleteData(n, 5, 1))
	assert.Equal(t, "hello world", n.Data)

	require.NoError(t, ReplaceData(n, 6, 5, "there"))
	assert.Equal(t, "hello there", n.Data)
}

func TestCharacterDataOutOfRangeOffsetIsIndexSizeError(t *testing.T) {
	n := NewText("hi")

	_, err := SubstringData(n, -1, 1)
	require.Error(t, err)
	var derr *Error
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, IndexSize, derr.Kind)

	err = InsertData(n, 99, "x")
	require.Error(t, err)
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, IndexSize, derr.Kind)

	err = DeleteData(n, 0, -1)
	require.Error(t, err)
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, IndexSize, derr.Kind)
}

func TestGetElementsByTagNameIsLive(t *testing.T) {
	doc := NewDocument()
	html := doc.CreateElement("html")
	require.NoError(t, AppendChild(doc.Node, html))

	divs := GetElementsByTagName(doc.Node, "div")
	assert.Equal(t, 0, divs.Len())

	d1 := doc.CreateElement("div")
	require.NoError(t, AppendChild(html, d1))
	assert.Equal(t, 1, divs.Len(), "collection obtained before the mutation must reflect it")
	assert.Equal(t, d1, divs.Item(0))

	require.NoError(t, RemoveChild(html, d1))
	assert.Equal(t, 0, divs.Len(), "collection must also reflect removals")
}
