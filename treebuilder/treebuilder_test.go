package treebuilder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nomovok-opensource/frenzy-html/dom"
	"github.com/nomovok-opensource/frenzy-html/token"
)

// feed pushes a sequence of tokens through a fresh TreeBuilder, always
// terminating with an explicit EOF.
func feed(toks ...token.Token) *TreeBuilder {
	tb := New()
	for _, t := range toks {
		tb.ProcessToken(t)
	}
	tb.ProcessToken(token.Token{Type: token.EOF})
	return tb
}

func start(name string, attrs ...token.Attribute) token.Token {
	return token.Token{Type: token.StartTag, TagName: name, Attrs: attrs}
}

func end(name string) token.Token {
	return token.Token{Type: token.EndTag, TagName: name}
}

func char(s string) []token.Token {
	var out []token.Token
	for _, r := range s {
		out = append(out, token.Token{Type: token.Character, CP: r})
	}
	return out
}

func TestMinimalDocumentGetsImpliedHtmlHeadBody(t *testing.T) {
	tb := feed(append([]token.Token{start("p")}, char("hi")...)...)

	html := tb.Doc.DocumentElement()
	require.NotNil(t, html)
	assert.Equal(t, "html", html.TagName)

	body := html.LastChild
	require.NotNil(t, body)
	assert.Equal(t, "body", body.TagName)

	p := body.FirstChild
	require.NotNil(t, p)
	assert.Equal(t, "p", p.TagName)
	assert.Equal(t, "hi", p.TextContent())
}

func TestParagraphClosedByBlockStartTag(t *testing.T) {
	tb := feed(start("p"), start("div"))

	body := tb.Doc.DocumentElement().LastChild
	p := dom.GetElementsByTagName(body, "p").All()
	div := dom.GetElementsByTagName(body, "div").All()
	require.Len(t, p, 1)
	require.Len(t, div, 1)
	assert.Equal(t, div[0], p[0].NextSibling, "p must have been popped before div was inserted as a body child, not nested")
	assert.Equal(t, body, div[0].Parent)
}

func TestMisnestedInlineTagsRunAdoptionAgency(t *testing.T) {
	// <p>1<b>2<i>3</b>4</i>5</p>
	toks := []token.Token{start("p")}
	toks = append(toks, char("1")...)
	toks = append(toks, start("b"))
	toks = append(toks, char("2")...)
	toks = append(toks, start("i"))
	toks = append(toks, char("3")...)
	toks = append(toks, end("b"))
	toks = append(toks, char("4")...)
	toks = append(toks, end("i"))
	toks = append(toks, char("5")...)
	toks = append(toks, end("p"))

	tb := feed(toks...)
	body := tb.Doc.DocumentElement().LastChild

	// "3" must end up inside both a <b> and an <i>, even though </b>
	// closed before </i>: with no special element between them, the
	// adoption agency algorithm pops <i> and <b> together, leaving
	// <b>2<i>3</i></b>, and "4" goes into a reconstructed <i>.
	var found bool
	dom.Walk(body, func(n *dom.Node) {
		if n.Type == dom.TextNode && n.Data == "3" {
			found = true
			assert.Equal(t, "i", n.Parent.TagName)
			assert.Equal(t, "b", n.Parent.Parent.TagName)
		}
	})
	assert.True(t, found, "expected to find text node \"3\" nested in <b><i>...")
}

func TestImplicitTbodyInsertedBeforeTr(t *testing.T) {
	tb := feed(start("table"), start("tr"), start("td"), char("x")[0])

	table := dom.GetElementsByTagName(tb.Doc.DocumentElement(), "table").All()
	require.Len(t, table, 1)
	tbody := table[0].FirstChild
	require.NotNil(t, tbody)
	assert.Equal(t, "tbody", tbody.TagName)
	assert.Equal(t, "tr", tbody.FirstChild.TagName)
	assert.Equal(t, "td", tbody.FirstChild.FirstChild.TagName)
}

func TestTableFosterParentingMovesTextBeforeTable(t *testing.T) {
	toks := []token.Token{start("table")}
	toks = append(toks, char("stray")...)
	tb := feed(toks...)

	body := tb.Doc.DocumentElement().LastChild
	// The stray text must be foster-parented to just before <table>, a
	// sibling of it inside <body>, not a child of <table>.
	table := dom.GetElementsByTagName(body, "table").All()
	require.Len(t, table, 1)
	assert.Equal(t, dom.TextNode, table[0].PrevSibling.Type)
	assert.Equal(t, "stray", table[0].PrevSibling.Data)
	assert.Nil(t, table[0].FirstChild, "table itself must not have absorbed the stray text as a child")
}

func TestFosterParentedTextCoalescesWithPrecedingTextSibling(t *testing.T) {
	toks := append(char("a"), start("table"))
	toks = append(toks, char("b")...)
	tb := feed(toks...)

	body := tb.Doc.DocumentElement().LastChild
	table := dom.GetElementsByTagName(body, "table").All()
	require.Len(t, table, 1)
	assert.Equal(t, "ab", table[0].PrevSibling.Data)
	assert.Nil(t, table[0].PrevSibling.PrevSibling)
}

func TestFormattingElementReconstructedAfterFallingOffStack(t *testing.T) {
	// <p>1<b>2</p>3 : </p> pops <b> off the stack of open elements
	// without removing it from the active formatting list, so the "3"
	// character token must reconstruct a fresh <b> as a sibling of <p>.
	toks := []token.Token{start("p")}
	toks = append(toks, char("1")...)
	toks = append(toks, start("b"))
	toks = append(toks, char("2")...)
	toks = append(toks, end("p"))
	toks = append(toks, char("3")...)
	tb := feed(toks...)

	body := tb.Doc.DocumentElement().LastChild
	p := dom.GetElementsByTagName(body, "p").All()
	require.Len(t, p, 1)
	bInsideP := dom.GetElementsByTagName(p[0], "b").All()
	require.Len(t, bInsideP, 1)
	assert.Equal(t, "2", bInsideP[0].TextContent())

	bAfterP := dom.GetElementsByTagName(body, "b").All()
	require.Len(t, bAfterP, 2, "expected a second, reconstructed <b> as a sibling of <p>")
	reconstructed := bAfterP[1]
	assert.Equal(t, body, reconstructed.Parent)
	assert.Equal(t, "3", reconstructed.TextContent())
}

func TestDoctypeBecomesDocumentTypeNode(t *testing.T) {
	tb := feed(token.Token{Type: token.Doctype, DoctypeName: "html"}, start("p"))
	dt := tb.Doc.Doctype()
	require.NotNil(t, dt)
	assert.Equal(t, "html", dt.DoctypeName)
	assert.Equal(t, dt, tb.Doc.FirstChild)
}

func TestNullCharacterInBodyIsDropped(t *testing.T) {
	toks := []token.Token{start("p"), {Type: token.Character, CP: 0}}
	toks = append(toks, char("x")...)
	tb := feed(toks...)

	body := tb.Doc.DocumentElement().LastChild
	p := dom.GetElementsByTagName(body, "p").All()
	require.Len(t, p, 1)
	assert.Equal(t, "x", p[0].TextContent())
}

func TestDuplicateHtmlAttributeMergedOntoRootElement(t *testing.T) {
	tb := feed(start("html", token.Attribute{Name: "lang", Value: "en"}),
		start("p"),
		start("html", token.Attribute{Name: "lang", Value: "fr"}, token.Attribute{Name: "data-x", Value: "1"}))

	html := tb.Doc.DocumentElement()
	lang, ok := dom.GetAttribute(html, "lang")
	require.True(t, ok)
	assert.Equal(t, "en", lang, "first html start tag's attribute wins, later ones don't overwrite")
	x, ok := dom.GetAttribute(html, "data-x")
	require.True(t, ok)
	assert.Equal(t, "1", x, "attributes the root element doesn't already have are still merged in")
}
