package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nomovok-opensource/frenzy-html/token"
)

func tokenizeAll(chunks ...[]rune) []token.Token {
	tz := New()
	var got []token.Token
	tz.AttachSink(func(t token.Token) { got = append(got, t) })
	for _, c := range chunks {
		tz.Write(c, false)
	}
	tz.Write(nil, true)
	return got
}

func charTokens(s string) []token.Token {
	var out []token.Token
	for _, r := range s {
		out = append(out, token.Token{Type: token.Character, CP: r})
	}
	return out
}

func TestTokenizerPlainText(t *testing.T) {
	got := tokenizeAll([]rune("hello"))
	want := append(charTokens("hello"), token.Token{Type: token.EOF})
	assert.Equal(t, want, got)
}

func TestTokenizerSimpleStartEndTag(t *testing.T) {
	got := tokenizeAll([]rune("<p>hi</p>"))
	want := []token.Token{
		{Type: token.StartTag, TagName: "p"},
	}
	want = append(want, charTokens("hi")...)
	want = append(want,
		token.Token{Type: token.EndTag, TagName: "p"},
		token.Token{Type: token.EOF},
	)
	assert.Equal(t, want, got)
}

func TestTokenizerTagNameLowercased(t *testing.T) {
	got := tokenizeAll([]rune("<DIV></DIV>"))
	want := []token.Token{
		{Type: token.StartTag, TagName: "div"},
		{Type: token.EndTag, TagName: "div"},
		{Type: token.EOF},
	}
	assert.Equal(t, want, got)
}

func TestTokenizerAttributes(t *testing.T) {
	got := tokenizeAll([]rune(`<a href="x" target='y' disabled z=w>`))
	assert.Len(t, got, 2)
	tag := got[0]
	assert.Equal(t, token.StartTag, tag.Type)
	assert.Equal(t, "a", tag.TagName)
	assert.Equal(t, []token.Attribute{
		{Name: "href", Value: "x"},
		{Name: "target", Value: "y"},
		{Name: "disabled", Value: ""},
		{Name: "z", Value: "w"},
	}, tag.Attrs)
}

func TestTokenizerDuplicateAttributeFirstWins(t *testing.T) {
	got := tokenizeAll([]rune(`<a x="1" x="2">`))
	assert.Equal(t, []token.Attribute{{Name: "x", Value: "1"}}, got[0].Attrs)
}

func TestTokenizerSelfClosingTag(t *testing.T) {
	got := tokenizeAll([]rune(`<br/>`))
	assert.Equal(t, token.StartTag, got[0].Type)
	assert.True(t, got[0].SelfClosing)
}

func TestTokenizerComment(t *testing.T) {
	got := tokenizeAll([]rune("<!--hi there-->"))
	want := []token.Token{
		{Type: token.Comment, CommentText: "hi there"},
		{Type: token.EOF},
	}
	assert.Equal(t, want, got)
}

func TestTokenizerDoctype(t *testing.T) {
	got := tokenizeAll([]rune("<!DOCTYPE html>"))
	want := []token.Token{
		{Type: token.Doctype, DoctypeName: "html"},
		{Type: token.EOF},
	}
	assert.Equal(t, want, got)
}

func TestTokenizerDoctypeWithPublicAndSystem(t *testing.T) {
	got := tokenizeAll([]rune(`<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">`))
	want := token.Token{
		Type:        token.Doctype,
		DoctypeName: "html",
		HasPublicID: true,
		PublicID:    "-//W3C//DTD HTML 4.01//EN",
		HasSystemID: true,
		SystemID:    "http://www.w3.org/TR/html4/strict.dtd",
	}
	assert.Equal(t, want, got[0])
}

func TestTokenizerNullCharacterInData(t *testing.T) {
	got := tokenizeAll([]rune("a\x00b"))
	want := []token.Token{
		{Type: token.Character, CP: 'a'},
		{Type: token.Character, CP: 0xFFFD},
		{Type: token.Character, CP: 'b'},
		{Type: token.EOF},
	}
	assert.Equal(t, want, got)
}

func TestTokenizerNamedCharRefWithSemicolon(t *testing.T) {
	got := tokenizeAll([]rune("&amp;"))
	want := append(charTokens("&"), token.Token{Type: token.EOF})
	assert.Equal(t, want, got)
}

func TestTokenizerNamedCharRefLegacyNoSemicolon(t *testing.T) {
	got := tokenizeAll([]rune("&amp"))
	want := append(charTokens("&"), token.Token{Type: token.EOF})
	assert.Equal(t, want, got)
}

func TestTokenizerAmbiguousAmpersand(t *testing.T) {
	got := tokenizeAll([]rune("&notarealentity;"))
	want := append(charTokens("&notarealentity;"), token.Token{Type: token.EOF})
	assert.Equal(t, want, got)
}

func TestTokenizerDecimalCharRef(t *testing.T) {
	got := tokenizeAll([]rune("&#65;"))
	want := append(charTokens("A"), token.Token{Type: token.EOF})
	assert.Equal(t, want, got)
}

func TestTokenizerHexCharRef(t *testing.T) {
	got := tokenizeAll([]rune("&#x41;"))
	want := append(charTokens("A"), token.Token{Type: token.EOF})
	assert.Equal(t, want, got)
}

func TestTokenizerNumericCharRefZeroBecomesReplacement(t *testing.T) {
	got := tokenizeAll([]rune("&#0;"))
	want := []token.Token{
		{Type: token.Character, CP: 0xFFFD},
		{Type: token.EOF},
	}
	assert.Equal(t, want, got)
}

func TestTokenizerNumericCharRefWindows1252Mapping(t *testing.T) {
	got := tokenizeAll([]rune("&#128;"))
	want := []token.Token{
		{Type: token.Character, CP: 0x20AC},
		{Type: token.EOF},
	}
	assert.Equal(t, want, got)
}

func TestTokenizerCharRefInAttributeNoSemicolonRejectedBeforeEquals(t *testing.T) {
	got := tokenizeAll([]rune(`<a x="&amp=1">`))
	assert.Equal(t, []token.Attribute{{Name: "x", Value: "&amp=1"}}, got[0].Attrs)
}

func TestTokenizerCharRefInAttributeAcceptedBeforeNonAlnum(t *testing.T) {
	got := tokenizeAll([]rune(`<a x="&amp;">`))
	assert.Equal(t, []token.Attribute{{Name: "x", Value: "&"}}, got[0].Attrs)
}

func TestTokenizerRCDATATitleKeepsCharRefsNoTags(t *testing.T) {
	tz := New()
	var got []token.Token
	tz.AttachSink(func(t token.Token) { got = append(got, t) })
	tz.Write([]rune("<title>"), false)
	tz.SetState(RCDATA, "title")
	tz.Write([]rune("a &amp; <b></title>"), false)
	tz.Write(nil, true)

	want := []token.Token{{Type: token.StartTag, TagName: "title"}}
	want = append(want, charTokens("a & <b>")...)
	want = append(want, token.Token{Type: token.EndTag, TagName: "title"}, token.Token{Type: token.EOF})
	assert.Equal(t, want, got)
}

func TestTokenizerRAWTEXTStyleIgnoresCharRefs(t *testing.T) {
	tz := New()
	var got []token.Token
	tz.AttachSink(func(t token.Token) { got = append(got, t) })
	tz.Write([]rune("<style>"), false)
	tz.SetState(RAWTEXT, "style")
	tz.Write([]rune("a &amp; b</style>"), false)
	tz.Write(nil, true)

	want := []token.Token{{Type: token.StartTag, TagName: "style"}}
	want = append(want, charTokens("a &amp; b")...)
	want = append(want, token.Token{Type: token.EndTag, TagName: "style"}, token.Token{Type: token.EOF})
	assert.Equal(t, want, got)
}

func TestTokenizerRawTextEndTagMustMatchStartTagName(t *testing.T) {
	tz := New()
	var got []token.Token
	tz.AttachSink(func(t token.Token) { got = append(got, t) })
	tz.Write([]rune("<style>"), false)
	tz.SetState(RAWTEXT, "style")
	tz.Write([]rune("a</b>c</style>"), false)
	tz.Write(nil, true)

	want := []token.Token{{Type: token.StartTag, TagName: "style"}}
	want = append(want, charTokens("a</b>c")...)
	want = append(want, token.Token{Type: token.EndTag, TagName: "style"}, token.Token{Type: token.EOF})
	assert.Equal(t, want, got)
}

func TestTokenizerEOFImmediatelyAfterLessThan(t *testing.T) {
	got := tokenizeAll([]rune("<"))
	want := []token.Token{
		{Type: token.Character, CP: '<'},
		{Type: token.EOF},
	}
	assert.Equal(t, want, got)
}

func TestTokenizerEOFAfterMarkupDeclarationOpenBang(t *testing.T) {
	got := tokenizeAll([]rune("<!"))
	want := []token.Token{
		{Type: token.Comment, CommentText: ""},
		{Type: token.EOF},
	}
	assert.Equal(t, want, got)
}

func TestTokenizerEOFInComment(t *testing.T) {
	got := tokenizeAll([]rune("<!--abc"))
	want := []token.Token{
		{Type: token.Comment, CommentText: "abc"},
		{Type: token.EOF},
	}
	assert.Equal(t, want, got)
}

func TestTokenizerEOFInDoctype(t *testing.T) {
	got := tokenizeAll([]rune("<!DOCTYPE html"))
	want := []token.Token{
		{Type: token.Doctype, DoctypeName: "html", ForceQuirks: true},
		{Type: token.EOF},
	}
	assert.Equal(t, want, got)
}

func TestTokenizerEOFInTagName(t *testing.T) {
	got := tokenizeAll([]rune("<tag"))
	assert.Equal(t, token.EOF, got[len(got)-1].Type)
}

func TestTokenizerEOFInAttributeName(t *testing.T) {
	got := tokenizeAll([]rune("<tag attr"))
	assert.Equal(t, token.EOF, got[len(got)-1].Type)
}

func TestTokenizerEOFInAttributeValueDoubleQuoted(t *testing.T) {
	got := tokenizeAll([]rune(`<tag attr="value`))
	assert.Equal(t, token.EOF, got[len(got)-1].Type)
	// No start tag is ever completed: the tag is abandoned at EOF.
	for _, tok := range got {
		assert.NotEqual(t, token.StartTag, tok.Type)
	}
}

func TestTokenizerScriptDataEscapedCommentLikeTextEndsOnBareEndTag(t *testing.T) {
	tz := New()
	var got []token.Token
	tz.AttachSink(func(t token.Token) { got = append(got, t) })
	tz.Write([]rune("<script>"), false)
	tz.SetState(ScriptData, "script")
	tz.Write([]rune("<!--</script>-->"), false)
	tz.Write(nil, true)

	want := []token.Token{{Type: token.StartTag, TagName: "script"}}
	want = append(want, charTokens("<!--")...)
	want = append(want, token.Token{Type: token.EndTag, TagName: "script"})
	want = append(want, charTokens("-->")...)
	want = append(want, token.Token{Type: token.EOF})
	assert.Equal(t, want, got)
}

func TestTokenizerScriptDataDoubleEscapedNestedScriptTagDoesNotEndElement(t *testing.T) {
	tz := New()
	var got []token.Token
	tz.AttachSink(func(t token.Token) { got = append(got, t) })
	tz.Write([]rune("<script>"), false)
	tz.SetState(ScriptData, "script")
	// A literal "<script>...</script>" appearing inside the comment-like
	// escaped region flips to double-escaped mode and back without ever
	// producing an EndTag token: only a bare </script> (not preceded by
	// a nested <script>) closes the element in escaped mode.
	tz.Write([]rune("<!--<script>a</script>-->"), false)
	tz.Write(nil, true)

	want := []token.Token{{Type: token.StartTag, TagName: "script"}}
	want = append(want, charTokens("<!--<script>a</script>-->")...)
	want = append(want, token.Token{Type: token.EOF})
	assert.Equal(t, want, got)
	for _, tok := range got {
		assert.NotEqual(t, token.EndTag, tok.Type, "no end tag should be produced while still inside the double-escaped region")
	}
}

func TestTokenizerChunkInvariance(t *testing.T) {
	input := []rune(`<p class="x">hi &amp; <b>there</b></p><!--c--><!DOCTYPE html>`)
	whole := tokenizeAll(input)
	for split := 0; split <= len(input); split++ {
		got := tokenizeAll(input[:split], input[split:])
		assert.Equalf(t, whole, got, "split at %d", split)
	}
}
