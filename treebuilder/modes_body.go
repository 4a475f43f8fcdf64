package treebuilder

import (
	"reflect"

	"github.com/nomovok-opensource/frenzy-html/dom"
	"github.com/nomovok-opensource/frenzy-html/token"
)

// sameMode compares two insertionMode values. Func values are only
// comparable to nil directly, so spec.md §4.5's "insertion mode is one
// of ..." checks go through their code pointers.
func sameMode(a, b insertionMode) bool {
	return reflect.ValueOf(a).Pointer() == reflect.ValueOf(b).Pointer()
}

var headingNames = map[string]bool{"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true}

func (tb *TreeBuilder) closePIfInButtonScope() {
	if tb.elementInScope(buttonScope, "p") {
		tb.generateImpliedEndTags("p")
		tb.popUntil(buttonScope, "p")
	}
}

// inBodyMode implements the IN BODY insertion mode (spec.md §4.5), the
// largest mode and the target of resetInsertionMode's default case.
func inBodyMode(tb *TreeBuilder, tok token.Token) bool {
	switch tok.Type {
	case token.Character:
		if tok.CP == 0 {
			tb.parseError("unexpected-null-character")
			return true
		}
		tb.reconstructActiveFormattingElements()
		tb.insertText(string(tok.CP))
		if !isWhitespace(tok.CP) {
			tb.frameSetOK = false
		}
		return true

	case token.Comment:
		tb.insertComment(tok.CommentText)
		return true

	case token.Doctype:
		tb.parseError("unexpected-doctype")
		return true

	case token.EOF:
		tb.stop = true
		return true

	case token.StartTag:
		switch tok.TagName {
		case "html":
			tb.parseError("unexpected-start-tag-html")
			if len(tb.oe) > 0 {
				for _, a := range tok.Attrs {
					if _, ok := dom.GetAttribute(tb.oe[0], a.Name); !ok {
						dom.SetAttribute(tb.oe[0], a.Name, a.Value)
					}
				}
			}
			return true

		case "base", "basefont", "bgsound", "link", "meta", "noframes", "script", "style", "template", "title":
			return inHeadMode(tb, tok)

		case "body":
			tb.parseError("unexpected-start-tag-body")
			if len(tb.oe) > 1 {
				body := tb.oe[1]
				tb.frameSetOK = false
				for _, a := range tok.Attrs {
					if _, ok := dom.GetAttribute(body, a.Name); !ok {
						dom.SetAttribute(body, a.Name, a.Value)
					}
				}
			}
			return true

		case "frameset":
			tb.parseError("unexpected-start-tag-frameset")
			return true

		case "address", "article", "aside", "blockquote", "center", "details", "dialog",
			"dir", "div", "dl", "fieldset", "figcaption", "figure", "footer", "header",
			"hgroup", "main", "menu", "nav", "ol", "p", "section", "summary", "ul":
			tb.closePIfInButtonScope()
			tb.insertElementForToken(tok)
			return true

		case "h1", "h2", "h3", "h4", "h5", "h6":
			tb.closePIfInButtonScope()
			if headingNames[tb.current().TagName] {
				tb.parseError("nested-heading")
				tb.pop()
			}
			tb.insertElementForToken(tok)
			return true

		case "pre", "listing":
			tb.closePIfInButtonScope()
			tb.insertElementForToken(tok)
			tb.ignoreNextLF = true
			tb.frameSetOK = false
			return true

		case "form":
			if tb.form != nil && !tb.oeContains("template") {
				tb.parseError("unexpected-start-tag-form")
				return true
			}
			tb.closePIfInButtonScope()
			el := tb.insertElementForToken(tok)
			if !tb.oeContains("template") {
				tb.form = el
			}
			return true

		case "li":
			tb.frameSetOK = false
			for i := len(tb.oe) - 1; i >= 0; i-- {
				n := tb.oe[i]
				if n.TagName == "li" {
					tb.generateImpliedEndTags("li")
					tb.popUntil(generalScope, "li")
					break
				}
				if dom.IsSpecial(n) && n.TagName != "address" && n.TagName != "div" && n.TagName != "p" {
					break
				}
			}
			tb.closePIfInButtonScope()
			tb.insertElementForToken(tok)
			return true

		case "dd", "dt":
			tb.frameSetOK = false
			for i := len(tb.oe) - 1; i >= 0; i-- {
				n := tb.oe[i]
				if n.TagName == "dd" || n.TagName == "dt" {
					tb.generateImpliedEndTags(n.TagName)
					tb.popUntil(generalScope, n.TagName)
					break
				}
				if dom.IsSpecial(n) && n.TagName != "address" && n.TagName != "div" && n.TagName != "p" {
					break
				}
			}
			tb.closePIfInButtonScope()
			tb.insertElementForToken(tok)
			return true

		case "plaintext":
			tb.closePIfInButtonScope()
			tb.insertElementForToken(tok)
			if tb.setTokenizerState != nil {
				tb.setTokenizerState(true, false, "plaintext")
			}
			return true

		case "button":
			if tb.elementInScope(generalScope, "button") {
				tb.parseError("nested-button")
				tb.generateImpliedEndTags("")
				tb.popUntil(generalScope, "button")
			}
			tb.reconstructActiveFormattingElements()
			tb.insertElementForToken(tok)
			tb.frameSetOK = false
			return true

		case "a":
			if idx := tb.afeLastBeforeMarker("a"); idx != -1 {
				el := tb.afe[idx].el
				tb.parseError("unexpected-nested-a")
				tb.adoptionAgency("a")
				tb.afeRemove(el)
				tb.oeRemove(el)
			}
			tb.reconstructActiveFormattingElements()
			el := tb.insertElementForToken(tok)
			tb.addFormattingElement(el)
			return true

		case "b", "big", "code", "em", "font", "i", "nobr", "s", "small", "strike", "strong", "tt", "u":
			tb.reconstructActiveFormattingElements()
			el := tb.insertElementForToken(tok)
			tb.addFormattingElement(el)
			return true

		case "applet", "marquee", "object":
			tb.reconstructActiveFormattingElements()
			tb.insertElementForToken(tok)
			tb.pushMarker()
			tb.frameSetOK = false
			return true

		case "table":
			tb.closePIfInButtonScope()
			tb.insertElementForToken(tok)
			tb.frameSetOK = false
			tb.mode = inTableMode
			return true

		case "area", "br", "embed", "img", "keygen", "wbr":
			tb.reconstructActiveFormattingElements()
			tb.insertElementForToken(tok)
			tb.pop()
			tb.frameSetOK = false
			return true

		case "input":
			tb.reconstructActiveFormattingElements()
			tb.insertElementForToken(tok)
			tb.pop()
			if t, _ := dom.GetAttribute(tb.current(), "type"); t != "hidden" || !hasAttr(tok, "type") {
				tb.frameSetOK = false
			}
			return true

		case "param", "source", "track":
			tb.insertElementForToken(tok)
			tb.pop()
			return true

		case "hr":
			tb.closePIfInButtonScope()
			tb.insertElementForToken(tok)
			tb.pop()
			tb.frameSetOK = false
			return true

		case "textarea":
			tb.insertElementForToken(tok)
			tb.ignoreNextLF = true
			tb.frameSetOK = false
			tb.originalMode = tb.mode
			tb.mode = textMode
			return true

		case "xmp":
			tb.closePIfInButtonScope()
			tb.reconstructActiveFormattingElements()
			tb.frameSetOK = false
			tb.insertElementForToken(tok)
			tb.originalMode = tb.mode
			tb.mode = textMode
			return true

		case "iframe":
			tb.frameSetOK = false
			tb.insertElementForToken(tok)
			tb.originalMode = tb.mode
			tb.mode = textMode
			return true

		case "noembed":
			tb.insertElementForToken(tok)
			tb.originalMode = tb.mode
			tb.mode = textMode
			return true

		case "select":
			tb.reconstructActiveFormattingElements()
			tb.insertElementForToken(tok)
			tb.frameSetOK = false
			switch {
			case sameMode(tb.mode, inTableMode), sameMode(tb.mode, inCaptionMode),
				sameMode(tb.mode, inTableBodyMode), sameMode(tb.mode, inRowMode),
				sameMode(tb.mode, inCellMode):
				tb.mode = inSelectInTableMode
			default:
				tb.mode = inSelectMode
			}
			return true

		case "optgroup", "option":
			if tb.current().TagName == "option" {
				tb.pop()
			}
			tb.reconstructActiveFormattingElements()
			tb.insertElementForToken(tok)
			return true

		case "rb", "rtc":
			if tb.elementInScope(generalScope, "ruby") {
				tb.generateImpliedEndTags("")
			}
			tb.insertElementForToken(tok)
			return true

		case "rp", "rt":
			if tb.elementInScope(generalScope, "ruby") {
				tb.generateImpliedEndTags("rtc")
			}
			tb.insertElementForToken(tok)
			return true

		case "math", "svg":
			tb.reconstructActiveFormattingElements()
			tb.insertElementForToken(tok)
			if tok.SelfClosing {
				tb.pop()
			}
			return true

		case "caption", "col", "colgroup", "frame", "head", "tbody", "td", "tfoot", "th", "thead", "tr":
			tb.parseError("unexpected-start-tag-ignored")
			return true

		default:
			tb.reconstructActiveFormattingElements()
			tb.insertElementForToken(tok)
			return true
		}

	case token.EndTag:
		switch tok.TagName {
		case "template":
			return inHeadMode(tb, tok)

		case "body":
			if !tb.elementInScope(generalScope, "body") {
				tb.parseError("unexpected-end-tag-body")
				return true
			}
			tb.mode = afterBodyMode
			return true

		case "html":
			if !tb.elementInScope(generalScope, "body") {
				tb.parseError("unexpected-end-tag-html")
				return true
			}
			tb.mode = afterBodyMode
			return false

		case "address", "article", "aside", "blockquote", "button", "center", "details",
			"dialog", "dir", "div", "dl", "fieldset", "figcaption", "figure", "footer",
			"header", "hgroup", "listing", "main", "menu", "nav", "ol", "pre", "section",
			"summary", "ul":
			if !tb.elementInScope(generalScope, tok.TagName) {
				tb.parseError("unexpected-end-tag")
				return true
			}
			tb.generateImpliedEndTags("")
			tb.popUntil(generalScope, tok.TagName)
			return true

		case "form":
			if tb.oeContains("template") {
				if !tb.elementInScope(generalScope, "form") {
					tb.parseError("unexpected-end-tag-form")
					return true
				}
				tb.generateImpliedEndTags("")
				tb.popUntil(generalScope, "form")
				return true
			}
			node := tb.form
			tb.form = nil
			if node == nil || !tb.elementInScope(generalScope, node.TagName) {
				tb.parseError("unexpected-end-tag-form")
				return true
			}
			tb.generateImpliedEndTags("")
			tb.oeRemove(node)
			return true

		case "p":
			if !tb.elementInScope(buttonScope, "p") {
				tb.parseError("unexpected-end-tag-p")
				tb.insertImpliedElementForClose("p")
			}
			tb.generateImpliedEndTags("p")
			tb.popUntil(buttonScope, "p")
			return true

		case "li":
			if !tb.elementInScope(listScope, "li") {
				tb.parseError("unexpected-end-tag-li")
				return true
			}
			tb.generateImpliedEndTags("li")
			tb.popUntil(generalScope, "li")
			return true

		case "dd", "dt":
			if !tb.elementInScope(generalScope, tok.TagName) {
				tb.parseError("unexpected-end-tag")
				return true
			}
			tb.generateImpliedEndTags(tok.TagName)
			tb.popUntil(generalScope, tok.TagName)
			return true

		case "h1", "h2", "h3", "h4", "h5", "h6":
			if !tb.elementInScope(generalScope, "h1", "h2", "h3", "h4", "h5", "h6") {
				tb.parseError("unexpected-end-tag")
				return true
			}
			tb.generateImpliedEndTags("")
			tb.popUntil(generalScope, "h1", "h2", "h3", "h4", "h5", "h6")
			return true

		case "applet", "marquee", "object":
			if !tb.elementInScope(generalScope, tok.TagName) {
				tb.parseError("unexpected-end-tag")
				return true
			}
			tb.generateImpliedEndTags("")
			tb.popUntil(generalScope, tok.TagName)
			tb.clearActiveFormattingElements()
			return true

		case "br":
			tb.parseError("unexpected-end-tag-br")
			tb.reconstructActiveFormattingElements()
			tb.insertElementForToken(token.Token{Type: token.StartTag, TagName: "br"})
			tb.pop()
			tb.frameSetOK = false
			return true

		default:
			if formattingTagNames[tok.TagName] {
				tb.adoptionAgency(tok.TagName)
				return true
			}
			tb.endTagOther(tok.TagName)
			return true
		}
	}
	return true
}

// insertImpliedElementForClose inserts a plain element used only to keep
// popUntil's invariant intact when spec.md's "act as if an <x> start tag
// had been seen" step applies to an end tag with no matching open start.
func (tb *TreeBuilder) insertImpliedElementForClose(name string) {
	tb.insertElementForToken(token.Token{Type: token.StartTag, TagName: name})
}

// afeLastBeforeMarker returns the index of the most recent entry named
// name since the last marker, or -1.
func (tb *TreeBuilder) afeLastBeforeMarker(name string) int {
	for i := len(tb.afe) - 1; i >= 0; i-- {
		if tb.afe[i].marker {
			return -1
		}
		if tb.afe[i].el.TagName == name {
			return i
		}
	}
	return -1
}

// textMode implements the TEXT insertion mode (spec.md §4.5), used
// while consuming RCDATA/RAWTEXT element content.
func textMode(tb *TreeBuilder, tok token.Token) bool {
	switch tok.Type {
	case token.Character:
		tb.insertText(string(tok.CP))
		return true
	case token.EOF:
		tb.parseError("eof-in-text-mode")
		tb.pop()
		tb.mode = tb.originalMode
		return false
	case token.EndTag:
		tb.pop()
		tb.mode = tb.originalMode
		return true
	default:
		return true
	}
}
