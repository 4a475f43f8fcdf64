package treebuilder

import "github.com/nomovok-opensource/frenzy-html/token"

// afterBodyMode implements AFTER BODY.
func afterBodyMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case isWhitespaceToken(tok):
		return inBodyMode(tb, tok)
	case tok.Type == token.Comment:
		if len(tb.oe) > 0 {
			tb.insertComment(tok.CommentText)
		}
		return true
	case tok.Type == token.Doctype:
		tb.parseError("unexpected-doctype")
		return true
	case tok.Type == token.StartTag && tok.TagName == "html":
		return inBodyMode(tb, tok)
	case tok.Type == token.EndTag && tok.TagName == "html":
		tb.mode = afterAfterBodyMode
		return true
	case tok.Type == token.EOF:
		tb.stop = true
		return true
	default:
		tb.parseError("unexpected-token-after-body")
		tb.mode = inBodyMode
		return false
	}
}

// inFramesetMode implements IN FRAMESET.
func inFramesetMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case isWhitespaceToken(tok):
		tb.insertText(string(tok.CP))
		return true
	case tok.Type == token.Comment:
		tb.insertComment(tok.CommentText)
		return true
	case tok.Type == token.Doctype:
		tb.parseError("unexpected-doctype")
		return true
	case tok.Type == token.StartTag && tok.TagName == "html":
		return inBodyMode(tb, tok)
	case tok.Type == token.StartTag && tok.TagName == "frameset":
		tb.insertElementForToken(tok)
		return true
	case tok.Type == token.EndTag && tok.TagName == "frameset":
		if len(tb.oe) > 0 && tb.oe[0].TagName == "html" {
			tb.parseError("unexpected-end-tag-frameset-root")
			return true
		}
		tb.pop()
		if len(tb.oe) > 0 && tb.current().TagName != "frameset" {
			tb.mode = afterFramesetMode
		}
		return true
	case tok.Type == token.StartTag && tok.TagName == "frame":
		tb.insertElementForToken(tok)
		tb.pop()
		return true
	case tok.Type == token.StartTag && tok.TagName == "noframes":
		return inHeadMode(tb, tok)
	case tok.Type == token.EOF:
		tb.stop = true
		return true
	default:
		tb.parseError("unexpected-token-in-frameset")
		return true
	}
}

// afterFramesetMode implements AFTER FRAMESET.
func afterFramesetMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case isWhitespaceToken(tok):
		tb.insertText(string(tok.CP))
		return true
	case tok.Type == token.Comment:
		tb.insertComment(tok.CommentText)
		return true
	case tok.Type == token.Doctype:
		tb.parseError("unexpected-doctype")
		return true
	case tok.Type == token.StartTag && tok.TagName == "html":
		return inBodyMode(tb, tok)
	case tok.Type == token.EndTag && tok.TagName == "html":
		tb.mode = afterAfterFramesetMode
		return true
	case tok.Type == token.StartTag && tok.TagName == "noframes":
		return inHeadMode(tb, tok)
	case tok.Type == token.EOF:
		tb.stop = true
		return true
	default:
		tb.parseError("unexpected-token-after-frameset")
		return true
	}
}

// afterAfterBodyMode implements AFTER AFTER BODY.
func afterAfterBodyMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case tok.Type == token.Comment:
		tb.insertComment(tok.CommentText)
		return true
	case tok.Type == token.Doctype, isWhitespaceToken(tok):
		return inBodyMode(tb, tok)
	case tok.Type == token.StartTag && tok.TagName == "html":
		return inBodyMode(tb, tok)
	case tok.Type == token.EOF:
		tb.stop = true
		return true
	default:
		tb.parseError("unexpected-token-after-after-body")
		tb.mode = inBodyMode
		return false
	}
}

// afterAfterFramesetMode implements AFTER AFTER FRAMESET.
func afterAfterFramesetMode(tb *TreeBuilder, tok token.Token) bool {
	switch {
	case tok.Type == token.Comment:
		tb.insertComment(tok.CommentText)
		return true
	case tok.Type == token.Doctype, isWhitespaceToken(tok):
		return inBodyMode(tb, tok)
	case tok.Type == token.StartTag && tok.TagName == "html":
		return inBodyMode(tb, tok)
	case tok.Type == token.StartTag && tok.TagName == "noframes":
		return inHeadMode(tb, tok)
	case tok.Type == token.EOF:
		tb.stop = true
		return true
	default:
		tb.parseError("unexpected-token-after-after-frameset")
		return true
	}
}
