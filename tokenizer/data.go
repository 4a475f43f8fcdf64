package tokenizer

import (
	"github.com/nomovok-opensource/frenzy-html/cpbuf"
	"github.com/nomovok-opensource/frenzy-html/token"
)

// dataState implements the DATA state (HTML5 §8.2.4.1).
func dataState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '&':
		return charRefInState(tz, dataState)
	case '<':
		return tagOpenState, false
	case 0:
		tz.parseError("unexpected-null-character")
		tz.emitChar(0xFFFD)
		return dataState, false
	case cpbuf.EOF:
		tz.emitEOF()
		return dataState, false
	default:
		tz.emitChar(cp)
		return dataState, false
	}
}

// tagOpenState implements the TAG OPEN state (§8.2.4.8).
func tagOpenState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch {
	case cp == '!':
		return markupDeclarationOpenState, false
	case cp == '/':
		return endTagOpenState, false
	case isASCIIAlpha(cp):
		tz.reconsume(cp)
		tz.startTag("")
		return tagNameState, false
	case cp == '?':
		tz.parseError("unexpected-question-mark-instead-of-tag-name")
		tz.reconsume(cp)
		tz.tok = token.Token{Type: token.Comment}
		return bogusCommentState, false
	case cp == cpbuf.EOF:
		tz.parseError("eof-before-tag-name")
		tz.emitChar('<')
		tz.emitEOF()
		return dataState, false
	default:
		tz.parseError("invalid-first-character-of-tag-name")
		tz.emitChar('<')
		tz.reconsume(cp)
		return dataState, false
	}
}

// endTagOpenState implements the END TAG OPEN state (§8.2.4.9).
func endTagOpenState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch {
	case isASCIIAlpha(cp):
		tz.reconsume(cp)
		tz.endTag("")
		return tagNameState, false
	case cp == '>':
		tz.parseError("missing-end-tag-name")
		return dataState, false
	case cp == cpbuf.EOF:
		tz.parseError("eof-before-tag-name")
		tz.emitChar('<')
		tz.emitChar('/')
		tz.emitEOF()
		return dataState, false
	default:
		tz.parseError("invalid-first-character-of-tag-name")
		tz.reconsume(cp)
		tz.tok = token.Token{Type: token.Comment}
		return bogusCommentState, false
	}
}

// tagNameState implements the TAG NAME state (§8.2.4.10).
func tagNameState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch {
	case isWhitespace(cp):
		return beforeAttributeNameState, false
	case cp == '/':
		return selfClosingStartTagState, false
	case cp == '>':
		tz.emitCurrentTag()
		return dataState, false
	case isASCIIUpper(cp):
		tz.tok.TagName += string(toASCIILower(cp))
		return tagNameState, false
	case cp == 0:
		tz.parseError("unexpected-null-character")
		tz.tok.TagName += "�"
		return tagNameState, false
	case cp == cpbuf.EOF:
		tz.parseError("eof-in-tag")
		tz.emitEOF()
		return dataState, false
	default:
		tz.tok.TagName += string(cp)
		return tagNameState, false
	}
}

// beforeAttributeNameState implements §8.2.4.34.
func beforeAttributeNameState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch {
	case isWhitespace(cp):
		return beforeAttributeNameState, false
	case cp == '/' || cp == '>' || cp == cpbuf.EOF:
		tz.reconsume(cp)
		return afterAttributeNameStateFromBefore, false
	case cp == '=':
		tz.parseError("unexpected-equals-sign-before-attribute-name")
		tz.tok.StartAttr()
		tz.tok.AppendAttrName(string(cp))
		return attributeNameState, false
	default:
		tz.reconsume(cp)
		tz.tok.StartAttr()
		return attributeNameState, false
	}
}

// afterAttributeNameStateFromBefore handles the "/", ">" and EOF cases
// the real BEFORE ATTRIBUTE NAME state defers to AFTER ATTRIBUTE NAME.
func afterAttributeNameStateFromBefore(tz *Tokenizer) (stateFn, bool) {
	return afterAttributeNameState(tz)
}

// attributeNameState implements §8.2.4.35.
func attributeNameState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch {
	case isWhitespace(cp) || cp == '/' || cp == '>' || cp == cpbuf.EOF:
		tz.reconsume(cp)
		return afterAttributeNameState, false
	case cp == '=':
		return beforeAttributeValueState, false
	case isASCIIUpper(cp):
		tz.tok.AppendAttrName(string(toASCIILower(cp)))
		return attributeNameState, false
	case cp == 0:
		tz.parseError("unexpected-null-character")
		tz.tok.AppendAttrName("�")
		return attributeNameState, false
	case cp == '"' || cp == '\'' || cp == '<':
		tz.parseError("unexpected-character-in-attribute-name")
		tz.tok.AppendAttrName(string(cp))
		return attributeNameState, false
	default:
		tz.tok.AppendAttrName(string(cp))
		return attributeNameState, false
	}
}

// afterAttributeNameState implements §8.2.4.36.
func afterAttributeNameState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch {
	case isWhitespace(cp):
		return afterAttributeNameState, false
	case cp == '/':
		tz.tok.FinishAttr()
		return selfClosingStartTagState, false
	case cp == '=':
		return beforeAttributeValueState, false
	case cp == '>':
		tz.tok.FinishAttr()
		tz.emitCurrentTag()
		return dataState, false
	case cp == cpbuf.EOF:
		tz.tok.FinishAttr()
		tz.parseError("eof-in-tag")
		tz.emitEOF()
		return dataState, false
	default:
		tz.tok.FinishAttr()
		tz.reconsume(cp)
		tz.tok.StartAttr()
		return attributeNameState, false
	}
}

// beforeAttributeValueState implements §8.2.4.37.
func beforeAttributeValueState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch {
	case isWhitespace(cp):
		return beforeAttributeValueState, false
	case cp == '"':
		return attributeValueDoubleQuotedState, false
	case cp == '\'':
		return attributeValueSingleQuotedState, false
	case cp == '>':
		tz.parseError("missing-attribute-value")
		tz.tok.FinishAttr()
		tz.emitCurrentTag()
		return dataState, false
	default:
		tz.reconsume(cp)
		return attributeValueUnquotedState, false
	}
}

// attributeValueDoubleQuotedState implements §8.2.4.38.
func attributeValueDoubleQuotedState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '"':
		tz.tok.FinishAttr()
		return afterAttributeValueQuotedState, false
	case '&':
		return charRefInAttrState(tz, attributeValueDoubleQuotedState)
	case 0:
		tz.parseError("unexpected-null-character")
		tz.tok.AppendAttrValue("�")
		return attributeValueDoubleQuotedState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-tag")
		tz.emitEOF()
		return dataState, false
	default:
		tz.tok.AppendAttrValue(string(cp))
		return attributeValueDoubleQuotedState, false
	}
}

// attributeValueSingleQuotedState implements §8.2.4.39.
func attributeValueSingleQuotedState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '\'':
		tz.tok.FinishAttr()
		return afterAttributeValueQuotedState, false
	case '&':
		return charRefInAttrState(tz, attributeValueSingleQuotedState)
	case 0:
		tz.parseError("unexpected-null-character")
		tz.tok.AppendAttrValue("�")
		return attributeValueSingleQuotedState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-tag")
		tz.emitEOF()
		return dataState, false
	default:
		tz.tok.AppendAttrValue(string(cp))
		return attributeValueSingleQuotedState, false
	}
}

// attributeValueUnquotedState implements §8.2.4.40.
func attributeValueUnquotedState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch {
	case isWhitespace(cp):
		tz.tok.FinishAttr()
		return beforeAttributeNameState, false
	case cp == '&':
		return charRefInAttrState(tz, attributeValueUnquotedState)
	case cp == '>':
		tz.tok.FinishAttr()
		tz.emitCurrentTag()
		return dataState, false
	case cp == 0:
		tz.parseError("unexpected-null-character")
		tz.tok.AppendAttrValue("�")
		return attributeValueUnquotedState, false
	case cp == cpbuf.EOF:
		tz.parseError("eof-in-tag")
		tz.emitEOF()
		return dataState, false
	default:
		tz.tok.AppendAttrValue(string(cp))
		return attributeValueUnquotedState, false
	}
}

// afterAttributeValueQuotedState implements §8.2.4.41.
func afterAttributeValueQuotedState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch {
	case isWhitespace(cp):
		return beforeAttributeNameState, false
	case cp == '/':
		return selfClosingStartTagState, false
	case cp == '>':
		tz.emitCurrentTag()
		return dataState, false
	case cp == cpbuf.EOF:
		tz.parseError("eof-in-tag")
		tz.emitEOF()
		return dataState, false
	default:
		tz.parseError("missing-whitespace-between-attributes")
		tz.reconsume(cp)
		return beforeAttributeNameState, false
	}
}

// selfClosingStartTagState implements §8.2.4.42.
func selfClosingStartTagState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '>':
		tz.tok.SelfClosing = true
		tz.emitCurrentTag()
		return dataState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-tag")
		tz.emitEOF()
		return dataState, false
	default:
		tz.parseError("unexpected-solidus-in-tag")
		tz.reconsume(cp)
		return beforeAttributeNameState, false
	}
}

// bogusCommentState implements §8.2.4.44: accumulate text up to the
// next '>' (or EOF), treating the result as a Comment token.
func bogusCommentState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '>':
		tz.emit(tz.tok)
		tz.tok = token.Token{}
		return dataState, false
	case cpbuf.EOF:
		tz.emit(tz.tok)
		tz.tok = token.Token{}
		tz.emitEOF()
		return dataState, false
	case 0:
		tz.tok.CommentText += "�"
		return bogusCommentState, false
	default:
		tz.tok.CommentText += string(cp)
		return bogusCommentState, false
	}
}

// markupDeclarationOpenState implements §8.2.4.45.
func markupDeclarationOpenState(tz *Tokenizer) (stateFn, bool) {
	if m, ok := tz.peekEqual("--"); !ok {
		return markupDeclarationOpenState, true
	} else if m {
		tz.buf.Discard(2)
		tz.tok = token.Token{Type: token.Comment}
		return commentStartState, false
	}
	if m, ok := tz.peekEqualFold("DOCTYPE"); !ok {
		return markupDeclarationOpenState, true
	} else if m {
		tz.buf.Discard(len("DOCTYPE"))
		return doctypeState, false
	}
	if tz.allowCDATA {
		if m, ok := tz.peekEqual("[CDATA["); !ok {
			return markupDeclarationOpenState, true
		} else if m {
			tz.buf.Discard(len("[CDATA["))
			return cdataSectionState, false
		}
	}
	tz.parseError("incorrectly-opened-comment")
	tz.tok = token.Token{Type: token.Comment}
	return bogusCommentState, false
}

// cdataSectionState is a stub (spec §9 open question: foreign-content
// parsing, including CDATA, is deferred consistently). It discards
// everything up to "]]>" or EOF without producing a token, which is
// safe since CDATA only has meaning inside foreign content and this
// core never enters a foreign-content namespace beyond a stub.
func cdataSectionState(tz *Tokenizer) (stateFn, bool) {
	if m, ok := tz.peekEqual("]]>"); !ok {
		return cdataSectionState, true
	} else if m {
		tz.buf.Discard(3)
		return dataState, false
	}
	cp := tz.next()
	if cp == cpbuf.EOF {
		tz.emitEOF()
		return dataState, false
	}
	return cdataSectionState, false
}
