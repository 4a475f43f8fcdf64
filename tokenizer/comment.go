package tokenizer

import (
	"github.com/nomovok-opensource/frenzy-html/cpbuf"
	"github.com/nomovok-opensource/frenzy-html/token"
)

// commentStartState implements §8.2.4.46.
func commentStartState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '-':
		return commentStartDashState, false
	case '>':
		tz.parseError("abrupt-closing-of-empty-comment")
		tz.emit(tz.tok)
		tz.tok = token.Token{}
		return dataState, false
	default:
		tz.reconsume(cp)
		return commentState, false
	}
}

// commentStartDashState implements §8.2.4.47.
func commentStartDashState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '-':
		return commentEndState, false
	case '>':
		tz.parseError("abrupt-closing-of-empty-comment")
		tz.emit(tz.tok)
		tz.tok = token.Token{}
		return dataState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-comment")
		tz.emit(tz.tok)
		tz.tok = token.Token{}
		tz.emitEOF()
		return dataState, false
	default:
		tz.tok.CommentText += "-"
		tz.reconsume(cp)
		return commentState, false
	}
}

// commentState implements §8.2.4.48.
func commentState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '<':
		tz.tok.CommentText += "<"
		return commentLessThanSignState, false
	case '-':
		return commentEndDashState, false
	case 0:
		tz.parseError("unexpected-null-character")
		tz.tok.CommentText += "�"
		return commentState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-comment")
		tz.emit(tz.tok)
		tz.tok = token.Token{}
		tz.emitEOF()
		return dataState, false
	default:
		tz.tok.CommentText += string(cp)
		return commentState, false
	}
}

// commentLessThanSignState implements a trimmed version of §8.2.4.49-51:
// it recognizes "<!--" nested inside a comment (a common authoring
// mistake the real state machine specifically guards against) and
// otherwise falls back to the general COMMENT state.
func commentLessThanSignState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '!':
		tz.tok.CommentText += "!"
		return commentLessThanSignBangState, false
	case '<':
		tz.tok.CommentText += "<"
		return commentLessThanSignState, false
	default:
		tz.reconsume(cp)
		return commentState, false
	}
}

func commentLessThanSignBangState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	if cp == '-' {
		return commentLessThanSignBangDashState, false
	}
	tz.reconsume(cp)
	return commentState, false
}

func commentLessThanSignBangDashState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	if cp == '-' {
		return commentEndDashState, false
	}
	tz.reconsume(cp)
	return commentEndState, false
}

// commentEndDashState implements §8.2.4.52.
func commentEndDashState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '-':
		return commentEndState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-comment")
		tz.emit(tz.tok)
		tz.tok = token.Token{}
		tz.emitEOF()
		return dataState, false
	default:
		tz.tok.CommentText += "-"
		tz.reconsume(cp)
		return commentState, false
	}
}

// commentEndState implements §8.2.4.53.
func commentEndState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '>':
		tz.emit(tz.tok)
		tz.tok = token.Token{}
		return dataState, false
	case '!':
		return commentEndBangState, false
	case '-':
		tz.tok.CommentText += "-"
		return commentEndState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-comment")
		tz.emit(tz.tok)
		tz.tok = token.Token{}
		tz.emitEOF()
		return dataState, false
	default:
		tz.tok.CommentText += "--"
		tz.reconsume(cp)
		return commentState, false
	}
}

// commentEndBangState implements §8.2.4.54.
func commentEndBangState(tz *Tokenizer) (stateFn, bool) {
	cp := tz.next()
	switch cp {
	case '-':
		tz.tok.CommentText += "--!"
		return commentEndDashState, false
	case '>':
		tz.parseError("incorrectly-closed-comment")
		tz.emit(tz.tok)
		tz.tok = token.Token{}
		return dataState, false
	case cpbuf.EOF:
		tz.parseError("eof-in-comment")
		tz.emit(tz.tok)
		tz.tok = token.Token{}
		tz.emitEOF()
		return dataState, false
	default:
		tz.tok.CommentText += "--!"
		tz.reconsume(cp)
		return commentState, false
	}
}
