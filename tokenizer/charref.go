package tokenizer

import (
	"strconv"
	"strings"

	"github.com/nomovok-opensource/frenzy-html/cpbuf"
	"github.com/nomovok-opensource/frenzy-html/entity"
)

// win1252 maps the C1 control range 0x80-0x9F to the Windows-1252 code
// points HTML5 substitutes for them in numeric character references
// (spec §4.4).
var win1252 = [32]rune{
	0x20AC, 0x0081, 0x201A, 0x0192, 0x201E, 0x2026, 0x2020, 0x2021,
	0x02C6, 0x2030, 0x0160, 0x2039, 0x0152, 0x008D, 0x017D, 0x008F,
	0x0090, 0x2018, 0x2019, 0x201C, 0x201D, 0x2022, 0x2013, 0x2014,
	0x02DC, 0x2122, 0x0161, 0x203A, 0x0153, 0x009D, 0x017E, 0x0178,
}

func isHexDigit(r rune) bool {
	return isASCIIDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}

// rewindAll pushes a run of code points back onto the front of the
// buffer in order, dropping any trailing EOF sentinel (mirroring
// reconsume's single-code-point handling).
func rewindAll(tz *Tokenizer, cps []rune) {
	if len(cps) > 0 && cps[len(cps)-1] == cpbuf.EOF {
		cps = cps[:len(cps)-1]
	}
	tz.buf.Rewind(cps...)
}

// charRefInState handles '&' in DATA/RCDATA: the character reference
// sub-routine (§4.4) invoked with no attribute context.
func charRefInState(tz *Tokenizer, ret stateFn) (stateFn, bool) {
	return charRef(tz, ret, false)
}

// charRefInAttrState handles '&' inside an attribute value.
func charRefInAttrState(tz *Tokenizer, ret stateFn) (stateFn, bool) {
	return charRef(tz, ret, true)
}

func emitAmp(tz *Tokenizer, inAttr bool) {
	if inAttr {
		tz.tok.AppendAttrValue("&")
		return
	}
	tz.emitChar('&')
}

func emitRefResult(tz *Tokenizer, inAttr bool, cps []rune) {
	for _, cp := range cps {
		if inAttr {
			tz.tok.AppendAttrValue(string(cp))
		} else {
			tz.emitChar(cp)
		}
	}
}

func charRef(tz *Tokenizer, ret stateFn, inAttr bool) (stateFn, bool) {
	if !tz.eof {
		complete := false
		for i := 0; i < tz.buf.Len() && !complete; i++ {
			r := tz.buf.Peek(i)
			complete = r != '#' && !isASCIIAlpha(r) && !isASCIIDigit(r)
		}
		if !complete {
			tz.reconsume('&')
			return ret, true
		}
	}
	cp := tz.next()
	switch {
	case cp == '#':
		return numericCharRef(tz, ret, inAttr)
	case isASCIIAlpha(cp):
		tz.reconsume(cp)
		return namedCharRef(tz, ret, inAttr)
	default:
		tz.reconsume(cp)
		emitAmp(tz, inAttr)
		return ret, false
	}
}

func namedCharRef(tz *Tokenizer, ret stateFn, inAttr bool) (stateFn, bool) {
	first := tz.next()
	consumed := []rune{first}
	s := entity.NewSearcher(byte(first))
	for s.NeedMoreInput() {
		cp := tz.next()
		if cp == cpbuf.EOF {
			break
		}
		if cp > 127 {
			tz.reconsume(cp)
			break
		}
		s.Next(byte(cp))
		consumed = append(consumed, cp)
	}

	entry, ok := s.Result()
	if !ok {
		rewindAll(tz, consumed)
		emitAmp(tz, inAttr)
		return ret, false
	}

	matchLen := len(entry.Name)
	rewindAll(tz, consumed[matchLen:])

	hasSemicolon := strings.HasSuffix(entry.Name, ";")
	if inAttr && !hasSemicolon {
		if next := tz.buf.Peek(0); next == '=' || isASCIIDigit(next) || isASCIIAlpha(next) {
			rewindAll(tz, consumed[:matchLen])
			emitAmp(tz, inAttr)
			return ret, false
		}
	}
	if !hasSemicolon {
		tz.parseError("missing-semicolon-after-character-reference")
	}

	cps := []rune{entry.CP1}
	if entry.CP2 != 0 {
		cps = append(cps, entry.CP2)
	}
	emitRefResult(tz, inAttr, cps)
	return ret, false
}

func numericCharRef(tz *Tokenizer, ret stateFn, inAttr bool) (stateFn, bool) {
	hex := false
	cp := tz.next()
	if cp == 'x' || cp == 'X' {
		hex = true
	} else {
		tz.reconsume(cp)
	}

	var digits []rune
	for {
		cp = tz.next()
		if hex && isHexDigit(cp) {
			digits = append(digits, cp)
		} else if !hex && isASCIIDigit(cp) {
			digits = append(digits, cp)
		} else {
			break
		}
	}

	if len(digits) == 0 {
		tz.parseError("absence-of-digits-in-numeric-character-reference")
		tz.reconsume(cp)
		if inAttr {
			tz.tok.AppendAttrValue("&#")
			if hex {
				tz.tok.AppendAttrValue("x")
			}
		} else {
			tz.emitChar('&')
			tz.emitChar('#')
			if hex {
				tz.emitChar('x')
			}
		}
		return ret, false
	}

	if cp != ';' {
		tz.parseError("missing-semicolon-after-character-reference")
		tz.reconsume(cp)
	}

	base := 10
	if hex {
		base = 16
	}
	val, _ := strconv.ParseInt(string(digits), base, 64)
	emitRefResult(tz, inAttr, []rune{filterNumericRef(rune(val))})
	return ret, false
}

// filterNumericRef applies the numeric-reference substitutions of
// spec §4.4: 0 maps to U+FFFD, the Windows-1252-mapped C1 range
// 0x80-0x9F is translated, out-of-range and surrogate values become
// U+FFFD, and everything else passes through unchanged (including CR,
// which is explicitly kept).
func filterNumericRef(v rune) rune {
	switch {
	case v == 0:
		return 0xFFFD
	case v >= 0x80 && v <= 0x9F:
		return win1252[v-0x80]
	case v > 0x10FFFF:
		return 0xFFFD
	case v >= 0xD800 && v <= 0xDFFF:
		return 0xFFFD
	default:
		return v
	}
}
