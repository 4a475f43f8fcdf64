package decode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func decodeAll(chunks ...[]byte) []rune {
	d := New()
	var got []rune
	d.AttachSink(func(cp rune) { got = append(got, cp) })
	for _, c := range chunks {
		d.Write(c)
	}
	d.Write(nil)
	return got
}

func TestDecoderWellFormedASCII(t *testing.T) {
	got := decodeAll([]byte("foo&bar"))
	assert.Equal(t, []rune("foo&bar"), got)
}

func TestDecoderMultibyte(t *testing.T) {
	// "é" (U+00E9) is 0xC3 0xA9; "世" (U+4E16) is 0xE4 0xB8 0x96.
	got := decodeAll([]byte{0xC3, 0xA9, 0xE4, 0xB8, 0x96})
	assert.Equal(t, []rune{0x00E9, 0x4E16}, got)
}

func TestDecoderOverlongTwoByteSlash(t *testing.T) {
	// 0xC0 0xAF is an overlong encoding of '/' (U+002F): invalid.
	got := decodeAll([]byte{0xC0, 0xAF})
	assert.Equal(t, []rune{0xFFFD}, got)
}

func TestDecoderLoneContinuationByte(t *testing.T) {
	got := decodeAll([]byte{0x80})
	assert.Equal(t, []rune{0xFFFD}, got)
}

func TestDecoderSurrogate(t *testing.T) {
	// 0xED 0xA0 0x80 decodes to U+D800, a surrogate: invalid.
	got := decodeAll([]byte{0xED, 0xA0, 0x80})
	assert.Equal(t, []rune{0xFFFD}, got)
}

func TestDecoderFiveByteSequenceAlwaysInvalid(t *testing.T) {
	got := decodeAll([]byte{0xF8, 0x80, 0x80, 0x80, 0x80})
	assert.Equal(t, []rune{0xFFFD}, got)
}

func TestDecoderIncompleteAtEOF(t *testing.T) {
	got := decodeAll([]byte{0xE4, 0xB8})
	assert.Equal(t, []rune{0xFFFD}, got)
}

func TestDecoderMissingContinuationReprocessesByte(t *testing.T) {
	// 0xC3 starts a 2-byte sequence, but 'a' is not a continuation byte:
	// one U+FFFD for the broken prefix, then 'a' decodes normally.
	got := decodeAll([]byte{0xC3, 'a'})
	assert.Equal(t, []rune{0xFFFD, 'a'}, got)
}

func TestDecoderChunkInvariance(t *testing.T) {
	input := []byte("he\xc3\xa9llo\xe4\xb8\x96world")
	whole := decodeAll(input)
	for split := 0; split <= len(input); split++ {
		got := decodeAll(input[:split], input[split:])
		assert.Equalf(t, whole, got, "split at %d", split)
	}
}
