package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func run(chunks ...[]rune) []rune {
	p := New()
	var got []rune
	p.AttachSink(func(cp rune) { got = append(got, cp) })
	for _, c := range chunks {
		p.Write(c)
	}
	return got
}

func TestStripsLeadingBOM(t *testing.T) {
	got := run([]rune{0xFEFF, 'a', 'b'})
	assert.Equal(t, []rune{'a', 'b'}, got)
}

func TestBOMOnlyStrippedAtStart(t *testing.T) {
	got := run([]rune{'a', 0xFEFF, 'b'})
	assert.Equal(t, []rune{'a', 0xFEFF, 'b'}, got)
}

func TestCRBecomesLF(t *testing.T) {
	got := run([]rune{'a', 0x000D, 'b'})
	assert.Equal(t, []rune{'a', 0x000A, 'b'}, got)
}

func TestCRLFCollapsesToOneLF(t *testing.T) {
	got := run([]rune{'a', 0x000D, 0x000A, 'b'})
	assert.Equal(t, []rune{'a', 0x000A, 'b'}, got)
}

func TestCRLFAcrossChunkBoundary(t *testing.T) {
	got := run([]rune{'a', 0x000D}, []rune{0x000A, 'b'})
	assert.Equal(t, []rune{'a', 0x000A, 'b'}, got)
}

func TestNoOutputContainsCR(t *testing.T) {
	got := run([]rune{0x000D, 0x000D, 0x000D, 0x000A})
	for _, cp := range got {
		assert.NotEqual(t, rune(0x000D), cp)
	}
}

func TestChunkInvariance(t *testing.T) {
	input := []rune{0xFEFF, 'a', 0x000D, 0x000A, 'b', 0x000D, 'c'}
	whole := run(input)
	for split := 0; split <= len(input); split++ {
		got := run(input[:split], input[split:])
		assert.Equalf(t, whole, got, "split at %d", split)
	}
}
