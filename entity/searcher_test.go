package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func search(name string) (Entry, bool) {
	s := NewSearcher(name[0])
	for i := 1; i < len(name) && s.NeedMoreInput(); i++ {
		s.Next(name[i])
	}
	return s.Result()
}

func TestSearcherMatchesEveryEntryByName(t *testing.T) {
	for i := 0; i < len(table); i++ {
		e := At(i)
		got, ok := search(e.Name)
		assert.Truef(t, ok, "name %q", e.Name)
		assert.Equal(t, e, got, e.Name)
	}
}

func TestSearcherLongestMatchWins(t *testing.T) {
	// "amp" is itself a valid (legacy) entity, and "amp;" extends it;
	// feeding the full "amp;" must report the longer match.
	got, ok := search("amp;")
	assert.True(t, ok)
	assert.Equal(t, "amp;", got.Name)
}

func TestSearcherNonNameProperPrefixFails(t *testing.T) {
	// "no" is a proper prefix of "not;"/"notin;" but not itself a name.
	got, ok := search("no")
	assert.False(t, ok)
	assert.Equal(t, Entry{}, got)
}

func TestSearcherUnknownFirstLetter(t *testing.T) {
	s := NewSearcher('z')
	assert.False(t, s.NeedMoreInput())
	_, ok := s.Result()
	assert.False(t, ok)
}

func TestSearcherStopsEarlyOnMismatch(t *testing.T) {
	s := NewSearcher('a')
	s.Next('m')
	s.Next('p') // matched "amp" here
	assert.True(t, s.NeedMoreInput())
	s.Next('X') // not ';', and no entity "ampX..."
	_, ok := s.Result()
	assert.True(t, ok) // "amp" itself still recorded
	e, _ := s.Result()
	assert.Equal(t, "amp", e.Name)
}
