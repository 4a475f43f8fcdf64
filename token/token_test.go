package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFinishAttrFirstOccurrenceWins(t *testing.T) {
	var tok Token
	tok.StartAttr()
	tok.AppendAttrName("class")
	tok.AppendAttrValue("a")
	tok.FinishAttr()

	tok.StartAttr()
	tok.AppendAttrName("class")
	tok.AppendAttrValue("b")
	tok.FinishAttr()

	assert.Equal(t, []Attribute{{Name: "class", Value: "a"}}, tok.Attrs)
}

func TestFinishAttrBuildsNameAndValuePiecewise(t *testing.T) {
	var tok Token
	tok.StartAttr()
	tok.AppendAttrName("da")
	tok.AppendAttrName("ta")
	tok.AppendAttrValue("1")
	tok.AppendAttrValue("23")
	tok.FinishAttr()

	assert.Equal(t, []Attribute{{Name: "data", Value: "123"}}, tok.Attrs)
	assert.False(t, tok.HasIncompleteAttr())
}

func TestResetClearsToFreshTokenOfGivenType(t *testing.T) {
	tok := Token{Type: StartTag, TagName: "div", Attrs: []Attribute{{Name: "id", Value: "x"}}}
	tok.Reset(Character)
	assert.Equal(t, Token{Type: Character}, tok)
}

func TestTypeStringNames(t *testing.T) {
	assert.Equal(t, "StartTag", StartTag.String())
	assert.Equal(t, "EOF", EOF.String())
}
