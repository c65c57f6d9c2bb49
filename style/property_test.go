package style

import (
	"testing"

	"github.com/npillmayer/miniweb/css"
	"github.com/stretchr/testify/assert"
)

func TestExpandShorthandOneValue(t *testing.T) {
	expanded := ExpandShorthand("margin", css.ParseValue("10px"))
	assert.Equal(t, 10.0, expanded["margin-top"].Number)
	assert.Equal(t, 10.0, expanded["margin-right"].Number)
	assert.Equal(t, 10.0, expanded["margin-bottom"].Number)
	assert.Equal(t, 10.0, expanded["margin-left"].Number)
}

func TestExpandShorthandTwoValues(t *testing.T) {
	expanded := ExpandShorthand("padding", css.ParseValue("10px 20px"))
	assert.Equal(t, 10.0, expanded["padding-top"].Number)
	assert.Equal(t, 20.0, expanded["padding-right"].Number)
	assert.Equal(t, 10.0, expanded["padding-bottom"].Number)
	assert.Equal(t, 20.0, expanded["padding-left"].Number)
}

func TestExpandShorthandThreeValues(t *testing.T) {
	expanded := ExpandShorthand("margin", css.ParseValue("1px 2px 3px"))
	assert.Equal(t, 1.0, expanded["margin-top"].Number)
	assert.Equal(t, 2.0, expanded["margin-right"].Number)
	assert.Equal(t, 3.0, expanded["margin-bottom"].Number)
	assert.Equal(t, 2.0, expanded["margin-left"].Number)
}

func TestExpandShorthandFourValues(t *testing.T) {
	expanded := ExpandShorthand("inset", css.ParseValue("1px 2px 3px 4px"))
	assert.Equal(t, 1.0, expanded["top"].Number)
	assert.Equal(t, 2.0, expanded["right"].Number)
	assert.Equal(t, 3.0, expanded["bottom"].Number)
	assert.Equal(t, 4.0, expanded["left"].Number)
}

func TestExpandShorthandNonShorthandReturnsNil(t *testing.T) {
	assert.Nil(t, ExpandShorthand("color", css.ParseValue("red")))
}

func TestMergeDeclarationFirstWriteWins(t *testing.T) {
	specified := Declarations{}
	MergeDeclaration(specified, css.Declaration{Key: "color", Value: css.ParseValue("red")})
	MergeDeclaration(specified, css.Declaration{Key: "color", Value: css.ParseValue("blue")})
	assert.Equal(t, "red", specified["color"].Value.Str)
}

func TestMergeDeclarationImportantOverrides(t *testing.T) {
	specified := Declarations{}
	MergeDeclaration(specified, css.Declaration{Key: "color", Value: css.ParseValue("red")})
	MergeDeclaration(specified, css.Declaration{Key: "color", Value: css.ParseValue("blue"), Important: true})
	assert.Equal(t, "blue", specified["color"].Value.Str)
	assert.True(t, specified["color"].Important)
}

func TestMergeDeclarationExpandsShorthand(t *testing.T) {
	specified := Declarations{}
	MergeDeclaration(specified, css.Declaration{Key: "margin", Value: css.ParseValue("5px")})
	assert.Equal(t, 5.0, specified["margin-top"].Value.Number)
	assert.Equal(t, 5.0, specified["margin-left"].Value.Number)
}
