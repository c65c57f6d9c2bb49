package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseValueSize(t *testing.T) {
	v := ParseValue("12px")
	assert.Equal(t, VSize, v.Kind)
	assert.Equal(t, 12.0, v.Number)
	assert.Equal(t, Px, v.Unit)
}

func TestParseValuePercent(t *testing.T) {
	v := ParseValue("50%")
	assert.Equal(t, VSize, v.Kind)
	assert.Equal(t, Percent, v.Unit)
	assert.Equal(t, 50.0, v.Number)
}

func TestParseValueEm(t *testing.T) {
	v := ParseValue("1.5em")
	assert.Equal(t, VSize, v.Kind)
	assert.Equal(t, Em, v.Unit)
	assert.Equal(t, 1.5, v.Number)
}

func TestParseValueString(t *testing.T) {
	v := ParseValue("auto")
	assert.Equal(t, VString, v.Kind)
	assert.Equal(t, "auto", v.Str)
}

func TestParseValueInherit(t *testing.T) {
	v := ParseValue("inherit")
	assert.True(t, v.IsInherit())
}

func TestParseValueFunction(t *testing.T) {
	v := ParseValue("rgb(1, 2, 3)")
	assert.Equal(t, VFunction, v.Kind)
	assert.Equal(t, "rgb", v.FuncName)
	assert.Len(t, v.Args, 3)
	assert.Equal(t, 1.0, v.Args[0].Number)
	assert.Equal(t, 3.0, v.Args[2].Number)
}

func TestParseValueMultiple(t *testing.T) {
	v := ParseValue("1px 2px 3px 4px")
	assert.Equal(t, VMultiple, v.Kind)
	assert.Len(t, v.Items, 4)
	assert.Equal(t, 4.0, v.Items[3].Number)
}

func TestParseValueBinaryExpr(t *testing.T) {
	v := ParseValue("100% - 20px")
	assert.Equal(t, VBinaryExpr, v.Kind)
	assert.Equal(t, OpSub, v.Op)
	assert.Equal(t, Percent, v.Left.Unit)
	assert.Equal(t, Px, v.Right.Unit)
}

func TestParseValueEmpty(t *testing.T) {
	v := ParseValue("   ")
	assert.Equal(t, VInvalid, v.Kind)
	assert.False(t, v.IsSet())
}

func TestParseValueVarFunction(t *testing.T) {
	v := ParseValue("var(--accent, blue)")
	assert.Equal(t, VFunction, v.Kind)
	assert.Equal(t, "var", v.FuncName)
	assert.Len(t, v.Args, 2)
	assert.Equal(t, "--accent", v.Args[0].Str)
	assert.Equal(t, "blue", v.Args[1].Str)
}
