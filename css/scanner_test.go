package css

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScanRulesSingleRule(t *testing.T) {
	rules := NewScanner(`div { color: red; width: 10px; }`).ScanRules()
	assert.Len(t, rules, 1)
	assert.Equal(t, SelTag, rules[0].Selector.Kind)
	assert.Len(t, rules[0].Declarations, 2)
	assert.Equal(t, "color", rules[0].Declarations[0].Key)
	assert.Equal(t, "red", rules[0].Declarations[0].Value.Str)
}

func TestScanRulesImportant(t *testing.T) {
	rules := NewScanner(`p { color: blue !important; }`).ScanRules()
	assert.Len(t, rules, 1)
	assert.True(t, rules[0].Declarations[0].Important)
	assert.Equal(t, "blue", rules[0].Declarations[0].Value.Str)
}

func TestScanRulesOriginOrder(t *testing.T) {
	rules := NewScanner(`a { color: red; } b { color: green; }`).ScanRules()
	assert.Len(t, rules, 2)
	assert.Equal(t, 0, rules[0].OriginIndex)
	assert.Equal(t, 1, rules[1].OriginIndex)
}

func TestScanRulesSkipsComments(t *testing.T) {
	rules := NewScanner(`/* comment */ div { /* inline */ color: red; }`).ScanRules()
	assert.Len(t, rules, 1)
	assert.Equal(t, "color", rules[0].Declarations[0].Key)
}

func TestScanRulesMediaScreenPassesThrough(t *testing.T) {
	rules := NewScanner(`@media screen { div { color: red; } }`).ScanRules()
	assert.Len(t, rules, 1)
	assert.Equal(t, "div", rules[0].Selector.Name)
}

func TestScanRulesOtherAtRuleDiscarded(t *testing.T) {
	rules := NewScanner(`@media print { div { color: red; } } p { color: blue; }`).ScanRules()
	assert.Len(t, rules, 1)
	assert.Equal(t, "p", rules[0].Selector.Name)
}

func TestScanRulesImportDiscarded(t *testing.T) {
	rules := NewScanner(`@import "foo.css"; div { color: red; }`).ScanRules()
	assert.Len(t, rules, 1)
	assert.Equal(t, "div", rules[0].Selector.Name)
}

func TestScanRulesStringWithBraceLikeChars(t *testing.T) {
	rules := NewScanner(`div::before { content: "{ not a brace }"; }`).ScanRules()
	assert.Len(t, rules, 1)
	assert.Equal(t, "content", rules[0].Declarations[0].Key)
}
