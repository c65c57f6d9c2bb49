package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewElementUppercasesTag(t *testing.T) {
	n := NewElement("div")
	assert.Equal(t, "DIV", n.TagName)
	assert.Equal(t, "DIV", n.Tag())
}

func TestAppendChildAndParent(t *testing.T) {
	root := NewElement("div")
	child := NewElement("p")
	root.AppendChild(child)
	assert.Equal(t, root, child.Parent())
	assert.Equal(t, 1, root.ChildCount())
	assert.Equal(t, 0, root.IndexOfChild(child))
}

func TestSetAttributePreservesInsertionOrder(t *testing.T) {
	n := NewElement("div")
	n.SetAttribute("id", "a")
	n.SetAttribute("class", "note")
	n.SetAttribute("id", "b") // update, not move
	attrs := n.Attributes()
	assert.Len(t, attrs, 2)
	assert.Equal(t, "id", attrs[0].Key)
	assert.Equal(t, "b", attrs[0].Value)
}

func TestClassListSplitsOnWhitespace(t *testing.T) {
	n := NewElement("div")
	n.SetAttribute("class", "note  warn")
	assert.Equal(t, []string{"note", "warn"}, n.ClassList())
}

func TestAncestorsNearestFirst(t *testing.T) {
	grandparent := NewElement("section")
	parent := NewElement("div")
	child := NewElement("p")
	grandparent.AppendChild(parent)
	parent.AppendChild(child)

	anc := child.Ancestors()
	assert.Len(t, anc, 2)
	assert.Equal(t, parent, anc[0])
	assert.Equal(t, grandparent, anc[1])
}

func TestAttributeLookupMissing(t *testing.T) {
	n := NewElement("div")
	_, ok := n.Attribute("href")
	assert.False(t, ok)
}
