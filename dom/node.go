// Package dom holds the DOM data model: a forest of DomNodes produced by
// htmlparse, styled by the style package, and laid out by layout. It
// mirrors the teacher's dom.W3CNode/styledtree shape but drops the
// w3cdom interface indirection, since no external DOM API consumer exists
// in this module — callers use *dom.Node directly.
package dom

import (
	"strings"

	"github.com/npillmayer/miniweb/internal/tree"
	"github.com/npillmayer/miniweb/style"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("miniweb.dom")
}

// Kind enumerates the DOM node kinds named in spec.md §3.
type Kind int

const (
	Element Kind = iota
	Text
	Comment
	DocumentType
)

// TextLine is a single wrapped line of laid-out text, produced by Reflow
// (layout package) for text nodes.
type TextLine struct {
	Text   string
	X, Y   float64
	Width  float64
	Height float64
}

// Box holds the geometry Reflow computes for a node (spec.md §3, ComputedBox).
type Box struct {
	X, Y          float64
	Width, Height float64
	ContinueX     float64
	ContinueY     float64
	AdjacentMarginBottom float64
	HoverRect     bool
}

// Node is a DOM tree node: element, text, comment, or doctype.
type Node struct {
	inner *tree.Node[*Node]

	Kind    Kind
	TagName string // upper-case for elements
	Value   string // text content for Text/Comment/DocumentType nodes

	attrKeys []string
	attrs    map[string]string
	classes  []string

	SpecifiedStyle *style.Style
	InheritedStyle *style.Style
	ComputedStyle  *style.Style
	ComputedBox    Box
	TextLines      []TextLine
}

func wrap(n *Node) *tree.Node[*Node] {
	tn := tree.NewNode(n)
	n.inner = tn
	return tn
}

// NewElement creates a detached element node with the given (upper-cased)
// tag name.
func NewElement(tag string) *Node {
	n := &Node{Kind: Element, TagName: strings.ToUpper(tag), attrs: map[string]string{}}
	wrap(n)
	return n
}

// NewText creates a detached text node.
func NewText(value string) *Node {
	n := &Node{Kind: Text, Value: value}
	wrap(n)
	return n
}

// NewComment creates a detached comment node.
func NewComment(value string) *Node {
	n := &Node{Kind: Comment, Value: value}
	wrap(n)
	return n
}

// NewDoctype creates a detached doctype node.
func NewDoctype(value string) *Node {
	n := &Node{Kind: DocumentType, Value: value}
	wrap(n)
	return n
}

// AppendChild attaches ch as the last child of n.
func (n *Node) AppendChild(ch *Node) {
	n.inner.AddChild(ch.inner)
}

// Parent returns the parent node, or nil for the root.
func (n *Node) Parent() *Node {
	p := n.inner.Parent()
	if p == nil {
		return nil
	}
	return p.Payload
}

// Children returns the node's children in document order.
func (n *Node) Children() []*Node {
	kids := n.inner.Children()
	out := make([]*Node, len(kids))
	for i, k := range kids {
		out[i] = k.Payload
	}
	return out
}

// ChildCount returns the number of children.
func (n *Node) ChildCount() int { return n.inner.ChildCount() }

// IndexOfChild returns ch's index among n's children, or -1.
func (n *Node) IndexOfChild(ch *Node) int { return n.inner.IndexOfChild(ch.inner) }

// Ancestors returns the ancestor chain, nearest first, not including n.
func (n *Node) Ancestors() []*Node {
	anc := n.inner.Ancestors()
	out := make([]*Node, len(anc))
	for i, a := range anc {
		out[i] = a.Payload
	}
	return out
}

// SetAttribute sets an attribute, preserving first-insertion order for
// ties (spec.md §3 "insertion order preserved for tie-breaking"). Setting
// an existing key updates its value without moving it.
func (n *Node) SetAttribute(key, val string) {
	key = collapseAttrName(key)
	if _, exists := n.attrs[key]; !exists {
		n.attrKeys = append(n.attrKeys, key)
	}
	n.attrs[key] = val
	if key == "class" {
		n.classes = strings.Fields(val)
	}
}

// Attribute returns an attribute's value and whether it was present.
func (n *Node) Attribute(key string) (string, bool) {
	v, ok := n.attrs[key]
	return v, ok
}

// Attributes returns attributes in insertion order.
func (n *Node) Attributes() []KeyVal {
	out := make([]KeyVal, len(n.attrKeys))
	for i, k := range n.attrKeys {
		out[i] = KeyVal{Key: k, Value: n.attrs[k]}
	}
	return out
}

// KeyVal is an ordered attribute pair.
type KeyVal struct {
	Key   string
	Value string
}

// ClassList returns the node's `class` attribute split on whitespace.
func (n *Node) ClassList() []string { return n.classes }

// ID returns the node's `id` attribute, or "".
func (n *Node) ID() string {
	v, _ := n.attrs["id"]
	return v
}

// Tag satisfies style.ElementAccessor: the element's (upper-case) tag name.
func (n *Node) Tag() string { return n.TagName }

func collapseAttrName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}
