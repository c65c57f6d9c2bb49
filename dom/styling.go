package dom

import (
	"github.com/npillmayer/miniweb/css"
	"github.com/npillmayer/miniweb/style"
)

// ApplyStyles runs the cascade and inheritance passes (spec.md §4.6–§4.7)
// over the whole tree rooted at root, populating SpecifiedStyle,
// InheritedStyle, and ComputedStyle on every element node. rules must
// already be in document order (user-agent defaults first, then page
// styles), e.g. the concatenation of several css.Scanner outputs.
//
// ComputedStyle starts out identical to InheritedStyle; layout.Reflow
// later mutates its ScalarProperty fields in place via style.ResolveBox,
// which is what finally turns "inherited" raw values into "computed"
// resolved pixels (spec.md §4.8).
func ApplyStyles(root *Node, rules []css.StyleRule) {
	vars := style.CollectRootVariables(rules)
	applyStylesRec(root, nil, nil, rules, vars)
}

func applyStylesRec(n *Node, ancestors []style.ElementAccessor, parentDecls style.Declarations, rules []css.StyleRule, vars map[string]css.Value) {
	if n.Kind != Element {
		return
	}
	specified := style.Cascade(n, ancestors, rules)
	base := style.DefaultForTag(n.TagName)
	merged := style.ApplyInheritance(base, specified, parentDecls)

	n.SpecifiedStyle = style.ToStyle(specified, vars)
	n.InheritedStyle = style.ToStyle(merged, vars)
	n.ComputedStyle = n.InheritedStyle

	childAncestors := append([]style.ElementAccessor{style.ElementAccessor(n)}, ancestors...)
	for _, ch := range n.Children() {
		applyStylesRec(ch, childAncestors, merged, rules, vars)
	}
}
