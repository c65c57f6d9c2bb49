package style

import (
	"strings"

	"github.com/npillmayer/miniweb/css"
)

// CollectRootVariables scans rules for `:root { --name: value; }` blocks
// and returns the resulting custom-property table (spec.md §9 Open
// Question (c)). Pseudo-classes never match as ordinary selectors (spec.md
// §4.6), so :root is handled here as a special case ahead of the regular
// per-element cascade, rather than by relaxing Matches.
func CollectRootVariables(rules []css.StyleRule) map[string]css.Value {
	vars := map[string]css.Value{}
	for _, r := range rules {
		if !isRootSelector(r.Selector) {
			continue
		}
		for _, d := range r.Declarations {
			if strings.HasPrefix(d.Key, "--") {
				vars[d.Key] = d.Value
			}
		}
	}
	return vars
}

func isRootSelector(sel css.Selector) bool {
	switch sel.Kind {
	case css.SelPseudoClass:
		return strings.EqualFold(sel.Name, "root")
	case css.SelAnd:
		for _, s := range sel.Items {
			if isRootSelector(s) {
				return true
			}
		}
		return false
	case css.SelOr:
		for _, s := range sel.Items {
			if isRootSelector(s) {
				return true
			}
		}
		return false
	}
	return false
}

// Cascade builds one element's specified-style declaration map by walking
// rules in document order (spec.md §4.6: "iterate all rules in stylesheet
// order (user-agent defaults, then page styles)"), merging each matching
// rule's declarations via MergeDeclaration.
func Cascade(el ElementAccessor, ancestors []ElementAccessor, rules []css.StyleRule) Declarations {
	specified := Declarations{}
	for _, r := range rules {
		if isRootSelector(r.Selector) {
			continue // consumed separately by CollectRootVariables
		}
		if !css.Matches(r.Selector, el, ancestors) {
			continue
		}
		for _, d := range r.Declarations {
			if strings.HasPrefix(d.Key, "--") {
				continue // custom properties only apply via :root today
			}
			MergeDeclaration(specified, d)
		}
	}
	return specified
}
