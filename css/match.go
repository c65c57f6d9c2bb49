package css

import "strings"

// ElementAccessor is the minimal view of a DOM element the selector
// matcher needs. dom.Node satisfies this structurally without either
// package importing the other.
type ElementAccessor interface {
	Tag() string
	ID() string
	ClassList() []string
	Attribute(key string) (string, bool)
}

// Matches reports whether sel matches el, given el's ancestor chain
// (nearest ancestor first), per spec.md §4.6.
func Matches(sel Selector, el ElementAccessor, ancestors []ElementAccessor) bool {
	switch sel.Kind {
	case SelTag:
		return sel.Name == "*" || strings.EqualFold(sel.Name, el.Tag())
	case SelID:
		return el.ID() == sel.Name
	case SelClass:
		for _, c := range el.ClassList() {
			if c == sel.Name {
				return true
			}
		}
		return false
	case SelAttribute:
		return matchAttribute(sel, el)
	case SelPseudoClass, SelPseudoElement:
		return false // reserved, never match per spec.md §4.6
	case SelAnd:
		for _, s := range sel.Items {
			if !Matches(s, el, ancestors) {
				return false
			}
		}
		return true
	case SelOr:
		for _, s := range sel.Items {
			if Matches(s, el, ancestors) {
				return true
			}
		}
		return false
	case SelCombinator:
		return matchCombinator(sel, el, ancestors)
	}
	return false
}

func matchCombinator(sel Selector, el ElementAccessor, ancestors []ElementAccessor) bool {
	if len(sel.Items) != 2 {
		return false
	}
	ancestorSide, targetSide := sel.Items[0], sel.Items[1]
	if !Matches(targetSide, el, ancestors) {
		return false
	}
	switch sel.Comb {
	case CombChild:
		if len(ancestors) == 0 {
			return false
		}
		return Matches(ancestorSide, ancestors[0], ancestors[1:])
	case CombDescendant:
		for i := range ancestors {
			if Matches(ancestorSide, ancestors[i], ancestors[i+1:]) {
				return true
			}
		}
		return false
	default:
		// Adjacent-sibling (+) and general-sibling (~) combinators parse
		// into the AST (spec.md §3) but spec.md §4.6 only defines matching
		// semantics for child/descendant; the matcher's ancestor-only
		// context has no sibling access, so these never match.
		return false
	}
}

func matchAttribute(sel Selector, el ElementAccessor) bool {
	val, ok := el.Attribute(sel.Name)
	if !ok {
		return false
	}
	if sel.Op == 0 {
		return true
	}
	switch sel.Op {
	case '=':
		return val == sel.Val
	case '~':
		for _, part := range strings.Fields(val) {
			if part == sel.Val {
				return true
			}
		}
		return false
	case '|':
		return val == sel.Val || strings.HasPrefix(val, sel.Val+"-")
	case '^':
		return strings.HasPrefix(val, sel.Val)
	case '$':
		return strings.HasSuffix(val, sel.Val)
	case '*':
		return strings.Contains(val, sel.Val)
	}
	return false
}
