package style

import "github.com/npillmayer/miniweb/css"

// EvalContext carries the per-node bases ScalarResolver needs to turn a
// relative CssValue into an absolute pixel number (spec.md §4.8:
// "percent_base, em_base, and rem_base, refreshed on each recursive
// descent of Reflow").
type EvalContext struct {
	PercentBase float64
	EmBase      float64
	RemBase     float64
}

// Resolve fills in sp.Resolved/sp.HasValue from sp.Raw under ctx. Keywords
// like "auto" leave HasValue false so layout can apply its own fallback.
func (sp *ScalarProperty) Resolve(ctx EvalContext) {
	n, ok := ResolveValue(sp.Raw, ctx)
	sp.Resolved = n
	sp.HasValue = ok
}

// ResolveValue evaluates a CssValue to a pixel number under ctx, per
// spec.md §4.8. Binary expressions (`calc`-like `a - b`) resolve operand by
// operand; unresolvable operands fail the whole expression.
func ResolveValue(v css.Value, ctx EvalContext) (float64, bool) {
	switch v.Kind {
	case css.VNumber:
		return v.Number, true
	case css.VSize:
		switch v.Unit {
		case css.Px:
			return v.Number, true
		case css.Em:
			return v.Number * ctx.EmBase, true
		case css.Percent:
			return v.Number / 100 * ctx.PercentBase, true
		}
		return 0, false
	case css.VBinaryExpr:
		l, lok := ResolveValue(*v.Left, ctx)
		r, rok := ResolveValue(*v.Right, ctx)
		if !lok || !rok {
			return 0, false
		}
		switch v.Op {
		case css.OpAdd:
			return l + r, true
		case css.OpSub:
			return l - r, true
		case css.OpMul:
			return l * r, true
		case css.OpDiv:
			if r == 0 {
				return 0, false
			}
			return l / r, true
		}
		return 0, false
	case css.VMultiple:
		if len(v.Items) > 0 {
			return ResolveValue(v.Items[0], ctx)
		}
		return 0, false
	default:
		return 0, false // VString ("auto", "inherit", ...), VFunction, VInvalid
	}
}

// ResolveBox resolves every ScalarProperty on a Style in place under ctx:
// margin/padding/inset always use PercentBase as the containing block
// width (spec.md §4.8), while width/height additionally fall back to
// HasValue=false for "auto".
func ResolveBox(s *Style, ctx EvalContext) {
	for i := range s.Margin {
		s.Margin[i].Resolve(ctx)
	}
	for i := range s.Padding {
		s.Padding[i].Resolve(ctx)
	}
	for i := range s.Inset {
		s.Inset[i].Resolve(ctx)
	}
	s.Width.Resolve(ctx)
	s.Height.Resolve(ctx)
	s.FontSize.Resolve(EvalContext{PercentBase: ctx.RemBase, EmBase: ctx.EmBase, RemBase: ctx.RemBase})
}
