package style

import "github.com/npillmayer/miniweb/css"

// shorthandSides maps a shorthand property key to its four expanded
// longhand keys in top/right/bottom/left order (spec.md §9: "Shorthand
// expansion (margin, padding, inset) happens in the property setter, not
// at parse time").
var shorthandSides = map[string][4]string{
	"margin":  {"margin-top", "margin-right", "margin-bottom", "margin-left"},
	"padding": {"padding-top", "padding-right", "padding-bottom", "padding-left"},
	"inset":   {"top", "right", "bottom", "left"},
}

// ExpandShorthand expands a margin/padding/inset shorthand value into its
// four longhand declarations using the standard CSS 1/2/3/4-value rule. It
// returns nil if key isn't one of the three shorthands.
func ExpandShorthand(key string, v css.Value) map[string]css.Value {
	longhands, ok := shorthandSides[key]
	if !ok {
		return nil
	}
	var parts []css.Value
	if v.Kind == css.VMultiple {
		parts = v.Items
	} else {
		parts = []css.Value{v}
	}
	var top, right, bottom, left css.Value
	switch len(parts) {
	case 1:
		top, right, bottom, left = parts[0], parts[0], parts[0], parts[0]
	case 2:
		top, bottom = parts[0], parts[0]
		right, left = parts[1], parts[1]
	case 3:
		top, right, left = parts[0], parts[1], parts[1]
		bottom = parts[2]
	case 4:
		top, right, bottom, left = parts[0], parts[1], parts[2], parts[3]
	default:
		return nil
	}
	return map[string]css.Value{
		longhands[0]: top,
		longhands[1]: right,
		longhands[2]: bottom,
		longhands[3]: left,
	}
}

// MergeDeclaration folds one scanned css.Declaration into specified,
// expanding shorthands and honoring spec.md §4.6's merge rule: "a key
// already written remains unless the new declaration is !important".
func MergeDeclaration(specified Declarations, d css.Declaration) {
	if expanded := ExpandShorthand(d.Key, d.Value); expanded != nil {
		for k, v := range expanded {
			mergeOne(specified, k, v, d.Important)
		}
		return
	}
	mergeOne(specified, d.Key, d.Value, d.Important)
}

func mergeOne(specified Declarations, key string, v css.Value, important bool) {
	existing, ok := specified[key]
	if !ok || important {
		specified[key] = Declaration{Value: v, Important: important}
		return
	}
	_ = existing // key already written and new declaration isn't important: keep existing
}
