package style

// ApplyInheritance layers specified over the inheritable subset of
// parent's computed declarations over base (the element's static, possibly
// tag-specific defaults — see DefaultForTag), per spec.md §4.7: non-
// inherited properties fall back to their static defaults when unset;
// inheritable properties fall back to the parent's computed value; either
// falls back further to an explicit literal `inherit` keyword, which
// forces the parent's value even for an otherwise non-inheritable
// property. parent may be nil for the document root.
func ApplyInheritance(base, specified Declarations, parent Declarations) Declarations {
	out := Declarations{}
	for k, v := range base {
		out[k] = v
	}
	if parent != nil {
		for k := range inheritableKeys {
			if pv, ok := parent[k]; ok {
				out[k] = pv
			}
		}
	}
	for k, v := range specified {
		if v.Value.IsInherit() {
			if parent != nil {
				if pv, ok := parent[k]; ok {
					out[k] = pv
					continue
				}
			}
			continue // no parent value to inherit: keep the layered-in default
		}
		out[k] = v
	}
	return out
}
