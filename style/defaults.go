package style

import "github.com/npillmayer/miniweb/css"

// inlineTags lists the HTML tag names that default to `display: inline`
// rather than the generic `display: block` default (spec.md §4.7 non-
// inherited default fallback, by element type).
var inlineTags = map[string]bool{
	"SPAN": true, "A": true, "B": true, "I": true, "EM": true, "STRONG": true,
	"CODE": true, "SMALL": true, "SUB": true, "SUP": true, "LABEL": true,
	"ABBR": true, "CITE": true, "MARK": true, "TIME": true, "U": true, "S": true,
}

// noneTags default to `display: none`; like every tag default, an author
// display declaration overrides it.
var noneTags = map[string]bool{
	"HEAD": true, "SCRIPT": true, "STYLE": true, "TITLE": true, "META": true,
	"LINK": true, "BASE": true,
}

// DefaultForTag returns the tag-specific defaults layered under the
// generic Default() declarations: the user-agent's implicit display type.
func DefaultForTag(tag string) Declarations {
	d := Default()
	switch {
	case noneTags[tag]:
		d["display"] = Declaration{Value: css.Value{Kind: css.VString, Str: "none"}}
	case inlineTags[tag]:
		d["display"] = Declaration{Value: css.Value{Kind: css.VString, Str: "inline"}}
	}
	return d
}
