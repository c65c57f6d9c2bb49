package controller

import _ "embed"

// DefaultStylesheet is the built-in user-agent stylesheet (spec.md §6):
// iterated first in Cascade, ahead of any page styles, so that minimal
// block/inline resets apply unless an author rule marks a property
// `!important` or a key the defaults never set.
//
//go:embed default_styles.css
var DefaultStylesheet string
