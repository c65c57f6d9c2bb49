package color

// namedColors is the small, commonly-used subset of the CSS named-color
// table. No pack library ships the full ~150-name table, so it's
// hand-written here rather than via an ecosystem dependency.
var namedColors = map[string]RGBA{
	"black":   {0, 0, 0, 1},
	"white":   {1, 1, 1, 1},
	"red":     {1, 0, 0, 1},
	"green":   {0, 0.5, 0, 1},
	"lime":    {0, 1, 0, 1},
	"blue":    {0, 0, 1, 1},
	"yellow":  {1, 1, 0, 1},
	"cyan":    {0, 1, 1, 1},
	"magenta": {1, 0, 1, 1},
	"gray":    {0.5, 0.5, 0.5, 1},
	"grey":    {0.5, 0.5, 0.5, 1},
	"silver":  {0.75, 0.75, 0.75, 1},
	"maroon":  {0.5, 0, 0, 1},
	"olive":   {0.5, 0.5, 0, 1},
	"navy":    {0, 0, 0.5, 1},
	"purple":  {0.5, 0, 0.5, 1},
	"teal":    {0, 0.5, 0.5, 1},
	"orange":  {1, 0.647, 0, 1},
	"pink":    {1, 0.753, 0.796, 1},
	"brown":   {0.647, 0.165, 0.165, 1},
}
