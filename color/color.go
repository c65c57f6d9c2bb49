// Package color implements parse_color (spec.md §6 external collaborator):
// turning a CSS color string — named, hex, or functional rgb()/rgba()/
// hsl()/hsla() notation — into normalized RGBA components.
package color

import (
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// RGBA holds color channels normalized to [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// Parse converts a CSS color string to RGBA. Unrecognized input returns
// opaque black, matching the teacher's fail-soft color handling rather
// than propagating a parse error through layout.
func Parse(s string) RGBA {
	s = strings.TrimSpace(strings.ToLower(s))
	switch {
	case s == "" || s == "transparent":
		return RGBA{0, 0, 0, 0}
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(s, "rgb"):
		return parseFunctional(s)
	case strings.HasPrefix(s, "hsl"):
		return parseHSL(s)
	}
	if rgba, ok := namedColors[s]; ok {
		return rgba
	}
	return RGBA{0, 0, 0, 1}
}

func parseHex(s string) RGBA {
	h := strings.TrimPrefix(s, "#")
	hexByte := func(pair string) float64 {
		n, err := strconv.ParseUint(pair, 16, 8)
		if err != nil {
			return 0
		}
		return float64(n) / 255
	}
	switch len(h) {
	case 3:
		return RGBA{hexByte(h[0:1] + h[0:1]), hexByte(h[1:2] + h[1:2]), hexByte(h[2:3] + h[2:3]), 1}
	case 6:
		return RGBA{hexByte(h[0:2]), hexByte(h[2:4]), hexByte(h[4:6]), 1}
	case 8:
		return RGBA{hexByte(h[0:2]), hexByte(h[2:4]), hexByte(h[4:6]), hexByte(h[6:8])}
	}
	return RGBA{0, 0, 0, 1}
}

// parseFunctional handles rgb(r, g, b) / rgba(r, g, b, a), with r/g/b in
// [0, 255] and a in [0, 1].
func parseFunctional(s string) RGBA {
	args := functionArgs(s)
	if len(args) < 3 {
		return RGBA{0, 0, 0, 1}
	}
	channel := func(tok string) float64 {
		pct := strings.HasSuffix(tok, "%")
		tok = strings.TrimSuffix(tok, "%")
		n, _ := strconv.ParseFloat(tok, 64)
		if pct {
			return n / 100
		}
		return n / 255
	}
	rgba := RGBA{channel(args[0]), channel(args[1]), channel(args[2]), 1}
	if len(args) >= 4 {
		a, _ := strconv.ParseFloat(args[3], 64)
		rgba.A = clamp01(a)
	}
	return rgba
}

// parseHSL handles hsl(h, s%, l%) / hsla(h, s%, l%, a) via go-colorful's
// HSL-to-RGB conversion rather than hand-rolling the hue/chroma math.
func parseHSL(s string) RGBA {
	args := functionArgs(s)
	if len(args) < 3 {
		return RGBA{0, 0, 0, 1}
	}
	h, _ := strconv.ParseFloat(args[0], 64)
	sat, _ := strconv.ParseFloat(strings.TrimSuffix(args[1], "%"), 64)
	l, _ := strconv.ParseFloat(strings.TrimSuffix(args[2], "%"), 64)
	c := colorful.Hsl(h, sat/100, l/100)
	rgba := RGBA{clamp01(c.R), clamp01(c.G), clamp01(c.B), 1}
	if len(args) >= 4 {
		a, _ := strconv.ParseFloat(args[3], 64)
		rgba.A = clamp01(a)
	}
	return rgba
}

func functionArgs(s string) []string {
	open := strings.IndexByte(s, '(')
	close := strings.LastIndexByte(s, ')')
	if open < 0 || close < 0 || close < open {
		return nil
	}
	parts := strings.Split(s[open+1:close], ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(p), "/"))
	}
	return parts
}

func clamp01(n float64) float64 {
	if n < 0 {
		return 0
	}
	if n > 1 {
		return 1
	}
	return n
}
