// Package swatch resolves preview swatches into concrete terminal colors.
//
// extract.PreviewColorFor decides *what* a swatch shows; this package turns
// that CSS text into an RGB value a terminal can paint, picks a readable
// foreground and names the closest well-known color.
package swatch

import (
	"regexp"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/mazznoer/csscolorparser"
	"github.com/yeisme/colorsift/pkg/extract"
)

// filterBase stands in for var(--highlight-color).
const filterBase = "#f36c00"

// namedTokenPattern finds bare color keywords inside a larger value
// (gradients, shorthands) when no functional/hex token is present.
var namedTokenPattern = regexp.MustCompile(`(?i)\b[a-z]+\b`)

// Resolved is a swatch with a concrete color attached.
type Resolved struct {
	extract.Swatch
	Hex        string  `json:"hex,omitempty" yaml:"hex,omitempty"`
	Alpha      float64 `json:"alpha" yaml:"alpha"`
	Foreground string  `json:"foreground,omitempty" yaml:"foreground,omitempty"`
	Nearest    string  `json:"nearest,omitempty" yaml:"nearest,omitempty"`
}

// Transparent reports whether there is nothing to paint.
func (r Resolved) Transparent() bool {
	return r.Hex == "" || r.Alpha == 0
}

// Resolve attaches a paintable color to s. It never fails: anything that cannot
// be resolved comes back transparent.
func Resolve(s extract.Swatch) Resolved {
	r := Resolved{Swatch: s}

	var text string
	switch s.Kind {
	case extract.KindSolid:
		text = s.Value
	case extract.KindCSSValue:
		text = firstColor(s.Value)
	case extract.KindFilter:
		text = filterBase
	default:
		return r
	}

	c, err := csscolorparser.Parse(text)
	if err != nil {
		return r
	}
	r.Alpha = c.A
	if c.A == 0 {
		return r
	}

	fc := colorful.Color{R: c.R, G: c.G, B: c.B}.Clamped()
	r.Hex = fc.Hex()
	r.Foreground = Contrast(fc)
	r.Nearest = Nearest(fc)
	return r
}

// firstColor picks the first parseable color out of a background-like value.
func firstColor(value string) string {
	if tok, ok := extract.FindColorToken(value); ok {
		return tok
	}
	for _, word := range namedTokenPattern.FindAllString(value, -1) {
		if _, err := csscolorparser.Parse(word); err == nil {
			return word
		}
	}
	return strings.TrimSpace(value)
}

// Contrast returns black or white, whichever reads better on bg.
func Contrast(bg colorful.Color) string {
	l, _, _ := bg.Lab()
	if l > 0.6 {
		return "#000000"
	}
	return "#ffffff"
}
