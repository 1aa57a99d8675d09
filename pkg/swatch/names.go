package swatch

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// palette is a small set of human-readable reference colors.
var palette = map[string]string{
	"black":   "#000000",
	"white":   "#ffffff",
	"gray":    "#808080",
	"silver":  "#c0c0c0",
	"red":     "#ff0000",
	"maroon":  "#800000",
	"orange":  "#ffa500",
	"brown":   "#a52a2a",
	"yellow":  "#ffff00",
	"olive":   "#808000",
	"lime":    "#00ff00",
	"green":   "#008000",
	"teal":    "#008080",
	"cyan":    "#00ffff",
	"blue":    "#0000ff",
	"navy":    "#000080",
	"purple":  "#800080",
	"magenta": "#ff00ff",
	"pink":    "#ffc0cb",
}

var paletteColors = func() map[string]colorful.Color {
	out := make(map[string]colorful.Color, len(palette))
	for name, hex := range palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			panic(err)
		}
		out[name] = c
	}
	return out
}()

// Nearest returns the palette name with the smallest perceptual (Lab) distance.
func Nearest(c colorful.Color) string {
	best, bestDist := "", math.MaxFloat64
	for name, ref := range paletteColors {
		d := c.DistanceLab(ref)
		// ties resolve alphabetically so output is stable
		if d < bestDist || (d == bestDist && name < best) {
			best, bestDist = name, d
		}
	}
	return best
}
