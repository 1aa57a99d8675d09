package swatch

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/yeisme/colorsift/pkg/extract"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		in          extract.Swatch
		wantHex     string
		transparent bool
	}{
		{extract.Swatch{Kind: extract.KindSolid, Value: "#fff"}, "#ffffff", false},
		{extract.Swatch{Kind: extract.KindSolid, Value: "rgba(255, 0, 0, 0.5)"}, "#ff0000", false},
		{extract.Swatch{Kind: extract.KindSolid, Value: "hsl(240, 100%, 50%)"}, "#0000ff", false},
		{extract.Swatch{Kind: extract.KindCSSValue, Value: "linear-gradient(to right, #000, white)"}, "#000000", false},
		{extract.Swatch{Kind: extract.KindCSSValue, Value: "radial-gradient(red, blue)"}, "#ff0000", false},
		{extract.Swatch{Kind: extract.KindCSSValue, Value: "url(x.png)"}, "", true},
		{extract.Swatch{Kind: extract.KindFilter, Value: "blur(2px)"}, filterBase, false},
		{extract.Swatch{Kind: extract.KindNone, Value: "transparent"}, "", true},
		{extract.Swatch{Kind: extract.KindSolid, Value: "rgba(0,0,0,0)"}, "", true},
	}

	for _, tt := range tests {
		got := Resolve(tt.in)
		if got.Hex != tt.wantHex {
			t.Errorf("Resolve(%+v).Hex = %q, want %q", tt.in, got.Hex, tt.wantHex)
		}
		if got.Transparent() != tt.transparent {
			t.Errorf("Resolve(%+v).Transparent() = %v", tt.in, got.Transparent())
		}
		if got.Swatch != tt.in {
			t.Errorf("Resolve must keep the original swatch, got %+v", got.Swatch)
		}
	}
}

func TestContrast(t *testing.T) {
	if got := Contrast(colorful.Color{R: 1, G: 1, B: 1}); got != "#000000" {
		t.Errorf("Contrast(white) = %s", got)
	}
	if got := Contrast(colorful.Color{}); got != "#ffffff" {
		t.Errorf("Contrast(black) = %s", got)
	}
}

func TestNearest(t *testing.T) {
	cases := map[string]string{
		"#f36c00": "orange",
		"#fefefe": "white",
		"#010101": "black",
		"#0000f0": "blue",
	}
	for hex, want := range cases {
		c, err := colorful.Hex(hex)
		if err != nil {
			t.Fatal(err)
		}
		if got := Nearest(c); got != want {
			t.Errorf("Nearest(%s) = %s, want %s", hex, got, want)
		}
	}
}
