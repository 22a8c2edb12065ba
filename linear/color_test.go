// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"image/color"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func nearColor(c, d *Color) bool {
	const tol = 1e-6
	return abs(c.R-d.R) < tol && abs(c.G-d.G) < tol && abs(c.B-d.B) < tol
}

func TestColorHex(t *testing.T) {
	var c Color
	for _, x := range [...]uint32{0, 0xffffff, 0x336699, 0xff0000, 0x00ff00, 0x0000ff, 0x123456} {
		if c.SetHex(x); c.Hex() != x {
			t.Fatalf("Color.SetHex(%#06x): Hex\nhave %#06x\nwant %#06x", x, c.Hex(), x)
		}
	}
	if c = (Color{R: 2, G: -1, B: 0.5}); c.Hex() != 0xff0080 {
		t.Fatalf("Color.Hex (clamped)\nhave %#06x\nwant 0xff0080", c.Hex())
	}
}

func TestColorName(t *testing.T) {
	var c Color
	if err := c.SetName("CornflowerBlue"); err != nil {
		t.Fatalf("Color.SetName\nhave %v\nwant nil", err)
	}
	if h := c.Hex(); h != 0x6495ed || c.A != 1 {
		t.Fatalf("Color.SetName(\"CornflowerBlue\")\nhave %#06x, %v\nwant 0x6495ed, 1", h, c.A)
	}
	if err := c.SetName("notacolor"); err != ErrUnknownColor {
		t.Fatalf("Color.SetName(\"notacolor\")\nhave %v\nwant %v", err, ErrUnknownColor)
	}
}

func TestColorHSL(t *testing.T) {
	var c Color
	for _, x := range [...]struct {
		h, s, l float32
		hex     uint32
	}{
		{0, 1, 0.5, 0xff0000},
		{1.0 / 3, 1, 0.5, 0x00ff00},
		{2.0 / 3, 1, 0.5, 0x0000ff},
		{0, 0, 0.5, 0x808080},
		{0, 0, 1, 0xffffff},
		{0, 0, 0, 0x000000},
		{1.5, 1, 0.5, 0x00ffff},
		{0.5, 1, 0.75, 0x80ffff},
	} {
		c.SetHSL(x.h, x.s, x.l)
		if h := c.Hex(); h != x.hex {
			t.Fatalf("Color.SetHSL(%v, %v, %v)\nhave %#06x\nwant %#06x", x.h, x.s, x.l, h, x.hex)
		}
	}

	for _, x := range [...][3]float32{
		{0.1, 0.5, 0.3},
		{0.6, 0.8, 0.7},
		{0.9, 0.25, 0.5},
	} {
		c.SetHSL(x[0], x[1], x[2])
		h, s, l := c.HSL()
		if diff := cmp.Diff(x, [3]float32{h, s, l}, approx32); diff != "" {
			t.Fatalf("Color.HSL (-want +have):\n%s", diff)
		}
	}

	c.SetHSL(0.2, 0.5, 0.5)
	c.OffsetHSL(0.1, 0.1, -0.1)
	h, s, l := c.HSL()
	if diff := cmp.Diff([3]float32{0.3, 0.6, 0.4}, [3]float32{h, s, l}, approx32); diff != "" {
		t.Fatalf("Color.OffsetHSL (-want +have):\n%s", diff)
	}
}

func TestColorGamma(t *testing.T) {
	c := Color{R: 0.5, G: 0.25, B: 1, A: 1}
	var d Color
	d.GammaToLinear(&c, 2)
	if !d.Equal(&Color{R: 0.25, G: 0.0625, B: 1}) {
		t.Fatalf("Color.GammaToLinear\nhave %v\nwant {0.25 0.0625 1}", d)
	}
	d.LinearToGamma(&d, 2)
	if !d.Equal(&c) {
		t.Fatalf("Color.LinearToGamma\nhave %v\nwant %v", d, c)
	}
	if d.LinearToGamma(&c, 0); !d.Equal(&c) {
		t.Fatalf("Color.LinearToGamma(0)\nhave %v\nwant %v", d, c)
	}
}

func TestColorOps(t *testing.T) {
	a := Color{R: 0.1, G: 0.2, B: 0.5, A: 1}
	b := Color{R: 0.5, G: 0.5, B: 0.5, A: 0.5}
	var c Color
	if c.Add(&a, &b); !nearColor(&c, &Color{R: 0.6, G: 0.7, B: 1}) {
		t.Fatalf("Color.Add\nhave %v\nwant {0.6 0.7 1}", c)
	}
	if c.AddScalar(&b, 0.25); !c.Equal(&Color{R: 0.75, G: 0.75, B: 0.75}) {
		t.Fatalf("Color.AddScalar\nhave %v\nwant {0.75 0.75 0.75}", c)
	}
	if c.Mul(&a, &b); !c.Equal(&Color{R: 0.05, G: 0.1, B: 0.25}) {
		t.Fatalf("Color.Mul\nhave %v\nwant {0.05 0.1 0.25}", c)
	}
	if c.Scale(2, &a); !c.Equal(&Color{R: 0.2, G: 0.4, B: 1}) {
		t.Fatalf("Color.Scale\nhave %v\nwant {0.2 0.4 1}", c)
	}
	if c.A != 0 {
		t.Fatalf("Color.A\nhave %v\nwant 0", c.A)
	}

	s := a.Store(nil, 1)
	if len(s) != 4 || s[1] != a.R || s[2] != a.G || s[3] != a.B {
		t.Fatalf("Color.Store(nil, 1)\nhave %v", s)
	}
	var d Color
	if d.Load(s, 1); !d.Equal(&a) {
		t.Fatalf("Color.Load\nhave %v\nwant %v", d, a)
	}
}

func TestColorRGBA(t *testing.T) {
	var c color.Color = Color{R: 1, G: 0.5, B: 0, A: 1}
	if have := color.RGBAModel.Convert(c).(color.RGBA); have != (color.RGBA{255, 128, 0, 255}) {
		t.Fatalf("Color.RGBA\nhave %v\nwant {255 128 0 255}", have)
	}
	c = Color{R: 1, G: 1, B: 1, A: 0}
	if r, g, b, a := c.RGBA(); r|g|b|a != 0 {
		t.Fatalf("Color.RGBA (transparent)\nhave %d %d %d %d\nwant 0 0 0 0", r, g, b, a)
	}
}
