// Copyright 2024 Gustavo C. Viegas. All rights reserved.

package linear

import (
	"errors"
	"strings"

	"golang.org/x/image/colornames"
)

// Color is a linear RGBA color of float32.
// The methods that take RGB input leave A untouched.
type Color struct {
	R, G, B, A float32
}

// ErrUnknownColor means that a color name is not one of
// the CSS color keywords.
var ErrUnknownColor = errors.New("linear: unknown color name")

// SetHex sets the RGB components of c from a 0xRRGGBB
// value.
func (c *Color) SetHex(hex uint32) {
	c.R = float32(hex>>16&255) / 255
	c.G = float32(hex>>8&255) / 255
	c.B = float32(hex&255) / 255
}

// Hex returns the RGB components of c as a 0xRRGGBB
// value. Components are clamped to [0, 1].
func (c *Color) Hex() uint32 {
	return to8(c.R)<<16 | to8(c.G)<<8 | to8(c.B)
}

func to8(x float32) uint32 { return uint32(Clamp(x, 0, 1)*255 + 0.5) }

// SetName sets c to contain the CSS color keyword name,
// including its alpha.
func (c *Color) SetName(name string) error {
	rgba, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return ErrUnknownColor
	}
	*c = Color{
		float32(rgba.R) / 255,
		float32(rgba.G) / 255,
		float32(rgba.B) / 255,
		float32(rgba.A) / 255,
	}
	return nil
}

// SetHSL sets the RGB components of c from hue, saturation
// and lightness, all in [0, 1].
// h wraps around; s and l are clamped.
func (c *Color) SetHSL(h, s, l float32) {
	h = EuclidMod(h, 1)
	s = Clamp(s, 0, 1)
	l = Clamp(l, 0, 1)
	if s == 0 {
		c.R, c.G, c.B = l, l, l
		return
	}
	var p float32
	if l <= 0.5 {
		p = l * (1 + s)
	} else {
		p = l + s - l*s
	}
	q := 2*l - p
	c.R = hueToRGB(q, p, h+1.0/3)
	c.G = hueToRGB(q, p, h)
	c.B = hueToRGB(q, p, h-1.0/3)
}

func hueToRGB(p, q, t float32) float32 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 0.5:
		return q
	case t < 2.0/3:
		return p + (q-p)*6*(2.0/3-t)
	}
	return p
}

// HSL returns the hue, saturation and lightness of c.
func (c *Color) HSL() (h, s, l float32) {
	hi := max(c.R, c.G, c.B)
	lo := min(c.R, c.G, c.B)
	l = (lo + hi) / 2
	if lo == hi {
		return 0, 0, l
	}
	d := hi - lo
	if l <= 0.5 {
		s = d / (hi + lo)
	} else {
		s = d / (2 - hi - lo)
	}
	switch hi {
	case c.R:
		h = (c.G - c.B) / d
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/d + 2
	default:
		h = (c.R-c.G)/d + 4
	}
	h /= 6
	return
}

// OffsetHSL shifts the hue, saturation and lightness of c.
func (c *Color) OffsetHSL(h, s, l float32) {
	h0, s0, l0 := c.HSL()
	c.SetHSL(h0+h, s0+s, l0+l)
}

// GammaToLinear sets the RGB components of c to contain
// those of d raised to gamma.
func (c *Color) GammaToLinear(d *Color, gamma float32) {
	c.R = pow(d.R, gamma)
	c.G = pow(d.G, gamma)
	c.B = pow(d.B, gamma)
}

// LinearToGamma sets the RGB components of c to contain
// those of d raised to 1/gamma.
// A non-positive gamma is treated as 1.
func (c *Color) LinearToGamma(d *Color, gamma float32) {
	inv := float32(1)
	if gamma > 0 {
		inv = 1 / gamma
	}
	c.R = pow(d.R, inv)
	c.G = pow(d.G, inv)
	c.B = pow(d.B, inv)
}

// Add sets the RGB components of c to contain l + r.
func (c *Color) Add(l, r *Color) {
	c.R = l.R + r.R
	c.G = l.G + r.G
	c.B = l.B + r.B
}

// AddScalar sets the RGB components of c to contain
// d + s.
func (c *Color) AddScalar(d *Color, s float32) {
	c.R = d.R + s
	c.G = d.G + s
	c.B = d.B + s
}

// Mul sets the RGB components of c to contain the
// component-wise product of l and r.
func (c *Color) Mul(l, r *Color) {
	c.R = l.R * r.R
	c.G = l.G * r.G
	c.B = l.B * r.B
}

// Scale sets the RGB components of c to contain s ⋅ d.
func (c *Color) Scale(s float32, d *Color) {
	c.R = s * d.R
	c.G = s * d.G
	c.B = s * d.B
}

// Equal returns whether c and d have the same RGB
// components.
func (c *Color) Equal(d *Color) bool { return c.R == d.R && c.G == d.G && c.B == d.B }

// Load sets the RGB components of c to contain
// s[off:off+3].
func (c *Color) Load(s []float32, off int) {
	_ = s[off+2]
	c.R, c.G, c.B = s[off], s[off+1], s[off+2]
}

// Store writes the RGB components of c to s[off:off+3]
// and returns the updated slice. s is grown as needed.
func (c *Color) Store(s []float32, off int) []float32 {
	if n := off + 3; len(s) < n {
		s = append(s, make([]float32, n-len(s))...)
	}
	s[off], s[off+1], s[off+2] = c.R, c.G, c.B
	return s
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	al := Clamp(c.A, 0, 1)
	r = uint32(Clamp(c.R, 0, 1)*al*0xffff + 0.5)
	g = uint32(Clamp(c.G, 0, 1)*al*0xffff + 0.5)
	b = uint32(Clamp(c.B, 0, 1)*al*0xffff + 0.5)
	a = uint32(al*0xffff + 0.5)
	return
}
