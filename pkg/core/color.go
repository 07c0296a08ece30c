package core

import "math"

// Color is an RGB triple with float channels. Channels are nominally
// in [0,1] but may exceed that range during shading; clamping happens
// only at output time.
type Color struct {
	R, G, B float64
}

// NewColor creates a new Color.
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black returns the background color.
func Black() Color {
	return Color{}
}

// White returns full-intensity white.
func White() Color {
	return Color{R: 1, G: 1, B: 1}
}

// Add returns the component-wise sum of two colors.
func (c Color) Add(other Color) Color {
	return Color{R: c.R + other.R, G: c.G + other.G, B: c.B + other.B}
}

// Subtract returns the component-wise difference of two colors.
func (c Color) Subtract(other Color) Color {
	return Color{R: c.R - other.R, G: c.G - other.G, B: c.B - other.B}
}

// Multiply returns the color scaled by a scalar.
func (c Color) Multiply(scalar float64) Color {
	return Color{R: c.R * scalar, G: c.G * scalar, B: c.B * scalar}
}

// Hadamard returns the component-wise product of two colors, used to
// blend a surface color with a light's intensity.
func (c Color) Hadamard(other Color) Color {
	return Color{R: c.R * other.R, G: c.G * other.G, B: c.B * other.B}
}

// Equals compares all three channels within Epsilon.
func (c Color) Equals(other Color) bool {
	return ApproxEq(c.R, other.R) && ApproxEq(c.G, other.G) && ApproxEq(c.B, other.B)
}

// RGB8 quantizes the color to 8-bit channels: clamp to [0,1], scale by
// 255 and floor.
func (c Color) RGB8() (r, g, b uint8) {
	return clampChannel(c.R), clampChannel(c.G), clampChannel(c.B)
}

func clampChannel(v float64) uint8 {
	return uint8(math.Floor(math.Min(math.Max(v, 0), 1) * 255.0))
}
