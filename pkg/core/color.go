package core

import (
	"image/color"
)

// Color is an 8-bit RGB triplet with implicit full opacity
type Color struct {
	R, G, B uint8
}

// Common colors
var (
	Black = Color{0, 0, 0}
	White = Color{255, 255, 255}
)

// NewColor creates a new Color
func NewColor(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b}
}

// ColorFromFloats converts channel values on the 0..255 scale to a Color,
// truncating toward zero and saturating to [0, 255]
func ColorFromFloats(r, g, b float64) Color {
	return Color{R: channel(r), G: channel(g), B: channel(b)}
}

// Add returns the channel-wise sum, saturating at 255
func (c Color) Add(other Color) Color {
	return Color{
		R: saturatingAdd(c.R, other.R),
		G: saturatingAdd(c.G, other.G),
		B: saturatingAdd(c.B, other.B),
	}
}

// Scale multiplies every channel by f, truncating toward zero.
// Results outside [0, 255] saturate, so negative factors yield black.
func (c Color) Scale(f float64) Color {
	return ColorFromFloats(float64(c.R)*f, float64(c.G)*f, float64(c.B)*f)
}

// Multiply combines two colors channel-wise as normalized 0..1 values
// re-expanded to 8 bits (a*b/255)
func (c Color) Multiply(other Color) Color {
	return Color{
		R: uint8(uint16(c.R) * uint16(other.R) / 255),
		G: uint8(uint16(c.G) * uint16(other.G) / 255),
		B: uint8(uint16(c.B) * uint16(other.B) / 255),
	}
}

// ToRGBA converts to an opaque image/color value
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// ColorFromModel converts any image/color value to a Color, dropping alpha
func ColorFromModel(col color.Color) Color {
	rgba := color.RGBAModel.Convert(col).(color.RGBA)
	return Color{R: rgba.R, G: rgba.G, B: rgba.B}
}

func saturatingAdd(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}

func channel(v float64) uint8 {
	if v != v || v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
