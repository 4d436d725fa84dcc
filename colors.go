package vtengine

import "image/color"

// ColorKind distinguishes the three ways a foreground or background can be
// specified in an SGR sequence.
type ColorKind uint8

const (
	ColorDefault ColorKind = iota
	ColorIndexed
	ColorTrueColor
)

// Color is a cell's foreground or background color. The zero value is
// ColorDefault, the terminal's default foreground/background.
type Color struct {
	Kind  ColorKind
	Index uint8
	RGB   color.RGBA
}

// DefaultColor is the terminal's default color, resolved against
// DefaultForeground or DefaultBackground depending on context.
var DefaultColor = Color{Kind: ColorDefault}

// Indexed builds a Color from an 8-bit palette index (SGR 38;5;n / 48;5;n).
func Indexed(i uint8) Color {
	return Color{Kind: ColorIndexed, Index: i}
}

// TrueColor builds a 24-bit RGB Color (SGR 38;2;r;g;b / 48;2;r;g;b).
func TrueColor(r, g, b uint8) Color {
	return Color{Kind: ColorTrueColor, RGB: color.RGBA{R: r, G: g, B: b, A: 255}}
}

// IsDefault reports whether c is the unset default color.
func (c Color) IsDefault() bool {
	return c.Kind == ColorDefault
}

// Resolve returns the RGBA value c represents. fg selects which default
// applies when c is ColorDefault.
func (c Color) Resolve(fg bool) color.RGBA {
	switch c.Kind {
	case ColorIndexed:
		return palette256At(int(c.Index))
	case ColorTrueColor:
		return c.RGB
	default:
		if fg {
			return DefaultForeground
		}
		return DefaultBackground
	}
}

// palette256 is the standard 256-color palette: 16 named colors (0-15),
// 216 color cube (16-231), 24 grayscale (232-255).
var palette256 [256]color.RGBA

func init() {
	ansi := [16]color.RGBA{
		{0, 0, 0, 255},       // Black
		{205, 49, 49, 255},   // Red
		{13, 188, 121, 255},  // Green
		{229, 229, 16, 255},  // Yellow
		{36, 114, 200, 255},  // Blue
		{188, 63, 188, 255},  // Magenta
		{17, 168, 205, 255},  // Cyan
		{229, 229, 229, 255}, // White

		{102, 102, 102, 255}, // Bright Black
		{241, 76, 76, 255},   // Bright Red
		{35, 209, 139, 255},  // Bright Green
		{245, 245, 67, 255},  // Bright Yellow
		{59, 142, 234, 255},  // Bright Blue
		{214, 112, 214, 255}, // Bright Magenta
		{41, 184, 219, 255},  // Bright Cyan
		{255, 255, 255, 255}, // Bright White
	}
	copy(palette256[:16], ansi[:])

	// 216 color cube (16-231): rgb(n) = ((n-16)/36 % 6, (n-16)/6 % 6, (n-16) % 6), each scaled by /5.
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				palette256[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	// Grayscale ramp (232-255)
	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		palette256[232+j] = color.RGBA{gray, gray, gray, 255}
	}
}

// palette256At clamps n to [0,255] and returns the corresponding palette entry.
func palette256At(n int) color.RGBA {
	if n < 0 {
		n = 0
	}
	if n > 255 {
		n = 255
	}
	return palette256[n]
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{229, 229, 229, 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{0, 0, 0, 255}

// DefaultCursorColor is the default cursor rendering color (light gray).
var DefaultCursorColor = color.RGBA{229, 229, 229, 255}
