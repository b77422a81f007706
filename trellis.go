package trellis

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at draw time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default fill color of a fresh Surface.
var ColorWhite = Color{1, 1, 1, 1}

// ColorBlack is opaque black.
var ColorBlack = Color{0, 0, 0, 1}

// ARGB converts a packed 0xAARRGGBB value, the form stylesheets and background
// factories take, into a Color.
func ARGB(argb uint32) Color {
	return Color{
		R: float64((argb>>16)&0xFF) / 255,
		G: float64((argb>>8)&0xFF) / 255,
		B: float64(argb&0xFF) / 255,
		A: float64((argb>>24)&0xFF) / 255,
	}
}

// toRGBA converts a Color to a premultiplied color.RGBA.
func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for positions and polygon points.
type Vec2 struct {
	X, Y float64
}

// Dimension is a width/height pair. Element sizes and background instance
// sizes are Dimensions.
type Dimension struct {
	Width, Height float64
}

// clampNonNegative returns d with negative components raised to zero.
// Widgets may transiently carry degenerate sizes during layout.
func (d Dimension) clampNonNegative() Dimension {
	if d.Width < 0 {
		d.Width = 0
	}
	if d.Height < 0 {
		d.Height = 0
	}
	return d
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Size returns the rectangle's width and height as a Dimension.
func (r Rect) Size() Dimension {
	return Dimension{r.Width, r.Height}
}

// LayerType distinguishes how a Layer paints.
type LayerType uint8

const (
	LayerGroup     LayerType = iota // holds children, paints nothing itself
	LayerImmediate                  // paints through a Renderer callback each frame
	LayerImage                      // paints an ebiten image, optionally cropped, scaled or tiled
)

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft   MouseButton = iota // primary (left) mouse button
	MouseButtonRight                     // secondary (right) mouse button
	MouseButtonMiddle                    // middle mouse button (scroll wheel click)
)

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)
