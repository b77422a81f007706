package trellis

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// beveledEdge is the thickness of the highlight and shadow edges of a beveled
// background.
const beveledEdge = 2.0

// roundRectSegments is the number of straight segments per rounded corner.
const roundRectSegments = 8

// Blank creates a background that draws nothing. It still reserves insets.
func Blank() *Background {
	return NewBackground(blankBackground{})
}

// Solid creates a background filled with a single 0xAARRGGBB color.
func Solid(argb uint32) *Background {
	return NewBackground(solidBackground{color: argb})
}

// Beveled creates a background filled with bg, with an ul-colored highlight
// along the top and left edges and a br-colored shadow along the bottom and
// right.
func Beveled(bg, ul, br uint32) *Background {
	return NewBackground(beveledBackground{bg: bg, ul: ul, br: br})
}

// Bordered creates a background filled with bg inside a border of the given
// color and thickness.
func Bordered(bg, color uint32, thickness float64) *Background {
	return NewBackground(borderedBackground{bg: bg, color: color, thickness: thickness})
}

// RoundRect creates a rounded rectangle filled with bg.
func RoundRect(bg uint32, cornerRadius float64) *Background {
	return NewBackground(roundRectBackground{bg: bg, radius: cornerRadius})
}

// RoundRectBordered creates a rounded rectangle filled with bg inside a
// border of the given color and width.
func RoundRectBordered(bg uint32, cornerRadius float64, borderColor uint32, borderWidth float64) *Background {
	return NewBackground(roundRectBackground{
		bg: bg, radius: cornerRadius, border: borderColor, borderWidth: borderWidth,
	})
}

// Image creates a background that stretches img over the whole size.
// The image factories all panic when img is nil.
func Image(img *ebiten.Image) *Background {
	requireImage(img, "Image")
	return NewBackground(imageBackground{img: img})
}

// CenteredImage creates a background that draws img at its native size,
// centered.
func CenteredImage(img *ebiten.Image) *Background {
	requireImage(img, "CenteredImage")
	return NewBackground(centeredImageBackground{img: img})
}

// CroppedImage creates a background that draws img centered at its native
// size, cropping whatever overflows the size.
func CroppedImage(img *ebiten.Image) *Background {
	requireImage(img, "CroppedImage")
	return NewBackground(croppedImageBackground{img: img})
}

// TiledImage creates a background that tiles img from the top-left corner.
func TiledImage(img *ebiten.Image) *Background {
	requireImage(img, "TiledImage")
	return NewBackground(tiledImageBackground{img: img})
}

// Scale9 creates a scale-9 background from img with each border a third of
// the image.
func Scale9(img *ebiten.Image) *Background {
	requireImage(img, "Scale9")
	b := img.Bounds()
	w, h := float64(b.Dx())/3, float64(b.Dy())/3
	return Scale9Borders(img, SymmetricInsets(w, h))
}

// Scale9Borders creates a scale-9 background from img. borders gives the
// size, in source pixels, of the fixed edge strips; the corners keep their
// size, the edges stretch along one axis and the center along both.
func Scale9Borders(img *ebiten.Image, borders Insets) *Background {
	requireImage(img, "Scale9Borders")
	return NewBackground(scale9Background{img: img, borders: borders})
}

// Composite creates a background that instantiates each constituent at the
// same size and stacks them, later constituents on top.
func Composite(constituents ...*Background) *Background {
	parts := make([]*Background, len(constituents))
	copy(parts, constituents)
	return NewBackground(compositeBackground{parts: parts})
}

func requireImage(img *ebiten.Image, factory string) {
	if img == nil {
		panic("trellis: " + factory + " needs a non-nil image")
	}
}

// --- Variants ---

type blankBackground struct{}

func (blankBackground) kind() string { return "blank" }

func (blankBackground) Instantiate(bg *Background, size Dimension) Instance {
	return NewLayerInstance(bg, size)
}

type solidBackground struct{ color uint32 }

func (solidBackground) kind() string { return "solid" }

func (v solidBackground) Instantiate(bg *Background, size Dimension) Instance {
	return NewLayerInstance(bg, size, bg.SolidLayer(v.color, size.Width, size.Height))
}

type beveledBackground struct{ bg, ul, br uint32 }

func (beveledBackground) kind() string { return "beveled" }

func (v beveledBackground) Instantiate(bg *Background, size Dimension) Instance {
	w, h := size.Width, size.Height
	fill, ul, br := ARGB(v.bg), ARGB(v.ul), ARGB(v.br)
	e := math.Min(beveledEdge, math.Min(w, h)/2)
	return NewLayerInstance(bg, size, bg.ImmediateLayer(w, h, func(s Surface) {
		s.SetFillColor(fill).FillRect(0, 0, w, h)
		s.SetFillColor(ul).FillRect(0, 0, w, e).FillRect(0, 0, e, h)
		s.SetFillColor(br).FillRect(0, h-e, w, e).FillRect(w-e, 0, e, h)
	}))
}

type borderedBackground struct {
	bg, color uint32
	thickness float64
}

func (borderedBackground) kind() string { return "bordered" }

func (v borderedBackground) Instantiate(bg *Background, size Dimension) Instance {
	w, h, t := size.Width, size.Height, v.thickness
	fill, border := ARGB(v.bg), ARGB(v.color)
	return NewLayerInstance(bg, size, bg.ImmediateLayer(w, h, func(s Surface) {
		s.SetFillColor(border).FillRect(0, 0, w, h)
		s.SetFillColor(fill).FillRect(t, t, w-2*t, h-2*t)
	}))
}

type roundRectBackground struct {
	bg          uint32
	radius      float64
	border      uint32
	borderWidth float64
}

func (roundRectBackground) kind() string { return "roundrect" }

func (v roundRectBackground) Instantiate(bg *Background, size Dimension) Instance {
	w, h := size.Width, size.Height
	fill, border := ARGB(v.bg), ARGB(v.border)
	bw := v.borderWidth
	return NewLayerInstance(bg, size, bg.ImmediateLayer(w, h, func(s Surface) {
		if bw > 0 {
			s.SetFillColor(border).FillPolygon(roundRectPoints(0, 0, w, h, v.radius))
			s.SetFillColor(fill).FillPolygon(roundRectPoints(bw, bw, w-2*bw, h-2*bw, math.Max(0, v.radius-bw)))
			return
		}
		s.SetFillColor(fill).FillPolygon(roundRectPoints(0, 0, w, h, v.radius))
	}))
}

// roundRectPoints outlines a rounded rectangle clockwise as a convex polygon.
// Degenerate rectangles yield no points.
func roundRectPoints(x, y, w, h, r float64) []Vec2 {
	if w <= 0 || h <= 0 {
		return nil
	}
	r = math.Min(r, math.Min(w, h)/2)
	if r <= 0 {
		return []Vec2{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}
	}
	corners := [4]struct{ cx, cy, start float64 }{
		{x + w - r, y + r, -math.Pi / 2}, // top-right
		{x + w - r, y + h - r, 0},        // bottom-right
		{x + r, y + h - r, math.Pi / 2},  // bottom-left
		{x + r, y + r, math.Pi},          // top-left
	}
	pts := make([]Vec2, 0, 4*(roundRectSegments+1))
	for _, c := range corners {
		for i := 0; i <= roundRectSegments; i++ {
			a := c.start + float64(i)*(math.Pi/2)/roundRectSegments
			sin, cos := math.Sincos(a)
			pts = append(pts, Vec2{c.cx + cos*r, c.cy + sin*r})
		}
	}
	return pts
}

type imageBackground struct{ img *ebiten.Image }

func (imageBackground) kind() string { return "image" }

func (v imageBackground) Instantiate(bg *Background, size Dimension) Instance {
	l := bg.ImageLayer(v.img)
	l.SetSize(size.Width, size.Height)
	return NewLayerInstance(bg, size, l)
}

type centeredImageBackground struct{ img *ebiten.Image }

func (centeredImageBackground) kind() string { return "centered-image" }

func (v centeredImageBackground) Instantiate(bg *Background, size Dimension) Instance {
	l := bg.ImageLayer(v.img)
	iw, ih := l.Size()
	l.SetPosition((size.Width-iw)/2, (size.Height-ih)/2)
	return NewLayerInstance(bg, size, l)
}

type croppedImageBackground struct{ img *ebiten.Image }

func (croppedImageBackground) kind() string { return "cropped-image" }

func (v croppedImageBackground) Instantiate(bg *Background, size Dimension) Instance {
	l := bg.ImageLayer(v.img)
	b := v.img.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	cw, ch := math.Min(iw, size.Width), math.Min(ih, size.Height)
	sx := b.Min.X + int((iw-cw)/2)
	sy := b.Min.Y + int((ih-ch)/2)
	l.SrcRect = image.Rect(sx, sy, sx+int(cw), sy+int(ch))
	l.SetSize(cw, ch)
	l.SetPosition((size.Width-cw)/2, (size.Height-ch)/2)
	return NewLayerInstance(bg, size, l)
}

type tiledImageBackground struct{ img *ebiten.Image }

func (tiledImageBackground) kind() string { return "tiled-image" }

func (v tiledImageBackground) Instantiate(bg *Background, size Dimension) Instance {
	return NewLayerInstance(bg, size, bg.TiledLayer(v.img, size.Width, size.Height))
}

type scale9Background struct {
	img     *ebiten.Image
	borders Insets
}

func (scale9Background) kind() string { return "scale9" }

func (v scale9Background) Instantiate(bg *Background, size Dimension) Instance {
	b := v.img.Bounds()
	src := scale9Axes(float64(b.Dx()), float64(b.Dy()), v.borders)
	dst := scale9Axes(size.Width, size.Height, fitBorders(v.borders, size))

	layers := make([]*Layer, 0, 9)
	for row := 0; row < 3; row++ {
		for col := 0; col < 3; col++ {
			if dst.w[col] <= 0 || dst.h[row] <= 0 || src.w[col] <= 0 || src.h[row] <= 0 {
				continue
			}
			l := bg.ImageLayer(v.img)
			l.SrcRect = image.Rect(
				b.Min.X+int(src.x[col]), b.Min.Y+int(src.y[row]),
				b.Min.X+int(src.x[col]+src.w[col]), b.Min.Y+int(src.y[row]+src.h[row]))
			l.SetSize(dst.w[col], dst.h[row])
			l.SetPosition(dst.x[col], dst.y[row])
			layers = append(layers, l)
		}
	}
	return NewLayerInstance(bg, size, layers...)
}

// scale9Grid holds the offsets and extents of the three columns and rows.
type scale9Grid struct {
	x, w, y, h [3]float64
}

func scale9Axes(width, height float64, borders Insets) scale9Grid {
	var g scale9Grid
	g.x = [3]float64{0, borders.Left, width - borders.Right}
	g.w = [3]float64{borders.Left, width - borders.Left - borders.Right, borders.Right}
	g.y = [3]float64{0, borders.Top, height - borders.Bottom}
	g.h = [3]float64{borders.Top, height - borders.Top - borders.Bottom, borders.Bottom}
	return g
}

// fitBorders scales the fixed strips down proportionally when the target is
// smaller than the two borders along an axis.
func fitBorders(borders Insets, size Dimension) Insets {
	if bw := borders.Width(); bw > size.Width && bw > 0 {
		f := size.Width / bw
		borders.Left *= f
		borders.Right *= f
	}
	if bh := borders.Height(); bh > size.Height && bh > 0 {
		f := size.Height / bh
		borders.Top *= f
		borders.Bottom *= f
	}
	return borders
}

type compositeBackground struct{ parts []*Background }

func (compositeBackground) kind() string { return "composite" }

func (v compositeBackground) Instantiate(bg *Background, size Dimension) Instance {
	ci := &compositeInstance{size: size, owner: bg, parts: make([]Instance, len(v.parts))}
	fade, faded := bg.Alpha()
	for i, p := range v.parts {
		if faded {
			// Constituent alphas compose with the composite's own.
			ci.parts[i] = p.instantiateFaded(size, fade)
			continue
		}
		ci.parts[i] = p.Instantiate(size)
	}
	return ci
}
