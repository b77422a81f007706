package trellis

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// Surface is handed to immediate layer Renderers. Calls chain so a renderer
// reads like a drawing script:
//
//	surf.SetFillColor(c).FillRect(0, 0, w, h)
type Surface interface {
	// SetAlpha sets the opacity multiplier for subsequent fills.
	SetAlpha(a float64) Surface
	// SetFillColor sets the color used by FillRect, FillPolygon and DrawText.
	SetFillColor(c Color) Surface
	// FillRect fills an axis-aligned rectangle. Non-positive sizes draw nothing.
	FillRect(x, y, w, h float64) Surface
	// FillPolygon fills a convex polygon. Fewer than three points draw nothing.
	FillPolygon(points []Vec2) Surface
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(s string, face text.Face, x, y float64) Surface
}

// whitePixelImage is a 1x1 white image stretched and tinted for fills.
var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}

// imageSurface is the ebiten-backed Surface used during Scene.Draw.
type imageSurface struct {
	dst        *ebiten.Image
	geom       ebiten.GeoM
	layerAlpha float64
	alpha      float64
	fill       Color
	op         ebiten.DrawImageOptions
	triOp      ebiten.DrawTrianglesOptions
	verts      []ebiten.Vertex
	inds       []uint16
}

func newImageSurface(dst *ebiten.Image, geom ebiten.GeoM, layerAlpha float64) *imageSurface {
	return &imageSurface{dst: dst, geom: geom, layerAlpha: layerAlpha, alpha: 1, fill: ColorWhite}
}

func (s *imageSurface) SetAlpha(a float64) Surface {
	s.alpha = a
	return s
}

func (s *imageSurface) SetFillColor(c Color) Surface {
	s.fill = c
	return s
}

// premultiplied returns the fill color scaled by both alphas, premultiplied.
func (s *imageSurface) premultiplied() (r, g, b, a float32) {
	alpha := s.fill.A * s.alpha * s.layerAlpha
	return float32(s.fill.R * alpha), float32(s.fill.G * alpha), float32(s.fill.B * alpha), float32(alpha)
}

func (s *imageSurface) FillRect(x, y, w, h float64) Surface {
	if w <= 0 || h <= 0 {
		return s
	}
	s.op.GeoM.Reset()
	s.op.GeoM.Scale(w, h)
	s.op.GeoM.Translate(x, y)
	s.op.GeoM.Concat(s.geom)
	s.op.ColorScale.Reset()
	s.op.ColorScale.Scale(s.premultiplied())
	s.dst.DrawImage(ensureWhitePixel(), &s.op)
	return s
}

func (s *imageSurface) FillPolygon(points []Vec2) Surface {
	s.verts, s.inds = buildPolygonFan(points, s.verts[:0], s.inds[:0])
	if len(s.inds) == 0 {
		return s
	}
	r, g, b, a := s.premultiplied()
	for i := range s.verts {
		v := &s.verts[i]
		dx, dy := s.geom.Apply(float64(v.DstX), float64(v.DstY))
		v.DstX, v.DstY = float32(dx), float32(dy)
		v.ColorR, v.ColorG, v.ColorB, v.ColorA = r, g, b, a
	}
	s.dst.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), &s.triOp)
	return s
}

func (s *imageSurface) DrawText(str string, face text.Face, x, y float64) Surface {
	if str == "" || face == nil {
		return s
	}
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.GeoM.Concat(s.geom)
	op.ColorScale.Scale(s.premultiplied())
	op.LineSpacing = lineHeight(face)
	text.Draw(s.dst, str, face, op)
	return s
}

// buildPolygonFan generates untextured vertices and indices for a
// fan-triangulated convex polygon, reusing the given buffers.
// N vertices, 3*(N-2) indices.
func buildPolygonFan(points []Vec2, verts []ebiten.Vertex, inds []uint16) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return verts, inds
	}
	for _, p := range points {
		// Untextured: sample the center of the white pixel.
		verts = append(verts, ebiten.Vertex{
			DstX: float32(p.X), DstY: float32(p.Y),
			SrcX: 0.5, SrcY: 0.5,
			ColorR: 1, ColorG: 1, ColorB: 1, ColorA: 1,
		})
	}
	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds = append(inds, 0, uint16(i+1), uint16(i+2))
	}
	return verts, inds
}
