package trellis

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// CommandType identifies the kind of render command.
type CommandType uint8

const (
	CommandImmediate CommandType = iota // run a Renderer against a Surface
	CommandImage                        // DrawImage, possibly cropped, scaled or tiled
)

// RenderCommand is a single draw instruction emitted during scene traversal.
type RenderCommand struct {
	Type      CommandType
	Layer     *Layer
	Transform [6]float64
	Alpha     float64
}

// buildCommands walks the tree in paint order and fills s.commands.
func (s *Scene) buildCommands() {
	s.commands = s.commands[:0]
	s.traverse(s.root, identityTransform, 1.0, false)
}

// traverse walks the layer tree depth-first, updating transforms and emitting
// render commands for visible immediate and image layers. Children are
// visited in ascending depth order.
func (s *Scene) traverse(l *Layer, parentTransform [6]float64, parentAlpha float64, parentRecomputed bool) {
	if !l.Visible {
		return
	}

	recompute := l.transformDirty || parentRecomputed
	if recompute {
		local := computeLocalTransform(l)
		l.worldTransform = multiplyAffine(parentTransform, local)
		l.worldAlpha = parentAlpha * l.Alpha
		l.transformDirty = false
	}

	switch l.Type {
	case LayerImmediate:
		if l.renderer != nil {
			s.commands = append(s.commands, RenderCommand{
				Type: CommandImmediate, Layer: l, Transform: l.worldTransform, Alpha: l.worldAlpha,
			})
		}
	case LayerImage:
		if l.Image != nil {
			s.commands = append(s.commands, RenderCommand{
				Type: CommandImage, Layer: l, Transform: l.worldTransform, Alpha: l.worldAlpha,
			})
		}
	}

	if len(l.children) == 0 {
		return
	}
	for _, child := range l.PaintOrder() {
		s.traverse(child, l.worldTransform, l.worldAlpha, recompute)
	}
}

// submitCommands draws every command in order to the target image.
func (s *Scene) submitCommands(target *ebiten.Image) {
	var op ebiten.DrawImageOptions
	for i := range s.commands {
		cmd := &s.commands[i]
		switch cmd.Type {
		case CommandImmediate:
			surf := newImageSurface(target, commandGeoM(cmd), cmd.Alpha)
			cmd.Layer.renderer(surf)
		case CommandImage:
			submitImage(target, cmd, &op)
		}
	}
}

// submitImage draws an image layer, stretching it to the layer size or tiling
// it along repeating axes.
func submitImage(target *ebiten.Image, cmd *RenderCommand, op *ebiten.DrawImageOptions) {
	l := cmd.Layer
	src := l.Image
	if !l.SrcRect.Empty() {
		src = src.SubImage(l.SrcRect).(*ebiten.Image)
	}
	b := src.Bounds()
	iw, ih := float64(b.Dx()), float64(b.Dy())
	if iw == 0 || ih == 0 {
		return
	}
	w, h := l.Size()
	if w <= 0 || h <= 0 {
		return
	}
	geom := commandGeoM(cmd)

	op.ColorScale.Reset()
	op.ColorScale.ScaleAlpha(float32(cmd.Alpha))

	if !l.RepeatX && !l.RepeatY {
		op.GeoM.Reset()
		op.GeoM.Scale(w/iw, h/ih)
		op.GeoM.Concat(geom)
		target.DrawImage(src, op)
		return
	}

	// Non-repeating axes stretch; repeating axes tile at native size with
	// the last tile cropped.
	tw, th := iw, ih
	if !l.RepeatX {
		tw = w
	}
	if !l.RepeatY {
		th = h
	}
	sx, sy := tw/iw, th/ih
	for ty := 0.0; ty < h; ty += th {
		ch := math.Min(th, h-ty)
		for tx := 0.0; tx < w; tx += tw {
			cw := math.Min(tw, w-tx)
			tile := src
			if cw < tw || ch < th {
				r := image.Rect(b.Min.X, b.Min.Y,
					b.Min.X+int(math.Ceil(cw/sx)), b.Min.Y+int(math.Ceil(ch/sy)))
				tile = src.SubImage(r).(*ebiten.Image)
			}
			op.GeoM.Reset()
			op.GeoM.Scale(sx, sy)
			op.GeoM.Translate(tx, ty)
			op.GeoM.Concat(geom)
			target.DrawImage(tile, op)
		}
	}
}

// commandGeoM converts a command's [6]float64 transform into an ebiten.GeoM.
func commandGeoM(cmd *RenderCommand) ebiten.GeoM {
	var m ebiten.GeoM
	m.SetElement(0, 0, cmd.Transform[0])
	m.SetElement(1, 0, cmd.Transform[1])
	m.SetElement(0, 1, cmd.Transform[2])
	m.SetElement(1, 1, cmd.Transform[3])
	m.SetElement(0, 2, cmd.Transform[4])
	m.SetElement(1, 2, cmd.Transform[5])
	return m
}
