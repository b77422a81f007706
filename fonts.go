package trellis

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// Font wraps an Ebitengine text/v2 face with cached line metrics. Text
// widgets measure and draw through it.
type Font struct {
	face text.Face
	lh   float64 // cached line height
}

// NewFont wraps an existing text/v2 face.
func NewFont(face text.Face) *Font {
	return &Font{face: face, lh: lineHeight(face)}
}

// LoadFont loads a TrueType or OpenType font from raw data at the given size.
func LoadFont(ttfData []byte, size float64) (*Font, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(ttfData))
	if err != nil {
		return nil, fmt.Errorf("trellis: failed to parse font data: %w", err)
	}
	return NewFont(&text.GoTextFace{Source: source, Size: size}), nil
}

var defaultFont *Font

// DefaultFont returns the fixed 7x13 bitmap face used when no FontStyle is
// configured.
func DefaultFont() *Font {
	if defaultFont == nil {
		defaultFont = NewFont(text.NewGoXFace(basicfont.Face7x13))
	}
	return defaultFont
}

// MeasureString returns the width and height of the rendered text.
func (f *Font) MeasureString(s string) (width, height float64) {
	if s == "" {
		return 0, 0
	}
	return text.Measure(s, f.face, f.lh)
}

// LineHeight returns the vertical distance between baselines.
func (f *Font) LineHeight() float64 {
	return f.lh
}

// Face returns the underlying face for direct text/v2 rendering.
func (f *Font) Face() text.Face {
	return f.face
}

// lineHeight computes the line height of face from its metrics.
func lineHeight(face text.Face) float64 {
	m := face.Metrics()
	return m.HAscent + m.HDescent + m.HLineGap
}
