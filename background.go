package trellis

import "github.com/hajimehoshi/ebiten/v2"

// BackgroundDepth is the (highest) depth at which background layers are
// added to an element's layer. Content layers sit at depth 0 and above.
const BackgroundDepth = -10.0

// Instantiator realizes a background template at a concrete size. The
// built-in factories cover the stock shapes; custom backgrounds implement
// Instantiator and are wrapped with NewBackground.
type Instantiator interface {
	Instantiate(bg *Background, size Dimension) Instance
}

// Background is a size-independent description of a fill and border plus the
// inset space it reserves. Backgrounds are configured as a style property;
// elements instantiate them at specific sizes when they are laid out.
//
// Configuration calls return the same *Background so stylesheets can chain
// them. A template is frozen by its first Instantiate. Later configuration is
// still applied, but only affects future instances, and is reported in debug
// mode.
type Background struct {
	insets   Insets
	alpha    float64
	hasAlpha bool
	frozen   bool
	impl     Instantiator
}

// NewBackground wraps a custom Instantiator in a configurable template.
func NewBackground(impl Instantiator) *Background {
	return &Background{impl: impl}
}

// Insets returns the configured insets.
func (bg *Background) Insets() Insets {
	return bg.insets
}

// Alpha returns the configured alpha override, if any.
func (bg *Background) Alpha() (alpha float64, ok bool) {
	return bg.alpha, bg.hasAlpha
}

// Frozen reports whether the template has been instantiated.
func (bg *Background) Frozen() bool {
	return bg.frozen
}

// Impl returns the variant that realizes this template.
func (bg *Background) Impl() Instantiator {
	return bg.impl
}

// SetInsets configures insets on this background.
func (bg *Background) SetInsets(insets Insets) *Background {
	bg.touch("SetInsets")
	bg.insets = insets
	return bg
}

// Inset configures uniform insets on this background.
func (bg *Background) Inset(uniform float64) *Background {
	return bg.SetInsets(UniformInsets(uniform))
}

// InsetHV configures horizontal and vertical insets on this background.
func (bg *Background) InsetHV(horiz, vert float64) *Background {
	return bg.SetInsets(SymmetricInsets(horiz, vert))
}

// InsetTRBL configures non-uniform insets on this background.
func (bg *Background) InsetTRBL(top, right, bottom, left float64) *Background {
	return bg.SetInsets(NewInsets(top, right, bottom, left))
}

// InsetLeft sets the left inset for this background.
func (bg *Background) InsetLeft(v float64) *Background {
	return bg.SetInsets(bg.insets.Mutable().Left(v).Insets())
}

// InsetRight sets the right inset for this background.
func (bg *Background) InsetRight(v float64) *Background {
	return bg.SetInsets(bg.insets.Mutable().Right(v).Insets())
}

// InsetTop sets the top inset for this background.
func (bg *Background) InsetTop(v float64) *Background {
	return bg.SetInsets(bg.insets.Mutable().Top(v).Insets())
}

// InsetBottom sets the bottom inset for this background.
func (bg *Background) InsetBottom(v float64) *Background {
	return bg.SetInsets(bg.insets.Mutable().Bottom(v).Insets())
}

// SetAlpha configures a transparency applied to every drawable produced by
// future instantiations.
func (bg *Background) SetAlpha(alpha float64) *Background {
	bg.touch("SetAlpha")
	bg.alpha = alpha
	bg.hasAlpha = true
	return bg
}

// ClearAlpha removes the alpha override; drawables use their own default.
func (bg *Background) ClearAlpha() *Background {
	bg.touch("ClearAlpha")
	bg.alpha = 0
	bg.hasAlpha = false
	return bg
}

// Instantiate realizes this background at size, which must already include
// the insets. Negative dimensions are treated as zero; a zero size produces
// drawables that paint nothing.
func (bg *Background) Instantiate(size Dimension) Instance {
	bg.frozen = true
	return bg.impl.Instantiate(bg, size.clampNonNegative())
}

// instantiateFaded realizes bg with its alpha multiplied by fade. The
// variant sees a private copy of the template, so bg itself keeps its
// configuration; the built instance still reports bg as its owner.
func (bg *Background) instantiateFaded(size Dimension, fade float64) Instance {
	bg.frozen = true
	view := *bg
	alpha, ok := bg.Alpha()
	if !ok {
		alpha = 1
	}
	view.alpha, view.hasAlpha = alpha*fade, true
	inst := view.impl.Instantiate(&view, size.clampNonNegative())
	switch in := inst.(type) {
	case *LayerInstance:
		in.owner = bg
	case *compositeInstance:
		in.owner = bg
	}
	return inst
}

func (bg *Background) touch(op string) {
	if bg.frozen {
		debugWarn("trellis: background configured after instantiation", "op", op, "kind", bg.kind())
	}
}

// kind names the variant for diagnostics.
func (bg *Background) kind() string {
	if bg == nil || bg.impl == nil {
		return "nil"
	}
	if k, ok := bg.impl.(interface{ kind() string }); ok {
		return k.kind()
	}
	return "custom"
}

// --- Drawable helpers shared by the variants ---

// ImmediateLayer creates a drawable of size (w, h) painted by paint. The
// template alpha is captured now; later SetAlpha calls do not reach it.
func (bg *Background) ImmediateLayer(w, h float64, paint func(s Surface)) *Layer {
	alpha, hasAlpha := bg.Alpha()
	return NewImmediateLayer("background", w, h, func(s Surface) {
		if hasAlpha {
			s.SetAlpha(alpha)
		}
		paint(s)
		if hasAlpha {
			s.SetAlpha(1)
		}
	})
}

// SolidLayer creates a drawable filling (0, 0, w, h) with argb.
func (bg *Background) SolidLayer(argb uint32, w, h float64) *Layer {
	c := ARGB(argb)
	return bg.ImmediateLayer(w, h, func(s Surface) {
		s.SetFillColor(c).FillRect(0, 0, w, h)
	})
}

// ImageLayer creates an image drawable carrying the template alpha.
func (bg *Background) ImageLayer(img *ebiten.Image) *Layer {
	l := NewImageLayer("background", img)
	if alpha, ok := bg.Alpha(); ok {
		l.SetAlpha(alpha)
	}
	return l
}

// TiledLayer creates an image drawable repeating img across (w, h).
func (bg *Background) TiledLayer(img *ebiten.Image, w, h float64) *Layer {
	l := bg.ImageLayer(img)
	l.SetRepeat(true, true)
	l.SetSize(w, h)
	return l
}
