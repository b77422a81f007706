package trellis

// Behavior is a widget's interaction state machine. It listens to the
// widget layer's pointer stream for the widget's whole life, and its Layout
// hook runs after each layout of the widget.
type Behavior interface {
	Listener
	Layout()
}

// pressTracker holds what click-like behaviors share: the owning widget and
// the hit region recomputed on layout.
type pressTracker struct {
	owner  *Widget
	bounds Rect
}

// Layout recomputes the hit region from the widget size.
func (p *pressTracker) Layout() {
	p.bounds = Rect{Width: p.owner.size.Width, Height: p.owner.size.Height}
}

// Bounds returns the hit region, in widget-local coordinates.
func (p *pressTracker) Bounds() Rect {
	return p.bounds
}

func (p *pressTracker) inBounds(e PointerEvent) bool {
	return p.bounds.Contains(e.LocalX, e.LocalY)
}

func (p *pressTracker) enabled() bool {
	return p.owner.IsSet(FlagEnabled)
}

// ClickBehavior selects the widget while it is pressed and emits Clicked
// when the pointer is released inside the widget.
type ClickBehavior struct {
	pressTracker
	armed bool

	// Clicked fires with the widget on every completed click.
	Clicked Signal[*Widget]
}

// NewClickBehavior is a BehaviorFactory.
func NewClickBehavior(w *Widget) Behavior {
	return &ClickBehavior{pressTracker: pressTracker{owner: w}}
}

func (b *ClickBehavior) OnPointerStart(e PointerEvent) {
	if !b.enabled() {
		return
	}
	b.armed = true
	b.owner.SetSelected(true)
}

func (b *ClickBehavior) OnPointerDrag(e PointerEvent) {
	if !b.armed {
		return
	}
	b.owner.SetSelected(b.inBounds(e))
}

func (b *ClickBehavior) OnPointerEnd(e PointerEvent) {
	if !b.armed {
		return
	}
	b.armed = false
	b.owner.SetSelected(false)
	if b.enabled() && b.inBounds(e) {
		b.Clicked.Emit(b.owner)
	}
}

func (b *ClickBehavior) OnPointerCancel(e PointerEvent) {
	if !b.armed {
		return
	}
	b.armed = false
	b.owner.SetSelected(false)
}

// ToggleBehavior flips the widget's selection on every completed click and
// emits the new state through Toggled. While pressed, the selection previews
// the outcome.
type ToggleBehavior struct {
	pressTracker
	armed  bool
	anchor bool // selection when the press started

	// Toggled fires with the new selection state.
	Toggled Signal[bool]
}

// NewToggleBehavior is a BehaviorFactory.
func NewToggleBehavior(w *Widget) Behavior {
	return &ToggleBehavior{pressTracker: pressTracker{owner: w}}
}

func (b *ToggleBehavior) OnPointerStart(e PointerEvent) {
	if !b.enabled() {
		return
	}
	b.armed = true
	b.anchor = b.owner.IsSet(FlagSelected)
	b.owner.SetSelected(!b.anchor)
}

func (b *ToggleBehavior) OnPointerDrag(e PointerEvent) {
	if !b.armed {
		return
	}
	b.owner.SetSelected(b.inBounds(e) != b.anchor)
}

func (b *ToggleBehavior) OnPointerEnd(e PointerEvent) {
	if !b.armed {
		return
	}
	b.armed = false
	if b.enabled() && b.inBounds(e) {
		b.owner.SetSelected(!b.anchor)
		b.Toggled.Emit(!b.anchor)
		return
	}
	b.owner.SetSelected(b.anchor)
}

func (b *ToggleBehavior) OnPointerCancel(e PointerEvent) {
	if !b.armed {
		return
	}
	b.armed = false
	b.owner.SetSelected(b.anchor)
}
