package trellis

// BehaviorFactory creates the behavior of a widget. It is called exactly
// once, while the widget is constructed. Returning nil makes a stateless
// widget.
type BehaviorFactory func(w *Widget) Behavior

// Widget is an Element with an optional Behavior wired to its layer's
// pointer stream. The behavior is fixed at construction.
type Widget struct {
	Element
	behavior Behavior
	conn     Connection
}

// NewWidget creates a widget of class "Widget" whose behavior comes from
// factory. factory may be nil.
func NewWidget(factory BehaviorFactory) *Widget {
	w := &Widget{}
	w.initWidget(w, factory, "Widget")
	return w
}

// initWidget initializes the embedded element, then creates and registers
// the behavior.
func (w *Widget) initWidget(self Elem, factory BehaviorFactory, classes ...string) {
	w.init(self, classes...)
	if factory == nil {
		return
	}
	b := factory(w)
	if b == nil {
		return
	}
	w.behavior = b
	w.AbsorbClicks()
	w.conn = w.layer.AddListener(b)
}

// AbsorbClicks makes the widget claim every pointer hit within its bounds
// instead of passing it on to child layers.
func (w *Widget) AbsorbClicks() {
	w.set(FlagHitAbsorb, true)
	w.set(FlagHitDescend, false)
}

// Behavior returns the widget's behavior, or nil for a stateless widget.
func (w *Widget) Behavior() Behavior {
	return w.behavior
}

// HasListener reports whether the behavior is still registered on the layer.
func (w *Widget) HasListener() bool {
	return w.conn.Connected()
}

func (w *Widget) layout() {
	w.Element.layout()
	if w.behavior != nil {
		w.behavior.Layout()
	}
}

// destroy unregisters the behavior before releasing the layer.
func (w *Widget) destroy() {
	w.conn.Disconnect()
	w.Element.destroy()
}
