package trellis

// TextWidget is a widget that shows one string. Its text is drawn by an
// immediate glyph layer above the background, positioned in the content area
// by HAlignStyle and VAlignStyle.
type TextWidget struct {
	Widget
	text  string
	glyph *Layer

	// resolved at layout
	font  *Font
	color Color
}

func (t *TextWidget) initText(self Elem, s string, factory BehaviorFactory, classes ...string) {
	t.initWidget(self, factory, classes...)
	t.text = s
	t.glyph = NewImmediateLayer("text", 0, 0, t.paint)
	t.layer.Add(t.glyph)
}

// Text returns the displayed string.
func (t *TextWidget) Text() string {
	return t.text
}

// SetText changes the displayed string.
func (t *TextWidget) SetText(s string) {
	if s == t.text {
		return
	}
	t.text = s
	t.Invalidate()
}

// Glyph returns the layer the text is drawn through.
func (t *TextWidget) Glyph() *Layer {
	return t.glyph
}

func (t *TextWidget) measure(hintX, hintY float64) Dimension {
	w, h := Resolve(&t.Element, FontStyle).MeasureString(t.text)
	return Dimension{w, h}
}

func (t *TextWidget) layout() {
	t.Widget.layout()
	t.font = Resolve(&t.Element, FontStyle)
	t.color = ARGB(Resolve(&t.Element, TextColorStyle))

	w, h := t.font.MeasureString(t.text)
	r := t.contentRect()
	x := r.X + Resolve(&t.Element, HAlignStyle).offset(w, r.Width)
	y := r.Y + Resolve(&t.Element, VAlignStyle).offset(h, r.Height)
	t.glyph.SetSize(w, h)
	t.glyph.SetPosition(x, y)
}

func (t *TextWidget) paint(s Surface) {
	if t.font == nil {
		return
	}
	s.SetFillColor(t.color).DrawText(t.text, t.font.Face(), 0, 0)
}

// Label is a non-interactive text widget.
type Label struct {
	TextWidget
}

// NewLabel creates a label showing s.
func NewLabel(s string) *Label {
	l := &Label{}
	l.initText(l, s, nil, "Label")
	return l
}
