package trellis

// Stylesheet maps element classes to styles. A stylesheet set on an element
// applies to it and all of its descendants. Classes are looked up most
// specific first, so a ToggleButton matches "ToggleButton" bindings before
// "Button" ones.
type Stylesheet struct {
	classes map[string]Styles
}

// Styles returns the styles registered for class.
func (ss *Stylesheet) Styles(class string) Styles {
	if ss == nil {
		return Styles{}
	}
	return ss.classes[class]
}

// Classes returns the number of classes with registered styles.
func (ss *Stylesheet) Classes() int {
	if ss == nil {
		return 0
	}
	return len(ss.classes)
}

// Merge returns a new stylesheet with the classes of both, other winning on
// conflicting bindings.
func (ss *Stylesheet) Merge(other *Stylesheet) *Stylesheet {
	out := &Stylesheet{classes: make(map[string]Styles)}
	for _, src := range []*Stylesheet{ss, other} {
		if src == nil {
			continue
		}
		for class, st := range src.classes {
			out.classes[class] = out.classes[class].Merge(st)
		}
	}
	return out
}

// lookup returns the value bound for key, trying each class in order.
func (ss *Stylesheet) lookup(classes []string, key styleKey, mode Mode) (any, bool) {
	if ss == nil {
		return nil, false
	}
	for _, class := range classes {
		st, ok := ss.classes[class]
		if !ok {
			continue
		}
		if v, ok := st.lookup(key, mode); ok {
			return v, true
		}
	}
	return nil, false
}

// StylesheetBuilder accumulates class bindings for a Stylesheet.
type StylesheetBuilder struct {
	classes map[string]Styles
}

// NewStylesheetBuilder returns an empty builder.
func NewStylesheetBuilder() *StylesheetBuilder {
	return &StylesheetBuilder{classes: make(map[string]Styles)}
}

// Add binds default-mode styles for class.
func (b *StylesheetBuilder) Add(class string, bindings ...Binding) *StylesheetBuilder {
	return b.AddMode(class, ModeDefault, bindings...)
}

// AddSelected binds selected-mode styles for class.
func (b *StylesheetBuilder) AddSelected(class string, bindings ...Binding) *StylesheetBuilder {
	return b.AddMode(class, ModeSelected, bindings...)
}

// AddDisabled binds disabled-mode styles for class.
func (b *StylesheetBuilder) AddDisabled(class string, bindings ...Binding) *StylesheetBuilder {
	return b.AddMode(class, ModeDisabled, bindings...)
}

// AddMode binds styles for class in mode.
func (b *StylesheetBuilder) AddMode(class string, mode Mode, bindings ...Binding) *StylesheetBuilder {
	b.classes[class] = b.classes[class].AddMode(mode, bindings...)
	return b
}

// Create returns the stylesheet built so far. The builder can keep being
// used; later additions do not reach stylesheets already created.
func (b *StylesheetBuilder) Create() *Stylesheet {
	ss := &Stylesheet{classes: make(map[string]Styles, len(b.classes))}
	for class, st := range b.classes {
		ss.classes[class] = st
	}
	return ss
}
