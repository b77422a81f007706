package trellis

// Mode selects which binding of a style applies to an element.
type Mode uint8

const (
	ModeDefault Mode = iota
	ModeDisabled
	ModeSelected
	ModeDisabledSelected
)

func (m Mode) String() string {
	switch m {
	case ModeDisabled:
		return "disabled"
	case ModeSelected:
		return "selected"
	case ModeDisabledSelected:
		return "disabled-selected"
	}
	return "default"
}

// fallbacks lists the modes consulted, in order, when looking up m.
func (m Mode) fallbacks() []Mode {
	switch m {
	case ModeDisabled:
		return []Mode{ModeDisabled, ModeDefault}
	case ModeSelected:
		return []Mode{ModeSelected, ModeDefault}
	case ModeDisabledSelected:
		return []Mode{ModeDisabledSelected, ModeDisabled, ModeSelected, ModeDefault}
	}
	return []Mode{ModeDefault}
}

// styleKey identifies a style independent of its value type.
type styleKey interface {
	StyleName() string
	isInherited() bool
}

// Style is a typed style property. Styles are declared once as package
// variables and bound to values in Styles and Stylesheets.
type Style[T any] struct {
	name      string
	inherited bool
	def       func() T
}

// NewStyle declares a style with a fixed default. Inherited styles resolve
// to the parent element's value before falling back to the default.
func NewStyle[T any](name string, inherited bool, def T) *Style[T] {
	return &Style[T]{name: name, inherited: inherited, def: func() T { return def }}
}

// NewStyleFunc declares a style whose default is computed on demand.
func NewStyleFunc[T any](name string, inherited bool, def func() T) *Style[T] {
	return &Style[T]{name: name, inherited: inherited, def: def}
}

// StyleName returns the name the style is declared and parsed under.
func (s *Style[T]) StyleName() string { return s.name }

func (s *Style[T]) isInherited() bool { return s.inherited }

// Default returns the style's default value.
func (s *Style[T]) Default() T { return s.def() }

// Is binds the style to v.
func (s *Style[T]) Is(v T) Binding {
	return Binding{key: s, value: v}
}

// Binding pairs a style with a value.
type Binding struct {
	key   styleKey
	value any
}

// Style returns the name of the bound style.
func (b Binding) Style() string { return b.key.StyleName() }

// Styles is an immutable set of style bindings per mode. Every Add returns a
// new Styles and leaves the receiver untouched. The zero value is empty.
type Styles struct {
	modes [4]map[styleKey]any
}

// NewStyles returns styles with the given default-mode bindings.
func NewStyles(bindings ...Binding) Styles {
	return Styles{}.Add(bindings...)
}

// Add returns a copy with the bindings added for the default mode.
func (s Styles) Add(bindings ...Binding) Styles {
	return s.addMode(ModeDefault, bindings)
}

// AddSelected returns a copy with the bindings added for the selected mode.
func (s Styles) AddSelected(bindings ...Binding) Styles {
	return s.addMode(ModeSelected, bindings)
}

// AddDisabled returns a copy with the bindings added for the disabled mode.
func (s Styles) AddDisabled(bindings ...Binding) Styles {
	return s.addMode(ModeDisabled, bindings)
}

// AddDisabledSelected returns a copy with the bindings added for the
// disabled and selected mode.
func (s Styles) AddDisabledSelected(bindings ...Binding) Styles {
	return s.addMode(ModeDisabledSelected, bindings)
}

// AddMode returns a copy with the bindings added for mode.
func (s Styles) AddMode(mode Mode, bindings ...Binding) Styles {
	return s.addMode(mode, bindings)
}

func (s Styles) addMode(mode Mode, bindings []Binding) Styles {
	if len(bindings) == 0 {
		return s
	}
	m := make(map[styleKey]any, len(s.modes[mode])+len(bindings))
	for k, v := range s.modes[mode] {
		m[k] = v
	}
	for _, b := range bindings {
		m[b.key] = b.value
	}
	s.modes[mode] = m
	return s
}

// Merge returns a copy with every binding of other added, other winning on
// conflicts.
func (s Styles) Merge(other Styles) Styles {
	for mode, m := range other.modes {
		if len(m) == 0 {
			continue
		}
		merged := make(map[styleKey]any, len(s.modes[mode])+len(m))
		for k, v := range s.modes[mode] {
			merged[k] = v
		}
		for k, v := range m {
			merged[k] = v
		}
		s.modes[mode] = merged
	}
	return s
}

// Len returns the number of bindings across all modes.
func (s Styles) Len() int {
	n := 0
	for _, m := range s.modes {
		n += len(m)
	}
	return n
}

// lookup returns the value bound for key in mode, falling back through the
// less specific modes.
func (s Styles) lookup(key styleKey, mode Mode) (any, bool) {
	for _, m := range mode.fallbacks() {
		if v, ok := s.modes[m][key]; ok {
			return v, true
		}
	}
	return nil, false
}

// Get returns the value bound for style in mode, if any.
func Get[T any](s Styles, style *Style[T], mode Mode) (T, bool) {
	v, ok := s.lookup(style, mode)
	if !ok {
		var zero T
		return zero, false
	}
	return v.(T), true
}

// Resolve computes the value of style for e: the element's own styles, then
// the stylesheets of e and its ancestors, then (for inherited styles) the
// parent's resolved value, then the style default.
func Resolve[T any](e *Element, style *Style[T]) T {
	if v, ok := e.resolve(style); ok {
		return v.(T)
	}
	return style.Default()
}

// --- Stock styles ---

// HAlign is horizontal alignment of content within an element.
type HAlign uint8

const (
	HAlignCenter HAlign = iota
	HAlignLeft
	HAlignRight
)

// offset returns the x offset of content of width w within extent.
func (a HAlign) offset(w, extent float64) float64 {
	switch a {
	case HAlignLeft:
		return 0
	case HAlignRight:
		return extent - w
	}
	return (extent - w) / 2
}

// VAlign is vertical alignment of content within an element.
type VAlign uint8

const (
	VAlignCenter VAlign = iota
	VAlignTop
	VAlignBottom
)

// offset returns the y offset of content of height h within extent.
func (a VAlign) offset(h, extent float64) float64 {
	switch a {
	case VAlignTop:
		return 0
	case VAlignBottom:
		return extent - h
	}
	return (extent - h) / 2
}

// defaultBackground is shared by every element without a configured
// background, so the live instance owner stays stable across layouts.
var defaultBackground = Blank()

var (
	// BackgroundStyle is the background template of an element.
	BackgroundStyle = NewStyle("background", false, defaultBackground)
	// TextColorStyle is the color of text, as 0xAARRGGBB.
	TextColorStyle = NewStyle[uint32]("text-color", true, 0xFF000000)
	// FontStyle is the font of text.
	FontStyle = NewStyleFunc("font", true, DefaultFont)
	// HAlignStyle is the horizontal alignment of text.
	HAlignStyle = NewStyle("halign", false, HAlignCenter)
	// VAlignStyle is the vertical alignment of text.
	VAlignStyle = NewStyle("valign", false, VAlignCenter)
)
