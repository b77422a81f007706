package trellis

// Elem is implemented by every element type: *Element itself, widgets and
// groups. Concrete types embed Element (directly or through Widget or Group)
// and override measure, layout and destroy as needed.
type Elem interface {
	base() *Element
	// measure returns the preferred content size, excluding background
	// insets.
	measure(hintX, hintY float64) Dimension
	// layout brings the element's drawables in line with its size, flags
	// and styles. It runs from Validate.
	layout()
	// destroy releases the element. It runs once, from Destroy.
	destroy()
}

// Element is a node of the UI tree. It owns a group Layer through which it is
// drawn and hit, a Flags set, its own Styles and at most one live background
// Instance.
type Element struct {
	self       Elem
	layer      *Layer
	parent     *Group
	flags      Flags
	styles     Styles
	classes    []string
	sheet      *Stylesheet
	constraint any

	size      Dimension
	preferred Dimension
	hasPref   bool

	bginst Instance
}

// init wires e to self, the outermost value embedding it. classes are the
// stylesheet classes of the element, most specific first.
func (e *Element) init(self Elem, classes ...string) {
	if len(classes) == 0 {
		classes = []string{"Element"}
	}
	e.self = self
	e.classes = classes
	e.flags = defaultFlags
	e.layer = NewGroupLayer(classes[0])
	e.layer.HitTester = e.hitTest
}

func (e *Element) base() *Element { return e }

// Layer returns the layer the element draws through.
func (e *Element) Layer() *Layer {
	return e.layer
}

// Parent returns the containing group, or nil.
func (e *Element) Parent() *Group {
	return e.parent
}

// Classes returns the stylesheet classes of the element, most specific first.
func (e *Element) Classes() []string {
	return e.classes
}

func (e *Element) parentElement() *Element {
	if e.parent == nil {
		return nil
	}
	return &e.parent.Element
}

// --- Flags ---

// IsSet reports whether flag is set.
func (e *Element) IsSet(flag Flags) bool {
	return e.flags&flag != 0
}

// Flags returns the full flag set.
func (e *Element) Flags() Flags {
	return e.flags
}

func (e *Element) set(flag Flags, on bool) {
	if on {
		e.flags |= flag
	} else {
		e.flags &^= flag
	}
}

// SetEnabled enables or disables the element. Disabled elements resolve
// disabled-mode styles and their behaviors ignore input.
func (e *Element) SetEnabled(enabled bool) {
	if e.IsSet(FlagEnabled) == enabled {
		return
	}
	e.set(FlagEnabled, enabled)
	e.Invalidate()
}

// SetSelected selects or deselects the element.
func (e *Element) SetSelected(selected bool) {
	if e.IsSet(FlagSelected) == selected {
		return
	}
	e.set(FlagSelected, selected)
	e.Invalidate()
}

// SetVisible shows or hides the element's layer.
func (e *Element) SetVisible(visible bool) {
	if e.IsSet(FlagVisible) == visible {
		return
	}
	e.set(FlagVisible, visible)
	e.layer.Visible = visible
	e.Invalidate()
}

// Mode returns the style mode implied by the enabled and selected flags.
func (e *Element) Mode() Mode {
	selected := e.IsSet(FlagSelected)
	if !e.IsSet(FlagEnabled) {
		if selected {
			return ModeDisabledSelected
		}
		return ModeDisabled
	}
	if selected {
		return ModeSelected
	}
	return ModeDefault
}

// --- Styles ---

// Styles returns the element's own style bindings.
func (e *Element) Styles() Styles {
	return e.styles
}

// SetStyles replaces the element's own style bindings.
func (e *Element) SetStyles(s Styles) {
	e.styles = s
	e.Invalidate()
}

// AddStyles adds default-mode bindings to the element's own styles.
func (e *Element) AddStyles(bindings ...Binding) {
	e.SetStyles(e.styles.Add(bindings...))
}

// Stylesheet returns the stylesheet set directly on this element.
func (e *Element) Stylesheet() *Stylesheet {
	return e.sheet
}

// SetStylesheet sets the stylesheet applied to this element and its
// descendants.
func (e *Element) SetStylesheet(ss *Stylesheet) {
	e.sheet = ss
	e.invalidateTree()
}

func (e *Element) resolve(key styleKey) (any, bool) {
	mode := e.Mode()
	if v, ok := e.styles.lookup(key, mode); ok {
		return v, true
	}
	for p := e; p != nil; p = p.parentElement() {
		if v, ok := p.sheet.lookup(e.classes, key, mode); ok {
			return v, true
		}
	}
	if key.isInherited() && e.parent != nil {
		return e.parent.resolve(key)
	}
	return nil, false
}

// --- Layout ---

// Constraint returns the layout constraint, or nil.
func (e *Element) Constraint() any {
	return e.constraint
}

// SetConstraint sets the constraint the parent's Layout reads.
func (e *Element) SetConstraint(c any) {
	e.constraint = c
	e.Invalidate()
}

// Size returns the size assigned by layout, including background insets.
func (e *Element) Size() Dimension {
	return e.size
}

// SetSize assigns the element's size. Negative dimensions become zero.
func (e *Element) SetSize(width, height float64) {
	d := Dimension{width, height}.clampNonNegative()
	if d == e.size {
		return
	}
	e.size = d
	e.Invalidate()
}

// Location returns the element's position within its parent.
func (e *Element) Location() Vec2 {
	return Vec2{e.layer.X, e.layer.Y}
}

// SetLocation positions the element within its parent.
func (e *Element) SetLocation(x, y float64) {
	e.layer.SetPosition(x, y)
}

// PreferredSize returns the size the element would like, including the
// insets of its background.
func (e *Element) PreferredSize(hintX, hintY float64) Dimension {
	if !e.hasPref {
		ins := e.backgroundInsets()
		content := e.self.measure(
			max(hintX-ins.Width(), 0), max(hintY-ins.Height(), 0))
		e.preferred = ins.AddTo(content)
		e.hasPref = true
	}
	return e.preferred
}

// Invalidate marks the element and its ancestors as needing layout.
func (e *Element) Invalidate() {
	for p := e; p != nil; p = p.parentElement() {
		p.hasPref = false
		p.flags &^= FlagValid
	}
}

// invalidateTree invalidates e and, for groups, every descendant.
func (e *Element) invalidateTree() {
	e.Invalidate()
	if g, ok := e.self.(interface{ Children() []Elem }); ok {
		for _, c := range g.Children() {
			c.base().invalidateTree()
		}
	}
}

// IsValid reports whether the element's layout is current.
func (e *Element) IsValid() bool {
	return e.IsSet(FlagValid)
}

// Validate lays out the element if it is invalid.
func (e *Element) Validate() {
	if e.IsSet(FlagValid) || e.IsSet(FlagWillDestroy) {
		return
	}
	e.self.layout()
	e.set(FlagValid, true)
}

func (e *Element) measure(hintX, hintY float64) Dimension {
	return Dimension{}
}

func (e *Element) layout() {
	e.updateBackground()
}

// contentRect returns the area inside the background insets.
func (e *Element) contentRect() Rect {
	ins := e.backgroundInsets()
	d := ins.SubtractFrom(e.size)
	return Rect{X: ins.Left, Y: ins.Top, Width: d.Width, Height: d.Height}
}

// --- Background ---

func (e *Element) backgroundInsets() Insets {
	if bg := Resolve(e, BackgroundStyle); bg != nil {
		return bg.Insets()
	}
	return ZeroInsets
}

// BackgroundInstance returns the live background instance, or nil.
func (e *Element) BackgroundInstance() Instance {
	return e.bginst
}

// updateBackground keeps the live instance in line with the resolved
// template and the element size. The old instance is always destroyed before
// the new one is attached.
func (e *Element) updateBackground() {
	bg := Resolve(e, BackgroundStyle)
	if e.bginst != nil && bg == e.bginst.Owner() && e.size == e.bginst.Size() {
		return
	}
	if e.bginst != nil {
		e.bginst.Destroy()
		e.bginst = nil
	}
	if bg == nil {
		return
	}
	e.bginst = bg.Instantiate(e.size)
	e.bginst.AddTo(e.layer, 0, 0, 0)
}

// --- Hit testing ---

// hitTest is installed as the element layer's HitTester.
func (e *Element) hitTest(l *Layer, x, y float64) *Layer {
	if !e.IsSet(FlagVisible) {
		return nil
	}
	if e.IsSet(FlagHitDescend) {
		if hit := l.HitTestDefault(x, y); hit != nil {
			return hit
		}
	}
	if e.IsSet(FlagHitAbsorb) && x >= 0 && y >= 0 && x <= e.size.Width && y <= e.size.Height {
		return l
	}
	return nil
}

// --- Destruction ---

// Destroy removes the element from its parent and releases its layer and
// background. Destroying twice is a no-op.
func (e *Element) Destroy() {
	if e.IsSet(FlagWillDestroy) {
		return
	}
	e.set(FlagWillDestroy, true)
	e.self.destroy()
}

// IsDestroyed reports whether Destroy has been called.
func (e *Element) IsDestroyed() bool {
	return e.IsSet(FlagWillDestroy)
}

func (e *Element) destroy() {
	if e.parent != nil {
		e.parent.detach(e.self)
	}
	if e.bginst != nil {
		e.bginst.Destroy()
		e.bginst = nil
	}
	e.layer.Destroy()
	e.set(FlagValid, false)
}
