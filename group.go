package trellis

// Group is a container element. Its Layout sizes and positions the children
// inside the group's background insets.
type Group struct {
	Element
	lay      Layout
	children []Elem
}

// NewGroup creates a group laid out by l. A nil l uses AbsoluteLayout.
func NewGroup(l Layout, children ...Elem) *Group {
	g := &Group{}
	g.initGroup(g, l, "Group")
	g.Add(children...)
	return g
}

func (g *Group) initGroup(self Elem, l Layout, classes ...string) {
	if l == nil {
		l = AbsoluteLayout{}
	}
	g.init(self, classes...)
	g.lay = l
}

// Layout returns the group's layout manager.
func (g *Group) Layout() Layout {
	return g.lay
}

// Add appends children, removing each from any previous parent first.
// Destroyed children are skipped; in debug mode they panic instead.
func (g *Group) Add(children ...Elem) *Group {
	for _, c := range children {
		ce := c.base()
		if ce.IsDestroyed() {
			if globalDebug {
				debugCheckDestroyed(ce.layer, "Group.Add")
			}
			continue
		}
		if ce.parent != nil {
			ce.parent.detach(c)
		}
		ce.parent = g
		g.children = append(g.children, c)
		g.layer.Add(ce.layer)
		// Stylesheets and inherited styles may differ under the new parent.
		ce.invalidateTree()
	}
	g.Invalidate()
	return g
}

// Remove detaches child without destroying it.
func (g *Group) Remove(child Elem) {
	if child.base().parent != g {
		return
	}
	g.detach(child)
}

// detach drops child from the group and its layer from the group layer.
func (g *Group) detach(child Elem) {
	for i, c := range g.children {
		if c != child {
			continue
		}
		copy(g.children[i:], g.children[i+1:])
		g.children[len(g.children)-1] = nil
		g.children = g.children[:len(g.children)-1]
		ce := child.base()
		ce.parent = nil
		ce.layer.RemoveFromParent()
		g.Invalidate()
		return
	}
}

// DestroyAll destroys every child, last to first.
func (g *Group) DestroyAll() {
	kids := append([]Elem(nil), g.children...)
	for i := len(kids) - 1; i >= 0; i-- {
		kids[i].base().Destroy()
		// A child destroyed earlier does not detach itself again.
		g.detach(kids[i])
	}
}

// Children returns the children in insertion order. The returned slice MUST
// NOT be mutated by the caller.
func (g *Group) Children() []Elem {
	return g.children
}

// ChildCount returns the number of children.
func (g *Group) ChildCount() int {
	return len(g.children)
}

// ChildAt returns the child at index.
func (g *Group) ChildAt(index int) Elem {
	return g.children[index]
}

func (g *Group) measure(hintX, hintY float64) Dimension {
	return g.lay.ComputeSize(g, hintX, hintY)
}

func (g *Group) layout() {
	g.Element.layout()
	r := g.contentRect()
	g.lay.Layout(g, r.X, r.Y, r.Width, r.Height)
	for _, c := range g.children {
		c.base().Validate()
	}
}

func (g *Group) destroy() {
	g.DestroyAll()
	g.Element.destroy()
}
