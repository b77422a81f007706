package trellis

// Layout sizes and positions the children of a Group.
type Layout interface {
	// ComputeSize returns the content size the group needs for its children.
	ComputeSize(g *Group, hintX, hintY float64) Dimension
	// Layout assigns each child a size and location within the content
	// area at (left, top) of the given width and height.
	Layout(g *Group, left, top, width, height float64)
}

// AbsoluteConstraint places an element at Position within its parent. A zero
// Size uses the element's preferred size.
type AbsoluteConstraint struct {
	Position Vec2
	Size     Dimension
}

// At returns a constraint placing an element at (x, y) at its preferred size.
func At(x, y float64) AbsoluteConstraint {
	return AbsoluteConstraint{Position: Vec2{x, y}}
}

// AtSize returns a constraint placing an element at (x, y) with a fixed size.
func AtSize(x, y, width, height float64) AbsoluteConstraint {
	return AbsoluteConstraint{Position: Vec2{x, y}, Size: Dimension{width, height}}
}

// AbsoluteLayout positions children by their AbsoluteConstraint. Children
// without one are placed at the content origin at their preferred size.
type AbsoluteLayout struct{}

func absoluteBox(c Elem, hintX, hintY float64) (pos Vec2, size Dimension) {
	ce := c.base()
	ac, _ := ce.constraint.(AbsoluteConstraint)
	size = ac.Size
	if size.Width <= 0 || size.Height <= 0 {
		pref := ce.PreferredSize(hintX, hintY)
		if size.Width <= 0 {
			size.Width = pref.Width
		}
		if size.Height <= 0 {
			size.Height = pref.Height
		}
	}
	return ac.Position, size
}

// ComputeSize returns the extent of the children's boxes.
func (AbsoluteLayout) ComputeSize(g *Group, hintX, hintY float64) Dimension {
	var d Dimension
	for _, c := range g.children {
		if !c.base().IsSet(FlagVisible) {
			continue
		}
		pos, size := absoluteBox(c, hintX, hintY)
		d.Width = max(d.Width, pos.X+size.Width)
		d.Height = max(d.Height, pos.Y+size.Height)
	}
	return d
}

// Layout applies each child's constraint.
func (AbsoluteLayout) Layout(g *Group, left, top, width, height float64) {
	for _, c := range g.children {
		pos, size := absoluteBox(c, width, height)
		ce := c.base()
		ce.SetSize(size.Width, size.Height)
		ce.SetLocation(left+pos.X, top+pos.Y)
	}
}
