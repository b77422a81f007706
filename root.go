package trellis

// Root is the top of an element tree. Its layer is added to the Interface's
// scene root, and it is validated by the Interface every frame.
type Root struct {
	Group
	iface *Interface
}

// Interface returns the interface that created the root.
func (r *Root) Interface() *Interface {
	return r.iface
}

// Pack sizes the root to its preferred size.
func (r *Root) Pack() *Root {
	d := r.PreferredSize(0, 0)
	r.SetSize(d.Width, d.Height)
	return r
}

// SetSizeAt sizes the root and positions it in screen coordinates.
func (r *Root) SetSizeAt(x, y, width, height float64) *Root {
	r.SetSize(width, height)
	r.SetLocation(x, y)
	return r
}

func (r *Root) destroy() {
	r.Group.destroy()
	if r.iface != nil {
		r.iface.forgetRoot(r)
	}
}
