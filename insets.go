package trellis

// Insets is box-model padding added around an element's content. Insets is a
// value type: every copy is an immutable snapshot. Use Mutable for
// field-at-a-time edits. Negative values are a caller error and are not
// checked.
type Insets struct {
	Top, Right, Bottom, Left float64
}

// ZeroInsets has no padding on any side.
var ZeroInsets = Insets{}

// NewInsets returns insets with the given top, right, bottom and left values.
func NewInsets(top, right, bottom, left float64) Insets {
	return Insets{Top: top, Right: right, Bottom: bottom, Left: left}
}

// UniformInsets returns insets with the same value on every side.
func UniformInsets(v float64) Insets {
	return Insets{v, v, v, v}
}

// SymmetricInsets returns insets with horiz on the left and right and vert on
// the top and bottom.
func SymmetricInsets(horiz, vert float64) Insets {
	return Insets{Top: vert, Right: horiz, Bottom: vert, Left: horiz}
}

// Width returns the total horizontal inset.
func (i Insets) Width() float64 {
	return i.Left + i.Right
}

// Height returns the total vertical inset.
func (i Insets) Height() float64 {
	return i.Top + i.Bottom
}

// AddTo grows d by these insets.
func (i Insets) AddTo(d Dimension) Dimension {
	return Dimension{d.Width + i.Width(), d.Height + i.Height()}
}

// SubtractFrom shrinks d by these insets, stopping at zero.
func (i Insets) SubtractFrom(d Dimension) Dimension {
	return Dimension{d.Width - i.Width(), d.Height - i.Height()}.clampNonNegative()
}

// Mutable returns an editable copy of these insets.
func (i Insets) Mutable() *MutableInsets {
	return &MutableInsets{v: i}
}

// MutableInsets edits insets one side at a time. Insets returns the resulting
// snapshot; earlier snapshots are unaffected.
type MutableInsets struct {
	v Insets
}

// Top sets the top inset.
func (m *MutableInsets) Top(v float64) *MutableInsets {
	m.v.Top = v
	return m
}

// Right sets the right inset.
func (m *MutableInsets) Right(v float64) *MutableInsets {
	m.v.Right = v
	return m
}

// Bottom sets the bottom inset.
func (m *MutableInsets) Bottom(v float64) *MutableInsets {
	m.v.Bottom = v
	return m
}

// Left sets the left inset.
func (m *MutableInsets) Left(v float64) *MutableInsets {
	m.v.Left = v
	return m
}

// Insets returns the current snapshot.
func (m *MutableInsets) Insets() Insets {
	return m.v
}
