package trellis

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// Renderer paints an immediate layer. Coordinates passed to the Surface are
// layer-local.
type Renderer func(surf Surface)

// HitTester returns the layer hit at the local point (x, y), or nil. Elements
// install one on their layer so hit testing follows their flags.
type HitTester func(l *Layer, x, y float64) *Layer

// layerIDCounter is a plain counter (no atomic: trellis is single-threaded).
var layerIDCounter uint32

func nextLayerID() uint32 {
	layerIDCounter++
	return layerIDCounter
}

// Layer is the scene graph node every element, background drawable and text
// glyph is drawn through. A single flat struct is used for all layer types.
type Layer struct {
	// Identity
	ID   uint32
	Name string
	Type LayerType

	// Hierarchy
	Parent   *Layer
	children []*Layer

	// Transform (local)
	X, Y     float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64

	// Computed during traversal
	worldTransform [6]float64
	worldAlpha     float64
	transformDirty bool

	// Visibility & interaction
	Alpha       float64
	Visible     bool
	Interactive bool

	// Ordering: lower depth paints behind higher depth. Equal depths keep
	// insertion order.
	depth float64

	// Size of immediate and image layers in local units. Image layers
	// without an explicit size paint at the image's native size.
	width, height float64
	sized         bool

	// Immediate fields (LayerImmediate)
	renderer Renderer

	// Image fields (LayerImage)
	Image            *ebiten.Image
	SrcRect          image.Rectangle // zero means the whole image
	RepeatX, RepeatY bool

	// Hit testing; nil uses HitTestDefault.
	HitTester HitTester

	// Pointer listeners (see input.go)
	listeners      []listenerEntry
	nextListenerID uint32

	// Internal
	destroyed      bool
	childrenSorted bool
	sortedChildren []*Layer // reused buffer for depth-sorted paint order
}

// layerDefaults sets the common default field values shared by all constructors.
func layerDefaults(l *Layer) {
	l.ID = nextLayerID()
	l.ScaleX = 1
	l.ScaleY = 1
	l.Alpha = 1
	l.Visible = true
	l.transformDirty = true
	l.childrenSorted = true
}

// NewGroupLayer creates a layer that only holds children.
func NewGroupLayer(name string) *Layer {
	l := &Layer{Name: name, Type: LayerGroup}
	layerDefaults(l)
	return l
}

// NewImmediateLayer creates a layer of the given size painted by r every frame.
func NewImmediateLayer(name string, width, height float64, r Renderer) *Layer {
	l := &Layer{Name: name, Type: LayerImmediate, renderer: r}
	layerDefaults(l)
	l.SetSize(width, height)
	return l
}

// NewImageLayer creates a layer that paints img at its native size.
func NewImageLayer(name string, img *ebiten.Image) *Layer {
	l := &Layer{Name: name, Type: LayerImage, Image: img}
	layerDefaults(l)
	return l
}

// Renderer returns the paint callback of an immediate layer, or nil.
func (l *Layer) Renderer() Renderer {
	return l.renderer
}

// SetSize fixes the painted size of an immediate or image layer. Image layers
// scale (or tile, when repeating) their image to fill this size.
func (l *Layer) SetSize(width, height float64) {
	l.width = width
	l.height = height
	l.sized = true
}

// Size returns the painted size of the layer. Image layers without an explicit
// size report their source size. Group layers report zero.
func (l *Layer) Size() (width, height float64) {
	if l.sized {
		return l.width, l.height
	}
	if l.Type == LayerImage && l.Image != nil {
		r := l.SrcRect
		if r.Empty() {
			r = l.Image.Bounds()
		}
		return float64(r.Dx()), float64(r.Dy())
	}
	return 0, 0
}

// SetRepeat configures tiling of an image layer along each axis.
func (l *Layer) SetRepeat(x, y bool) {
	l.RepeatX = x
	l.RepeatY = y
}

// Depth returns the layer's paint depth within its parent.
func (l *Layer) Depth() float64 {
	return l.depth
}

// SetDepth sets the paint depth and marks the parent's children as unsorted.
func (l *Layer) SetDepth(d float64) {
	if l.depth == d {
		return
	}
	l.depth = d
	if l.Parent != nil {
		l.Parent.childrenSorted = false
	}
}

// --- Tree manipulation ---

// Add appends child to this layer's children.
// If child already has a parent, it is removed from that parent first.
// Panics if child is nil or child is an ancestor of this layer (cycle).
func (l *Layer) Add(child *Layer) {
	if child == nil {
		panic("trellis: cannot add nil layer")
	}
	if globalDebug {
		debugCheckDestroyed(l, "Add (parent)")
		debugCheckDestroyed(child, "Add (child)")
	}
	if isAncestor(child, l) {
		panic("trellis: adding layer would create a cycle")
	}
	if child.Parent != nil {
		child.Parent.removeChildByPtr(child)
	}
	child.Parent = l
	l.children = append(l.children, child)
	l.childrenSorted = false
	markSubtreeDirty(child)
	if globalDebug {
		debugCheckTreeDepth(child)
	}
}

// Remove detaches child from this layer.
// Panics if child.Parent != l.
func (l *Layer) Remove(child *Layer) {
	if child.Parent != l {
		panic("trellis: layer's parent is not this layer")
	}
	l.removeChildByPtr(child)
	child.Parent = nil
	l.childrenSorted = false
	markSubtreeDirty(child)
}

// RemoveFromParent detaches this layer from its parent.
// No-op if this layer has no parent.
func (l *Layer) RemoveFromParent() {
	if l.Parent == nil {
		return
	}
	l.Parent.Remove(l)
}

// Children returns the child list in insertion order. The returned slice MUST
// NOT be mutated by the caller.
func (l *Layer) Children() []*Layer {
	return l.children
}

// NumChildren returns the number of children.
func (l *Layer) NumChildren() int {
	return len(l.children)
}

// ChildAt returns the child at the given index.
func (l *Layer) ChildAt(index int) *Layer {
	return l.children[index]
}

// PaintOrder returns the children sorted by ascending depth, ties in insertion
// order. The returned slice MUST NOT be mutated by the caller.
func (l *Layer) PaintOrder() []*Layer {
	if !l.childrenSorted {
		l.rebuildSortedChildren()
	}
	if l.sortedChildren != nil {
		return l.sortedChildren
	}
	return l.children
}

// rebuildSortedChildren rebuilds the depth-sorted paint order.
// Uses insertion sort: zero allocations, stable, and optimal for the typical
// case of few children that are nearly sorted (O(n) when already sorted).
func (l *Layer) rebuildSortedChildren() {
	nc := len(l.children)
	if cap(l.sortedChildren) < nc {
		l.sortedChildren = make([]*Layer, nc)
	}
	l.sortedChildren = l.sortedChildren[:nc]
	copy(l.sortedChildren, l.children)
	for i := 1; i < nc; i++ {
		key := l.sortedChildren[i]
		j := i - 1
		for j >= 0 && l.sortedChildren[j].depth > key.depth {
			l.sortedChildren[j+1] = l.sortedChildren[j]
			j--
		}
		l.sortedChildren[j+1] = key
	}
	l.childrenSorted = true
}

// --- Destruction ---

// Destroy removes this layer from its parent, marks it destroyed, drops its
// listeners, and recursively destroys all descendants. Destroying twice is a
// no-op.
func (l *Layer) Destroy() {
	if l.destroyed {
		return
	}
	l.RemoveFromParent()
	l.destroy()
}

func (l *Layer) destroy() {
	l.destroyed = true
	for _, child := range l.children {
		child.Parent = nil
		child.destroy()
	}
	l.children = nil
	l.sortedChildren = nil
	l.Parent = nil
	l.HitTester = nil
	l.renderer = nil
	l.Image = nil
	for i := range l.listeners {
		l.listeners[i] = listenerEntry{}
	}
	l.listeners = nil
}

// IsDestroyed reports whether this layer has been destroyed.
func (l *Layer) IsDestroyed() bool {
	return l.destroyed
}

// --- Helpers ---

// isAncestor reports whether candidate is an ancestor of layer.
func isAncestor(candidate, layer *Layer) bool {
	for p := layer; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from l.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (l *Layer) removeChildByPtr(child *Layer) {
	for i, c := range l.children {
		if c == child {
			copy(l.children[i:], l.children[i+1:])
			l.children[len(l.children)-1] = nil
			l.children = l.children[:len(l.children)-1]
			return
		}
	}
}

// markSubtreeDirty sets transformDirty on layer and all its descendants.
func markSubtreeDirty(layer *Layer) {
	layer.transformDirty = true
	for _, child := range layer.children {
		markSubtreeDirty(child)
	}
}
