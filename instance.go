package trellis

// Instance is a size-bound realization of a Background. It owns its
// drawables: AddTo attaches them to an element layer, Destroy releases them.
//
// Each Instance is added at most once and destroyed exactly once. Breaking
// that contract is undefined in normal mode and panics in debug mode.
type Instance interface {
	// Size returns the size the instance was prepared at. It never changes.
	Size() Dimension
	// Owner returns the template that created this instance.
	Owner() *Background
	// AddTo adds the drawables to parent at (x, y) with depth
	// BackgroundDepth+depthAdjust. Lower adjustments render behind.
	AddTo(parent *Layer, x, y, depthAdjust float64)
	// Destroy releases every drawable, detaching any that were added.
	Destroy()
}

// LayerInstance is the stock Instance: a fixed list of drawables.
type LayerInstance struct {
	size      Dimension
	owner     *Background
	layers    []*Layer
	added     bool
	destroyed bool
}

// NewLayerInstance returns an instance of owner at size owning layers.
// Custom Instantiators use it for their result.
func NewLayerInstance(owner *Background, size Dimension, layers ...*Layer) *LayerInstance {
	return &LayerInstance{size: size, owner: owner, layers: layers}
}

// Size returns the size the instance was prepared at.
func (li *LayerInstance) Size() Dimension {
	return li.size
}

// Owner returns the template that created this instance.
func (li *LayerInstance) Owner() *Background {
	return li.owner
}

// Layers returns the owned drawables in attachment order.
func (li *LayerInstance) Layers() []*Layer {
	return li.layers
}

// AddTo adds each drawable to parent at (x, y), adjusting any existing offset.
func (li *LayerInstance) AddTo(parent *Layer, x, y, depthAdjust float64) {
	if globalDebug {
		debugCheckInstance(li.owner, li.destroyed, li.added, "AddTo")
	}
	li.added = true
	for _, l := range li.layers {
		l.SetDepth(BackgroundDepth + depthAdjust)
		l.Translate(x, y)
		parent.Add(l)
	}
}

// Destroy destroys every owned drawable.
func (li *LayerInstance) Destroy() {
	if globalDebug {
		debugCheckInstance(li.owner, li.destroyed, li.added, "Destroy")
	}
	li.destroyed = true
	for _, l := range li.layers {
		l.Destroy()
	}
}

// compositeInstance stacks constituent instances in input order.
type compositeInstance struct {
	size      Dimension
	owner     *Background
	parts     []Instance
	added     bool
	destroyed bool
}

func (ci *compositeInstance) Size() Dimension    { return ci.size }
func (ci *compositeInstance) Owner() *Background { return ci.owner }

// Parts returns the constituent instances in draw order.
func (ci *compositeInstance) Parts() []Instance { return ci.parts }

func (ci *compositeInstance) AddTo(parent *Layer, x, y, depthAdjust float64) {
	if globalDebug {
		debugCheckInstance(ci.owner, ci.destroyed, ci.added, "AddTo")
	}
	ci.added = true
	// Equal depths paint in insertion order, so later parts land on top.
	for _, p := range ci.parts {
		p.AddTo(parent, x, y, depthAdjust)
	}
}

func (ci *compositeInstance) Destroy() {
	if globalDebug {
		debugCheckInstance(ci.owner, ci.destroyed, ci.added, "Destroy")
	}
	ci.destroyed = true
	for _, p := range ci.parts {
		p.Destroy()
	}
}
