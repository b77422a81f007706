package trellis

import "github.com/hajimehoshi/ebiten/v2"

// Interface owns a Scene and the element roots drawn into it. Each frame it
// validates the roots, processes input and advances tweens.
type Interface struct {
	scene  *Scene
	roots  []*Root
	tweens []*TweenGroup
}

// NewInterface creates an interface with an empty scene.
func NewInterface() *Interface {
	return &Interface{scene: NewScene()}
}

// Scene returns the scene the interface draws into.
func (i *Interface) Scene() *Scene {
	return i.scene
}

// CreateRoot creates a root laid out by l and styled by sheet. Either may be
// nil.
func (i *Interface) CreateRoot(l Layout, sheet *Stylesheet) *Root {
	r := &Root{iface: i}
	r.initGroup(r, l, "Root")
	r.sheet = sheet
	i.roots = append(i.roots, r)
	i.scene.Root().Add(r.layer)
	return r
}

// DestroyRoot cancels pointer interactions in flight and destroys r.
func (i *Interface) DestroyRoot(r *Root) {
	i.scene.CancelPointers()
	r.Destroy()
}

// Roots returns the live roots in creation order. The returned slice MUST
// NOT be mutated by the caller.
func (i *Interface) Roots() []*Root {
	return i.roots
}

func (i *Interface) forgetRoot(r *Root) {
	for j, rr := range i.roots {
		if rr == r {
			copy(i.roots[j:], i.roots[j+1:])
			i.roots[len(i.roots)-1] = nil
			i.roots = i.roots[:len(i.roots)-1]
			return
		}
	}
}

// Animate starts driving g from Update. Finished groups are dropped.
func (i *Interface) Animate(g *TweenGroup) *TweenGroup {
	i.tweens = append(i.tweens, g)
	return g
}

// NumTweens returns the number of tweens still running.
func (i *Interface) NumTweens() int {
	return len(i.tweens)
}

// Validate lays out every invalid root.
func (i *Interface) Validate() {
	for _, r := range i.roots {
		r.Validate()
	}
}

// Update validates the roots so hit testing sees current bounds, runs the
// scene's input pass, then advances tweens by dt seconds.
func (i *Interface) Update(dt float32) {
	i.Validate()
	i.scene.Update()
	i.advance(dt)
}

func (i *Interface) advance(dt float32) {
	live := i.tweens[:0]
	for _, g := range i.tweens {
		g.Update(dt)
		if !g.Done {
			live = append(live, g)
		}
	}
	for j := len(live); j < len(i.tweens); j++ {
		i.tweens[j] = nil
	}
	i.tweens = live
}

// Draw validates the roots, since input handlers may have changed them, and
// paints the scene to screen.
func (i *Interface) Draw(screen *ebiten.Image) {
	i.Validate()
	i.scene.Draw(screen)
}
