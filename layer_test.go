package trellis

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLayerDefaults(t *testing.T) {
	l := NewGroupLayer("g")
	if l.ScaleX != 1 || l.ScaleY != 1 {
		t.Errorf("scale = (%v, %v), want (1, 1)", l.ScaleX, l.ScaleY)
	}
	if l.Alpha != 1 {
		t.Errorf("Alpha = %v, want 1", l.Alpha)
	}
	if !l.Visible {
		t.Error("new layer should be visible")
	}
	if l.Type != LayerGroup {
		t.Errorf("Type = %v, want LayerGroup", l.Type)
	}
}

func TestLayerIDsUnique(t *testing.T) {
	a := NewGroupLayer("a")
	b := NewGroupLayer("b")
	if a.ID == b.ID {
		t.Errorf("IDs should differ, both %d", a.ID)
	}
}

func TestAddSetsParent(t *testing.T) {
	p := NewGroupLayer("p")
	c := NewGroupLayer("c")
	p.Add(c)
	if c.Parent != p {
		t.Error("child parent not set")
	}
	if p.NumChildren() != 1 || p.ChildAt(0) != c {
		t.Errorf("NumChildren = %d, want 1", p.NumChildren())
	}
}

func TestAddReparents(t *testing.T) {
	a := NewGroupLayer("a")
	b := NewGroupLayer("b")
	c := NewGroupLayer("c")
	a.Add(c)
	b.Add(c)
	if a.NumChildren() != 0 {
		t.Errorf("old parent NumChildren = %d, want 0", a.NumChildren())
	}
	if c.Parent != b {
		t.Error("child should be under new parent")
	}
}

func TestAddNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic adding nil")
		}
	}()
	NewGroupLayer("p").Add(nil)
}

func TestAddCyclePanics(t *testing.T) {
	a := NewGroupLayer("a")
	b := NewGroupLayer("b")
	a.Add(b)
	defer func() {
		if recover() == nil {
			t.Error("expected panic on cycle")
		}
	}()
	b.Add(a)
}

func TestRemoveWrongParentPanics(t *testing.T) {
	a := NewGroupLayer("a")
	c := NewGroupLayer("c")
	defer func() {
		if recover() == nil {
			t.Error("expected panic removing non-child")
		}
	}()
	a.Remove(c)
}

func TestRemoveFromParentNoParent(t *testing.T) {
	NewGroupLayer("orphan").RemoveFromParent()
}

func TestPaintOrderStableByDepth(t *testing.T) {
	p := NewGroupLayer("p")
	a := NewGroupLayer("a")
	b := NewGroupLayer("b")
	c := NewGroupLayer("c")
	d := NewGroupLayer("d")
	a.SetDepth(0)
	b.SetDepth(-10)
	c.SetDepth(0)
	d.SetDepth(-10)
	p.Add(a)
	p.Add(b)
	p.Add(c)
	p.Add(d)

	want := []*Layer{b, d, a, c}
	got := p.PaintOrder()
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("PaintOrder[%d] = %q, want %q", i, got[i].Name, want[i].Name)
		}
	}
	// Insertion order is untouched.
	if p.ChildAt(0) != a || p.ChildAt(3) != d {
		t.Error("Children order should remain insertion order")
	}
}

func TestSetDepthResorts(t *testing.T) {
	p := NewGroupLayer("p")
	a := NewGroupLayer("a")
	b := NewGroupLayer("b")
	p.Add(a)
	p.Add(b)
	_ = p.PaintOrder()
	a.SetDepth(5)
	if got := p.PaintOrder(); got[1] != a {
		t.Errorf("PaintOrder[1] = %q, want a", got[1].Name)
	}
}

func TestDestroyRecursive(t *testing.T) {
	root := NewGroupLayer("root")
	p := NewGroupLayer("p")
	c := NewGroupLayer("c")
	root.Add(p)
	p.Add(c)

	p.Destroy()

	if !p.IsDestroyed() || !c.IsDestroyed() {
		t.Error("subtree should be destroyed")
	}
	if root.NumChildren() != 0 {
		t.Errorf("root NumChildren = %d, want 0", root.NumChildren())
	}
	if c.Parent != nil {
		t.Error("destroyed child should have no parent")
	}
	// Second destroy is a no-op.
	p.Destroy()
}

func TestDestroyDropsListeners(t *testing.T) {
	l := NewGroupLayer("l")
	l.AddListener(&recordListener{})
	l.Destroy()
	if l.NumListeners() != 0 {
		t.Errorf("NumListeners = %d, want 0", l.NumListeners())
	}
}

func TestImageLayerSize(t *testing.T) {
	img := ebiten.NewImage(16, 8)
	l := NewImageLayer("img", img)
	w, h := l.Size()
	if w != 16 || h != 8 {
		t.Errorf("native size = (%v, %v), want (16, 8)", w, h)
	}
	l.SetSize(40, 20)
	w, h = l.Size()
	if w != 40 || h != 20 {
		t.Errorf("explicit size = (%v, %v), want (40, 20)", w, h)
	}
}

func TestGroupLayerSizeZero(t *testing.T) {
	w, h := NewGroupLayer("g").Size()
	if w != 0 || h != 0 {
		t.Errorf("group size = (%v, %v), want (0, 0)", w, h)
	}
}
