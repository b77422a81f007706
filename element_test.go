package trellis

import (
	"testing"
	"time"
)

func TestElementDefaults(t *testing.T) {
	w := NewWidget(nil)
	if w.Flags() != defaultFlags {
		t.Errorf("Flags = %v, want %v", w.Flags(), defaultFlags)
	}
	if got := w.Classes(); len(got) != 1 || got[0] != "Widget" {
		t.Errorf("Classes = %v, want [Widget]", got)
	}
	if w.Layer().Name != "Widget" || w.Layer().Type != LayerGroup {
		t.Errorf("layer = %s/%v, want Widget group", w.Layer().Name, w.Layer().Type)
	}
	if w.BackgroundInstance() != nil {
		t.Error("no background should exist before the first layout")
	}
	if w.IsValid() {
		t.Error("new element should be invalid")
	}
}

func TestElementSetSizeClamps(t *testing.T) {
	w := NewWidget(nil)
	w.SetSize(-5, 10)
	if got := w.Size(); got != (Dimension{0, 10}) {
		t.Errorf("Size = %v, want {0 10}", got)
	}
}

func TestElementFlagSetters(t *testing.T) {
	w := NewWidget(nil)
	w.Validate()
	w.SetVisible(false)
	if w.Layer().Visible || w.IsSet(FlagVisible) {
		t.Error("SetVisible(false) should hide the layer")
	}
	if w.IsValid() {
		t.Error("flag change should invalidate")
	}
	w.SetEnabled(false)
	w.SetSelected(true)
	if w.Mode() != ModeDisabledSelected {
		t.Errorf("Mode = %v, want disabled-selected", w.Mode())
	}
}

func TestInvalidatePropagatesToAncestors(t *testing.T) {
	outer := NewGroup(nil)
	inner := NewGroup(nil)
	w := NewWidget(nil)
	outer.Add(inner.Add(w))
	outer.Validate()
	if !outer.IsValid() || !inner.IsValid() || !w.IsValid() {
		t.Fatal("Validate should validate the whole tree")
	}
	w.SetConstraint(AtSize(0, 0, 5, 5))
	if outer.IsValid() || inner.IsValid() {
		t.Error("invalidating a child should invalidate its ancestors")
	}
}

func TestBackgroundInstantiatedAtElementSize(t *testing.T) {
	bg := Solid(0xFF102030)
	w := NewWidget(nil)
	w.AddStyles(BackgroundStyle.Is(bg))
	w.SetSize(10, 10)
	w.Validate()

	first := w.BackgroundInstance()
	if first == nil || first.Owner() != bg || first.Size() != (Dimension{10, 10}) {
		t.Fatalf("instance = %+v, want solid at 10x10", first)
	}
	firstLayers := layersOf(t, first)
	if len(firstLayers) != 1 || firstLayers[0].Parent != w.Layer() {
		t.Fatal("background drawable should be attached to the element layer")
	}
	if firstLayers[0].Depth() != BackgroundDepth {
		t.Errorf("depth = %v, want %v", firstLayers[0].Depth(), BackgroundDepth)
	}

	// Unchanged size and template keep the instance.
	w.Invalidate()
	w.Validate()
	if w.BackgroundInstance() != first {
		t.Error("background should be kept when nothing changed")
	}

	w.SetSize(20, 5)
	w.Validate()
	second := w.BackgroundInstance()
	if second == first {
		t.Fatal("resize should replace the background instance")
	}
	if second.Size() != (Dimension{20, 5}) {
		t.Errorf("new size = %v, want {20 5}", second.Size())
	}
	if !firstLayers[0].IsDestroyed() {
		t.Error("old drawable should be destroyed")
	}
	if n := w.Layer().NumChildren(); n != 1 {
		t.Errorf("element layer children = %d, want 1", n)
	}
}

func TestBackgroundFollowsMode(t *testing.T) {
	normal := Solid(0xFF000000)
	selected := Composite(Solid(0xFF0000FF), Bordered(0, 0xFFFFFFFF, 1))
	sheet := NewStylesheetBuilder().
		Add("Widget", BackgroundStyle.Is(normal)).
		AddSelected("Widget", BackgroundStyle.Is(selected)).
		Create()

	g := NewGroup(nil)
	g.SetStylesheet(sheet)
	w := NewWidget(nil)
	w.SetConstraint(AtSize(0, 0, 30, 10))
	g.Add(w)
	g.SetSize(50, 50)
	g.Validate()

	if w.BackgroundInstance().Owner() != normal {
		t.Fatal("default mode should use the default background")
	}
	old := layersOf(t, w.BackgroundInstance())

	w.SetSelected(true)
	g.Validate()
	ci, ok := w.BackgroundInstance().(*compositeInstance)
	if !ok || ci.Owner() != selected {
		t.Fatalf("selected instance = %T, want the composite", w.BackgroundInstance())
	}
	if !old[0].IsDestroyed() {
		t.Error("default background should be destroyed on mode change")
	}
	if n := w.Layer().NumChildren(); n != 2 {
		t.Errorf("element layer children = %d, want 2 composite parts", n)
	}

	w.SetSelected(false)
	g.Validate()
	for _, p := range ci.Parts() {
		for _, l := range layersOf(t, p) {
			if !l.IsDestroyed() {
				t.Error("composite parts should be destroyed when replaced")
			}
		}
	}
}

func TestPreferredSizeIncludesInsets(t *testing.T) {
	g := NewGroup(nil)
	g.AddStyles(BackgroundStyle.Is(Blank().InsetTRBL(1, 2, 3, 4)))
	w := NewWidget(nil)
	w.SetConstraint(AtSize(0, 0, 30, 20))
	g.Add(w)

	if got := g.PreferredSize(0, 0); got != (Dimension{36, 24}) {
		t.Errorf("PreferredSize = %v, want {36 24}", got)
	}

	g.SetSize(100, 50)
	g.Validate()
	if got := g.contentRect(); got != (Rect{X: 4, Y: 1, Width: 94, Height: 46}) {
		t.Errorf("contentRect = %+v, want {4 1 94 46}", got)
	}
	if got := w.Location(); got != (Vec2{4, 1}) {
		t.Errorf("child location = %v, want {4 1}", got)
	}
	if got := w.Size(); got != (Dimension{30, 20}) {
		t.Errorf("child size = %v, want {30 20}", got)
	}
}

func TestPreferredSizeCached(t *testing.T) {
	g := NewGroup(nil)
	w := NewWidget(nil)
	w.SetConstraint(AtSize(5, 5, 10, 10))
	g.Add(w)
	if got := g.PreferredSize(0, 0); got != (Dimension{15, 15}) {
		t.Fatalf("PreferredSize = %v, want {15 15}", got)
	}
	w.SetConstraint(AtSize(5, 5, 20, 10))
	if got := g.PreferredSize(0, 0); got != (Dimension{25, 15}) {
		t.Errorf("after change = %v, want {25 15}", got)
	}
}

func TestElementHitTest(t *testing.T) {
	s := NewScene()
	g := NewGroup(nil)
	s.Root().Add(g.Layer())
	w := NewWidget(NewClickBehavior)
	w.SetConstraint(AtSize(10, 10, 20, 20))
	g.Add(w)
	g.SetSize(100, 100)
	g.Validate()

	if got := s.HitTest(15, 15); got != w.Layer() {
		t.Errorf("HitTest on widget = %v, want widget layer", got)
	}
	// Groups descend but do not absorb by default.
	if got := s.HitTest(50, 50); got != nil {
		t.Errorf("HitTest on empty group area = %v, want nil", got)
	}

	g.set(FlagHitAbsorb, true)
	if got := s.HitTest(50, 50); got != g.Layer() {
		t.Errorf("HitTest on absorbing group = %v, want group layer", got)
	}
	if got := s.HitTest(150, 50); got != nil {
		t.Errorf("HitTest outside group = %v, want nil", got)
	}

	// Absorbing widgets hide their own children.
	inner := NewImmediateLayer("inner", 5, 5, noopRenderer)
	inner.Interactive = true
	w.Layer().Add(inner)
	if got := s.HitTest(12, 12); got != w.Layer() {
		t.Errorf("HitTest over widget child = %v, want widget layer", got)
	}

	w.SetVisible(false)
	if got := s.HitTest(15, 15); got != g.Layer() {
		t.Errorf("HitTest over hidden widget = %v, want group layer", got)
	}
}

func TestElementDestroy(t *testing.T) {
	g := NewGroup(nil)
	w := NewWidget(nil)
	w.AddStyles(BackgroundStyle.Is(Solid(0xFFFFFFFF)))
	w.SetConstraint(AtSize(0, 0, 10, 10))
	g.Add(w)
	g.Validate()
	drawables := layersOf(t, w.BackgroundInstance())

	w.Destroy()
	if !w.IsDestroyed() || !w.Layer().IsDestroyed() {
		t.Error("Destroy should destroy the element layer")
	}
	if g.ChildCount() != 0 || w.Parent() != nil {
		t.Error("Destroy should detach from the parent")
	}
	if w.BackgroundInstance() != nil || !drawables[0].IsDestroyed() {
		t.Error("Destroy should destroy the background")
	}
	if g.Layer().NumChildren() != 0 {
		t.Errorf("group layer children = %d, want 0", g.Layer().NumChildren())
	}

	w.Destroy()
	w.Validate()
	if w.BackgroundInstance() != nil {
		t.Error("a destroyed element should not lay out")
	}
}

func TestDestroyBeforeLayout(t *testing.T) {
	w := NewWidget(nil)
	w.AddStyles(BackgroundStyle.Is(Solid(0xFFFFFFFF)))
	w.Destroy()
	if !w.Layer().IsDestroyed() {
		t.Error("layer should be destroyed")
	}
}

func TestGroupAddReparents(t *testing.T) {
	a, b := NewGroup(nil), NewGroup(nil)
	w := NewWidget(nil)
	a.Add(w)
	b.Add(w)
	if a.ChildCount() != 0 || b.ChildCount() != 1 {
		t.Errorf("child counts = %d/%d, want 0/1", a.ChildCount(), b.ChildCount())
	}
	if w.Parent() != b || w.Layer().Parent != b.Layer() {
		t.Error("child should belong to the new group")
	}
	if b.ChildAt(0) != Elem(w) {
		t.Error("ChildAt(0) should be the widget")
	}

	a.Remove(w)
	if w.Parent() != b {
		t.Error("Remove of a non-child should be a no-op")
	}
	b.Remove(w)
	if w.Parent() != nil || w.Layer().Parent != nil || w.IsDestroyed() {
		t.Error("Remove should detach without destroying")
	}
}

func TestGroupDestroyAll(t *testing.T) {
	g := NewGroup(nil, NewWidget(nil), NewWidget(nil), NewGroup(nil, NewWidget(nil)))
	kids := append([]Elem(nil), g.Children()...)
	g.DestroyAll()
	if g.ChildCount() != 0 {
		t.Errorf("ChildCount = %d, want 0", g.ChildCount())
	}
	for i, c := range kids {
		if !c.base().IsDestroyed() {
			t.Errorf("child %d not destroyed", i)
		}
	}
	if g.IsDestroyed() {
		t.Error("DestroyAll should keep the group itself")
	}
}

func TestGroupAddSkipsDestroyed(t *testing.T) {
	dead := NewWidget(nil)
	dead.Destroy()
	live := NewWidget(nil)
	g := NewGroup(nil, dead, live)
	if g.ChildCount() != 1 || g.ChildAt(0) != Elem(live) {
		t.Fatalf("children = %v, want only the live widget", g.Children())
	}
	if dead.Parent() != nil {
		t.Error("destroyed widget should not gain a parent")
	}
	if g.Layer().NumChildren() != 1 {
		t.Errorf("layer children = %d, want 1", g.Layer().NumChildren())
	}
}

func TestGroupAddDestroyedPanicsInDebug(t *testing.T) {
	withDebug(t)
	dead := NewWidget(nil)
	dead.Destroy()
	expectPanic(t, "Group.Add on destroyed layer", func() {
		NewGroup(nil).Add(dead)
	})
}

func TestGroupDestroyAllWithDestroyedChild(t *testing.T) {
	g := NewGroup(nil, NewWidget(nil))
	// A child destroyed without detaching, as a stale reference would leave it.
	dead := NewWidget(nil)
	dead.Destroy()
	g.children = append(g.children, dead)

	done := make(chan struct{})
	go func() {
		g.DestroyAll()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("DestroyAll did not return")
	}
	if g.ChildCount() != 0 {
		t.Errorf("ChildCount = %d, want 0", g.ChildCount())
	}
}

func TestAbsoluteLayoutSkipsHiddenInComputeSize(t *testing.T) {
	g := NewGroup(nil)
	a := NewWidget(nil)
	a.SetConstraint(AtSize(0, 0, 10, 10))
	b := NewWidget(nil)
	b.SetConstraint(AtSize(50, 50, 10, 10))
	g.Add(a, b)
	if got := g.PreferredSize(0, 0); got != (Dimension{60, 60}) {
		t.Errorf("PreferredSize = %v, want {60 60}", got)
	}
	b.SetVisible(false)
	if got := g.PreferredSize(0, 0); got != (Dimension{10, 10}) {
		t.Errorf("PreferredSize with hidden child = %v, want {10 10}", got)
	}
}

func TestAbsoluteLayoutPreferredSizeFallback(t *testing.T) {
	g := NewGroup(nil)
	l := NewLabel("hello")
	l.SetConstraint(At(3, 4))
	g.Add(l)
	g.SetSize(200, 100)
	g.Validate()
	want := l.PreferredSize(200, 100)
	if got := l.Size(); got != want {
		t.Errorf("label size = %v, want preferred %v", got, want)
	}
	if got := l.Location(); got != (Vec2{3, 4}) {
		t.Errorf("label location = %v, want {3 4}", got)
	}
}
