package trellis

import "testing"

// recordListener records the pointer stream it receives.
type recordListener struct {
	events []string
	last   PointerEvent
}

func (r *recordListener) OnPointerStart(e PointerEvent) {
	r.events = append(r.events, "start")
	r.last = e
}

func (r *recordListener) OnPointerDrag(e PointerEvent) {
	r.events = append(r.events, "drag")
	r.last = e
}

func (r *recordListener) OnPointerEnd(e PointerEvent) {
	r.events = append(r.events, "end")
	r.last = e
}

func (r *recordListener) OnPointerCancel(e PointerEvent) {
	r.events = append(r.events, "cancel")
	r.last = e
}

// interactiveBox adds an interactive immediate layer of size (w, h) at (x, y).
func interactiveBox(s *Scene, name string, x, y, w, h float64) *Layer {
	l := NewImmediateLayer(name, w, h, func(Surface) {})
	l.Interactive = true
	l.SetPosition(x, y)
	s.Root().Add(l)
	return l
}

func TestHitTestTopmost(t *testing.T) {
	s := NewScene()
	back := interactiveBox(s, "back", 0, 0, 100, 100)
	front := interactiveBox(s, "front", 50, 50, 100, 100)

	if got := s.HitTest(75, 75); got != front {
		t.Errorf("HitTest overlap = %v, want front", got)
	}
	if got := s.HitTest(10, 10); got != back {
		t.Errorf("HitTest back = %v, want back", got)
	}
	if got := s.HitTest(300, 300); got != nil {
		t.Errorf("HitTest miss = %v, want nil", got)
	}

	// Depth beats insertion order.
	back.SetDepth(1)
	if got := s.HitTest(75, 75); got != back {
		t.Errorf("HitTest after SetDepth = %v, want back", got)
	}
}

func TestHitTestSkipsInvisibleAndNonInteractive(t *testing.T) {
	s := NewScene()
	l := interactiveBox(s, "box", 0, 0, 10, 10)
	l.Visible = false
	if s.HitTest(5, 5) != nil {
		t.Error("invisible layer should not be hit")
	}
	l.Visible = true
	l.Interactive = false
	if s.HitTest(5, 5) != nil {
		t.Error("non-interactive layer should not be hit")
	}
}

func TestHitTesterOverrides(t *testing.T) {
	s := NewScene()
	g := NewGroupLayer("g")
	s.Root().Add(g)
	g.HitTester = func(l *Layer, x, y float64) *Layer { return l }
	if s.HitTest(999, 999) != g {
		t.Error("custom HitTester should decide")
	}
}

func TestPointerCaptureOnPress(t *testing.T) {
	s := NewScene()
	a := interactiveBox(s, "a", 0, 0, 50, 50)
	b := interactiveBox(s, "b", 100, 0, 50, 50)
	ra, rb := &recordListener{}, &recordListener{}
	a.AddListener(ra)
	b.AddListener(rb)
	updateWorldTransform(s.root, identityTransform, 1, false)

	s.processPointer(0, 10, 10, true, MouseButtonLeft, 0)
	s.processPointer(0, 120, 10, true, MouseButtonLeft, 0) // moves over b
	s.processPointer(0, 120, 10, false, MouseButtonLeft, 0)

	want := []string{"start", "drag", "end"}
	if len(ra.events) != len(want) {
		t.Fatalf("a events = %v, want %v", ra.events, want)
	}
	for i := range want {
		if ra.events[i] != want[i] {
			t.Errorf("a events[%d] = %s, want %s", i, ra.events[i], want[i])
		}
	}
	if len(rb.events) != 0 {
		t.Errorf("b events = %v, want none", rb.events)
	}
	if !ra.last.Dragging {
		t.Error("movement past the dead zone should mark Dragging")
	}
	if ra.last.LocalX != 120 || ra.last.GlobalX != 120 {
		t.Errorf("local/global X = %v/%v, want 120/120", ra.last.LocalX, ra.last.GlobalX)
	}
}

func TestLocalCoordinates(t *testing.T) {
	s := NewScene()
	l := interactiveBox(s, "l", 30, 40, 50, 50)
	r := &recordListener{}
	l.AddListener(r)
	updateWorldTransform(s.root, identityTransform, 1, false)

	s.processPointer(0, 35, 47, true, MouseButtonRight, ModShift)
	if r.last.LocalX != 5 || r.last.LocalY != 7 {
		t.Errorf("local = (%v, %v), want (5, 7)", r.last.LocalX, r.last.LocalY)
	}
	if r.last.Button != MouseButtonRight || r.last.Modifiers != ModShift {
		t.Errorf("button/mods = %v/%v", r.last.Button, r.last.Modifiers)
	}
	if r.last.Layer != l {
		t.Error("event Layer should be the target")
	}
}

func TestListenerDisconnect(t *testing.T) {
	s := NewScene()
	l := interactiveBox(s, "l", 0, 0, 10, 10)
	r := &recordListener{}
	conn := l.AddListener(r)
	if l.NumListeners() != 1 {
		t.Fatalf("NumListeners = %d, want 1", l.NumListeners())
	}
	conn.Disconnect()
	conn.Disconnect()
	if l.NumListeners() != 0 {
		t.Errorf("NumListeners = %d, want 0", l.NumListeners())
	}
	updateWorldTransform(s.root, identityTransform, 1, false)
	s.processPointer(0, 5, 5, true, MouseButtonLeft, 0)
	if len(r.events) != 0 {
		t.Errorf("disconnected listener got %v", r.events)
	}
}

func TestCancelPointers(t *testing.T) {
	s := NewScene()
	l := interactiveBox(s, "l", 0, 0, 10, 10)
	r := &recordListener{}
	l.AddListener(r)
	updateWorldTransform(s.root, identityTransform, 1, false)

	s.processPointer(0, 5, 5, true, MouseButtonLeft, 0)
	s.CancelPointers()
	s.processPointer(0, 5, 5, false, MouseButtonLeft, 0)

	if len(r.events) != 2 || r.events[1] != "cancel" {
		t.Errorf("events = %v, want [start cancel]", r.events)
	}
}

func TestDestroyedTargetEndsCapture(t *testing.T) {
	s := NewScene()
	l := interactiveBox(s, "l", 0, 0, 10, 10)
	r := &recordListener{}
	l.AddListener(r)
	updateWorldTransform(s.root, identityTransform, 1, false)

	s.processPointer(0, 5, 5, true, MouseButtonLeft, 0)
	l.Destroy()
	s.processPointer(0, 6, 6, true, MouseButtonLeft, 0)
	s.processPointer(0, 6, 6, false, MouseButtonLeft, 0)
	if len(r.events) != 1 {
		t.Errorf("events = %v, want [start]", r.events)
	}
}

func TestDragDeadZone(t *testing.T) {
	s := NewScene()
	s.SetDragDeadZone(10)
	l := interactiveBox(s, "l", 0, 0, 100, 100)
	r := &recordListener{}
	l.AddListener(r)
	updateWorldTransform(s.root, identityTransform, 1, false)

	s.processPointer(0, 10, 10, true, MouseButtonLeft, 0)
	s.processPointer(0, 15, 10, true, MouseButtonLeft, 0)
	if r.last.Dragging {
		t.Error("movement within the dead zone should not mark Dragging")
	}
	s.processPointer(0, 30, 10, true, MouseButtonLeft, 0)
	if !r.last.Dragging {
		t.Error("movement past the dead zone should mark Dragging")
	}
}

func TestListenerRemovedDuringDispatch(t *testing.T) {
	s := NewScene()
	l := interactiveBox(s, "l", 0, 0, 10, 10)
	second := &recordListener{}
	var conn Connection
	conn = l.AddListener(&funcListener{start: func(PointerEvent) { conn.Disconnect() }})
	l.AddListener(second)
	updateWorldTransform(s.root, identityTransform, 1, false)

	s.processPointer(0, 5, 5, true, MouseButtonLeft, 0)
	if len(second.events) != 1 {
		t.Errorf("second listener events = %v, want [start]", second.events)
	}
	if l.NumListeners() != 1 {
		t.Errorf("NumListeners = %d, want 1", l.NumListeners())
	}
}

// funcListener adapts a start callback to Listener.
type funcListener struct {
	start func(PointerEvent)
}

func (f *funcListener) OnPointerStart(e PointerEvent) { f.start(e) }
func (f *funcListener) OnPointerDrag(PointerEvent)    {}
func (f *funcListener) OnPointerEnd(PointerEvent)     {}
func (f *funcListener) OnPointerCancel(PointerEvent)  {}
