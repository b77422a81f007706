package trellis

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Constants ---

const (
	maxPointers         = 10  // pointer 0 = mouse, 1-9 = touch
	defaultDragDeadZone = 4.0 // pixels
)

// PointerEvent carries pointer data to a layer's listeners.
type PointerEvent struct {
	Layer     *Layer // layer the interaction started on
	GlobalX   float64
	GlobalY   float64
	LocalX    float64
	LocalY    float64
	Button    MouseButton
	PointerID int
	Modifiers KeyModifiers
	Dragging  bool // movement has exceeded the drag dead zone
}

// Listener receives the pointer stream of the layer it is registered on.
// The layer that receives OnPointerStart captures the pointer: every
// following drag and the terminating end or cancel go to the same layer.
type Listener interface {
	OnPointerStart(e PointerEvent)
	OnPointerDrag(e PointerEvent)
	OnPointerEnd(e PointerEvent)
	OnPointerCancel(e PointerEvent)
}

type listenerEntry struct {
	id uint32
	l  Listener
}

// AddListener registers l on this layer's pointer stream. The returned
// Connection removes it; destroying the layer drops all listeners as well.
func (l *Layer) AddListener(lis Listener) Connection {
	if globalDebug {
		debugCheckDestroyed(l, "AddListener")
	}
	l.nextListenerID++
	id := l.nextListenerID
	l.listeners = append(l.listeners, listenerEntry{id: id, l: lis})
	return Connection{disconnect: func() { l.removeListener(id) }}
}

// NumListeners returns the number of registered pointer listeners.
func (l *Layer) NumListeners() int {
	return len(l.listeners)
}

func (l *Layer) removeListener(id uint32) {
	for i := range l.listeners {
		if l.listeners[i].id == id {
			copy(l.listeners[i:], l.listeners[i+1:])
			l.listeners[len(l.listeners)-1] = listenerEntry{}
			l.listeners = l.listeners[:len(l.listeners)-1]
			return
		}
	}
}

// --- Per-pointer state ---

type pointerState struct {
	down     bool
	startX   float64
	startY   float64
	lastX    float64
	lastY    float64
	target   *Layer // captured at press time
	dragging bool
	button   MouseButton // button captured at press time
}

// --- Hit testing ---

// hitTest returns the topmost layer under the local point (x, y), honoring
// the layer's HitTester when set.
func (l *Layer) hitTest(x, y float64) *Layer {
	if !l.Visible || l.destroyed {
		return nil
	}
	if l.HitTester != nil {
		return l.HitTester(l, x, y)
	}
	return l.HitTestDefault(x, y)
}

// HitTestDefault performs the stock hit test: group layers test their
// children topmost first, other layers hit when Interactive and the point is
// within their size.
func (l *Layer) HitTestDefault(x, y float64) *Layer {
	if l.Type == LayerGroup {
		children := l.PaintOrder()
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			cx, cy := c.parentToLocal(x, y)
			if hit := c.hitTest(cx, cy); hit != nil {
				return hit
			}
		}
		return nil
	}
	if !l.Interactive {
		return nil
	}
	w, h := l.Size()
	if w == 0 && h == 0 {
		return nil
	}
	if x >= 0 && x <= w && y >= 0 && y <= h {
		return l
	}
	return nil
}

// HitTest finds the topmost layer at (worldX, worldY). Returns nil if nothing
// is hit.
func (s *Scene) HitTest(worldX, worldY float64) *Layer {
	x, y := s.root.parentToLocal(worldX, worldY)
	return s.root.hitTest(x, y)
}

// --- Input processing ---

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// processInput is called from Scene.Update() to handle all mouse and touch
// input. Injected events take priority; while any are queued, real input is
// not read.
func (s *Scene) processInput() {
	if s.processInjectedInput() {
		return
	}
	mods := readModifiers()
	s.processMousePointer(mods)
	s.processTouchPointers(mods)
}

// processMousePointer handles mouse input (pointer 0).
func (s *Scene) processMousePointer(mods KeyModifiers) {
	mx, my := ebiten.CursorPosition()

	// If the pointer is already down, the stored button wins so it cannot
	// change mid-interaction.
	var pressed bool
	var button MouseButton
	left := ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
	right := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)
	middle := ebiten.IsMouseButtonPressed(ebiten.MouseButtonMiddle)

	if left || right || middle {
		pressed = true
		if left {
			button = MouseButtonLeft
		} else if right {
			button = MouseButtonRight
		} else {
			button = MouseButtonMiddle
		}
	}

	s.processPointer(0, float64(mx), float64(my), pressed, button, mods)
}

// processTouchPointers handles touch input (pointers 1-9).
func (s *Scene) processTouchPointers(mods KeyModifiers) {
	touchIDs := ebiten.AppendTouchIDs(s.prevTouchIDs[:0])
	s.prevTouchIDs = touchIDs

	var activeSlots [maxPointers]bool
	for _, tid := range touchIDs {
		slot := s.touchSlot(tid)
		if slot < 0 {
			continue
		}
		activeSlots[slot] = true

		tx, ty := ebiten.TouchPosition(tid)
		s.processPointer(slot, float64(tx), float64(ty), true, MouseButtonLeft, mods)
	}

	// Release any touch slots that are no longer active.
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && !activeSlots[i] {
			ps := &s.pointers[i]
			if ps.down {
				s.processPointer(i, ps.lastX, ps.lastY, false, MouseButtonLeft, mods)
			}
			s.touchUsed[i] = false
			s.touchMap[i] = 0
		}
	}
}

// touchSlot maps an ebiten.TouchID to a pointer slot (1-9).
// Returns the existing slot or allocates a new one. Returns -1 if full.
func (s *Scene) touchSlot(tid ebiten.TouchID) int {
	for i := 1; i < maxPointers; i++ {
		if s.touchUsed[i] && s.touchMap[i] == tid {
			return i
		}
	}
	for i := 1; i < maxPointers; i++ {
		if !s.touchUsed[i] {
			s.touchUsed[i] = true
			s.touchMap[i] = tid
			return i
		}
	}
	return -1
}

// processPointer runs the pointer state machine for a single pointer.
func (s *Scene) processPointer(pointerID int, wx, wy float64, pressed bool, button MouseButton, mods KeyModifiers) {
	ps := &s.pointers[pointerID]

	// A captured layer destroyed mid-interaction silently ends the capture.
	if ps.target != nil && ps.target.destroyed {
		ps.target = nil
	}

	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.button = button
		ps.startX, ps.startY = wx, wy
		ps.lastX, ps.lastY = wx, wy
		ps.dragging = false
		ps.target = s.HitTest(wx, wy)
		if ps.target != nil {
			s.dispatch(ps.target, eventStart, pointerID, wx, wy, ps, mods)
		}
	case !pressed && ps.down:
		if ps.target != nil {
			s.dispatch(ps.target, eventEnd, pointerID, wx, wy, ps, mods)
		}
		ps.down = false
		ps.target = nil
		ps.dragging = false
		ps.lastX, ps.lastY = wx, wy
	case pressed && ps.down:
		if wx != ps.lastX || wy != ps.lastY {
			if !ps.dragging {
				dx := wx - ps.startX
				dy := wy - ps.startY
				if math.Sqrt(dx*dx+dy*dy) > s.dragDeadZone {
					ps.dragging = true
				}
			}
			if ps.target != nil {
				s.dispatch(ps.target, eventDrag, pointerID, wx, wy, ps, mods)
			}
		}
		ps.lastX, ps.lastY = wx, wy
	default:
		ps.lastX, ps.lastY = wx, wy
	}
}

// CancelPointers sends OnPointerCancel to every layer holding a pointer
// capture and releases the captures.
func (s *Scene) CancelPointers() {
	for i := range s.pointers {
		ps := &s.pointers[i]
		if ps.target != nil && !ps.target.destroyed {
			s.dispatch(ps.target, eventCancel, i, ps.lastX, ps.lastY, ps, 0)
		}
		ps.target = nil
		ps.down = false
		ps.dragging = false
	}
}

// SetDragDeadZone sets the minimum movement in pixels before a drag starts.
func (s *Scene) SetDragDeadZone(pixels float64) {
	s.dragDeadZone = pixels
}

// --- Event dispatch ---

type pointerEventKind uint8

const (
	eventStart pointerEventKind = iota
	eventDrag
	eventEnd
	eventCancel
)

func (s *Scene) dispatch(target *Layer, kind pointerEventKind, pointerID int, wx, wy float64, ps *pointerState, mods KeyModifiers) {
	if len(target.listeners) == 0 {
		return
	}
	lx, ly := target.WorldToLocal(wx, wy)
	e := PointerEvent{
		Layer: target, GlobalX: wx, GlobalY: wy, LocalX: lx, LocalY: ly,
		Button: ps.button, PointerID: pointerID, Modifiers: mods, Dragging: ps.dragging,
	}
	// Listeners may disconnect themselves (or destroy the layer) while
	// handling the event.
	snapshot := make([]listenerEntry, len(target.listeners))
	copy(snapshot, target.listeners)
	for _, le := range snapshot {
		switch kind {
		case eventStart:
			le.l.OnPointerStart(e)
		case eventDrag:
			le.l.OnPointerDrag(e)
		case eventEnd:
			le.l.OnPointerEnd(e)
		case eventCancel:
			le.l.OnPointerCancel(e)
		}
	}
}
