package trellis

// Connection is returned by every registration in trellis (signal slots and
// layer listeners). The zero value is a valid no-op connection.
type Connection struct {
	disconnect func()
}

// Disconnect unregisters the callback so it no longer fires. Calling it more
// than once is a no-op.
func (c *Connection) Disconnect() {
	if c.disconnect == nil {
		return
	}
	fn := c.disconnect
	c.disconnect = nil
	fn()
}

// Connected reports whether the connection still has a registration to remove.
func (c *Connection) Connected() bool {
	return c.disconnect != nil
}

type slot[T any] struct {
	id uint32
	fn func(T)
}

// Signal is a typed event source. Widgets expose their interactions (clicks,
// toggles) as Signals.
type Signal[T any] struct {
	slots  []slot[T]
	nextID uint32
}

// Connect registers fn to be called on every Emit.
func (s *Signal[T]) Connect(fn func(T)) Connection {
	s.nextID++
	id := s.nextID
	s.slots = append(s.slots, slot[T]{id: id, fn: fn})
	return Connection{disconnect: func() { s.remove(id) }}
}

// Emit calls every connected slot in connection order. Slots connected or
// disconnected during Emit take effect on the next Emit.
func (s *Signal[T]) Emit(v T) {
	if len(s.slots) == 0 {
		return
	}
	snapshot := make([]slot[T], len(s.slots))
	copy(snapshot, s.slots)
	for _, sl := range snapshot {
		sl.fn(v)
	}
}

// NumSlots returns the number of connected slots.
func (s *Signal[T]) NumSlots() int {
	return len(s.slots)
}

// remove drops the slot with the given id.
// The entry is removed from the slice to avoid nil iteration waste.
func (s *Signal[T]) remove(id uint32) {
	for i := range s.slots {
		if s.slots[i].id == id {
			copy(s.slots[i:], s.slots[i+1:])
			s.slots[len(s.slots)-1] = slot[T]{}
			s.slots = s.slots[:len(s.slots)-1]
			return
		}
	}
}
