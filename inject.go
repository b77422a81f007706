package trellis

// injectedPointer is one queued step of scripted left-button input, in
// screen space.
type injectedPointer struct {
	x, y float64
	down bool
}

func (s *Scene) queuePointer(x, y float64, down bool) {
	s.injectQueue = append(s.injectQueue, injectedPointer{x: x, y: y, down: down})
}

// InjectPress queues a left-button press at (x, y). Each queued step is
// played back on its own frame, ahead of real input.
func (s *Scene) InjectPress(x, y float64) {
	s.queuePointer(x, y, true)
}

// InjectMove queues a pointer move to (x, y) with the button still held.
// Between a press and a release it becomes a drag step.
func (s *Scene) InjectMove(x, y float64) {
	s.queuePointer(x, y, true)
}

// InjectRelease queues a left-button release at (x, y).
func (s *Scene) InjectRelease(x, y float64) {
	s.queuePointer(x, y, false)
}

// InjectClick queues a press and a release at the same point.
func (s *Scene) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a press at the start point, evenly spaced moves and a
// release at the end point, filling frames frames in total. frames is
// raised to 2 when smaller.
func (s *Scene) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	frames = max(frames, 2)
	s.InjectPress(fromX, fromY)
	for i := 1; i < frames-1; i++ {
		f := float64(i) / float64(frames-1)
		s.InjectMove(fromX+(toX-fromX)*f, fromY+(toY-fromY)*f)
	}
	s.InjectRelease(toX, toY)
}

// PendingInjected returns the number of queued steps not yet played.
func (s *Scene) PendingInjected() int {
	return len(s.injectQueue)
}

// processInjectedInput plays the oldest queued step as pointer 0. It reports
// whether a step was played, in which case real input waits a frame.
func (s *Scene) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	next := s.injectQueue[0]
	s.injectQueue = append(s.injectQueue[:0], s.injectQueue[1:]...)
	s.processPointer(0, next.x, next.y, next.down, MouseButtonLeft, 0)
	return true
}
