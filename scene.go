package trellis

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const defaultCommandCap = 256

// Scene is the top-level object that owns the layer tree, input state, and
// render buffers. An Interface drives one Scene; it can also be used on its
// own for raw layer drawing.
type Scene struct {
	root  *Layer
	debug bool

	// ClearColor fills the screen before drawing when its alpha is non-zero.
	ClearColor Color

	// Render state
	commands []RenderCommand

	// Input state
	pointers     [maxPointers]pointerState
	dragDeadZone float64
	touchMap     [maxPointers]ebiten.TouchID
	touchUsed    [maxPointers]bool
	prevTouchIDs []ebiten.TouchID
	injectQueue  []injectedPointer
	script       *InputScript

	// ScreenshotDir receives captures queued with Screenshot. Empty means
	// "screenshots" under the working directory.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewScene creates a new scene with a pre-created root group layer.
func NewScene() *Scene {
	return &Scene{
		root:         NewGroupLayer("root"),
		commands:     make([]RenderCommand, 0, defaultCommandCap),
		dragDeadZone: defaultDragDeadZone,
	}
}

// Root returns the scene's root layer.
func (s *Scene) Root() *Layer {
	return s.root
}

// Update advances any input script, refreshes world transforms and processes
// pointer input.
func (s *Scene) Update() {
	if s.script != nil {
		s.script.step(s)
	}
	// Refresh world transforms first so hit testing and local event
	// coordinates use this frame's positions.
	updateWorldTransform(s.root, identityTransform, 1.0, false)
	s.processInput()
}

// Draw traverses the layer tree, emits render commands in paint order, and
// submits them to the given screen image.
func (s *Scene) Draw(screen *ebiten.Image) {
	if s.ClearColor.A > 0 {
		screen.Fill(s.ClearColor.toRGBA())
	}

	var stats debugStats
	var t0 time.Time
	if s.debug {
		t0 = time.Now()
	}

	s.buildCommands()

	if s.debug {
		stats.traverseTime = time.Since(t0)
		stats.commandCount = len(s.commands)
		t0 = time.Now()
	}

	s.submitCommands(screen)

	if s.debug {
		stats.submitTime = time.Since(t0)
		s.debugLog(stats)
	}

	s.flushScreenshots(screen)
}

// Commands returns the render commands produced by the most recent Draw.
// The returned slice MUST NOT be mutated.
func (s *Scene) Commands() []RenderCommand {
	return s.commands
}

// SetDebugMode enables or disables debug mode. When enabled, misuse of
// destroyed layers and background instances panics, and per-frame timing
// stats and warnings are logged.
func (s *Scene) SetDebugMode(enabled bool) {
	s.debug = enabled
	globalDebug = enabled
}

// globalDebug mirrors the most recently set Scene debug flag so that layer
// and background operations (which lack a Scene pointer) can check it
// cheaply. Only valid with a single Scene.
var globalDebug bool
