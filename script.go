package trellis

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// scriptStep is a single action of an input script.
type scriptStep struct {
	Action string  `yaml:"action"`
	Label  string  `yaml:"label,omitempty"`
	X      float64 `yaml:"x,omitempty"`
	Y      float64 `yaml:"y,omitempty"`
	FromX  float64 `yaml:"fromX,omitempty"`
	FromY  float64 `yaml:"fromY,omitempty"`
	ToX    float64 `yaml:"toX,omitempty"`
	ToY    float64 `yaml:"toY,omitempty"`
	Frames int     `yaml:"frames,omitempty"`
}

type scriptDoc struct {
	Steps []scriptStep `yaml:"steps"`
}

// InputScript sequences injected pointer events and screenshots across
// frames, for driving an interface without a user:
//
//	steps:
//	  - {action: click, x: 40, y: 30}
//	  - {action: wait, frames: 2}
//	  - {action: screenshot, label: after-click}
//
// Actions are press, move, release, click, drag, wait and screenshot.
type InputScript struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadInputScript parses a YAML (or JSON) input script.
func LoadInputScript(data []byte) (*InputScript, error) {
	var doc scriptDoc
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("trellis: parse input script: %w", err)
	}
	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("trellis: parse input script: no steps")
	}
	for i, st := range doc.Steps {
		switch st.Action {
		case "press", "move", "release", "click", "drag", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("trellis: parse input script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &InputScript{steps: doc.Steps}, nil
}

// SetInputScript attaches a script to the scene. It advances from
// Scene.Update, before input is processed. nil detaches.
func (s *Scene) SetInputScript(script *InputScript) {
	s.script = script
}

// Done reports whether every step has been executed.
func (r *InputScript) Done() bool {
	return r.done
}

// step advances the script by one frame.
func (r *InputScript) step(s *Scene) {
	if r.done {
		return
	}
	// Let queued injections drain before the next step.
	if len(s.injectQueue) > 0 {
		return
	}
	if r.waitCount > 0 {
		r.waitCount--
		return
	}
	if r.cursor >= len(r.steps) {
		r.done = true
		return
	}

	st := r.steps[r.cursor]
	r.cursor++

	switch st.Action {
	case "press":
		s.InjectPress(st.X, st.Y)
	case "move":
		s.InjectMove(st.X, st.Y)
	case "release":
		s.InjectRelease(st.X, st.Y)
	case "click":
		s.InjectClick(st.X, st.Y)
	case "drag":
		s.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "screenshot":
		s.Screenshot(st.Label)
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(s.injectQueue) == 0 {
		r.done = true
	}
}
