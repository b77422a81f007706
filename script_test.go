package trellis

import (
	"strings"
	"testing"
)

func TestLoadInputScriptErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"empty", "steps: []\n", "no steps"},
		{"unknown action", "steps:\n  - {action: hover}\n", "unknown action"},
		{"malformed", "steps: [", "parse input script"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadInputScript([]byte(tt.doc))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestLoadInputScriptJSON(t *testing.T) {
	script, err := LoadInputScript([]byte(`{"steps": [{"action": "click", "x": 1, "y": 2}]}`))
	if err != nil {
		t.Fatalf("LoadInputScript: %v", err)
	}
	if len(script.steps) != 1 || script.steps[0].X != 1 || script.steps[0].Y != 2 {
		t.Errorf("steps = %+v", script.steps)
	}
}

// scriptFrame mirrors Scene.Update without reading real input.
func scriptFrame(s *Scene) {
	s.script.step(s)
	updateWorldTransform(s.root, identityTransform, 1, false)
	s.processInjectedInput()
}

func TestInputScriptSequencing(t *testing.T) {
	doc := `
steps:
  - {action: click, x: 5, y: 5}
  - {action: wait, frames: 2}
  - {action: screenshot, label: after click}
`
	script, err := LoadInputScript([]byte(doc))
	if err != nil {
		t.Fatalf("LoadInputScript: %v", err)
	}
	s := NewScene()
	box := interactiveBox(s, "box", 0, 0, 10, 10)
	rec := &recordListener{}
	box.AddListener(rec)
	s.SetInputScript(script)

	// click queues two events; they drain before the wait starts.
	for i := 0; i < 4; i++ {
		scriptFrame(s)
		if script.Done() {
			t.Fatalf("script done after %d frames, want 5", i+1)
		}
	}
	if len(rec.events) != 2 || rec.events[0] != "start" || rec.events[1] != "end" {
		t.Errorf("events = %v, want [start end]", rec.events)
	}
	if s.PendingScreenshots() != 0 {
		t.Error("screenshot should wait for the wait step")
	}
	scriptFrame(s)
	if !script.Done() {
		t.Error("script should be done after the screenshot step")
	}
	if s.PendingScreenshots() != 1 || s.screenshotQueue[0] != "after click" {
		t.Errorf("screenshots = %v, want [after click]", s.screenshotQueue)
	}
}

func TestInputScriptDrag(t *testing.T) {
	script, err := LoadInputScript([]byte("steps:\n  - {action: drag, fromX: 1, fromY: 1, toX: 30, toY: 1, frames: 4}\n"))
	if err != nil {
		t.Fatal(err)
	}
	s := NewScene()
	box := interactiveBox(s, "box", 0, 0, 10, 10)
	rec := &recordListener{}
	box.AddListener(rec)
	s.SetInputScript(script)
	for i := 0; i < 4; i++ {
		scriptFrame(s)
	}
	want := []string{"start", "drag", "drag", "end"}
	if strings.Join(rec.events, ",") != strings.Join(want, ",") {
		t.Errorf("events = %v, want %v", rec.events, want)
	}
	if !rec.last.Dragging || rec.last.GlobalX != 30 {
		t.Errorf("last event = %+v, want a drag ending at x=30", rec.last)
	}
	scriptFrame(s)
	if !script.Done() {
		t.Error("script should finish once the drag drained")
	}
}
