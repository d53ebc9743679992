package pancam

import (
	"encoding/json"
	"fmt"
)

// scriptStep represents a single action in a gesture script.
type scriptStep struct {
	Action  string  `json:"action"`
	Pointer int     `json:"pointer,omitempty"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	FromX   float64 `json:"fromX,omitempty"`
	FromY   float64 `json:"fromY,omitempty"`
	ToX     float64 `json:"toX,omitempty"`
	ToY     float64 `json:"toY,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

// script is the top-level JSON structure of a gesture script.
type script struct {
	Steps []scriptStep `json:"steps"`
}

// ScriptRunner replays a recorded gesture script through an EbitenInput's
// injection queue, one step per drained frame. Attach with SetScript.
//
// Supported actions: "press", "move", "release" (pointer, x, y), "drag"
// (pointer, fromX, fromY, toX, toY, frames) and "wait" (frames).
type ScriptRunner struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON gesture script.
func LoadScript(jsonData []byte) (*ScriptRunner, error) {
	var s script
	if err := json.Unmarshal(jsonData, &s); err != nil {
		return nil, fmt.Errorf("pancam: parse script: %w", err)
	}
	if len(s.Steps) == 0 {
		return nil, fmt.Errorf("pancam: parse script: no steps")
	}
	for i, st := range s.Steps {
		switch st.Action {
		case "press", "move", "release", "drag", "wait":
		default:
			return nil, fmt.Errorf("pancam: parse script: step %d: unknown action %q", i, st.Action)
		}
		if st.Pointer < 0 || st.Pointer >= maxPointers {
			return nil, fmt.Errorf("pancam: parse script: step %d: pointer %d out of range", i, st.Pointer)
		}
	}
	return &ScriptRunner{steps: s.Steps}, nil
}

// SetScript attaches a runner. Its step method is called from Update before
// input is processed each frame. Passing nil detaches the current runner.
func (in *EbitenInput) SetScript(runner *ScriptRunner) {
	in.runner = runner
}

// Done reports whether all steps have been executed.
func (r *ScriptRunner) Done() bool {
	return r.done
}

// step advances the runner by one frame.
func (r *ScriptRunner) step(in *EbitenInput) {
	if r.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(in.injectQueue) > 0 {
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
		in.InjectPress(st.Pointer, st.X, st.Y)
	case "move":
		in.InjectMove(st.Pointer, st.X, st.Y)
	case "release":
		in.InjectRelease(st.Pointer, st.X, st.Y)
	case "drag":
		in.InjectDrag(st.Pointer, st.FromX, st.FromY, st.ToX, st.ToY, st.Frames)
	case "wait":
		if st.Frames > 0 {
			r.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if r.cursor >= len(r.steps) && r.waitCount == 0 && len(in.injectQueue) == 0 {
		r.done = true
	}
}
