package view

import (
	"bytes"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/tanema/gween/ease"
)

// settleEpsilon is the remaining distance under which a "settle" step
// considers the animation finished.
const settleEpsilon = 1e-3

// scriptStep is a single action in a script.
type scriptStep struct {
	Action string  `toml:"action"`
	Label  string  `toml:"label"`
	X      float64 `toml:"x"`
	Y      float64 `toml:"y"`
	FromX  float64 `toml:"from_x"`
	FromY  float64 `toml:"from_y"`
	ToX    float64 `toml:"to_x"`
	ToY    float64 `toml:"to_y"`
	Frames int     `toml:"frames"`
}

type scriptFile struct {
	Steps []scriptStep `toml:"steps"`
}

// Script sequences injected input, toggles and screenshots across frames
// for unattended runs. Attach it with Viewer.SetScript.
//
// A script is TOML with one [[steps]] table per action:
//
//	[[steps]]
//	action = "click"     # x, y
//	[[steps]]
//	action = "settle"    # wait until every element reaches its target
//	[[steps]]
//	action = "screenshot"
//	label = "scattered"
//
// Other actions are "drag" (from_x, from_y, to_x, to_y, frames), "wait"
// (frames), "toggle" and "reset".
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	settling  bool
	done      bool
}

// LoadScript parses a TOML script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range f.Steps {
		switch st.Action {
		case "click", "drag", "wait", "toggle", "reset", "settle", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i+1, st.Action)
		}
	}
	return &Script{steps: f.Steps}, nil
}

// Done reports whether every step has run.
func (s *Script) Done() bool {
	return s.done
}

// SetScript attaches a script; its next step runs at the start of every
// Update. With exitWhenDone, Update ends the game once the script finishes.
func (v *Viewer) SetScript(s *Script, exitWhenDone bool) {
	v.script = s
	v.exitWhenScriptDone = exitWhenDone
}

// step advances the script by one frame.
func (s *Script) step(v *Viewer) {
	if s.done {
		return
	}
	// Wait for pending injections to drain before advancing.
	if len(v.injectQueue) > 0 {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.settling {
		if !v.ctrl.Settled(settleEpsilon) {
			return
		}
		s.settling = false
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "click":
		v.InjectClick(st.X, st.Y)
	case "drag":
		v.InjectDrag(st.FromX, st.FromY, st.ToX, st.ToY, max(st.Frames, 2))
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	case "toggle":
		v.ctrl.Toggle()
	case "reset":
		v.cam.ResetTo(v.cfg.ResetDuration, ease.OutCubic)
	case "settle":
		s.settling = !v.ctrl.Settled(settleEpsilon)
	case "screenshot":
		v.Screenshot(st.Label)
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && !s.settling && len(v.injectQueue) == 0 {
		s.done = true
	}
}
