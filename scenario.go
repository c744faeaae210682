package roamterrain

import (
	"encoding/json"
	"fmt"
)

// scenarioStep is a single action in a scripted multi-frame scenario: a
// flat, tagged-union JSON step shape driving a deterministic sequence of
// engine calls.
type scenarioStep struct {
	Action string  `json:"action"`
	Label  string  `json:"label,omitempty"`
	X      float64 `json:"x,omitempty"`
	Y      float64 `json:"y,omitempty"`
	Z      float64 `json:"z,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scenarioScript is the top-level JSON document for LoadScenario.
type scenarioScript struct {
	Steps []scenarioStep `json:"steps"`
}

// Scenario sequences camera moves, Update/Draw calls, and checkpoint
// callbacks across many frames, for driving an Engine the same way a
// host application's frame loop would without needing one. Every step
// acts synchronously, in the order it appears in the script.
type Scenario struct {
	steps  []scenarioStep
	cursor int

	camX, camY, camZ float64

	// OnCheckpoint, if set, is invoked once for every "checkpoint" step,
	// with the step's label, letting a test assert engine state at named
	// points in the script without threading an index through by hand.
	OnCheckpoint func(label string, e *Engine)
}

// LoadScenario parses a JSON scenario document.
func LoadScenario(data []byte) (*Scenario, error) {
	var script scenarioScript
	if err := json.Unmarshal(data, &script); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scenario: no steps")
	}
	return &Scenario{steps: script.Steps}, nil
}

// Done reports whether every step has run.
func (s *Scenario) Done() bool {
	return s.cursor >= len(s.steps)
}

// CameraPosition returns the camera position the scenario has moved to
// so far via "move_camera" steps.
func (s *Scenario) CameraPosition() (x, y, z float64) {
	return s.camX, s.camY, s.camZ
}

// Step executes the next scenario step against e. "tessellate" calls
// Update, "draw" calls Draw, "move_camera" updates the position
// CameraPosition reports (a caller's DistToCamera closure should read
// from that, not re-derive its own state), and "checkpoint" invokes
// OnCheckpoint if set. Returns (false, nil) once the scenario is done.
func (s *Scenario) Step(e *Engine) (bool, error) {
	if s.Done() {
		return false, nil
	}
	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "move_camera":
		s.camX, s.camY, s.camZ = st.X, st.Y, st.Z
	case "tessellate":
		if _, err := e.Update(); err != nil {
			return false, err
		}
	case "draw":
		if err := e.Draw(); err != nil {
			return false, err
		}
	case "checkpoint":
		if s.OnCheckpoint != nil {
			s.OnCheckpoint(st.Label, e)
		}
	case "wait":
		// No-op placeholder step; scenarios use these to make a script's
		// frame count explicit without an accompanying engine call.
	}
	return true, nil
}

// Run drives the scenario to completion, calling Step repeatedly.
func (s *Scenario) Run(e *Engine) error {
	for {
		more, err := s.Step(e)
		if err != nil {
			return err
		}
		if !more {
			return nil
		}
	}
}
