package ebitenhost

import (
	"encoding/json"
	"fmt"

	"github.com/tanema/gween/ease"

	"github.com/phanxgames/aerolabel"
)

// scriptStep is a single action in a script.
type scriptStep struct {
	Action  string  `json:"action"`
	Label   string  `json:"label,omitempty"`
	On      bool    `json:"on,omitempty"`
	NM      float64 `json:"nm,omitempty"`
	CutOff  bool    `json:"cutOff,omitempty"`
	Zoom    float64 `json:"zoom,omitempty"`
	Seconds float32 `json:"seconds,omitempty"`
	Frames  int     `json:"frames,omitempty"`
}

type script struct {
	Steps []scriptStep `json:"steps"`
}

// Script sequences label settings, zoom changes and screenshots across
// frames for automated visual checks of the overlay.
type Script struct {
	steps     []scriptStep
	cursor    int
	waitCount int
	done      bool
}

// LoadScript parses a JSON script of the form
//
//	{"steps": [
//		{"action": "labels", "on": true},
//		{"action": "distance", "nm": 10, "cutOff": false},
//		{"action": "zoom", "zoom": 2, "seconds": 0.5},
//		{"action": "wait", "frames": 5},
//		{"action": "screenshot", "label": "zoomed"}
//	]}
func LoadScript(jsonData []byte) (*Script, error) {
	var sc script
	if err := json.Unmarshal(jsonData, &sc); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("parse script: no steps")
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case "labels", "distance", "zoom", "wait", "screenshot":
		default:
			return nil, fmt.Errorf("parse script: step %d: unknown action %q", i, st.Action)
		}
	}
	return &Script{steps: sc.Steps}, nil
}

// Done reports whether every step has been executed.
func (s *Script) Done() bool {
	return s.done
}

// Step advances the script by one frame. Call it from Game.Update.
func (s *Script) Step(h *Host, ctl *aerolabel.Controller) {
	if s.done {
		return
	}
	// Let zoom animations settle before advancing.
	if h.Camera.Zooming() {
		return
	}
	if s.waitCount > 0 {
		s.waitCount--
		return
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return
	}

	st := s.steps[s.cursor]
	s.cursor++

	switch st.Action {
	case "labels":
		ctl.EnableLabels(st.On)
	case "distance":
		ctl.SetLabelDistance(st.NM, st.CutOff)
	case "zoom":
		if st.Seconds <= 0 {
			h.Camera.Zoom = st.Zoom
			h.Camera.MarkDirty()
		} else {
			h.Camera.ZoomTo(st.Zoom, st.Seconds, ease.InOutQuad)
		}
	case "screenshot":
		h.Screenshot(st.Label)
	case "wait":
		if st.Frames > 0 {
			s.waitCount = st.Frames - 1 // this frame counts as one
		}
	}

	if s.cursor >= len(s.steps) && s.waitCount == 0 && !h.Camera.Zooming() {
		s.done = true
	}
}
