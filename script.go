package scrub

import (
	"encoding/json"
	"fmt"
)

// scrollStep represents a single action in a scroll script.
type scrollStep struct {
	Action string  `json:"action"`
	To     float64 `json:"to,omitempty"`
	Frames int     `json:"frames,omitempty"`
}

// scrollScriptFile is the top-level JSON structure for a scroll script.
type scrollScriptFile struct {
	Steps []scrollStep `json:"steps"`
}

// ScrollScript sequences scripted scroll offsets across frames, replacing
// user input for demo recordings and repeatable visual checks. Actions:
//
//	{"action": "scroll", "to": 1200, "frames": 90}  ramp to an offset
//	{"action": "jump",   "to": 0}                   set the offset at once
//	{"action": "wait",   "frames": 30}              hold the current offset
type ScrollScript struct {
	steps   []scrollStep
	cursor  int
	frame   int
	from    float64
	started bool
	done    bool
}

// LoadScrollScript parses a JSON scroll script.
func LoadScrollScript(jsonData []byte) (*ScrollScript, error) {
	var script scrollScriptFile
	if err := json.Unmarshal(jsonData, &script); err != nil {
		return nil, fmt.Errorf("parse scroll script: %w", err)
	}
	if len(script.Steps) == 0 {
		return nil, fmt.Errorf("parse scroll script: no steps")
	}
	return &ScrollScript{steps: script.Steps}, nil
}

// Done reports whether all steps have been executed.
func (s *ScrollScript) Done() bool {
	return s.done
}

// step advances the script by one frame and returns the scroll offset for
// this frame. Called from the game loop.
func (s *ScrollScript) step(current float64) float64 {
	if s.done {
		return current
	}
	if s.cursor >= len(s.steps) {
		s.done = true
		return current
	}

	st := s.steps[s.cursor]
	switch st.Action {
	case "wait":
		s.frame++
		if s.frame >= st.Frames {
			s.advance()
		}
		return current
	case "jump":
		s.advance()
		return st.To
	case "scroll":
		if !s.started {
			s.from = current
			s.started = true
		}
		frames := st.Frames
		if frames < 2 {
			frames = 2
		}
		s.frame++
		if s.frame >= frames {
			s.advance()
			return st.To
		}
		t := float64(s.frame) / float64(frames)
		return s.from + (st.To-s.from)*t
	default:
		// Unknown actions are skipped so newer scripts degrade gracefully.
		s.advance()
		return current
	}
}

func (s *ScrollScript) advance() {
	s.cursor++
	s.frame = 0
	s.started = false
	if s.cursor >= len(s.steps) {
		s.done = true
	}
}
