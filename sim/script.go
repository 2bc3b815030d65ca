// Package sim runs a level headless at a fixed tick with scripted input.
package sim

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/engine"
)

// Step holds a set of actions down for frames [From, To).
type Step struct {
	From, To int
	Actions  []cfg.ActionID
}

// Script is a timeline of held actions. Overlapping steps combine.
type Script struct {
	Steps []Step
}

// ParseScript reads one step per line:
//
//	# run right for two seconds, jumping on frame 60
//	0-120 right run
//	60 jump
//
// A single frame number covers just that frame. Blank lines and lines
// starting with # are ignored.
func ParseScript(r io.Reader) (*Script, error) {
	s := &Script{}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		step, err := parseStep(line)
		if err != nil {
			return nil, fmt.Errorf("script line %d: %w", lineNo, err)
		}
		s.Steps = append(s.Steps, step)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return s, nil
}

func parseStep(line string) (Step, error) {
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return Step{}, fmt.Errorf("want a frame range and at least one action, got %q", line)
	}

	from, to, err := parseRange(fields[0])
	if err != nil {
		return Step{}, err
	}

	step := Step{From: from, To: to}
	for _, name := range fields[1:] {
		a, ok := cfg.ParseAction(name)
		if !ok || a == cfg.ActionNone {
			return Step{}, fmt.Errorf("unknown action %q", name)
		}
		step.Actions = append(step.Actions, a)
	}
	return step, nil
}

func parseRange(s string) (int, int, error) {
	lo, hi, isRange := strings.Cut(s, "-")
	from, err := strconv.Atoi(lo)
	if err != nil || from < 0 {
		return 0, 0, fmt.Errorf("bad frame %q", lo)
	}
	if !isRange {
		return from, from + 1, nil
	}
	to, err := strconv.Atoi(hi)
	if err != nil || to <= from {
		return 0, 0, fmt.Errorf("bad frame range %q", s)
	}
	return from, to, nil
}

// Held returns the actions down on frame.
func (s *Script) Held(frame int) [cfg.ActionCount]bool {
	var held [cfg.ActionCount]bool
	if s == nil {
		return held
	}
	for _, step := range s.Steps {
		if frame < step.From || frame >= step.To {
			continue
		}
		for _, a := range step.Actions {
			held[a] = true
		}
	}
	return held
}

// Len is the first frame after the last step.
func (s *Script) Len() int {
	if s == nil {
		return 0
	}
	n := 0
	for _, step := range s.Steps {
		n = max(n, step.To)
	}
	return n
}

// Input plays a Script back as an engine.Input, one frame per Advance.
type Input struct {
	engine.StaticInput
	script *Script
	frame  int
}

func NewInput(script *Script) *Input {
	return &Input{script: script}
}

// Advance moves to the next frame of the script.
func (in *Input) Advance() {
	in.StaticInput.Advance(in.script.Held(in.frame))
	in.frame++
}
