package engine

import cfg "github.com/automoto/spaceman/config"

// Input is the per-frame view of player intent consumed by ProcessInput.
type Input interface {
	Pressed(action cfg.ActionID) bool
	JustPressed(action cfg.ActionID) bool
}

// StaticInput is an Input backed by two fixed action sets.
type StaticInput struct {
	Current  [cfg.ActionCount]bool
	Previous [cfg.ActionCount]bool
}

// Hold returns a StaticInput with the given actions held since last frame.
func Hold(actions ...cfg.ActionID) *StaticInput {
	in := &StaticInput{}
	for _, a := range actions {
		in.Current[a] = true
		in.Previous[a] = true
	}
	return in
}

// Press returns a StaticInput with the given actions pressed this frame.
func Press(actions ...cfg.ActionID) *StaticInput {
	in := &StaticInput{}
	for _, a := range actions {
		in.Current[a] = true
	}
	return in
}

func (s *StaticInput) Pressed(action cfg.ActionID) bool {
	return s.Current[action]
}

func (s *StaticInput) JustPressed(action cfg.ActionID) bool {
	return s.Current[action] && !s.Previous[action]
}

// Advance rolls the current state into the previous one and replaces it.
func (s *StaticInput) Advance(next [cfg.ActionCount]bool) {
	s.Previous = s.Current
	s.Current = next
}

type noInput struct{}

func (noInput) Pressed(cfg.ActionID) bool     { return false }
func (noInput) JustPressed(cfg.ActionID) bool { return false }

// NoInput reports every action as released.
var NoInput Input = noInput{}
