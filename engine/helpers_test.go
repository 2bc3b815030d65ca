package engine

import (
	"io"
	"testing"

	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

const frame = 1.0 / 60.0

func newTestWorld(t *testing.T) *World {
	t.Helper()
	return NewWorld(donburi.NewWorld(),
		WithLogger(log.New(io.Discard)),
		WithBounds(2048, 2048),
	)
}

type hit struct {
	overlap float64
	other   *Collider
}

// recorder is a behaviour recording everything the world tells it.
type recorder struct {
	*Actor
	horizontal []hit
	vertical   []hit
	updates    int
	inputs     int
	onUpdate   func(dt float64)
	onVertical func(overlap float64, other *Collider)
	killed     bool
	destroyed  bool
}

func (p *recorder) OnHorizontalCollision(overlap float64, other *Collider) {
	p.horizontal = append(p.horizontal, hit{overlap, other})
}

func (p *recorder) OnVerticalCollision(overlap float64, other *Collider) {
	p.vertical = append(p.vertical, hit{overlap, other})
	if p.onVertical != nil {
		p.onVertical(overlap, other)
	}
}

func (p *recorder) OnUpdate(dt float64) {
	p.updates++
	if p.onUpdate != nil {
		p.onUpdate(dt)
	}
}

func (p *recorder) OnProcessInput(Input) {
	p.inputs++
}

func (p *recorder) OnDestroy() {
	p.destroyed = true
}

func newRecorder(w *World, x, y float64) *recorder {
	p := &recorder{}
	p.Actor = NewActor(w, p)
	p.SetPosition(gamemath.V(x, y))
	return p
}

// newBlock places a static, solid Blocks collider centred on (x, y).
func newBlock(w *World, x, y, width, height float64) (*recorder, *Collider) {
	p := newRecorder(w, x, y)
	c := NewCollider(p.Actor, width, height, LayerBlocks, AsStatic())
	return p, c
}
