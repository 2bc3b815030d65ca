package actors

import (
	"io"
	"testing"

	"github.com/automoto/spaceman/engine"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

const frame = 1.0 / 60.0

// floorY is the centre row of the test floor; its top edge is at 384.
const floorY = 400.0

func newTestSession(t *testing.T) *Session {
	t.Helper()
	w := engine.NewWorld(donburi.NewWorld(),
		engine.WithLogger(log.New(io.Discard)),
		engine.WithBounds(4096, 2048),
	)
	s := NewSession(w, 4096, 2048, 1)
	s.Logger = log.New(io.Discard)
	return s
}

// floor lays a row of plain blocks covering [fromX, toX] at floorY.
func floor(s *Session, fromX, toX float64) {
	for x := fromX; x <= toX; x += 32 {
		NewBlock(s, gamemath.V(x, floorY), 0, false)
	}
}

// standingY is the player centre that puts its feet on the floor.
const standingY = 384.0 - 32.0

func step(s *Session, in engine.Input) {
	s.World.ProcessInput(in)
	s.World.Update(frame)
}

func run(s *Session, in engine.Input, frames int) {
	for i := 0; i < frames; i++ {
		step(s, in)
	}
}

func countKind[T any](s *Session) int {
	n := 0
	for _, a := range s.World.Actors() {
		if _, ok := a.Behavior().(T); ok {
			n++
		}
	}
	return n
}

// dummyEnemy is an Enemy-layer trigger that counts kills.
type dummyEnemy struct {
	*engine.Actor
	kills int
}

func (d *dummyEnemy) OnKill() { d.kills++ }

func newDummyEnemy(s *Session, pos gamemath.Vec2) *dummyEnemy {
	d := &dummyEnemy{}
	d.Actor = engine.NewActor(s.World, d)
	d.SetPosition(pos)
	engine.NewCollider(d.Actor, 32, 32, engine.LayerEnemy, engine.AsTrigger(), engine.AsStatic())
	return d
}
