package actors

import (
	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/engine"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/automoto/spaceman/tags"
)

// Hazard kills the player on contact. It never moves.
type Hazard struct {
	*engine.Actor
}

func NewHazard(s *Session, pos gamemath.Vec2, width, height float64) *Hazard {
	h := &Hazard{}
	h.Actor = engine.NewActor(s.World, h, tags.Hazard)
	h.SetPosition(pos)
	engine.NewCollider(h.Actor, width, height, engine.LayerHazard, engine.AsTrigger(), engine.AsStatic())
	return h
}

// Stone is scenery a bullet can break.
type Stone struct {
	*engine.Actor
}

func NewStone(s *Session, pos gamemath.Vec2) *Stone {
	st := &Stone{}
	st.Actor = engine.NewActor(s.World, st, tags.Stone)
	st.SetPosition(pos)
	tile := cfg.Physics.TileSize
	engine.NewCollider(st.Actor, tile, tile, engine.LayerDestructible, engine.AsTrigger())
	return st
}

func (st *Stone) OnKill() {
	st.Destroy()
}

// EndPhaseTrigger finishes the level when the player walks into it.
type EndPhaseTrigger struct {
	*engine.Actor
	session *Session
}

func NewEndPhaseTrigger(s *Session, pos gamemath.Vec2, width, height float64) *EndPhaseTrigger {
	t := &EndPhaseTrigger{session: s}
	t.Actor = engine.NewActor(s.World, t, tags.EndPhase)
	t.SetPosition(pos)
	c := engine.NewCollider(t.Actor, width, height, engine.LayerBlocks, engine.AsTrigger(), engine.AsStatic())
	c.SetCollisionCallback(t.touched)
	return t
}

func (t *EndPhaseTrigger) touched(other *engine.Collider) {
	if other.Layer() != engine.LayerPlayer || t.State() == engine.StateDestroy {
		return
	}
	t.session.CompleteLevel()
	if p := t.session.Player(); p != nil {
		p.SetState(engine.StatePaused)
	}
	t.Destroy()
}

// Spawner drops a goomba at its position once the player comes within
// range, then removes itself.
type Spawner struct {
	*engine.Actor
	session  *Session
	distance float64
}

func NewSpawner(s *Session, pos gamemath.Vec2) *Spawner {
	sp := &Spawner{session: s, distance: cfg.Enemy.SpawnDistance}
	sp.Actor = engine.NewActor(s.World, sp, tags.Spawner)
	sp.SetPosition(pos)
	return sp
}

func (sp *Spawner) OnUpdate(float64) {
	p := sp.session.Player()
	if p == nil {
		return
	}
	dx := p.Position().X - sp.Position().X
	if dx < 0 {
		dx = -dx
	}
	if dx < sp.distance {
		NewGoomba(sp.session, sp.Position())
		sp.Destroy()
	}
}
