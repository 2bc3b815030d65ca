package actors

import (
	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/engine"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/automoto/spaceman/tags"
)

// Goomba walks back and forth and kills the player on side contact.
type Goomba struct {
	*engine.Actor
	session  *Session
	body     *engine.RigidBody
	collider *engine.Collider

	speed      float64
	dying      bool
	stomped    bool
	dyingTimer float64
}

func NewGoomba(s *Session, pos gamemath.Vec2) *Goomba {
	g := &Goomba{
		session:    s,
		speed:      cfg.Enemy.ForwardSpeed,
		dyingTimer: cfg.Enemy.DeathTime,
	}
	g.Actor = engine.NewActor(s.World, g, tags.Goomba)
	g.SetPosition(pos)

	tile := cfg.Physics.TileSize
	g.body = engine.NewRigidBody(g.Actor)
	g.collider = engine.NewCollider(g.Actor, tile, tile, engine.LayerEnemy)
	return g
}

func (g *Goomba) Speed() float64 { return g.speed }
func (g *Goomba) Dying() bool    { return g.dying }
func (g *Goomba) Stomped() bool  { return g.stomped }

// Stomp kills the goomba flattened in place.
func (g *Goomba) Stomp() {
	if g.dying {
		return
	}
	g.stomped = true
	g.Kill()
}

// OnKill disables the collider. A stomped goomba stays put until its timer
// runs out; otherwise it is knocked off the level upside down.
func (g *Goomba) OnKill() {
	if g.dying {
		return
	}
	g.dying = true
	g.collider.SetEnabled(false)

	if g.stomped {
		g.body.SetEnabled(false)
		return
	}
	g.body.SetVelocity(gamemath.V(g.session.coinFlip()*cfg.Enemy.KnockOffSpeedX, cfg.Enemy.KnockOffSpeedY))
	scale := g.Scale()
	scale.Y = -1
	g.SetScale(scale)
}

func (g *Goomba) OnUpdate(dt float64) {
	if g.dying {
		if g.stomped {
			g.dyingTimer -= dt
			if g.dyingTimer <= 0 {
				g.Destroy()
			}
		}
	} else {
		g.body.SetVelocityX(g.speed)
	}

	if g.Position().Y > g.session.Bottom() {
		g.Destroy()
	}
}

func (g *Goomba) turn() {
	g.speed = -g.speed
	scale := g.Scale()
	scale.X = -scale.X
	g.SetScale(scale)
}

func (g *Goomba) OnHorizontalCollision(overlap float64, other *engine.Collider) {
	switch other.Layer() {
	case engine.LayerBlocks, engine.LayerEnemy, engine.LayerPlayer:
		g.turn()
	case engine.LayerCollectable:
		if _, ok := other.Owner().Behavior().(*Mushroom); ok {
			g.turn()
		}
	}

	if other.Layer() == engine.LayerPlayer {
		g.session.setKiller("goomba")
		other.Owner().Kill()
	}
}

func (g *Goomba) OnVerticalCollision(float64, *engine.Collider) {}
