package actors

import (
	"math"

	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/engine"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/automoto/spaceman/tags"
)

// PlayerBullet flies straight, breaking the first enemy or stone it touches
// and stopping at walls.
type PlayerBullet struct {
	*engine.Actor
	session  *Session
	lifeTime float64
}

func NewPlayerBullet(s *Session, pos, dir gamemath.Vec2) *PlayerBullet {
	b := &PlayerBullet{session: s, lifeTime: cfg.Item.BulletLifeTime}
	b.Actor = engine.NewActor(s.World, b, tags.PlayerBullet)
	b.SetPosition(pos)
	b.SetRotation(gamemath.Angle(dir))

	body := engine.NewRigidBody(b.Actor, engine.WithMass(cfg.Item.BulletMass), engine.WithGravity(false))
	body.SetVelocity(gamemath.Scale(dir, cfg.Item.BulletSpeed))
	engine.NewCollider(b.Actor, cfg.Item.BulletWidth, cfg.Item.BulletHeight, engine.LayerPlayerProjectile, engine.AsTrigger())
	return b
}

func (b *PlayerBullet) Explode() {
	b.Destroy()
}

func (b *PlayerBullet) OnUpdate(dt float64) {
	b.lifeTime -= dt
	if b.lifeTime <= 0 || b.session.OutOfBounds(b.Position().X) {
		b.Explode()
	}
}

func (b *PlayerBullet) hit(other *engine.Collider) {
	switch other.Layer() {
	case engine.LayerEnemy, engine.LayerDestructible:
		other.Owner().Kill()
		b.Explode()
	case engine.LayerBlocks:
		b.Explode()
	}
}

func (b *PlayerBullet) OnHorizontalCollision(_ float64, other *engine.Collider) {
	b.hit(other)
}

func (b *PlayerBullet) OnVerticalCollision(_ float64, other *engine.Collider) {
	b.hit(other)
}

// GasCloud drifts away from the player and keeps every enemy it overlaps
// exposed to gas.
type GasCloud struct {
	*engine.Actor
	lifeTime float64
}

func NewGasCloud(s *Session, pos, dir gamemath.Vec2) *GasCloud {
	g := &GasCloud{lifeTime: cfg.Gas.LifeTime}
	g.Actor = engine.NewActor(s.World, g, tags.GasCloud)
	g.SetPosition(pos)
	g.SetRotation(s.uniform(0, 2*math.Pi))

	body := engine.NewRigidBody(g.Actor, engine.WithGravity(false))
	body.SetVelocity(gamemath.Scale(dir, cfg.Gas.Speed))
	engine.NewCollider(g.Actor, cfg.Gas.Size, cfg.Gas.Size, engine.LayerPlayerProjectile, engine.AsTrigger())
	return g
}

// Opacity fades the cloud out over its last half second.
func (g *GasCloud) Opacity() float64 {
	const fade = 0.5
	if g.lifeTime >= fade {
		return 1
	}
	return g.lifeTime / fade
}

func (g *GasCloud) OnUpdate(dt float64) {
	g.lifeTime -= dt
	if g.lifeTime <= 0 {
		g.Destroy()
		return
	}
	g.SetRotation(g.Rotation() + dt)
}

func (g *GasCloud) touch(other *engine.Collider) {
	switch other.Layer() {
	case engine.LayerEnemy:
		other.Owner().ApplyGasExposure()
	case engine.LayerBlocks:
		g.Destroy()
	}
}

func (g *GasCloud) OnHorizontalCollision(_ float64, other *engine.Collider) {
	g.touch(other)
}

func (g *GasCloud) OnVerticalCollision(_ float64, other *engine.Collider) {
	g.touch(other)
}
