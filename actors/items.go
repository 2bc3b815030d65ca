package actors

import (
	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/engine"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/automoto/spaceman/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Coin is either a collectable trigger placed in the level or the effect
// popping out of a question block, which has no collider.
type Coin struct {
	*engine.Actor
	effect bool

	start gamemath.Vec2
	rise  *gween.Tween
	fall  *gween.Tween
	life  float64
}

func NewCoin(s *Session, pos gamemath.Vec2) *Coin {
	c := &Coin{}
	c.Actor = engine.NewActor(s.World, c, tags.Coin)
	c.SetPosition(pos)
	tile := cfg.Physics.TileSize
	engine.NewCollider(c.Actor, tile, tile, engine.LayerCollectable, engine.AsTrigger())
	return c
}

// NewCoinEffect spawns a coin that rises two tiles, drops back and vanishes.
func NewCoinEffect(s *Session, pos gamemath.Vec2) *Coin {
	c := &Coin{effect: true, start: pos, life: cfg.Item.CoinLifeSpan}
	c.Actor = engine.NewActor(s.World, c, tags.Coin)
	c.SetPosition(pos)

	height := cfg.Item.CoinRiseTiles * cfg.Physics.TileSize
	duration := float32(height / cfg.Item.CoinTravelSpeed)
	c.rise = gween.New(0, float32(-height), duration, ease.Linear)
	c.fall = gween.New(float32(-height), 0, duration, ease.Linear)
	return c
}

func (c *Coin) Effect() bool { return c.effect }

func (c *Coin) OnUpdate(dt float64) {
	if !c.effect {
		return
	}
	switch {
	case c.rise != nil:
		y, done := c.rise.Update(float32(dt))
		c.SetPosition(gamemath.V(c.start.X, c.start.Y+float64(y)))
		if done {
			c.rise = nil
		}
	case c.fall != nil:
		y, done := c.fall.Update(float32(dt))
		c.SetPosition(gamemath.V(c.start.X, c.start.Y+float64(y)))
		if done {
			c.fall = nil
			c.SetPosition(c.start)
		}
	default:
		c.life -= dt
		if c.life <= 0 {
			c.Destroy()
		}
	}
}

// Mushroom grows out of a block and then walks, powering up the player it
// touches.
type Mushroom struct {
	*engine.Actor
	session  *Session
	body     *engine.RigidBody
	collider *engine.Collider

	speed float64
	start gamemath.Vec2
	rise  *gween.Tween
}

// NewMushroom spawns a mushroom rising out of the block at pos. Physics stay
// off until it has cleared the block.
func NewMushroom(s *Session, pos gamemath.Vec2) *Mushroom {
	m := &Mushroom{session: s, speed: cfg.Item.MushroomSpeed, start: pos}
	m.Actor = engine.NewActor(s.World, m, tags.Mushroom)

	const lead = 10.0
	tile := cfg.Physics.TileSize
	m.SetPosition(gamemath.V(pos.X, pos.Y-lead))
	m.rise = gween.New(float32(pos.Y-lead), float32(pos.Y-tile), float32((tile-lead)/cfg.Item.MushroomRiseSpeed), ease.Linear)

	m.body = engine.NewRigidBody(m.Actor)
	m.body.SetEnabled(false)
	m.collider = engine.NewCollider(m.Actor, tile, tile, engine.LayerCollectable)
	m.collider.SetEnabled(false)
	return m
}

func (m *Mushroom) Spawning() bool { return m.rise != nil }
func (m *Mushroom) Speed() float64 { return m.speed }

func (m *Mushroom) OnUpdate(dt float64) {
	if m.rise != nil {
		y, done := m.rise.Update(float32(dt))
		m.SetPosition(gamemath.V(m.start.X, float64(y)))
		if done {
			m.rise = nil
			m.SetPosition(gamemath.V(m.start.X, m.start.Y-cfg.Physics.TileSize))
			m.body.SetEnabled(true)
			m.collider.SetEnabled(true)
		}
		return
	}

	m.body.SetVelocityX(m.speed)

	half := cfg.Physics.TileSize / 2
	pos := m.Position()
	if pos.Y-half > m.session.Height || pos.X+half < 0 || pos.X-half > m.session.Width {
		m.Destroy()
	}
}

func (m *Mushroom) OnHorizontalCollision(overlap float64, other *engine.Collider) {
	switch other.Layer() {
	case engine.LayerBlocks, engine.LayerEnemy:
		m.speed = -m.speed
	}
}

func (m *Mushroom) OnVerticalCollision(overlap float64, other *engine.Collider) {
	if overlap <= 0 || other.Layer() != engine.LayerPlayer {
		return
	}
	if p, ok := other.Owner().Behavior().(*Player); ok {
		p.PowerUp()
	}
	m.Destroy()
}

func (m *Mushroom) OnKill() {
	m.Destroy()
}
