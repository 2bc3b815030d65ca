package actors

import (
	"math"

	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/engine"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/automoto/spaceman/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Block sprite frames.
const (
	QuestionFrame = 2
	UsedFrame     = 4
)

// Block is a solid tile the player can bump from below. Question blocks
// release a coin or a mushroom once.
type Block struct {
	*engine.Actor
	session  *Session
	collider *engine.Collider

	frame       int
	hasMushroom bool
	used        bool

	origin gamemath.Vec2
	rise   *gween.Tween
	fall   *gween.Tween
}

func NewBlock(s *Session, pos gamemath.Vec2, frame int, hasMushroom bool) *Block {
	b := &Block{session: s, frame: frame, hasMushroom: hasMushroom}
	b.Actor = engine.NewActor(s.World, b, tags.Block)
	b.SetPosition(pos)

	tile := cfg.Physics.TileSize
	b.collider = engine.NewCollider(b.Actor, tile, tile, engine.LayerBlocks, engine.AsStatic())
	return b
}

func (b *Block) Used() bool        { return b.used }
func (b *Block) Bumping() bool     { return b.rise != nil || b.fall != nil }
func (b *Block) HasMushroom() bool { return b.hasMushroom }

// Frame is the sprite frame to draw.
func (b *Block) Frame() int {
	if b.used {
		return UsedFrame
	}
	return b.frame
}

// Bump knocks the block up, kills enemies standing on it and releases a
// question block's item.
func (b *Block) Bump() {
	if b.Bumping() || b.used {
		return
	}

	b.origin = b.Position()
	height := float32(cfg.Item.BlockBumpHeight)
	duration := float32(cfg.Item.BlockBumpHeight / -cfg.Item.BlockBumpSpeed)
	b.rise = gween.New(0, -height, duration, ease.Linear)
	b.fall = gween.New(-height, 0, duration, ease.Linear)

	b.killEnemiesOnTop()

	if b.frame != QuestionFrame {
		return
	}
	b.used = true
	if b.hasMushroom {
		NewMushroom(b.session, b.origin)
		return
	}
	b.session.AddCoin()
	NewCoinEffect(b.session, b.origin)
}

func (b *Block) killEnemiesOnTop() {
	tol := cfg.Enemy.StompTolerance
	top := b.collider.Min()
	right := b.collider.Max().X

	region := b.session.World.Query(
		gamemath.V(top.X, top.Y-tol),
		gamemath.V(right, top.Y+tol),
		engine.LayerEnemy,
	)
	for _, c := range region {
		overlapsX := top.X < c.Max().X && right > c.Min().X
		onTop := math.Abs(c.Max().Y-top.Y) < tol
		if overlapsX && onTop {
			c.Owner().Kill()
		}
	}
}

func (b *Block) OnUpdate(dt float64) {
	step := float32(dt)
	switch {
	case b.rise != nil:
		y, done := b.rise.Update(step)
		b.SetPosition(gamemath.V(b.origin.X, b.origin.Y+float64(y)))
		if done {
			b.rise = nil
		}
	case b.fall != nil:
		y, done := b.fall.Update(step)
		b.SetPosition(gamemath.V(b.origin.X, b.origin.Y+float64(y)))
		if done {
			b.fall = nil
			b.SetPosition(b.origin)
		}
	}
}
