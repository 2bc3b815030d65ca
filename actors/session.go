// Package actors holds the gameplay behaviours built on the engine: the
// player, enemies, blocks, items and level triggers.
package actors

import (
	"math/rand"

	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/engine"
	"github.com/charmbracelet/log"
)

// Session is the gameplay state shared by every actor of one level run.
type Session struct {
	World  *engine.World
	Logger *log.Logger

	// Level size in pixels.
	Width  float64
	Height float64

	Immortal bool

	coins    int
	complete bool
	player   *Player
	killer   string
	rng      *rand.Rand
}

// NewSession binds gameplay state to w for a level of the given pixel size.
func NewSession(w *engine.World, width, height float64, seed int64) *Session {
	return &Session{
		World:    w,
		Logger:   w.Logger().WithPrefix("actors"),
		Width:    width,
		Height:   height,
		Immortal: cfg.Player.Immortal,
		rng:      rand.New(rand.NewSource(seed)),
	}
}

func (s *Session) Coins() int       { return s.coins }
func (s *Session) Complete() bool   { return s.complete }
func (s *Session) Player() *Player  { return s.player }
func (s *Session) KilledBy() string { return s.killer }

func (s *Session) AddCoin() {
	s.coins++
}

// CompleteLevel flags the level as finished. It reports false if it already
// was.
func (s *Session) CompleteLevel() bool {
	if s.complete {
		return false
	}
	s.complete = true
	s.Logger.Info("level complete", "coins", s.coins, "frame", s.World.Frame())
	return true
}

// Bottom is the y past which falling actors are gone for good.
func (s *Session) Bottom() float64 {
	return s.Height + cfg.Physics.TileSize
}

// OutOfBounds reports whether x lies more than a tile outside the level.
func (s *Session) OutOfBounds(x float64) bool {
	tile := cfg.Physics.TileSize
	return x < -tile || x > s.Width+tile
}

// PlayerDead reports whether the player has died and finished dying.
func (s *Session) PlayerDead() bool {
	return s.player != nil && s.player.Dead()
}

func (s *Session) setKiller(name string) {
	s.killer = name
}

// coinFlip returns -1 or 1.
func (s *Session) coinFlip() float64 {
	if s.rng.Intn(2) == 0 {
		return 1
	}
	return -1
}

func (s *Session) uniform(min, max float64) float64 {
	return min + s.rng.Float64()*(max-min)
}

// Kind names the behaviour driving a, for logs and the game-over screen.
func Kind(a *engine.Actor) string {
	switch a.Behavior().(type) {
	case *Player:
		return "player"
	case *Goomba:
		return "goomba"
	case *Block:
		return "block"
	case *Coin:
		return "coin"
	case *Mushroom:
		return "mushroom"
	case *Hazard:
		return "hazard"
	case *Stone:
		return "stone"
	case *EndPhaseTrigger:
		return "end phase"
	case *PlayerBullet:
		return "bullet"
	case *Spawner:
		return "spawner"
	case *GasCloud:
		return "gas"
	}
	return "unknown"
}
