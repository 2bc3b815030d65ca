package actors

import (
	"math"

	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/engine"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/automoto/spaceman/tags"
)

// Posture is the player's body shape.
type Posture int

const (
	Standing Posture = iota
	Crouching
)

// Player is the spaceman controlled by the input source.
type Player struct {
	*engine.Actor
	session  *Session
	body     *engine.RigidBody
	collider *engine.Collider

	posture   Posture
	running   bool
	jumpCount int

	dead       bool
	deathTimer float64

	shootCooldown float64
	shootTimer    float64
}

// NewPlayer spawns the player at pos and registers it with the session.
func NewPlayer(s *Session, pos gamemath.Vec2) *Player {
	p := &Player{session: s, shootCooldown: cfg.Player.ShootCooldown}
	p.Actor = engine.NewActor(s.World, p, tags.Player)
	p.SetPosition(pos)

	p.body = engine.NewRigidBody(p.Actor,
		engine.WithMass(cfg.Player.Mass),
		engine.WithFriction(cfg.Player.Friction),
	)
	w, h := p.standingSize()
	p.collider = engine.NewCollider(p.Actor, w, h, engine.LayerPlayer)

	s.player = p
	return p
}

func (p *Player) standingSize() (float64, float64) {
	tile := cfg.Physics.TileSize
	return tile * cfg.Player.ColliderWidth, tile * cfg.Player.ColliderHeight
}

func (p *Player) Posture() Posture        { return p.posture }
func (p *Player) Running() bool           { return p.running }
func (p *Player) JumpCount() int          { return p.jumpCount }
func (p *Player) Dying() bool             { return p.dead }
func (p *Player) ShootCooldown() float64  { return p.shootCooldown }
func (p *Player) Body() *engine.RigidBody { return p.body }

// Dead reports true once the death timer has run out.
func (p *Player) Dead() bool {
	return p.dead && p.deathTimer <= 0
}

// Facing is 1 when looking right and -1 when looking left.
func (p *Player) Facing() float64 {
	if p.Scale().X < 0 {
		return -1
	}
	return 1
}

func (p *Player) OnProcessInput(in engine.Input) {
	if p.dead {
		return
	}

	p.running = false
	force := cfg.Player.MoveForce
	if in.Pressed(cfg.ActionRun) {
		force *= cfg.Player.RunMultiplier
	}

	dir := 0.0
	if in.Pressed(cfg.ActionMoveRight) {
		dir++
	}
	if in.Pressed(cfg.ActionMoveLeft) {
		dir--
	}
	if !gamemath.NearlyZero(dir, gamemath.DefaultEpsilon) {
		p.body.ApplyForce(gamemath.V(dir*force, 0))
		scale := p.Scale()
		scale.X = gamemath.Sign(dir)
		p.SetScale(scale)
		p.running = true
	}

	if in.Pressed(cfg.ActionCrouch) {
		p.SetPosture(Crouching)
	} else {
		p.SetPosture(Standing)
	}

	if in.JustPressed(cfg.ActionJump) && p.posture == Standing {
		if p.IsOnGround() || p.jumpCount < cfg.Player.MaxJumps {
			p.jump()
		}
	}

	if in.Pressed(cfg.ActionShoot) {
		p.shoot()
	} else if in.Pressed(cfg.ActionGas) {
		p.spray()
	}
}

func (p *Player) jump() {
	v := p.body.Velocity()
	v.Y = cfg.Player.JumpImpulse
	if p.jumpCount > 0 {
		v.Y *= cfg.Player.DoubleJumpScale
	}
	p.body.SetVelocity(v)
	p.SetOffGround()
	p.jumpCount++
}

// SetPosture reshapes the collider. Crouching halves the height and keeps the
// feet in place.
func (p *Player) SetPosture(posture Posture) {
	if p.posture == posture {
		return
	}
	p.posture = posture

	w, h := p.standingSize()
	offY := 0.0
	if posture == Crouching {
		offY = h * (1 - cfg.Player.CrouchHeight) / 2
		h *= cfg.Player.CrouchHeight
	}
	p.collider.SetSize(w, h)
	p.collider.SetOffset(gamemath.V(0, offY))
}

func (p *Player) muzzle() gamemath.Vec2 {
	return gamemath.Add(p.Position(), gamemath.V(p.Facing()*cfg.Player.MuzzleOffset, 0))
}

func (p *Player) shoot() {
	if p.shootTimer > 0 {
		return
	}
	NewPlayerBullet(p.session, p.muzzle(), gamemath.V(p.Facing(), 0))
	p.shootTimer = p.shootCooldown
}

func (p *Player) spray() {
	if p.shootTimer > 0 {
		return
	}
	angle := 0.0
	if p.Facing() < 0 {
		angle = math.Pi
	}
	angle += p.session.uniform(-cfg.Gas.Spread, cfg.Gas.Spread)
	NewGasCloud(p.session, p.muzzle(), gamemath.FromAngle(angle))
	p.shootTimer = cfg.Gas.Cooldown
}

// PowerUp shortens the shooting cooldown.
func (p *Player) PowerUp() {
	p.shootCooldown = cfg.Player.PoweredShootCooldown
}

func (p *Player) PowerDown() {
	p.shootCooldown = cfg.Player.ShootCooldown
}

func (p *Player) OnUpdate(dt float64) {
	if p.dead {
		p.deathTimer -= dt
		return
	}

	if p.shootTimer > 0 {
		p.shootTimer -= dt
	}

	pos := p.Position()
	if pos.Y > p.session.Bottom() {
		p.session.setKiller("fall")
		p.die(0)
		return
	}
	if left := cfg.Physics.TileSize / 2; pos.X < left {
		pos.X = left
		p.SetPosition(pos)
	}
}

// OnKill starts the death sequence unless the session is immortal.
func (p *Player) OnKill() {
	if p.dead || p.session.Immortal {
		return
	}
	p.die(cfg.Player.DeathTime)
}

func (p *Player) die(timer float64) {
	if p.dead {
		return
	}
	p.dead = true
	p.deathTimer = timer
	p.collider.SetLayer(engine.LayerCollectable)
	p.body.SetVelocityX(0)
	p.session.Logger.Info("player died", "by", p.session.KilledBy(), "x", p.Position().X, "y", p.Position().Y)
}

func (p *Player) killedBy(other *engine.Collider) {
	p.session.setKiller(Kind(other.Owner()))
	p.Kill()
}

func (p *Player) OnHorizontalCollision(overlap float64, other *engine.Collider) {
	if p.dead {
		return
	}

	switch other.Layer() {
	case engine.LayerHazard:
		p.killedBy(other)
	case engine.LayerEnemy:
		if g, ok := other.Owner().Behavior().(*Goomba); ok && p.body.Velocity().Y > 0 {
			g.Stomp()
			p.bounce()
			return
		}
		p.killedBy(other)
	case engine.LayerCollectable:
		p.collect(other)
	}
}

func (p *Player) OnVerticalCollision(overlap float64, other *engine.Collider) {
	if p.dead {
		return
	}

	switch other.Layer() {
	case engine.LayerHazard:
		p.killedBy(other)
		return
	case engine.LayerCollectable:
		p.collect(other)
		if other.IsTrigger() {
			return
		}
	}

	if overlap > 0 {
		p.SetOnGround()
		p.jumpCount = 0
		if other.Layer() == engine.LayerEnemy {
			if g, ok := other.Owner().Behavior().(*Goomba); ok {
				g.Stomp()
			} else {
				other.Owner().Kill()
			}
			p.bounce()
			p.jumpCount = 1
		}
	} else if overlap < 0 && other.Layer() == engine.LayerBlocks {
		if b, ok := other.Owner().Behavior().(*Block); ok {
			b.Bump()
		}
	}
}

func (p *Player) bounce() {
	p.body.SetVelocityY(cfg.Player.JumpImpulse * cfg.Player.StompBounce)
	p.SetOffGround()
}

func (p *Player) collect(other *engine.Collider) {
	switch item := other.Owner().Behavior().(type) {
	case *Mushroom:
		p.PowerUp()
		item.Kill()
	case *Coin:
		if item.State() == engine.StateDestroy {
			return
		}
		p.session.AddCoin()
		item.Destroy()
	}
}
