package engine

import (
	"math"

	"github.com/automoto/spaceman/shared/gamemath"
)

// RigidBody integrates forces and gravity into velocity, moves its owner
// one axis at a time and runs the owner collider's detection pass after
// each move.
type RigidBody struct {
	BaseComponent

	velocity gamemath.Vec2
	accel    gamemath.Vec2
	mass     float64
	friction float64
	gravity  bool
}

// RigidBodyOption configures a RigidBody at construction.
type RigidBodyOption func(*RigidBody)

// WithMass sets the body mass. Forces applied to a body with mass <= 0 are
// ignored.
func WithMass(mass float64) RigidBodyOption {
	return func(rb *RigidBody) { rb.mass = mass }
}

// WithFriction sets the horizontal drag coefficient.
func WithFriction(friction float64) RigidBodyOption {
	return func(rb *RigidBody) { rb.friction = friction }
}

// WithGravity toggles gravity.
func WithGravity(on bool) RigidBodyOption {
	return func(rb *RigidBody) { rb.gravity = on }
}

// WithRigidBodyOrder overrides the update order.
func WithRigidBodyOrder(order int) RigidBodyOption {
	return func(rb *RigidBody) { rb.order = order }
}

// NewRigidBody attaches a rigid body (mass 1, no friction, gravity on) to
// owner.
func NewRigidBody(owner *Actor, opts ...RigidBodyOption) *RigidBody {
	rb := &RigidBody{
		BaseComponent: NewBaseComponent(owner, owner.world.settings.DefaultUpdateOrder),
		mass:          1,
		gravity:       true,
	}
	for _, opt := range opts {
		opt(rb)
	}
	owner.AddComponent(rb)
	return rb
}

// ApplyForce accumulates force/mass into this frame's acceleration.
func (rb *RigidBody) ApplyForce(force gamemath.Vec2) {
	if rb.mass <= 0 {
		return
	}
	rb.accel.X += force.X / rb.mass
	rb.accel.Y += force.Y / rb.mass
}

func (rb *RigidBody) Velocity() gamemath.Vec2 {
	return rb.velocity
}

func (rb *RigidBody) SetVelocity(v gamemath.Vec2) {
	rb.velocity = v
}

// SetVelocityX replaces the horizontal component only.
func (rb *RigidBody) SetVelocityX(x float64) {
	rb.velocity.X = x
}

// SetVelocityY replaces the vertical component only.
func (rb *RigidBody) SetVelocityY(y float64) {
	rb.velocity.Y = y
}

func (rb *RigidBody) Mass() float64     { return rb.mass }
func (rb *RigidBody) Friction() float64 { return rb.friction }

func (rb *RigidBody) ApplyGravity() bool {
	return rb.gravity
}

func (rb *RigidBody) SetApplyGravity(on bool) {
	rb.gravity = on
}

// Acceleration returns the acceleration accumulated since the last update.
func (rb *RigidBody) Acceleration() gamemath.Vec2 {
	return rb.accel
}

func (rb *RigidBody) Update(dt float64) {
	owner := rb.owner
	w := owner.world
	s := w.settings

	if rb.gravity {
		rb.accel.Y += s.Gravity
	}
	if rb.friction != 0 && math.Abs(rb.velocity.X) > s.FrictionThreshold {
		rb.ApplyForce(gamemath.V(-rb.friction*rb.velocity.X, 0))
	}

	rb.velocity.X += rb.accel.X * dt
	rb.velocity.Y += rb.accel.Y * dt
	rb.velocity.X = gamemath.ClampSpeed(rb.velocity.X, s.MaxSpeedX)
	rb.velocity.Y = gamemath.ClampSpeed(rb.velocity.Y, s.MaxSpeedY)
	if math.Abs(rb.velocity.X) < s.NearZeroSpeed {
		rb.velocity.X = 0
	}

	collider := owner.Collider()

	owner.position.X += rb.velocity.X * dt
	if collider != nil {
		w.resolver.DetectHorizontal(collider, rb)
	}

	owner.position.Y += rb.velocity.Y * dt
	if collider != nil {
		w.resolver.DetectVertical(collider, rb)
	}

	rb.accel = gamemath.Zero
}
