package engine

import (
	"testing"

	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRigidBodyDefaults(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w, 0, 0)
	rb := NewRigidBody(p.Actor)

	assert.Equal(t, 1.0, rb.Mass())
	assert.Equal(t, 0.0, rb.Friction())
	assert.True(t, rb.ApplyGravity())
	assert.True(t, rb.Enabled())
	assert.Equal(t, w.Settings().DefaultUpdateOrder, rb.UpdateOrder())
	assert.Same(t, rb, p.RigidBody())
}

func TestApplyForceDividesByMass(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w, 0, 0)
	rb := NewRigidBody(p.Actor, WithMass(2), WithGravity(false))

	rb.ApplyForce(gamemath.V(100, -50))
	assert.Equal(t, gamemath.V(50, -25), rb.Acceleration())

	w.Update(0.05)
	assert.InDelta(t, 2.5, rb.Velocity().X, 1e-9)
	assert.InDelta(t, -1.25, rb.Velocity().Y, 1e-9)
	assert.Equal(t, gamemath.Zero, rb.Acceleration(), "accumulator drains every tick")
}

func TestApplyForceIgnoredWithoutMass(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w, 0, 0)
	rb := NewRigidBody(p.Actor, WithMass(0))

	rb.ApplyForce(gamemath.V(100, 100))
	assert.Equal(t, gamemath.Zero, rb.Acceleration())
}

func TestGravityIntegration(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w, 0, 0)
	rb := NewRigidBody(p.Actor)

	w.Update(frame)

	g := w.Settings().Gravity
	assert.InDelta(t, g*frame, rb.Velocity().Y, 1e-9)
	assert.InDelta(t, g*frame*frame, p.Position().Y, 1e-9)

	rb.SetApplyGravity(false)
	before := rb.Velocity().Y
	w.Update(frame)
	assert.Equal(t, before, rb.Velocity().Y)
}

func TestFrictionDampsHorizontalSpeed(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w, 0, 0)
	rb := NewRigidBody(p.Actor, WithFriction(10), WithGravity(false))
	rb.SetVelocity(gamemath.V(300, 0))

	prev := rb.Velocity().X
	for i := 0; i < 20; i++ {
		w.Update(frame)
		v := rb.Velocity().X
		require.Less(t, v, prev)
		require.GreaterOrEqual(t, v, 0.0)
		prev = v
	}
}

func TestSmallHorizontalSpeedSnapsToZero(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w, 0, 0)
	rb := NewRigidBody(p.Actor, WithGravity(false))
	rb.SetVelocity(gamemath.V(0.9, 0))

	w.Update(frame)
	assert.Equal(t, 0.0, rb.Velocity().X)
	assert.Equal(t, 0.0, p.Position().X)
}

func TestVelocityIsClamped(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w, 0, 0)
	rb := NewRigidBody(p.Actor)
	rb.SetVelocity(gamemath.V(-5000, 5000))

	w.Update(frame)

	s := w.Settings()
	assert.Equal(t, -s.MaxSpeedX, rb.Velocity().X)
	assert.Equal(t, s.MaxSpeedY, rb.Velocity().Y)
}

func TestDisabledRigidBodyFreezes(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w, 10, 10)
	rb := NewRigidBody(p.Actor)
	rb.SetVelocity(gamemath.V(100, 100))
	rb.SetEnabled(false)

	w.Update(frame)

	assert.Equal(t, gamemath.V(10, 10), p.Position())
	assert.Equal(t, gamemath.V(100, 100), rb.Velocity())
}

func TestBodyComesToRestOnFloor(t *testing.T) {
	w := newTestWorld(t)
	newBlock(w, 0, 100, 320, 32)

	p := newRecorder(w, 0, 100-16-16-1)
	rb := NewRigidBody(p.Actor)
	NewCollider(p.Actor, 32, 32, LayerPlayer)
	rb.SetVelocity(gamemath.V(0, 300))

	w.Update(frame)
	require.True(t, p.IsOnGround())
	assert.Equal(t, 0.0, rb.Velocity().Y)
	assert.InDelta(t, 68.0, p.Position().Y, 1e-9)

	for i := 0; i < 30; i++ {
		w.Update(frame)
		require.True(t, p.IsOnGround(), "frame %d", i)
		require.Equal(t, 0.0, rb.Velocity().Y)
		require.InDelta(t, 68.0, p.Position().Y, 1e-9)
	}
}

func TestWalkingOffLedgeClearsOnGround(t *testing.T) {
	w := newTestWorld(t)
	newBlock(w, 0, 100, 64, 32)

	p := newRecorder(w, 0, 68)
	rb := NewRigidBody(p.Actor)
	NewCollider(p.Actor, 32, 32, LayerPlayer)

	w.Update(frame)
	require.True(t, p.IsOnGround())

	p.SetPosition(gamemath.V(500, 68))
	w.Update(frame)
	w.Update(frame)
	assert.False(t, p.IsOnGround())
	assert.Greater(t, rb.Velocity().Y, 0.0)
}
