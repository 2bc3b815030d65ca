package engine

import (
	"math"
	"slices"
)

// Axis selects a detection pass.
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// Resolver runs the per-axis narrow phase of a collider against every other
// registered collider and pushes the owner out of solid contacts.
type Resolver struct {
	world *World

	// FallingBias scales the vertical overlap while landing so that grazing
	// a tile seam resolves as a landing instead of a wall hit.
	FallingBias float64
	// MaxPushOut caps a single correction.
	MaxPushOut float64
}

func newResolver(w *World) *Resolver {
	return &Resolver{
		world:       w,
		FallingBias: w.settings.FallingBias,
		MaxPushOut:  w.settings.MaxPushOut,
	}
}

// DetectHorizontal runs the horizontal pass for c. rb may be nil.
func (r *Resolver) DetectHorizontal(c *Collider, rb *RigidBody) {
	r.detect(c, rb, AxisHorizontal)
}

// DetectVertical runs the vertical pass for c. rb may be nil.
func (r *Resolver) DetectVertical(c *Collider, rb *RigidBody) {
	r.detect(c, rb, AxisVertical)
}

func (r *Resolver) detect(c *Collider, rb *RigidBody, axis Axis) {
	if c.static || !c.enabled {
		return
	}

	// Handlers may register colliders; iterate what existed when the pass began.
	candidates := slices.Clone(r.world.colliders)

	for _, other := range candidates {
		if other == c || !other.enabled {
			continue
		}
		if !c.Intersect(other) {
			continue
		}

		ox := c.HorizontalOverlap(other)
		oy := c.VerticalOverlap(other)
		bias := r.bias(rb, oy)

		switch axis {
		case AxisHorizontal:
			if math.Abs(ox) < math.Abs(oy)*bias {
				r.world.stats.HorizontalContacts++
				if !other.trigger {
					r.resolveHorizontal(c, rb, ox)
				}
				c.owner.onHorizontalCollision(ox, other)
			}
		case AxisVertical:
			if math.Abs(oy)*bias <= math.Abs(ox) {
				r.world.stats.VerticalContacts++
				if !other.trigger {
					r.resolveVertical(c, rb, oy)
				}
				c.owner.onVerticalCollision(oy, other)
			}
		}
	}
}

func (r *Resolver) bias(rb *RigidBody, oy float64) float64 {
	if rb != nil && rb.velocity.Y > 0 && oy > 0 {
		return r.FallingBias
	}
	return 1
}

func (r *Resolver) clamp(overlap float64) float64 {
	if overlap > r.MaxPushOut {
		r.world.stats.ClampedPushes++
		return r.MaxPushOut
	}
	if overlap < -r.MaxPushOut {
		r.world.stats.ClampedPushes++
		return -r.MaxPushOut
	}
	return overlap
}

func (r *Resolver) resolveHorizontal(c *Collider, rb *RigidBody, ox float64) {
	r.world.stats.Resolutions++
	c.owner.position.X -= r.clamp(ox)
	if rb != nil {
		rb.velocity.X = 0
	}
}

func (r *Resolver) resolveVertical(c *Collider, rb *RigidBody, oy float64) {
	r.world.stats.Resolutions++
	c.owner.position.Y -= r.clamp(oy)
	if rb != nil {
		rb.velocity.Y = 0
	}
	if oy > 0 {
		c.owner.onGround = true
	}
}

// PollTrigger invokes c's callback for every enabled collider it intersects.
func (r *Resolver) PollTrigger(c *Collider) {
	if c.callback == nil {
		return
	}
	candidates := slices.Clone(r.world.colliders)
	for _, other := range candidates {
		if other == c || !other.enabled {
			continue
		}
		if c.Intersect(other) {
			r.world.stats.TriggerHits++
			c.callback(other)
		}
	}
}
