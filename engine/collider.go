package engine

import (
	"github.com/automoto/spaceman/shared/gamemath"
)

// Collider is an axis-aligned box centred on its owner's position plus an
// offset. Bounds are derived from the owner on every call.
//
// Preconditions: owner is non-nil, width and height are positive.
type Collider struct {
	BaseComponent

	offset   gamemath.Vec2
	width    float64
	height   float64
	layer    Layer
	trigger  bool
	static   bool
	callback func(other *Collider)
}

// ColliderOption configures a Collider at construction.
type ColliderOption func(*Collider)

// WithOffset shifts the box centre relative to the owner position.
func WithOffset(x, y float64) ColliderOption {
	return func(c *Collider) { c.offset = gamemath.V(x, y) }
}

// AsTrigger makes the collider report contacts without pushing anything.
func AsTrigger() ColliderOption {
	return func(c *Collider) { c.trigger = true }
}

// AsStatic keeps the collider from running its own detection passes.
func AsStatic() ColliderOption {
	return func(c *Collider) { c.static = true }
}

// WithColliderOrder overrides the update order.
func WithColliderOrder(order int) ColliderOption {
	return func(c *Collider) { c.order = order }
}

// NewCollider attaches a collider to owner and registers it with the
// owner's world immediately.
func NewCollider(owner *Actor, width, height float64, layer Layer, opts ...ColliderOption) *Collider {
	c := &Collider{
		BaseComponent: NewBaseComponent(owner, owner.world.settings.DefaultUpdateOrder),
		width:         width,
		height:        height,
		layer:         layer,
	}
	for _, opt := range opts {
		opt(c)
	}
	owner.world.addCollider(c)
	owner.AddComponent(c)
	return c
}

func (c *Collider) center() gamemath.Vec2 {
	return gamemath.Add(c.owner.position, c.offset)
}

// Min returns the top-left corner.
func (c *Collider) Min() gamemath.Vec2 {
	p := c.center()
	return gamemath.V(p.X-c.width/2, p.Y-c.height/2)
}

// Max returns the bottom-right corner.
func (c *Collider) Max() gamemath.Vec2 {
	p := c.center()
	return gamemath.V(p.X+c.width/2, p.Y+c.height/2)
}

// Intersect reports whether the two boxes overlap or touch.
func (c *Collider) Intersect(other *Collider) bool {
	return boxesIntersect(c.Min(), c.Max(), other.Min(), other.Max())
}

func boxesIntersect(aMin, aMax, bMin, bMax gamemath.Vec2) bool {
	overlapX := aMax.X >= bMin.X && aMin.X <= bMax.X
	overlapY := aMax.Y >= bMin.Y && aMin.Y <= bMax.Y
	return overlapX && overlapY
}

// HorizontalOverlap returns the signed smallest distance that separates c
// from other on X. It is negative when c overlaps other from the right. The
// resolver subtracts it from the owner position.
func (c *Collider) HorizontalOverlap(other *Collider) float64 {
	return minOverlap(c.Min().X, c.Max().X, other.Min().X, other.Max().X)
}

// VerticalOverlap is HorizontalOverlap on Y. Positive means c is above
// other.
func (c *Collider) VerticalOverlap(other *Collider) float64 {
	return minOverlap(c.Min().Y, c.Max().Y, other.Min().Y, other.Max().Y)
}

func minOverlap(aMin, aMax, bMin, bMax float64) float64 {
	d1 := bMax - aMin
	d2 := aMax - bMin
	if d1 < d2 {
		return -d1
	}
	return d2
}

func (c *Collider) Size() (width, height float64) {
	return c.width, c.height
}

func (c *Collider) SetSize(width, height float64) {
	c.width = width
	c.height = height
}

func (c *Collider) Offset() gamemath.Vec2 {
	return c.offset
}

func (c *Collider) SetOffset(offset gamemath.Vec2) {
	c.offset = offset
}

func (c *Collider) Layer() Layer {
	return c.layer
}

func (c *Collider) SetLayer(layer Layer) {
	c.layer = layer
}

func (c *Collider) IsTrigger() bool { return c.trigger }
func (c *Collider) IsStatic() bool  { return c.static }

// SetCollisionCallback registers fn to be polled every frame against every
// intersecting collider. Only trigger colliders poll.
func (c *Collider) SetCollisionCallback(fn func(other *Collider)) {
	c.callback = fn
}

func (c *Collider) Update(float64) {
	if c.trigger && c.callback != nil {
		c.owner.world.resolver.PollTrigger(c)
	}
}

func (c *Collider) destroy() {
	c.owner.world.removeCollider(c)
}
