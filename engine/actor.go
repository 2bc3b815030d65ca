package engine

import (
	"sort"

	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/yohamta/donburi"
)

// State is the lifecycle state of an actor.
type State int

const (
	StateActive State = iota
	StatePaused
	StateDestroy
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StatePaused:
		return "paused"
	case StateDestroy:
		return "destroy"
	}
	return "unknown"
}

// CollisionHandler receives the contacts resolved by the owner's colliders.
// overlap is the signed push-out on that axis, other is the collider hit.
type CollisionHandler interface {
	OnHorizontalCollision(overlap float64, other *Collider)
	OnVerticalCollision(overlap float64, other *Collider)
}

// Updater runs after the actor's components each frame.
type Updater interface {
	OnUpdate(dt float64)
}

// InputHandler runs after the actor's components in the input phase.
type InputHandler interface {
	OnProcessInput(in Input)
}

// Killable replaces the default Kill, which marks the actor for destruction.
type Killable interface {
	OnKill()
}

// Destroyer is notified once when the actor is swept.
type Destroyer interface {
	OnDestroy()
}

// Actor is a positioned owner of components. Gameplay types embed *Actor and
// pass themselves as the behaviour; the optional interfaces above are looked
// up on the behaviour.
type Actor struct {
	world    *World
	entity   donburi.Entity
	behavior any

	position gamemath.Vec2
	rotation float64
	scale    gamemath.Vec2
	state    State
	onGround bool

	components []Component
	rigidBody  *RigidBody
	colliders  []*Collider

	gassed      bool
	gasExposure float64
	removed     bool
}

// NewActor creates an actor in w. kinds are extra donburi components (tags)
// stored on the actor's entity for ECS queries.
func NewActor(w *World, behavior any, kinds ...donburi.IComponentType) *Actor {
	a := &Actor{
		world:    w,
		behavior: behavior,
		scale:    gamemath.V(1, 1),
	}
	cs := append([]donburi.IComponentType{ActorRef}, kinds...)
	a.entity = w.ecs.Create(cs...)
	ActorRef.Get(w.ecs.Entry(a.entity)).Actor = a
	w.addActor(a)
	return a
}

// ID is the actor's stable handle. It stays valid until the actor is swept.
func (a *Actor) ID() donburi.Entity { return a.entity }

// Entry returns the donburi entry backing the actor, or nil once swept.
func (a *Actor) Entry() *donburi.Entry {
	if a.removed || !a.world.ecs.Valid(a.entity) {
		return nil
	}
	return a.world.ecs.Entry(a.entity)
}

func (a *Actor) World() *World     { return a.world }
func (a *Actor) Behavior() any     { return a.behavior }
func (a *Actor) Removed() bool     { return a.removed }
func (a *Actor) State() State      { return a.state }
func (a *Actor) Rotation() float64 { return a.rotation }

func (a *Actor) SetState(s State) {
	a.state = s
}

// Destroy marks the actor for the end-of-frame sweep.
func (a *Actor) Destroy() {
	a.state = StateDestroy
}

func (a *Actor) Position() gamemath.Vec2 {
	return a.position
}

func (a *Actor) SetPosition(p gamemath.Vec2) {
	a.position = p
}

func (a *Actor) SetRotation(r float64) {
	a.rotation = r
}

// Scale is the non-uniform draw scale; a negative X means facing left.
func (a *Actor) Scale() gamemath.Vec2 {
	return a.scale
}

func (a *Actor) SetScale(s gamemath.Vec2) {
	a.scale = s
}

func (a *Actor) IsOnGround() bool { return a.onGround }
func (a *Actor) SetOnGround()     { a.onGround = true }
func (a *Actor) SetOffGround()    { a.onGround = false }

// AddComponent attaches c, keeping components sorted by update order. Equal
// orders keep insertion order.
func (a *Actor) AddComponent(c Component) {
	a.components = append(a.components, c)
	sort.SliceStable(a.components, func(i, j int) bool {
		return a.components[i].UpdateOrder() < a.components[j].UpdateOrder()
	})
	switch t := c.(type) {
	case *RigidBody:
		if a.rigidBody == nil {
			a.rigidBody = t
		}
	case *Collider:
		a.colliders = append(a.colliders, t)
	}
}

// Components returns the attached components in update order.
func (a *Actor) Components() []Component {
	return a.components
}

// RigidBody returns the first rigid body attached, or nil.
func (a *Actor) RigidBody() *RigidBody {
	return a.rigidBody
}

// Collider returns the first collider attached, or nil.
func (a *Actor) Collider() *Collider {
	if len(a.colliders) == 0 {
		return nil
	}
	return a.colliders[0]
}

// Colliders returns every collider attached.
func (a *Actor) Colliders() []*Collider {
	return a.colliders
}

// ComponentOf returns the first component of type T attached to a.
func ComponentOf[T Component](a *Actor) (T, bool) {
	for _, c := range a.components {
		if t, ok := c.(T); ok {
			return t, true
		}
	}
	var zero T
	return zero, false
}

// Update runs enabled components in order and then the behaviour's OnUpdate.
// Only active actors update.
func (a *Actor) Update(dt float64) {
	if a.state != StateActive {
		return
	}

	if a.rigidBody != nil && !gamemath.NearlyZero(a.rigidBody.velocity.Y, a.world.settings.OnGroundEpsilon) {
		a.onGround = false
	}

	a.updateGas(dt)

	for _, c := range a.components {
		if c.Enabled() {
			c.Update(dt)
		}
	}

	if u, ok := a.behavior.(Updater); ok {
		u.OnUpdate(dt)
	}
}

// ProcessInput forwards input to enabled components and then the behaviour.
// Only active actors process input.
func (a *Actor) ProcessInput(in Input) {
	if a.state != StateActive {
		return
	}
	for _, c := range a.components {
		if c.Enabled() {
			c.ProcessInput(in)
		}
	}
	if h, ok := a.behavior.(InputHandler); ok {
		h.OnProcessInput(in)
	}
}

// Kill defers to the behaviour's OnKill, or marks the actor for destruction.
func (a *Actor) Kill() {
	if k, ok := a.behavior.(Killable); ok {
		k.OnKill()
		return
	}
	a.Destroy()
}

// ApplyGasExposure flags the actor as standing in gas this frame.
func (a *Actor) ApplyGasExposure() {
	a.gassed = true
}

// GasExposure is the continuous time spent in gas so far.
func (a *Actor) GasExposure() float64 {
	return a.gasExposure
}

func (a *Actor) updateGas(dt float64) {
	if a.gassed {
		a.gasExposure += dt
		if a.gasExposure >= a.world.gasKillAfter {
			a.Kill()
		}
	} else {
		a.gasExposure = 0
	}
	a.gassed = false
}

func (a *Actor) onHorizontalCollision(overlap float64, other *Collider) {
	if h, ok := a.behavior.(CollisionHandler); ok {
		h.OnHorizontalCollision(overlap, other)
	}
}

func (a *Actor) onVerticalCollision(overlap float64, other *Collider) {
	if h, ok := a.behavior.(CollisionHandler); ok {
		h.OnVerticalCollision(overlap, other)
	}
}

// teardown releases every component. Colliders deregister first so nothing
// torn down afterwards can observe them in the registry.
func (a *Actor) teardown() {
	for _, c := range a.colliders {
		c.destroy()
	}
	for _, c := range a.components {
		if _, ok := c.(*Collider); ok {
			continue
		}
		c.destroy()
	}
	if d, ok := a.behavior.(Destroyer); ok {
		d.OnDestroy()
	}
	if a.world.ecs.Valid(a.entity) {
		a.world.ecs.Remove(a.entity)
	}
	a.components = nil
	a.colliders = nil
	a.rigidBody = nil
	a.removed = true
}
