package engine

import (
	"slices"

	"github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
)

// ActorRefData links a donburi entity back to its actor.
type ActorRefData struct {
	Actor *Actor
}

var ActorRef = donburi.NewComponentType[ActorRefData]()

// World owns the live actors, the collider registry and the resolver for one
// running level. Actors added while the world is updating wait in a pending
// list, and actors marked for destruction are swept once the update pass is
// over.
type World struct {
	ecs      donburi.World
	settings Settings
	logger   *log.Logger
	resolver *Resolver
	spatial  *SpatialIndex

	actors    []*Actor
	pending   []*Actor
	colliders []*Collider
	updating  bool

	gasKillAfter float64

	frame uint64
	stats FrameStats
	last  FrameStats
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger. The default discards debug output.
func WithLogger(l *log.Logger) Option {
	return func(w *World) { w.logger = l }
}

// WithSettings replaces the physics constants.
func WithSettings(s Settings) Option {
	return func(w *World) { w.settings = s }
}

// WithBounds sizes the spatial index to a level of the given pixel size.
func WithBounds(width, height float64) Option {
	return func(w *World) { w.spatial = newSpatialIndex(width, height, w.settings) }
}

// NewWorld creates a world storing its actor handles in dw.
func NewWorld(dw donburi.World, opts ...Option) *World {
	w := &World{
		ecs:          dw,
		settings:     DefaultSettings(),
		logger:       log.Default().WithPrefix("engine"),
		gasKillAfter: config.Gas.KillAfter,
	}
	for _, opt := range opts {
		opt(w)
	}
	if w.spatial == nil {
		w.spatial = newSpatialIndex(float64(config.C.Width), float64(config.C.Height), w.settings)
	}
	w.resolver = newResolver(w)
	return w
}

func (w *World) ECS() donburi.World     { return w.ecs }
func (w *World) Settings() Settings     { return w.settings }
func (w *World) Logger() *log.Logger    { return w.logger }
func (w *World) Resolver() *Resolver    { return w.resolver }
func (w *World) Spatial() *SpatialIndex { return w.spatial }
func (w *World) Frame() uint64          { return w.frame }
func (w *World) Updating() bool         { return w.updating }
func (w *World) LastStats() FrameStats  { return w.last }
func (w *World) PendingCount() int      { return len(w.pending) }
func (w *World) ActorCount() int        { return len(w.actors) }
func (w *World) ColliderCount() int     { return len(w.colliders) }
func (w *World) Stats() *FrameStats     { return &w.stats }

// SetGasKillAfter sets how long continuous gas exposure takes to kill.
func (w *World) SetGasKillAfter(seconds float64) { w.gasKillAfter = seconds }

// SetBounds resizes the spatial index, typically after a level is loaded.
func (w *World) SetBounds(width, height float64) {
	w.spatial = newSpatialIndex(width, height, w.settings)
	w.spatial.Sync(w.colliders)
}

// Actors returns a snapshot of the live actors in update order.
func (w *World) Actors() []*Actor {
	return slices.Clone(w.actors)
}

// Colliders returns a snapshot of the collider registry in registration
// order.
func (w *World) Colliders() []*Collider {
	return slices.Clone(w.colliders)
}

// Actor resolves a handle. It fails once the actor has been swept.
func (w *World) Actor(id donburi.Entity) (*Actor, bool) {
	if !w.ecs.Valid(id) {
		return nil, false
	}
	e := w.ecs.Entry(id)
	if !e.HasComponent(ActorRef) {
		return nil, false
	}
	a := ActorRef.Get(e).Actor
	if a == nil || a.removed {
		return nil, false
	}
	return a, true
}

func (w *World) addActor(a *Actor) {
	w.stats.Spawned++
	if w.updating {
		w.pending = append(w.pending, a)
		return
	}
	w.actors = append(w.actors, a)
}

// RemoveActor takes a out of the pending and live lists and tears it down.
// While the world is updating the live list is being iterated, so a live
// actor is only marked for the end-of-frame sweep instead.
func (w *World) RemoveActor(a *Actor) {
	if a == nil || a.removed {
		return
	}
	if i := slices.Index(w.pending, a); i >= 0 {
		w.pending = slices.Delete(w.pending, i, i+1)
		a.teardown()
		return
	}
	if w.updating {
		a.SetState(StateDestroy)
		return
	}
	if i := slices.Index(w.actors, a); i >= 0 {
		w.actors = slices.Delete(w.actors, i, i+1)
	}
	a.teardown()
}

func (w *World) addCollider(c *Collider) {
	w.colliders = append(w.colliders, c)
}

func (w *World) removeCollider(c *Collider) {
	if i := slices.Index(w.colliders, c); i >= 0 {
		w.colliders = slices.Delete(w.colliders, i, i+1)
	}
	w.spatial.remove(c)
}

// ClampDelta limits a frame delta to the configured maximum.
func (w *World) ClampDelta(dt float64) float64 {
	if dt > w.settings.MaxDeltaTime {
		return w.settings.MaxDeltaTime
	}
	if dt < 0 {
		return 0
	}
	return dt
}

// ProcessInput feeds in to every live actor. Actors spawned meanwhile join
// the live list afterwards.
func (w *World) ProcessInput(in Input) {
	w.updating = true
	for _, a := range w.actors {
		a.ProcessInput(in)
	}
	w.updating = false
	w.mergePending()
}

// Update advances one frame and returns the delta actually used. The frame
// has two phases: every live actor updates, then pending actors are merged
// and every actor in the Destroy state is swept.
func (w *World) Update(dt float64) float64 {
	dt = w.ClampDelta(dt)
	w.frame++

	w.updating = true
	for _, a := range w.actors {
		a.Update(dt)
	}
	w.updating = false

	w.commit()
	return dt
}

func (w *World) mergePending() {
	if len(w.pending) == 0 {
		return
	}
	w.actors = append(w.actors, w.pending...)
	w.pending = w.pending[:0]
}

func (w *World) commit() {
	w.mergePending()

	kept := w.actors[:0]
	var dead []*Actor
	for _, a := range w.actors {
		if a.state == StateDestroy {
			dead = append(dead, a)
			continue
		}
		kept = append(kept, a)
	}
	clear(w.actors[len(kept):])
	w.actors = kept

	for _, a := range dead {
		w.logger.Debug("sweeping actor", "id", a.entity, "frame", w.frame)
		a.teardown()
		w.stats.Swept++
	}

	w.spatial.Sync(w.colliders)

	w.stats.Frame = w.frame
	w.stats.Actors = len(w.actors)
	w.stats.Colliders = len(w.colliders)
	w.last = w.stats
	w.stats = FrameStats{}
}

// Clear tears down every actor, pending ones included.
func (w *World) Clear() {
	all := append(slices.Clone(w.actors), w.pending...)
	w.actors = nil
	w.pending = nil
	for _, a := range all {
		a.teardown()
	}
	w.colliders = nil
	w.spatial.Sync(nil)
}

// Query returns the enabled colliders whose boxes touch [min, max], filtered
// to layers when any are given.
func (w *World) Query(min, max gamemath.Vec2, layers ...Layer) []*Collider {
	return w.spatial.Query(min, max, layers...)
}
