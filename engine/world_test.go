package engine

import (
	"testing"

	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeltaIsClamped(t *testing.T) {
	w := newTestWorld(t)
	assert.Equal(t, w.Settings().MaxDeltaTime, w.Update(1.0))
	assert.Equal(t, frame, w.Update(frame))
	assert.Equal(t, 0.0, w.Update(-1))
}

func TestDestroyIsDeferredToFrameEnd(t *testing.T) {
	w := newTestWorld(t)
	victim := newRecorder(w, 0, 0)
	killer := newRecorder(w, 0, 0)

	listedDuringFrame := false
	killer.onUpdate = func(float64) {
		if killer.updates == 1 {
			victim.Destroy()
			listedDuringFrame = assert.ObjectsAreEqual(2, w.ActorCount())
		}
	}

	w.Update(frame)
	assert.True(t, listedDuringFrame)
	assert.Equal(t, 1, victim.updates, "victim ran before being marked")
	assert.True(t, victim.Removed())
	assert.True(t, victim.destroyed)
	assert.Equal(t, 1, w.ActorCount())

	w.Update(frame)
	assert.Equal(t, 1, victim.updates)
}

func TestDestroyedLaterInListIsNotUpdated(t *testing.T) {
	w := newTestWorld(t)
	killer := newRecorder(w, 0, 0)
	victim := newRecorder(w, 0, 0)
	killer.onUpdate = func(float64) { victim.Destroy() }

	w.Update(frame)

	assert.Equal(t, 0, victim.updates)
	assert.True(t, victim.Removed())
}

func TestActorsSpawnedDuringUpdateWaitForNextFrame(t *testing.T) {
	w := newTestWorld(t)
	spawner := newRecorder(w, 0, 0)

	var child *recorder
	spawner.onUpdate = func(float64) {
		if child == nil {
			child = newRecorder(w, 10, 10)
			assert.Equal(t, 1, w.PendingCount())
			assert.Equal(t, 1, w.ActorCount())
		}
	}

	w.Update(frame)
	require.NotNil(t, child)
	assert.Equal(t, 0, child.updates)
	assert.Equal(t, 0, w.PendingCount())
	assert.Equal(t, 2, w.ActorCount())

	w.Update(frame)
	assert.Equal(t, 1, child.updates)
}

func TestSpawnedAndDestroyedInSameFrame(t *testing.T) {
	w := newTestWorld(t)
	spawner := newRecorder(w, 0, 0)
	var child *recorder
	spawner.onUpdate = func(float64) {
		if child == nil {
			child = newRecorder(w, 0, 0)
			NewCollider(child.Actor, 4, 4, LayerPlayerProjectile)
			child.Destroy()
		}
	}

	w.Update(frame)

	assert.True(t, child.Removed())
	assert.Equal(t, 1, w.ActorCount())
	assert.Empty(t, w.Colliders())
	assert.Equal(t, 1, w.LastStats().Swept)
}

func TestRemoveActor(t *testing.T) {
	w := newTestWorld(t)
	a := newRecorder(w, 0, 0)
	NewCollider(a.Actor, 4, 4, LayerEnemy)
	b := newRecorder(w, 10, 0)

	w.RemoveActor(a.Actor)

	assert.True(t, a.Removed())
	assert.True(t, a.destroyed)
	assert.Equal(t, 1, w.ActorCount())
	assert.Empty(t, w.Colliders())

	var pending *recorder
	b.onUpdate = func(float64) {
		if pending == nil {
			pending = newRecorder(w, 0, 0)
			w.RemoveActor(pending.Actor)
			w.RemoveActor(b.Actor)
		}
	}
	w.Update(frame)

	assert.True(t, pending.Removed())
	assert.Zero(t, pending.updates)
	assert.True(t, b.Removed(), "live actors removed mid-frame are swept at frame end")
	assert.Zero(t, w.ActorCount())
	assert.Zero(t, w.PendingCount())
}

func TestPausedActorsSkipUpdateAndInput(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w, 0, 0)
	rb := NewRigidBody(p.Actor)
	p.SetState(StatePaused)

	w.ProcessInput(NoInput)
	w.Update(frame)

	assert.Zero(t, p.updates)
	assert.Zero(t, p.inputs)
	assert.Equal(t, gamemath.Zero, rb.Velocity())

	p.SetState(StateActive)
	w.ProcessInput(NoInput)
	w.Update(frame)
	assert.Equal(t, 1, p.updates)
	assert.Equal(t, 1, p.inputs)
}

type orderedComponent struct {
	BaseComponent
	name string
	log  *[]string
}

func (c *orderedComponent) Update(float64) {
	*c.log = append(*c.log, c.name)
}

func TestComponentsUpdateInOrder(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w, 0, 0)
	var got []string
	add := func(name string, order int) {
		p.AddComponent(&orderedComponent{BaseComponent: NewBaseComponent(p.Actor, order), name: name, log: &got})
	}
	add("late", 200)
	add("early", 1)
	add("middle-a", 50)
	add("middle-b", 50)

	w.Update(frame)
	assert.Equal(t, []string{"early", "middle-a", "middle-b", "late"}, got)

	got = nil
	p.Components()[0].SetEnabled(false)
	w.Update(frame)
	assert.Equal(t, []string{"middle-a", "middle-b", "late"}, got)
}

type teardownSpy struct {
	BaseComponent
	sawColliders *int
}

func (c *teardownSpy) destroy() {
	*c.sawColliders = c.owner.world.ColliderCount()
}

func TestCollidersDeregisterBeforeOtherComponents(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w, 0, 0)
	seen := -1
	// Added first so it would be torn down first in storage order.
	p.AddComponent(&teardownSpy{BaseComponent: NewBaseComponent(p.Actor, 0), sawColliders: &seen})
	NewCollider(p.Actor, 8, 8, LayerEnemy)
	NewCollider(p.Actor, 4, 4, LayerHazard, AsTrigger())

	p.Destroy()
	w.Update(frame)

	assert.Equal(t, 0, seen)
}

func TestActorHandles(t *testing.T) {
	w := newTestWorld(t)
	p := newRecorder(w, 0, 0)
	id := p.ID()

	got, ok := w.Actor(id)
	require.True(t, ok)
	assert.Same(t, p.Actor, got)
	assert.NotNil(t, p.Entry())

	p.Destroy()
	w.Update(frame)

	_, ok = w.Actor(id)
	assert.False(t, ok)
	assert.Nil(t, p.Entry())
}

type killable struct {
	*Actor
	kills int
}

func (k *killable) OnKill() { k.kills++ }

func TestKill(t *testing.T) {
	w := newTestWorld(t)

	plain := newRecorder(w, 0, 0)
	plain.Kill()
	assert.Equal(t, StateDestroy, plain.State())

	k := &killable{}
	k.Actor = NewActor(w, k)
	k.Kill()
	assert.Equal(t, 1, k.kills)
	assert.Equal(t, StateActive, k.State())
}

func TestGasExposureKills(t *testing.T) {
	w := newTestWorld(t)
	w.SetGasKillAfter(0.09)
	p := newRecorder(w, 0, 0)

	for i := 0; i < 5; i++ {
		p.ApplyGasExposure()
		w.Update(frame)
	}
	assert.False(t, p.Removed())

	p.ApplyGasExposure()
	w.Update(frame)
	assert.True(t, p.Removed())
}

func TestGasExposureResetsWhenLeavingCloud(t *testing.T) {
	w := newTestWorld(t)
	w.SetGasKillAfter(0.09)
	p := newRecorder(w, 0, 0)

	for i := 0; i < 4; i++ {
		p.ApplyGasExposure()
		w.Update(frame)
	}
	assert.Greater(t, p.GasExposure(), 0.0)

	w.Update(frame)
	assert.Zero(t, p.GasExposure())
}

func TestClearTearsDownEverything(t *testing.T) {
	w := newTestWorld(t)
	a := newRecorder(w, 0, 0)
	NewCollider(a.Actor, 8, 8, LayerEnemy)
	b := newRecorder(w, 20, 0)
	NewCollider(b.Actor, 8, 8, LayerBlocks, AsStatic())
	w.Update(frame)

	w.Clear()

	assert.Zero(t, w.ActorCount())
	assert.Zero(t, w.ColliderCount())
	assert.Zero(t, w.Spatial().Len())
	assert.True(t, a.destroyed)
	assert.True(t, b.Removed())
}

func TestFrameStats(t *testing.T) {
	w := newTestWorld(t)
	newBlock(w, 0, 100, 320, 32)
	p := newRecorder(w, 0, 69)
	NewRigidBody(p.Actor)
	NewCollider(p.Actor, 32, 32, LayerPlayer)

	w.Update(frame)
	s := w.LastStats()
	assert.Equal(t, uint64(1), s.Frame)
	assert.Equal(t, 2, s.Actors)
	assert.Equal(t, 2, s.Colliders)
	assert.Equal(t, 1, s.VerticalContacts)
	assert.Equal(t, 1, s.Resolutions)
	assert.Zero(t, w.Stats().VerticalContacts, "counters restart each frame")
}

func TestQueryFiltersByLayerAndBounds(t *testing.T) {
	w := newTestWorld(t)
	_, block := newBlock(w, 100, 100, 32, 32)
	enemy := newRecorder(w, 100, 68)
	enemyCollider := NewCollider(enemy.Actor, 32, 32, LayerEnemy)
	far := newRecorder(w, 900, 68)
	NewCollider(far.Actor, 32, 32, LayerEnemy)
	w.Update(0)

	got := w.Query(gamemath.V(84, 80), gamemath.V(116, 84), LayerEnemy)
	require.Len(t, got, 1)
	assert.Same(t, enemyCollider, got[0])

	both := w.Query(gamemath.V(84, 80), gamemath.V(116, 84))
	assert.ElementsMatch(t, []*Collider{block, enemyCollider}, both)

	enemyCollider.SetEnabled(false)
	assert.Empty(t, w.Query(gamemath.V(84, 80), gamemath.V(116, 84), LayerEnemy))
}

func TestSpatialIndexFollowsRegistryAcrossFrames(t *testing.T) {
	w := newTestWorld(t)
	a := newRecorder(w, 100, 100)
	ca := NewCollider(a.Actor, 32, 32, LayerEnemy)
	b := newRecorder(w, 300, 100)
	NewCollider(b.Actor, 32, 32, LayerEnemy)

	w.Update(0)
	require.Equal(t, 2, w.Spatial().Len())

	ca.SetEnabled(false)
	w.Update(0)
	assert.Equal(t, 1, w.Spatial().Len())
	assert.Empty(t, w.Query(gamemath.V(90, 90), gamemath.V(110, 110)))

	ca.SetEnabled(true)
	a.SetPosition(gamemath.V(500, 100))
	w.Update(0)
	assert.Equal(t, 2, w.Spatial().Len())
	got := w.Query(gamemath.V(490, 90), gamemath.V(510, 110))
	require.Len(t, got, 1)
	assert.Same(t, ca, got[0])

	b.Destroy()
	w.Update(0)
	w.Update(0)
	assert.Equal(t, 1, w.Spatial().Len())
}
