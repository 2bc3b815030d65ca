package engine

// Layer is the gameplay category of a collider. Behaviours switch on it to
// decide what a contact means, so adding one touches every handler.
type Layer int

const (
	LayerPlayer Layer = iota
	LayerEnemy
	LayerHazard
	LayerBlocks
	LayerCollectable
	LayerPlayerProjectile
	LayerEnemyProjectile
	LayerDestructible
	layerCount
)

var layerNames = [layerCount]string{
	LayerPlayer:           "Player",
	LayerEnemy:            "Enemy",
	LayerHazard:           "Hazard",
	LayerBlocks:           "Blocks",
	LayerCollectable:      "Collectable",
	LayerPlayerProjectile: "PlayerProjectile",
	LayerEnemyProjectile:  "EnemyProjectile",
	LayerDestructible:     "Destructible",
}

func (l Layer) String() string {
	if l < 0 || l >= layerCount {
		return "Unknown"
	}
	return layerNames[l]
}

// ParseLayer resolves a layer by name, as written in level files.
func ParseLayer(name string) (Layer, bool) {
	for i, n := range layerNames {
		if n == name {
			return Layer(i), true
		}
	}
	return 0, false
}

// Layers returns every layer in declaration order.
func Layers() []Layer {
	out := make([]Layer, 0, layerCount)
	for l := Layer(0); l < layerCount; l++ {
		out = append(out, l)
	}
	return out
}
