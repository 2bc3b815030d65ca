// Package leveldata parses TMX levels into plain placement data. It has no
// dependencies on ebitengine or the simulation, so the headless runner and
// tests can load levels without a display.
package leveldata

// Level is everything the factory needs to populate a world.
type Level struct {
	Name     string
	Title    string
	Width    int // pixels
	Height   int // pixels
	TileSize int

	Tiles   []Tile
	Objects []Object

	// Skipped lists object names the loader did not recognise.
	Skipped []string
}

// Tile is a single map cell. X and Y are the cell centre.
type Tile struct {
	X, Y     float64
	Frame    int
	Solid    bool
	Mushroom bool
	Layer    string

	FlipH, FlipV, FlipD bool
}

type ObjectKind int

const (
	ObjectPlayerStart ObjectKind = iota
	ObjectHazard
	ObjectSpawner
	ObjectCoin
	ObjectStone
	ObjectEndPhase
)

var objectNames = map[string]ObjectKind{
	"PlayerStart": ObjectPlayerStart,
	"Hazard":      ObjectHazard,
	"Goomba":      ObjectSpawner,
	"Spawner":     ObjectSpawner,
	"Coin":        ObjectCoin,
	"Stone":       ObjectStone,
	"EndPhase":    ObjectEndPhase,
}

func (k ObjectKind) String() string {
	switch k {
	case ObjectPlayerStart:
		return "PlayerStart"
	case ObjectHazard:
		return "Hazard"
	case ObjectSpawner:
		return "Spawner"
	case ObjectCoin:
		return "Coin"
	case ObjectStone:
		return "Stone"
	case ObjectEndPhase:
		return "EndPhase"
	}
	return "Unknown"
}

// Object is a placed object. X and Y are the centre of its rectangle.
type Object struct {
	Kind ObjectKind
	Name string
	X, Y float64
	W, H float64
}

// PlayerStart returns the first player start, if the level has one.
func (l *Level) PlayerStart() (Object, bool) {
	for _, o := range l.Objects {
		if o.Kind == ObjectPlayerStart {
			return o, true
		}
	}
	return Object{}, false
}

// Count returns how many objects of kind the level places.
func (l *Level) Count(kind ObjectKind) int {
	n := 0
	for _, o := range l.Objects {
		if o.Kind == kind {
			n++
		}
	}
	return n
}
