package systems

import (
	"image/color"

	"github.com/automoto/spaceman/actors"
	"github.com/automoto/spaceman/components"
	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/engine"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Block colors by sprite frame.
var blockColors = map[int]color.RGBA{
	0:                   cfg.Brown,
	1:                   {R: 180, G: 70, B: 40, A: 255},
	actors.QuestionFrame: cfg.Yellow,
	actors.UsedFrame:     {R: 110, G: 80, B: 50, A: 255},
}

var (
	decorationColor = color.RGBA{R: 40, G: 140, B: 60, A: 255}
	playerColor     = color.RGBA{R: 230, G: 230, B: 240, A: 255}
	dyingColor      = color.RGBA{R: 120, G: 120, B: 130, A: 255}
	stoneColor      = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	mushroomColor   = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	gasColor        = color.RGBA{R: 140, G: 200, B: 60, A: 160}
	goalColor       = color.RGBA{R: 0, G: 255, B: 0, A: 60}
)

// view maps world pixels to screen pixels.
type view struct {
	origin gamemath.Vec2
	zoom   float64
	w, h   float64 // visible world size
}

func getView(e *ecs.ECS, screen *ebiten.Image) (view, bool) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return view{}, false // No camera yet
	}
	camera := components.Camera.Get(cameraEntry)

	zoom := cfg.Camera.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	w, h := gamemath.Viewport(float64(screen.Bounds().Dx()), float64(screen.Bounds().Dy()), zoom)
	return view{origin: camera.Position, zoom: zoom, w: w, h: h}, true
}

// visible reports whether the box [min, max] touches the view, with a
// little padding so shapes don't pop at the edges.
func (v view) visible(min, max gamemath.Vec2) bool {
	const padding = 32.0
	return max.X >= v.origin.X-padding && min.X <= v.origin.X+v.w+padding &&
		max.Y >= v.origin.Y-padding && min.Y <= v.origin.Y+v.h+padding
}

func (v view) fillBox(screen *ebiten.Image, min, max gamemath.Vec2, clr color.Color) {
	x := (min.X - v.origin.X) * v.zoom
	y := (min.Y - v.origin.Y) * v.zoom
	vector.FillRect(screen,
		float32(x), float32(y),
		float32((max.X-min.X)*v.zoom), float32((max.Y-min.Y)*v.zoom),
		clr, false)
}

func (v view) strokeBox(screen *ebiten.Image, min, max gamemath.Vec2, clr color.Color) {
	x := (min.X - v.origin.X) * v.zoom
	y := (min.Y - v.origin.Y) * v.zoom
	vector.StrokeRect(screen,
		float32(x), float32(y),
		float32((max.X-min.X)*v.zoom), float32((max.Y-min.Y)*v.zoom),
		1, clr, false)
}

// DrawLevel renders the sky and the decoration tiles behind the actors.
func DrawLevel(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.Sky)

	game := getGame(e)
	if game == nil {
		return
	}
	v, ok := getView(e, screen)
	if !ok {
		return
	}

	half := float64(game.Level.TileSize) / 2
	for _, tile := range game.Level.Tiles {
		if tile.Solid {
			continue // drawn as blocks
		}
		min := gamemath.V(tile.X-half, tile.Y-half)
		max := gamemath.V(tile.X+half, tile.Y+half)
		if !v.visible(min, max) {
			continue
		}
		v.fillBox(screen, min, max, decorationColor)
	}
}

// DrawActors renders every live actor as a colored box.
func DrawActors(e *ecs.ECS, screen *ebiten.Image) {
	game := getGame(e)
	if game == nil {
		return
	}
	v, ok := getView(e, screen)
	if !ok {
		return
	}

	for _, a := range game.Session.World.Actors() {
		if a.Removed() {
			continue
		}
		c := a.Collider()
		if c == nil {
			continue
		}
		min, max := c.Min(), c.Max()
		if !v.visible(min, max) {
			continue
		}

		switch b := a.Behavior().(type) {
		case *actors.Player:
			clr := playerColor
			if b.Dying() {
				clr = dyingColor
			}
			v.fillBox(screen, min, max, clr)
			drawFacing(screen, v, min, max, b.Facing())
		case *actors.Goomba:
			clr := cfg.Orange
			if b.Dying() {
				clr = cfg.Red
			}
			v.fillBox(screen, min, max, clr)
		case *actors.Block:
			clr, ok := blockColors[b.Frame()]
			if !ok {
				clr = cfg.Brown
			}
			v.fillBox(screen, min, max, clr)
		case *actors.Coin:
			v.fillBox(screen, min, max, cfg.Yellow)
		case *actors.Mushroom:
			v.fillBox(screen, min, max, mushroomColor)
		case *actors.Stone:
			v.fillBox(screen, min, max, stoneColor)
		case *actors.PlayerBullet:
			v.fillBox(screen, min, max, cfg.White)
		case *actors.GasCloud:
			clr := gasColor
			clr.A = uint8(float64(clr.A) * b.Opacity())
			v.fillBox(screen, min, max, clr)
		case *actors.EndPhaseTrigger:
			v.fillBox(screen, min, max, goalColor)
		}
	}
}

// drawFacing marks the side the player is looking at.
func drawFacing(screen *ebiten.Image, v view, min, max gamemath.Vec2, facing float64) {
	const eye = 4.0
	x := max.X - eye
	if facing < 0 {
		x = min.X
	}
	y := min.Y + eye
	v.fillBox(screen, gamemath.V(x, y), gamemath.V(x+eye, y+eye), cfg.Blue)
}

// layerColors is shared with the debug overlay.
var layerColors = map[engine.Layer]color.RGBA{
	engine.LayerPlayer:           cfg.Green,
	engine.LayerEnemy:            cfg.Red,
	engine.LayerHazard:           cfg.Magenta,
	engine.LayerBlocks:           cfg.White,
	engine.LayerCollectable:      cfg.Yellow,
	engine.LayerPlayerProjectile: cfg.LightGreen,
	engine.LayerEnemyProjectile:  cfg.Orange,
	engine.LayerDestructible:     cfg.Purple,
}
