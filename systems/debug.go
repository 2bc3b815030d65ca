package systems

import (
	"fmt"
	"image/color"

	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/fonts"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

var cellColor = color.RGBA{R: 80, G: 80, B: 160, A: 90}

// DrawDebug outlines every collider by layer, optionally the occupied
// spatial index cells, and prints the last frame's counters.
func DrawDebug(e *ecs.ECS, screen *ebiten.Image) {
	debug := GetOrCreateDebug(e)
	if !debug.Enabled {
		return
	}
	game := getGame(e)
	if game == nil {
		return
	}
	v, ok := getView(e, screen)
	if !ok {
		return
	}
	w := game.Session.World

	if debug.ShowCells {
		drawCells(screen, v, w.Spatial().Space())
	}

	for _, c := range w.Colliders() {
		min, max := c.Min(), c.Max()
		if !v.visible(min, max) {
			continue
		}
		clr, ok := layerColors[c.Layer()]
		if !ok {
			clr = cfg.White
		}
		v.strokeBox(screen, min, max, clr)
	}

	stats := w.LastStats()
	lines := []string{
		fmt.Sprintf("frame %d  actors %d  colliders %d", stats.Frame, stats.Actors, stats.Colliders),
		fmt.Sprintf("spawned %d  swept %d", stats.Spawned, stats.Swept),
		fmt.Sprintf("contacts h%d v%d  resolved %d  clamped %d", stats.HorizontalContacts, stats.VerticalContacts, stats.Resolutions, stats.ClampedPushes),
		fmt.Sprintf("triggers %d", stats.TriggerHits),
	}
	if p := game.Session.Player(); p != nil {
		pos := p.Position()
		vel := p.Body().Velocity()
		lines = append(lines,
			fmt.Sprintf("player %.1f,%.1f  vel %.1f,%.1f  ground %v", pos.X, pos.Y, vel.X, vel.Y, p.IsOnGround()),
		)
	}

	face := fonts.Small.Get()
	y := screen.Bounds().Dy() - 16*len(lines)
	for _, line := range lines {
		text.Draw(screen, line, face, 10, y, cfg.White)
		y += 16
	}
}

// drawCells shades every resolv cell that holds at least one collider.
func drawCells(screen *ebiten.Image, v view, space *resolv.Space) {
	cellW, cellH := space.CellWidth, space.CellHeight
	if cellW <= 0 || cellH <= 0 {
		return
	}
	seen := map[[2]int]bool{}
	for _, obj := range space.Objects() {
		x0, y0 := int(obj.X)/cellW, int(obj.Y)/cellH
		x1, y1 := int(obj.X+obj.W)/cellW, int(obj.Y+obj.H)/cellH
		for cy := y0; cy <= y1; cy++ {
			for cx := x0; cx <= x1; cx++ {
				key := [2]int{cx, cy}
				if seen[key] {
					continue
				}
				seen[key] = true
				min := gamemath.V(float64(cx*cellW), float64(cy*cellH))
				max := gamemath.V(min.X+float64(cellW), min.Y+float64(cellH))
				if v.visible(min, max) {
					v.fillBox(screen, min, max, cellColor)
				}
			}
		}
	}
}
