package systems

import (
	"fmt"

	"github.com/automoto/spaceman/archetypes"
	"github.com/automoto/spaceman/components"
	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// Input is ignored for this many ticks so a held jump does not skip the
// screen.
const gameOverGrace = 30

// NewUpdateGameOver creates an UpdateGameOver system that calls retry when
// the player confirms.
func NewUpdateGameOver(retry func(levelIndex int)) ecs.System {
	ticks := 0
	return func(e *ecs.ECS) {
		gameOver := GetOrCreateGameOver(e)
		input := getOrCreateInput(e)

		ticks++
		if ticks < gameOverGrace {
			return
		}
		if input.JustPressed(cfg.ActionConfirm) || input.JustPressed(cfg.ActionJump) {
			retry(gameOver.LevelIndex)
		}
	}
}

// DrawGameOver renders the game over screen
func DrawGameOver(e *ecs.ECS, screen *ebiten.Image) {
	gameOver := GetOrCreateGameOver(e)

	width := float64(screen.Bounds().Dx())
	height := float64(screen.Bounds().Dy())

	vector.FillRect(
		screen,
		0, 0,
		float32(width), float32(height),
		cfg.BlackOverlay,
		false,
	)

	title := "GAME OVER"
	titleWidth := len(title) * 20 // Approximate width for title font
	titleX := int((width - float64(titleWidth)) / 2)
	text.Draw(screen, title, fonts.Title.Get(), titleX, int(height/3), cfg.Red)

	lines := []string{fmt.Sprintf("Coins: %d", gameOver.Coins)}
	if gameOver.KilledBy != "" {
		lines = append(lines, "Killed by "+gameOver.KilledBy)
	}
	if p := CurrentProgress(); p != nil {
		lines = append(lines, fmt.Sprintf("Banked coins: %d", p.Coins))
	}
	lines = append(lines, "Press Enter to retry")

	face := fonts.Bold.Get()
	y := int(height/3) + 60
	for _, line := range lines {
		x := int((width - float64(len(line)*11)) / 2)
		text.Draw(screen, line, face, x, y, cfg.White)
		y += 32
	}
}

// GetOrCreateGameOver returns the singleton GameOver component, creating if needed.
func GetOrCreateGameOver(e *ecs.ECS) *components.GameOverData {
	if _, ok := components.GameOver.First(e.World); !ok {
		archetypes.GameOver.Spawn(e)
	}
	ent, _ := components.GameOver.First(e.World)
	return components.GameOver.Get(ent)
}
