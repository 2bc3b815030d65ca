package systems

import (
	"fmt"

	cfg "github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text" //nolint:staticcheck // TODO: migrate to text/v2
	"github.com/yohamta/donburi/ecs"
)

const hudMargin = 10

// DrawHUD renders the level title, coin count and clock across the top of
// the screen.
func DrawHUD(e *ecs.ECS, screen *ebiten.Image) {
	game := getGame(e)
	if game == nil {
		return
	}
	width := screen.Bounds().Dx()

	title := game.Level.Title
	if title == "" {
		title = game.Level.Name
	}
	bold := fonts.Bold.Get()
	text.Draw(screen, title, bold, hudMargin, hudMargin+20, cfg.White)

	coins := fmt.Sprintf("COINS %02d", game.Session.Coins())
	text.Draw(screen, coins, bold, width/2-len(coins)*6, hudMargin+20, cfg.Yellow)

	clock := formatClock(game.Elapsed)
	if best, ok := bestTime(game.Level.Name); ok {
		clock += "  BEST " + formatClock(best)
	}
	text.Draw(screen, clock, bold, width-hudMargin-len(clock)*11, hudMargin+20, cfg.White)

	fps := fmt.Sprintf("FPS %.0f", ebiten.ActualFPS())
	text.Draw(screen, fps, fonts.Small.Get(), width-hudMargin-len(fps)*7, hudMargin+40, cfg.White)
}

// formatClock renders seconds as m:ss.t
func formatClock(seconds float64) string {
	if seconds < 0 {
		seconds = 0
	}
	m := int(seconds) / 60
	s := seconds - float64(m*60)
	return fmt.Sprintf("%d:%04.1f", m, s)
}

func bestTime(level string) (float64, bool) {
	if progressBook == nil {
		return 0, false
	}
	return progressBook.BestTime(level)
}
