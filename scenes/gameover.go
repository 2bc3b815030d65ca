package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/spaceman/components"
	"github.com/automoto/spaceman/archetypes"
	"github.com/automoto/spaceman/systems"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// GameOverScene displays the game over screen
type GameOverScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     Campaign
	result       systems.LevelResult
	once         sync.Once
}

// NewGameOverScene creates a new game over scene
func NewGameOverScene(sc SceneChanger, campaign Campaign, result systems.LevelResult) *GameOverScene {
	return &GameOverScene{sceneChanger: sc, campaign: campaign, result: result}
}

func (gs *GameOverScene) Update() {
	gs.once.Do(gs.configure)
	gs.ecs.Update()
}

func (gs *GameOverScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if gs.ecs == nil {
		return
	}
	gs.ecs.Draw(screen)
}

func (gs *GameOverScene) configure() {
	gs.ecs = ecs.NewECS(donburi.NewWorld())

	retry := func(levelIndex int) {
		gs.sceneChanger.ChangeScene(NewPlatformerScene(gs.sceneChanger, gs.campaign, levelIndex))
	}

	// Minimal systems for game over
	gs.ecs.AddSystem(systems.UpdateInput)
	gs.ecs.AddSystem(systems.NewUpdateGameOver(retry))

	// Renderer
	gs.ecs.AddRenderer(archetypes.Default, systems.DrawGameOver)

	*systems.GetOrCreateGameOver(gs.ecs) = components.GameOverData{
		KilledBy:   gs.result.KilledBy,
		Coins:      gs.result.Coins,
		LevelIndex: gs.result.LevelIndex,
	}
}
