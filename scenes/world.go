package scenes

import (
	"image/color"
	"sync"

	"github.com/automoto/spaceman/archetypes"
	"github.com/automoto/spaceman/systems"
	"github.com/automoto/spaceman/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// PlatformerScene plays one level of the campaign.
type PlatformerScene struct {
	ecs          *ecs.ECS
	sceneChanger SceneChanger
	campaign     Campaign
	levelIndex   int
	once         sync.Once
}

func NewPlatformerScene(sc SceneChanger, campaign Campaign, levelIndex int) *PlatformerScene {
	return &PlatformerScene{sceneChanger: sc, campaign: campaign, levelIndex: levelIndex}
}

func (ps *PlatformerScene) Update() {
	ps.once.Do(ps.configure)
	ps.ecs.Update()
}

func (ps *PlatformerScene) Draw(screen *ebiten.Image) {
	// Always clear screen to prevent white flashes from OS window background
	screen.Fill(color.Black)

	if ps.ecs == nil {
		return
	}
	ps.ecs.Draw(screen)
}

func (ps *PlatformerScene) onComplete(result systems.LevelResult) {
	next := ps.campaign.next(result.LevelIndex)
	if next == 0 {
		ps.campaign.Logger.Info("campaign cleared, starting over")
	}
	ps.sceneChanger.ChangeScene(NewPlatformerScene(ps.sceneChanger, ps.campaign, next))
}

func (ps *PlatformerScene) onGameOver(result systems.LevelResult) {
	ps.sceneChanger.ChangeScene(NewGameOverScene(ps.sceneChanger, ps.campaign, result))
}

func (ps *PlatformerScene) configure() {
	ecs := ecs.NewECS(donburi.NewWorld())

	// Systems that always run
	ecs.AddSystem(systems.UpdateInput)
	ecs.AddSystem(systems.UpdatePause)

	// Game systems wrapped with pause check
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateWorld))
	ecs.AddSystem(systems.WithPauseCheck(systems.UpdateCamera))
	ecs.AddSystem(systems.NewUpdateLevelState(ps.onComplete, ps.onGameOver))

	// Add renderers
	ecs.AddRenderer(archetypes.Default, systems.DrawLevel)
	ecs.AddRenderer(archetypes.Default, systems.DrawActors)
	ecs.AddRenderer(archetypes.Default, systems.DrawDebug)
	ecs.AddRenderer(archetypes.HUD, systems.DrawHUD)
	ecs.AddRenderer(archetypes.HUD, systems.DrawPause)

	ps.ecs = ecs

	if _, err := factory.CreateGame(ps.ecs, ps.campaign.Levels, ps.levelIndex, ps.campaign.Seed, ps.campaign.Logger); err != nil {
		panic("failed to create level: " + err.Error())
	}
	factory.CreateCamera(ps.ecs, math.Vec2{})
	systems.SnapCamera(ps.ecs)
}
