package systems

import (
	"github.com/automoto/spaceman/components"
	"github.com/automoto/spaceman/config"
	"github.com/automoto/spaceman/shared/gamemath"
	"github.com/yohamta/donburi/ecs"
)

// cameraTarget is where the camera wants to be this frame.
func cameraTarget(game *components.GameData) (gamemath.Vec2, bool) {
	player := game.Session.Player()
	if player == nil {
		return gamemath.Vec2{}, false
	}
	return gamemath.CameraFocus(
		player.Position(),
		gamemath.V(float64(game.Level.Width), float64(game.Level.Height)),
		gamemath.V(float64(config.C.Width), float64(config.C.Height)),
		config.Camera.Zoom, config.Camera.LockToBottom,
	), true
}

func UpdateCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	camera := components.Camera.Get(cameraEntry)

	game := getGame(e)
	if game == nil {
		return
	}
	target, ok := cameraTarget(game)
	if !ok {
		return // no player yet, keep the last view
	}

	// Follow horizontally with some smoothing; the floor lock is exact.
	camera.Position.X += (target.X - camera.Position.X) * config.Camera.FollowSmoothing
	camera.Position.Y += (target.Y - camera.Position.Y) * config.Camera.FollowSmoothing
	if config.Camera.LockToBottom {
		camera.Position.Y = target.Y
	}
}

// SnapCamera moves the camera straight to its target, used when a level
// starts.
func SnapCamera(e *ecs.ECS) {
	cameraEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	game := getGame(e)
	if game == nil {
		return
	}
	if target, ok := cameraTarget(game); ok {
		components.Camera.Get(cameraEntry).Position = target
	}
}
