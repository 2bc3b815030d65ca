package tags

import "github.com/yohamta/donburi"

// Actor kinds. Each engine actor's entity carries one of these so systems can
// iterate a kind without walking the whole actor list.
var (
	Player       = donburi.NewTag().SetName("Player")
	Goomba       = donburi.NewTag().SetName("Goomba")
	Block        = donburi.NewTag().SetName("Block")
	Coin         = donburi.NewTag().SetName("Coin")
	Mushroom     = donburi.NewTag().SetName("Mushroom")
	Hazard       = donburi.NewTag().SetName("Hazard")
	Stone        = donburi.NewTag().SetName("Stone")
	EndPhase     = donburi.NewTag().SetName("EndPhase")
	PlayerBullet = donburi.NewTag().SetName("PlayerBullet")
	Spawner      = donburi.NewTag().SetName("Spawner")
	GasCloud     = donburi.NewTag().SetName("GasCloud")
)

// Scene singletons.
var (
	Camera = donburi.NewTag().SetName("Camera")
	Level  = donburi.NewTag().SetName("Level")
)
