package config

import "image/color"

// PhysicsConfig contains the constants of the rigid body integrator and the
// AABB resolver.
type PhysicsConfig struct {
	// Integration
	Gravity           float64 `yaml:"gravity"`
	MaxSpeedX         float64 `yaml:"max_speed_x"`
	MaxSpeedY         float64 `yaml:"max_speed_y"`
	NearZeroSpeed     float64 `yaml:"near_zero_speed"`    // Horizontal speed snapped to zero below this
	FrictionThreshold float64 `yaml:"friction_threshold"` // Friction only applies above this speed
	MaxDeltaTime      float64 `yaml:"max_delta_time"`     // Frame delta is clamped to this (seconds)
	TargetFPS         int     `yaml:"target_fps"`

	// Collision
	TileSize           float64 `yaml:"tile_size"`
	FallingBias        float64 `yaml:"falling_bias"` // Vertical preference while falling onto a surface
	MaxPushOut         float64 `yaml:"max_push_out"` // Largest correction applied in one resolution
	DefaultUpdateOrder int     `yaml:"default_update_order"`
	OnGroundEpsilon    float64 `yaml:"on_ground_epsilon"`

	// Spatial index cell size (pixels)
	CellSize int `yaml:"cell_size"`
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveForce       float64 `yaml:"move_force"`
	RunMultiplier   float64 `yaml:"run_multiplier"`
	JumpImpulse     float64 `yaml:"jump_impulse"`
	DoubleJumpScale float64 `yaml:"double_jump_scale"`
	StompBounce     float64 `yaml:"stomp_bounce"` // Fraction of the jump impulse applied after a stomp
	MaxJumps        int     `yaml:"max_jumps"`

	// Physics
	Mass     float64 `yaml:"mass"`
	Friction float64 `yaml:"friction"`

	// Dimensions, in tiles
	ColliderWidth  float64 `yaml:"collider_width"`
	ColliderHeight float64 `yaml:"collider_height"`
	CrouchHeight   float64 `yaml:"crouch_height"` // Fraction of the standing height

	// Shooting
	ShootCooldown        float64 `yaml:"shoot_cooldown"`
	PoweredShootCooldown float64 `yaml:"powered_shoot_cooldown"`
	MuzzleOffset         float64 `yaml:"muzzle_offset"`

	// Death
	DeathTime float64 `yaml:"death_time"`
	Immortal  bool    `yaml:"immortal"`
}

// EnemyConfig contains configuration for walking enemies
type EnemyConfig struct {
	ForwardSpeed    float64 `yaml:"forward_speed"`
	DeathTime       float64 `yaml:"death_time"`
	KnockOffSpeedX  float64 `yaml:"knock_off_speed_x"`
	KnockOffSpeedY  float64 `yaml:"knock_off_speed_y"`
	SpawnDistance   float64 `yaml:"spawn_distance"`
	StompTolerance  float64 `yaml:"stomp_tolerance"` // Vertical slack when a bumped block looks for enemies on top
	FallOutOfBounds float64 `yaml:"fall_out_of_bounds"`
}

// ItemConfig contains configuration for blocks, coins, mushrooms and bullets
type ItemConfig struct {
	BlockBumpSpeed    float64 `yaml:"block_bump_speed"`
	BlockBumpHeight   float64 `yaml:"block_bump_height"`
	CoinTravelSpeed   float64 `yaml:"coin_travel_speed"`
	CoinRiseTiles     float64 `yaml:"coin_rise_tiles"`
	CoinLifeSpan      float64 `yaml:"coin_life_span"`
	MushroomSpeed     float64 `yaml:"mushroom_speed"`
	MushroomRiseSpeed float64 `yaml:"mushroom_rise_speed"`
	BulletSpeed       float64 `yaml:"bullet_speed"`
	BulletLifeTime    float64 `yaml:"bullet_life_time"`
	BulletMass        float64 `yaml:"bullet_mass"`
	BulletWidth       float64 `yaml:"bullet_width"`
	BulletHeight      float64 `yaml:"bullet_height"`
}

// GasConfig contains configuration for gas clouds and exposure
type GasConfig struct {
	Speed     float64 `yaml:"speed"`
	LifeTime  float64 `yaml:"life_time"`
	Size      float64 `yaml:"size"`
	KillAfter float64 `yaml:"kill_after"` // Seconds of continuous exposure before death
	Cooldown  float64 `yaml:"cooldown"`
	Spread    float64 `yaml:"spread"` // Radians
}

// CameraConfig contains camera follow configuration
type CameraConfig struct {
	FollowSmoothing float64 `yaml:"follow_smoothing"` // 1 snaps to the target every frame
	LockToBottom    bool    `yaml:"lock_to_bottom"`   // Keep the level floor at the bottom of the view
	Zoom            float64 `yaml:"zoom"`
}

// LevelConfig contains level loading configuration
type LevelConfig struct {
	Directory string `yaml:"directory"`
	First     string `yaml:"first"`
}

// DebugConfig contains debug overlay configuration
type DebugConfig struct {
	Enabled   bool `yaml:"enabled"`
	ShowCells bool `yaml:"show_cells"`
}

// Config contains screen configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Settings groups every section for YAML overlays.
type Settings struct {
	Screen  *Config        `yaml:"screen"`
	Physics *PhysicsConfig `yaml:"physics"`
	Player  *PlayerConfig  `yaml:"player"`
	Enemy   *EnemyConfig   `yaml:"enemy"`
	Item    *ItemConfig    `yaml:"item"`
	Gas     *GasConfig     `yaml:"gas"`
	Camera  *CameraConfig  `yaml:"camera"`
	Level   *LevelConfig   `yaml:"level"`
	Debug   *DebugConfig   `yaml:"debug"`
}

var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Enemy EnemyConfig
var Item ItemConfig
var Gas GasConfig
var Camera CameraConfig
var Level LevelConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	Brown        = color.RGBA{R: 139, G: 90, B: 43, A: 255}
	Sky          = color.RGBA{R: 40, G: 44, B: 70, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	Reset()
}

// Reset restores every section to its built-in defaults.
func Reset() {
	C = &Config{
		Width:  1280,
		Height: 768,
	}

	Physics = PhysicsConfig{
		Gravity:           2000.0,
		MaxSpeedX:         750.0,
		MaxSpeedY:         750.0,
		NearZeroSpeed:     1.0,
		FrictionThreshold: 0.05,
		MaxDeltaTime:      0.05,
		TargetFPS:         60,

		TileSize:           32.0,
		FallingBias:        0.01,
		MaxPushOut:         32.0,
		DefaultUpdateOrder: 10,
		OnGroundEpsilon:    0.001,

		CellSize: 32,
	}

	Player = PlayerConfig{
		MoveForce:       7000.0,
		RunMultiplier:   1.8,
		JumpImpulse:     -700.0,
		DoubleJumpScale: 0.75,
		StompBounce:     0.5,
		MaxJumps:        2,

		Mass:     1.2,
		Friction: 35.0,

		ColliderWidth:  0.6,
		ColliderHeight: 2.0,
		CrouchHeight:   0.5,

		ShootCooldown:        0.25,
		PoweredShootCooldown: 0.15,
		MuzzleOffset:         40.0,

		DeathTime: 2.0,
	}

	Enemy = EnemyConfig{
		ForwardSpeed:    100.0,
		DeathTime:       0.5,
		KnockOffSpeedX:  150.0,
		KnockOffSpeedY:  -350.0,
		SpawnDistance:   600.0,
		StompTolerance:  5.0,
		FallOutOfBounds: 32.0,
	}

	Item = ItemConfig{
		BlockBumpSpeed:    -200.0,
		BlockBumpHeight:   8.0,
		CoinTravelSpeed:   250.0,
		CoinRiseTiles:     2.0,
		CoinLifeSpan:      0.05,
		MushroomSpeed:     200.0,
		MushroomRiseSpeed: 40.0,
		BulletSpeed:       1600.0,
		BulletLifeTime:    1.2,
		BulletMass:        0.2,
		BulletWidth:       32.0,
		BulletHeight:      12.0,
	}

	Gas = GasConfig{
		Speed:     400.0,
		LifeTime:  1.0,
		Size:      20.0,
		KillAfter: 1.0,
		Cooldown:  0.05,
		Spread:    0.26,
	}

	Camera = CameraConfig{
		FollowSmoothing: 0.2,
		LockToBottom:    true,
		Zoom:            1.6,
	}

	Level = LevelConfig{
		First: "level1",
	}

	Debug = DebugConfig{}
}
