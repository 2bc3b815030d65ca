package engine

import cfg "github.com/automoto/spaceman/config"

// Settings are the numeric constants a World runs with.
type Settings struct {
	Gravity           float64
	MaxSpeedX         float64
	MaxSpeedY         float64
	NearZeroSpeed     float64
	FrictionThreshold float64
	MaxDeltaTime      float64
	OnGroundEpsilon   float64

	TileSize           float64
	FallingBias        float64
	MaxPushOut         float64
	DefaultUpdateOrder int
	CellSize           int
}

// DefaultSettings snapshots the current physics configuration.
func DefaultSettings() Settings {
	p := cfg.Physics
	return Settings{
		Gravity:            p.Gravity,
		MaxSpeedX:          p.MaxSpeedX,
		MaxSpeedY:          p.MaxSpeedY,
		NearZeroSpeed:      p.NearZeroSpeed,
		FrictionThreshold:  p.FrictionThreshold,
		MaxDeltaTime:       p.MaxDeltaTime,
		OnGroundEpsilon:    p.OnGroundEpsilon,
		TileSize:           p.TileSize,
		FallingBias:        p.FallingBias,
		MaxPushOut:         p.MaxPushOut,
		DefaultUpdateOrder: p.DefaultUpdateOrder,
		CellSize:           p.CellSize,
	}
}

// maxTravel is the furthest a body can move along one axis in one frame.
func (s Settings) maxTravel() float64 {
	m := s.MaxSpeedX
	if s.MaxSpeedY > m {
		m = s.MaxSpeedY
	}
	return m * s.MaxDeltaTime
}
