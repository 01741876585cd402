package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Physics: Physics{
			Gravity:     -350,
			FlapSpeed:   150,
			ScrollSpeed: -100,
		},
		Actor: Actor{
			OriginX: 0,
			OriginY: 0,
			HalfW:   16,
			HalfH:   16,
		},
		Obstacles: Obstacles{
			Width:         50,
			Height:        600,
			Gap:           100,
			GapCenterMin:  -130,
			GapCenterMax:  130,
			SpawnX:        500,
			Lifetime:      10,
			ColliderInset: 5,
			SpawnInterval: 2.0,
		},
		Bounds: Bounds{
			Top:    300,
			Bottom: -300,
			Left:   -400,
			Right:  400,
		},
		Timing: Timing{
			MaxDT: 0.1,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
