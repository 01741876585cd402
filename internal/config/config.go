// Package config provides YAML/TOML configuration loading for the
// simulation constants. Values are fixed once a simulation is built.
package config

import (
	"errors"
	"fmt"
)

// Config contains every tunable constant of the simulation.
type Config struct {
	Physics   Physics   `yaml:"physics" toml:"physics"`
	Actor     Actor     `yaml:"actor" toml:"actor"`
	Obstacles Obstacles `yaml:"obstacles" toml:"obstacles"`
	Bounds    Bounds    `yaml:"bounds" toml:"bounds"`
	Timing    Timing    `yaml:"timing" toml:"timing"`
}

// Physics defines the kinematic constants. World space is y-up.
type Physics struct {
	Gravity     float64 `yaml:"gravity" toml:"gravity"`           // Vertical acceleration, negative pulls down
	FlapSpeed   float64 `yaml:"flap_speed" toml:"flap_speed"`     // Vertical velocity set by a flap
	ScrollSpeed float64 `yaml:"scroll_speed" toml:"scroll_speed"` // Obstacle horizontal velocity, negative
}

// Actor defines the player-controlled entity.
type Actor struct {
	OriginX float64 `yaml:"origin_x" toml:"origin_x"`
	OriginY float64 `yaml:"origin_y" toml:"origin_y"`
	HalfW   float64 `yaml:"half_width" toml:"half_width"`
	HalfH   float64 `yaml:"half_height" toml:"half_height"`
}

// Obstacles defines obstacle geometry and the spawn schedule.
type Obstacles struct {
	Width         float64 `yaml:"width" toml:"width"`                   // Visual width
	Height        float64 `yaml:"height" toml:"height"`                 // Visual height
	Gap           float64 `yaml:"gap" toml:"gap"`                       // Vertical opening between a pair
	GapCenterMin  float64 `yaml:"gap_center_min" toml:"gap_center_min"` // Lowest gap centre
	GapCenterMax  float64 `yaml:"gap_center_max" toml:"gap_center_max"` // Highest gap centre
	SpawnX        float64 `yaml:"spawn_x" toml:"spawn_x"`
	Lifetime      float64 `yaml:"lifetime" toml:"lifetime"`             // Seconds before removal
	ColliderInset float64 `yaml:"collider_inset" toml:"collider_inset"` // Shrink of collider vs visual half-size
	SpawnInterval float64 `yaml:"spawn_interval" toml:"spawn_interval"` // Seconds between pairs
}

// Bounds defines the play area. Top and Bottom end the run; Left and Right
// only frame the viewport.
type Bounds struct {
	Top    float64 `yaml:"top" toml:"top"`
	Bottom float64 `yaml:"bottom" toml:"bottom"`
	Left   float64 `yaml:"left" toml:"left"`
	Right  float64 `yaml:"right" toml:"right"`
}

// Timing controls how wall-clock deltas feed the simulation.
type Timing struct {
	MaxDT float64 `yaml:"max_dt" toml:"max_dt"` // Largest dt applied in one tick, 0 disables the cap
}

// ColliderHalf returns the obstacle collider half-extents: the visual
// half-size shrunk by the inset on each axis.
func (o Obstacles) ColliderHalf() (float64, float64) {
	return o.Width/2 - o.ColliderInset, o.Height/2 - o.ColliderInset
}

// Validate checks that the configuration describes a playable world.
func (c Config) Validate() error {
	var errs []error

	if c.Physics.Gravity >= 0 {
		errs = append(errs, fmt.Errorf("gravity must be negative, got %g", c.Physics.Gravity))
	}
	if c.Physics.FlapSpeed <= 0 {
		errs = append(errs, fmt.Errorf("flap_speed must be positive, got %g", c.Physics.FlapSpeed))
	}
	if c.Physics.ScrollSpeed >= 0 {
		errs = append(errs, fmt.Errorf("scroll_speed must be negative, got %g", c.Physics.ScrollSpeed))
	}
	if c.Actor.HalfW <= 0 || c.Actor.HalfH <= 0 {
		errs = append(errs, fmt.Errorf("actor half extents must be positive, got (%g, %g)", c.Actor.HalfW, c.Actor.HalfH))
	}
	if c.Obstacles.Width <= 0 || c.Obstacles.Height <= 0 {
		errs = append(errs, fmt.Errorf("obstacle size must be positive, got (%g, %g)", c.Obstacles.Width, c.Obstacles.Height))
	}
	if hw, hh := c.Obstacles.ColliderHalf(); hw <= 0 || hh <= 0 {
		errs = append(errs, fmt.Errorf("collider inset %g leaves no obstacle collider", c.Obstacles.ColliderInset))
	}
	if c.Obstacles.Gap <= 0 {
		errs = append(errs, fmt.Errorf("gap must be positive, got %g", c.Obstacles.Gap))
	}
	if c.Obstacles.GapCenterMin > c.Obstacles.GapCenterMax {
		errs = append(errs, fmt.Errorf("gap_center_min %g exceeds gap_center_max %g", c.Obstacles.GapCenterMin, c.Obstacles.GapCenterMax))
	}
	if c.Obstacles.Lifetime <= 0 {
		errs = append(errs, fmt.Errorf("lifetime must be positive, got %g", c.Obstacles.Lifetime))
	}
	if c.Obstacles.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("spawn_interval must be positive, got %g", c.Obstacles.SpawnInterval))
	}
	if c.Bounds.Top <= c.Bounds.Bottom {
		errs = append(errs, fmt.Errorf("bounds top %g must be above bottom %g", c.Bounds.Top, c.Bounds.Bottom))
	}
	if c.Bounds.Right <= c.Bounds.Left {
		errs = append(errs, fmt.Errorf("bounds right %g must be right of left %g", c.Bounds.Right, c.Bounds.Left))
	}
	if c.Timing.MaxDT < 0 {
		errs = append(errs, fmt.Errorf("max_dt must not be negative, got %g", c.Timing.MaxDT))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
