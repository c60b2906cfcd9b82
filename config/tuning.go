package config

import (
	"io"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/trinket/parameter"
)

// Tuning holds the numbers systems read every tick
// Defaults come from the parameter package; a YAML file may override any subset
type Tuning struct {
	MoveSpeed       float32       `yaml:"move_speed"`
	RunMultiplier   float32       `yaml:"run_multiplier"`
	MaxTurnPerTick  float32       `yaml:"max_turn_per_tick"`
	PickupRange     float32       `yaml:"pickup_range"`
	PlaceOffset     mgl32.Vec3    `yaml:"place_offset"`
	DefaultItemHalf float32       `yaml:"default_item_half"`
	MaxStorageGrid  int           `yaml:"max_storage_grid"`
	TickInterval    time.Duration `yaml:"tick_interval"`
	Camera          CameraTuning  `yaml:"camera"`
}

// CameraTuning bounds the orbit camera
type CameraTuning struct {
	MinDistance float32 `yaml:"min_distance"`
	MaxDistance float32 `yaml:"max_distance"`
	ZoomStep    float32 `yaml:"zoom_step"`
	OrbitStep   float32 `yaml:"orbit_step"`
}

// DefaultTuning returns the compiled-in values
func DefaultTuning() Tuning {
	return Tuning{
		MoveSpeed:       parameter.MoveSpeed,
		RunMultiplier:   parameter.RunMultiplier,
		MaxTurnPerTick:  parameter.MaxTurnPerTick,
		PickupRange:     parameter.PickupRange,
		PlaceOffset:     mgl32.Vec3{parameter.PlaceOffsetX, parameter.PlaceOffsetY, parameter.PlaceOffsetZ},
		DefaultItemHalf: parameter.DefaultItemHalf,
		MaxStorageGrid:  parameter.MaxStorageGrid,
		TickInterval:    parameter.TickInterval,
		Camera: CameraTuning{
			MinDistance: parameter.CameraMinDistance,
			MaxDistance: parameter.CameraMaxDistance,
			ZoomStep:    parameter.CameraZoomStep,
			OrbitStep:   parameter.CameraOrbitStep,
		},
	}
}

// LoadTuning decodes YAML on top of the defaults and validates the result
func LoadTuning(r io.Reader) (Tuning, error) {
	t := DefaultTuning()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&t); err != nil && !errors.Is(err, io.EOF) {
		return Tuning{}, errors.Wrap(err, "decode tuning")
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// Validate rejects values that would break movement or allocation invariants
func (t Tuning) Validate() error {
	switch {
	case t.MoveSpeed <= 0:
		return errors.Errorf("tuning: move_speed must be positive, got %v", t.MoveSpeed)
	case t.RunMultiplier < 1:
		return errors.Errorf("tuning: run_multiplier must be >= 1, got %v", t.RunMultiplier)
	case t.MaxTurnPerTick <= 0 || t.MaxTurnPerTick > 180:
		return errors.Errorf("tuning: max_turn_per_tick must be in (0, 180], got %v", t.MaxTurnPerTick)
	case t.PickupRange <= 0:
		return errors.Errorf("tuning: pickup_range must be positive, got %v", t.PickupRange)
	case t.DefaultItemHalf <= 0:
		return errors.Errorf("tuning: default_item_half must be positive, got %v", t.DefaultItemHalf)
	case t.MaxStorageGrid < 1 || t.MaxStorageGrid > parameter.MaxStorageGrid:
		return errors.Errorf("tuning: max_storage_grid must be in [1, %d], got %d", parameter.MaxStorageGrid, t.MaxStorageGrid)
	case t.TickInterval <= 0:
		return errors.Errorf("tuning: tick_interval must be positive, got %v", t.TickInterval)
	case t.Camera.MinDistance <= 0 || t.Camera.MaxDistance < t.Camera.MinDistance:
		return errors.Errorf("tuning: camera distance bounds invalid: [%v, %v]", t.Camera.MinDistance, t.Camera.MaxDistance)
	}
	return nil
}
