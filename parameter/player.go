package parameter

// Movement
const (
	// MoveSpeed is world units per tick along the (normalized) input direction
	MoveSpeed float32 = 0.08

	// RunMultiplier scales MoveSpeed while the run key is held
	RunMultiplier float32 = 2.0

	// MaxTurnPerTick clamps heading change per tick, degrees
	MaxTurnPerTick float32 = 12.0
)

// Player body half extents (hitbox built with vmath.BoxAround)
const (
	PlayerHalfX float32 = 0.35
	PlayerHalfY float32 = 0.9
	PlayerHalfZ float32 = 0.35
)
