package parameter

// System Execution Priorities (lower runs first)
// Ordering is part of the contract: picking fills the hit list consumed by interaction,
// the camera follows the position movement committed this tick
const (
	PriorityPicking     = 10
	PriorityMovement    = 30
	PriorityCamera      = 35
	PriorityInteraction = 40
	PriorityAudio       = 900  // After game logic, reads effects before drain
	PriorityEffect      = 1000 // Last, drains the effect queue
)
