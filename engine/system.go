package engine

// System is an interface that all systems must implement
type System interface {
	// Name identifies the system in logs
	Name() string
	// Update runs once per tick against the shared frame state
	Update(frame *Frame)
	// Priority orders systems; lower values run first
	Priority() int
}
