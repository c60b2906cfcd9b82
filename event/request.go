package event

import (
	"github.com/lixenwraith/trinket/core"
)

// RequestKind is an action the UI/menu layer asks the simulation to attempt
type RequestKind uint8

const (
	RequestPickup RequestKind = iota
	RequestPlace
	RequestExamine
	RequestTalk
)

func (k RequestKind) String() string {
	switch k {
	case RequestPickup:
		return "pickup"
	case RequestPlace:
		return "place"
	case RequestExamine:
		return "examine"
	case RequestTalk:
		return "talk"
	default:
		return "unknown"
	}
}

// Request targets one entity; the acting entity is the one the interaction system was built for
type Request struct {
	Kind   RequestKind
	Target core.Entity
}
