package event

// Outcome is the closed result set of pickup and placement
// Failures are expected, user-visible conditions: the operation does not happen and a message is surfaced
type Outcome uint8

const (
	OutcomeOK Outcome = iota
	OutcomeNotStorable
	OutcomeOutOfRange
	OutcomeNoInventorySpace
	OutcomeNotInInventory
	OutcomeNonPlaceable
	OutcomeCollidingItem
	outcomeCount
)

var outcomeNames = [outcomeCount]string{
	OutcomeOK:               "OK",
	OutcomeNotStorable:      "NotStorable",
	OutcomeOutOfRange:       "OutOfRange",
	OutcomeNoInventorySpace: "NoInventorySpace",
	OutcomeNotInInventory:   "NotInInventory",
	OutcomeNonPlaceable:     "NonPlaceable",
	OutcomeCollidingItem:    "CollidingItem",
}

// String returns the tag name; formatting for display belongs to the presentation layer
func (o Outcome) String() string {
	if o >= outcomeCount {
		return "Unknown"
	}
	return outcomeNames[o]
}

// OK reports success
func (o Outcome) OK() bool {
	return o == OutcomeOK
}
