package component

// NameComponent is the short display label
type NameComponent struct {
	Name string
}

// DescriptionComponent is examine text, passed to the presentation layer unchanged
type DescriptionComponent struct {
	Text string
}

// DialogueComponent holds conversation lines; Index is the next line to speak
type DialogueComponent struct {
	Lines []string
	Index int
}

// HealthComponent is a plain attribute bag with no rules attached in the simulation core
type HealthComponent struct {
	Current int
	Max     int
}
