package terminal

import (
	"fmt"

	"github.com/lixenwraith/trinket/core"
	"github.com/lixenwraith/trinket/event"
)

// FormatEffect renders one effect as a log line; name resolves entity display names
func FormatEffect(e event.Effect, name func(core.Entity) string) string {
	subject := name(e.Subject)
	switch e.Kind {
	case event.EffectPickup:
		switch e.Outcome {
		case event.OutcomeOK:
			return fmt.Sprintf("You pick up the %s.", subject)
		case event.OutcomeNotStorable:
			return fmt.Sprintf("The %s can't be carried.", subject)
		case event.OutcomeOutOfRange:
			return fmt.Sprintf("The %s is out of reach.", subject)
		case event.OutcomeNoInventorySpace:
			return fmt.Sprintf("No room in your pack for the %s.", subject)
		}
	case event.EffectPlace:
		switch e.Outcome {
		case event.OutcomeOK:
			return fmt.Sprintf("You set down the %s.", subject)
		case event.OutcomeNotInInventory:
			return fmt.Sprintf("The %s is not in your pack.", subject)
		case event.OutcomeNonPlaceable:
			return fmt.Sprintf("There is no ground here for the %s.", subject)
		case event.OutcomeCollidingItem:
			return fmt.Sprintf("Something is in the way of the %s.", subject)
		}
	case event.EffectBump:
		return "Bump."
	case event.EffectExamine:
		return e.Text
	case event.EffectDialogue:
		return fmt.Sprintf("%s: %s", subject, e.Text)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Outcome)
}
