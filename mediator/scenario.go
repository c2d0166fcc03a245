package mediator

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the mediator: party members only talk to the
// party, which relays each event to everyone else.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		party := NewParty(t)
		knight := NewMember("knight")
		rogue := NewMember("rogue")
		wizard := NewMember("wizard")
		party.AddMember(knight)
		party.AddMember(rogue)
		party.AddMember(wizard)

		rogue.Act(ActionFoundGold)
		knight.Act(ActionUnderAttack)
		return nil
	})
}
