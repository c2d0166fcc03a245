package mediator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMediatorRelaysToAllOtherMembers(t *testing.T) {
	var buf strings.Builder
	party := NewParty(&buf)
	knight := NewMember("knight")
	rogue := NewMember("rogue")
	wizard := NewMember("wizard")
	party.AddMember(knight)
	party.AddMember(rogue)
	party.AddMember(wizard)

	rogue.Act(ActionFoundGold)
	want := "knight: rogue found gold, I get a share\n" +
		"wizard: rogue found gold, I get a share\n"
	assert.Equal(t, want, buf.String())
}

func TestSenderIsNotNotified(t *testing.T) {
	var buf strings.Builder
	party := NewParty(&buf)
	knight := NewMember("knight")
	party.AddMember(knight)

	knight.Act(ActionUnderAttack)
	assert.Empty(t, buf.String())
}

func TestMemberWithoutMediatorActsIntoTheVoid(t *testing.T) {
	loner := NewMember("loner")
	assert.NotPanics(t, func() {
		loner.Act(ActionFoundGold)
	})
}
