package mediator

import (
	"fmt"
	"io"
)

type Action string

const (
	ActionFoundGold   Action = "found gold"
	ActionUnderAttack Action = "under attack"
)

// Mediator is the single notify entry point. Members hold a reference to
// the mediator only, never to each other.
type Mediator interface {
	Notify(sender *Member, action Action)
}

type Member struct {
	Name     string
	mediator Mediator
}

func NewMember(name string) *Member {
	return &Member{Name: name}
}

// Act reports the member's action to the party. Without a mediator the
// action goes nowhere.
func (m *Member) Act(action Action) {
	if m.mediator == nil {
		return
	}
	m.mediator.Notify(m, action)
}

func (m *Member) Say(w io.Writer, message string) {
	fmt.Fprintf(w, "%s: %s\n", m.Name, message)
}

// Party is the concrete mediator. It inspects who acted and what happened
// to decide which other members to invoke.
type Party struct {
	w       io.Writer
	members []*Member
}

func NewParty(w io.Writer) *Party {
	return &Party{w: w}
}

func (p *Party) AddMember(member *Member) {
	member.mediator = p
	p.members = append(p.members, member)
}

func (p *Party) Notify(sender *Member, action Action) {
	for _, member := range p.members {
		if member == sender {
			continue
		}
		switch action {
		case ActionFoundGold:
			member.Say(p.w, fmt.Sprintf("%s found gold, I get a share", sender.Name))
		case ActionUnderAttack:
			member.Say(p.w, fmt.Sprintf("%s is under attack, moving to help", sender.Name))
		}
	}
}
