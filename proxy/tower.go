package proxy

import (
	"fmt"
	"io"
)

type Role string

const (
	RoleWizard     Role = "wizard"
	RoleApprentice Role = "apprentice"
)

type Wizard struct {
	Name string
	Role Role
}

// WizardTower is the subject contract shared by the real tower and its proxy.
type WizardTower interface {
	Enter(w io.Writer, wizard Wizard)
}

// IvoryTower is the real subject. The proxy creates it lazily.
type IvoryTower struct{}

func (IvoryTower) Enter(w io.Writer, wizard Wizard) {
	fmt.Fprintf(w, "%s enters the tower\n", wizard.Name)
}

// WizardTowerProxy checks the caller's role before delegating. A denied
// call never constructs or touches the real tower.
type WizardTowerProxy struct {
	tower *IvoryTower
}

func NewWizardTowerProxy() *WizardTowerProxy {
	return &WizardTowerProxy{}
}

func (p *WizardTowerProxy) Enter(w io.Writer, wizard Wizard) {
	if wizard.Role != RoleWizard {
		fmt.Fprintf(w, "%s: access denied\n", wizard.Name)
		return
	}
	if p.tower == nil {
		p.tower = &IvoryTower{}
	}
	p.tower.Enter(w, wizard)
}

// TowerCreated reports whether the real subject exists yet.
func (p *WizardTowerProxy) TowerCreated() bool {
	return p.tower != nil
}
