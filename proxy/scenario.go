package proxy

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the proxy: a role check runs before every entry,
// and only an allowed call makes the real tower exist.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		tower := NewWizardTowerProxy()
		tower.Enter(t, Wizard{Name: "Mickey", Role: RoleApprentice})
		t.Printf("tower created: %t", tower.TowerCreated())
		tower.Enter(t, Wizard{Name: "Gandalf", Role: RoleWizard})
		tower.Enter(t, Wizard{Name: "Saruman", Role: RoleWizard})
		t.Printf("tower created: %t", tower.TowerCreated())
		return nil
	})
}
