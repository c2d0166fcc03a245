// Package catalog registers every pattern scenario with the default
// registry, in the order the catalog presents them: creational,
// structural, behavioral, then extras.
package catalog

import (
	"github.com/go-leo/gof/adapter"
	"github.com/go-leo/gof/ambassador"
	"github.com/go-leo/gof/bridge"
	"github.com/go-leo/gof/builder"
	"github.com/go-leo/gof/chain"
	"github.com/go-leo/gof/command"
	"github.com/go-leo/gof/composite"
	"github.com/go-leo/gof/decorator"
	"github.com/go-leo/gof/facade"
	"github.com/go-leo/gof/factory"
	"github.com/go-leo/gof/factory/abstract"
	"github.com/go-leo/gof/flyweight"
	"github.com/go-leo/gof/interpreter"
	"github.com/go-leo/gof/iterator"
	"github.com/go-leo/gof/mediator"
	"github.com/go-leo/gof/memento"
	"github.com/go-leo/gof/observer"
	"github.com/go-leo/gof/prototype"
	"github.com/go-leo/gof/proxy"
	"github.com/go-leo/gof/scenario"
	"github.com/go-leo/gof/singleton"
	"github.com/go-leo/gof/state"
	"github.com/go-leo/gof/strategy"
	"github.com/go-leo/gof/templatemethod"
	"github.com/go-leo/gof/visitor"
)

type entry struct {
	name     string
	scenario func() scenario.Scenario
}

var entries = []entry{
	{"factory-method", factory.Scenario},
	{"abstract-factory", abstract.Scenario},
	{"builder", builder.Scenario},
	{"prototype", prototype.Scenario},
	{"singleton", singleton.Scenario},
	{"adapter", adapter.Scenario},
	{"bridge", bridge.Scenario},
	{"composite", composite.Scenario},
	{"decorator", decorator.Scenario},
	{"facade", facade.Scenario},
	{"flyweight", flyweight.Scenario},
	{"proxy", proxy.Scenario},
	{"chain-of-responsibility", chain.Scenario},
	{"command", command.Scenario},
	{"iterator", iterator.Scenario},
	{"mediator", mediator.Scenario},
	{"memento", memento.Scenario},
	{"observer", observer.Scenario},
	{"state", state.Scenario},
	{"strategy", strategy.Scenario},
	{"template-method", templatemethod.Scenario},
	{"visitor", visitor.Scenario},
	{"interpreter", interpreter.Scenario},
	{"ambassador", ambassador.Scenario},
}

func init() {
	for _, e := range entries {
		scenario.MustRegister(e.name, e.scenario())
	}
}

// Names lists the catalog in presentation order.
func Names() []string {
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.name)
	}
	return names
}
