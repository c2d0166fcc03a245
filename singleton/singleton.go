package singleton

import (
	"sync"
	"sync/atomic"
)

// Instance is a shared object with the value its first acquirer assigned.
// There is no public constructor; go through a Keeper.
type Instance struct {
	value string
}

func (i *Instance) Value() string {
	return i.value
}

// A Keeper guards the check-and-create step of one shared Instance. The
// first caller's argument wins; all later calls, whatever their argument,
// observe the same instance and the same value.
type Keeper struct {
	once        sync.Once
	instance    *Instance
	constructed atomic.Int64
}

func (k *Keeper) GetInstance(value string) *Instance {
	k.once.Do(func() {
		k.instance = &Instance{value: value}
		k.constructed.Add(1)
	})
	return k.instance
}

// Constructed reports how many instances this Keeper ever built.
func (k *Keeper) Constructed() int64 {
	return k.constructed.Load()
}

var defaultKeeper = &Keeper{}

// Default returns the process-wide Keeper.
func Default() *Keeper {
	return defaultKeeper
}

// GetInstance acquires the process-wide shared Instance.
func GetInstance(value string) *Instance {
	return Default().GetInstance(value)
}
