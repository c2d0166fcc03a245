package scenario

import "errors"

var (
	// ErrScenarioNil Scenario arg is nil
	ErrScenarioNil = errors.New("scenario is nil")

	// ErrNameEmpty scenario name is empty
	ErrNameEmpty = errors.New("scenario name is empty")

	// ErrRegistered a Scenario is already registered under the name
	ErrRegistered = errors.New("scenario registered")

	// ErrUnregistered no Scenario is registered under the name
	ErrUnregistered = errors.New("scenario unregistered")
)
