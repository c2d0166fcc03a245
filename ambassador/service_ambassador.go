package ambassador

import (
	"fmt"
	"io"
)

// ServiceAmbassador provides an interface to access RemoteService.
// It adds logging and retry on top, so the client code stays untouched
// when connectivity misbehaves.
type ServiceAmbassador struct {
	RemoteService RemoteService
	W             io.Writer
	Retries       int
}

func (receiver ServiceAmbassador) DoRemoteFunction(value int) (int64, error) {
	retries := receiver.Retries
	if retries < 1 {
		retries = 1
	}
	for attempt := 1; ; attempt++ {
		result, err := receiver.RemoteService.DoRemoteFunction(value)
		if err == nil {
			fmt.Fprintf(receiver.W, "attempt %d: remote call with %d returned %d\n", attempt, value, result)
			return result, nil
		}
		fmt.Fprintf(receiver.W, "attempt %d: %s\n", attempt, err)
		if attempt >= retries {
			return 0, err
		}
	}
}
