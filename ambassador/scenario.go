package ambassador

import (
	"context"

	"github.com/go-leo/gof/scenario"
)

// Scenario demonstrates the ambassador: the helper retries a flaky remote
// service and logs every attempt on the client's behalf.
func Scenario() scenario.Scenario {
	return scenario.Func(func(ctx context.Context, t *scenario.Transcript) error {
		service := NewFlakyRemoteService(RemoteServiceImpl{}, 2)
		helper := ServiceAmbassador{RemoteService: service, W: t, Retries: 3}
		if _, err := helper.DoRemoteFunction(10); err != nil {
			return err
		}
		if _, err := helper.DoRemoteFunction(-100); err != nil {
			return err
		}
		return nil
	})
}
