package ambassador

import "errors"

// ErrServiceUnavailable the remote service rejected the call
var ErrServiceUnavailable = errors.New("remote service unavailable")

// RemoteService shared by RemoteServiceImpl and ServiceAmbassador.
type RemoteService interface {
	DoRemoteFunction(value int) (int64, error)
}

// RemoteServiceImpl a remote legacy application.
type RemoteServiceImpl struct{}

func (RemoteServiceImpl) DoRemoteFunction(value int) (int64, error) {
	return int64(-value), nil
}

// FlakyRemoteService rejects its first few calls before recovering, so
// the ambassador has something to retry against.
type FlakyRemoteService struct {
	service  RemoteService
	failures int
}

func NewFlakyRemoteService(service RemoteService, failures int) *FlakyRemoteService {
	return &FlakyRemoteService{service: service, failures: failures}
}

func (receiver *FlakyRemoteService) DoRemoteFunction(value int) (int64, error) {
	if receiver.failures > 0 {
		receiver.failures--
		return 0, ErrServiceUnavailable
	}
	return receiver.service.DoRemoteFunction(value)
}
