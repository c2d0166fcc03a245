package chain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newChain() Handler {
	return NewAuthHandler(NewLogHandler(NewDataHandler(nil)))
}

func TestDataRequestHandledByDataHandlerOnly(t *testing.T) {
	var buf strings.Builder
	newChain().Handle(&buf, Request{Kind: KindData, Body: "users"})
	assert.Equal(t, "data handler serves \"users\"\n", buf.String())
}

func TestAuthRequestHandledAtChainHead(t *testing.T) {
	var buf strings.Builder
	newChain().Handle(&buf, Request{Kind: KindAuth, Body: "alice"})
	assert.Equal(t, "auth handler authenticates \"alice\"\n", buf.String())
}

func TestUnrecognizedRequestIsSilentlyDropped(t *testing.T) {
	var buf strings.Builder
	newChain().Handle(&buf, Request{Kind: "unknown", Body: "noise"})
	assert.Empty(t, buf.String())
}

func TestHandlerWithoutNextDropsForeignRequests(t *testing.T) {
	var buf strings.Builder
	NewDataHandler(nil).Handle(&buf, Request{Kind: KindAuth, Body: "alice"})
	assert.Empty(t, buf.String())
}
