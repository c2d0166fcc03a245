package command

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvokerRunsCurrentCommand(t *testing.T) {
	var buf strings.Builder
	light := &Light{Name: "kitchen"}
	remote := &RemoteControl{}

	remote.SetCommand(NewTurnOnCommand(light, &buf))
	assert.NoError(t, remote.PressButton(context.Background()))
	assert.Equal(t, "kitchen light is on\n", buf.String())
}

func TestInvokerReplacesCommand(t *testing.T) {
	var buf strings.Builder
	light := &Light{Name: "hall"}
	remote := &RemoteControl{}

	remote.SetCommand(NewTurnOnCommand(light, &buf))
	remote.SetCommand(NewTurnOffCommand(light, &buf))
	assert.NoError(t, remote.PressButton(context.Background()))
	assert.Equal(t, "hall light is off\n", buf.String())
}

func TestInvokerWithoutCommand(t *testing.T) {
	remote := &RemoteControl{}
	assert.ErrorIs(t, remote.PressButton(context.Background()), ErrNotCommand)
}

func TestCommandFunc(t *testing.T) {
	called := false
	cmd := CommandFunc(func(ctx context.Context) error {
		called = true
		return nil
	})
	assert.NoError(t, cmd.Execute(context.Background()))
	assert.True(t, called)
}
