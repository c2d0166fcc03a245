package facade

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStartNewDayOrder(t *testing.T) {
	var buf strings.Builder
	NewDwarvenGoldmineFacade().StartNewDay(&buf)
	want := "gold digger wakes up\n" +
		"cart operator wakes up\n" +
		"tunnel digger wakes up\n" +
		"gold digger digs for gold\n" +
		"cart operator moves gold chunks out of the mine\n" +
		"tunnel digger creates another promising tunnel\n"
	assert.Equal(t, want, buf.String())
}

func TestEndDayOrder(t *testing.T) {
	var buf strings.Builder
	NewDwarvenGoldmineFacade().EndDay(&buf)
	want := "gold digger goes home\n" +
		"cart operator goes home\n" +
		"tunnel digger goes home\n"
	assert.Equal(t, want, buf.String())
}
