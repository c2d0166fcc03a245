package templatemethod

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHitAndRunSequence(t *testing.T) {
	var buf strings.Builder
	NewHalflingThief(HitAndRunMethod{}).Steal(&buf)
	want := "the target has been chosen as old goblin woman\n" +
		"approach the old goblin woman from behind\n" +
		"grab the handbag and run away fast\n"
	assert.Equal(t, want, buf.String())
}

func TestSubtleSequence(t *testing.T) {
	var buf strings.Builder
	NewHalflingThief(SubtleMethod{}).Steal(&buf)
	want := "the target has been chosen as shop keeper\n" +
		"approach the shop keeper with tears running and hug him\n" +
		"while in close contact grab the keeper's wallet\n"
	assert.Equal(t, want, buf.String())
}

type noisyMethod struct{}

func (noisyMethod) PickTarget() string { return "nobody" }

func (noisyMethod) Confuse(w io.Writer, target string) {}

func (noisyMethod) Steal(w io.Writer, target string) {}

func TestFixedStepAlwaysRuns(t *testing.T) {
	// a method cannot suppress the announcement step
	var buf strings.Builder
	NewHalflingThief(noisyMethod{}).Steal(&buf)
	assert.Equal(t, "the target has been chosen as nobody\n", buf.String())
}
