package scenario

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintfRecordsLines(t *testing.T) {
	tr := NewTranscript()
	tr.Printf("one")
	tr.Printf("two %d\n", 2)
	assert.Equal(t, []string{"one", "two 2"}, tr.Lines())
}

func TestWriteBuffersPartialLines(t *testing.T) {
	tr := NewTranscript()
	fmt.Fprint(tr, "hel")
	fmt.Fprint(tr, "lo\nwor")
	assert.Equal(t, []string{"hello"}, tr.Lines())
	fmt.Fprint(tr, "ld\n")
	assert.Equal(t, []string{"hello", "world"}, tr.Lines())
}

func TestTeeRelaysLinesUnmodified(t *testing.T) {
	var buf strings.Builder
	tr := NewTeeTranscript(&buf)
	tr.Printf("first")
	tr.Printf("second")
	assert.Equal(t, "first\nsecond\n", buf.String())
	assert.Equal(t, []string{"first", "second"}, tr.Lines())
}

func TestLinesReturnsACopy(t *testing.T) {
	tr := NewTranscript()
	tr.Printf("original")
	lines := tr.Lines()
	lines[0] = "mutated"
	assert.Equal(t, []string{"original"}, tr.Lines())
}
