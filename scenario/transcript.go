package scenario

import (
	"fmt"
	"io"
	"strings"
)

// A Transcript records the ordered output lines of one Scenario run.
// The recorded lines are the only externally contracted artifact of a run.
// A Transcript optionally tees every completed line to an io.Writer.
type Transcript struct {
	lines []string
	tee   io.Writer
	buf   strings.Builder
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

// NewTeeTranscript returns a Transcript that relays every line to w
// unmodified, in addition to recording it.
func NewTeeTranscript(w io.Writer) *Transcript {
	return &Transcript{tee: w}
}

// Printf records a single line. A trailing newline in the format is not required.
func (t *Transcript) Printf(format string, args ...any) {
	t.append(strings.TrimSuffix(fmt.Sprintf(format, args...), "\n"))
}

// Write implements io.Writer so participants can print through the ordinary
// fmt.Fprintf path without knowing about the Transcript. Partial lines are
// buffered until a newline completes them.
func (t *Transcript) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			t.append(t.buf.String())
			t.buf.Reset()
			continue
		}
		t.buf.WriteByte(b)
	}
	return len(p), nil
}

// Lines returns a copy of the recorded lines in emission order.
func (t *Transcript) Lines() []string {
	lines := make([]string, len(t.lines))
	copy(lines, t.lines)
	return lines
}

func (t *Transcript) append(line string) {
	t.lines = append(t.lines, line)
	if t.tee != nil {
		fmt.Fprintln(t.tee, line)
	}
}
