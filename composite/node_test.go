package composite

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrintIsDepthFirstInInsertionOrder(t *testing.T) {
	root := NewDirectory("root")
	src := NewDirectory("src")
	assert.NoError(t, root.Add(NewFile("README.md")))
	assert.NoError(t, root.Add(src))
	assert.NoError(t, src.Add(NewFile("main.go")))
	assert.NoError(t, src.Add(NewFile("util.go")))
	assert.NoError(t, root.Add(NewFile("go.mod")))

	var buf strings.Builder
	root.Print(&buf, 0)
	want := "root/\n" +
		"  README.md\n" +
		"  src/\n" +
		"    main.go\n" +
		"    util.go\n" +
		"  go.mod\n"
	assert.Equal(t, want, buf.String())
}

func TestLeafRejectsChildOperations(t *testing.T) {
	file := NewFile("a.txt")
	assert.ErrorIs(t, file.Add(NewFile("b.txt")), ErrUnsupportedOperation)
	assert.ErrorIs(t, file.Remove(NewFile("b.txt")), ErrUnsupportedOperation)
}

func TestDirectoryRemove(t *testing.T) {
	root := NewDirectory("root")
	a := NewFile("a.txt")
	b := NewFile("b.txt")
	assert.NoError(t, root.Add(a))
	assert.NoError(t, root.Add(b))
	assert.NoError(t, root.Remove(a))

	var buf strings.Builder
	root.Print(&buf, 0)
	assert.Equal(t, "root/\n  b.txt\n", buf.String())

	// removing an absent child is not an error
	assert.NoError(t, root.Remove(a))
}
