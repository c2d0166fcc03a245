package scaffold

import (
	"go/format"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mypattern")
	file := File{Dir: dir, Package: "mypattern"}
	require.NoError(t, file.Gen())

	for _, name := range []string{"scenario.go", "scenario_test.go"} {
		source, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)

		fset := token.NewFileSet()
		parsed, err := parser.ParseFile(fset, name, source, 0)
		require.NoError(t, err, name)
		assert.Equal(t, "mypattern", parsed.Name.Name)

		formatted, err := format.Source(source)
		require.NoError(t, err)
		assert.Equal(t, string(formatted), string(source), "%s is not gofmt-clean", name)
	}
}

func TestGenRefusesToOverwrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "mypattern")
	file := File{Dir: dir, Package: "mypattern"}
	require.NoError(t, file.Gen())

	err := file.Gen()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}
