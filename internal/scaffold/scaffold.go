// Package scaffold generates the skeleton of a new pattern package: a
// scenario file and its test, ready to fill in.
package scaffold

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"golang.org/x/tools/imports"
)

//go:embed scenario.go.template
var scenarioContent string

//go:embed scenario_test.go.template
var scenarioTestContent string

// File describes one pattern package to generate.
type File struct {
	Dir     string
	Package string
}

// Gen writes scenario.go and scenario_test.go under Dir. It refuses to
// overwrite files that already exist.
func (v File) Gen() error {
	if err := v.gen("scenario", scenarioContent, filepath.Join(v.Dir, "scenario.go")); err != nil {
		return err
	}
	return v.gen("scenario_test", scenarioTestContent, filepath.Join(v.Dir, "scenario_test.go"))
}

func (v File) gen(name, content, absFilename string) error {
	tmpl, err := template.New(name).Parse(content)
	if err != nil {
		return err
	}
	if _, err := os.Stat(absFilename); err == nil {
		return fmt.Errorf("file %s already exists", absFilename)
	} else if !os.IsNotExist(err) {
		return err
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, &v); err != nil {
		return err
	}
	source, err := imports.Process(absFilename, buf.Bytes(), nil)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(v.Dir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(absFilename, source, 0o644)
}
