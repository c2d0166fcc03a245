package composite

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-leo/gox/slicex"
)

// Node is the component contract shared by files and directories.
type Node interface {
	Name() string

	// Print writes this node and, depth-first in insertion order, its
	// children, indented by depth.
	Print(w io.Writer, depth int)

	Add(child Node) error

	Remove(child Node) error
}

// File is a leaf. It holds no children and rejects Add and Remove.
type File struct {
	name string
}

func NewFile(name string) *File {
	return &File{name: name}
}

func (f *File) Name() string {
	return f.name
}

func (f *File) Print(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s%s\n", strings.Repeat("  ", depth), f.name)
}

func (f *File) Add(Node) error {
	return ErrUnsupportedOperation
}

func (f *File) Remove(Node) error {
	return ErrUnsupportedOperation
}

// Directory is a container. It fans every operation out to its children.
type Directory struct {
	name     string
	children []Node
}

func NewDirectory(name string) *Directory {
	return &Directory{name: name}
}

func (d *Directory) Name() string {
	return d.name
}

func (d *Directory) Print(w io.Writer, depth int) {
	fmt.Fprintf(w, "%s%s/\n", strings.Repeat("  ", depth), d.name)
	for _, child := range d.children {
		child.Print(w, depth+1)
	}
}

func (d *Directory) Add(child Node) error {
	d.children = append(d.children, child)
	return nil
}

func (d *Directory) Remove(child Node) error {
	indexes := slicex.Indexes(d.children, child)
	if slicex.IsEmpty(indexes) {
		return nil
	}
	d.children = slicex.DeleteAll(d.children, indexes...)
	return nil
}
