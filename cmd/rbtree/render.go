package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/segmentio/rbtree/container/rbtree"
	"gopkg.in/yaml.v2"
)

// report is the document printed by the commands.
type report struct {
	Size   int    `yaml:"size"`
	Values []int  `yaml:"values"`
	Root   *shape `yaml:"root,omitempty"`
}

type shape struct {
	Value int    `yaml:"value"`
	Color string `yaml:"color"`
	Left  *shape `yaml:"left,omitempty"`
	Right *shape `yaml:"right,omitempty"`
}

func reportOf(tree *rbtree.Tree[int]) *report {
	values := make([]int, 0, tree.Len())
	for it := tree.Begin(); !it.End(); it = it.Next() {
		values = append(values, it.Value())
	}
	return &report{
		Size:   tree.Len(),
		Values: values,
		Root:   shapeOf(tree.Root()),
	}
}

func shapeOf(it rbtree.Iterator[int]) *shape {
	if it.End() {
		return nil
	}
	return &shape{
		Value: it.Value(),
		Color: it.Color().String(),
		Left:  shapeOf(it.Left()),
		Right: shapeOf(it.Right()),
	}
}

func render(w io.Writer, tree *rbtree.Tree[int], format string) error {
	r := reportOf(tree)

	if format == formatYAML {
		b, err := yaml.Marshal(r)
		if err != nil {
			return errors.Wrap(err, "encoding yaml report")
		}
		_, err = w.Write(b)
		return errors.Wrap(err, "writing report")
	}

	b := new(strings.Builder)
	fmt.Fprintf(b, "size: %d\n", r.Size)
	fmt.Fprintf(b, "values: %s\n", strings.Trim(fmt.Sprint(r.Values), "[]"))
	writeShape(b, r.Root, 0, "")
	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "writing report")
}

// writeShape prints one node per line, children indented under their parent
// with an L or R prefix.
func writeShape(b *strings.Builder, s *shape, depth int, side string) {
	if s == nil {
		return
	}
	fmt.Fprintf(b, "%s%s%d %s\n", strings.Repeat("  ", depth), side, s.Value, s.Color)
	writeShape(b, s.Left, depth+1, "L ")
	writeShape(b, s.Right, depth+1, "R ")
}

func writef(w io.Writer, format string, args ...interface{}) error {
	_, err := fmt.Fprintf(w, format, args...)
	return errors.Wrap(err, "writing output")
}
