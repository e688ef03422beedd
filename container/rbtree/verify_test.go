package rbtree

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// verify checks the structure of the tree: parent links, ordering of the
// elements, and the element count.
func (t *Tree[T]) verify() error {
	if t.root != nil && t.root.parent != nil {
		return errors.New("root has a parent")
	}
	size, err := t.verifyNode(t.root)
	if err != nil {
		return err
	}
	if size != t.count {
		return errors.Errorf("wrong element count: got=%d want=%d", t.count, size)
	}
	return nil
}

func (t *Tree[T]) verifyNode(n *node[T]) (int, error) {
	if n == nil {
		return 0, nil
	}
	if n.color != Red && n.color != Black {
		return 0, errors.Errorf("node %v has invalid color %v", n.value, n.color)
	}
	if n.left != nil {
		if n.left.parent != n {
			return 0, errors.Errorf("left child %v of %v does not link back to its parent", n.left.value, n.value)
		}
		if max := rightmost(n.left); t.cmp(n.value, max.value) < 0 {
			return 0, errors.Errorf("left subtree of %v contains greater value %v", n.value, max.value)
		}
	}
	if n.right != nil {
		if n.right.parent != n {
			return 0, errors.Errorf("right child %v of %v does not link back to its parent", n.right.value, n.value)
		}
		if min := leftmost(n.right); t.cmp(min.value, n.value) < 0 {
			return 0, errors.Errorf("right subtree of %v contains smaller value %v", n.value, min.value)
		}
	}
	left, err := t.verifyNode(n.left)
	if err != nil {
		return 0, err
	}
	right, err := t.verifyNode(n.right)
	if err != nil {
		return 0, err
	}
	return left + right + 1, nil
}

// verifyRedBlack checks the coloring rules of red-black trees, on top of the
// checks done by verify.
func (t *Tree[T]) verifyRedBlack() error {
	if err := t.verify(); err != nil {
		return err
	}
	if t.root != nil && t.root.color != Black {
		return errors.Errorf("root %v is not black", t.root.value)
	}
	_, err := blackHeight(t.root)
	return err
}

func blackHeight[T any](n *node[T]) (int, error) {
	if n == nil {
		return 1, nil
	}
	if n.color == Red {
		if (n.left != nil && n.left.color == Red) || (n.right != nil && n.right.color == Red) {
			return 0, errors.Errorf("red node %v has a red child", n.value)
		}
	}
	left, err := blackHeight(n.left)
	if err != nil {
		return 0, err
	}
	right, err := blackHeight(n.right)
	if err != nil {
		return 0, err
	}
	if left != right {
		return 0, errors.Errorf("black height differs under %v: left=%d right=%d", n.value, left, right)
	}
	if n.color == Black {
		left++
	}
	return left, nil
}

// dump renders the tree in pre-order, one node per line, for failure messages.
func (t *Tree[T]) dump() string {
	b := new(strings.Builder)
	var walk func(*node[T], string)
	walk = func(n *node[T], tab string) {
		if n != nil {
			fmt.Fprintln(b, tab, n.value, n.color)
			walk(n.left, ":"+tab)
			walk(n.right, ":"+tab)
		}
	}
	walk(t.root, "")
	return b.String()
}
