package rbtree

import "strconv"

// Color is the color tag carried by each node of a red-black tree.
type Color uint8

const (
	Red Color = iota
	Black
)

func (c Color) String() string {
	switch c {
	case Red:
		return "red"
	case Black:
		return "black"
	default:
		return "Color(" + strconv.Itoa(int(c)) + ")"
	}
}

// node is the unit of storage of a Tree. A node owns its children, the parent
// field is a back reference used for traversal and rebalancing only.
type node[T any] struct {
	left   *node[T]
	right  *node[T]
	parent *node[T]
	value  T
	color  Color
}

// New nodes are red, the insert fixup repaints them when needed.
func newNode[T any](value T) *node[T] {
	return &node[T]{value: value, color: Red}
}

// copyNode returns an independent copy of the subtree rooted at src, with the
// same colors and shape. Values are passed through fn when it is not nil. The
// parent of the returned node is nil.
func copyNode[T any](src *node[T], fn func(T) T) *node[T] {
	if src == nil {
		return nil
	}
	dst := &node[T]{value: src.value, color: src.color}
	if fn != nil {
		dst.value = fn(src.value)
	}
	dst.attachLeft(copyNode(src.left, fn))
	dst.attachRight(copyNode(src.right, fn))
	return dst
}

// assignNode makes the subtree at *dst a copy of src. Nodes already present at
// the same positions in *dst are overwritten in place instead of being
// reallocated; nodes of *dst with no counterpart in src are released.
//
// The caller is responsible for linking the parent of *dst.
func assignNode[T any](dst **node[T], src *node[T]) {
	switch {
	case src == nil:
		clearNode(*dst)
		*dst = nil
	case *dst == nil:
		*dst = copyNode(src, nil)
	default:
		n := *dst
		n.value, n.color = src.value, src.color
		assignNode(&n.left, src.left)
		if n.left != nil {
			n.left.parent = n
		}
		assignNode(&n.right, src.right)
		if n.right != nil {
			n.right.parent = n
		}
	}
}

// clearNode releases the subtree rooted at n in post-order. Every visited node
// has its links and value zeroed so no reference into the released nodes
// survives. The link pointing at n must be reset by the caller.
func clearNode[T any](n *node[T]) {
	if n == nil {
		return
	}
	clearNode(n.left)
	clearNode(n.right)
	*n = node[T]{}
}

func (n *node[T]) attachLeft(child *node[T]) {
	if child != nil {
		child.parent = n
	}
	n.left = child
}

func (n *node[T]) attachRight(child *node[T]) {
	if child != nil {
		child.parent = n
	}
	n.right = child
}

func (n *node[T]) isLeftChild() bool {
	return n.parent != nil && n.parent.left == n
}

func (n *node[T]) isRightChild() bool {
	return n.parent != nil && n.parent.right == n
}

func leftmost[T any](n *node[T]) *node[T] {
	for n.left != nil {
		n = n.left
	}
	return n
}

func rightmost[T any](n *node[T]) *node[T] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// successor returns the node following n in order, or nil if n holds the
// largest value of the tree.
func successor[T any](n *node[T]) *node[T] {
	if n.right != nil {
		return leftmost(n.right)
	}
	for n.isRightChild() {
		n = n.parent
	}
	return n.parent
}

// predecessor returns the node preceding n in order, or nil if n holds the
// smallest value of the tree.
func predecessor[T any](n *node[T]) *node[T] {
	if n.left != nil {
		return rightmost(n.left)
	}
	for n.isLeftChild() {
		n = n.parent
	}
	return n.parent
}

func doAssert(cond bool, msg string) {
	if !cond {
		panic("rbtree: internal assertion failed: " + msg)
	}
}
