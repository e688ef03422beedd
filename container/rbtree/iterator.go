package rbtree

// Iterator is a position in a Tree. The iterator positioned one past the
// largest element, returned by Tree.End, is called the end iterator; it is also
// what Tree.Begin returns on an empty tree.
//
// Iterators are small values meant to be passed and compared by value. Two
// iterators are equal when they are positioned on the same node, all end
// iterators are equal.
//
// Erasing the element an iterator is positioned on invalidates the iterator.
// Other mutations of the tree leave it valid.
type Iterator[T any] struct {
	tree *Tree[T]
	node *node[T]
}

// End returns true if the iterator is positioned past the largest element.
func (it Iterator[T]) End() bool { return it.node == nil }

// Equal returns true if it and other are positioned on the same element.
func (it Iterator[T]) Equal(other Iterator[T]) bool { return it.node == other.node }

// Value returns the element the iterator is positioned on. The value must not
// be modified in ways that change its ordering.
//
// The method panics if called on the end iterator.
func (it Iterator[T]) Value() T {
	doAssert(it.node != nil, "dereferencing the end iterator")
	return it.node.value
}

// Next returns an iterator positioned on the following element, or the end
// iterator if it was positioned on the largest element. Calling Next on the end
// iterator returns the end iterator.
//
// Complexity: O(log n) worst case, O(1) amortized over a full traversal
func (it Iterator[T]) Next() Iterator[T] {
	if it.node == nil {
		return it
	}
	return Iterator[T]{tree: it.tree, node: successor(it.node)}
}

// Prev returns an iterator positioned on the preceding element, or the end
// iterator if it was positioned on the smallest element.
//
// Calling Prev on the end iterator of a tree moves to the largest element, so
// that programs can walk backward from Tree.End. This differs from a plain
// end marker, which cannot be decremented. On the zero-value Iterator, which
// is bound to no tree, Prev is a no-op.
//
// Complexity: O(log n) worst case, O(1) amortized over a full traversal
func (it Iterator[T]) Prev() Iterator[T] {
	if it.node == nil {
		if it.tree == nil {
			return it
		}
		return it.tree.Last()
	}
	return Iterator[T]{tree: it.tree, node: predecessor(it.node)}
}

// Left returns an iterator positioned on the left child of the current node,
// or the end iterator if there is none.
func (it Iterator[T]) Left() Iterator[T] {
	if it.node == nil {
		return it
	}
	return Iterator[T]{tree: it.tree, node: it.node.left}
}

// Right returns an iterator positioned on the right child of the current node,
// or the end iterator if there is none.
func (it Iterator[T]) Right() Iterator[T] {
	if it.node == nil {
		return it
	}
	return Iterator[T]{tree: it.tree, node: it.node.right}
}

// Parent returns an iterator positioned on the parent of the current node, or
// the end iterator if the node is the root.
func (it Iterator[T]) Parent() Iterator[T] {
	if it.node == nil {
		return it
	}
	return Iterator[T]{tree: it.tree, node: it.node.parent}
}

// Color returns the color of the current node. Absent nodes are black, so the
// end iterator reports Black.
func (it Iterator[T]) Color() Color {
	if it.node == nil {
		return Black
	}
	return it.node.color
}
