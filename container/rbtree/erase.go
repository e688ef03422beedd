package rbtree

// Erase removes the element at it from the tree and returns an iterator
// positioned on the element that followed it, or End if it was the largest.
// Erasing End is a no-op which returns End.
//
// The node is spliced out of the tree but no recoloring or rotation happens,
// the red-black properties may not hold after the call while the ordering of
// the remaining elements is preserved.
//
// Iterators positioned on the erased element are invalidated, other iterators
// remain valid.
//
// Complexity: O(log n)
func (t *Tree[T]) Erase(it Iterator[T]) Iterator[T] {
	d := it.node
	if d == nil {
		return t.End()
	}

	next := t.iter(successor(d))

	switch {
	case d.left == nil && d.right == nil:
		*t.slot(d) = nil

	case d.right == nil:
		t.replace(d, d.left)

	case d.left == nil:
		t.replace(d, d.right)

	default:
		// With two children the successor is the leftmost node of the right
		// subtree: it has no left child, and is a left child itself unless it
		// is the right child of d.
		s := next.node
		doAssert(s != nil && s.left == nil, "successor of a node with two children")
		s.attachLeft(d.left)
		if s != d.right {
			s.parent.attachLeft(s.right)
			s.attachRight(d.right)
		}
		t.replace(d, s)
	}

	*d = node[T]{}
	t.count--
	return next
}

// replace links c in place of d, under the parent of d.
func (t *Tree[T]) replace(d, c *node[T]) {
	*t.slot(d) = c
	c.parent = d.parent
}

// EraseValue removes one element equal to value from the tree. The method
// returns 1 if an element was removed, 0 otherwise.
//
// Complexity: O(log n)
func (t *Tree[T]) EraseValue(value T) int {
	it := t.Find(value)
	if it.End() {
		return 0
	}
	t.Erase(it)
	return 1
}

// EraseRange removes the elements in the half-open range [first, last) and
// returns last.
//
// Complexity: O(k log n) where k is the number of elements removed
func (t *Tree[T]) EraseRange(first, last Iterator[T]) Iterator[T] {
	for !first.End() && !first.Equal(last) {
		first = t.Erase(first)
	}
	return last
}
