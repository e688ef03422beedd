// Package rbtree contains the implementation of a red-black binary search tree
// with an API modeled on the ordered containers of the C++ standard library.
//
// Elements are ordered by a comparison function installed when the tree is
// created. Positions in the tree are represented by Iterator values, which walk
// the tree in order using the parent links of the nodes, so no traversal stack
// is needed:
//
//	t := rbtree.New(compare.Function[int])
//	t.Insert(2, true)
//	t.Insert(1, true)
//
//	for it := t.Begin(); !it.End(); it = it.Next() {
//		fmt.Println(it.Value())
//	}
//
// Insertions restore the red-black properties before returning. Erasing
// elements splices nodes out of the tree but does not recolor or rotate, so the
// ordering of elements is always preserved while the balance of the tree may
// degrade after deletions.
//
// Trees are not safe to use concurrently from multiple goroutines. Programs
// must serialize mutations with their own synchronization; concurrent reads are
// only safe when no mutation happens at the same time.
package rbtree

// Tree is a red-black binary search tree containing elements of type T.
//
// The zero-value is a valid empty tree which supports lookups and deletes, but
// must be initialized with a comparison function prior to inserting elements.
type Tree[T any] struct {
	cmp   func(T, T) int
	root  *node[T]
	count int
}

// New constructs a new tree using the comparison function passed as argument
// to order the elements.
func New[T any](cmp func(T, T) int) *Tree[T] {
	t := new(Tree[T])
	t.Init(cmp)
	return t
}

// Build constructs a new tree containing the given values, inserted in order.
// Duplicate values are all retained.
//
// Complexity: O(n log n)
func Build[T any](cmp func(T, T) int, values ...T) *Tree[T] {
	t := New(cmp)
	for _, v := range values {
		t.Insert(v, false)
	}
	return t
}

// Init initializes (or re-initializes) the tree. Elements held by the tree are
// released.
func (t *Tree[T]) Init(cmp func(T, T) int) {
	t.Clear()
	t.cmp = cmp
}

// Len returns the number of elements in the tree.
//
// Complexity: O(1)
func (t *Tree[T]) Len() int { return t.count }

// Empty returns true if the tree contains no elements.
func (t *Tree[T]) Empty() bool { return t.count == 0 }

// Clone returns a deep copy of t. The copy shares no nodes with t, mutations of
// either tree are not visible in the other.
//
// Complexity: O(n)
func (t *Tree[T]) Clone() *Tree[T] {
	return t.CloneFunc(nil)
}

// CloneFunc is like Clone but passes each element through fn to produce the
// elements of the copy. It is useful when elements hold references that must
// not be shared between the trees. fn must preserve the ordering of elements.
//
// Complexity: O(n)
func (t *Tree[T]) CloneFunc(fn func(T) T) *Tree[T] {
	return &Tree[T]{
		cmp:   t.cmp,
		root:  copyNode(t.root, fn),
		count: t.count,
	}
}

// Assign makes t a copy of src. Nodes already allocated in t are reused at the
// positions where both trees have the same shape, the others are allocated or
// released as needed.
//
// Complexity: O(n)
func (t *Tree[T]) Assign(src *Tree[T]) {
	if t == src {
		return
	}
	assignNode(&t.root, src.root)
	if t.root != nil {
		t.root.parent = nil
	}
	t.cmp = src.cmp
	t.count = src.count
}

// Move transfers the elements of src to t, leaving src empty. The elements
// previously held by t are released.
//
// Complexity: O(n) in the size of t
func (t *Tree[T]) Move(src *Tree[T]) {
	if t == src {
		return
	}
	t.Clear()
	t.Swap(src)
}

// Reset replaces the content of t with the given values, inserted in order.
// Duplicate values are all retained.
func (t *Tree[T]) Reset(values ...T) {
	t.Clear()
	for _, v := range values {
		t.Insert(v, false)
	}
}

// Swap exchanges the contents of t and other. Iterators positioned on elements
// remain valid and keep pointing at the same elements. End iterators stay bound
// to the tree they were obtained from, so calling Prev on them after the swap
// moves to the largest element of the swapped-in contents.
//
// Complexity: O(1)
func (t *Tree[T]) Swap(other *Tree[T]) {
	t.cmp, other.cmp = other.cmp, t.cmp
	t.root, other.root = other.root, t.root
	t.count, other.count = other.count, t.count
}

// Clear removes all elements from the tree.
//
// Complexity: O(n)
func (t *Tree[T]) Clear() {
	clearNode(t.root)
	t.root = nil
	t.count = 0
}

// Begin returns an iterator positioned on the smallest element of the tree, or
// End if the tree is empty.
//
// Complexity: O(log n)
func (t *Tree[T]) Begin() Iterator[T] {
	if t.root == nil {
		return t.End()
	}
	return t.iter(leftmost(t.root))
}

// Last returns an iterator positioned on the largest element of the tree, or
// End if the tree is empty.
//
// Complexity: O(log n)
func (t *Tree[T]) Last() Iterator[T] {
	if t.root == nil {
		return t.End()
	}
	return t.iter(rightmost(t.root))
}

// End returns the iterator positioned one past the largest element.
//
// Complexity: O(1)
func (t *Tree[T]) End() Iterator[T] { return Iterator[T]{tree: t} }

// Root returns an iterator positioned on the root node of the tree, or End if
// the tree is empty. Combined with the Left, Right, and Parent methods of
// Iterator, it gives read-only access to the structure of the tree.
func (t *Tree[T]) Root() Iterator[T] { return t.iter(t.root) }

// Insert inserts value in the tree and returns an iterator positioned on the
// element holding it.
//
// When keepUnique is true and an element equal to value already exists, the
// tree is not modified and the method returns an iterator on the existing
// element and false. Otherwise the value is always inserted, after any equal
// elements, and the method returns true.
//
// The tree must have been initialized by a call to New or Init or the call to
// Insert will panic.
//
// Complexity: O(log n)
func (t *Tree[T]) Insert(value T, keepUnique bool) (Iterator[T], bool) {
	if t.cmp == nil {
		panic("rbtree: Insert called on a tree with no comparison function")
	}

	if t.root == nil {
		t.root = newNode(value)
		return t.inserted(t.root), true
	}

	for n := t.root; ; {
		cmp := t.cmp(value, n.value)
		if keepUnique && cmp == 0 {
			return t.iter(n), false
		}
		if cmp < 0 {
			if n.left == nil {
				n.attachLeft(newNode(value))
				return t.inserted(n.left), true
			}
			n = n.left
		} else {
			if n.right == nil {
				n.attachRight(newNode(value))
				return t.inserted(n.right), true
			}
			n = n.right
		}
	}
}

func (t *Tree[T]) inserted(n *node[T]) Iterator[T] {
	t.count++
	t.rebalance(n)
	return t.iter(n)
}

// Find returns an iterator positioned on an element equal to value, or End if
// no such element exists.
//
// Complexity: O(log n)
func (t *Tree[T]) Find(value T) Iterator[T] {
	for n := t.root; n != nil; {
		switch cmp := t.cmp(value, n.value); {
		case cmp == 0:
			return t.iter(n)
		case cmp < 0:
			n = n.left
		default:
			n = n.right
		}
	}
	return t.End()
}

// Floor returns an iterator positioned on the largest element less or equal to
// value, or End if all elements are greater than value.
//
// Complexity: O(log n)
func (t *Tree[T]) Floor(value T) Iterator[T] {
	var match *node[T]
	for n := t.root; n != nil; {
		switch cmp := t.cmp(value, n.value); {
		case cmp == 0:
			return t.iter(n)
		case cmp < 0:
			n = n.left
		default:
			match = n
			n = n.right
		}
	}
	return t.iter(match)
}

func (t *Tree[T]) iter(n *node[T]) Iterator[T] {
	return Iterator[T]{tree: t, node: n}
}

// slot returns the link holding n: the child field of its parent, or the root
// of the tree.
func (t *Tree[T]) slot(n *node[T]) **node[T] {
	switch p := n.parent; {
	case p == nil:
		doAssert(t.root == n, "parentless node is not the root")
		return &t.root
	case p.left == n:
		return &p.left
	default:
		doAssert(p.right == n, "node is not a child of its parent")
		return &p.right
	}
}
