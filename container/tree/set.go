// Package tree contains ordered containers built on the red-black tree of the
// rbtree package: Set holds unique elements, Map associates values to unique
// keys. Both keep their content sorted by a comparison function.
package tree

import "github.com/segmentio/rbtree/container/rbtree"

// Set is a balanced binary tree containing unique elements of type E.
//
// The zero-value is a valid empty set which supports lookups and deletes, but
// must be initialized prior to inserting elements.
type Set[E any] struct{ impl rbtree.Tree[E] }

// New constructs a new set using the comparison function passed as argument
// to order the elements.
func New[E any](cmp func(E, E) int, elems ...E) *Set[E] {
	s := new(Set[E])
	s.Init(cmp)
	s.InsertAll(elems...)
	return s
}

// Init initializes (or re-initializes) the set with the given comparison
// function to order the elements.
func (s *Set[E]) Init(cmp func(E, E) int) {
	s.impl.Init(cmp)
}

// Len returns the number of elements in the set.
func (s *Set[E]) Len() int { return s.impl.Len() }

// Empty returns true if the set contains no elements.
func (s *Set[E]) Empty() bool { return s.impl.Empty() }

// Range calls f for each element in the set, in the order defined by the
// comparison function. If f returns false, the iteration is stopped.
func (s *Set[E]) Range(f func(E) bool) {
	for it := s.impl.Begin(); !it.End(); it = it.Next() {
		if !f(it.Value()) {
			break
		}
	}
}

// Insert inserts a new element in the set. If an equal element already
// existed, the set is not modified and the method returns an iterator
// positioned on the existing element and false.
//
// The method panics if the set had not been initialized by a call to New or
// Init.
func (s *Set[E]) Insert(elem E) (rbtree.Iterator[E], bool) {
	return s.impl.Insert(elem, true)
}

// InsertAll inserts all the elements passed as arguments in the set, skipping
// duplicates.
func (s *Set[E]) InsertAll(elems ...E) {
	for _, elem := range elems {
		s.impl.Insert(elem, true)
	}
}

// Contains returns true if the given element exists in the set.
func (s *Set[E]) Contains(elem E) (found bool) {
	return !s.impl.Find(elem).End()
}

// Search returns the largest element less or equal to the one passed as
// argument.
func (s *Set[E]) Search(elem E) (match E, found bool) {
	if it := s.impl.Floor(elem); !it.End() {
		match, found = it.Value(), true
	}
	return match, found
}

// Delete removes an element from the set.
func (s *Set[E]) Delete(elem E) (deleted bool) {
	return s.impl.EraseValue(elem) != 0
}

// Find returns an iterator positioned on the element equal to elem, or End if
// there is none.
func (s *Set[E]) Find(elem E) rbtree.Iterator[E] { return s.impl.Find(elem) }

// Begin returns an iterator positioned on the smallest element of the set.
func (s *Set[E]) Begin() rbtree.Iterator[E] { return s.impl.Begin() }

// End returns the iterator positioned past the largest element of the set.
func (s *Set[E]) End() rbtree.Iterator[E] { return s.impl.End() }

// Erase removes the element at it and returns an iterator positioned on the
// following element.
func (s *Set[E]) Erase(it rbtree.Iterator[E]) rbtree.Iterator[E] {
	return s.impl.Erase(it)
}

// EraseRange removes the elements in [first, last) and returns last.
func (s *Set[E]) EraseRange(first, last rbtree.Iterator[E]) rbtree.Iterator[E] {
	return s.impl.EraseRange(first, last)
}

// Clear removes all elements from the set.
func (s *Set[E]) Clear() { s.impl.Clear() }

// Clone returns a copy of the set.
func (s *Set[E]) Clone() *Set[E] {
	c := new(Set[E])
	c.impl.Assign(&s.impl)
	return c
}

// Assign replaces the content of s with a copy of the elements of other.
func (s *Set[E]) Assign(other *Set[E]) { s.impl.Assign(&other.impl) }

// Swap exchanges the elements of s and other.
func (s *Set[E]) Swap(other *Set[E]) { s.impl.Swap(&other.impl) }
