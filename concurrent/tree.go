package concurrent

import (
	"sync"

	"github.com/eaugeas/bstree/container/tree"
	"golang.org/x/exp/constraints"
)

// Tree guards a tree.Tree with a read write lock so that it can be
// shared between goroutines. Nodes never leave the lock, so the
// operations that return nodes on tree.Tree return values here
type Tree[T constraints.Ordered] struct {
	mu   sync.RWMutex
	tree *tree.Tree[T]
}

// NewTree creates an empty Tree
func NewTree[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{tree: tree.New[T]()}
}

// Insert a value into the tree
func (t *Tree[T]) Insert(v T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tree.Insert(v)
}

// Remove the first node with value v. It returns the value left in
// the removed node and true, or false if v is not in the tree
func (t *Tree[T]) Remove(v T) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	var zero T
	n := t.tree.Remove(v)
	if n == nil {
		return zero, false
	}

	return n.Value, true
}

// Clear removes all the values from the tree
func (t *Tree[T]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.tree.Clear()
}

// Len returns the number of values in the tree
func (t *Tree[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Len()
}

// Contains returns true if v is in the tree
func (t *Tree[T]) Contains(v T) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Contains(v)
}

// Find returns the first value in the tree equal to v
func (t *Tree[T]) Find(v T) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return value(t.tree.Find(v))
}

// Count returns the number of occurrences of v
func (t *Tree[T]) Count(v T) int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.Count(v)
}

// Min returns the lowest value in the tree
func (t *Tree[T]) Min() (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return value(t.tree.Min())
}

// Max returns the highest value in the tree
func (t *Tree[T]) Max() (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return value(t.tree.Max())
}

// DFSPreOrder returns the values of the tree in pre order
func (t *Tree[T]) DFSPreOrder() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.DFSPreOrder()
}

// DFSInOrder returns the values of the tree in ascending order
func (t *Tree[T]) DFSInOrder() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.DFSInOrder()
}

// DFSPostOrder returns the values of the tree in post order
func (t *Tree[T]) DFSPostOrder() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.DFSPostOrder()
}

// BFS returns the values of the tree level by level
func (t *Tree[T]) BFS() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.BFS()
}

// IsBalanced returns true if the tree is balanced
func (t *Tree[T]) IsBalanced() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.IsBalanced()
}

// FindSecondHighest returns the second highest value in the tree
func (t *Tree[T]) FindSecondHighest() (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tree.FindSecondHighest()
}

func value[T constraints.Ordered](n *tree.Node[T]) (T, bool) {
	var zero T
	if n == nil {
		return zero, false
	}

	return n.Value, true
}
