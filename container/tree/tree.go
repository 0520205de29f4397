package tree

import "golang.org/x/exp/constraints"

// Node of a tree. A node owns its children and keeps
// no reference to its parent
type Node[T constraints.Ordered] struct {
	Value T

	left  *Node[T]
	right *Node[T]
}

// Left returns the node's left child
func (n *Node[T]) Left() *Node[T] {
	return n.left
}

// Right returns the node's right child
func (n *Node[T]) Right() *Node[T] {
	return n.right
}

// IsLeaf returns true if the node has no children
func (n *Node[T]) IsLeaf() bool {
	return n.left == nil && n.right == nil
}

// Min returns the node in the subtree of the
// lowest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Min() *Node[T] {
	curr := n

	for curr != nil && curr.left != nil {
		curr = curr.left
	}

	return curr
}

// Max returns the node in the subtree of the
// highest order. It returns nil if the subtree
// is empty
func (n *Node[T]) Max() *Node[T] {
	curr := n

	for curr != nil && curr.right != nil {
		curr = curr.right
	}

	return curr
}

// Find returns the first node in the subtree that
// contains a value equal to the one provided
func (n *Node[T]) Find(v T) *Node[T] {
	for curr := n; curr != nil; {
		switch c := compare(v, curr.Value); {
		case c == 0:
			return curr
		case c < 0:
			curr = curr.left
		default:
			curr = curr.right
		}
	}

	return nil
}

// Count returns the number of occurrences of v
// in the current subtree
func (n *Node[T]) Count(v T) (count int) {
	// every node holding v lies on the search path of v, so a
	// single descent is enough to see all of them
	for curr := n; curr != nil; {
		if goesLeft(v, curr) {
			curr = curr.left
			continue
		}

		if compare(v, curr.Value) == 0 {
			count++
		}

		curr = curr.right
	}

	return count
}

// Height returns the number of nodes on the longest path
// from n down to a leaf. The height of a nil subtree is 0
func (n *Node[T]) Height() int {
	if n == nil {
		return 0
	}

	left, right := n.left.Height(), n.right.Height()
	if left > right {
		return left + 1
	}

	return right + 1
}

// InOrderWalk implements an in order walk
// on the subtree using Morris traversal. The tree is
// temporarily threaded during the walk, so fn must not
// modify it
func (n *Node[T]) InOrderWalk(fn func(*Node[T])) {
	var prev *Node[T]

	for curr := n; curr != nil; {
		if curr.left == nil {
			fn(curr)
			curr = curr.right

		} else {
			prev = curr.left
			for prev.right != nil && prev.right != curr {
				prev = prev.right
			}

			if prev.right == nil {
				// update prev.right to the curr node so that after
				// visiting the left subtree there's a reference to the
				// right subtree that has been ignored
				prev.right = curr
				curr = curr.left
			} else {
				// restore the value of prev.right
				prev.right = nil
				fn(curr)
				curr = curr.right
			}
		}
	}
}

// PreOrderWalk implements a pre order walk
// on the subtree using Morris traversal. The tree is
// temporarily threaded during the walk, so fn must not
// modify it
func (n *Node[T]) PreOrderWalk(fn func(*Node[T])) {
	var prev *Node[T]

	for curr := n; curr != nil; {
		if curr.left == nil {
			fn(curr)
			curr = curr.right

		} else {
			prev = curr.left
			for prev.right != nil && prev.right != curr {
				prev = prev.right
			}

			if prev.right == nil {
				prev.right = curr
				fn(curr)
				curr = curr.left

			} else {
				prev.right = nil
				curr = curr.right
			}
		}
	}
}

// PostOrderWalk implements a post order walk on the
// subtree with an explicit stack, so its depth is not
// bounded by the goroutine stack
func (n *Node[T]) PostOrderWalk(fn func(*Node[T])) {
	var stack []*Node[T]
	var last *Node[T]

	for curr := n; curr != nil || len(stack) > 0; {
		if curr != nil {
			stack = append(stack, curr)
			curr = curr.left
			continue
		}

		top := stack[len(stack)-1]
		if top.right != nil && top.right != last {
			curr = top.right
			continue
		}

		fn(top)
		last = top
		stack = stack[:len(stack)-1]
	}
}

// LevelOrderWalk visits the subtree breadth first. Children
// are queued left before right
func (n *Node[T]) LevelOrderWalk(fn func(*Node[T])) {
	if n == nil {
		return
	}

	queue := []*Node[T]{n}
	for len(queue) > 0 {
		curr := queue[0]
		queue[0] = nil
		queue = queue[1:]

		fn(curr)

		if curr.left != nil {
			queue = append(queue, curr.left)
		}
		if curr.right != nil {
			queue = append(queue, curr.right)
		}
	}
}

// Tree represents a binary search tree. Values lower than
// a node's value are kept on its left subtree and values
// greater or equal on its right subtree. How balanced the
// branches are depends exclusively on the order of the insert
// and remove operations performed on the tree.
//
// A Tree is not safe for concurrent use.
type Tree[T constraints.Ordered] struct {
	root *Node[T]
	len  int
}

// New creates an empty tree
func New[T constraints.Ordered]() *Tree[T] {
	return &Tree[T]{}
}

// Len returns the number of nodes in the tree
func (t *Tree[T]) Len() int {
	return t.len
}

// Empty returns true if the tree has no nodes
func (t *Tree[T]) Empty() bool {
	return t.root == nil
}

// Root returns the root of the tree. It returns
// nil for an empty tree
func (t *Tree[T]) Root() *Node[T] {
	return t.root
}

// Clear removes all the nodes from the tree
func (t *Tree[T]) Clear() {
	t.root = nil
	t.len = 0
}

// Min returns the node in the tree with the
// lowest value. It returns nil if the tree
// is empty
func (t *Tree[T]) Min() *Node[T] {
	return t.root.Min()
}

// Max returns the node in the tree with the
// highest value. It returns nil if tree
// is empty
func (t *Tree[T]) Max() *Node[T] {
	return t.root.Max()
}

// Height returns the height of the tree
func (t *Tree[T]) Height() int {
	return t.root.Height()
}

// Contains returns true if the tree contains at
// least one node with value v
func (t *Tree[T]) Contains(v T) bool {
	return t.root.Find(v) != nil
}

// Count returns the number of occurrences of v
// in the tree
func (t *Tree[T]) Count(v T) int {
	return t.root.Count(v)
}

// Find returns the first node in the tree that
// contains a value equal to the one provided. It
// returns nil if there is no such node
func (t *Tree[T]) Find(v T) *Node[T] {
	return t.root.Find(v)
}

// FindRecursively behaves like Find but descends
// the tree recursively
func (t *Tree[T]) FindRecursively(v T) *Node[T] {
	return findRecursively(t.root, v)
}

func findRecursively[T constraints.Ordered](n *Node[T], v T) *Node[T] {
	if n == nil {
		return nil
	}

	switch c := compare(v, n.Value); {
	case c == 0:
		return n
	case c < 0:
		return findRecursively(n.left, v)
	default:
		return findRecursively(n.right, v)
	}
}

// InOrderWalk implements an in order walk
// on the tree using Morris traversal.
func (t *Tree[T]) InOrderWalk(fn func(*Node[T])) {
	t.root.InOrderWalk(fn)
}

// PreOrderWalk implements a pre order walk
// on the tree using Morris traversal.
func (t *Tree[T]) PreOrderWalk(fn func(*Node[T])) {
	t.root.PreOrderWalk(fn)
}

// PostOrderWalk implements a post order walk
// on the tree.
func (t *Tree[T]) PostOrderWalk(fn func(*Node[T])) {
	t.root.PostOrderWalk(fn)
}

// LevelOrderWalk implements a breadth first walk
// on the tree.
func (t *Tree[T]) LevelOrderWalk(fn func(*Node[T])) {
	t.root.LevelOrderWalk(fn)
}

// DFSPreOrder returns the values of the tree visiting each
// node before its left and right subtrees
func (t *Tree[T]) DFSPreOrder() []T {
	return preOrder(t.root, make([]T, 0, t.len))
}

// DFSInOrder returns the values of the tree in ascending order
func (t *Tree[T]) DFSInOrder() []T {
	return inOrder(t.root, make([]T, 0, t.len))
}

// DFSPostOrder returns the values of the tree visiting each
// node after its left and right subtrees
func (t *Tree[T]) DFSPostOrder() []T {
	return postOrder(t.root, make([]T, 0, t.len))
}

// BFS returns the values of the tree level by level, from
// left to right
func (t *Tree[T]) BFS() []T {
	res := make([]T, 0, t.len)
	t.root.LevelOrderWalk(func(n *Node[T]) {
		res = append(res, n.Value)
	})

	return res
}

func preOrder[T constraints.Ordered](n *Node[T], res []T) []T {
	if n == nil {
		return res
	}

	res = append(res, n.Value)
	res = preOrder(n.left, res)
	return preOrder(n.right, res)
}

func inOrder[T constraints.Ordered](n *Node[T], res []T) []T {
	if n == nil {
		return res
	}

	res = inOrder(n.left, res)
	res = append(res, n.Value)
	return inOrder(n.right, res)
}

func postOrder[T constraints.Ordered](n *Node[T], res []T) []T {
	if n == nil {
		return res
	}

	res = postOrder(n.left, res)
	res = postOrder(n.right, res)
	return append(res, n.Value)
}

// IsBalanced returns true if, for every node in the tree, the
// heights of its left and right subtrees differ by at most one.
// An empty tree is balanced
func (t *Tree[T]) IsBalanced() bool {
	_, ok := balancedHeight(t.root)
	return ok
}

// balancedHeight returns the height of the subtree and whether
// it is balanced. Once an unbalanced node is found the height
// is no longer meaningful
func balancedHeight[T constraints.Ordered](n *Node[T]) (int, bool) {
	if n == nil {
		return 0, true
	}

	left, ok := balancedHeight(n.left)
	if !ok {
		return 0, false
	}

	right, ok := balancedHeight(n.right)
	if !ok {
		return 0, false
	}

	if left-right > 1 || right-left > 1 {
		return 0, false
	}

	if left > right {
		return left + 1, true
	}

	return right + 1, true
}

// FindSecondHighest returns the value that precedes the highest
// one in an in order walk. It returns false when the tree has
// less than two nodes
func (t *Tree[T]) FindSecondHighest() (T, bool) {
	var zero T
	if t.root == nil || t.root.IsLeaf() {
		return zero, false
	}

	for curr := t.root; curr != nil; curr = curr.right {
		// curr is the highest node and everything lower than it
		// and higher than its ancestors hangs from its left child
		if curr.left != nil && curr.right == nil {
			return curr.left.Max().Value, true
		}

		// the highest node is a leaf so its parent comes next
		if curr.right != nil && curr.right.IsLeaf() {
			return curr.Value, true
		}
	}

	return zero, false
}
