package tree

import "golang.org/x/exp/constraints"

// Insert a value into the tree by preserving the Binary Search Tree
// properties but without applying any balancing algorithm. The new
// node is always attached as a leaf. It returns the tree so that
// calls can be chained
func (t *Tree[T]) Insert(v T) *Tree[T] {
	n := &Node[T]{Value: v}
	t.len++

	if t.root == nil {
		t.root = n
		return t
	}

	curr := t.root
	for {
		if goesLeft(v, curr) {
			if curr.left == nil {
				curr.left = n
				return t
			}
			curr = curr.left
		} else {
			if curr.right == nil {
				curr.right = n
				return t
			}
			curr = curr.right
		}
	}
}

// InsertRecursively inserts a value into the tree exactly as Insert
// does, descending the tree recursively
func (t *Tree[T]) InsertRecursively(v T) *Tree[T] {
	n := &Node[T]{Value: v}
	t.len++

	if t.root == nil {
		t.root = n
		return t
	}

	insertRecursively(t.root, n)
	return t
}

func insertRecursively[T constraints.Ordered](curr, n *Node[T]) {
	if goesLeft(n.Value, curr) {
		if curr.left == nil {
			curr.left = n
			return
		}
		insertRecursively(curr.left, n)
		return
	}

	if curr.right == nil {
		curr.right = n
		return
	}
	insertRecursively(curr.right, n)
}

// Remove the first node on the tree that has value equal to v
// and returns it, or nil if there is no such node.
//
// When the matched node has two children it is not unlinked.
// Its value is overwritten with the value of its in order
// successor and the successor is unlinked instead, so the
// returned node stays in the tree and carries the successor's
// value
func (t *Tree[T]) Remove(v T) *Node[T] {
	var parent *Node[T]
	curr := t.root

	for curr != nil {
		switch c := compare(v, curr.Value); {
		case c < 0:
			parent = curr
			curr = curr.left
		case c > 0:
			parent = curr
			curr = curr.right
		default:
			t.unlink(parent, curr)
			t.len--
			return curr
		}
	}

	return nil
}

// unlink removes n, a child of parent, from the tree. parent is nil
// when n is the root
func (t *Tree[T]) unlink(parent, n *Node[T]) {
	switch {
	case n.IsLeaf():
		t.transplant(parent, n, nil)
	case n.left == nil:
		t.transplant(parent, n, n.right)
		n.right = nil
	case n.right == nil:
		t.transplant(parent, n, n.left)
		n.left = nil
	default:
		successorParent, successor := n, n.right
		for successor.left != nil {
			successorParent = successor
			successor = successor.left
		}

		n.Value = successor.Value

		// the successor has no left child, so its right subtree takes
		// its place
		if successorParent == n {
			n.right = successor.right
		} else {
			successorParent.left = successor.right
		}
		successor.right = nil
	}
}

// transplant replaces the subtree rooted at u, a child of
// parent, with the subtree rooted at v
func (t *Tree[T]) transplant(parent, u, v *Node[T]) {
	switch {
	case parent == nil:
		t.root = v
	case u == parent.left:
		parent.left = v
	default:
		parent.right = v
	}
}
