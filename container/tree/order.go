package tree

import "golang.org/x/exp/constraints"

// compare returns
//  -1 if a < b
//   0 if a == b
//   1 if a > b
func compare[T constraints.Ordered](a, b T) int {
	if a < b {
		return -1
	} else if b < a {
		return 1
	} else {
		return 0
	}
}

// goesLeft reports whether a value v descends into the left
// subtree of n. Values equal to the node's go right
func goesLeft[T constraints.Ordered](v T, n *Node[T]) bool {
	return compare(v, n.Value) < 0
}
