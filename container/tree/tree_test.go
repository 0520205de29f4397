package tree

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const treeMaxValue = 10

type balancedTreeGenerator struct {
	level uint
	index uint

	// Highest sets the maximum value an element can have
	Highest uint
}

// Next returns the values of a balanced tree level by level. Inserting
// them in that order results in a tree that is as balanced as possible
func (g *balancedTreeGenerator) Next() (int, bool) {
	if (math.Pow(2, float64(g.level)) + float64(g.index)) > float64(g.Highest) {
		return 0, false
	}

	levelElements := uint(math.Pow(2, float64(g.level)))
	value := (g.Highest * (2*g.index + 1)) / (2 * levelElements)

	g.index += 1
	if g.index >= levelElements {
		g.index = 0
		g.level += 1
	}

	return int(value), true
}

func levels(tree *Tree[int]) [][]*Node[int] {
	result := [][]*Node[int]{[]*Node[int]{tree.root}}
	currLevel := 0

	for {
		nels := int(math.Pow(2, float64(currLevel+1)))
		result = append(result, make([]*Node[int], nels))
		nodesAdded := 0

		for i := 0; i < nels/2; i++ {
			if result[currLevel][i] == nil {
				result[currLevel+1][2*i] = nil
				result[currLevel+1][2*i+1] = nil
			} else {
				nodesAdded += 1
				result[currLevel+1][2*i] = result[currLevel][i].left
				result[currLevel+1][2*i+1] = result[currLevel][i].right
			}
		}

		currLevel += 1
		if nodesAdded == 0 {
			break
		}
	}

	// the last level is empty so it can be removed
	return result[:currLevel-1]
}

func assertEqualTree(t *testing.T, expected [][]interface{}, tree *Tree[int]) {
	levels := levels(tree)
	assert.Equal(t, len(expected), len(levels))
	for level := 0; level < len(expected) && level < len(levels); level++ {
		assert.Equal(t, len(expected[level]), len(levels[level]))
		for col := 0; col < len(expected[level]) && col < len(levels[level]); col++ {
			if expected[level][col] == nil {
				assert.Nil(t, levels[level][col])
			} else if assert.NotNil(t, levels[level][col]) {
				assert.Equal(t, expected[level][col], levels[level][col].Value)
			}
		}
	}
}

func printTree(tree *Tree[int]) {
	levels := levels(tree)

	fmt.Println()
	for _, level := range levels {
		for _, node := range level {
			if node != nil {
				fmt.Printf(" %d ", node.Value)
			}
		}
		fmt.Println()
	}
	fmt.Println()
}

func prePopulateTree(tree *Tree[int]) {
	if tree.Len() != 0 {
		panic("attempt to prepopulate non-emtpy tree")
	}
	it := balancedTreeGenerator{Highest: treeMaxValue}
	for {
		value, ok := it.Next()
		if !ok {
			break
		}

		tree.Insert(value)
	}
}

// sampleTree is built from 5, 3, 8, 1, 4, 7, 9:
//
//	      5
//	   3     8
//	  1 4   7 9
func sampleTree() *Tree[int] {
	return New[int]().Insert(5).Insert(3).Insert(8).Insert(1).Insert(4).Insert(7).Insert(9)
}

func randomValues(r *rand.Rand, n, max int) []int {
	values := make([]int, n)
	for i := range values {
		values[i] = r.Intn(max)
	}
	return values
}

func TestTreeSampleBFS(t *testing.T) {
	assert.Equal(t, []int{5, 3, 8, 1, 4, 7, 9}, sampleTree().BFS())
}

func TestTreeSampleDFSInOrder(t *testing.T) {
	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, sampleTree().DFSInOrder())
}

func TestTreeSampleDFSPreOrder(t *testing.T) {
	assert.Equal(t, []int{5, 3, 1, 4, 8, 7, 9}, sampleTree().DFSPreOrder())
}

func TestTreeSampleDFSPostOrder(t *testing.T) {
	assert.Equal(t, []int{1, 4, 3, 7, 9, 8, 5}, sampleTree().DFSPostOrder())
}

func TestTreeEmptyTraversals(t *testing.T) {
	tree := New[int]()

	assert.Empty(t, tree.BFS())
	assert.Empty(t, tree.DFSPreOrder())
	assert.Empty(t, tree.DFSInOrder())
	assert.Empty(t, tree.DFSPostOrder())
}

func TestTreeTraversalsIdempotent(t *testing.T) {
	tree := sampleTree()

	assert.Equal(t, tree.DFSPreOrder(), tree.DFSPreOrder())
	assert.Equal(t, tree.DFSInOrder(), tree.DFSInOrder())
	assert.Equal(t, tree.DFSPostOrder(), tree.DFSPostOrder())
	assert.Equal(t, tree.BFS(), tree.BFS())
}

func TestTreeWalksMatchTraversals(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tree := New[int]()
	for _, v := range randomValues(r, 200, 50) {
		tree.Insert(v)
	}

	collect := func(walk func(func(*Node[int]))) []int {
		var res []int
		walk(func(n *Node[int]) {
			res = append(res, n.Value)
		})
		return res
	}

	assert.Equal(t, tree.DFSPreOrder(), collect(tree.PreOrderWalk))
	assert.Equal(t, tree.DFSInOrder(), collect(tree.InOrderWalk))
	assert.Equal(t, tree.DFSPostOrder(), collect(tree.PostOrderWalk))
	assert.Equal(t, tree.BFS(), collect(tree.LevelOrderWalk))

	// the morris walks must restore every link they thread
	assert.Equal(t, tree.DFSPreOrder(), collect(tree.PreOrderWalk))
	assert.Equal(t, tree.DFSInOrder(), collect(tree.InOrderWalk))
}

func TestTreeInOrderNonDecreasing(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 50; i++ {
		values := randomValues(r, r.Intn(100), 20)
		tree := New[int]()
		for _, v := range values {
			tree.Insert(v)
		}

		res := tree.DFSInOrder()
		assert.Len(t, res, len(values))
		assert.True(t, sort.IntsAreSorted(res))
	}
}

func TestTreeFindInserted(t *testing.T) {
	r := rand.New(rand.NewSource(2))
	values := randomValues(r, 100, 1000)
	tree := New[int]()
	for _, v := range values {
		tree.Insert(v)
	}

	for _, v := range values {
		n := tree.Find(v)
		if assert.NotNil(t, n) {
			assert.Equal(t, v, n.Value)
		}
		assert.Same(t, n, tree.FindRecursively(v))
	}

	assert.Nil(t, tree.Find(1000))
	assert.Nil(t, tree.FindRecursively(-1))
}

func TestTreeIsBalanced(t *testing.T) {
	tree := sampleTree()
	assert.True(t, tree.IsBalanced())

	tree.Insert(10).Insert(11).Insert(12).Insert(13)
	assert.False(t, tree.IsBalanced())
}

func TestTreeIsBalancedEmpty(t *testing.T) {
	assert.True(t, New[int]().IsBalanced())
	assert.True(t, New[int]().Insert(1).IsBalanced())
}

func TestTreeIsBalancedChecksEveryNode(t *testing.T) {
	// both subtrees of the root have height 3 but each of them
	// is a chain, so the tree is not balanced
	tree := New[int]()
	for _, v := range []int{50, 40, 30, 20, 60, 70, 80} {
		tree.Insert(v)
	}

	assert.Equal(t, 4, tree.Height())
	assert.False(t, tree.IsBalanced())
}

func TestTreeFindSecondHighestSample(t *testing.T) {
	v, ok := sampleTree().FindSecondHighest()
	assert.True(t, ok)
	assert.Equal(t, 8, v)
}

func TestTreeFindSecondHighestEmpty(t *testing.T) {
	_, ok := New[int]().FindSecondHighest()
	assert.False(t, ok)

	_, ok = New[int]().Insert(1).FindSecondHighest()
	assert.False(t, ok)
}

func TestTreeFindSecondHighestShapes(t *testing.T) {
	cases := []struct {
		values   []int
		expected int
	}{
		{[]int{5, 3}, 3},
		{[]int{5, 3, 4}, 4},
		{[]int{5, 8}, 5},
		{[]int{5, 8, 6}, 6},
		{[]int{5, 8, 6, 7}, 7},
		{[]int{5, 8, 10, 9}, 9},
		{[]int{5, 5}, 5},
		{[]int{1, 2, 3, 4, 5}, 4},
		{[]int{5, 4, 3, 2, 1}, 4},
	}

	for _, c := range cases {
		tree := New[int]()
		for _, v := range c.values {
			tree.Insert(v)
		}

		v, ok := tree.FindSecondHighest()
		assert.True(t, ok, "values %v", c.values)
		assert.Equal(t, c.expected, v, "values %v", c.values)
	}
}

func TestTreeFindSecondHighestMatchesInOrder(t *testing.T) {
	r := rand.New(rand.NewSource(3))

	for i := 0; i < 50; i++ {
		tree := New[int]()
		for _, v := range randomValues(r, 2+r.Intn(50), 100) {
			tree.Insert(v)
		}

		res := tree.DFSInOrder()
		v, ok := tree.FindSecondHighest()
		require.True(t, ok)
		assert.Equal(t, res[len(res)-2], v)
	}
}

func TestTreeStrings(t *testing.T) {
	tree := New[string]().Insert("m").Insert("c").Insert("x").Insert("a")

	assert.Equal(t, []string{"a", "c", "m", "x"}, tree.DFSInOrder())
	assert.Equal(t, []string{"m", "c", "x", "a"}, tree.BFS())
	v, ok := tree.FindSecondHighest()
	assert.True(t, ok)
	assert.Equal(t, "m", v)
}

func BenchmarkTreeDFSInOrder(b *testing.B) {
	tree := New[int]()
	gen := balancedTreeGenerator{Highest: 1 << 16}
	for v, ok := gen.Next(); ok; v, ok = gen.Next() {
		tree.Insert(v)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.DFSInOrder()
	}
}
