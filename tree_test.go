package arbor

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInsert(t *testing.T) {
	tree := New[int, string]()

	require.NoError(t, tree.Insert(5, "five"))
	assert.Equal(t, 1, tree.Size())
	assert.Equal(t, 5, tree.Root().Key)

	require.NoError(t, tree.Insert(3, "three"))
	require.NoError(t, tree.Insert(8, "eight"))
	assert.Equal(t, 3, tree.Size())
	assert.Equal(t, []int{3, 5, 8}, collectKeys(tree.Inorder()))
	assert.True(t, tree.IsValid())
}

func TestInsertDuplicate(t *testing.T) {
	tree := New[int, string]()
	require.NoError(t, tree.Insert(5, "five"))
	require.NoError(t, tree.Insert(3, "three"))

	err := tree.Insert(5, "other")
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 2, tree.Size())

	// The original value survives a rejected insert.
	v, err := tree.Get(5)
	require.NoError(t, err)
	assert.Equal(t, "five", v)

	// Duplicates deeper in the tree are rejected too.
	err = tree.Insert(3, "other")
	assert.ErrorIs(t, err, ErrDuplicateKey)
	assert.Equal(t, 2, tree.Size())
}

func TestInsertInvalidKey(t *testing.T) {
	tree := New[float64, string]()
	require.NoError(t, tree.Insert(1.5, "ok"))

	err := tree.Insert(math.NaN(), "bad")
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.Equal(t, 1, tree.Size())
}

func TestFind(t *testing.T) {
	tree := buildSmallTree(t)

	tests := []struct {
		name    string
		key     int
		wantErr error
	}{
		{"root", 32, nil},
		{"leaf", 47, nil},
		{"internal", 21, nil},
		{"absent_low", 1, ErrKeyNotFound},
		{"absent_mid", 30, ErrKeyNotFound},
		{"absent_high", 99, ErrKeyNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := tree.Find(tt.key)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, n)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, n.Key)
		})
	}
}

func TestFindEmptyTree(t *testing.T) {
	tree := New[int, string]()

	_, err := tree.Find(7)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestFindInvalidKey(t *testing.T) {
	tree := New[float64, string]()

	_, err := tree.Find(math.NaN())
	assert.ErrorIs(t, err, ErrInvalidKey)
	assert.ErrorIs(t, tree.Remove(math.NaN()), ErrInvalidKey)
}

func TestFindHandleMutation(t *testing.T) {
	tree := buildSmallTree(t)

	n, err := tree.Find(28)
	require.NoError(t, err)
	n.Value = "rewritten"

	v, err := tree.Get(28)
	require.NoError(t, err)
	assert.Equal(t, "rewritten", v)
}

func TestGet(t *testing.T) {
	tree := New[int, string]()
	require.NoError(t, tree.Insert(4, "four"))

	v, err := tree.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "four", v)

	v, err = tree.Get(9)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Zero(t, v)
}

func TestRemoveLeaf(t *testing.T) {
	tree := buildSmallTree(t)

	require.NoError(t, tree.Remove(7))
	assert.Equal(t, 6, tree.Size())
	assert.Equal(t, []int{21, 28, 32, 35, 38, 47}, collectKeys(tree.Inorder()))
	assert.True(t, tree.IsValid())

	n, err := tree.Find(21)
	require.NoError(t, err)
	assert.Nil(t, n.Left())
}

func TestRemoveSingleChild(t *testing.T) {
	tree := New[int, string]()
	for _, k := range []int{10, 5, 3} {
		require.NoError(t, tree.Insert(k, ""))
	}

	// 5 has only a left child; 3 is spliced into its slot.
	require.NoError(t, tree.Remove(5))
	assert.Equal(t, 2, tree.Size())
	assert.Equal(t, []int{3, 10}, collectKeys(tree.Inorder()))
	assert.True(t, tree.IsValid())

	n, err := tree.Find(3)
	require.NoError(t, err)
	assert.Equal(t, 10, n.Parent().Key)
	assert.Equal(t, 1, n.Depth())
}

func TestRemoveTwoChildren(t *testing.T) {
	tree := New[int, string]()
	for _, k := range []int{5, 3, 8, 1, 4, 7, 9} {
		require.NoError(t, tree.Insert(k, ""))
	}
	require.Equal(t, 7, tree.Size())

	require.NoError(t, tree.Remove(5))
	assert.Equal(t, 6, tree.Size())
	assert.Equal(t, []int{1, 3, 4, 7, 8, 9}, collectKeys(tree.Inorder()))
	assert.True(t, tree.IsValid())

	// The node at 5's former position holds the in-order successor:
	// the former minimum of the right subtree.
	assert.Equal(t, 7, tree.Root().Key)
}

func TestRemoveRootOfSingleNodeTree(t *testing.T) {
	tree := New[int, string]()
	require.NoError(t, tree.Insert(1, "one"))

	require.NoError(t, tree.Remove(1))
	assert.Equal(t, 0, tree.Size())
	assert.Nil(t, tree.Root())

	_, err := tree.Find(1)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestRemoveAbsent(t *testing.T) {
	tree := buildSmallTree(t)

	err := tree.Remove(99)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.Equal(t, 7, tree.Size())
	assert.Equal(t, []int{7, 21, 28, 32, 35, 38, 47}, collectKeys(tree.Inorder()))
}

func TestRemoveAll(t *testing.T) {
	tree := buildSmallTree(t)

	for _, k := range []int{32, 21, 38, 7, 28, 35, 47} {
		require.NoError(t, tree.Remove(k))
		assert.True(t, tree.IsValid())
	}
	assert.Equal(t, 0, tree.Size())
	assert.Nil(t, tree.Root())
}

func TestMinimum(t *testing.T) {
	tree := New[int, string]()
	assert.Nil(t, tree.Minimum())

	for _, k := range []int{32, 21, 38, 7} {
		require.NoError(t, tree.Insert(k, ""))
	}
	require.NotNil(t, tree.Minimum())
	assert.Equal(t, 7, tree.Minimum().Key)

	require.NoError(t, tree.Remove(7))
	assert.Equal(t, 21, tree.Minimum().Key)
}

func TestIsValid(t *testing.T) {
	tree := New[int, string]()
	assert.True(t, tree.IsValid())

	tree = buildSmallTree(t)
	assert.True(t, tree.IsValid())

	// Corrupt a key through a live handle; the bound check must notice.
	n, err := tree.Find(21)
	require.NoError(t, err)
	n.Key = 40
	assert.False(t, tree.IsValid())
}

func TestComparisons(t *testing.T) {
	tree := New[int, string]()
	assert.Zero(t, tree.Comparisons())

	// Root insert descends past no node, so it compares nothing.
	require.NoError(t, tree.Insert(32, ""))
	assert.Zero(t, tree.Comparisons())

	require.NoError(t, tree.Insert(21, ""))
	assert.Equal(t, uint64(1), tree.Comparisons())

	tree.ResetComparisons()
	_, err := tree.Find(21)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), tree.Comparisons())
}

func TestSearchComparisons(t *testing.T) {
	tree := buildSmallTree(t)

	// Preorder key list is [32 21 7 28 38 35 47]; finding 47 linearly
	// costs 7 comparisons, descending the tree costs 3.
	linear, descent, err := tree.SearchComparisons(47)
	require.NoError(t, err)
	assert.Equal(t, 7, linear)
	assert.Equal(t, 3, descent)

	// The root is the first hit both ways.
	linear, descent, err = tree.SearchComparisons(32)
	require.NoError(t, err)
	assert.Equal(t, 1, linear)
	assert.Equal(t, 1, descent)

	_, _, err = tree.SearchComparisons(99)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestTreeString(t *testing.T) {
	tree := New[int, string]()
	assert.Equal(t, "Tree()", tree.String())

	require.NoError(t, tree.Insert(10, "b"))
	require.NoError(t, tree.Insert(5, "a"))
	require.NoError(t, tree.Insert(15, "c"))
	assert.Equal(t, "Tree(Node(5, a) Node(10, b) Node(15, c))", tree.String())
}

func BenchmarkInsert(b *testing.B) {
	tree := New[int, int]()
	for i := 0; b.Loop(); i++ {
		// Alternate around the midpoint to avoid a degenerate chain.
		k := i ^ 0x5555
		_ = tree.Insert(k, i)
	}
}

func BenchmarkFind(b *testing.B) {
	tree := New[int, int]()
	for i := range 1 << 12 {
		_ = tree.Insert(i^0x555, i)
	}
	b.ResetTimer()
	for i := 0; b.Loop(); i++ {
		_, _ = tree.Find(i & (1<<12 - 1))
	}
}
