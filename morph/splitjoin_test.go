package morph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurite/go-morphtree/morph"
	"github.com/neurite/go-morphtree/morphtesting"
)

func TestSplitAtInvalid(t *testing.T) {
	tree := morphtesting.Chain(t, 3, 0)

	_, _, err := morph.SplitAt(tree, 3)
	require.ErrorIs(t, err, morph.ErrInvalidParent)

	_, _, err = morph.SplitAt(tree, morph.NoParent)
	require.ErrorIs(t, err, morph.ErrInvalidParent)
}

func TestSplitAtSingleNode(t *testing.T) {
	tree := morphtesting.Chain(t, 1, 0)

	pre, post, err := morph.SplitAt(tree, 0)
	require.NoError(t, err)

	assert.True(t, pre.Empty())
	require.Equal(t, morph.Index(1), post.Size())
	root, err := post.IsRoot(0)
	require.NoError(t, err)
	assert.True(t, root)
	assert.True(t, morph.Equivalent(tree, post))
}

func TestSplitAtMidChain(t *testing.T) {
	tree := morphtesting.Chain(t, 10, 0)

	pre, post, err := morph.SplitAt(tree, 4)
	require.NoError(t, err)

	assert.Equal(t, morph.Index(4), pre.Size())
	assert.Equal(t, morph.Index(6), post.Size())
	root, err := post.IsRoot(0)
	require.NoError(t, err)
	assert.True(t, root)
}

// findByGeometry locates the image of seg in tree by its (Prox, Dist, Tag)
// value, which the generator keeps unique.
func findByGeometry(t *testing.T, tree *morph.Tree, seg morph.Segment) morph.Index {
	t.Helper()
	found := morph.NoParent
	for _, cand := range tree.Segments() {
		if cand.Prox == seg.Prox && cand.Dist == seg.Dist && cand.Tag == seg.Tag {
			require.Equal(t, morph.NoParent, found, "geometry must identify a unique segment")
			found = cand.ID
		}
	}
	require.NotEqual(t, morph.NoParent, found)
	return found
}

func TestSplitJoinRoundTrip(t *testing.T) {
	g := morphtesting.NewGenerator(31)
	tree := g.RandomForest(t, 120, 3)

	for _, at := range []morph.Index{0, 17, 59, tree.Size() - 1} {
		pre, post, err := morph.SplitAt(tree, at)
		require.NoError(t, err)

		// re-attach post where the subtree was cut off: at's parent, located
		// in pre's renumbering
		attach := morph.NoParent
		if p := tree.Parents()[at]; p != morph.NoParent {
			attach = findByGeometry(t, pre, tree.Segments()[p])
		}

		joined, err := morph.JoinAt(pre, attach, post)
		require.NoError(t, err)
		assert.True(t, morph.Equivalent(tree, joined), "split at %d must round trip", at)
	}
}

func TestJoinAtInvalid(t *testing.T) {
	lhs := morphtesting.Chain(t, 2, 0)
	rhs := morphtesting.Chain(t, 2, 1)

	_, err := morph.JoinAt(lhs, 2, rhs)
	require.ErrorIs(t, err, morph.ErrInvalidParent)
}

func TestJoinAtSentinelAddsRoot(t *testing.T) {
	lhs := morphtesting.Chain(t, 2, 0)
	rhs := morphtesting.Chain(t, 3, 1)

	joined, err := morph.JoinAt(lhs, morph.NoParent, rhs)
	require.NoError(t, err)

	assert.Equal(t, morph.Index(5), joined.Size())
	assert.Len(t, morph.ChildrenOf(joined)[morph.NoParent], 2)
	// inputs are untouched
	assert.Equal(t, morph.Index(2), lhs.Size())
	assert.Equal(t, morph.Index(3), rhs.Size())
}

func TestJoinAtEmptyRhs(t *testing.T) {
	lhs := morphtesting.Chain(t, 4, 0)

	joined, err := morph.JoinAt(lhs, 1, &morph.Tree{})
	require.NoError(t, err)
	assert.True(t, morph.Equivalent(lhs, joined))
}
