package morph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurite/go-morphtree/morph"
	"github.com/neurite/go-morphtree/morphtesting"
)

// dendriteScenario is the canonical pruning fixture:
//
//	r(0, tag 0) -> a(1, tag 1) -> b(2, tag 1)
//	            -> c(3, tag 0) -> d(4, tag 0)
func dendriteScenario(t *testing.T) *morph.Tree {
	t.Helper()
	return morphtesting.MustBuild(t, []morphtesting.Seg{
		{Parent: morph.NoParent, Prox: morphtesting.P(0, 0, 0), Dist: morphtesting.P(0, 0, 1), Tag: 0},
		{Parent: 0, Prox: morphtesting.P(0, 0, 1), Dist: morphtesting.P(0, 0, 2), Tag: 1},
		{Parent: 1, Prox: morphtesting.P(0, 0, 2), Dist: morphtesting.P(0, 0, 3), Tag: 1},
		{Parent: 0, Prox: morphtesting.P(0, 0, 1), Dist: morphtesting.P(1, 0, 1), Tag: 0},
		{Parent: 3, Prox: morphtesting.P(1, 0, 1), Dist: morphtesting.P(2, 0, 1), Tag: 0},
	})
}

func TestTagRoots(t *testing.T) {
	tree := dendriteScenario(t)

	assert.Equal(t, []morph.Index{1}, morph.TagRoots(tree, 1))
	assert.Equal(t, []morph.Index{0}, morph.TagRoots(tree, 0))
	assert.Empty(t, morph.TagRoots(tree, 9))
}

func TestTagRootsMultipleRegions(t *testing.T) {
	// two disjoint tag-1 regions under a tag-0 root
	tree := morphtesting.MustBuild(t, []morphtesting.Seg{
		{Parent: morph.NoParent, Prox: morphtesting.P(0, 0, 0), Dist: morphtesting.P(0, 0, 1), Tag: 0},
		{Parent: 0, Prox: morphtesting.P(0, 0, 1), Dist: morphtesting.P(0, 0, 2), Tag: 1},
		{Parent: 0, Prox: morphtesting.P(0, 0, 1), Dist: morphtesting.P(1, 0, 1), Tag: 0},
		{Parent: 2, Prox: morphtesting.P(1, 0, 1), Dist: morphtesting.P(2, 0, 1), Tag: 1},
	})

	assert.Equal(t, []morph.Index{1, 3}, morph.TagRoots(tree, 1))
}

func TestPruneTagScenario(t *testing.T) {
	tree := dendriteScenario(t)

	out, roots, err := morph.PruneTag(tree, 1)
	require.NoError(t, err)

	assert.Equal(t, []morph.Index{1}, roots, "tag roots are reported in the original numbering")
	require.Equal(t, morph.Index(3), out.Size())

	// survivors renumber to r=0, c=1, d=2 with parents npos, 0, 1
	assert.Equal(t, []morph.Index{morph.NoParent, 0, 1}, out.Parents())

	want := morphtesting.MustBuild(t, []morphtesting.Seg{
		{Parent: morph.NoParent, Prox: morphtesting.P(0, 0, 0), Dist: morphtesting.P(0, 0, 1), Tag: 0},
		{Parent: 0, Prox: morphtesting.P(0, 0, 1), Dist: morphtesting.P(1, 0, 1), Tag: 0},
		{Parent: 1, Prox: morphtesting.P(1, 0, 1), Dist: morphtesting.P(2, 0, 1), Tag: 0},
	})
	assert.True(t, morph.Equivalent(want, out))
}

func TestPruneTagAbsent(t *testing.T) {
	g := morphtesting.NewGenerator(61)
	tree := g.RandomForest(t, 80, 3) // tags in [0, 3)

	out, roots, err := morph.PruneTag(tree, 7)
	require.NoError(t, err)
	assert.Empty(t, roots)
	assert.True(t, morph.Equivalent(tree, out))
}

func TestPruneTagUnprunedChild(t *testing.T) {
	// a tag-0 child below a tag-1 segment would be orphaned by the removal
	tree := morphtesting.MustBuild(t, []morphtesting.Seg{
		{Parent: morph.NoParent, Prox: morphtesting.P(0, 0, 0), Dist: morphtesting.P(0, 0, 1), Tag: 1},
		{Parent: 0, Prox: morphtesting.P(0, 0, 1), Dist: morphtesting.P(0, 0, 2), Tag: 0},
	})

	out, roots, err := morph.PruneTag(tree, 1)
	require.ErrorIs(t, err, morph.ErrUnprunedChild)
	assert.Nil(t, out, "no forest is produced on a data-integrity failure")
	assert.Nil(t, roots)
}

func TestPruneTagMultipleRuns(t *testing.T) {
	// removed indices form two separate runs, exercising the run-compressed
	// parent remapping:
	//
	//	0 t0 | 1,2 t5 | 3 t0(parent 0) | 4 t5 | 5 t0(parent 3)
	tree := morphtesting.MustBuild(t, []morphtesting.Seg{
		{Parent: morph.NoParent, Prox: morphtesting.P(0, 0, 0), Dist: morphtesting.P(0, 0, 1), Tag: 0},
		{Parent: 0, Prox: morphtesting.P(0, 0, 1), Dist: morphtesting.P(0, 1, 1), Tag: 5},
		{Parent: 1, Prox: morphtesting.P(0, 1, 1), Dist: morphtesting.P(0, 2, 1), Tag: 5},
		{Parent: 0, Prox: morphtesting.P(0, 0, 1), Dist: morphtesting.P(1, 0, 1), Tag: 0},
		{Parent: 3, Prox: morphtesting.P(1, 0, 1), Dist: morphtesting.P(1, 1, 1), Tag: 5},
		{Parent: 3, Prox: morphtesting.P(1, 0, 1), Dist: morphtesting.P(2, 0, 1), Tag: 0},
	})

	out, roots, err := morph.PruneTag(tree, 5)
	require.NoError(t, err)

	assert.Equal(t, []morph.Index{1, 4}, roots)
	require.Equal(t, morph.Index(3), out.Size())
	// survivors 0, 3, 5 renumber to 0, 1, 2
	assert.Equal(t, []morph.Index{morph.NoParent, 0, 1}, out.Parents())
}

func TestPruneTagWholeForest(t *testing.T) {
	tree := morphtesting.Chain(t, 6, 3)

	out, roots, err := morph.PruneTag(tree, 3)
	require.NoError(t, err)
	assert.True(t, out.Empty())
	assert.Equal(t, []morph.Index{0}, roots)
}
