// Package morphtesting provides deterministic forest builders shared by the
// go-morphtree test suites.
package morphtesting

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/neurite/go-morphtree/morph"
)

// Seg is one row of a compact forest description, in append order.
type Seg struct {
	Parent morph.Index
	Prox   morph.Point
	Dist   morph.Point
	Tag    int32
}

// P is shorthand for a point with unit radius.
func P(x, y, z float64) morph.Point {
	return morph.Point{X: x, Y: y, Z: z, Radius: 1}
}

// MustBuild appends rows into a fresh forest, failing the test on any
// append error.
func MustBuild(t *testing.T, rows []Seg) *morph.Tree {
	t.Helper()
	tree := &morph.Tree{}
	for _, r := range rows {
		_, err := tree.Append(r.Parent, r.Prox, r.Dist, r.Tag)
		require.NoError(t, err)
	}
	return tree
}

// Chain builds an unbranched chain of n segments along the z axis, all
// carrying tag. Deep chains are the degenerate case the iterative
// traversals exist for.
func Chain(t *testing.T, n int, tag int32) *morph.Tree {
	t.Helper()
	tree := &morph.Tree{}
	require.Greater(t, n, 0)

	prev, err := tree.Append(morph.NoParent, P(0, 0, 0), P(0, 0, 1), tag)
	require.NoError(t, err)
	for i := 1; i < n; i++ {
		prev, err = tree.Extend(prev, P(0, 0, float64(i+1)), tag)
		require.NoError(t, err)
	}
	return tree
}

// Generator produces pseudo-random forests. It is seeded explicitly so the
// generated data is the same from run to run.
type Generator struct {
	rng *rand.Rand
}

func NewGenerator(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// RandomForest builds a forest of n segments with tags drawn from
// [0, ntags). Each new segment attaches to a uniformly chosen earlier
// segment, or becomes an additional root roughly once in sixteen appends.
func (g *Generator) RandomForest(t *testing.T, n int, ntags int32) *morph.Tree {
	t.Helper()
	tree := &morph.Tree{}
	for i := 0; i < n; i++ {
		parent := morph.NoParent
		if i > 0 && g.rng.Intn(16) != 0 {
			parent = morph.Index(g.rng.Intn(i))
		}
		prox := g.point()
		if parent != morph.NoParent {
			prox = tree.Segments()[parent].Dist
		}
		_, err := tree.Append(parent, prox, g.point(), g.rng.Int31n(ntags))
		require.NoError(t, err)
	}
	return tree
}

// ShuffleSiblings rebuilds src with the children of every node (and the
// roots themselves) appended in a random order. Geometry, tags and the
// parent/child relation are preserved, so the result must always be
// structurally equivalent to src.
func (g *Generator) ShuffleSiblings(t *testing.T, src *morph.Tree) *morph.Tree {
	t.Helper()
	childrenOf := morph.ChildrenOf(src)
	segments := src.Segments()

	type item struct {
		parent morph.Index // in dst
		id     morph.Index // in src
	}
	var todo []item
	for _, root := range g.shuffled(childrenOf[morph.NoParent]) {
		todo = append(todo, item{parent: morph.NoParent, id: root})
	}

	dst := &morph.Tree{}
	for len(todo) > 0 {
		next := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		seg := segments[next.id]
		current, err := dst.Append(next.parent, seg.Prox, seg.Dist, seg.Tag)
		require.NoError(t, err)
		for _, child := range g.shuffled(childrenOf[next.id]) {
			todo = append(todo, item{parent: current, id: child})
		}
	}
	return dst
}

func (g *Generator) shuffled(ids []morph.Index) []morph.Index {
	out := make([]morph.Index, len(ids))
	copy(out, ids)
	g.rng.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })
	return out
}

func (g *Generator) point() morph.Point {
	return morph.Point{
		X:      g.rng.Float64() * 100,
		Y:      g.rng.Float64() * 100,
		Z:      g.rng.Float64() * 100,
		Radius: g.rng.Float64()*2 + 0.1,
	}
}
