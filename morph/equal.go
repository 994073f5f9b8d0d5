package morph

import "slices"

// Equivalent reports whether two forests are structurally equivalent: equal
// segment counts and, pairing the two virtual roots, matching children at
// every matched node. Children are compared as multisets of (Prox, Dist,
// Tag) with IDs stripped, so the relation is insensitive to the order in
// which siblings were appended but exact on geometry and tag.
//
// Both sides sort their children by the same total order on (Prox, Dist,
// Tag); geometrically identical siblings therefore pair up arbitrarily but
// consistently. The check walks an explicit stack of matched cursor pairs
// and returns false at the first mismatch anywhere in the traversal.
func Equivalent(a, b *Tree) bool {
	if a.Size() != b.Size() {
		return false
	}

	aChildrenOf := ChildrenOf(a)
	bChildrenOf := ChildrenOf(b)

	// fetch the children of cursor, sorted by geometry with IDs ignored
	fetch := func(cursor Index, segments []Segment, childrenOf map[Index][]Index) []Segment {
		var segs []Segment
		for _, i := range childrenOf[cursor] {
			segs = append(segs, segments[i])
		}
		slices.SortFunc(segs, compareGeometry)
		return segs
	}

	type cursors struct {
		a Index
		b Index
	}
	todo := []cursors{{a: NoParent, b: NoParent}}
	for len(todo) > 0 {
		cur := todo[len(todo)-1]
		todo = todo[:len(todo)-1]

		as := fetch(cur.a, a.Segments(), aChildrenOf)
		bs := fetch(cur.b, b.Segments(), bChildrenOf)
		if len(as) != len(bs) {
			return false
		}
		for i := range as {
			if as[i].Prox != bs[i].Prox ||
				as[i].Dist != bs[i].Dist ||
				as[i].Tag != bs[i].Tag {
				return false
			}
			todo = append(todo, cursors{a: as[i].ID, b: bs[i].ID})
		}
	}
	return true
}
