package morph

// TagRoots returns, in ascending index order, the entry points into the
// regions carrying tag: every segment whose tag equals tag while its parent
// is either absent or differently tagged.
func TagRoots(t *Tree, tag int32) []Index {
	segments := t.Segments()
	parents := t.Parents()

	var roots []Index
	for i := range segments {
		if segments[i].Tag != tag {
			continue
		}
		if par := parents[i]; par == NoParent || segments[par].Tag != tag {
			roots = append(roots, Index(i))
		}
	}
	return roots
}
