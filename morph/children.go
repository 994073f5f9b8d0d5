package morph

// ChildrenOf inverts the parent relation, returning a map from parent index
// to that node's children in ascending index order. Roots are bucketed under
// NoParent. The map is derived on demand and never stored on the Tree.
//
// Every traversal in this package depends on the ascending bucket order for
// deterministic output, so ties are broken by numeric index. The single
// forward scan below fills each bucket in ascending order by construction.
func ChildrenOf(t *Tree) map[Index][]Index {
	parents := t.Parents()
	children := make(map[Index][]Index, len(parents)+1)
	for i := range parents {
		children[parents[i]] = append(children[parents[i]], Index(i))
	}
	return children
}
