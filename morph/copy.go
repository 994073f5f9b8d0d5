package morph

// Predicate decides, for a pending (destParent, srcNode) pair, whether the
// source node is copied. Returning false discards the node and its entire
// subtree: none of its descendants are visited. This is the only pruning
// mechanism in the package, so pruning is subtree-closed by construction.
type Predicate func(destParent, srcNode Index) bool

// KeepAll is the predicate that copies everything.
func KeepAll(Index, Index) bool { return true }

// workItem pairs a parent index in the destination tree with a segment index
// in the source tree.
type workItem struct {
	parent Index // in dst
	id     Index // in src
}

// CopySubtreeIf copies the subtree of src rooted at id into dst, attaching
// the copy under the destination segment parent (NoParent makes the copy a
// new root). keep is consulted for every visited node; see Predicate for the
// pruning contract. A nil dst starts a fresh empty tree; a non-nil dst is
// extended in place and also returned.
//
// The walk is an explicit-stack depth-first traversal, so its depth is
// bounded only by memory, never by the goroutine stack. Children are pushed
// in ascending index order, which makes them pop, and therefore append, in
// descending order; callers that need a particular output numbering must not
// rely on anything beyond that.
func CopySubtreeIf(src *Tree, parent, id Index, keep Predicate, dst *Tree) (*Tree, error) {
	childrenOf := ChildrenOf(src)
	segments := src.Segments()

	if dst == nil {
		dst = &Tree{}
	}

	todo := []workItem{{parent: parent, id: id}}
	for len(todo) > 0 {
		node := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		if !keep(node.parent, node.id) {
			continue
		}
		seg := segments[node.id]
		current, err := dst.Append(node.parent, seg.Prox, seg.Dist, seg.Tag)
		if err != nil {
			return nil, err
		}
		for _, child := range childrenOf[node.id] {
			todo = append(todo, workItem{parent: current, id: child})
		}
	}
	return dst, nil
}
