package morph

// SplitAt cuts the forest at segment at, returning (pre, post). post is a
// copy of the subtree rooted at at, reparented so that at's image is a root.
// pre is a copy of everything else: every root-to-leaf path of the original
// forest with the subtree at at removed. at must be a valid, non-sentinel
// index, otherwise ErrInvalidParent is returned.
func SplitAt(t *Tree, at Index) (pre, post *Tree, err error) {
	if at >= t.Size() || at == NoParent {
		return nil, nil, invalidParent(at, t.Size())
	}

	// span the subtree starting at the splitting node
	post, err = CopySubtreeIf(t, NoParent, at, KeepAll, nil)
	if err != nil {
		return nil, nil, err
	}

	// copy the rest of the forest, root by root, skipping the post subtree
	pre = &Tree{}
	parents := t.Parents()
	for i := range parents {
		if parents[i] != NoParent {
			continue
		}
		pre, err = CopySubtreeIf(t, NoParent, Index(i),
			func(_, id Index) bool { return id != at }, pre)
		if err != nil {
			return nil, nil, err
		}
	}
	return pre, post, nil
}

// JoinAt grafts rhs onto lhs at segment at, returning a new forest; neither
// input is modified. at must be a valid index of lhs or NoParent, which
// attaches rhs as a new root. Only the component of rhs reachable from its
// first segment (index 0) is transplanted: rhs is assumed to be
// single-rooted, and any additional disjoint roots are omitted. An empty rhs
// yields a plain copy of lhs.
func JoinAt(lhs *Tree, at Index, rhs *Tree) (*Tree, error) {
	if at >= lhs.Size() && at != NoParent {
		return nil, invalidParent(at, lhs.Size())
	}
	out := lhs.Clone()
	if rhs.Empty() {
		return out, nil
	}
	return CopySubtreeIf(rhs, at, 0, KeepAll, out)
}
