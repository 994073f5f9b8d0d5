package morph

import "sort"

// PruneTag removes every segment carrying tag and renumbers the survivors
// contiguously, returning the new forest together with the tag roots of the
// removed region in the original numbering (see TagRoots).
//
// The input must satisfy the subtree-closed tag invariant: once a segment
// carries tag, so must all of its descendants until the region ends. A
// surviving segment whose parent carries tag would be orphaned by the
// removal; that is reported as ErrUnprunedChild and no forest is produced.
//
// Because the invariant forces removed indices into maximal contiguous runs,
// the renumbering table is run-compressed: for each run we record the index
// just past it and the cumulative removed count up to there. A survivor's
// new parent index is then its old one minus the offset of the last run
// ending at or before it, found by binary search.
func PruneTag(in *Tree, tag int32) (*Tree, []Index, error) {
	inSegments := in.Segments()
	inParents := in.Parents()
	out := &Tree{}

	var runEnds []Index // index just past each maximal removed run
	var runOffsets []Index
	var tagRoots []Index

	numPruned := Index(0)
	for i := range inSegments {
		if inSegments[i].Tag != tag {
			continue
		}
		numPruned++

		if par := inParents[i]; par == NoParent || inSegments[par].Tag != tag {
			tagRoots = append(tagRoots, Index(i))
		}

		if i+1 < len(inSegments) && inSegments[i+1].Tag != tag {
			runEnds = append(runEnds, Index(i+1))
			runOffsets = append(runOffsets, numPruned)
		}
	}

	for i := range inSegments {
		seg := inSegments[i]
		par := inParents[i]

		if seg.Tag == tag {
			continue
		}
		if par != NoParent && inSegments[par].Tag == tag {
			// children of pruned parents must themselves be pruned
			return nil, nil, unprunedChild(par, seg.ID, tag)
		}
		if par != NoParent {
			ui := sort.Search(len(runEnds), func(k int) bool { return runEnds[k] > par })
			if ui > 0 {
				par -= runOffsets[ui-1]
			}
		}
		if _, err := out.Append(par, seg.Prox, seg.Dist, seg.Tag); err != nil {
			return nil, nil, err
		}
	}

	return out, tagRoots, nil
}
