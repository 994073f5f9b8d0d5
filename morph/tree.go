package morph

import (
	"slices"
	"strings"
)

// Tree is the parent-indexed forest. It owns three parallel, append-ordered
// arrays: the segments themselves, each segment's parent index, and a
// per-segment child count used only to classify nodes as fork or terminal.
//
// The zero value is an empty forest ready for use. A Tree only grows, and
// only through Append and Extend; the structural algorithms in this package
// never mutate an existing Tree, they build new ones.
//
// Append is the single mutating entry point and requires exclusive access to
// the Tree. Read-only operations may run concurrently with each other, but
// not with an in-flight Append on the same Tree.
type Tree struct {
	segments []Segment
	parents  []Index
	nkids    []uint32
}

// Reserve pre-allocates capacity for n segments.
func (t *Tree) Reserve(n Index) {
	t.segments = slices.Grow(t.segments, int(n))
	t.parents = slices.Grow(t.parents, int(n))
	t.nkids = slices.Grow(t.nkids, int(n))
}

// Append adds a segment with explicit proximal and distal endpoints under
// parent, returning the new segment's index. parent must be NoParent (a new
// root) or the index of an existing segment, otherwise ErrInvalidParent is
// returned and the Tree is unchanged.
func (t *Tree) Append(parent Index, prox, dist Point, tag int32) (Index, error) {
	if parent >= t.Size() && parent != NoParent {
		return NoParent, invalidParent(parent, t.Size())
	}

	id := t.Size()
	t.segments = append(t.segments, Segment{ID: id, Prox: prox, Dist: dist, Tag: tag})
	t.parents = append(t.parents, parent)

	t.nkids = append(t.nkids, 0)
	if parent != NoParent {
		t.nkids[parent]++
	}

	return id, nil
}

// Extend chains a segment onto parent, reusing the parent's distal point as
// the new segment's proximal point. A root cannot be created this way; both
// endpoints of a root must be given explicitly, so NoParent is rejected with
// ErrInvalidParent.
func (t *Tree) Extend(parent Index, dist Point, tag int32) (Index, error) {
	if parent == NoParent || parent >= t.Size() {
		return NoParent, invalidParent(parent, t.Size())
	}
	return t.Append(parent, t.segments[parent].Dist, dist, tag)
}

// Size returns the number of segments in the forest.
func (t *Tree) Size() Index {
	return Index(len(t.segments))
}

// Empty reports whether the forest has no segments.
func (t *Tree) Empty() bool {
	return len(t.segments) == 0
}

// IsRoot reports whether segment i has no parent.
func (t *Tree) IsRoot(i Index) (bool, error) {
	if i >= t.Size() {
		return false, noSuchSegment(i, t.Size())
	}
	return t.parents[i] == NoParent, nil
}

// IsFork reports whether segment i has two or more children.
func (t *Tree) IsFork(i Index) (bool, error) {
	if i >= t.Size() {
		return false, noSuchSegment(i, t.Size())
	}
	return t.nkids[i] >= 2, nil
}

// IsTerminal reports whether segment i has no children.
func (t *Tree) IsTerminal(i Index) (bool, error) {
	if i >= t.Size() {
		return false, noSuchSegment(i, t.Size())
	}
	return t.nkids[i] == 0, nil
}

// Segments returns a read-only view of the segment array in append order.
// Callers must not modify it.
func (t *Tree) Segments() []Segment {
	return t.segments
}

// Parents returns a read-only view of the parent-index array. parents[i] is
// the parent of segment i, or NoParent for roots. Callers must not modify
// it.
func (t *Tree) Parents() []Index {
	return t.parents
}

// Clone returns a deep copy of the forest.
func (t *Tree) Clone() *Tree {
	return &Tree{
		segments: slices.Clone(t.segments),
		parents:  slices.Clone(t.parents),
		nkids:    slices.Clone(t.nkids),
	}
}

// String renders the canonical text form: every segment in append order,
// then the parenthesized parent list with "npos" for roots. Trees of fewer
// than two segments render on a single line.
func (t *Tree) String() string {
	oneLine := t.Size() < 2

	var b strings.Builder
	b.WriteString("(segment_tree (")
	if !oneLine {
		b.WriteString("\n  ")
	}
	for i, seg := range t.segments {
		if i > 0 {
			b.WriteString("\n  ")
		}
		b.WriteString(seg.String())
	}
	if oneLine {
		b.WriteString(") (")
	} else {
		b.WriteString(")\n  (")
	}
	for i, p := range t.parents {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(p.String())
	}
	b.WriteString("))")
	return b.String()
}
