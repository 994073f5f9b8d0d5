package morph

// PointTransform maps a point to a point. Supplied by the caller; typically
// an isometry, but any point-valued function is accepted.
type PointTransform func(Point) Point

// Apply returns a copy of the forest with transform applied to every
// segment's proximal and distal points. Parent links, tags and ids are
// unchanged and the input is not modified.
func Apply(t *Tree, transform PointTransform) *Tree {
	out := t.Clone()
	for i := range out.segments {
		out.segments[i].Prox = transform(out.segments[i].Prox)
		out.segments[i].Dist = transform(out.segments[i].Dist)
	}
	return out
}
