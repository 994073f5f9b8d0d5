package morph

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// Index identifies a segment by its position in the owning Tree's append
// order. It doubles as the parent-link type.
type Index uint32

// NoParent is the reserved sentinel meaning "no parent" or "not found".
const NoParent = ^Index(0)

// String renders the index, using the reserved literal for the sentinel.
func (i Index) String() string {
	if i == NoParent {
		return "npos"
	}
	return strconv.FormatUint(uint64(i), 10)
}

// Point is a sample on the cable: a 3d position plus the cable radius at
// that position. Opaque value type as far as the structural algorithms are
// concerned; only equality and the total order below are used.
type Point struct {
	X      float64
	Y      float64
	Z      float64
	Radius float64
}

// Compare orders points lexicographically on (X, Y, Z, Radius).
func (p Point) Compare(o Point) int {
	if c := cmp.Compare(p.X, o.X); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Y, o.Y); c != 0 {
		return c
	}
	if c := cmp.Compare(p.Z, o.Z); c != 0 {
		return c
	}
	return cmp.Compare(p.Radius, o.Radius)
}

func (p Point) String() string {
	return fmt.Sprintf("(point %s %s %s %s)",
		fmtCoord(p.X), fmtCoord(p.Y), fmtCoord(p.Z), fmtCoord(p.Radius))
}

func fmtCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Segment is one directed conical piece of cable between a proximal and a
// distal point, carrying an integer region tag. ID always equals the
// segment's position in the owning Tree and never changes within it.
type Segment struct {
	ID   Index
	Prox Point
	Dist Point
	Tag  int32
}

func (s Segment) String() string {
	var b strings.Builder
	b.WriteString("(segment ")
	b.WriteString(s.ID.String())
	b.WriteByte(' ')
	b.WriteString(s.Prox.String())
	b.WriteByte(' ')
	b.WriteString(s.Dist.String())
	b.WriteByte(' ')
	b.WriteString(strconv.FormatInt(int64(s.Tag), 10))
	b.WriteByte(')')
	return b.String()
}

// compareGeometry is the total order used by Equivalent: lexicographic on
// (Prox, Dist, Tag), ignoring ID.
func compareGeometry(a, b Segment) int {
	if c := a.Prox.Compare(b.Prox); c != 0 {
		return c
	}
	if c := a.Dist.Compare(b.Dist); c != 0 {
		return c
	}
	return cmp.Compare(a.Tag, b.Tag)
}
