package morphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/neurite/go-morphtree/morph"
)

var (
	ErrSWCSyntax        = errors.New("morphio: malformed swc record")
	ErrSWCDuplicateID   = errors.New("morphio: duplicate swc sample id")
	ErrSWCUnknownParent = errors.New("morphio: swc sample references an unknown parent")
	ErrSWCUnreachable   = errors.New("morphio: swc sample not reachable from any root")
)

// SWCRecord is one sample line of an SWC file:
//
//	id type x y z radius parent
//
// parent is -1 for a root sample. Sample ids need not be sequential or
// ordered, but a parent must exist somewhere in the file.
type SWCRecord struct {
	ID     int
	Type   int32
	X      float64
	Y      float64
	Z      float64
	Radius float64
	Parent int
}

func (r SWCRecord) point() morph.Point {
	return morph.Point{X: r.X, Y: r.Y, Z: r.Z, Radius: r.Radius}
}

// ParseSWC reads SWC sample records. Blank lines and '#' comments are
// skipped; anything else must be a seven-field record.
func ParseSWC(r io.Reader) ([]SWCRecord, error) {
	var records []SWCRecord

	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 7 {
			return nil, fmt.Errorf("%w: line %d: want 7 fields, got %d", ErrSWCSyntax, lineno, len(fields))
		}

		var rec SWCRecord
		var err error
		if rec.ID, err = strconv.Atoi(fields[0]); err != nil {
			return nil, fmt.Errorf("%w: line %d: id: %v", ErrSWCSyntax, lineno, err)
		}
		typ, err := strconv.ParseInt(fields[1], 10, 32)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: type: %v", ErrSWCSyntax, lineno, err)
		}
		rec.Type = int32(typ)
		coords := []*float64{&rec.X, &rec.Y, &rec.Z, &rec.Radius}
		for i, dst := range coords {
			if *dst, err = strconv.ParseFloat(fields[2+i], 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: field %d: %v", ErrSWCSyntax, lineno, 2+i, err)
			}
		}
		if rec.Parent, err = strconv.Atoi(fields[6]); err != nil {
			return nil, fmt.Errorf("%w: line %d: parent: %v", ErrSWCSyntax, lineno, err)
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

// TreeFromSWC builds a forest from SWC samples. Every non-root sample
// becomes one segment running from its parent sample's point to its own,
// tagged with the sample's structure type; root samples contribute only
// their point. Children of each sample are visited in ascending sample-id
// order so the result is deterministic.
func TreeFromSWC(records []SWCRecord) (*morph.Tree, error) {
	byID := make(map[int]SWCRecord, len(records))
	for _, rec := range records {
		if _, ok := byID[rec.ID]; ok {
			return nil, fmt.Errorf("%w: id %d", ErrSWCDuplicateID, rec.ID)
		}
		byID[rec.ID] = rec
	}

	children := make(map[int][]int, len(records))
	var roots []int
	for _, rec := range records {
		if rec.Parent == -1 {
			roots = append(roots, rec.ID)
			continue
		}
		if _, ok := byID[rec.Parent]; !ok {
			return nil, fmt.Errorf("%w: sample %d, parent %d", ErrSWCUnknownParent, rec.ID, rec.Parent)
		}
		children[rec.Parent] = append(children[rec.Parent], rec.ID)
	}
	slices.Sort(roots)
	for _, ids := range children {
		slices.Sort(ids)
	}

	// explicit-stack walk from the root samples; pushing children in
	// reverse keeps the append order ascending by sample id
	type item struct {
		id        int
		parentSeg morph.Index
	}
	var todo []item
	for i := len(roots) - 1; i >= 0; i-- {
		for j := len(children[roots[i]]) - 1; j >= 0; j-- {
			todo = append(todo, item{id: children[roots[i]][j], parentSeg: morph.NoParent})
		}
	}

	tree := &morph.Tree{}
	visited := len(roots)
	for len(todo) > 0 {
		next := todo[len(todo)-1]
		todo = todo[:len(todo)-1]
		visited++

		rec := byID[next.id]
		seg, err := tree.Append(next.parentSeg, byID[rec.Parent].point(), rec.point(), rec.Type)
		if err != nil {
			return nil, err
		}
		for j := len(children[next.id]) - 1; j >= 0; j-- {
			todo = append(todo, item{id: children[next.id][j], parentSeg: seg})
		}
	}

	if visited != len(records) {
		return nil, fmt.Errorf("%w: %d of %d samples reached", ErrSWCUnreachable, visited, len(records))
	}
	return tree, nil
}

// ReadSWC parses SWC text and builds the forest in one step.
func ReadSWC(r io.Reader) (*morph.Tree, error) {
	records, err := ParseSWC(r)
	if err != nil {
		return nil, err
	}
	return TreeFromSWC(records)
}

// WriteSWC renders the forest as SWC samples: one root sample per root
// segment's proximal point, then one sample per segment's distal point.
// Sample ids are assigned sequentially in append order.
//
// SWC attaches the radius to the sample, not the segment end, so a forest
// whose segment proximal radius differs from the parent's distal radius
// does not survive the round trip exactly.
func WriteSWC(w io.Writer, t *morph.Tree) error {
	bw := bufio.NewWriter(w)

	segments := t.Segments()
	parents := t.Parents()

	next := 1
	sampleOf := make([]int, len(segments)) // segment index -> sample id of its distal point
	for i, seg := range segments {
		parentSample := -1
		if par := parents[i]; par != morph.NoParent {
			parentSample = sampleOf[par]
		} else {
			parentSample = next
			next++
			if err := writeSample(bw, parentSample, seg.Tag, seg.Prox, -1); err != nil {
				return err
			}
		}
		sampleOf[i] = next
		next++
		if err := writeSample(bw, sampleOf[i], seg.Tag, seg.Dist, parentSample); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeSample(w io.Writer, id int, typ int32, p morph.Point, parent int) error {
	_, err := fmt.Fprintf(w, "%d %d %g %g %g %g %d\n", id, typ, p.X, p.Y, p.Z, p.Radius, parent)
	return err
}
