package morphio

import (
	"errors"
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/google/uuid"

	"github.com/neurite/go-morphtree/morph"
)

var ErrDocumentShape = errors.New("morphio: document segment and parent counts differ")

// DocumentSegment is the wire form of one segment. The owning index and the
// id are implicit in the array position.
type DocumentSegment struct {
	Prox [4]float64 `cbor:"1,keyasint"`
	Dist [4]float64 `cbor:"2,keyasint"`
	Tag  int32      `cbor:"3,keyasint"`
}

// Document is the CBOR exchange form of a morphology: the flat segment and
// parent arrays plus a document identity and optional label. Parents use
// ^uint32(0) for "no parent", matching morph.NoParent.
type Document struct {
	ID       uuid.UUID         `cbor:"1,keyasint"`
	Label    string            `cbor:"2,keyasint,omitempty"`
	Parents  []uint32          `cbor:"3,keyasint"`
	Segments []DocumentSegment `cbor:"4,keyasint"`
}

// NewDocument captures a forest into a freshly-identified document.
func NewDocument(t *morph.Tree, label string) Document {
	segments := t.Segments()
	parents := t.Parents()

	d := Document{
		ID:       uuid.New(),
		Label:    label,
		Parents:  make([]uint32, len(parents)),
		Segments: make([]DocumentSegment, len(segments)),
	}
	for i, p := range parents {
		d.Parents[i] = uint32(p)
	}
	for i, seg := range segments {
		d.Segments[i] = DocumentSegment{
			Prox: [4]float64{seg.Prox.X, seg.Prox.Y, seg.Prox.Z, seg.Prox.Radius},
			Dist: [4]float64{seg.Dist.X, seg.Dist.Y, seg.Dist.Z, seg.Dist.Radius},
			Tag:  seg.Tag,
		}
	}
	return d
}

// Tree rebuilds the forest through the ordinary Append path, so a document
// with out-of-order or out-of-range parents is rejected with the core's
// ErrInvalidParent rather than producing a malformed Tree.
func (d Document) Tree() (*morph.Tree, error) {
	if len(d.Parents) != len(d.Segments) {
		return nil, fmt.Errorf("%w: %d segments, %d parents", ErrDocumentShape, len(d.Segments), len(d.Parents))
	}

	tree := &morph.Tree{}
	tree.Reserve(morph.Index(len(d.Segments)))
	for i, seg := range d.Segments {
		prox := morph.Point{X: seg.Prox[0], Y: seg.Prox[1], Z: seg.Prox[2], Radius: seg.Prox[3]}
		dist := morph.Point{X: seg.Dist[0], Y: seg.Dist[1], Z: seg.Dist[2], Radius: seg.Dist[3]}
		if _, err := tree.Append(morph.Index(d.Parents[i]), prox, dist, seg.Tag); err != nil {
			return nil, err
		}
	}
	return tree, nil
}

// Codec pairs deterministic CBOR encode options with their matching decode
// options, so the same document always marshals to the same bytes.
type Codec struct {
	encMode cbor.EncMode
	decMode cbor.DecMode
}

func NewCodec() (Codec, error) {
	encMode, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return Codec{}, err
	}
	decMode, err := cbor.DecOptions{}.DecMode()
	if err != nil {
		return Codec{}, err
	}
	return Codec{encMode: encMode, decMode: decMode}, nil
}

func (c Codec) MarshalDocument(d Document) ([]byte, error) {
	return c.encMode.Marshal(d)
}

func (c Codec) UnmarshalDocument(data []byte) (Document, error) {
	var d Document
	if err := c.decMode.Unmarshal(data, &d); err != nil {
		return Document{}, err
	}
	return d, nil
}
