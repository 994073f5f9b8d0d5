package morphio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrUnknownRegion = errors.New("morphio: unknown region name")

// TagMap maps region names to integer tags, letting callers address tag
// regions by name ("axon") instead of by the raw SWC structure id.
type TagMap map[string]int32

// DefaultTagMap follows the SWC structure-id convention.
func DefaultTagMap() TagMap {
	return TagMap{
		"soma": 1,
		"axon": 2,
		"dend": 3,
		"apic": 4,
	}
}

// ParseTagMap decodes a yaml mapping of region names to tags.
func ParseTagMap(r io.Reader) (TagMap, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	m := TagMap{}
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("morphio: parsing tag map: %w", err)
	}
	return m, nil
}

// LoadTagMap reads a yaml tag map from path.
func LoadTagMap(path string) (TagMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseTagMap(f)
}

// Tag resolves a region name.
func (m TagMap) Tag(name string) (int32, error) {
	tag, ok := m[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownRegion, name)
	}
	return tag, nil
}
