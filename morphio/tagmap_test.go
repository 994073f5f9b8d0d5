package morphio_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neurite/go-morphtree/morphio"
)

func TestParseTagMap(t *testing.T) {
	m, err := morphio.ParseTagMap(strings.NewReader("soma: 1\nbasal: 3\ncustom: 42\n"))
	require.NoError(t, err)

	tag, err := m.Tag("custom")
	require.NoError(t, err)
	assert.Equal(t, int32(42), tag)
}

func TestParseTagMapRejectsGarbage(t *testing.T) {
	_, err := morphio.ParseTagMap(strings.NewReader("soma: [1, 2]\n"))
	require.Error(t, err)
}

func TestTagMapUnknownRegion(t *testing.T) {
	m := morphio.DefaultTagMap()

	tag, err := m.Tag("axon")
	require.NoError(t, err)
	assert.Equal(t, int32(2), tag)

	_, err = m.Tag("glia")
	require.ErrorIs(t, err, morphio.ErrUnknownRegion)
}
