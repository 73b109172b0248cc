package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameRoundTrip(t *testing.T) {
	n, err := NewName("www.example.com")
	require.NoError(t, err)
	assert.Equal(t, "www.example.com.", n.String())
	assert.False(t, n.IsRoot())

	w := newWriter(false)
	require.NoError(t, n.writeUncompressed(w))

	c := newCursor(w.Bytes())
	parsed, err := parseName(c)
	require.NoError(t, err)
	assert.True(t, n.Equal(parsed))
}

func TestRootName(t *testing.T) {
	assert.True(t, Root.IsRoot())
	assert.Equal(t, ".", Root.String())
}

func TestNameLabelTooLong(t *testing.T) {
	long := make([]byte, 64)
	for i := range long {
		long[i] = 'a'
	}
	_, err := NewName(string(long) + ".com")
	require.Error(t, err)
}

func TestNameTotalLengthLimit(t *testing.T) {
	label := make([]byte, 63)
	for i := range label {
		label[i] = 'a'
	}
	var text string
	for i := 0; i < 5; i++ {
		text += string(label) + "."
	}
	_, err := NewName(text)
	require.Error(t, err)
}

func TestNameEscapedDot(t *testing.T) {
	n, err := NewName(`Action\.domains`)
	require.NoError(t, err)
	require.Len(t, n.Labels(), 1)
	assert.Equal(t, "Action.domains", string(n.Labels()[0]))
	assert.Equal(t, `Action\.domains.`, n.String())
}

func TestCompressionPointerCycleRejected(t *testing.T) {
	buf := make([]byte, 4)
	buf[0] = 0xC0
	buf[1] = 0x00 // points at itself

	c := &cursor{data: buf, offset: 0}
	_, err := parseName(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPacket)
}
