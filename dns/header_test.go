package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHeaderBufferFlagsAndCounts(t *testing.T) {
	buf := make([]byte, 12)
	h, err := newHeaderBuffer(buf)
	require.NoError(t, err)

	h.SetID(42)
	h.SetOpcode(2)
	h.SetFlags(FlagQR | FlagRD)
	h.SetRCode(3)
	h.SetQuestions(1)
	h.SetAnswers(2)
	h.SetAuthorities(3)
	h.SetAdditionals(4)

	assert.Equal(t, uint16(42), h.ID())
	assert.Equal(t, uint8(2), h.Opcode())
	assert.True(t, h.HasFlags(FlagQR))
	assert.True(t, h.HasFlags(FlagRD))
	assert.False(t, h.HasFlags(FlagAA))
	assert.Equal(t, uint8(3), h.RCode())
	assert.Equal(t, uint16(1), h.Questions())
	assert.Equal(t, uint16(2), h.Answers())
	assert.Equal(t, uint16(3), h.Authorities())
	assert.Equal(t, uint16(4), h.Additionals())

	h.RemoveFlags(FlagQR)
	assert.False(t, h.HasFlags(FlagQR))
	assert.True(t, h.HasFlags(FlagRD))
}

func TestHeaderReservedBit(t *testing.T) {
	buf := make([]byte, 12)
	h, err := newHeaderBuffer(buf)
	require.NoError(t, err)
	assert.False(t, h.ReservedBitSet())
	h.setFlags16(flagZ)
	assert.True(t, h.ReservedBitSet())
}

func TestHeaderRCodeLowNibbleOnlyWithoutOPT(t *testing.T) {
	buf := make([]byte, 12)
	h, err := newHeaderBuffer(buf)
	require.NoError(t, err)
	h.SetRCode(0xFF) // caller passing an out-of-range value
	assert.Equal(t, uint8(0x0F), h.RCode())
}
