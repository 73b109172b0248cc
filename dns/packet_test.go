package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hexBytes(t *testing.T, s string) []byte {
	t.Helper()
	var out []byte
	var hi byte
	have := false
	for _, r := range s {
		var v byte
		switch {
		case r >= '0' && r <= '9':
			v = byte(r - '0')
		case r >= 'a' && r <= 'f':
			v = byte(r-'a') + 10
		case r == ' ':
			continue
		default:
			t.Fatalf("bad hex char %q", r)
		}
		if !have {
			hi = v
			have = true
		} else {
			out = append(out, hi<<4|v)
			have = false
		}
	}
	require.False(t, have, "odd number of hex digits")
	return out
}

func TestScenarioA_QueryRoundTrip(t *testing.T) {
	raw := hexBytes(t, "00 03 01 00 00 01 00 00 00 00 00 00 06 67 6f 6f 67 6c 65 03 63 6f 6d 00 00 01 00 01")

	p, err := ParsePacket(raw)
	require.NoError(t, err)

	assert.Equal(t, uint16(3), p.ID)
	assert.False(t, p.QR)
	require.Len(t, p.Questions, 1)
	assert.Equal(t, "google.com.", p.Questions[0].QName.String())
	assert.Equal(t, QType(TypeA), p.Questions[0].QType)
	assert.Equal(t, QClass(ClassIN), p.Questions[0].QClass)
	assert.False(t, p.Questions[0].UnicastResponse)
	assert.Empty(t, p.Answers)

	out, err := BuildUncompressed(p)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}

func TestScenarioB_CompressedMultiAnswer(t *testing.T) {
	name, err := NewName("google.com")
	require.NoError(t, err)

	octets := [][4]byte{
		{74, 125, 236, 35}, {74, 125, 236, 37}, {74, 125, 236, 39}, {74, 125, 236, 32},
		{74, 125, 236, 40}, {74, 125, 236, 33}, {74, 125, 236, 41}, {74, 125, 236, 34},
		{74, 125, 236, 36}, {74, 125, 236, 46}, {74, 125, 236, 38},
	}

	p := &Packet{
		ID: 3, QR: true, RD: true, RA: true,
		Questions: []Question{{QName: name, QType: QType(TypeA), QClass: QClass(ClassIN)}},
	}
	for _, addr := range octets {
		p.Answers = append(p.Answers, ResourceRecord{
			Name: name, Class: ClassIN, TTL: 4, RData: A{Address: addr},
		})
	}

	compressed, err := BuildCompressed(p)
	require.NoError(t, err)

	parsed, err := ParsePacket(compressed)
	require.NoError(t, err)

	assert.True(t, parsed.QR)
	require.Len(t, parsed.Questions, 1)
	require.Len(t, parsed.Answers, 11)
	for i, rr := range parsed.Answers {
		assert.Equal(t, "google.com.", rr.Name.String())
		assert.Equal(t, ClassIN, rr.Class)
		assert.Equal(t, uint32(4), rr.TTL)
		a, ok := rr.RData.(A)
		require.True(t, ok)
		assert.Equal(t, octets[i], a.Address)
	}
}

func TestScenarioC_TwoCNAMECompression(t *testing.T) {
	a, err := NewName("a")
	require.NoError(t, err)
	foobar, err := NewName("foobar")
	require.NoError(t, err)

	p := &Packet{
		ID: 7,
		Answers: []ResourceRecord{
			{Name: a, Class: ClassIN, TTL: 30, RData: NewDomainName(TypeCNAME, foobar)},
			{Name: a, Class: ClassIN, TTL: 30, RData: NewDomainName(TypeCNAME, foobar)},
		},
	}

	compressed, err := BuildCompressed(p)
	require.NoError(t, err)
	parsedFromCompressed, err := ParsePacket(compressed)
	require.NoError(t, err)

	reserialised, err := BuildUncompressed(parsedFromCompressed)
	require.NoError(t, err)

	original, err := BuildUncompressed(p)
	require.NoError(t, err)

	assert.Equal(t, original, reserialised)
}

func TestScenarioD_ForwardPointerRejected(t *testing.T) {
	buf := make([]byte, 90)
	// A compression pointer at offset 40 pointing forward to offset 80.
	buf[40] = 0xC0
	buf[41] = 80

	c := &cursor{data: buf, offset: 40}
	_, err := parseName(c)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPacket)
}

func TestScenarioE_EDNSRCodeRoundTrip(t *testing.T) {
	const rcodeBADVERS = 16

	p := &Packet{
		ID: 9, QR: true,
		RCode: rcodeBADVERS & rcodeMask,
		OPT: &OPTInfo{
			UDPPayloadSize:    500,
			Version:           3,
			ExtendedRCodeHigh: rcodeBADVERS >> 4,
		},
	}

	out, err := BuildUncompressed(p)
	require.NoError(t, err)

	parsed, err := ParsePacket(out)
	require.NoError(t, err)

	assert.Equal(t, uint8(rcodeBADVERS), parsed.EffectiveRCode())
	require.NotNil(t, parsed.OPT)
	assert.Equal(t, uint16(500), parsed.OPT.UDPPayloadSize)
	assert.Equal(t, uint8(3), parsed.OPT.Version)
}

func TestHeaderReservedBitRejected(t *testing.T) {
	raw := hexBytes(t, "00 03 01 40 00 00 00 00 00 00 00 00")
	_, err := ParsePacket(raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPacket)
}

func TestNoCompressionPointerAtOrAbove14Bits(t *testing.T) {
	name, err := NewName("example.com")
	require.NoError(t, err)

	p := &Packet{ID: 1}
	for i := 0; i < 2000; i++ {
		p.Answers = append(p.Answers, ResourceRecord{
			Name: name, Class: ClassIN, TTL: 1, RData: A{Address: [4]byte{1, 2, 3, byte(i)}},
		})
	}

	out, err := BuildCompressed(p)
	require.NoError(t, err)

	for i := 0; i+1 < len(out); i++ {
		if out[i]&0xC0 == 0xC0 {
			ptr := int(out[i]&0x3F)<<8 | int(out[i+1])
			assert.Less(t, ptr, 1<<14)
		}
	}
}
