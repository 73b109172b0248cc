package dns

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeAndCheckLen writes v and asserts that v.len() exactly predicted
// the number of bytes emitted.
func writeAndCheckLen(t *testing.T, v RData) []byte {
	t.Helper()
	w := newWriter(false)
	require.NoError(t, v.write(w))
	assert.Equal(t, v.len(), len(w.Bytes()))
	return w.Bytes()
}

func TestRDataLenInvariant(t *testing.T) {
	name, err := NewName("example.com")
	require.NoError(t, err)
	other, err := NewName("mail.example.com")
	require.NoError(t, err)

	cases := []RData{
		A{Address: [4]byte{1, 2, 3, 4}},
		AAAA{Address: [16]byte{0x20, 0x01, 0xd, 0xb8}},
		NewDomainName(TypeCNAME, name),
		SOA{MName: name, RName: other, Serial: 1, Refresh: 2, Retry: 3, Expire: 4, Minimum: 5},
		NewPreferenceName(TypeMX, 10, name),
		TXT{Strings: []CharacterString{CharacterString("hello"), CharacterString("world")}},
		SRV{Priority: 1, Weight: 2, Port: 3, Target: name},
		NAPTR{Order: 1, Preference: 2, Flags: CharacterString("u"), Services: CharacterString("E2U+sip"), Regexp: CharacterString("!.*!x!"), Replacement: other},
		NewSVCB(TypeSVCB, 1, name, []SVCBParam{{Key: SVCBKeyPort, Value: []byte{0, 80}}}),
		NSEC{NextName: other, Windows: []NSECWindow{{Block: 0, Bitmap: []byte{0x40}}}},
		NewDS(TypeDS, 1, 8, 2, []byte{1, 2, 3, 4}),
		DNSKEY{Flags: 257, Protocol: 3, Algorithm: 8, PublicKey: []byte{9, 9, 9}},
		CERT{CertType: 1, KeyTag: 2, Algorithm: 3, Certificate: []byte{1}},
		TLSA{Usage: 3, Selector: 1, MatchingType: 1, CertificateAssociationData: []byte{1, 2}},
		ZONEMD{Serial: 1, Scheme: 1, HashAlgorithm: 1, Digest: []byte{1, 2, 3}},
		CAA{Flags: 0, Tag: CharacterString("issue"), Value: []byte("letsencrypt.org")},
		WKS{Address: [4]byte{1, 2, 3, 4}, Protocol: 6, Bitmap: []byte{0xff, 0x01}},
		LOC{Version: 0, Size: 0x12, HorizPre: 0x16, VertPre: 0x13, Latitude: 1, Longitude: 2, Altitude: 3},
		NewEUI(TypeEUI48, []byte{1, 2, 3, 4, 5, 6}),
		NewEUI(TypeEUI64, []byte{1, 2, 3, 4, 5, 6, 7, 8}),
		NSAP{Data: [20]byte{1, 2, 3}},
		IPSECKEY{Precedence: 1, GatewayType: 0, Algorithm: 2, Gateway: GatewayNone{}, PublicKey: []byte{1, 2}},
		OPT{Options: []OPTOption{{Code: OptCodeCookie, Data: []byte{1, 2, 3, 4, 5, 6, 7, 8}}}},
	}

	for _, v := range cases {
		writeAndCheckLen(t, v)
	}
}

func TestIPSECKEYRejectsMismatchedGatewayType(t *testing.T) {
	k := IPSECKEY{Precedence: 0, GatewayType: 1, Algorithm: 0, Gateway: GatewayNone{}, PublicKey: nil}
	w := newWriter(false)
	err := k.write(w)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAttemptedInvalidOperation)
}

func TestLOCRejectsNonZeroVersion(t *testing.T) {
	l := LOC{Version: 1}
	w := newWriter(false)
	err := l.write(w)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidPacket)
}

func TestSVCBSortsParamsOnWrite(t *testing.T) {
	name, err := NewName("example.com")
	require.NoError(t, err)
	s := NewSVCB(TypeHTTPS, 1, name, []SVCBParam{
		{Key: SVCBKeyIPv4Hint, Value: []byte{1, 2, 3, 4}},
		{Key: SVCBKeyALPN, Value: []byte("h2")},
	})
	out := writeAndCheckLen(t, s)

	parsed, err := parseSVCBFamily(TypeHTTPS)(newCursor(out), len(out))
	require.NoError(t, err)
	svcb := parsed.(SVCB)
	require.Len(t, svcb.Params, 2)
	assert.Equal(t, SVCBKeyALPN, svcb.Params[0].Key)
	assert.Equal(t, SVCBKeyIPv4Hint, svcb.Params[1].Key)
}

func TestNSECRejectsDuplicateWindowBlocks(t *testing.T) {
	name, err := NewName("example.com")
	require.NoError(t, err)
	n := NSEC{NextName: name, Windows: []NSECWindow{
		{Block: 0, Bitmap: []byte{1}},
		{Block: 0, Bitmap: []byte{2}},
	}}
	w := newWriter(false)
	err = n.write(w)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrAttemptedInvalidOperation)
}

func TestUnknownTypeFallsBackToNULL(t *testing.T) {
	c := newCursor([]byte{0xAA, 0xBB, 0xCC})
	rd, err := dispatchRData(Type(9999), c, 3)
	require.NoError(t, err)
	null, ok := rd.(NULL)
	require.True(t, ok)
	assert.Equal(t, []byte{0xAA, 0xBB, 0xCC}, null.Data)
}

func TestEmptyRDataForKnownTypeZeroLength(t *testing.T) {
	c := newCursor(nil)
	rd, err := dispatchRData(TypeA, c, 0)
	require.NoError(t, err)
	_, ok := rd.(Empty)
	require.True(t, ok)
}
