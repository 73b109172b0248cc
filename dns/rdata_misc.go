package dns

import (
	"encoding/binary"
	"fmt"
)

// WKS (RFC 1035 §3.4.2) is an address, an IP protocol number, and a
// variable-length well-known-services port bitmap whose length is
// whatever remains of the rdlength window.
type WKS struct {
	Address  [4]byte
	Protocol uint8
	Bitmap   []byte
}

func (WKS) sealedRData() {}
func (WKS) Type() Type   { return TypeWKS }
func (w WKS) len() int   { return 4 + 1 + len(w.Bitmap) }
func (w WKS) write(wr *writer) error {
	if err := wr.writeBytes(w.Address[:]); err != nil {
		return err
	}
	if err := wr.writeU8(w.Protocol); err != nil {
		return err
	}
	return wr.writeBytes(w.Bitmap)
}

func parseWKS(c *cursor, rdlength int) (RData, error) {
	if rdlength < 5 {
		return nil, fmt.Errorf("%w: WKS rdata too short", ErrInvalidPacket)
	}
	addr, err := c.getSlice(4)
	if err != nil {
		return nil, err
	}
	proto, err := c.getU8()
	if err != nil {
		return nil, err
	}
	bitmap, err := c.getSlice(rdlength - 5)
	if err != nil {
		return nil, err
	}
	var w WKS
	copy(w.Address[:], addr)
	w.Protocol = proto
	w.Bitmap = append([]byte(nil), bitmap...)
	return w, nil
}

// LOC (RFC 1876) is a fixed 16-byte structure; the leading version
// octet MUST be 0 or parsing fails.
type LOC struct {
	Version   uint8
	Size      uint8
	HorizPre  uint8
	VertPre   uint8
	Latitude  uint32
	Longitude uint32
	Altitude  uint32
}

func (LOC) sealedRData() {}
func (LOC) Type() Type   { return TypeLOC }
func (LOC) len() int     { return 16 }
func (l LOC) write(w *writer) error {
	if l.Version != 0 {
		return fmt.Errorf("%w: LOC version must be 0", ErrInvalidPacket)
	}
	if err := w.writeU8(l.Version); err != nil {
		return err
	}
	if err := w.writeU8(l.Size); err != nil {
		return err
	}
	if err := w.writeU8(l.HorizPre); err != nil {
		return err
	}
	if err := w.writeU8(l.VertPre); err != nil {
		return err
	}
	if err := w.writeU32(l.Latitude); err != nil {
		return err
	}
	if err := w.writeU32(l.Longitude); err != nil {
		return err
	}
	return w.writeU32(l.Altitude)
}

func parseLOC(c *cursor, rdlength int) (RData, error) {
	if rdlength != 16 {
		return nil, fmt.Errorf("%w: LOC rdata length %d, want 16", ErrInvalidPacket, rdlength)
	}
	version, err := c.getU8()
	if err != nil {
		return nil, err
	}
	if version != 0 {
		return nil, fmt.Errorf("%w: LOC version %d, want 0", ErrInvalidPacket, version)
	}
	size, err := c.getU8()
	if err != nil {
		return nil, err
	}
	hp, err := c.getU8()
	if err != nil {
		return nil, err
	}
	vp, err := c.getU8()
	if err != nil {
		return nil, err
	}
	lat, err := c.getU32()
	if err != nil {
		return nil, err
	}
	lon, err := c.getU32()
	if err != nil {
		return nil, err
	}
	alt, err := c.getU32()
	if err != nil {
		return nil, err
	}
	return LOC{Version: version, Size: size, HorizPre: hp, VertPre: vp, Latitude: lat, Longitude: lon, Altitude: alt}, nil
}

// EUI is the shared shape for EUI48 (6 bytes) and EUI64 (8 bytes),
// RFC 7043.
type EUI struct {
	code Type
	Data []byte
}

func (e EUI) sealedRData() {}
func (e EUI) Type() Type   { return e.code }
func (e EUI) len() int     { return len(e.Data) }
func (e EUI) write(w *writer) error {
	return w.writeBytes(e.Data)
}

func parseEUIN(code Type, n int) func(c *cursor, rdlength int) (RData, error) {
	return func(c *cursor, rdlength int) (RData, error) {
		if rdlength != n {
			return nil, fmt.Errorf("%w: EUI rdata length %d, want %d", ErrInvalidPacket, rdlength, n)
		}
		b, err := c.getSlice(n)
		if err != nil {
			return nil, err
		}
		return EUI{code: code, Data: append([]byte(nil), b...)}, nil
	}
}

// NewEUI builds EUI48/EUI64 rdata.
func NewEUI(code Type, data []byte) EUI {
	return EUI{code: code, Data: append([]byte(nil), data...)}
}

// NSAP (RFC 1706) is an opaque 20-byte address, exposed with
// big-endian field accessors rather than semantic subfields (the
// internal structure of an NSAP address is authority-specific).
type NSAP struct {
	Data [20]byte
}

func (NSAP) sealedRData() {}
func (NSAP) Type() Type   { return TypeNSAP }
func (NSAP) len() int     { return 20 }
func (n NSAP) write(w *writer) error {
	return w.writeBytes(n.Data[:])
}

// Uint16At reads a big-endian u16 at the given byte offset into Data.
func (n NSAP) Uint16At(offset int) uint16 {
	return binary.BigEndian.Uint16(n.Data[offset : offset+2])
}

// Uint32At reads a big-endian u32 at the given byte offset into Data.
func (n NSAP) Uint32At(offset int) uint32 {
	return binary.BigEndian.Uint32(n.Data[offset : offset+4])
}

func parseNSAP(c *cursor, rdlength int) (RData, error) {
	if rdlength != 20 {
		return nil, fmt.Errorf("%w: NSAP rdata length %d, want 20", ErrInvalidPacket, rdlength)
	}
	b, err := c.getSlice(20)
	if err != nil {
		return nil, err
	}
	var n NSAP
	copy(n.Data[:], b)
	return n, nil
}

// IPSECKEY gateway types (RFC 4025 §2.3).
const (
	IPSECKeyGatewayNone Type = 0
	IPSECKeyGatewayIPv4 Type = 1
	IPSECKeyGatewayIPv6 Type = 2
	IPSECKeyGatewayName Type = 3
)

// IPSECKeyGateway is the sealed sum over IPSECKEY's gateway field.
type IPSECKeyGateway interface {
	gatewayType() uint8
	gatewayLen() int
	writeGateway(w *writer) error
}

type GatewayNone struct{}

func (GatewayNone) gatewayType() uint8           { return 0 }
func (GatewayNone) gatewayLen() int              { return 0 }
func (GatewayNone) writeGateway(w *writer) error { return nil }

type GatewayIPv4 [4]byte

func (GatewayIPv4) gatewayType() uint8 { return 1 }
func (GatewayIPv4) gatewayLen() int    { return 4 }
func (g GatewayIPv4) writeGateway(w *writer) error {
	return w.writeBytes(g[:])
}

type GatewayIPv6 [16]byte

func (GatewayIPv6) gatewayType() uint8 { return 2 }
func (GatewayIPv6) gatewayLen() int    { return 16 }
func (g GatewayIPv6) writeGateway(w *writer) error {
	return w.writeBytes(g[:])
}

type GatewayName struct{ Name Name }

func (GatewayName) gatewayType() uint8 { return 3 }
func (g GatewayName) gatewayLen() int  { return g.Name.len() }
func (g GatewayName) writeGateway(w *writer) error {
	return w.writeName(g.Name, true)
}

// IPSECKEY (RFC 4025) holds precedence, the gateway-type/gateway pair,
// and a trailing opaque public key.
type IPSECKEY struct {
	Precedence  uint8
	GatewayType uint8
	Algorithm   uint8
	Gateway     IPSECKeyGateway
	PublicKey   []byte
}

func (IPSECKEY) sealedRData() {}
func (IPSECKEY) Type() Type   { return TypeIPSECKEY }
func (k IPSECKEY) len() int {
	return 3 + k.Gateway.gatewayLen() + len(k.PublicKey)
}
func (k IPSECKEY) write(w *writer) error {
	if k.Gateway.gatewayType() != k.GatewayType {
		return fmt.Errorf("%w: IPSECKEY gateway_type %d disagrees with gateway payload type %d",
			ErrAttemptedInvalidOperation, k.GatewayType, k.Gateway.gatewayType())
	}
	if err := w.writeU8(k.Precedence); err != nil {
		return err
	}
	if err := w.writeU8(k.GatewayType); err != nil {
		return err
	}
	if err := w.writeU8(k.Algorithm); err != nil {
		return err
	}
	if err := k.Gateway.writeGateway(w); err != nil {
		return err
	}
	return w.writeBytes(k.PublicKey)
}

func parseIPSECKEY(c *cursor, rdlength int) (RData, error) {
	limited, err := c.newLimitedTo(rdlength)
	if err != nil {
		return nil, err
	}
	precedence, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	gatewayType, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	algorithm, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	var gateway IPSECKeyGateway
	switch gatewayType {
	case 0:
		gateway = GatewayNone{}
	case 1:
		b, err := limited.getSlice(4)
		if err != nil {
			return nil, err
		}
		var g GatewayIPv4
		copy(g[:], b)
		gateway = g
	case 2:
		b, err := limited.getSlice(16)
		if err != nil {
			return nil, err
		}
		var g GatewayIPv6
		copy(g[:], b)
		gateway = g
	case 3:
		n, err := parseName(limited)
		if err != nil {
			return nil, err
		}
		gateway = GatewayName{Name: n}
	default:
		return nil, fmt.Errorf("%w: unknown IPSECKEY gateway type %d", ErrInvalidPacket, gatewayType)
	}
	key := limited.getRemaining()
	if err := c.advance(rdlength); err != nil {
		return nil, err
	}
	return IPSECKEY{
		Precedence: precedence, GatewayType: gatewayType, Algorithm: algorithm,
		Gateway: gateway, PublicKey: append([]byte(nil), key...),
	}, nil
}
