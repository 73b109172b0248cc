package dns

import "fmt"

// A is a 4-byte network-order IPv4 address.
type A struct {
	Address [4]byte
}

func (A) sealedRData()    {}
func (A) Type() Type      { return TypeA }
func (A) len() int        { return 4 }
func (a A) write(w *writer) error {
	return w.writeBytes(a.Address[:])
}

func parseA(c *cursor, rdlength int) (RData, error) {
	if rdlength != 4 {
		return nil, fmt.Errorf("%w: A rdata length %d, want 4", ErrInvalidPacket, rdlength)
	}
	b, err := c.getSlice(4)
	if err != nil {
		return nil, err
	}
	var a A
	copy(a.Address[:], b)
	return a, nil
}

// AAAA is a 16-byte network-order IPv6 address.
type AAAA struct {
	Address [16]byte
}

func (AAAA) sealedRData() {}
func (AAAA) Type() Type   { return TypeAAAA }
func (AAAA) len() int     { return 16 }
func (a AAAA) write(w *writer) error {
	return w.writeBytes(a.Address[:])
}

func parseAAAA(c *cursor, rdlength int) (RData, error) {
	if rdlength != 16 {
		return nil, fmt.Errorf("%w: AAAA rdata length %d, want 16", ErrInvalidPacket, rdlength)
	}
	b, err := c.getSlice(16)
	if err != nil {
		return nil, err
	}
	var a AAAA
	copy(a.Address[:], b)
	return a, nil
}
