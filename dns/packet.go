package dns

// OPTInfo is the header-level view of an EDNS(0) OPT record, lifted
// out of the additionals section during Packet parsing: a
// Packet holds at most one, never a raw OPT ResourceRecord sitting in
// Additionals.
type OPTInfo struct {
	UDPPayloadSize    uint16
	Version           uint8
	ExtendedRCodeHigh uint8
	Flags             uint16
	Options           []OPTOption
}

// rcode combines the header's low RCODE nibble with the OPT record's
// extended-rcode high bits, when present.
func (o *OPTInfo) rcode(low uint8) uint8 {
	if o == nil {
		return low & rcodeMask
	}
	return (o.ExtendedRCodeHigh << 4) | (low & rcodeMask)
}

// Packet is a fully parsed DNS message (RFC 1035 §4). It borrows label
// bytes from the source buffer it was parsed from; call IntoOwned on
// individual names (or re-parse from a copy) to outlive that buffer.
type Packet struct {
	ID uint16

	QR     bool
	Opcode uint8
	AA     bool
	TC     bool
	RD     bool
	RA     bool
	AD     bool
	CD     bool
	RCode  uint8 // low 4 bits; combine with OPT.ExtendedRCodeHigh for the full code

	Questions   []Question
	Answers     []ResourceRecord
	Authorities []ResourceRecord
	Additionals []ResourceRecord

	OPT *OPTInfo
}

// EffectiveRCode returns the full extended rcode, folding in the OPT
// record's high bits when present.
func (p *Packet) EffectiveRCode() uint8 {
	return p.OPT.rcode(p.RCode)
}

// ParsePacket parses a complete DNS message from data.
func ParsePacket(data []byte) (*Packet, error) {
	hdr, err := newHeaderBuffer(data)
	if err != nil {
		return nil, err
	}
	if hdr.ReservedBitSet() {
		return nil, ErrInvalidPacket
	}

	p := &Packet{
		ID:     hdr.ID(),
		QR:     hdr.HasFlags(FlagQR),
		Opcode: hdr.Opcode(),
		AA:     hdr.HasFlags(FlagAA),
		TC:     hdr.HasFlags(FlagTC),
		RD:     hdr.HasFlags(FlagRD),
		RA:     hdr.HasFlags(FlagRA),
		AD:     hdr.HasFlags(FlagAD),
		CD:     hdr.HasFlags(FlagCD),
		RCode:  hdr.RCode(),
	}

	qdcount := hdr.Questions()
	ancount := hdr.Answers()
	nscount := hdr.Authorities()
	arcount := hdr.Additionals()

	c := newCursor(data)
	if err := c.advance(headerSize); err != nil {
		return nil, err
	}

	for i := uint16(0); i < qdcount; i++ {
		q, err := parseQuestion(c)
		if err != nil {
			return nil, err
		}
		p.Questions = append(p.Questions, q)
	}
	for i := uint16(0); i < ancount; i++ {
		rr, err := parseResourceRecord(c)
		if err != nil {
			return nil, err
		}
		p.Answers = append(p.Answers, rr)
	}
	for i := uint16(0); i < nscount; i++ {
		rr, err := parseResourceRecord(c)
		if err != nil {
			return nil, err
		}
		p.Authorities = append(p.Authorities, rr)
	}
	for i := uint16(0); i < arcount; i++ {
		rr, err := parseResourceRecord(c)
		if err != nil {
			return nil, err
		}
		p.Additionals = append(p.Additionals, rr)
	}

	for i, rr := range p.Additionals {
		if rr.Type() != TypeOPT {
			continue
		}
		opt, _ := rr.RData.(OPT) // zero-length OPT rdata parses as Empty
		p.OPT = &OPTInfo{
			UDPPayloadSize:    rr.OPTUDPPayloadSize,
			Version:           rr.OPTVersion,
			ExtendedRCodeHigh: rr.OPTExtendedRCodeHigh,
			Flags:             rr.OPTFlags,
			Options:           opt.Options,
		}
		p.Additionals = append(p.Additionals[:i], p.Additionals[i+1:]...)
		break
	}

	return p, nil
}
