package dns

// BuildUncompressed serialises p without name compression: the
// simpler, larger-output entry point.
func BuildUncompressed(p *Packet) ([]byte, error) {
	return build(p, false)
}

// BuildCompressed serialises p sharing one label-suffix dictionary
// across every section, so a name anywhere in the packet can point
// back to an earlier occurrence anywhere else in the packet.
func BuildCompressed(p *Packet) ([]byte, error) {
	return build(p, true)
}

// EncodeRData serialises rd's rdata bytes alone, with no rdlength
// prefix and no owning record around it. Callers that need to compare
// two variants' wire encodings byte-for-byte (RFC 6762 §8.2's probe
// tie-breaking rule) can use this without building a whole packet.
func EncodeRData(rd RData) ([]byte, error) {
	w := newWriter(false)
	defer w.release()
	if err := rd.write(w); err != nil {
		return nil, err
	}
	out := make([]byte, len(w.Bytes()))
	copy(out, w.Bytes())
	return out, nil
}

func build(p *Packet, compress bool) ([]byte, error) {
	w := newWriter(compress)
	defer w.release()

	if err := w.writeU16(p.ID); err != nil {
		return nil, err
	}
	flags := uint16(p.Opcode&opcodeMask) << opcodeShift
	if p.QR {
		flags |= FlagQR
	}
	if p.AA {
		flags |= FlagAA
	}
	if p.TC {
		flags |= FlagTC
	}
	if p.RD {
		flags |= FlagRD
	}
	if p.RA {
		flags |= FlagRA
	}
	if p.AD {
		flags |= FlagAD
	}
	if p.CD {
		flags |= FlagCD
	}
	flags |= uint16(p.RCode & rcodeMask)
	if err := w.writeU16(flags); err != nil {
		return nil, err
	}

	qdPos := w.reserveU16()
	anPos := w.reserveU16()
	nsPos := w.reserveU16()
	arPos := w.reserveU16()

	for _, q := range p.Questions {
		if err := q.write(w); err != nil {
			return nil, err
		}
	}
	for _, rr := range p.Answers {
		if err := rr.write(w); err != nil {
			return nil, err
		}
	}
	for _, rr := range p.Authorities {
		if err := rr.write(w); err != nil {
			return nil, err
		}
	}

	arCount := len(p.Additionals)
	if p.OPT != nil {
		arCount++
		optRecord := ResourceRecord{
			Name:                 Root,
			RData:                OPT{Options: p.OPT.Options},
			OPTUDPPayloadSize:    p.OPT.UDPPayloadSize,
			OPTVersion:           p.OPT.Version,
			OPTExtendedRCodeHigh: p.OPT.ExtendedRCodeHigh,
			OPTFlags:             p.OPT.Flags,
		}
		if err := optRecord.write(w); err != nil {
			return nil, err
		}
	}
	for _, rr := range p.Additionals {
		if err := rr.write(w); err != nil {
			return nil, err
		}
	}

	w.patchU16(qdPos, uint16(len(p.Questions)))
	w.patchU16(anPos, uint16(len(p.Answers)))
	w.patchU16(nsPos, uint16(len(p.Authorities)))
	w.patchU16(arPos, uint16(arCount))

	out := make([]byte, len(w.Bytes()))
	copy(out, w.Bytes())
	return out, nil
}
