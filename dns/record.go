package dns

// cacheFlushBit is the mDNS cache-flush bit (RFC 6762 §10.2), sharing
// the resource record class field's top bit with the semantic class.
const cacheFlushBit uint16 = 1 << 15

// ResourceRecord is one answer/authority/additional entry (RFC 1035
// §4.1.3). For an OPT pseudo-record the class/ttl wire slots carry
// EDNS(0)-specific meaning instead of a class and TTL; in that case
// Class/TTL/CacheFlush are meaningless and the OPT* fields below hold
// the real values.
type ResourceRecord struct {
	Name       Name
	Class      Class
	TTL        uint32
	RData      RData
	CacheFlush bool

	// Populated only when RData's Type() is TypeOPT.
	OPTUDPPayloadSize    uint16
	OPTVersion           uint8
	OPTExtendedRCodeHigh uint8
	OPTFlags             uint16
}

// Type reports the record's wire TYPE code, delegating to its rdata.
func (r ResourceRecord) Type() Type {
	return r.RData.Type()
}

func parseResourceRecord(c *cursor) (ResourceRecord, error) {
	name, err := parseName(c)
	if err != nil {
		return ResourceRecord{}, err
	}
	rawType, err := c.getU16()
	if err != nil {
		return ResourceRecord{}, err
	}
	rawClass, err := c.getU16()
	if err != nil {
		return ResourceRecord{}, err
	}
	rawTTL, err := c.getU32()
	if err != nil {
		return ResourceRecord{}, err
	}
	rdlength, err := c.getU16()
	if err != nil {
		return ResourceRecord{}, err
	}
	code := Type(rawType)
	rdata, err := dispatchRData(code, c, int(rdlength))
	if err != nil {
		return ResourceRecord{}, err
	}

	if code == TypeOPT {
		return ResourceRecord{
			Name:                 name,
			Class:                ClassIN,
			CacheFlush:           false,
			RData:                rdata,
			OPTUDPPayloadSize:    rawClass,
			OPTExtendedRCodeHigh: uint8(rawTTL >> 24),
			OPTVersion:           uint8(rawTTL >> 16),
			OPTFlags:             uint16(rawTTL),
		}, nil
	}
	return ResourceRecord{
		Name:       name,
		Class:      Class(rawClass &^ cacheFlushBit),
		CacheFlush: rawClass&cacheFlushBit != 0,
		TTL:        rawTTL,
		RData:      rdata,
	}, nil
}

func (r ResourceRecord) write(w *writer) error {
	if err := w.writeName(r.Name, false); err != nil {
		return err
	}
	if err := w.writeU16(uint16(r.RData.Type())); err != nil {
		return err
	}
	if r.RData.Type() == TypeOPT {
		if err := w.writeU16(r.OPTUDPPayloadSize); err != nil {
			return err
		}
		ttl := uint32(r.OPTExtendedRCodeHigh)<<24 | uint32(r.OPTVersion)<<16 | uint32(r.OPTFlags)
		if err := w.writeU32(ttl); err != nil {
			return err
		}
	} else {
		raw := uint16(r.Class)
		if r.CacheFlush {
			raw |= cacheFlushBit
		}
		if err := w.writeU16(raw); err != nil {
			return err
		}
		if err := w.writeU32(r.TTL); err != nil {
			return err
		}
	}

	rdlenPos := w.reserveU16()
	start := w.offset()
	if err := r.RData.write(w); err != nil {
		return err
	}
	w.patchU16(rdlenPos, uint16(w.offset()-start))
	return nil
}
