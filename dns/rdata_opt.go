package dns

// EDNS(0) option codes (RFC 6891 §6.1.2, RFC 7873 §4 for COOKIE).
const (
	OptCodeCookie         uint16 = 10
	OptCodeNSID           uint16 = 3
	OptCodeExtendedError  uint16 = 15
	OptCodePadding        uint16 = 12
)

// OPTOption is a single (code, data) pair from an OPT record's rdata
// stream: OPT's rdata is a list of options, not a fixed struct. Cookie
// carries a typed decode of OptCodeCookie entries; everything else
// round-trips as opaque bytes.
type OPTOption struct {
	Code uint16
	Data []byte
}

func (o OPTOption) len() int { return 4 + len(o.Data) }

// OPT is the EDNS(0) pseudo-record's rdata (RFC 6891 §6.1.2): an
// ordered stream of options. The record's class/ttl fields (UDP
// payload size, extended rcode, version, DO bit) live on the owning
// ResourceRecord, not here — only the option stream is rdata proper.
type OPT struct {
	Options []OPTOption
}

func (OPT) sealedRData() {}
func (OPT) Type() Type   { return TypeOPT }
func (o OPT) len() int {
	total := 0
	for _, opt := range o.Options {
		total += opt.len()
	}
	return total
}
func (o OPT) write(w *writer) error {
	for _, opt := range o.Options {
		if len(opt.Data) > 65535 {
			return ErrInvalidPacket
		}
		if err := w.writeU16(opt.Code); err != nil {
			return err
		}
		if err := w.writeU16(uint16(len(opt.Data))); err != nil {
			return err
		}
		if err := w.writeBytes(opt.Data); err != nil {
			return err
		}
	}
	return nil
}

func parseOPTRData(c *cursor, rdlength int) (RData, error) {
	limited, err := c.newLimitedTo(rdlength)
	if err != nil {
		return nil, err
	}
	var options []OPTOption
	for limited.hasRemaining() {
		code, err := limited.getU16()
		if err != nil {
			return nil, err
		}
		dlen, err := limited.getU16()
		if err != nil {
			return nil, err
		}
		data, err := limited.getSlice(int(dlen))
		if err != nil {
			return nil, err
		}
		options = append(options, OPTOption{Code: code, Data: append([]byte(nil), data...)})
	}
	if err := c.advance(rdlength); err != nil {
		return nil, err
	}
	return OPT{Options: options}, nil
}

// Cookie returns the decoded COOKIE option, if present (RFC 7873).
func (o OPT) Cookie() (Cookie, bool) {
	for _, opt := range o.Options {
		if opt.Code == OptCodeCookie {
			ck, err := decodeCookie(opt.Data)
			if err != nil {
				return Cookie{}, false
			}
			return ck, true
		}
	}
	return Cookie{}, false
}

// WithCookie returns a copy of o with any existing COOKIE option
// replaced by ck's wire encoding.
func (o OPT) WithCookie(ck Cookie) OPT {
	out := OPT{Options: make([]OPTOption, 0, len(o.Options)+1)}
	replaced := false
	for _, opt := range o.Options {
		if opt.Code == OptCodeCookie {
			out.Options = append(out.Options, OPTOption{Code: OptCodeCookie, Data: ck.encode()})
			replaced = true
			continue
		}
		out.Options = append(out.Options, opt)
	}
	if !replaced {
		out.Options = append(out.Options, OPTOption{Code: OptCodeCookie, Data: ck.encode()})
	}
	return out
}
