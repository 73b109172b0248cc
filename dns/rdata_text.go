package dns

import "fmt"

// HINFO holds CPU and OS as two character strings.
type HINFO struct {
	CPU CharacterString
	OS  CharacterString
}

func (HINFO) sealedRData() {}
func (HINFO) Type() Type   { return TypeHINFO }
func (h HINFO) len() int   { return h.CPU.len() + h.OS.len() }
func (h HINFO) write(w *writer) error {
	if err := h.CPU.write(w); err != nil {
		return err
	}
	return h.OS.write(w)
}

func parseHINFO(c *cursor, rdlength int) (RData, error) {
	cpu, err := parseCharacterString(c)
	if err != nil {
		return nil, err
	}
	os, err := parseCharacterString(c)
	if err != nil {
		return nil, err
	}
	return HINFO{CPU: cpu, OS: os}, nil
}

// ISDN (RFC 1183) holds an ISDN address and an optional subaddress as
// two character strings; SA may be empty.
type ISDN struct {
	Address CharacterString
	SA      CharacterString
}

func (ISDN) sealedRData() {}
func (ISDN) Type() Type   { return TypeISDN }
func (i ISDN) len() int   { return i.Address.len() + i.SA.len() }
func (i ISDN) write(w *writer) error {
	if err := i.Address.write(w); err != nil {
		return err
	}
	return i.SA.write(w)
}

func parseISDN(c *cursor, rdlength int) (RData, error) {
	limited, err := c.newLimitedTo(rdlength)
	if err != nil {
		return nil, err
	}
	addr, err := parseCharacterString(limited)
	if err != nil {
		return nil, err
	}
	var sa CharacterString
	if limited.hasRemaining() {
		sa, err = parseCharacterString(limited)
		if err != nil {
			return nil, err
		}
	}
	if err := c.advance(rdlength); err != nil {
		return nil, err
	}
	return ISDN{Address: addr, SA: sa}, nil
}

// MINFO holds a responsible-mailbox and error-mailbox Name pair;
// both participate in compression.
type MINFO struct {
	RMailBX Name
	EMailBX Name
}

func (MINFO) sealedRData() {}
func (MINFO) Type() Type   { return TypeMINFO }
func (m MINFO) len() int   { return m.RMailBX.len() + m.EMailBX.len() }
func (m MINFO) write(w *writer) error {
	if err := w.writeName(m.RMailBX, false); err != nil {
		return err
	}
	return w.writeName(m.EMailBX, false)
}

func parseMINFO(c *cursor, rdlength int) (RData, error) {
	r, err := parseName(c)
	if err != nil {
		return nil, err
	}
	e, err := parseName(c)
	if err != nil {
		return nil, err
	}
	return MINFO{RMailBX: r, EMailBX: e}, nil
}

// RP (RFC 1183) holds a responsible-person mailbox Name and a TXT
// lookup Name.
type RP struct {
	Mbox    Name
	TXTDNAME Name
}

func (RP) sealedRData() {}
func (RP) Type() Type   { return TypeRP }
func (r RP) len() int    { return r.Mbox.len() + r.TXTDNAME.len() }
func (r RP) write(w *writer) error {
	if err := w.writeName(r.Mbox, false); err != nil {
		return err
	}
	return w.writeName(r.TXTDNAME, false)
}

func parseRP(c *cursor, rdlength int) (RData, error) {
	mbox, err := parseName(c)
	if err != nil {
		return nil, err
	}
	txt, err := parseName(c)
	if err != nil {
		return nil, err
	}
	return RP{Mbox: mbox, TXTDNAME: txt}, nil
}

// TXT is one or more character strings filling the rdlength window.
// A caller-supplied empty TXT serialises as a single empty character
// string, i.e. one zero byte.
type TXT struct {
	Strings []CharacterString
}

func (TXT) sealedRData() {}
func (TXT) Type() Type   { return TypeTXT }
func (t TXT) len() int {
	if len(t.Strings) == 0 {
		return 1
	}
	total := 0
	for _, s := range t.Strings {
		total += s.len()
	}
	return total
}
func (t TXT) write(w *writer) error {
	if len(t.Strings) == 0 {
		return w.writeU8(0)
	}
	for _, s := range t.Strings {
		if err := s.write(w); err != nil {
			return err
		}
	}
	return nil
}

func parseTXT(c *cursor, rdlength int) (RData, error) {
	limited, err := c.newLimitedTo(rdlength)
	if err != nil {
		return nil, err
	}
	var strs []CharacterString
	for limited.hasRemaining() {
		s, err := parseCharacterString(limited)
		if err != nil {
			return nil, err
		}
		strs = append(strs, s)
	}
	if err := c.advance(rdlength); err != nil {
		return nil, err
	}
	if len(strs) == 0 {
		return nil, fmt.Errorf("%w: TXT rdata must contain at least one character string", ErrInvalidPacket)
	}
	return TXT{Strings: strs}, nil
}
