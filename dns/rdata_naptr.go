package dns

// NAPTR (RFC 2915) is order/preference, three character strings
// (flags, services, regexp) and a replacement Name serialised
// uncompressed.
type NAPTR struct {
	Order       uint16
	Preference  uint16
	Flags       CharacterString
	Services    CharacterString
	Regexp      CharacterString
	Replacement Name
}

func (NAPTR) sealedRData() {}
func (NAPTR) Type() Type   { return TypeNAPTR }
func (n NAPTR) len() int {
	return 4 + n.Flags.len() + n.Services.len() + n.Regexp.len() + n.Replacement.len()
}
func (n NAPTR) write(w *writer) error {
	if err := w.writeU16(n.Order); err != nil {
		return err
	}
	if err := w.writeU16(n.Preference); err != nil {
		return err
	}
	if err := n.Flags.write(w); err != nil {
		return err
	}
	if err := n.Services.write(w); err != nil {
		return err
	}
	if err := n.Regexp.write(w); err != nil {
		return err
	}
	return w.writeName(n.Replacement, true)
}

func parseNAPTR(c *cursor, rdlength int) (RData, error) {
	order, err := c.getU16()
	if err != nil {
		return nil, err
	}
	pref, err := c.getU16()
	if err != nil {
		return nil, err
	}
	flags, err := parseCharacterString(c)
	if err != nil {
		return nil, err
	}
	services, err := parseCharacterString(c)
	if err != nil {
		return nil, err
	}
	regexp, err := parseCharacterString(c)
	if err != nil {
		return nil, err
	}
	replacement, err := parseName(c)
	if err != nil {
		return nil, err
	}
	return NAPTR{Order: order, Preference: pref, Flags: flags, Services: services, Regexp: regexp, Replacement: replacement}, nil
}
