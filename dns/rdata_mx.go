package dns

// PreferenceName is the shared shape for MX, AFSDB, KX and RT rdata: a
// 16-bit preference followed by a compressible Name.
type PreferenceName struct {
	code       Type
	Preference uint16
	Name       Name
}

func (p PreferenceName) sealedRData() {}
func (p PreferenceName) Type() Type   { return p.code }
func (p PreferenceName) len() int     { return 2 + p.Name.len() }
func (p PreferenceName) write(w *writer) error {
	if err := w.writeU16(p.Preference); err != nil {
		return err
	}
	return w.writeName(p.Name, false)
}

func parsePreferenceName(code Type) func(c *cursor, rdlength int) (RData, error) {
	return func(c *cursor, rdlength int) (RData, error) {
		pref, err := c.getU16()
		if err != nil {
			return nil, err
		}
		n, err := parseName(c)
		if err != nil {
			return nil, err
		}
		return PreferenceName{code: code, Preference: pref, Name: n}, nil
	}
}

// NewPreferenceName builds MX/AFSDB/KX/RT-shaped rdata.
func NewPreferenceName(code Type, preference uint16, name Name) PreferenceName {
	return PreferenceName{code: code, Preference: preference, Name: name}
}
