package dns

// SOA is the start-of-authority rdata: primary nameserver and
// responsible-mailbox names, then the five 32-bit timers.
type SOA struct {
	MName   Name
	RName   Name
	Serial  uint32
	Refresh int32
	Retry   int32
	Expire  int32
	Minimum uint32
}

func (SOA) sealedRData() {}
func (SOA) Type() Type   { return TypeSOA }
func (s SOA) len() int {
	return s.MName.len() + s.RName.len() + 4 + 4 + 4 + 4 + 4
}
func (s SOA) write(w *writer) error {
	if err := w.writeName(s.MName, false); err != nil {
		return err
	}
	if err := w.writeName(s.RName, false); err != nil {
		return err
	}
	if err := w.writeU32(s.Serial); err != nil {
		return err
	}
	if err := w.writeI32(s.Refresh); err != nil {
		return err
	}
	if err := w.writeI32(s.Retry); err != nil {
		return err
	}
	if err := w.writeI32(s.Expire); err != nil {
		return err
	}
	return w.writeU32(s.Minimum)
}

func parseSOA(c *cursor, rdlength int) (RData, error) {
	mname, err := parseName(c)
	if err != nil {
		return nil, err
	}
	rname, err := parseName(c)
	if err != nil {
		return nil, err
	}
	serial, err := c.getU32()
	if err != nil {
		return nil, err
	}
	refresh, err := c.getI32()
	if err != nil {
		return nil, err
	}
	retry, err := c.getI32()
	if err != nil {
		return nil, err
	}
	expire, err := c.getI32()
	if err != nil {
		return nil, err
	}
	minimum, err := c.getU32()
	if err != nil {
		return nil, err
	}
	return SOA{MName: mname, RName: rname, Serial: serial, Refresh: refresh, Retry: retry, Expire: expire, Minimum: minimum}, nil
}
