package dns

// Question is one entry of a packet's question section (RFC 1035
// §4.1.2). QType and QClass are the raw wire codes — KnownQType/
// KnownQClass classify them for callers that need a closed enum, but
// decoding a Question itself never rejects an unrecognised code.
type Question struct {
	QName           Name
	QType           QType
	QClass          QClass
	UnicastResponse bool
}

// unicastResponseBit is the mDNS QU bit (RFC 6762 §5.4), sharing the
// class field's top bit.
const unicastResponseBit uint16 = 1 << 15

func parseQuestion(c *cursor) (Question, error) {
	name, err := parseName(c)
	if err != nil {
		return Question{}, err
	}
	qtype, err := c.getU16()
	if err != nil {
		return Question{}, err
	}
	rawClass, err := c.getU16()
	if err != nil {
		return Question{}, err
	}
	return Question{
		QName:           name,
		QType:           QType(qtype),
		QClass:          QClass(rawClass &^ unicastResponseBit),
		UnicastResponse: rawClass&unicastResponseBit != 0,
	}, nil
}

func (q Question) write(w *writer) error {
	if err := w.writeName(q.QName, false); err != nil {
		return err
	}
	if err := w.writeU16(uint16(q.QType)); err != nil {
		return err
	}
	raw := uint16(q.QClass)
	if q.UnicastResponse {
		raw |= unicastResponseBit
	}
	return w.writeU16(raw)
}
