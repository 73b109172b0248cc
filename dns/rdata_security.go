package dns

// DS (RFC 4034) and CDS (RFC 7344) share the same wire shape: a
// fixed-width prefix followed by an opaque digest filling whatever
// remains of the rdlength window.
type DS struct {
	code       Type
	KeyTag     uint16
	Algorithm  uint8
	DigestType uint8
	Digest     []byte
}

func (d DS) sealedRData() {}
func (d DS) Type() Type   { return d.code }
func (d DS) len() int     { return 4 + len(d.Digest) }
func (d DS) write(w *writer) error {
	if err := w.writeU16(d.KeyTag); err != nil {
		return err
	}
	if err := w.writeU8(d.Algorithm); err != nil {
		return err
	}
	if err := w.writeU8(d.DigestType); err != nil {
		return err
	}
	return w.writeBytes(d.Digest)
}

// NewDS builds DS/CDS rdata for the given type code.
func NewDS(code Type, keyTag uint16, algorithm, digestType uint8, digest []byte) DS {
	return DS{code: code, KeyTag: keyTag, Algorithm: algorithm, DigestType: digestType, Digest: digest}
}

func parseDSFamily(code Type) func(c *cursor, rdlength int) (RData, error) {
	return func(c *cursor, rdlength int) (RData, error) {
		limited, err := c.newLimitedTo(rdlength)
		if err != nil {
			return nil, err
		}
		keyTag, err := limited.getU16()
		if err != nil {
			return nil, err
		}
		algorithm, err := limited.getU8()
		if err != nil {
			return nil, err
		}
		digestType, err := limited.getU8()
		if err != nil {
			return nil, err
		}
		digest := limited.getRemaining()
		if err := c.advance(rdlength); err != nil {
			return nil, err
		}
		return DS{code: code, KeyTag: keyTag, Algorithm: algorithm, DigestType: digestType, Digest: append([]byte(nil), digest...)}, nil
	}
}

// DNSKEY (RFC 4034) holds a flags/protocol/algorithm prefix and an
// opaque public key.
type DNSKEY struct {
	Flags     uint16
	Protocol  uint8
	Algorithm uint8
	PublicKey []byte
}

func (DNSKEY) sealedRData() {}
func (DNSKEY) Type() Type   { return TypeDNSKEY }
func (k DNSKEY) len() int   { return 4 + len(k.PublicKey) }
func (k DNSKEY) write(w *writer) error {
	if err := w.writeU16(k.Flags); err != nil {
		return err
	}
	if err := w.writeU8(k.Protocol); err != nil {
		return err
	}
	if err := w.writeU8(k.Algorithm); err != nil {
		return err
	}
	return w.writeBytes(k.PublicKey)
}

func parseDNSKEY(c *cursor, rdlength int) (RData, error) {
	limited, err := c.newLimitedTo(rdlength)
	if err != nil {
		return nil, err
	}
	flags, err := limited.getU16()
	if err != nil {
		return nil, err
	}
	protocol, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	algorithm, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	key := limited.getRemaining()
	if err := c.advance(rdlength); err != nil {
		return nil, err
	}
	return DNSKEY{Flags: flags, Protocol: protocol, Algorithm: algorithm, PublicKey: append([]byte(nil), key...)}, nil
}

// CERT (RFC 4398) holds a cert-type/key-tag/algorithm prefix and an
// opaque certificate.
type CERT struct {
	CertType    uint16
	KeyTag      uint16
	Algorithm   uint8
	Certificate []byte
}

func (CERT) sealedRData() {}
func (CERT) Type() Type   { return TypeCERT }
func (c CERT) len() int   { return 5 + len(c.Certificate) }
func (c CERT) write(w *writer) error {
	if err := w.writeU16(c.CertType); err != nil {
		return err
	}
	if err := w.writeU16(c.KeyTag); err != nil {
		return err
	}
	if err := w.writeU8(c.Algorithm); err != nil {
		return err
	}
	return w.writeBytes(c.Certificate)
}

func parseCERT(c *cursor, rdlength int) (RData, error) {
	limited, err := c.newLimitedTo(rdlength)
	if err != nil {
		return nil, err
	}
	certType, err := limited.getU16()
	if err != nil {
		return nil, err
	}
	keyTag, err := limited.getU16()
	if err != nil {
		return nil, err
	}
	algorithm, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	cert := limited.getRemaining()
	if err := c.advance(rdlength); err != nil {
		return nil, err
	}
	return CERT{CertType: certType, KeyTag: keyTag, Algorithm: algorithm, Certificate: append([]byte(nil), cert...)}, nil
}

// TLSA (RFC 6698) holds usage/selector/matching-type followed by the
// opaque certificate association data.
type TLSA struct {
	Usage                     uint8
	Selector                  uint8
	MatchingType              uint8
	CertificateAssociationData []byte
}

func (TLSA) sealedRData() {}
func (TLSA) Type() Type   { return TypeTLSA }
func (t TLSA) len() int   { return 3 + len(t.CertificateAssociationData) }
func (t TLSA) write(w *writer) error {
	if err := w.writeU8(t.Usage); err != nil {
		return err
	}
	if err := w.writeU8(t.Selector); err != nil {
		return err
	}
	if err := w.writeU8(t.MatchingType); err != nil {
		return err
	}
	return w.writeBytes(t.CertificateAssociationData)
}

func parseTLSA(c *cursor, rdlength int) (RData, error) {
	limited, err := c.newLimitedTo(rdlength)
	if err != nil {
		return nil, err
	}
	usage, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	selector, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	matching, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	data := limited.getRemaining()
	if err := c.advance(rdlength); err != nil {
		return nil, err
	}
	return TLSA{Usage: usage, Selector: selector, MatchingType: matching, CertificateAssociationData: append([]byte(nil), data...)}, nil
}

// ZONEMD (RFC 8976) holds a serial/scheme/hash-algorithm prefix and an
// opaque digest.
type ZONEMD struct {
	Serial        uint32
	Scheme        uint8
	HashAlgorithm uint8
	Digest        []byte
}

func (ZONEMD) sealedRData() {}
func (ZONEMD) Type() Type   { return TypeZONEMD }
func (z ZONEMD) len() int   { return 6 + len(z.Digest) }
func (z ZONEMD) write(w *writer) error {
	if err := w.writeU32(z.Serial); err != nil {
		return err
	}
	if err := w.writeU8(z.Scheme); err != nil {
		return err
	}
	if err := w.writeU8(z.HashAlgorithm); err != nil {
		return err
	}
	return w.writeBytes(z.Digest)
}

func parseZONEMD(c *cursor, rdlength int) (RData, error) {
	limited, err := c.newLimitedTo(rdlength)
	if err != nil {
		return nil, err
	}
	serial, err := limited.getU32()
	if err != nil {
		return nil, err
	}
	scheme, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	hashAlg, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	digest := limited.getRemaining()
	if err := c.advance(rdlength); err != nil {
		return nil, err
	}
	return ZONEMD{Serial: serial, Scheme: scheme, HashAlgorithm: hashAlg, Digest: append([]byte(nil), digest...)}, nil
}

// CAA (RFC 6844) holds an issuer-critical flag, a tag character string
// and an opaque value.
type CAA struct {
	Flags uint8
	Tag   CharacterString
	Value []byte
}

func (CAA) sealedRData() {}
func (CAA) Type() Type   { return TypeCAA }
func (c CAA) len() int   { return 1 + c.Tag.len() + len(c.Value) }
func (c CAA) write(w *writer) error {
	if err := w.writeU8(c.Flags); err != nil {
		return err
	}
	if err := c.Tag.write(w); err != nil {
		return err
	}
	return w.writeBytes(c.Value)
}

func parseCAA(c *cursor, rdlength int) (RData, error) {
	limited, err := c.newLimitedTo(rdlength)
	if err != nil {
		return nil, err
	}
	flags, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	tag, err := parseCharacterString(limited)
	if err != nil {
		return nil, err
	}
	value := limited.getRemaining()
	if err := c.advance(rdlength); err != nil {
		return nil, err
	}
	return CAA{Flags: flags, Tag: tag, Value: append([]byte(nil), value...)}, nil
}

// RRSIG (RFC 4034) holds the signature prefix, an uncompressed signer
// Name, and the opaque signature.
type RRSIG struct {
	TypeCovered Type
	Algorithm   uint8
	Labels      uint8
	OriginalTTL uint32
	Expiration  uint32
	Inception   uint32
	KeyTag      uint16
	SignerName  Name
	Signature   []byte
}

func (RRSIG) sealedRData() {}
func (RRSIG) Type() Type   { return TypeRRSIG }
func (r RRSIG) len() int {
	return 2 + 1 + 1 + 4 + 4 + 4 + 2 + r.SignerName.len() + len(r.Signature)
}
func (r RRSIG) write(w *writer) error {
	if err := w.writeU16(uint16(r.TypeCovered)); err != nil {
		return err
	}
	if err := w.writeU8(r.Algorithm); err != nil {
		return err
	}
	if err := w.writeU8(r.Labels); err != nil {
		return err
	}
	if err := w.writeU32(r.OriginalTTL); err != nil {
		return err
	}
	if err := w.writeU32(r.Expiration); err != nil {
		return err
	}
	if err := w.writeU32(r.Inception); err != nil {
		return err
	}
	if err := w.writeU16(r.KeyTag); err != nil {
		return err
	}
	if err := w.writeName(r.SignerName, true); err != nil {
		return err
	}
	return w.writeBytes(r.Signature)
}

func parseRRSIG(c *cursor, rdlength int) (RData, error) {
	limited, err := c.newLimitedTo(rdlength)
	if err != nil {
		return nil, err
	}
	typeCovered, err := limited.getU16()
	if err != nil {
		return nil, err
	}
	algorithm, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	labels, err := limited.getU8()
	if err != nil {
		return nil, err
	}
	originalTTL, err := limited.getU32()
	if err != nil {
		return nil, err
	}
	expiration, err := limited.getU32()
	if err != nil {
		return nil, err
	}
	inception, err := limited.getU32()
	if err != nil {
		return nil, err
	}
	keyTag, err := limited.getU16()
	if err != nil {
		return nil, err
	}
	signer, err := parseName(limited)
	if err != nil {
		return nil, err
	}
	sig := limited.getRemaining()
	if err := c.advance(rdlength); err != nil {
		return nil, err
	}
	return RRSIG{
		TypeCovered: Type(typeCovered), Algorithm: algorithm, Labels: labels,
		OriginalTTL: originalTTL, Expiration: expiration, Inception: inception,
		KeyTag: keyTag, SignerName: signer, Signature: append([]byte(nil), sig...),
	}, nil
}
