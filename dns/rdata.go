package dns

// RData is the closed sum over every implemented record-data variant,
// plus NULL (opaque bytes for an unrecognised type code) and Empty
// (a zero-length rdata of a known type code). Go has no tagged-union
// syntax, so the "closed tagged variant, not a trait-object-soup"
// design is realised as a sealed interface: every concrete type below
// is declared in this module and implements the sealed marker method,
// so no external package can add a surprise variant that the dispatch
// table doesn't know about.
//
// A single dispatch table (typeTable, below) maps a 16-bit TYPE code
// to a parser/writer pair, mirroring how internal/packet/parser.go
// dispatches on section counts rather than per-record type codes —
// generalised here to also dispatch per record type, to cover the
// full RData catalogue rather than keeping rdata opaque.
type RData interface {
	// Type reports the wire TYPE code this variant encodes as.
	Type() Type
	// len reports the exact number of bytes write will emit; tested
	// as an invariant: a builder and a parser must agree on rdlength.
	len() int
	// write serialises the variant's rdata (not the rdlength prefix,
	// which the caller reserves and backpatches).
	write(w *writer) error

	sealedRData()
}

// typeEntry is one dispatch-table row, keyed by TYPE code: a parser
// given the packet cursor and the record's rdlength.
type typeEntry struct {
	parse func(c *cursor, rdlength int) (RData, error)
}

var typeTable = map[Type]typeEntry{
	TypeA:        {parseA},
	TypeAAAA:     {parseAAAA},
	TypeNS:       {parseDomainName(TypeNS)},
	TypeCNAME:    {parseDomainName(TypeCNAME)},
	TypePTR:      {parseDomainName(TypePTR)},
	TypeMB:       {parseDomainName(TypeMB)},
	TypeMD:       {parseDomainName(TypeMD)},
	TypeMF:       {parseDomainName(TypeMF)},
	TypeMG:       {parseDomainName(TypeMG)},
	TypeMR:       {parseDomainName(TypeMR)},
	TypeSOA:      {parseSOA},
	TypeHINFO:    {parseHINFO},
	TypeISDN:     {parseISDN},
	TypeMINFO:    {parseMINFO},
	TypeRP:       {parseRP},
	TypeMX:       {parsePreferenceName(TypeMX)},
	TypeAFSDB:    {parsePreferenceName(TypeAFSDB)},
	TypeKX:       {parsePreferenceName(TypeKX)},
	TypeRT:       {parsePreferenceName(TypeRT)},
	TypeTXT:      {parseTXT},
	TypeWKS:      {parseWKS},
	TypeSRV:      {parseSRV},
	TypeNAPTR:    {parseNAPTR},
	TypeSVCB:     {parseSVCBFamily(TypeSVCB)},
	TypeHTTPS:    {parseSVCBFamily(TypeHTTPS)},
	TypeNSEC:     {parseNSEC},
	TypeDS:       {parseDSFamily(TypeDS)},
	TypeCDS:      {parseDSFamily(TypeCDS)},
	TypeDNSKEY:   {parseDNSKEY},
	TypeDHCID:    {parseOpaque(TypeDHCID)},
	TypeCERT:     {parseCERT},
	TypeZONEMD:   {parseZONEMD},
	TypeTLSA:     {parseTLSA},
	TypeCAA:      {parseCAA},
	TypeRRSIG:    {parseRRSIG},
	TypeLOC:      {parseLOC},
	TypeEUI48:    {parseEUIN(TypeEUI48, 6)},
	TypeEUI64:    {parseEUIN(TypeEUI64, 8)},
	TypeNSAP:     {parseNSAP},
	TypeIPSECKEY: {parseIPSECKEY},
	TypeOPT:      {parseOPTRData},
}

// dispatchRData looks up code in the table; unknown codes fall
// through to NULL, a zero-length window on a known code yields Empty.
func dispatchRData(code Type, c *cursor, rdlength int) (RData, error) {
	if rdlength == 0 {
		if _, known := typeTable[code]; known {
			return Empty{Code: code}, nil
		}
	}
	entry, ok := typeTable[code]
	if !ok {
		data, err := c.getSlice(rdlength)
		if err != nil {
			return nil, err
		}
		return NULL{Code: code, Data: append([]byte(nil), data...)}, nil
	}
	return entry.parse(c, rdlength)
}

// NULL is the opaque fallback for a TYPE code the catalogue does not
// recognise; unknown record types never error.
type NULL struct {
	Code Type
	Data []byte
}

func (n NULL) sealedRData() {}
func (n NULL) Type() Type   { return n.Code }
func (n NULL) len() int     { return len(n.Data) }
func (n NULL) write(w *writer) error {
	return w.writeBytes(n.Data)
}

// Empty is zero-length rdata for a known TYPE code.
type Empty struct {
	Code Type
}

func (e Empty) sealedRData()       {}
func (e Empty) Type() Type         { return e.Code }
func (e Empty) len() int           { return 0 }
func (e Empty) write(w *writer) error { return nil }

func parseOpaque(code Type) func(c *cursor, rdlength int) (RData, error) {
	return func(c *cursor, rdlength int) (RData, error) {
		data, err := c.getSlice(rdlength)
		if err != nil {
			return nil, err
		}
		return Opaque{Code: code, Data: append([]byte(nil), data...)}, nil
	}
}

// Opaque is used by variants whose entire rdata is an undifferentiated
// digest/key/signature with no fixed-width prefix (DHCID).
type Opaque struct {
	Code Type
	Data []byte
}

func (o Opaque) sealedRData()          {}
func (o Opaque) Type() Type            { return o.Code }
func (o Opaque) len() int              { return len(o.Data) }
func (o Opaque) write(w *writer) error { return w.writeBytes(o.Data) }
