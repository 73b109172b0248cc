package dns

// Type is a DNS RRTYPE/QTYPE wire code.
type Type uint16

// Record type codes (NULL and SSHFP, having no catalogue entry,
// parse as NULL rdata), plus the
// QTYPE-only meta-values (AXFR, MAILB, MAILA, ANY) used in questions.
const (
	TypeA          Type = 1
	TypeNS         Type = 2
	TypeMD         Type = 3
	TypeMF         Type = 4
	TypeCNAME      Type = 5
	TypeSOA        Type = 6
	TypeMB         Type = 7
	TypeMG         Type = 8
	TypeMR         Type = 9
	TypeNULL       Type = 10
	TypeWKS        Type = 11
	TypePTR        Type = 12
	TypeHINFO      Type = 13
	TypeMINFO      Type = 14
	TypeMX         Type = 15
	TypeTXT        Type = 16
	TypeRP         Type = 17
	TypeAFSDB      Type = 18
	TypeISDN       Type = 20
	TypeRT         Type = 21
	TypeNSAP       Type = 22
	TypeKX         Type = 36
	TypeCERT       Type = 37
	TypeSRV        Type = 33
	TypeNAPTR      Type = 35
	TypeOPT        Type = 41
	TypeDS         Type = 43
	TypeSSHFP      Type = 44
	TypeIPSECKEY   Type = 45
	TypeRRSIG      Type = 46
	TypeNSEC       Type = 47
	TypeDNSKEY     Type = 48
	TypeDHCID      Type = 49
	TypeTLSA       Type = 52
	TypeCDS        Type = 59
	TypeZONEMD     Type = 63
	TypeSVCB       Type = 64
	TypeHTTPS      Type = 65
	TypeEUI48      Type = 108
	TypeEUI64      Type = 109
	TypeLOC        Type = 29
	TypeAAAA       Type = 28
	TypeCAA        Type = 257

	TypeAXFR  Type = 252
	TypeMAILB Type = 253
	TypeMAILA Type = 254
	TypeANY   Type = 255
)

// Class is a DNS CLASS wire code. It is an open enumeration: any
// numeric value round-trips, with named constants for the common ones
// (per-variant contracts never reject an unrecognised class).
type Class uint16

const (
	ClassIN   Class = 1
	ClassCS   Class = 2
	ClassCH   Class = 3
	ClassHS   Class = 4
	ClassNone Class = 254
	ClassAny  Class = 255
)

// KnownClass validates v against the closed set of assigned classes,
// for callers that need a strict enum instead of the open Class type
// that the rest of the codec uses (InvalidClass is only raised
// where a closed enum is explicitly required).
func KnownClass(v uint16) (Class, error) {
	switch Class(v) {
	case ClassIN, ClassCS, ClassCH, ClassHS, ClassNone, ClassAny:
		return Class(v), nil
	default:
		return 0, InvalidClassError(v)
	}
}

// QType is a question-section TYPE, which additionally allows the
// QTYPE-only meta-values (AXFR, MAILB, MAILA, ANY).
type QType uint16

// KnownQType validates v against the closed set of QTYPE meta-values
// and catalogued record types.
func KnownQType(v uint16) (QType, error) {
	switch Type(v) {
	case TypeA, TypeNS, TypeMD, TypeMF, TypeCNAME, TypeSOA, TypeMB, TypeMG, TypeMR,
		TypeNULL, TypeWKS, TypePTR, TypeHINFO, TypeMINFO, TypeMX, TypeTXT, TypeRP,
		TypeAFSDB, TypeISDN, TypeRT, TypeNSAP, TypeKX, TypeCERT, TypeSRV, TypeNAPTR,
		TypeOPT, TypeDS, TypeSSHFP, TypeIPSECKEY, TypeRRSIG, TypeNSEC, TypeDNSKEY,
		TypeDHCID, TypeTLSA, TypeCDS, TypeZONEMD, TypeSVCB, TypeHTTPS, TypeEUI48,
		TypeEUI64, TypeLOC, TypeAAAA, TypeCAA,
		TypeAXFR, TypeMAILB, TypeMAILA, TypeANY:
		return QType(v), nil
	default:
		return 0, InvalidQTypeError(v)
	}
}

// QClass is a question-section CLASS; same open/closed split as Class.
type QClass uint16

func KnownQClass(v uint16) (QClass, error) {
	c, err := KnownClass(v)
	if err != nil {
		return 0, InvalidQClassError(v)
	}
	return QClass(c), nil
}

// MatchesQType reports whether a resource record of type rrType
// satisfies a question of type qtype
// resolution: IXFR matches nothing here (no zone-transfer support)
// and ANY/AXFR match every record type.
func MatchesQType(rrType Type, qtype QType) bool {
	switch Type(qtype) {
	case TypeANY, TypeAXFR:
		return true
	case 251: // IXFR
		return false
	default:
		return rrType == Type(qtype)
	}
}
