package zone

import (
	"net"
	"strconv"

	"github.com/dnsscience/simpledns/dns"
)

// typeNameTable maps a master-file type keyword to its wire TYPE code,
// found by scanning an entry's tokens backwards for a known type
// keyword. Only a representative subset of the catalogue is listed,
// each with a text grammar below; any other type keyword is not
// recognised, so an entry naming one ends in ErrUnsupportedRecord.
var typeNameTable = map[string]dns.Type{
	"A":     dns.TypeA,
	"AAAA":  dns.TypeAAAA,
	"NS":    dns.TypeNS,
	"CNAME": dns.TypeCNAME,
	"SOA":   dns.TypeSOA,
	"PTR":   dns.TypePTR,
	"MX":    dns.TypeMX,
	"TXT":   dns.TypeTXT,
	"HINFO": dns.TypeHINFO,
	"SRV":   dns.TypeSRV,
	"CAA":   dns.TypeCAA,
	"NAPTR": dns.TypeNAPTR,
}

// recordParser builds rdata from an entry's remaining text tokens,
// once the owner/class/TTL/type prefix has been consumed.
type recordParser func(tokens []string, origin dns.Name) (dns.RData, error)

var recordParsers = map[dns.Type]recordParser{
	dns.TypeA:     parseTextA,
	dns.TypeAAAA:  parseTextAAAA,
	dns.TypeNS:    parseTextDomainName(dns.TypeNS),
	dns.TypeCNAME: parseTextDomainName(dns.TypeCNAME),
	dns.TypePTR:   parseTextDomainName(dns.TypePTR),
	dns.TypeSOA:   parseTextSOA,
	dns.TypeMX:    parseTextMX,
	dns.TypeTXT:   parseTextTXT,
	dns.TypeHINFO: parseTextHINFO,
	dns.TypeSRV:   parseTextSRV,
	dns.TypeCAA:   parseTextCAA,
	dns.TypeNAPTR: parseTextNAPTR,
}

func relativeName(text string, origin dns.Name) (dns.Name, error) {
	if text == "@" {
		return origin, nil
	}
	if len(text) > 0 && text[len(text)-1] == '.' {
		return dns.NewName(text)
	}
	n, err := dns.NewName(text)
	if err != nil {
		return dns.Name{}, err
	}
	if n.IsRoot() {
		return origin, nil
	}
	labels := append(append([][]byte{}, n.Labels()...), origin.Labels()...)
	return dns.NewNameUnchecked(labels), nil
}

func parseTextA(tokens []string, origin dns.Name) (dns.RData, error) {
	if len(tokens) != 1 {
		return nil, ErrInvalidToken
	}
	ip := net.ParseIP(tokens[0]).To4()
	if ip == nil {
		return nil, ErrInvalidToken
	}
	var a dns.A
	copy(a.Address[:], ip)
	return a, nil
}

func parseTextAAAA(tokens []string, origin dns.Name) (dns.RData, error) {
	if len(tokens) != 1 {
		return nil, ErrInvalidToken
	}
	ip := net.ParseIP(tokens[0]).To16()
	if ip == nil {
		return nil, ErrInvalidToken
	}
	var a dns.AAAA
	copy(a.Address[:], ip)
	return a, nil
}

func parseTextDomainName(code dns.Type) recordParser {
	return func(tokens []string, origin dns.Name) (dns.RData, error) {
		if len(tokens) != 1 {
			return nil, ErrInvalidToken
		}
		n, err := relativeName(tokens[0], origin)
		if err != nil {
			return nil, err
		}
		return dns.NewDomainName(code, n), nil
	}
}

func parseTextSOA(tokens []string, origin dns.Name) (dns.RData, error) {
	if len(tokens) != 7 {
		return nil, ErrInvalidToken
	}
	mname, err := relativeName(tokens[0], origin)
	if err != nil {
		return nil, err
	}
	rname, err := relativeName(tokens[1], origin)
	if err != nil {
		return nil, err
	}
	nums := make([]int64, 5)
	for i, tok := range tokens[2:] {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, ErrInvalidToken
		}
		nums[i] = v
	}
	return dns.SOA{
		MName: mname, RName: rname,
		Serial: uint32(nums[0]), Refresh: int32(nums[1]), Retry: int32(nums[2]),
		Expire: int32(nums[3]), Minimum: uint32(nums[4]),
	}, nil
}

func parseTextMX(tokens []string, origin dns.Name) (dns.RData, error) {
	if len(tokens) != 2 {
		return nil, ErrInvalidToken
	}
	pref, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, ErrInvalidToken
	}
	n, err := relativeName(tokens[1], origin)
	if err != nil {
		return nil, err
	}
	return dns.NewPreferenceName(dns.TypeMX, uint16(pref), n), nil
}

func parseTextTXT(tokens []string, origin dns.Name) (dns.RData, error) {
	strs := make([]dns.CharacterString, 0, len(tokens))
	for _, tok := range tokens {
		cs, err := dns.NewCharacterString([]byte(tok))
		if err != nil {
			return nil, err
		}
		strs = append(strs, cs)
	}
	return dns.TXT{Strings: strs}, nil
}

func parseTextHINFO(tokens []string, origin dns.Name) (dns.RData, error) {
	if len(tokens) != 2 {
		return nil, ErrInvalidToken
	}
	cpu, err := dns.NewCharacterString([]byte(tokens[0]))
	if err != nil {
		return nil, err
	}
	os, err := dns.NewCharacterString([]byte(tokens[1]))
	if err != nil {
		return nil, err
	}
	return dns.HINFO{CPU: cpu, OS: os}, nil
}

func parseTextSRV(tokens []string, origin dns.Name) (dns.RData, error) {
	if len(tokens) != 4 {
		return nil, ErrInvalidToken
	}
	nums := make([]int, 3)
	for i, tok := range tokens[:3] {
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, ErrInvalidToken
		}
		nums[i] = v
	}
	target, err := relativeName(tokens[3], origin)
	if err != nil {
		return nil, err
	}
	return dns.SRV{Priority: uint16(nums[0]), Weight: uint16(nums[1]), Port: uint16(nums[2]), Target: target}, nil
}

func parseTextCAA(tokens []string, origin dns.Name) (dns.RData, error) {
	if len(tokens) != 3 {
		return nil, ErrInvalidToken
	}
	flags, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, ErrInvalidToken
	}
	tag, err := dns.NewCharacterString([]byte(tokens[1]))
	if err != nil {
		return nil, err
	}
	return dns.CAA{Flags: uint8(flags), Tag: tag, Value: []byte(tokens[2])}, nil
}

func parseTextNAPTR(tokens []string, origin dns.Name) (dns.RData, error) {
	if len(tokens) != 6 {
		return nil, ErrInvalidToken
	}
	order, err := strconv.Atoi(tokens[0])
	if err != nil {
		return nil, ErrInvalidToken
	}
	pref, err := strconv.Atoi(tokens[1])
	if err != nil {
		return nil, ErrInvalidToken
	}
	flags, err := dns.NewCharacterString([]byte(tokens[2]))
	if err != nil {
		return nil, err
	}
	services, err := dns.NewCharacterString([]byte(tokens[3]))
	if err != nil {
		return nil, err
	}
	regexp, err := dns.NewCharacterString([]byte(tokens[4]))
	if err != nil {
		return nil, err
	}
	replacement, err := relativeName(tokens[5], origin)
	if err != nil {
		return nil, err
	}
	return dns.NAPTR{Order: uint16(order), Preference: uint16(pref), Flags: flags, Services: services, Regexp: regexp, Replacement: replacement}, nil
}
