package zone

import (
	"path/filepath"
	"strconv"
	"strings"

	"github.com/dnsscience/simpledns/dns"
)

// Record is one fully-resolved zone-file entry: an owner name, class,
// TTL and rdata, ready to become a dns.ResourceRecord.
type Record struct {
	Name  dns.Name
	Class dns.Class
	TTL   uint32
	RData dns.RData
}

// IncludeReader resolves the body of a $INCLUDE directive. A relative
// path from the zone file has already been joined onto the including
// parser's baseDir before it is passed in; an absolute path is passed
// unchanged.
type IncludeReader func(path string) ([]byte, error)

var classNameTable = map[string]dns.Class{
	"IN": dns.ClassIN,
	"CS": dns.ClassCS,
	"CH": dns.ClassCH,
	"HS": dns.ClassHS,
}

// Parser holds the mutable state RFC 1035 §5 control entries update as
// a master file is scanned top to bottom.
type Parser struct {
	defaultOrigin dns.Name
	defaultTTL    uint32
	ttlSet        bool
	defaultClass  dns.Class
	read          IncludeReader
	baseDir       string
}

// NewParser creates a Parser seeded with origin and no default TTL: a
// record without an explicit TTL fails with ErrMissingDefaultedInfo
// unless a $TTL directive has appeared before it.
func NewParser(origin dns.Name, read IncludeReader, baseDir string) *Parser {
	return &Parser{defaultOrigin: origin, defaultClass: dns.ClassIN, read: read, baseDir: baseDir}
}

// Parse tokenizes and parses data, returning every resolved record in
// file order. $INCLUDE is expanded inline; its own origin/TTL changes
// do not leak back into the including file.
func (p *Parser) Parse(data []byte) ([]Record, error) {
	t := newTokenizer(data)
	var records []Record

	for {
		entry, err := readEntry(t)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			return records, nil
		}
		if len(entry) == 0 {
			continue
		}

		if strings.HasPrefix(entry[0], "$") {
			included, err := p.applyControl(entry)
			if err != nil {
				return nil, err
			}
			records = append(records, included...)
			continue
		}

		rec, err := p.resolveRecord(entry)
		if err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
}

// readEntry drains tokens up to (and consuming) the next EndOfEntry,
// returning nil at true end of input.
func readEntry(t *tokenizer) ([]string, error) {
	var tokens []string
	sawAny := false
	for {
		tok, ok, err := t.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			if sawAny {
				return tokens, nil
			}
			return nil, nil
		}
		sawAny = true
		if tok.Kind == TokenEndOfEntry {
			if len(tokens) == 0 {
				sawAny = false
				continue
			}
			return tokens, nil
		}
		tokens = append(tokens, tok.Text)
	}
}

func (p *Parser) applyControl(entry []string) ([]Record, error) {
	switch strings.ToUpper(entry[0]) {
	case "$ORIGIN":
		if len(entry) != 2 {
			return nil, ErrInvalidToken
		}
		n, err := relativeName(entry[1], p.defaultOrigin)
		if err != nil {
			return nil, err
		}
		p.defaultOrigin = n
		return nil, nil

	case "$TTL":
		if len(entry) != 2 {
			return nil, ErrInvalidToken
		}
		v, err := strconv.ParseUint(entry[1], 10, 32)
		if err != nil {
			return nil, ErrInvalidToken
		}
		p.defaultTTL = uint32(v)
		p.ttlSet = true
		return nil, nil

	case "$INCLUDE":
		if len(entry) < 2 || len(entry) > 3 {
			return nil, ErrInvalidToken
		}
		if p.read == nil {
			return nil, ErrFileAccess
		}
		path := entry[1]
		if !filepath.IsAbs(path) {
			path = filepath.Join(p.baseDir, path)
		}
		data, err := p.read(path)
		if err != nil {
			return nil, ErrFileAccess
		}
		includeOrigin := p.defaultOrigin
		if len(entry) == 3 {
			n, err := relativeName(entry[2], p.defaultOrigin)
			if err != nil {
				return nil, err
			}
			includeOrigin = n
		}
		child := NewParser(includeOrigin, p.read, filepath.Dir(path))
		child.defaultTTL = p.defaultTTL
		child.ttlSet = p.ttlSet
		child.defaultClass = p.defaultClass
		return child.Parse(data)

	default:
		return nil, ErrInvalidToken
	}
}

// resolveRecord implements the master-file's leading-field tolerance: it scans
// backward from the end of the entry for a token matching a known
// type keyword, tentatively treats everything before it as the
// owner/class/TTL prefix and everything after it as rdata text, and
// falls back to an earlier candidate keyword if that type's grammar
// rejects the rdata tokens (covering the rare case where an owner
// name or TXT token happens to collide with a type keyword spelling).
// If no candidate resolves, the first owner/class/TTL error met is
// returned, or ErrUnsupportedRecord when there was none.
func (p *Parser) resolveRecord(entry []string) (Record, error) {
	var leadErr error
	for i := len(entry) - 1; i >= 0; i-- {
		code, known := typeNameTable[strings.ToUpper(entry[i])]
		if !known {
			continue
		}
		parseFn, supported := recordParsers[code]
		if !supported {
			continue
		}

		leading := entry[:i]
		rdataTokens := entry[i+1:]

		name, class, ttl, err := p.resolveLeadingFields(leading)
		if err != nil {
			if leadErr == nil {
				leadErr = err
			}
			continue
		}
		rdata, err := parseFn(rdataTokens, p.defaultOrigin)
		if err != nil {
			continue
		}
		return Record{Name: name, Class: class, TTL: ttl, RData: rdata}, nil
	}
	if leadErr != nil {
		return Record{}, leadErr
	}
	return Record{}, ErrUnsupportedRecord
}

func (p *Parser) resolveLeadingFields(tokens []string) (dns.Name, dns.Class, uint32, error) {
	var name *dns.Name
	var class *dns.Class
	var ttl *uint32

	for _, tok := range tokens {
		if c, ok := classNameTable[strings.ToUpper(tok)]; ok {
			if class != nil {
				return dns.Name{}, 0, 0, ErrInvalidToken
			}
			class = &c
			continue
		}
		if v, err := strconv.ParseUint(tok, 10, 32); err == nil {
			if ttl != nil {
				return dns.Name{}, 0, 0, ErrInvalidToken
			}
			u := uint32(v)
			ttl = &u
			continue
		}
		if name != nil {
			return dns.Name{}, 0, 0, ErrInvalidToken
		}
		n, err := relativeName(tok, p.defaultOrigin)
		if err != nil {
			return dns.Name{}, 0, 0, err
		}
		name = &n
	}

	resolvedName := p.defaultOrigin
	if name != nil {
		resolvedName = *name
	}
	resolvedClass := p.defaultClass
	if class != nil {
		resolvedClass = *class
	}
	if ttl == nil && !p.ttlSet {
		return dns.Name{}, 0, 0, ErrMissingDefaultedInfo
	}
	resolvedTTL := p.defaultTTL
	if ttl != nil {
		resolvedTTL = *ttl
	}
	return resolvedName, resolvedClass, resolvedTTL, nil
}
