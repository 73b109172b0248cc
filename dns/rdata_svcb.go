package dns

import (
	"fmt"
	"sort"
)

// SVCB parameter keys with typed accessors; unknown keys are preserved
// opaquely (RFC 9460).
const (
	SVCBKeyMandatory    uint16 = 0
	SVCBKeyALPN         uint16 = 1
	SVCBKeyNoDefaultALPN uint16 = 2
	SVCBKeyPort         uint16 = 3
	SVCBKeyIPv4Hint     uint16 = 4
	SVCBKeyECH          uint16 = 5
	SVCBKeyIPv6Hint     uint16 = 6
)

// SVCBParam is one key=value parameter in an SVCB/HTTPS rdata.
type SVCBParam struct {
	Key   uint16
	Value []byte
}

func (p SVCBParam) len() int { return 4 + len(p.Value) }

// SVCB holds RFC 9460 service-binding rdata; HTTPS shares the same
// wire shape under a different TYPE code, so both dispatch through
// parseSVCBFamily/the same struct with a `code` discriminator.
type SVCB struct {
	code     Type
	Priority uint16
	Target   Name
	Params   []SVCBParam
}

func (s SVCB) sealedRData() {}
func (s SVCB) Type() Type    { return s.code }
func (s SVCB) len() int {
	total := 2 + s.Target.len()
	for _, p := range s.Params {
		total += p.len()
	}
	return total
}

// write emits params in strictly ascending key order regardless of
// the order the caller supplied ("SVCB params are
// re-sorted on write to satisfy RFC requirements even if a caller
// supplied them out of order").
func (s SVCB) write(w *writer) error {
	if err := w.writeU16(s.Priority); err != nil {
		return err
	}
	if err := w.writeName(s.Target, true); err != nil {
		return err
	}
	sorted := append([]SVCBParam(nil), s.Params...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Key < sorted[j].Key })
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Key == sorted[i-1].Key {
			return fmt.Errorf("%w: duplicate SVCB key %d", ErrAttemptedInvalidOperation, sorted[i].Key)
		}
	}
	for _, p := range sorted {
		if len(p.Value) > 65535 {
			return fmt.Errorf("%w: SVCB param value too long", ErrInvalidPacket)
		}
		if err := w.writeU16(p.Key); err != nil {
			return err
		}
		if err := w.writeU16(uint16(len(p.Value))); err != nil {
			return err
		}
		if err := w.writeBytes(p.Value); err != nil {
			return err
		}
	}
	return nil
}

func parseSVCBFamily(code Type) func(c *cursor, rdlength int) (RData, error) {
	return func(c *cursor, rdlength int) (RData, error) {
		limited, err := c.newLimitedTo(rdlength)
		if err != nil {
			return nil, err
		}
		priority, err := limited.getU16()
		if err != nil {
			return nil, err
		}
		target, err := parseName(limited)
		if err != nil {
			return nil, err
		}
		var params []SVCBParam
		for limited.hasRemaining() {
			key, err := limited.getU16()
			if err != nil {
				return nil, err
			}
			vlen, err := limited.getU16()
			if err != nil {
				return nil, err
			}
			val, err := limited.getSlice(int(vlen))
			if err != nil {
				return nil, err
			}
			params = append(params, SVCBParam{Key: key, Value: append([]byte(nil), val...)})
		}
		if err := c.advance(rdlength); err != nil {
			return nil, err
		}
		return SVCB{code: code, Priority: priority, Target: target, Params: params}, nil
	}
}

// NewSVCB builds SVCB/HTTPS rdata for the given type code.
func NewSVCB(code Type, priority uint16, target Name, params []SVCBParam) SVCB {
	return SVCB{code: code, Priority: priority, Target: target, Params: params}
}
