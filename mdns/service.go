package mdns

import (
	"fmt"
	"regexp"
	"strconv"
)

// Service describes one mDNS/DNS-SD service instance to advertise or
// to match against incoming answers, grounded on responder/service.go
// but expressed over this module's own dns.Name rather than raw
// strings for the wire-facing pieces.
type Service struct {
	// InstanceName is the human-readable instance (RFC 6763 §4), 1-63
	// octets, e.g. "My Printer".
	InstanceName string

	// ServiceType is "_service._proto" (e.g. "_http._tcp"), without the
	// trailing domain — Domain supplies that.
	ServiceType string

	// Domain is the zone the service is published under; "local" for
	// link-local mDNS, per RFC 6762.
	Domain string

	// Port is the service port, 1-65535.
	Port int

	// TXT holds optional key/value metadata (RFC 6763 §6).
	TXT map[string]string

	// Hostname is the target of the SRV record. Nothing in this
	// package fills it in when it is empty.
	Hostname string
}

var serviceTypeRegex = regexp.MustCompile(`^_[a-zA-Z0-9-]+\._(tcp|udp)$`)

// Validate checks every field against RFC 6762/6763 constraints.
func (s *Service) Validate() error {
	if s.InstanceName == "" {
		return fmt.Errorf("%w: instance name cannot be empty", ErrInvalidService)
	}
	if len(s.InstanceName) > 63 {
		return fmt.Errorf("%w: instance name exceeds 63 octets (got %d)", ErrInvalidService, len(s.InstanceName))
	}
	if !serviceTypeRegex.MatchString(s.ServiceType) {
		return fmt.Errorf("%w: service type must be \"_service._proto\" (got %q)", ErrInvalidService, s.ServiceType)
	}
	if s.Domain == "" {
		return fmt.Errorf("%w: domain cannot be empty", ErrInvalidService)
	}
	if s.Port < 1 || s.Port > 65535 {
		return fmt.Errorf("%w: port must be in range 1-65535 (got %d)", ErrInvalidService, s.Port)
	}
	if err := validateTXTSize(s.TXT); err != nil {
		return err
	}
	return nil
}

// validateTXTSize enforces RFC 6763 §6.2's 1300-byte soft ceiling on
// total TXT record content.
func validateTXTSize(txt map[string]string) error {
	total := 0
	for k, v := range txt {
		total += 1 + len(k) + 1 + len(v)
	}
	if total > 1300 {
		return fmt.Errorf("%w: TXT records exceed 1300 bytes (got %d)", ErrInvalidService, total)
	}
	return nil
}

var suffixPattern = regexp.MustCompile(`^(.+)-(\d+)$`)

// Rename appends or increments a numeric suffix on InstanceName per
// RFC 6762 §9's conflict-resolution rule: "My Service" becomes
// "My Service-2", which becomes "My Service-3", and so on.
func (s *Service) Rename() {
	if m := suffixPattern.FindStringSubmatch(s.InstanceName); m != nil {
		n, _ := strconv.Atoi(m[2])
		s.InstanceName = truncateToFit(fmt.Sprintf("%s-%d", m[1], n+1), 63)
		return
	}
	s.InstanceName = truncateToFit(s.InstanceName+"-2", 63)
}

func truncateToFit(name string, maxLen int) string {
	if len(name) <= maxLen {
		return name
	}
	if m := regexp.MustCompile(`^(.+?)(-\d+)$`).FindStringSubmatch(name); m != nil {
		base, suffix := m[1], m[2]
		maxBase := maxLen - len(suffix)
		if maxBase < 1 {
			return name[:maxLen]
		}
		return base[:maxBase] + suffix
	}
	return name[:maxLen]
}

// QualifiedInstance returns "InstanceName.ServiceType.Domain" in
// presentation form, the name used for the service's PTR target and
// its own SRV/TXT owner name.
func (s *Service) QualifiedInstance() string {
	return s.InstanceName + "." + s.ServiceType + "." + s.Domain
}

// ServiceTypeName returns "ServiceType.Domain", the name clients query
// with a PTR lookup to enumerate instances (RFC 6763 §4).
func (s *Service) ServiceTypeName() string {
	return s.ServiceType + "." + s.Domain
}
