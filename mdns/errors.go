// Package mdns is a thin mDNS / DNS-SD service-discovery consumer
// built on the dns wire-format codec: a UDP multicast event loop, a
// cache-expiration timer, and the RFC 6762 probing/announcing state
// machine. It never touches packet bytes directly — encode/decode is
// delegated entirely to the dns package.
package mdns

import "errors"

var (
	// ErrClosed is returned by Responder.Run, and by a Register that
	// reaches the event loop, once Close has been called.
	ErrClosed = errors.New("mdns: responder closed")

	// ErrNameConflict means probing exhausted its RFC 6762 §9 rename
	// budget without finding a free instance name.
	ErrNameConflict = errors.New("mdns: service name conflict")

	// ErrInvalidService means a Service failed Validate.
	ErrInvalidService = errors.New("mdns: invalid service")

	// ErrNoMulticastInterface means no UP+MULTICAST interface accepted
	// the group join.
	ErrNoMulticastInterface = errors.New("mdns: no usable multicast interface")
)

// NetworkError wraps a lower-level socket failure with the operation
// that triggered it, grounded on beacon's internal/errors.NetworkError
// shape.
type NetworkError struct {
	Operation string
	Err       error
}

func (e *NetworkError) Error() string {
	return "mdns: " + e.Operation + ": " + e.Err.Error()
}

func (e *NetworkError) Unwrap() error { return e.Err }
