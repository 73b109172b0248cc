//go:build !linux && !darwin

package mdns

import "syscall"

// platformControl is a no-op on platforms without SO_REUSEPORT
// support; binding still succeeds, just without shared-port semantics.
func platformControl(network, address string, c syscall.RawConn) error {
	return nil
}
