//go:build linux || darwin

package mdns

import (
	"syscall"

	"golang.org/x/sys/unix"
)

// platformControl sets SO_REUSEADDR and SO_REUSEPORT before bind, so
// multiple processes (or multiple listeners within this one) can share
// the mDNS port, mirroring internal/transport/socket_linux.go.
func platformControl(network, address string, c syscall.RawConn) error {
	var sockErr error
	err := c.Control(func(fd uintptr) {
		if err := unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEADDR, 1); err != nil {
			sockErr = err
			return
		}
		sockErr = unix.SetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_REUSEPORT, 1)
	})
	if err != nil {
		return err
	}
	return sockErr
}
