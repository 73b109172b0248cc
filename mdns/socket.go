package mdns

import (
	"context"
	"net"

	"golang.org/x/net/ipv4"
	"golang.org/x/net/ipv6"
)

// IPv4Group and IPv6Group are the mDNS multicast addresses from
// RFC 6762 §3.
var (
	IPv4Group = net.IPv4(224, 0, 0, 251)
	IPv6Group = net.ParseIP("ff02::fb")
)

const (
	mdnsPort      = 5353
	readBufferLen = 65536
)

// Conn bundles the two address-family packet connections a mixed
// IPv4/IPv6 responder listens on. Either may be nil if that family
// had no usable interface.
type Conn struct {
	PC4 *ipv4.PacketConn
	PC6 *ipv6.PacketConn
}

// CreateSocket opens UDP multicast listeners on ifaceNames (or every
// UP+MULTICAST interface when ifaceNames is empty), joins the mDNS
// groups on each, and returns the resulting packet connections. This
// mirrors internal/network/socket.go's CreateSocket, generalized to
// both address families.
func CreateSocket(ctx context.Context, ifaceNames []string) (*Conn, error) {
	ifaces, err := resolveInterfaces(ifaceNames)
	if err != nil {
		return nil, err
	}
	if len(ifaces) == 0 {
		return nil, ErrNoMulticastInterface
	}

	conn := &Conn{}

	if pc4, err := listen4(ctx, ifaces); err == nil {
		conn.PC4 = pc4
	}
	if pc6, err := listen6(ctx, ifaces); err == nil {
		conn.PC6 = pc6
	}
	if conn.PC4 == nil && conn.PC6 == nil {
		return nil, ErrNoMulticastInterface
	}
	return conn, nil
}

func resolveInterfaces(names []string) ([]net.Interface, error) {
	if len(names) == 0 {
		all, err := net.Interfaces()
		if err != nil {
			return nil, &NetworkError{Operation: "list interfaces", Err: err}
		}
		var up []net.Interface
		for _, ifi := range all {
			if ifi.Flags&net.FlagUp != 0 && ifi.Flags&net.FlagMulticast != 0 {
				up = append(up, ifi)
			}
		}
		return up, nil
	}
	var out []net.Interface
	for _, name := range names {
		ifi, err := net.InterfaceByName(name)
		if err != nil {
			return nil, &NetworkError{Operation: "lookup interface " + name, Err: err}
		}
		out = append(out, *ifi)
	}
	return out, nil
}

func listen4(ctx context.Context, ifaces []net.Interface) (*ipv4.PacketConn, error) {
	lc := net.ListenConfig{Control: platformControl}
	c, err := lc.ListenPacket(ctx, "udp4", ":5353")
	if err != nil {
		return nil, &NetworkError{Operation: "listen udp4", Err: err}
	}
	pc := ipv4.NewPacketConn(c)

	joined := false
	for _, ifi := range ifaces {
		ifi := ifi
		if err := pc.JoinGroup(&ifi, &net.UDPAddr{IP: IPv4Group}); err == nil {
			joined = true
		}
	}
	if !joined {
		pc.Close()
		return nil, ErrNoMulticastInterface
	}

	_ = pc.SetMulticastTTL(255)
	_ = pc.SetMulticastLoopback(true)
	_ = pc.SetControlMessage(ipv4.FlagInterface, true)
	if uc, ok := c.(*net.UDPConn); ok {
		_ = uc.SetReadBuffer(readBufferLen)
	}
	return pc, nil
}

func listen6(ctx context.Context, ifaces []net.Interface) (*ipv6.PacketConn, error) {
	lc := net.ListenConfig{Control: platformControl}
	c, err := lc.ListenPacket(ctx, "udp6", ":5353")
	if err != nil {
		return nil, &NetworkError{Operation: "listen udp6", Err: err}
	}
	pc := ipv6.NewPacketConn(c)

	joined := false
	for _, ifi := range ifaces {
		ifi := ifi
		if err := pc.JoinGroup(&ifi, &net.UDPAddr{IP: IPv6Group}); err == nil {
			joined = true
		}
	}
	if !joined {
		pc.Close()
		return nil, ErrNoMulticastInterface
	}

	_ = pc.SetMulticastHopLimit(255)
	_ = pc.SetMulticastLoopback(true)
	_ = pc.SetControlMessage(ipv6.FlagInterface, true)
	if uc, ok := c.(*net.UDPConn); ok {
		_ = uc.SetReadBuffer(readBufferLen)
	}
	return pc, nil
}

// Close releases both underlying connections, skipping either that is
// nil, and returns the first Close error.
func (c *Conn) Close() error {
	var firstErr error
	if c.PC4 != nil {
		if err := c.PC4.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if c.PC6 != nil {
		if err := c.PC6.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
