// Package icmp provides an in-process reachability adapter using unprivileged ICMP echo sockets.
package icmp

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"sync/atomic"
	"time"

	"golang-netsweep/internal/port"
	"golang-netsweep/internal/types"

	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

var payload = []byte("netsweep-echo")

// ClientAdapter is an adapter that implements the Prober port with golang.org/x/net/icmp.
// It uses "udp4" ICMP sockets, which Linux grants to unprivileged users within
// net.ipv4.ping_group_range and macOS grants to everyone.
type ClientAdapter struct {
	network string
	seq     atomic.Uint32
}

// Ensure ClientAdapter implements the Prober port
var _ port.Prober = (*ClientAdapter)(nil)

// NewClientAdapter creates a new ICMP adapter.
func NewClientAdapter() *ClientAdapter {
	return &ClientAdapter{network: "udp4"}
}

// Check sends one echo request and waits for the matching reply until timeout.
func (c *ClientAdapter) Check(ctx context.Context, address types.Address, timeout time.Duration) (bool, error) {
	ip := net.ParseIP(string(address)).To4()
	if ip == nil {
		return false, fmt.Errorf("%w: invalid IPv4 address %q", types.ErrProbeFailure, address)
	}

	conn, err := icmp.ListenPacket(c.network, "0.0.0.0")
	if err != nil {
		return false, fmt.Errorf("%w: failed to open ICMP socket: %v", types.ErrProbeFailure, err)
	}
	defer conn.Close()

	deadline := time.Now().Add(timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err := conn.SetDeadline(deadline); err != nil {
		return false, fmt.Errorf("%w: failed to set deadline: %v", types.ErrProbeFailure, err)
	}

	// Close the socket early on cancellation so ReadFrom returns
	stop := context.AfterFunc(ctx, func() { _ = conn.Close() })
	defer stop()

	seq := int(c.seq.Add(1) & 0xffff)
	msg := icmp.Message{
		Type: ipv4.ICMPTypeEcho,
		Code: 0,
		Body: &icmp.Echo{
			ID:   os.Getpid() & 0xffff,
			Seq:  seq,
			Data: payload,
		},
	}
	wire, err := msg.Marshal(nil)
	if err != nil {
		return false, fmt.Errorf("%w: failed to marshal ICMP message: %v", types.ErrProbeFailure, err)
	}

	if _, err := conn.WriteTo(wire, &net.UDPAddr{IP: ip}); err != nil {
		return false, fmt.Errorf("%w: failed to send echo to %s: %v", types.ErrProbeFailure, address, err)
	}

	reply := make([]byte, 1500)
	for {
		n, peer, err := conn.ReadFrom(reply)
		if err != nil {
			if isTimeout(err) || ctx.Err() != nil {
				return false, nil
			}
			return false, fmt.Errorf("%w: failed to read reply from %s: %v", types.ErrProbeFailure, address, err)
		}

		if matchesEcho(reply[:n], peer, ip, seq) {
			return true, nil
		}
	}
}

// matchesEcho reports whether b is the echo reply to seq from ip. The kernel
// rewrites the echo ID on datagram ICMP sockets, so only Seq and the peer are compared.
func matchesEcho(b []byte, peer net.Addr, ip net.IP, seq int) bool {
	rm, err := icmp.ParseMessage(ipv4.ICMPTypeEchoReply.Protocol(), b)
	if err != nil || rm.Type != ipv4.ICMPTypeEchoReply {
		return false
	}

	echo, ok := rm.Body.(*icmp.Echo)
	if !ok || echo.Seq != seq {
		return false
	}

	switch p := peer.(type) {
	case *net.UDPAddr:
		return p.IP.Equal(ip)
	case *net.IPAddr:
		return p.IP.Equal(ip)
	default:
		return false
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, os.ErrDeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
