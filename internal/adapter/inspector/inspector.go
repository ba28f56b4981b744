// Package inspector determines the local IPv4 address a sweep is based on.
package inspector

import (
	"context"
	"fmt"
	"net"

	"golang-netsweep/internal/pkg/logging"
	"golang-netsweep/internal/port"
	"golang-netsweep/internal/types"
)

// DefaultTarget is a well-known public address used only to select an outbound route.
const DefaultTarget = "8.8.8.8:80"

// DialFunc opens a connection, as net.Dialer.DialContext does.
type DialFunc func(ctx context.Context, network, address string) (net.Conn, error)

// UDPInspector associates a UDP socket with a public address so the OS
// picks an outbound source address. No datagram is ever written.
type UDPInspector struct {
	target string
	dial   DialFunc
}

// Ensure UDPInspector implements the AddressInspector port
var _ port.AddressInspector = (*UDPInspector)(nil)

// NewUDPInspector creates an inspector aimed at DefaultTarget.
func NewUDPInspector() *UDPInspector {
	var d net.Dialer
	return &UDPInspector{target: DefaultTarget, dial: d.DialContext}
}

// LocalAddress returns the outbound source address, or types.LoopbackAddress.
func (i *UDPInspector) LocalAddress(ctx context.Context) types.Address {
	logger := logging.WithComponent("inspector").WithField("target", i.target)

	addr, err := i.localAddress(ctx)
	if err != nil {
		logger.WithError(err).Debug("Falling back to loopback")
		return types.LoopbackAddress
	}

	logger.WithField("address", addr).Debug("Determined local address")
	return addr
}

func (i *UDPInspector) localAddress(ctx context.Context) (types.Address, error) {
	conn, err := i.dial(ctx, "udp4", i.target)
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrLocalAddressUnavailable, err)
	}
	defer conn.Close()

	udpAddr, ok := conn.LocalAddr().(*net.UDPAddr)
	if !ok {
		return "", fmt.Errorf("%w: unexpected local address type %T", types.ErrLocalAddressUnavailable, conn.LocalAddr())
	}
	return fromIP(udpAddr.IP)
}

// RouteInspector asks the kernel routing table for the preferred source
// address toward the target, without opening any socket.
type RouteInspector struct {
	target     net.IP
	networkMgr port.NetworkManager
}

// Ensure RouteInspector implements the AddressInspector port
var _ port.AddressInspector = (*RouteInspector)(nil)

// NewRouteInspector creates an inspector that reads the route toward DefaultTarget.
func NewRouteInspector(networkMgr port.NetworkManager) *RouteInspector {
	host, _, _ := net.SplitHostPort(DefaultTarget)
	return &RouteInspector{target: net.ParseIP(host), networkMgr: networkMgr}
}

// LocalAddress returns the preferred source of the first route, or types.LoopbackAddress.
func (i *RouteInspector) LocalAddress(ctx context.Context) types.Address {
	logger := logging.WithComponent("inspector").WithField("target", i.target.String())

	routes, err := i.networkMgr.RouteGet(i.target)
	if err != nil {
		logger.WithError(err).Debug("Falling back to loopback")
		return types.LoopbackAddress
	}

	for _, route := range routes {
		if addr, err := fromIP(route.Src); err == nil {
			logger.WithField("address", addr).Debug("Determined local address from route")
			return addr
		}
	}

	logger.Debug("No route with a preferred source, falling back to loopback")
	return types.LoopbackAddress
}

// InterfaceInspector uses the first IPv4 address configured on a named link.
type InterfaceInspector struct {
	ifaceName  string
	networkMgr port.NetworkManager
}

// Ensure InterfaceInspector implements the AddressInspector port
var _ port.AddressInspector = (*InterfaceInspector)(nil)

// NewInterfaceInspector creates an inspector for ifaceName.
func NewInterfaceInspector(ifaceName string, networkMgr port.NetworkManager) *InterfaceInspector {
	return &InterfaceInspector{ifaceName: ifaceName, networkMgr: networkMgr}
}

// LocalAddress returns the first IPv4 address of the link, or types.LoopbackAddress.
func (i *InterfaceInspector) LocalAddress(ctx context.Context) types.Address {
	logger := logging.WithComponent("inspector").WithField("interface", i.ifaceName)

	link, err := i.networkMgr.GetLinkByName(i.ifaceName)
	if err != nil {
		logger.WithError(err).Warn("Interface unavailable, falling back to loopback")
		return types.LoopbackAddress
	}

	addrs, err := i.networkMgr.ListAddresses(link)
	if err != nil {
		logger.WithError(err).Warn("Failed to list interface addresses, falling back to loopback")
		return types.LoopbackAddress
	}

	for _, a := range addrs {
		if a.IPNet == nil {
			continue
		}
		if addr, err := fromIP(a.IPNet.IP); err == nil {
			logger.WithField("address", addr).Debug("Determined local address from interface")
			return addr
		}
	}

	logger.Warn("Interface has no IPv4 address, falling back to loopback")
	return types.LoopbackAddress
}

func fromIP(ip net.IP) (types.Address, error) {
	ip4 := ip.To4()
	if ip4 == nil || ip4.IsUnspecified() {
		return "", fmt.Errorf("%w: %v is not a usable IPv4 address", types.ErrLocalAddressUnavailable, ip)
	}
	return types.ParseAddress(ip4.String())
}
