// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"context"
	"net"
	"time"

	"golang-netsweep/internal/types"

	"github.com/vishvananda/netlink"
)

// Prober is a port for reachability checks.
// This interface abstracts the echo mechanism (OS ping utility, ICMP socket).
type Prober interface {
	// Check sends exactly one echo request to address and reports whether a reply
	// arrived within timeout. An error means the probe could not be performed.
	Check(ctx context.Context, address types.Address, timeout time.Duration) (bool, error)
}

// Resolver is a port for reverse DNS resolution.
type Resolver interface {
	// LookupAddr returns the first name the address resolves to.
	LookupAddr(ctx context.Context, address types.Address) (string, error)
}

// NetworkManager is a port for read-only network interface operations.
// This interface abstracts netlink operations used to pick a local address.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)

	// ListAddresses returns IPv4 addresses configured on the link
	ListAddresses(link netlink.Link) ([]netlink.Addr, error)

	// RouteGet returns the routes the kernel would use to reach dst
	RouteGet(dst net.IP) ([]netlink.Route, error)
}
