// Package dns provides reverse DNS resolver adapter implementations.
package dns

import (
	"context"
	"fmt"
	"net"
	"strings"
	"time"

	"golang-netsweep/internal/port"
	"golang-netsweep/internal/types"

	"github.com/miekg/dns"
)

// SystemResolver implements the Resolver port with the platform resolver.
// No timeout is applied beyond the platform default.
type SystemResolver struct {
	resolver *net.Resolver
}

// Ensure SystemResolver implements the Resolver port
var _ port.Resolver = (*SystemResolver)(nil)

// NewSystemResolver creates a resolver backed by net.DefaultResolver.
func NewSystemResolver() *SystemResolver {
	return &SystemResolver{resolver: net.DefaultResolver}
}

// LookupAddr returns the first PTR name for address.
func (r *SystemResolver) LookupAddr(ctx context.Context, address types.Address) (string, error) {
	names, err := r.resolver.LookupAddr(ctx, string(address))
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrResolutionFailure, err)
	}
	return firstName(address, names)
}

// ServerResolver implements the Resolver port by querying one DNS server
// directly with miekg/dns, bypassing the platform resolver configuration.
type ServerResolver struct {
	server string
	client *dns.Client
}

// Ensure ServerResolver implements the Resolver port
var _ port.Resolver = (*ServerResolver)(nil)

// NewServerResolver creates a resolver for server ("host" or "host:port", port 53 by default).
func NewServerResolver(server string, timeout time.Duration) *ServerResolver {
	if _, _, err := net.SplitHostPort(server); err != nil {
		server = net.JoinHostPort(server, "53")
	}
	return &ServerResolver{
		server: server,
		client: &dns.Client{Net: "udp", Timeout: timeout},
	}
}

// Server returns the host:port queried.
func (r *ServerResolver) Server() string {
	return r.server
}

// LookupAddr sends a single PTR query for address.
func (r *ServerResolver) LookupAddr(ctx context.Context, address types.Address) (string, error) {
	arpa, err := dns.ReverseAddr(string(address))
	if err != nil {
		return "", fmt.Errorf("%w: %v", types.ErrResolutionFailure, err)
	}

	msg := new(dns.Msg)
	msg.SetQuestion(arpa, dns.TypePTR)

	in, _, err := r.client.ExchangeContext(ctx, msg, r.server)
	if err != nil {
		return "", fmt.Errorf("%w: PTR query to %s failed: %v", types.ErrResolutionFailure, r.server, err)
	}
	if in.Rcode != dns.RcodeSuccess {
		return "", fmt.Errorf("%w: PTR query for %s returned %s", types.ErrResolutionFailure, address, dns.RcodeToString[in.Rcode])
	}

	var names []string
	for _, rr := range in.Answer {
		if ptr, ok := rr.(*dns.PTR); ok {
			names = append(names, ptr.Ptr)
		}
	}
	return firstName(address, names)
}

func firstName(address types.Address, names []string) (string, error) {
	for _, name := range names {
		if name = strings.TrimSuffix(name, "."); name != "" {
			return name, nil
		}
	}
	return "", fmt.Errorf("%w: no PTR record for %s", types.ErrResolutionFailure, address)
}
