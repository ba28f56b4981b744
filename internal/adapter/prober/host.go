// Package prober combines a reachability check with reverse DNS resolution.
package prober

import (
	"context"
	"time"

	"golang-netsweep/internal/pkg/logging"
	"golang-netsweep/internal/port"
	"golang-netsweep/internal/types"
)

// HostProber implements the HostProber port on top of a Prober and a Resolver.
type HostProber struct {
	prober   port.Prober
	resolver port.Resolver
}

// Ensure HostProber implements the HostProber port
var _ port.HostProber = (*HostProber)(nil)

// NewHostProber creates a host prober.
func NewHostProber(prober port.Prober, resolver port.Resolver) *HostProber {
	return &HostProber{
		prober:   prober,
		resolver: resolver,
	}
}

// Probe checks reachability once and, only if the host answered, resolves its name.
// Probe and resolution errors are logged and otherwise discarded: a failed probe
// is an unreachable host and a failed lookup is an empty hostname.
func (h *HostProber) Probe(ctx context.Context, address types.Address, timeout time.Duration) (types.ProbeResult, bool) {
	logger := logging.WithComponentAndAddress("probe", address.String())

	reachable, err := h.prober.Check(ctx, address, timeout)
	if err != nil {
		logger.WithError(err).Debug("Probe failed, treating host as unreachable")
		return types.ProbeResult{}, false
	}
	if !reachable {
		return types.ProbeResult{}, false
	}

	hostname, err := h.resolver.LookupAddr(ctx, address)
	if err != nil {
		logger.WithError(err).Debug("Reverse lookup failed")
		hostname = ""
	}

	return types.ProbeResult{
		Address:   address,
		Reachable: true,
		Hostname:  hostname,
	}, true
}
