// Package ping provides a reachability adapter that shells out to the OS ping utility.
// The utility is installed with the privileges it needs, so no raw sockets are opened here.
package ping

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"runtime"
	"strconv"
	"time"

	"golang-netsweep/internal/port"
	"golang-netsweep/internal/types"
)

// Extra time granted to process start-up on top of the probe timeout.
const spawnGrace = time.Second

// CommandRunner runs name with args and returns its exit error, if any.
type CommandRunner func(ctx context.Context, name string, args ...string) error

// ClientAdapter is an adapter that implements the Prober port using the platform's ping command.
type ClientAdapter struct {
	goos string
	run  CommandRunner
}

// Ensure ClientAdapter implements the Prober port
var _ port.Prober = (*ClientAdapter)(nil)

// NewClientAdapter creates a ping adapter for the running platform.
func NewClientAdapter() *ClientAdapter {
	return &ClientAdapter{
		goos: runtime.GOOS,
		run:  runCommand,
	}
}

// Check sends a single echo request. A non-zero exit status or a killed
// process means "not reachable"; only failures to launch ping are errors.
func (c *ClientAdapter) Check(ctx context.Context, address types.Address, timeout time.Duration) (bool, error) {
	if _, err := types.ParseAddress(string(address)); err != nil {
		return false, fmt.Errorf("%w: %v", types.ErrProbeFailure, err)
	}

	ctx, cancel := context.WithTimeout(ctx, timeout+spawnGrace)
	defer cancel()

	err := c.run(ctx, "ping", Args(c.goos, address, timeout)...)
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) || ctx.Err() != nil {
		return false, nil
	}
	return false, fmt.Errorf("%w: ping %s: %v", types.ErrProbeFailure, address, err)
}

// Args returns the ping arguments for one echo with the given timeout on goos.
// Platforms differ in the unit of the wait flag; the timeout is rounded up
// to whole seconds where only seconds are accepted.
func Args(goos string, address types.Address, timeout time.Duration) []string {
	ms := strconv.FormatInt(timeout.Milliseconds(), 10)
	secs := strconv.FormatInt(ceilSeconds(timeout), 10)

	switch goos {
	case "windows":
		return []string{"-n", "1", "-w", ms, string(address)}
	case "darwin", "freebsd", "dragonfly":
		return []string{"-n", "-c", "1", "-W", ms, string(address)}
	case "openbsd", "netbsd":
		return []string{"-n", "-c", "1", "-w", secs, string(address)}
	default:
		return []string{"-n", "-c", "1", "-W", secs, string(address)}
	}
}

func ceilSeconds(d time.Duration) int64 {
	secs := int64((d + time.Second - 1) / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}

func runCommand(ctx context.Context, name string, args ...string) error {
	// Stdout and stderr stay nil: only the exit status matters
	return exec.CommandContext(ctx, name, args...).Run()
}
