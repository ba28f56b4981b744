//go:build unit

package prober

import (
	"context"
	"fmt"
	"testing"
	"time"

	"golang-netsweep/internal/mock"
	"golang-netsweep/internal/types"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHostProber_Probe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	prober := mock.NewMockProber(ctrl)
	resolver := mock.NewMockResolver(ctrl)
	host := NewHostProber(prober, resolver)

	ctx := context.Background()
	timeout := 500 * time.Millisecond

	t.Run("ReachableWithHostname", func(t *testing.T) {
		gomock.InOrder(
			prober.EXPECT().Check(ctx, types.Address("192.168.1.3"), timeout).Return(true, nil),
			resolver.EXPECT().LookupAddr(ctx, types.Address("192.168.1.3")).Return("printer.local", nil),
		)

		result, ok := host.Probe(ctx, "192.168.1.3", timeout)
		assert.True(t, ok)
		assert.Equal(t, types.ProbeResult{Address: "192.168.1.3", Reachable: true, Hostname: "printer.local"}, result)
	})

	t.Run("ReachableWithoutHostname", func(t *testing.T) {
		prober.EXPECT().Check(ctx, types.Address("192.168.1.4"), timeout).Return(true, nil)
		resolver.EXPECT().LookupAddr(ctx, types.Address("192.168.1.4")).
			Return("", fmt.Errorf("%w: no PTR record", types.ErrResolutionFailure))

		result, ok := host.Probe(ctx, "192.168.1.4", timeout)
		assert.True(t, ok)
		assert.True(t, result.Reachable)
		assert.Empty(t, result.Hostname)
	})

	t.Run("UnreachableSkipsResolution", func(t *testing.T) {
		prober.EXPECT().Check(ctx, types.Address("192.168.1.5"), timeout).Return(false, nil)
		resolver.EXPECT().LookupAddr(gomock.Any(), gomock.Any()).Times(0)

		_, ok := host.Probe(ctx, "192.168.1.5", timeout)
		assert.False(t, ok)
	})

	t.Run("ProbeErrorIsUnreachable", func(t *testing.T) {
		prober.EXPECT().Check(ctx, types.Address("192.168.1.6"), timeout).
			Return(true, fmt.Errorf("%w: ping not found", types.ErrProbeFailure))
		resolver.EXPECT().LookupAddr(gomock.Any(), gomock.Any()).Times(0)

		_, ok := host.Probe(ctx, "192.168.1.6", timeout)
		assert.False(t, ok)
	})

	t.Run("Idempotent", func(t *testing.T) {
		prober.EXPECT().Check(ctx, types.Address("192.168.1.7"), timeout).Return(true, nil).Times(2)
		resolver.EXPECT().LookupAddr(ctx, types.Address("192.168.1.7")).Return("nas.lan", nil).Times(2)

		first, ok1 := host.Probe(ctx, "192.168.1.7", timeout)
		second, ok2 := host.Probe(ctx, "192.168.1.7", timeout)
		assert.Equal(t, ok1, ok2)
		assert.Equal(t, first, second)
	})
}
