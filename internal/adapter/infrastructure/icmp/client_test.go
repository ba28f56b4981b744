//go:build unit

package icmp

import (
	"context"
	"net"
	"testing"
	"time"

	"golang-netsweep/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/icmp"
	"golang.org/x/net/ipv4"
)

func marshalEcho(t *testing.T, typ icmp.Type, seq int) []byte {
	t.Helper()
	msg := icmp.Message{Type: typ, Body: &icmp.Echo{ID: 1, Seq: seq, Data: payload}}
	b, err := msg.Marshal(nil)
	require.NoError(t, err)
	return b
}

func TestMatchesEcho(t *testing.T) {
	ip := net.ParseIP("192.168.1.3").To4()
	peer := &net.UDPAddr{IP: ip}

	t.Run("MatchingReply", func(t *testing.T) {
		assert.True(t, matchesEcho(marshalEcho(t, ipv4.ICMPTypeEchoReply, 7), peer, ip, 7))
	})

	t.Run("WrongSequence", func(t *testing.T) {
		assert.False(t, matchesEcho(marshalEcho(t, ipv4.ICMPTypeEchoReply, 8), peer, ip, 7))
	})

	t.Run("WrongPeer", func(t *testing.T) {
		other := &net.UDPAddr{IP: net.ParseIP("192.168.1.4")}
		assert.False(t, matchesEcho(marshalEcho(t, ipv4.ICMPTypeEchoReply, 7), other, ip, 7))
	})

	t.Run("RequestIsNotReply", func(t *testing.T) {
		assert.False(t, matchesEcho(marshalEcho(t, ipv4.ICMPTypeEcho, 7), peer, ip, 7))
	})

	t.Run("Garbage", func(t *testing.T) {
		assert.False(t, matchesEcho([]byte{0x00}, peer, ip, 7))
	})
}

func TestClientAdapter_Check(t *testing.T) {
	adapter := NewClientAdapter()

	t.Run("InvalidAddress", func(t *testing.T) {
		ok, err := adapter.Check(context.Background(), "not-an-ip", time.Second)
		assert.False(t, ok)
		assert.ErrorIs(t, err, types.ErrProbeFailure)
	})

	t.Run("Loopback", func(t *testing.T) {
		ok, err := adapter.Check(context.Background(), "127.0.0.1", time.Second)
		if err != nil {
			t.Skipf("Unprivileged ICMP sockets not permitted here: %v", err)
		}
		assert.True(t, ok)
	})
}
