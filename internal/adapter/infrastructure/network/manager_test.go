//go:build unit

package network

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewManagerAdapter(t *testing.T) {
	adapter := NewManagerAdapter()
	assert.NotNil(t, adapter)
}

func TestManagerAdapter_GetLinkByName(t *testing.T) {
	adapter := NewManagerAdapter()

	t.Run("ValidInterface", func(t *testing.T) {
		// Loopback should exist on most systems
		link, err := adapter.GetLinkByName("lo")
		if err != nil {
			t.Skip("Loopback interface not available, skipping test")
		}
		assert.NotNil(t, link)
		assert.Equal(t, "lo", link.Attrs().Name)
	})

	t.Run("InvalidInterface", func(t *testing.T) {
		_, err := adapter.GetLinkByName("nonexistent")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to get netlink interface")
	})
}

func TestManagerAdapter_ListAddresses(t *testing.T) {
	adapter := NewManagerAdapter()

	link, err := adapter.GetLinkByName("lo")
	if err != nil {
		t.Skip("Loopback interface not available, skipping test")
	}

	addresses, err := adapter.ListAddresses(link)
	assert.NoError(t, err)
	assert.NotEmpty(t, addresses)
}

func TestManagerAdapter_RouteGet(t *testing.T) {
	adapter := NewManagerAdapter()

	routes, err := adapter.RouteGet(net.ParseIP("127.0.0.1"))
	if err != nil {
		t.Skip("Routing table not available, skipping test")
	}
	if assert.NotEmpty(t, routes) {
		assert.True(t, routes[0].Src.IsLoopback())
	}
}
