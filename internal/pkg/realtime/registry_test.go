package realtime

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(userID int64) *Client {
	return &Client{
		send:   make(chan []byte, sendBufferSize),
		userID: userID,
		logger: zerolog.Nop(),
	}
}

func TestRegistryRegisterAndLookup(t *testing.T) {
	registry := NewRegistry()
	client := newTestClient(1)

	assert.False(t, registry.IsOnline(1))

	registry.Register(client)

	assert.True(t, registry.IsOnline(1))
	assert.Equal(t, 1, registry.Count())
}

func TestRegistryRejoinOverwritesAndClosesPrevious(t *testing.T) {
	registry := NewRegistry()
	first := newTestClient(1)
	second := newTestClient(1)

	registry.Register(first)
	registry.Register(second)

	assert.Equal(t, 1, registry.Count())

	// The first connection's send channel must be closed by the overwrite
	_, open := <-first.send
	assert.False(t, open)

	// Delivery reaches the newer connection
	require.True(t, registry.push(1, []byte("hello")))
	assert.Equal(t, []byte("hello"), <-second.send)
}

func TestRegistryUnregisterIgnoresStaleHandle(t *testing.T) {
	registry := NewRegistry()
	stale := newTestClient(1)
	current := newTestClient(1)

	registry.Register(stale)
	registry.Register(current)

	// The stale handle disconnects after being overwritten. The newer
	// connection must stay registered.
	registry.Unregister(stale)

	assert.True(t, registry.IsOnline(1))
	assert.True(t, registry.push(1, []byte("still here")))
}

func TestRegistryUnregisterRemovesCurrentClient(t *testing.T) {
	registry := NewRegistry()
	client := newTestClient(1)

	registry.Register(client)
	registry.Unregister(client)

	assert.False(t, registry.IsOnline(1))
	assert.Equal(t, 0, registry.Count())

	_, open := <-client.send
	assert.False(t, open)
}

func TestRegistryPushOfflineUser(t *testing.T) {
	registry := NewRegistry()

	assert.False(t, registry.push(42, []byte("nobody home")))
}

func TestRegistryPushFullBufferDrops(t *testing.T) {
	registry := NewRegistry()
	client := &Client{
		send:   make(chan []byte, 1),
		userID: 1,
		logger: zerolog.Nop(),
	}
	registry.Register(client)

	require.True(t, registry.push(1, []byte("first")))
	assert.False(t, registry.push(1, []byte("second")))
}
