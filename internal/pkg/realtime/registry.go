package realtime

import (
	"sync"
)

// Registry maps user ids to their single live connection. It is injected
// wherever presence is consulted; entries are process-local and lost on
// restart. Connection sharing across instances is out of scope.
type Registry struct {
	mu      sync.RWMutex
	clients map[int64]*Client
}

// NewRegistry creates an empty presence registry.
func NewRegistry() *Registry {
	return &Registry{
		clients: make(map[int64]*Client),
	}
}

// Register records the client as the live connection for its user.
// A prior connection for the same user is overwritten and its send channel
// closed, which shuts down its write pump.
func (r *Registry) Register(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.clients[client.userID]; ok && prev != client {
		close(prev.send)
	}
	r.clients[client.userID] = client
}

// Unregister removes the client's presence entry. The entry is only removed
// when it still points at this exact client: a handle made stale by a rejoin
// overwrite must not evict the newer connection.
func (r *Registry) Unregister(client *Client) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if cur, ok := r.clients[client.userID]; ok && cur == client {
		delete(r.clients, client.userID)
		close(client.send)
	}
}

// IsOnline reports whether the user currently has a live connection.
func (r *Registry) IsOnline(userID int64) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.clients[userID]
	return ok
}

// Count returns the number of live connections.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.clients)
}

// push delivers raw bytes to the user's connection if one is registered.
// The send is non-blocking: a full buffer drops the payload. The read lock is
// held across the send so the channel cannot be closed mid-send by a
// concurrent register or unregister.
func (r *Registry) push(userID int64, data []byte) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	client, ok := r.clients[userID]
	if !ok {
		return false
	}

	select {
	case client.send <- data:
		return true
	default:
		return false
	}
}
