package realtime

import "sync"

// Registry tracks live connections grouped into rooms keyed by account id.
// One account may hold several simultaneous connections (multiple devices);
// all of them receive every event addressed to the account. The registry is
// constructor-injected wherever routing is needed so tests can run several
// independent instances with fake connections.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]map[string]Conn // accountID -> connID -> conn
}

// NewRegistry constructs an empty Registry.
func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]map[string]Conn)}
}

// Attach adds a connection to the room named by its account id.
func (r *Registry) Attach(conn Conn) {
	r.mu.Lock()
	room := r.rooms[conn.AccountID()]
	if room == nil {
		room = make(map[string]Conn)
		r.rooms[conn.AccountID()] = room
	}
	room[conn.ID()] = conn
	r.mu.Unlock()
}

// Detach removes a connection from its room. It must be called before the
// connection is torn down so no later routing decision can pick a dead
// connection. Detaching an unknown connection is a no-op.
func (r *Registry) Detach(conn Conn) {
	r.mu.Lock()
	if room, ok := r.rooms[conn.AccountID()]; ok {
		delete(room, conn.ID())
		if len(room) == 0 {
			delete(r.rooms, conn.AccountID())
		}
	}
	r.mu.Unlock()
}

// Room returns a snapshot of the connections currently in the account's room.
func (r *Registry) Room(accountID string) []Conn {
	r.mu.RLock()
	room := r.rooms[accountID]
	conns := make([]Conn, 0, len(room))
	for _, c := range room {
		conns = append(conns, c)
	}
	r.mu.RUnlock()
	return conns
}

// Size returns the total number of tracked connections.
func (r *Registry) Size() int {
	r.mu.RLock()
	n := 0
	for _, room := range r.rooms {
		n += len(room)
	}
	r.mu.RUnlock()
	return n
}

// Close terminates every tracked connection and clears the registry.
func (r *Registry) Close() {
	r.mu.Lock()
	conns := make([]Conn, 0)
	for _, room := range r.rooms {
		for _, c := range room {
			conns = append(conns, c)
		}
	}
	r.rooms = make(map[string]map[string]Conn)
	r.mu.Unlock()

	for _, c := range conns {
		c.Close(1001, "registry shutdown")
	}
}
