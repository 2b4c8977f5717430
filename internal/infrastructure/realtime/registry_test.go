package realtime

import (
	"errors"
	"testing"
)

// fakeConn records payloads; failing reports Send errors like a dead socket.
type fakeConn struct {
	id        string
	accountID string
	payloads  [][]byte
	failing   bool
	closed    bool
}

func (c *fakeConn) ID() string        { return c.id }
func (c *fakeConn) AccountID() string { return c.accountID }

func (c *fakeConn) Send(payload []byte) error {
	if c.failing {
		return errors.New("send failed")
	}
	c.payloads = append(c.payloads, payload)
	return nil
}

func (c *fakeConn) Close(code int, reason string) { c.closed = true }

func TestRegistryAttachDetach(t *testing.T) {
	r := NewRegistry()
	conn := &fakeConn{id: "c1", accountID: "acc-1"}

	r.Attach(conn)
	if got := r.Room("acc-1"); len(got) != 1 {
		t.Fatalf("room size = %d, want 1", len(got))
	}
	if r.Size() != 1 {
		t.Errorf("size = %d, want 1", r.Size())
	}

	r.Detach(conn)
	if got := r.Room("acc-1"); len(got) != 0 {
		t.Errorf("room size after detach = %d, want 0", len(got))
	}
	// detaching twice is harmless
	r.Detach(conn)
}

func TestRegistryMultipleDevices(t *testing.T) {
	r := NewRegistry()
	phone := &fakeConn{id: "c1", accountID: "acc-1"}
	laptop := &fakeConn{id: "c2", accountID: "acc-1"}
	other := &fakeConn{id: "c3", accountID: "acc-2"}
	r.Attach(phone)
	r.Attach(laptop)
	r.Attach(other)

	if got := r.Room("acc-1"); len(got) != 2 {
		t.Errorf("acc-1 room size = %d, want 2", len(got))
	}
	if got := r.Room("acc-2"); len(got) != 1 {
		t.Errorf("acc-2 room size = %d, want 1", len(got))
	}

	r.Detach(phone)
	if got := r.Room("acc-1"); len(got) != 1 || got[0].ID() != "c2" {
		t.Errorf("acc-1 room after detach = %v", got)
	}
}

func TestRegistryUnknownRoom(t *testing.T) {
	r := NewRegistry()
	if got := r.Room("nobody"); len(got) != 0 {
		t.Errorf("unknown room size = %d, want 0", len(got))
	}
}

func TestRegistryClose(t *testing.T) {
	r := NewRegistry()
	conn := &fakeConn{id: "c1", accountID: "acc-1"}
	r.Attach(conn)

	r.Close()
	if !conn.closed {
		t.Error("connection not closed on registry shutdown")
	}
	if r.Size() != 0 {
		t.Errorf("size after close = %d, want 0", r.Size())
	}
}
