package realtime

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
)

// dialTestConnection spins up a websocket pair and wraps the server side in a
// Connection, the way the socket controller does after a handshake.
func dialTestConnection(t *testing.T) *Connection {
	t.Helper()
	upgrader := websocket.Upgrader{}
	conns := make(chan *Connection, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ws, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conns <- NewConnection("acc-1", ws)
	}))
	t.Cleanup(srv.Close)

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	t.Cleanup(func() { _ = client.Close() })
	return <-conns
}

func TestConnectionSendAfterClose(t *testing.T) {
	conn := dialTestConnection(t)
	conn.Start()
	conn.Close(websocket.CloseNormalClosure, "bye")

	// A receiver that disconnected mid-delivery must surface as an error on
	// the sender's side, never as a panic.
	for i := 0; i < 50; i++ {
		if err := conn.Send([]byte("late")); err == nil {
			t.Fatal("send after close reported success")
		}
	}

	// closing twice is harmless
	conn.Close(websocket.CloseNormalClosure, "bye")
}

func TestConnectionCloseDuringSends(t *testing.T) {
	conn := dialTestConnection(t)
	conn.Start()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			_ = conn.Send([]byte("payload"))
		}
	}()
	conn.Close(websocket.CloseNormalClosure, "bye")
	<-done
}

func TestConnectionSendBeforeClose(t *testing.T) {
	conn := dialTestConnection(t)
	conn.Start()
	defer conn.Close(websocket.CloseNormalClosure, "bye")

	if err := conn.Send([]byte("hello")); err != nil {
		t.Fatalf("send on live connection: %v", err)
	}
}
